package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Endpoint struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func Register(r *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	ep := &Endpoint{DB: db, Log: log}

	r.POST("/login", ep.Login)
	r.GET("/permission", ep.GetPermission)

	r.GET("/routine", ep.ListRoutines)
	r.POST("/routine", ep.ImportRoutine)
	r.POST("/routine/import", ep.ImportWorkbook)
	r.PUT("/routine/:jobId", ep.UpdateRoutine)
	r.DELETE("/routine/:jobId", ep.DeleteRoutine)
	r.GET("/routine/export", ep.ExportRoutines)
}
