package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"groundops.aero/groundops/core"
	"groundops.aero/groundops/web/common"
)

func (ep *Endpoint) GetPermission(c *gin.Context) {
	employeeID := c.Query("employeeID")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("employeeID is required"))
		return
	}

	role, err := core.ResolveRole(ep.DB, employeeID)
	if errors.Is(err, core.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Employee not found"))
		return
	}
	if err != nil {
		ep.Log.Error("permission lookup failed", zap.String("employeeID", employeeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	ep.Log.Info("permission resolved", zap.String("employeeID", employeeID), zap.String("permission", string(role)))
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"permission": role}))
}
