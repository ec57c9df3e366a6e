package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"groundops.aero/groundops/core"
	"groundops.aero/groundops/utils"
	"groundops.aero/groundops/web/common"
)

type RoutineDTO struct {
	JobID      string `json:"jobId"`
	Date       string `json:"date"`
	SN         string `json:"sn"`
	Flight     string `json:"flight"`
	FromLoc    string `json:"fromLoc"`
	ToLoc      string `json:"toLoc"`
	STA        string `json:"sta"`
	ETA        string `json:"eta"`
	ATA        string `json:"ata"`
	Remarks    string `json:"remarks"`
	EmployeeID string `json:"employeeID"`
	Supervisor string `json:"supervisor"`
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toRoutineDTO(rt core.Routine) RoutineDTO {
	date := ""
	if rt.TicketDate != nil {
		date = rt.TicketDate.Format(utils.DateLayout)
	}
	return RoutineDTO{
		JobID:      rt.JobID,
		Date:       date,
		SN:         text(rt.SN),
		Flight:     text(rt.Flight),
		FromLoc:    text(rt.From),
		ToLoc:      text(rt.To),
		STA:        text(rt.STA),
		ETA:        text(rt.ETA),
		ATA:        text(rt.ATA),
		Remarks:    text(rt.Remarks),
		EmployeeID: rt.StaffInCharge,
		Supervisor: text(rt.Supervisor),
	}
}

func (ep *Endpoint) ListRoutines(c *gin.Context) {
	employeeID := c.Query("employeeID")
	if employeeID == "" {
		ep.Log.Warn("routine request missing employeeID")
		c.JSON(http.StatusOK, common.NewSuccessResponse([]RoutineDTO{}))
		return
	}

	routines, err := core.ListVisibleRoutines(ep.DB, employeeID)
	if err != nil {
		ep.Log.Error("routine query failed", zap.String("employeeID", employeeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	ep.Log.Info("routine data returned", zap.String("employeeID", employeeID), zap.Int("records", len(routines)))
	c.JSON(http.StatusOK, common.NewSuccessResponse(utils.Map(routines, toRoutineDTO)))
}

func (ep *Endpoint) UpdateRoutine(c *gin.Context) {
	jobID := c.Param("jobId")
	callerID := c.Query("employeeID")
	if callerID == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("employeeID is required"))
		return
	}

	var in core.RoutineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	updated, err := core.UpdateRoutine(ep.DB, jobID, in, callerID)
	if errors.Is(err, core.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Employee not found"))
		return
	}
	if err != nil {
		ep.Log.Error("routine update failed", zap.String("jobId", jobID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	ep.Log.Info("routine update", zap.String("jobId", jobID), zap.String("caller", callerID), zap.Bool("updated", updated))
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"updated": updated}))
}

func (ep *Endpoint) DeleteRoutine(c *gin.Context) {
	jobID := c.Param("jobId")
	callerID := c.Query("employeeID")
	if callerID == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("employeeID is required"))
		return
	}

	deleted, err := core.DeleteRoutine(ep.DB, jobID, callerID)
	if errors.Is(err, core.ErrForbidden) {
		ep.Log.Warn("routine delete forbidden", zap.String("jobId", jobID), zap.String("caller", callerID))
		c.JSON(http.StatusForbidden, common.NewErrorResponse("Only admins may delete routines."))
		return
	}
	if errors.Is(err, core.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Employee not found"))
		return
	}
	if err != nil {
		ep.Log.Error("routine delete failed", zap.String("jobId", jobID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	ep.Log.Info("routine delete", zap.String("jobId", jobID), zap.String("caller", callerID), zap.Bool("deleted", deleted))
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"deleted": deleted}))
}
