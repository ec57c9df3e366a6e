package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"groundops.aero/groundops/core"
	"groundops.aero/groundops/web/common"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (ep *Endpoint) ImportRoutine(c *gin.Context) {
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

	jobID, err := core.ImportRoutine(ep.DB, in, callerID)
	if errors.Is(err, core.ErrForbidden) {
		c.JSON(http.StatusForbidden, common.NewErrorResponse("Only admins may import routines."))
		return
	}
	if errors.Is(err, core.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Employee not found"))
		return
	}
	if err != nil {
		ep.Log.Error("routine import failed", zap.String("caller", callerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	ep.Log.Info("routine imported", zap.String("jobId", jobID), zap.String("caller", callerID))
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"message": "Routine imported.",
		"jobId":   jobID,
	}))
}

func (ep *Endpoint) ImportWorkbook(c *gin.Context) {
	callerID := c.Query("employeeID")
	if callerID == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("employeeID is required"))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("A routine file is required."))
		return
	}

	file, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Could not read the uploaded file."))
		return
	}
	defer file.Close()

	report, err := core.ImportWorkbook(ep.DB, file, callerID, ep.Log)
	if errors.Is(err, core.ErrForbidden) {
		c.JSON(http.StatusForbidden, common.NewErrorResponse("Only admins may import routines."))
		return
	}
	if errors.Is(err, core.ErrInvalidWorkbook) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("The uploaded file is not a valid workbook."))
		return
	}
	if errors.Is(err, core.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Employee not found"))
		return
	}
	if err != nil {
		ep.Log.Error("bulk import failed", zap.String("caller", callerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"message": report.Message(),
		"success": report.Success,
		"failed":  report.Failed,
	}))
}

func (ep *Endpoint) ExportRoutines(c *gin.Context) {
	callerID := c.Query("employeeID")
	if callerID == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("employeeID is required"))
		return
	}

	data, err := core.ExportVisible(ep.DB, callerID)
	if err != nil {
		ep.Log.Error("routine export failed", zap.String("caller", callerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	ep.Log.Info("routine export", zap.String("caller", callerID), zap.Int("bytes", len(data)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", core.ExportFilename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
