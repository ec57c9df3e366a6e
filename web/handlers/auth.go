package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"groundops.aero/groundops/core"
	"groundops.aero/groundops/web/common"
)

type LoginRequest struct {
	EmployeeID string `json:"employeeID"`
	Password   string `json:"password"`
}

func (ep *Endpoint) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if req.EmployeeID == "" || req.Password == "" {
		ep.Log.Warn("login attempt with missing employee id or password")
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Please enter both Employee ID and password."))
		return
	}

	ok, err := core.Authenticate(ep.DB, req.EmployeeID, req.Password)
	if err != nil {
		ep.Log.Error("login failed against store", zap.String("employeeID", req.EmployeeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	if !ok {
		ep.Log.Warn("failed login attempt", zap.String("employeeID", req.EmployeeID))
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid Employee ID or password."))
		return
	}

	ep.Log.Info("login successful", zap.String("employeeID", req.EmployeeID))
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"message": "Login successful!"}))
}
