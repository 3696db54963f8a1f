package handler

import (
	"net/http"

	"campus-tap-engine/internal/adapter/http/dto"
	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"
	"campus-tap-engine/pkg/apperror"
	"campus-tap-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// TapHandler handles the reader-facing tap endpoints.
type TapHandler struct {
	tapSvc ports.TapService
}

// NewTapHandler creates a new TapHandler.
func NewTapHandler(tapSvc ports.TapService) *TapHandler {
	return &TapHandler{tapSvc: tapSvc}
}

// ProcessTap handles POST /api/v1/tap.
//
// Business denials (unknown card, inactive account, insufficient
// balance) come back as 200 with success=false: the reader renders the
// action string either way. Only infrastructure faults map to error
// statuses.
func (h *TapHandler) ProcessTap(c *gin.Context) {
	var req dto.TapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.tapSvc.ProcessTap(c.Request.Context(), ports.TapRequest{
		CardUID: req.CardUID,
		Service: req.Service,
		Context: req.Context,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTapResponse(outcome))
}

// MarkAttendance handles POST /api/v1/attendance. It is the tap
// endpoint with the service pinned to attendance, for readers that only
// ever mark presence.
func (h *TapHandler) MarkAttendance(c *gin.Context) {
	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.tapSvc.ProcessTap(c.Request.Context(), ports.TapRequest{
		CardUID: req.CardUID,
		Service: domain.ServiceAttendance,
		Context: req.Context,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTapResponse(outcome))
}
