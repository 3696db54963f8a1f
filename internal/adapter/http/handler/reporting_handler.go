package handler

import (
	"strconv"

	"campus-tap-engine/internal/adapter/http/dto"
	"campus-tap-engine/internal/core/ports"
	"campus-tap-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportingHandler handles the admin dashboard read endpoints.
type ReportingHandler struct {
	reportingSvc ports.ReportingService
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(reportingSvc ports.ReportingService) *ReportingHandler {
	return &ReportingHandler{reportingSvc: reportingSvc}
}

// ListStudents handles GET /api/v1/students. With a card_uid query
// parameter it returns that single student instead of the roster.
func (h *ReportingHandler) ListStudents(c *gin.Context) {
	if cardUID := c.Query("card_uid"); cardUID != "" {
		summary, err := h.reportingSvc.GetStudentByCard(c.Request.Context(), cardUID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.NewStudentResponse(summary))
		return
	}

	summaries, err := h.reportingSvc.ListStudents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.StudentResponse, 0, len(summaries))
	for i := range summaries {
		items = append(items, dto.NewStudentResponse(&summaries[i]))
	}
	response.OK(c, items)
}

// ListTransactions handles GET /api/v1/transactions.
func (h *ReportingHandler) ListTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 500 {
		limit = 100
	}

	txns, err := h.reportingSvc.ListTransactions(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, dto.NewTransactionResponse(&txns[i]))
	}
	response.OK(c, items)
}

// ListAttendance handles GET /api/v1/attendance with optional branch,
// section, program and year filters.
func (h *ReportingHandler) ListAttendance(c *gin.Context) {
	var filter ports.AttendanceFilter
	if v := c.Query("branch"); v != "" {
		filter.Branch = &v
	}
	if v := c.Query("section"); v != "" {
		filter.Section = &v
	}
	if v := c.Query("program"); v != "" {
		filter.Program = &v
	}
	if v := c.Query("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = &year
		}
	}

	records, err := h.reportingSvc.ListAttendance(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.NewAttendanceResponse(&records[i]))
	}
	response.OK(c, items)
}

// ListPolicies handles GET /api/v1/policies.
func (h *ReportingHandler) ListPolicies(c *gin.Context) {
	policies, err := h.reportingSvc.ListPolicies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PolicyResponse, 0, len(policies))
	for i := range policies {
		items = append(items, dto.NewPolicyResponse(&policies[i]))
	}
	response.OK(c, items)
}
