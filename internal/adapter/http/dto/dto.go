package dto

import (
	"time"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"
)

// TapRequest is the request body a reader posts on a card tap.
type TapRequest struct {
	CardUID string `json:"card_uid" binding:"required,max=100"`
	Service string `json:"service" binding:"required,max=50"`
	Context string `json:"context,omitempty" binding:"max=100"`
}

// AttendanceRequest is the request body for the dedicated attendance
// endpoint. The service is implied; only the card and an optional
// context travel.
type AttendanceRequest struct {
	CardUID string `json:"card_uid" binding:"required,max=100"`
	Context string `json:"context,omitempty" binding:"max=100"`
}

// TapResponse is the flat reader-facing contract. Amounts are rupees;
// the engine's paise values are converted at this boundary only.
type TapResponse struct {
	Success             bool     `json:"success"`
	Student             string   `json:"student"`
	Service             string   `json:"service"`
	Action              string   `json:"action"`
	BalanceRemaining    float64  `json:"balance_remaining"`
	AmountDeducted      *float64 `json:"amount_deducted,omitempty"`
	Branch              string   `json:"branch,omitempty"`
	Section             string   `json:"section,omitempty"`
	Program             string   `json:"program,omitempty"`
	Year                int      `json:"year,omitempty"`
	AttendanceTimestamp string   `json:"attendance_timestamp,omitempty"`
}

func paiseToRupees(paise int64) float64 {
	return float64(paise) / 100
}

// NewTapResponse flattens a tap outcome into the reader contract.
func NewTapResponse(o *domain.TapOutcome) TapResponse {
	resp := TapResponse{
		Success:          o.Success,
		Student:          o.Student,
		Service:          o.Service,
		Action:           o.Action,
		BalanceRemaining: paiseToRupees(o.BalanceRemaining),
	}
	if o.AmountDeducted != nil {
		amount := paiseToRupees(*o.AmountDeducted)
		resp.AmountDeducted = &amount
	}
	if o.Academic != nil {
		resp.Branch = o.Academic.Branch
		resp.Section = o.Academic.Section
		resp.Program = o.Academic.Program
		resp.Year = o.Academic.Year
	}
	if o.Kind == domain.OutcomeAttendanceMarked {
		resp.AttendanceTimestamp = o.Timestamp.UTC().Format(time.RFC3339)
	}
	return resp
}

// StudentResponse is one roster row.
type StudentResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	RollNo         string  `json:"roll_no"`
	CardUID        string  `json:"card_uid"`
	WalletBalance  float64 `json:"wallet_balance"`
	Status         string  `json:"status"`
	Branch         string  `json:"branch"`
	Section        string  `json:"section"`
	Program        string  `json:"program"`
	Year           int     `json:"year"`
	LastAttendance *string `json:"last_attendance,omitempty"`
}

// NewStudentResponse maps a roster summary.
func NewStudentResponse(s *ports.StudentSummary) StudentResponse {
	resp := StudentResponse{
		ID:            s.Student.ID.String(),
		Name:          s.Student.Name,
		RollNo:        s.Student.RollNo,
		CardUID:       s.Student.CardUID,
		WalletBalance: paiseToRupees(s.Student.WalletBalance),
		Status:        string(s.Student.Status),
		Branch:        s.Student.Academic.Branch,
		Section:       s.Student.Academic.Section,
		Program:       s.Student.Academic.Program,
		Year:          s.Student.Academic.Year,
	}
	if s.LastAttendance != nil {
		ts := s.LastAttendance.UTC().Format(time.RFC3339)
		resp.LastAttendance = &ts
	}
	return resp
}

// TransactionResponse is one journal row.
type TransactionResponse struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	Service     string  `json:"service"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
}

// NewTransactionResponse maps a journal list item.
func NewTransactionResponse(item *ports.TransactionListItem) TransactionResponse {
	return TransactionResponse{
		ID:          item.Transaction.ID.String(),
		StudentID:   item.Transaction.StudentID.String(),
		StudentName: item.StudentName,
		Service:     item.Transaction.Service,
		Amount:      paiseToRupees(item.Transaction.Amount),
		CreatedAt:   item.Transaction.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// AttendanceResponse is one presence event row.
type AttendanceResponse struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	RollNo      string `json:"roll_no"`
	Context     string `json:"context"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
	Branch      string `json:"branch"`
	Section     string `json:"section"`
	Program     string `json:"program"`
	Year        int    `json:"year"`
}

// NewAttendanceResponse maps an attendance list item.
func NewAttendanceResponse(item *ports.AttendanceListItem) AttendanceResponse {
	return AttendanceResponse{
		ID:          item.Record.ID.String(),
		StudentID:   item.Record.StudentID.String(),
		StudentName: item.StudentName,
		RollNo:      item.RollNo,
		Context:     item.Record.Context,
		Date:        item.Record.Date.UTC().Format("2006-01-02"),
		CreatedAt:   item.Record.CreatedAt.UTC().Format(time.RFC3339),
		Branch:      item.Academic.Branch,
		Section:     item.Academic.Section,
		Program:     item.Academic.Program,
		Year:        item.Academic.Year,
	}
}

// PolicyResponse is one service policy row.
type PolicyResponse struct {
	Service         string  `json:"service"`
	Cost            float64 `json:"cost"`
	RequiresPayment bool    `json:"requires_payment"`
}

// NewPolicyResponse maps a policy.
func NewPolicyResponse(p *domain.Policy) PolicyResponse {
	return PolicyResponse{
		Service:         p.Service,
		Cost:            paiseToRupees(p.Cost),
		RequiresPayment: p.RequiresPayment,
	}
}
