package domain

import (
	"fmt"
	"time"
)

// OutcomeKind discriminates the fixed set of tap results. Callers switch
// on Kind; the remaining fields carry the display contract.
type OutcomeKind string

const (
	OutcomeCardUnknown         OutcomeKind = "CARD_UNKNOWN"
	OutcomeAccountInactive     OutcomeKind = "ACCOUNT_INACTIVE"
	OutcomeUnknownService      OutcomeKind = "UNKNOWN_SERVICE"
	OutcomeInsufficientBalance OutcomeKind = "INSUFFICIENT_BALANCE"
	OutcomeTransactionFailed   OutcomeKind = "TRANSACTION_FAILED"
	OutcomeAttendanceFailed    OutcomeKind = "ATTENDANCE_FAILED"
	OutcomeApproved            OutcomeKind = "APPROVED"
	OutcomeAttendanceMarked    OutcomeKind = "ATTENDANCE_MARKED"
)

// TapOutcome is the terminal result of one tap. Every outcome carries the
// success flag, the student display name ("Unknown" if the card did not
// resolve), the service label, a human-readable action string, and the
// balance to display after the operation. AmountDeducted is set only on
// paid approvals; Academic only where the path resolved an active student.
type TapOutcome struct {
	Kind             OutcomeKind      `json:"kind"`
	Success          bool             `json:"success"`
	Student          string           `json:"student"`
	Service          string           `json:"service"`
	Action           string           `json:"action"`
	BalanceRemaining int64            `json:"balance_remaining"`
	AmountDeducted   *int64           `json:"amount_deducted,omitempty"`
	Academic         *AcademicProfile `json:"academic,omitempty"`
	Timestamp        time.Time        `json:"timestamp"`
}

// CardUnknownOutcome is the terminal result when the card identifier does
// not resolve to any student. Nothing was read past the identity store.
func CardUnknownOutcome(service string) *TapOutcome {
	return &TapOutcome{
		Kind:      OutcomeCardUnknown,
		Success:   false,
		Student:   "Unknown",
		Service:   ServiceLabel(service),
		Action:    "Invalid Card - Identity Not Found",
		Timestamp: time.Now().UTC(),
	}
}

// AccountInactiveOutcome denies an inactive student before any policy or
// ledger logic. The current balance is carried for display only.
func AccountInactiveOutcome(student *Student, service string) *TapOutcome {
	return &TapOutcome{
		Kind:             OutcomeAccountInactive,
		Success:          false,
		Student:          student.Name,
		Service:          ServiceLabel(service),
		Action:           ReasonAccountInactive.Message(),
		BalanceRemaining: student.WalletBalance,
		Timestamp:        time.Now().UTC(),
	}
}

// UnknownServiceOutcome is the terminal result for a service with no
// policy, built-in or stored. No charge, no attendance.
func UnknownServiceOutcome(student *Student, service string) *TapOutcome {
	return &TapOutcome{
		Kind:             OutcomeUnknownService,
		Success:          false,
		Student:          student.Name,
		Service:          ServiceLabel(service),
		Action:           fmt.Sprintf("Unknown service: %s", NormalizeService(service)),
		BalanceRemaining: student.WalletBalance,
		Timestamp:        time.Now().UTC(),
	}
}

// DeniedOutcome maps a failed permission evaluation to its outcome.
func DeniedOutcome(student *Student, service string, decision AccessDecision) *TapOutcome {
	kind := OutcomeInsufficientBalance
	if decision.Reason == ReasonAccountInactive {
		kind = OutcomeAccountInactive
	}
	return &TapOutcome{
		Kind:             kind,
		Success:          false,
		Student:          student.Name,
		Service:          ServiceLabel(service),
		Action:           decision.Reason.Message(),
		BalanceRemaining: student.WalletBalance,
		Timestamp:        time.Now().UTC(),
	}
}

// TransactionFailedOutcome reports a debit whose atomic conditional update
// lost the race after the evaluator approved on a stale read. The balance
// is unchanged.
func TransactionFailedOutcome(student *Student, service string) *TapOutcome {
	return &TapOutcome{
		Kind:             OutcomeTransactionFailed,
		Success:          false,
		Student:          student.Name,
		Service:          ServiceLabel(service),
		Action:           "Transaction Failed",
		BalanceRemaining: student.WalletBalance,
		Timestamp:        time.Now().UTC(),
	}
}

// AttendanceFailedOutcome reports a failed attendance append. No other
// subsystem was touched.
func AttendanceFailedOutcome(student *Student) *TapOutcome {
	return &TapOutcome{
		Kind:             OutcomeAttendanceFailed,
		Success:          false,
		Student:          student.Name,
		Service:          ServiceLabel(ServiceAttendance),
		Action:           "Failed to log attendance",
		BalanceRemaining: student.WalletBalance,
		Timestamp:        time.Now().UTC(),
	}
}

// ApprovedOutcome grants access. For paid services amountDeducted is the
// charged amount and newBalance the ledger's post-debit balance; for free
// services amountDeducted is nil and the balance is unchanged.
func ApprovedOutcome(student *Student, service string, reason AccessReason, amountDeducted *int64, newBalance int64) *TapOutcome {
	academic := student.Academic
	return &TapOutcome{
		Kind:             OutcomeApproved,
		Success:          true,
		Student:          student.Name,
		Service:          ServiceLabel(service),
		Action:           reason.Message(),
		BalanceRemaining: newBalance,
		AmountDeducted:   amountDeducted,
		Academic:         &academic,
		Timestamp:        time.Now().UTC(),
	}
}

// AttendanceMarkedOutcome records a successful presence event. The wallet
// is untouched; academic attributes ride along for display.
func AttendanceMarkedOutcome(student *Student, markedAt time.Time) *TapOutcome {
	academic := student.Academic
	return &TapOutcome{
		Kind:             OutcomeAttendanceMarked,
		Success:          true,
		Student:          student.Name,
		Service:          ServiceLabel(ServiceAttendance),
		Action:           "Attendance Marked",
		BalanceRemaining: student.WalletBalance,
		Academic:         &academic,
		Timestamp:        markedAt,
	}
}
