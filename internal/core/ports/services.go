package ports

import (
	"context"
	"time"

	"campus-tap-engine/internal/core/domain"

	"github.com/google/uuid"
)

// TapRequest is the validated input for one tap: a raw card identifier
// plus the requested service. Context qualifies attendance taps (e.g. a
// room or course code) and is ignored on payment paths.
type TapRequest struct {
	CardUID string
	Service string
	Context string
}

// TapService is the tap orchestrator: the single entry point callers
// (HTTP layer, CLI, test harness) wrap. Business denials come back as
// TapOutcome variants; only infrastructure failures return an error.
type TapService interface {
	ProcessTap(ctx context.Context, req TapRequest) (*domain.TapOutcome, error)
}

// Ledger owns wallet mutation and transaction journaling. Debit performs
// the conditional check-and-decrement plus exactly one journal insert as
// one atomic unit; ok=false reports a lost race (balance unchanged, no
// journal row). RecordFreeAccess appends an amount=0 journal row so free
// and paid accesses share one auditable journal.
type Ledger interface {
	Debit(ctx context.Context, studentID uuid.UUID, amount int64, service string) (newBalance int64, ok bool, err error)
	RecordFreeAccess(ctx context.Context, studentID uuid.UUID, service string) error
}

// PolicyCatalog resolves a service name to its policy, case-insensitively.
// Returns nil (no error) for services with neither a stored row nor a
// built-in default.
type PolicyCatalog interface {
	Lookup(ctx context.Context, service string) (*domain.Policy, error)
}

// PolicyCache is the Redis fast path in front of the policy store.
type PolicyCache interface {
	// Get returns the cached policy or nil on miss.
	Get(ctx context.Context, service string) (*domain.Policy, error)
	Set(ctx context.Context, policy *domain.Policy, ttl time.Duration) error
}

// ReportingService serves the read-only views calling UIs render. It
// never mutates state.
type ReportingService interface {
	ListStudents(ctx context.Context) ([]StudentSummary, error)
	GetStudentByCard(ctx context.Context, cardUID string) (*StudentSummary, error)
	ListTransactions(ctx context.Context, limit int) ([]TransactionListItem, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceListItem, error)
	ListPolicies(ctx context.Context) ([]domain.Policy, error)
}
