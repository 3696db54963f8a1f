package ports

import (
	"context"
	"time"

	"campus-tap-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StudentRepository is the identity store adapter. Lookup by card UID is
// the only operation the tap path needs; the rest serve reporting.
type StudentRepository interface {
	GetByCardUID(ctx context.Context, cardUID string) (*domain.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	List(ctx context.Context) ([]StudentSummary, error)
	// ConditionalDebit atomically decrements wallet_balance when the stored
	// balance covers amount. Returns the post-debit balance and whether the
	// update matched a row. A false result with nil error means the stored
	// balance no longer covered the amount at update time.
	ConditionalDebit(ctx context.Context, tx pgx.Tx, studentID uuid.UUID, amount int64) (int64, bool, error)
}

// StudentSummary is a roster row with the student's most recent
// attendance timestamp, if any.
type StudentSummary struct {
	Student        domain.Student
	LastAttendance *time.Time
}

// PolicyRepository defines persistence for service policies.
type PolicyRepository interface {
	GetByService(ctx context.Context, service string) (*domain.Policy, error)
	List(ctx context.Context) ([]domain.Policy, error)
}

// TransactionRepository defines the append-only access journal. Create is
// used inside the debit transaction so the journal row commits atomically
// with the balance decrement; Insert appends standalone rows for free
// access logging.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error
	Insert(ctx context.Context, t *domain.Transaction) error
	List(ctx context.Context, limit int) ([]TransactionListItem, error)
}

// TransactionListItem is a journal row joined with the student's display
// name for reporting.
type TransactionListItem struct {
	Transaction domain.Transaction
	StudentName string
}

// AttendanceRepository defines the append-only presence log. It never
// reads or writes wallet state.
type AttendanceRepository interface {
	Append(ctx context.Context, rec *domain.AttendanceRecord) error
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceListItem, error)
}

// AttendanceFilter narrows attendance listings by academic attributes.
// Nil fields match everything.
type AttendanceFilter struct {
	Branch  *string
	Section *string
	Program *string
	Year    *int
}

// AttendanceListItem is a presence event joined with student attributes
// for reporting.
type AttendanceListItem struct {
	Record      domain.AttendanceRecord
	StudentName string
	RollNo      string
	Academic    domain.AcademicProfile
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
