package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Student Repo ---

type inMemoryStudentRepo struct {
	mu       sync.RWMutex
	students map[uuid.UUID]*domain.Student
	lastSeen map[uuid.UUID]time.Time
}

func newInMemoryStudentRepo() *inMemoryStudentRepo {
	return &inMemoryStudentRepo{
		students: make(map[uuid.UUID]*domain.Student),
		lastSeen: make(map[uuid.UUID]time.Time),
	}
}

func (r *inMemoryStudentRepo) add(s *domain.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students[s.ID] = s
}

func (r *inMemoryStudentRepo) balance(id uuid.UUID) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.students[id].WalletBalance
}

func (r *inMemoryStudentRepo) GetByCardUID(ctx context.Context, cardUID string) (*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.students {
		if s.CardUID == cardUID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryStudentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.students[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *inMemoryStudentRepo) List(ctx context.Context) ([]ports.StudentSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var summaries []ports.StudentSummary
	for _, s := range r.students {
		sum := ports.StudentSummary{Student: *s}
		if seen, ok := r.lastSeen[s.ID]; ok {
			ts := seen
			sum.LastAttendance = &ts
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// ConditionalDebit mirrors the SQL conditional UPDATE: the check and the
// decrement happen under one lock, so concurrent debits serialize.
func (r *inMemoryStudentRepo) ConditionalDebit(ctx context.Context, tx pgx.Tx, studentID uuid.UUID, amount int64) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[studentID]
	if !ok {
		return 0, false, nil
	}
	if s.WalletBalance < amount {
		return 0, false, nil
	}
	s.WalletBalance -= amount
	return s.WalletBalance, true, nil
}

// --- In-Memory Policy Repo ---

type inMemoryPolicyRepo struct {
	mu       sync.RWMutex
	policies map[string]domain.Policy
}

func newInMemoryPolicyRepo() *inMemoryPolicyRepo {
	return &inMemoryPolicyRepo{policies: make(map[string]domain.Policy)}
}

func (r *inMemoryPolicyRepo) set(p domain.Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies[p.Service] = p
}

func (r *inMemoryPolicyRepo) GetByService(ctx context.Context, service string) (*domain.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policies[service]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (r *inMemoryPolicyRepo) List(ctx context.Context) ([]domain.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var policies []domain.Policy
	for _, p := range r.policies {
		policies = append(policies, p)
	}
	return policies, nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	names        map[uuid.UUID]string
}

func newInMemoryTransactionRepo(names map[uuid.UUID]string) *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{names: names}
}

func (r *inMemoryTransactionRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, *t)
	return nil
}

func (r *inMemoryTransactionRepo) Insert(ctx context.Context, t *domain.Transaction) error {
	return r.Create(ctx, nil, t)
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, limit int) ([]ports.TransactionListItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []ports.TransactionListItem
	for i := len(r.transactions) - 1; i >= 0 && len(items) < limit; i-- {
		t := r.transactions[i]
		items = append(items, ports.TransactionListItem{
			Transaction: t,
			StudentName: r.names[t.StudentID],
		})
	}
	return items, nil
}

// --- In-Memory Attendance Repo ---

type inMemoryAttendanceRepo struct {
	mu       sync.RWMutex
	records  []domain.AttendanceRecord
	students *inMemoryStudentRepo
	failNext bool
}

func newInMemoryAttendanceRepo(students *inMemoryStudentRepo) *inMemoryAttendanceRepo {
	return &inMemoryAttendanceRepo{students: students}
}

func (r *inMemoryAttendanceRepo) Append(ctx context.Context, rec *domain.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return fmt.Errorf("attendance store unavailable")
	}
	r.records = append(r.records, *rec)
	r.students.mu.Lock()
	r.students.lastSeen[rec.StudentID] = rec.CreatedAt
	r.students.mu.Unlock()
	return nil
}

func (r *inMemoryAttendanceRepo) List(ctx context.Context, filter ports.AttendanceFilter) ([]ports.AttendanceListItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []ports.AttendanceListItem
	for _, rec := range r.records {
		s, err := r.students.GetByID(ctx, rec.StudentID)
		if err != nil || s == nil {
			continue
		}
		if filter.Branch != nil && s.Academic.Branch != *filter.Branch {
			continue
		}
		if filter.Section != nil && s.Academic.Section != *filter.Section {
			continue
		}
		if filter.Program != nil && s.Academic.Program != *filter.Program {
			continue
		}
		if filter.Year != nil && s.Academic.Year != *filter.Year {
			continue
		}
		items = append(items, ports.AttendanceListItem{
			Record:      rec,
			StudentName: s.Name,
			RollNo:      s.RollNo,
			Academic:    s.Academic,
		})
	}
	return items, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
