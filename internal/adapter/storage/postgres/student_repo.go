package postgres

import (
	"context"
	"errors"
	"fmt"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StudentRepo implements ports.StudentRepository.
type StudentRepo struct {
	pool Pool
}

// NewStudentRepo creates a new StudentRepo.
func NewStudentRepo(pool Pool) *StudentRepo {
	return &StudentRepo{pool: pool}
}

const studentColumns = `id, name, roll_no, card_uid, wallet_balance, status,
		branch, section, program, year, created_at, updated_at`

func scanStudent(row pgx.Row) (*domain.Student, error) {
	s := &domain.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.RollNo, &s.CardUID, &s.WalletBalance, &s.Status,
		&s.Academic.Branch, &s.Academic.Section, &s.Academic.Program, &s.Academic.Year,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// GetByCardUID fetches a student by card UID. Returns nil when no row
// matches; an unregistered card is not an error.
func (r *StudentRepo) GetByCardUID(ctx context.Context, cardUID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE card_uid = $1`

	s, err := scanStudent(r.pool.QueryRow(ctx, query, cardUID))
	if err != nil {
		return nil, fmt.Errorf("get student by card uid: %w", err)
	}
	return s, nil
}

// GetByID fetches a student by UUID.
func (r *StudentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	s, err := scanStudent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get student by id: %w", err)
	}
	return s, nil
}

// List returns the full roster, each student paired with their most
// recent attendance timestamp (nil when they have never tapped in).
func (r *StudentRepo) List(ctx context.Context) ([]ports.StudentSummary, error) {
	query := `SELECT s.id, s.name, s.roll_no, s.card_uid, s.wallet_balance, s.status,
		s.branch, s.section, s.program, s.year, s.created_at, s.updated_at,
		MAX(a.created_at) AS last_attendance
		FROM students s
		LEFT JOIN attendance a ON a.student_id = s.id
		GROUP BY s.id
		ORDER BY s.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var summaries []ports.StudentSummary
	for rows.Next() {
		var sum ports.StudentSummary
		s := &sum.Student
		err := rows.Scan(
			&s.ID, &s.Name, &s.RollNo, &s.CardUID, &s.WalletBalance, &s.Status,
			&s.Academic.Branch, &s.Academic.Section, &s.Academic.Program, &s.Academic.Year,
			&s.CreatedAt, &s.UpdatedAt,
			&sum.LastAttendance,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student row: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return summaries, nil
}

// ConditionalDebit decrements the wallet balance only if it covers the
// amount, in one statement, and returns the post-debit balance from
// RETURNING. ok=false means the condition failed (balance too low or
// student gone); that is not an error. Must run within a transaction so
// the caller can journal the charge atomically.
func (r *StudentRepo) ConditionalDebit(ctx context.Context, tx pgx.Tx, studentID uuid.UUID, amount int64) (int64, bool, error) {
	query := `UPDATE students
		SET wallet_balance = wallet_balance - $1, updated_at = NOW()
		WHERE id = $2 AND wallet_balance >= $1
		RETURNING wallet_balance`

	var newBalance int64
	err := tx.QueryRow(ctx, query, amount, studentID).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("conditional debit: %w", err)
	}
	return newBalance, true, nil
}
