package postgres

import (
	"context"
	"fmt"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a journal row within a database transaction, so the
// row commits or rolls back together with the balance update.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, student_id, service, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, t.ID, t.StudentID, t.Service, t.Amount, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Insert writes a journal row outside any transaction. Used for
// zero-amount rows where no balance update needs to travel with it.
func (r *TransactionRepo) Insert(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, student_id, service, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, t.ID, t.StudentID, t.Service, t.Amount, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// List returns the newest journal rows joined with student names.
func (r *TransactionRepo) List(ctx context.Context, limit int) ([]ports.TransactionListItem, error) {
	query := `SELECT t.id, t.student_id, t.service, t.amount, t.created_at, s.name
		FROM transactions t
		JOIN students s ON s.id = t.student_id
		ORDER BY t.created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var items []ports.TransactionListItem
	for rows.Next() {
		var item ports.TransactionListItem
		t := &item.Transaction
		if err := rows.Scan(&t.ID, &t.StudentID, &t.Service, &t.Amount, &t.CreatedAt, &item.StudentName); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return items, nil
}
