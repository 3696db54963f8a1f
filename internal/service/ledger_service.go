package service

import (
	"context"
	"fmt"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"
	"campus-tap-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.Ledger on top of the conditional
// balance update and the transaction journal.
type LedgerServiceImpl struct {
	studentRepo ports.StudentRepository
	txRepo      ports.TransactionRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	studentRepo ports.StudentRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		studentRepo: studentRepo,
		txRepo:      txRepo,
		transactor:  transactor,
		log:         log,
	}
}

// Debit atomically charges a student's wallet and journals the charge.
// The conditional UPDATE checks and decrements the stored balance in one
// statement; its RETURNING value is the authoritative new balance. When
// the condition fails (a concurrent tap drained the balance after the
// evaluator's read) the transaction rolls back with no journal row and
// ok=false is returned without an error.
func (s *LedgerServiceImpl) Debit(ctx context.Context, studentID uuid.UUID, amount int64, serviceName string) (int64, bool, error) {
	if amount <= 0 {
		return 0, false, apperror.InternalError(fmt.Errorf("debit amount must be positive, got %d", amount))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	newBalance, ok, err := s.studentRepo.ConditionalDebit(ctx, dbTx, studentID, amount)
	if err != nil {
		return 0, false, apperror.ErrDatabaseError(fmt.Errorf("conditional debit: %w", err))
	}
	if !ok {
		// Lost the race: balance no longer covers the amount. Rollback via
		// defer; no journal row is written.
		s.log.Warn().
			Str("student_id", studentID.String()).
			Int64("amount", amount).
			Str("service", serviceName).
			Msg("conditional debit rejected, balance changed since permission check")
		return 0, false, nil
	}

	txn := domain.NewTransaction(studentID, serviceName, amount)
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return 0, false, apperror.ErrDatabaseError(fmt.Errorf("journal debit: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, false, apperror.ErrDatabaseError(fmt.Errorf("commit debit: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("student_id", studentID.String()).
		Str("service", serviceName).
		Int64("amount", amount).
		Int64("new_balance", newBalance).
		Msg("wallet debited")

	return newBalance, true, nil
}

// RecordFreeAccess journals a no-charge service access so free and paid
// accesses share one auditable journal. It never touches the balance.
func (s *LedgerServiceImpl) RecordFreeAccess(ctx context.Context, studentID uuid.UUID, serviceName string) error {
	txn := domain.NewTransaction(studentID, serviceName, 0)
	if err := s.txRepo.Insert(ctx, txn); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("journal free access: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("student_id", studentID.String()).
		Str("service", serviceName).
		Msg("free access journaled")

	return nil
}
