package service

import (
	"context"
	"fmt"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"
	"campus-tap-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// TapServiceImpl is the tap orchestrator. It sequences identity
// resolution, service classification, permission evaluation and the
// ledger/attendance writes into one request cycle. Control never flows
// backward: each stage either halts with a terminal outcome or passes
// forward.
type TapServiceImpl struct {
	studentRepo    ports.StudentRepository
	catalog        ports.PolicyCatalog
	ledger         ports.Ledger
	attendanceRepo ports.AttendanceRepository
	log            zerolog.Logger
}

// NewTapService creates a new TapServiceImpl.
func NewTapService(
	studentRepo ports.StudentRepository,
	catalog ports.PolicyCatalog,
	ledger ports.Ledger,
	attendanceRepo ports.AttendanceRepository,
	log zerolog.Logger,
) *TapServiceImpl {
	return &TapServiceImpl{
		studentRepo:    studentRepo,
		catalog:        catalog,
		ledger:         ledger,
		attendanceRepo: attendanceRepo,
		log:            log,
	}
}

// ProcessTap runs one tap through the state machine:
//
//	Start -> IdentityResolved -> ServiceClassified -> {Attendance | Payment} -> Outcome
//
// Business denials come back as TapOutcome variants; a non-nil error
// means an infrastructure fault the caller may retry.
func (s *TapServiceImpl) ProcessTap(ctx context.Context, req ports.TapRequest) (*domain.TapOutcome, error) {
	if req.CardUID == "" {
		return nil, apperror.ErrMissingField("card_uid")
	}
	if req.Service == "" {
		return nil, apperror.ErrMissingField("service")
	}

	student, err := s.studentRepo.GetByCardUID(ctx, req.CardUID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("resolve card %s: %w", req.CardUID, err))
	}
	if student == nil {
		s.log.Info().Str("card_uid", req.CardUID).Str("service", req.Service).Msg("tap with unknown card")
		return domain.CardUnknownOutcome(req.Service), nil
	}

	if domain.IsAttendance(req.Service) {
		return s.attendancePath(ctx, student, req.Context), nil
	}
	return s.paymentPath(ctx, student, req.Service)
}

// attendancePath marks presence. It never reads policies and never
// touches the wallet; the balance on the outcome is display-only.
func (s *TapServiceImpl) attendancePath(ctx context.Context, student *domain.Student, tapContext string) *domain.TapOutcome {
	if !student.IsActive() {
		return domain.AccountInactiveOutcome(student, domain.ServiceAttendance)
	}

	rec := domain.NewAttendanceRecord(student.ID, tapContext)
	if err := s.attendanceRepo.Append(ctx, rec); err != nil {
		// Reported in-band: attendance store trouble fails this tap but
		// nothing else, and no other subsystem was touched.
		s.log.Error().Err(err).Str("student_id", student.ID.String()).Msg("attendance append failed")
		return domain.AttendanceFailedOutcome(student)
	}

	s.log.Info().
		Str("student_id", student.ID.String()).
		Str("context", rec.Context).
		Time("marked_at", rec.CreatedAt).
		Msg("attendance marked")

	return domain.AttendanceMarkedOutcome(student, rec.CreatedAt)
}

// paymentPath resolves the policy, evaluates permission and settles
// through the ledger.
func (s *TapServiceImpl) paymentPath(ctx context.Context, student *domain.Student, serviceName string) (*domain.TapOutcome, error) {
	policy, err := s.catalog.Lookup(ctx, serviceName)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("policy lookup %s: %w", serviceName, err))
	}
	if policy == nil {
		return domain.UnknownServiceOutcome(student, serviceName), nil
	}

	decision := domain.EvaluateAccess(student, policy)
	if !decision.Allowed {
		s.log.Info().
			Str("student_id", student.ID.String()).
			Str("service", serviceName).
			Str("reason", string(decision.Reason)).
			Msg("tap denied")
		return domain.DeniedOutcome(student, serviceName, decision), nil
	}

	if policy.RequiresPayment && policy.Cost > 0 {
		newBalance, ok, err := s.ledger.Debit(ctx, student.ID, policy.Cost, policy.Service)
		if err != nil {
			return nil, err
		}
		if !ok {
			// The evaluator approved on a read that went stale before the
			// atomic update ran. Distinct from InsufficientBalance.
			return domain.TransactionFailedOutcome(student, serviceName), nil
		}
		amount := policy.Cost
		return domain.ApprovedOutcome(student, serviceName, decision.Reason, &amount, newBalance), nil
	}

	// Free access: journal best-effort, never blocks the grant.
	if err := s.ledger.RecordFreeAccess(ctx, student.ID, policy.Service); err != nil {
		s.log.Warn().Err(err).
			Str("student_id", student.ID.String()).
			Str("service", serviceName).
			Msg("free access journal write failed, access still granted")
	}

	return domain.ApprovedOutcome(student, serviceName, decision.Reason, nil, student.WalletBalance), nil
}

var _ ports.TapService = (*TapServiceImpl)(nil)
