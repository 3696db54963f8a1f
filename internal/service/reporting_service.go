package service

import (
	"context"
	"fmt"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"
	"campus-tap-engine/pkg/apperror"
)

const defaultTransactionLimit = 100

// ReportingServiceImpl implements ports.ReportingService: the read-only
// views behind the admin dashboard. No method here mutates state.
type ReportingServiceImpl struct {
	studentRepo    ports.StudentRepository
	policyRepo     ports.PolicyRepository
	txRepo         ports.TransactionRepository
	attendanceRepo ports.AttendanceRepository
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(
	studentRepo ports.StudentRepository,
	policyRepo ports.PolicyRepository,
	txRepo ports.TransactionRepository,
	attendanceRepo ports.AttendanceRepository,
) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		studentRepo:    studentRepo,
		policyRepo:     policyRepo,
		txRepo:         txRepo,
		attendanceRepo: attendanceRepo,
	}
}

// ListStudents returns the roster with each student's last attendance.
func (s *ReportingServiceImpl) ListStudents(ctx context.Context) ([]ports.StudentSummary, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list students: %w", err))
	}
	return students, nil
}

// GetStudentByCard returns one student with their last attendance.
func (s *ReportingServiceImpl) GetStudentByCard(ctx context.Context, cardUID string) (*ports.StudentSummary, error) {
	student, err := s.studentRepo.GetByCardUID(ctx, cardUID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get student by card: %w", err))
	}
	if student == nil {
		return nil, apperror.ErrNotFound("Student")
	}

	// The roster query already carries last attendance; reuse it for the
	// single-student view rather than adding a second join query.
	summaries, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list students: %w", err))
	}
	for i := range summaries {
		if summaries[i].Student.ID == student.ID {
			return &summaries[i], nil
		}
	}
	return &ports.StudentSummary{Student: *student}, nil
}

// ListTransactions returns the latest journal rows with student names.
// limit <= 0 applies the default of 100.
func (s *ReportingServiceImpl) ListTransactions(ctx context.Context, limit int) ([]ports.TransactionListItem, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	items, err := s.txRepo.List(ctx, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list transactions: %w", err))
	}
	return items, nil
}

// ListAttendance returns presence events filtered by academic attributes.
func (s *ReportingServiceImpl) ListAttendance(ctx context.Context, filter ports.AttendanceFilter) ([]ports.AttendanceListItem, error) {
	items, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list attendance: %w", err))
	}
	return items, nil
}

// ListPolicies returns the stored policy table, or the built-in defaults
// when the table is empty or unreachable.
func (s *ReportingServiceImpl) ListPolicies(ctx context.Context) ([]domain.Policy, error) {
	policies, err := s.policyRepo.List(ctx)
	if err != nil || len(policies) == 0 {
		return domain.DefaultPolicies(), nil
	}
	return policies, nil
}

var _ ports.ReportingService = (*ReportingServiceImpl)(nil)
