package service

import (
	"context"
	"errors"
	"testing"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"
	"campus-tap-engine/internal/core/ports/mocks"
	"campus-tap-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type tapTestDeps struct {
	svc            *TapServiceImpl
	studentRepo    *mocks.MockStudentRepository
	catalog        *mocks.MockPolicyCatalog
	ledger         *mocks.MockLedger
	attendanceRepo *mocks.MockAttendanceRepository
	ctrl           *gomock.Controller
}

func setupTapService(t *testing.T) *tapTestDeps {
	ctrl := gomock.NewController(t)
	d := &tapTestDeps{
		studentRepo:    mocks.NewMockStudentRepository(ctrl),
		catalog:        mocks.NewMockPolicyCatalog(ctrl),
		ledger:         mocks.NewMockLedger(ctrl),
		attendanceRepo: mocks.NewMockAttendanceRepository(ctrl),
		ctrl:           ctrl,
	}
	d.svc = NewTapService(d.studentRepo, d.catalog, d.ledger, d.attendanceRepo, zerolog.Nop())
	return d
}

func activeStudent(balance int64) *domain.Student {
	return &domain.Student{
		ID:            uuid.New(),
		Name:          "Yasharth Singh",
		RollNo:        "ROLL001",
		CardUID:       "RFID_001",
		WalletBalance: balance,
		Status:        domain.StudentStatusActive,
		Academic:      domain.AcademicProfile{Branch: "CSE", Section: "A", Program: "B.Tech", Year: 3},
	}
}

func TestProcessTap_PaidServiceExactBalance(t *testing.T) {
	// Balance 50.00, mess costs 50.00: tap succeeds and drains the wallet.
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(5000)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.catalog.EXPECT().Lookup(ctx, "mess").Return(&domain.Policy{Service: "mess", Cost: 5000, RequiresPayment: true}, nil)
	d.ledger.EXPECT().Debit(ctx, student.ID, int64(5000), "mess").Return(int64(0), true, nil)

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "mess"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeApproved, outcome.Kind)
	assert.True(t, outcome.Success)
	assert.Equal(t, "Yasharth Singh", outcome.Student)
	assert.Equal(t, "Mess", outcome.Service)
	assert.Equal(t, "Payment Approved", outcome.Action)
	require.NotNil(t, outcome.AmountDeducted)
	assert.Equal(t, int64(5000), *outcome.AmountDeducted)
	assert.Equal(t, int64(0), outcome.BalanceRemaining)
}

func TestProcessTap_InsufficientBalance(t *testing.T) {
	// Balance 10.00, transport costs 20.00: denied before any ledger call.
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(1000)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.catalog.EXPECT().Lookup(ctx, "transport").Return(&domain.Policy{Service: "transport", Cost: 2000, RequiresPayment: true}, nil)

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "transport"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeInsufficientBalance, outcome.Kind)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Insufficient Balance", outcome.Action)
	assert.Equal(t, int64(1000), outcome.BalanceRemaining)
	assert.Nil(t, outcome.AmountDeducted)
}

func TestProcessTap_UnknownCard(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_NOPE").Return(nil, nil)

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_NOPE", Service: "mess"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeCardUnknown, outcome.Kind)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Unknown", outcome.Student)
	assert.Equal(t, "Invalid Card - Identity Not Found", outcome.Action)
}

func TestProcessTap_AttendanceMarked(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(30000)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.attendanceRepo.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			assert.Equal(t, student.ID, rec.StudentID)
			assert.Equal(t, "general", rec.Context)
			return nil
		})

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "Attendance"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeAttendanceMarked, outcome.Kind)
	assert.True(t, outcome.Success)
	assert.Equal(t, "Attendance", outcome.Service)
	assert.Equal(t, "Attendance Marked", outcome.Action)
	// Attendance never touches the wallet.
	assert.Equal(t, int64(30000), outcome.BalanceRemaining)
	require.NotNil(t, outcome.Academic)
	assert.Equal(t, "CSE", outcome.Academic.Branch)
}

func TestProcessTap_AttendanceContextPropagates(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(0)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.attendanceRepo.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			assert.Equal(t, "physics-lab", rec.Context)
			return nil
		})

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "attendance", Context: "physics-lab"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAttendanceMarked, outcome.Kind)
}

func TestProcessTap_AttendanceInactiveStudent(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(30000)
	student.Status = domain.StudentStatusInactive

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	// No attendance append, no policy lookup, no ledger call.

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "attendance"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeAccountInactive, outcome.Kind)
	assert.Equal(t, int64(30000), outcome.BalanceRemaining)
}

func TestProcessTap_AttendanceStoreFailure(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(30000)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.attendanceRepo.EXPECT().Append(ctx, gomock.Any()).Return(errors.New("attendance store down"))

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "attendance"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeAttendanceFailed, outcome.Kind)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Failed to log attendance", outcome.Action)
}

func TestProcessTap_UnknownService(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(20000)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.catalog.EXPECT().Lookup(ctx, "gym").Return(nil, nil)

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "gym"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeUnknownService, outcome.Kind)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Unknown service: gym", outcome.Action)
	assert.Equal(t, int64(20000), outcome.BalanceRemaining)
}

func TestProcessTap_InactiveStudentFreeService(t *testing.T) {
	// Inactive student on a free service: denied by status before any
	// ledger interaction, no journal row.
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(15000)
	student.Status = domain.StudentStatusInactive

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.catalog.EXPECT().Lookup(ctx, "library").Return(&domain.Policy{Service: "library", Cost: 0, RequiresPayment: false}, nil)

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "library"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeAccountInactive, outcome.Kind)
	assert.Equal(t, "Student account is not active", outcome.Action)
	assert.Equal(t, int64(15000), outcome.BalanceRemaining)
}

func TestProcessTap_FreeServiceJournaled(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(15000)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.catalog.EXPECT().Lookup(ctx, "library").Return(&domain.Policy{Service: "library", Cost: 0, RequiresPayment: false}, nil)
	d.ledger.EXPECT().RecordFreeAccess(ctx, student.ID, "library").Return(nil)

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "library"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeApproved, outcome.Kind)
	assert.Equal(t, "Access Granted", outcome.Action)
	assert.Nil(t, outcome.AmountDeducted)
	assert.Equal(t, int64(15000), outcome.BalanceRemaining)
}

func TestProcessTap_FreeServiceJournalFailureStillGrants(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(15000)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.catalog.EXPECT().Lookup(ctx, "library").Return(&domain.Policy{Service: "library", Cost: 0, RequiresPayment: false}, nil)
	d.ledger.EXPECT().RecordFreeAccess(ctx, student.ID, "library").Return(errors.New("journal down"))

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "library"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeApproved, outcome.Kind)
	assert.True(t, outcome.Success)
}

func TestProcessTap_FreeByPolicyFlagIgnoresStoredCost(t *testing.T) {
	// requires_payment=false with a non-zero stored cost never charges.
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(100)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.catalog.EXPECT().Lookup(ctx, "library").Return(&domain.Policy{Service: "library", Cost: 7500, RequiresPayment: false}, nil)
	d.ledger.EXPECT().RecordFreeAccess(ctx, student.ID, "library").Return(nil)

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "library"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeApproved, outcome.Kind)
	assert.Nil(t, outcome.AmountDeducted)
	assert.Equal(t, int64(100), outcome.BalanceRemaining)
}

func TestProcessTap_DebitRaceReportsTransactionFailed(t *testing.T) {
	// The evaluator approved on a stale read; the atomic update rejected.
	d := setupTapService(t)
	ctx := context.Background()
	student := activeStudent(5000)

	d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
	d.catalog.EXPECT().Lookup(ctx, "mess").Return(&domain.Policy{Service: "mess", Cost: 5000, RequiresPayment: true}, nil)
	d.ledger.EXPECT().Debit(ctx, student.ID, int64(5000), "mess").Return(int64(0), false, nil)

	outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "mess"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeTransactionFailed, outcome.Kind)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Transaction Failed", outcome.Action)
	assert.Equal(t, int64(5000), outcome.BalanceRemaining)
}

func TestProcessTap_InfraFaultsAreNotBusinessOutcomes(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()

	t.Run("identity store down", func(t *testing.T) {
		d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(nil, errors.New("dial tcp: refused"))

		outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "mess"})
		require.Error(t, err)
		assert.Nil(t, outcome)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "SYS_002", appErr.Code)
	})

	t.Run("ledger fault propagates", func(t *testing.T) {
		student := activeStudent(5000)
		d.studentRepo.EXPECT().GetByCardUID(ctx, "RFID_001").Return(student, nil)
		d.catalog.EXPECT().Lookup(ctx, "mess").Return(&domain.Policy{Service: "mess", Cost: 5000, RequiresPayment: true}, nil)
		d.ledger.EXPECT().Debit(ctx, student.ID, int64(5000), "mess").
			Return(int64(0), false, apperror.ErrDatabaseError(errors.New("commit failed")))

		outcome, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: "mess"})
		require.Error(t, err)
		assert.Nil(t, outcome)
	})
}

func TestProcessTap_ValidatesInput(t *testing.T) {
	d := setupTapService(t)
	ctx := context.Background()

	_, err := d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "", Service: "mess"})
	require.Error(t, err)

	_, err = d.svc.ProcessTap(ctx, ports.TapRequest{CardUID: "RFID_001", Service: ""})
	require.Error(t, err)
}
