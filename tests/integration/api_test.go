package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "campus-tap-engine/internal/adapter/http/handler"
	redisStorage "campus-tap-engine/internal/adapter/storage/redis"
	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/service"
	"campus-tap-engine/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack over in-memory repositories
// and miniredis. It exercises the real HTTP layer, middleware, handlers,
// services, and the Redis policy cache end-to-end.

type testApp struct {
	server         *httptest.Server
	redis          *miniredis.Miniredis
	studentRepo    *inMemoryStudentRepo
	policyRepo     *inMemoryPolicyRepo
	txRepo         *inMemoryTransactionRepo
	attendanceRepo *inMemoryAttendanceRepo

	active   *domain.Student
	inactive *domain.Student
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	policyCache := redisStorage.NewPolicyCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	active := &domain.Student{
		ID:            uuid.New(),
		Name:          "Yasharth Singh",
		RollNo:        "ROLL001",
		CardUID:       "RFID_001",
		WalletBalance: 30000, // Rs 300.00
		Status:        domain.StudentStatusActive,
		Academic:      domain.AcademicProfile{Branch: "CSE", Section: "A", Program: "B.Tech", Year: 3},
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	inactive := &domain.Student{
		ID:            uuid.New(),
		Name:          "Priya Sharma",
		RollNo:        "ROLL002",
		CardUID:       "RFID_002",
		WalletBalance: 1000, // Rs 10.00
		Status:        domain.StudentStatusInactive,
		Academic:      domain.AcademicProfile{Branch: "ECE", Section: "B", Program: "B.Tech", Year: 2},
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	studentRepo := newInMemoryStudentRepo()
	studentRepo.add(active)
	studentRepo.add(inactive)

	policyRepo := newInMemoryPolicyRepo()
	for _, p := range domain.DefaultPolicies() {
		policyRepo.set(p)
	}

	txRepo := newInMemoryTransactionRepo(map[uuid.UUID]string{
		active.ID:   active.Name,
		inactive.ID: inactive.Name,
	})
	attendanceRepo := newInMemoryAttendanceRepo(studentRepo)
	transactor := newInMemoryTransactor()

	log := logger.New("debug", false)
	ledger := service.NewLedgerService(studentRepo, txRepo, transactor, log)
	catalog := service.NewPolicyCatalog(policyRepo, policyCache, 5*time.Minute, log)
	tapSvc := service.NewTapService(studentRepo, catalog, ledger, attendanceRepo, log)
	reportingSvc := service.NewReportingService(studentRepo, policyRepo, txRepo, attendanceRepo)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TapSvc:         tapSvc,
		ReportingSvc:   reportingSvc,
		RateLimitStore: rateLimitStore,
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:         server,
		redis:          mr,
		studentRepo:    studentRepo,
		policyRepo:     policyRepo,
		txRepo:         txRepo,
		attendanceRepo: attendanceRepo,
		active:         active,
		inactive:       inactive,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

func (a *testApp) tap(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	resp, err := http.Post(a.server.URL+"/api/v1/tap", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestTapFlow_PaidService(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	result := app.tap(t, `{"card_uid":"RFID_001","service":"mess"}`)

	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Yasharth Singh", result["student"])
	assert.Equal(t, "Mess", result["service"])
	assert.Equal(t, "Payment Approved", result["action"])
	assert.Equal(t, 50.0, result["amount_deducted"])
	assert.Equal(t, 250.0, result["balance_remaining"])

	// The wallet was decremented and the charge journaled.
	assert.Equal(t, int64(25000), app.studentRepo.balance(app.active.ID))
	assert.Equal(t, 1, app.txRepo.count())
}

func TestTapFlow_InsufficientBalance(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Drain the wallet to Rs 10 with a custom policy read.
	app.studentRepo.mu.Lock()
	app.studentRepo.students[app.active.ID].WalletBalance = 1000
	app.studentRepo.mu.Unlock()

	result := app.tap(t, `{"card_uid":"RFID_001","service":"transport"}`)

	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Insufficient Balance", result["action"])
	assert.Equal(t, 10.0, result["balance_remaining"])
	_, hasAmount := result["amount_deducted"]
	assert.False(t, hasAmount)

	// Nothing moved, nothing journaled.
	assert.Equal(t, int64(1000), app.studentRepo.balance(app.active.ID))
	assert.Equal(t, 0, app.txRepo.count())
}

func TestTapFlow_UnknownCard(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	result := app.tap(t, `{"card_uid":"RFID_GHOST","service":"mess"}`)

	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Unknown", result["student"])
	assert.Equal(t, "Invalid Card - Identity Not Found", result["action"])
}

func TestTapFlow_InactiveAccount(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	result := app.tap(t, `{"card_uid":"RFID_002","service":"library"}`)

	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Student account is not active", result["action"])
	assert.Equal(t, int64(1000), app.studentRepo.balance(app.inactive.ID))
	assert.Equal(t, 0, app.txRepo.count())
}

func TestTapFlow_UnknownService(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	result := app.tap(t, `{"card_uid":"RFID_001","service":"gym"}`)

	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Unknown service: gym", result["action"])
	assert.Equal(t, int64(30000), app.studentRepo.balance(app.active.ID))
}

func TestTapFlow_FreeService(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	result := app.tap(t, `{"card_uid":"RFID_001","service":"library"}`)

	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Access Granted", result["action"])
	assert.Equal(t, 300.0, result["balance_remaining"])
	_, hasAmount := result["amount_deducted"]
	assert.False(t, hasAmount)

	// Free access journals a zero-amount row; balance untouched.
	assert.Equal(t, int64(30000), app.studentRepo.balance(app.active.ID))
	assert.Equal(t, 1, app.txRepo.count())
}

func TestTapFlow_Attendance(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	result := app.tap(t, `{"card_uid":"RFID_001","service":"attendance","context":"physics-lab"}`)

	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Attendance Marked", result["action"])
	assert.Equal(t, "CSE", result["branch"])
	assert.NotEmpty(t, result["attendance_timestamp"])

	// Attendance never touches wallet or journal.
	assert.Equal(t, int64(30000), app.studentRepo.balance(app.active.ID))
	assert.Equal(t, 0, app.txRepo.count())
	require.Len(t, app.attendanceRepo.records, 1)
	assert.Equal(t, "physics-lab", app.attendanceRepo.records[0].Context)
}

func TestTapFlow_AttendanceStoreDown(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.attendanceRepo.failNext = true
	result := app.tap(t, `{"card_uid":"RFID_001","service":"attendance"}`)

	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Failed to log attendance", result["action"])
	assert.Empty(t, app.attendanceRepo.records)
}

func TestAttendanceEndpoint_DefaultContext(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Post(app.server.URL+"/api/v1/attendance", "application/json",
		bytes.NewBufferString(`{"card_uid":"RFID_001"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Attendance Marked", result["action"])
	require.Len(t, app.attendanceRepo.records, 1)
	assert.Equal(t, "general", app.attendanceRepo.records[0].Context)
}

func TestReports_EndToEnd(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Generate some history.
	app.tap(t, `{"card_uid":"RFID_001","service":"mess"}`)
	app.tap(t, `{"card_uid":"RFID_001","service":"attendance"}`)

	var envelope struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}

	get := func(path string) {
		t.Helper()
		resp, err := http.Get(app.server.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		require.NotEmpty(t, envelope.RequestID)
	}

	get("/api/v1/students")
	var students []map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &students))
	assert.Len(t, students, 2)

	get("/api/v1/students?card_uid=RFID_001")
	var one map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &one))
	assert.Equal(t, "Yasharth Singh", one["name"])
	assert.Equal(t, 250.0, one["wallet_balance"])
	assert.NotEmpty(t, one["last_attendance"])

	get("/api/v1/transactions")
	var txns []map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &txns))
	require.Len(t, txns, 1)
	assert.Equal(t, "mess", txns[0]["service"])
	assert.Equal(t, 50.0, txns[0]["amount"])
	assert.Equal(t, "Yasharth Singh", txns[0]["student_name"])

	get("/api/v1/attendance?branch=CSE")
	var att []map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &att))
	require.Len(t, att, 1)
	assert.Equal(t, "ROLL001", att[0]["roll_no"])

	get("/api/v1/attendance?branch=ECE")
	require.NoError(t, json.Unmarshal(envelope.Data, &att))
	assert.Empty(t, att)

	get("/api/v1/policies")
	var policies []map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &policies))
	assert.Len(t, policies, len(domain.DefaultPolicies()))
}

func TestPolicyCache_ServesAfterStoreChanges(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// First tap populates the cache from the store.
	app.tap(t, `{"card_uid":"RFID_001","service":"mess"}`)

	// Raise the stored cost; the cached policy keeps serving until TTL.
	app.policyRepo.set(domain.Policy{Service: "mess", Cost: 9000, RequiresPayment: true})

	result := app.tap(t, `{"card_uid":"RFID_001","service":"mess"}`)
	assert.Equal(t, 50.0, result["amount_deducted"])

	// After the cache entry expires the new cost applies.
	app.redis.FastForward(6 * time.Minute)
	result = app.tap(t, `{"card_uid":"RFID_001","service":"mess"}`)
	assert.Equal(t, 90.0, result["amount_deducted"])
}

func TestTap_ValidationAndLimits(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Post(app.server.URL+"/api/v1/tap", "application/json",
		bytes.NewBufferString(`{"service":"mess"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Rate limit headers are present on tap responses.
	resp, err = http.Post(app.server.URL+"/api/v1/tap", "application/json",
		bytes.NewBufferString(`{"card_uid":"RFID_001","service":"library"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Limit"))
}
