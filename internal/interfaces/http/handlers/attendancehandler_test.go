package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tongpass/internal/application/attendance/usecases"
	"tongpass/internal/domain/attendance"
	"tongpass/internal/interfaces/http/handlers/testutil"
	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

type mockIssueTokenUC struct {
	result *usecases.IssueQRTokenResult
	err    error
}

func (m *mockIssueTokenUC) Execute(_ context.Context, _ usecases.IssueQRTokenCommand) (*usecases.IssueQRTokenResult, error) {
	return m.result, m.err
}

type mockCheckInUC struct {
	result *usecases.CheckInResult
	err    error
	cmd    usecases.CheckInWithQRCommand
}

func (m *mockCheckInUC) Execute(_ context.Context, cmd usecases.CheckInWithQRCommand) (*usecases.CheckInResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockSelfCheckInUC struct {
	result *usecases.CheckInResult
	err    error
}

func (m *mockSelfCheckInUC) Execute(_ context.Context, _ usecases.SelfCheckInCommand) (*usecases.CheckInResult, error) {
	return m.result, m.err
}

type mockCheckOutUC struct {
	result *usecases.CheckOutResult
	err    error
}

func (m *mockCheckOutUC) Execute(_ context.Context, _ usecases.CheckOutCommand) (*usecases.CheckOutResult, error) {
	return m.result, m.err
}

type mockTodayUC struct {
	result *usecases.TodayAttendanceResult
	err    error
}

func (m *mockTodayUC) Execute(_ context.Context, _ usecases.TodayAttendanceQuery) (*usecases.TodayAttendanceResult, error) {
	return m.result, m.err
}

type mockMonthlyUC struct {
	result *usecases.MonthlyAttendanceResult
	err    error
	query  usecases.MonthlyAttendanceQuery
}

func (m *mockMonthlyUC) Execute(_ context.Context, query usecases.MonthlyAttendanceQuery) (*usecases.MonthlyAttendanceResult, error) {
	m.query = query
	return m.result, m.err
}

func newAttendanceHandler(issue issueQRTokenUseCase, checkIn checkInWithQRUseCase, selfCheckIn selfCheckInUseCase,
	checkOut checkOutUseCase, today todayAttendanceUseCase, monthly monthlyAttendanceUseCase) *AttendanceHandler {
	if issue == nil {
		issue = &mockIssueTokenUC{}
	}
	if checkIn == nil {
		checkIn = &mockCheckInUC{}
	}
	if selfCheckIn == nil {
		selfCheckIn = &mockSelfCheckInUC{}
	}
	if checkOut == nil {
		checkOut = &mockCheckOutUC{}
	}
	if today == nil {
		today = &mockTodayUC{}
	}
	if monthly == nil {
		monthly = &mockMonthlyUC{}
	}
	return NewAttendanceHandler(issue, checkIn, selfCheckIn, checkOut, today, monthly, logger.NewLogger())
}

func sampleRecord() *attendance.Record {
	return &attendance.Record{
		ID:          1,
		SiteID:      1,
		WorkerID:    "worker-1",
		WorkerName:  "Kim Cheolsu",
		WorkDate:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		CheckInTime: biztime.NowUTC(),
	}
}

func TestAttendanceHandler_IssueToken(t *testing.T) {
	h := newAttendanceHandler(&mockIssueTokenUC{result: &usecases.IssueQRTokenResult{
		Token: &attendance.Token{
			WorkerID:  "worker-1",
			Timestamp: 1700000000000,
			ExpiresAt: 1700000030000,
			Signature: "abc123",
			KeyID:     "v1",
		},
		ValiditySeconds: 30,
	}}, nil, nil, nil, nil, nil)

	c, rec := testutil.NewTestContext(http.MethodPost, "/attendance/qr-token", nil)
	testutil.SetAuthContext(c, "worker-1")
	h.IssueToken(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(30), data["validity_seconds"])
	token := data["token"].(map[string]any)
	assert.Equal(t, "worker-1", token["worker_id"])
	assert.Equal(t, "v1", token["key_id"])
}

func TestAttendanceHandler_IssueTokenGated(t *testing.T) {
	h := newAttendanceHandler(&mockIssueTokenUC{
		err: errors.NewWorkerNotActiveError("BLOCKED", "access blocked, contact the administrator"),
	}, nil, nil, nil, nil, nil)

	c, rec := testutil.NewTestContext(http.MethodPost, "/attendance/qr-token", nil)
	testutil.SetAuthContext(c, "worker-1")
	h.IssueToken(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAttendanceHandler_CheckInWithQR(t *testing.T) {
	checkIn := &mockCheckInUC{result: &usecases.CheckInResult{
		Record:   sampleRecord(),
		WorkDate: "2025-06-02",
	}}
	h := newAttendanceHandler(nil, checkIn, nil, nil, nil, nil)

	c, rec := testutil.NewTestContext(http.MethodPost, "/attendance/check-in", CheckInWithQRRequest{
		SiteID:    3,
		WorkerID:  "worker-1",
		Timestamp: 1700000000000,
		ExpiresAt: 1700000030000,
		Signature: "abc123",
		KeyID:     "v1",
	})
	h.CheckInWithQR(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, checkIn.cmd.Token)
	assert.Equal(t, uint(3), checkIn.cmd.SiteID)
	assert.Equal(t, "worker-1", checkIn.cmd.Token.WorkerID)
	assert.Equal(t, "v1", checkIn.cmd.Token.KeyID)
	assert.Contains(t, rec.Body.String(), "Kim Cheolsu")
}

func TestAttendanceHandler_CheckInWithQRMissingSite(t *testing.T) {
	h := newAttendanceHandler(nil, &mockCheckInUC{}, nil, nil, nil, nil)

	c, rec := testutil.NewTestContext(http.MethodPost, "/attendance/check-in", CheckInWithQRRequest{
		WorkerID:  "worker-1",
		Timestamp: 1700000000000,
		ExpiresAt: 1700000030000,
		Signature: "abc123",
	})
	h.CheckInWithQR(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_CheckInWithQRRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"forged token", errors.NewInvalidQRTokenError(), http.StatusForbidden},
		{"expired token", errors.NewQRTokenExpiredError(), http.StatusBadRequest},
		{"already checked in", errors.NewAlreadyCheckedInError(), http.StatusConflict},
		{"completed day", errors.NewAlreadyCheckedOutError(), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAttendanceHandler(nil, &mockCheckInUC{err: tt.err}, nil, nil, nil, nil)

			c, rec := testutil.NewTestContext(http.MethodPost, "/attendance/check-in", CheckInWithQRRequest{
				SiteID:    1,
				WorkerID:  "worker-1",
				Timestamp: 1700000000000,
				ExpiresAt: 1700000030000,
				Signature: "abc123",
			})
			h.CheckInWithQR(c)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestAttendanceHandler_CheckOut(t *testing.T) {
	record := sampleRecord()
	out := biztime.NowUTC()
	record.CheckOutTime = &out

	h := newAttendanceHandler(nil, nil, nil, &mockCheckOutUC{result: &usecases.CheckOutResult{
		Record:   record,
		WorkDate: "2025-06-02",
	}}, nil, nil)

	c, rec := testutil.NewTestContext(http.MethodPost, "/attendance/check-out", nil)
	testutil.SetAuthContext(c, "worker-1")
	h.CheckOut(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	recordData := body["data"].(map[string]any)["record"].(map[string]any)
	assert.Equal(t, string(attendance.StateCheckedOut), recordData["state"])
}

func TestAttendanceHandler_CheckOutWorker(t *testing.T) {
	record := sampleRecord()
	out := biztime.NowUTC()
	record.CheckOutTime = &out

	h := newAttendanceHandler(nil, nil, nil, &mockCheckOutUC{result: &usecases.CheckOutResult{
		Record:   record,
		WorkDate: "2025-06-02",
	}}, nil, nil)

	c, rec := testutil.NewTestContext(http.MethodPost, "/attendance/check-out", CheckOutWorkerRequest{
		WorkerID: "worker-1",
	})
	h.CheckOutWorker(c)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttendanceHandler_CheckOutNotCheckedIn(t *testing.T) {
	h := newAttendanceHandler(nil, nil, nil, &mockCheckOutUC{err: errors.NewNotCheckedInError()}, nil, nil)

	c, rec := testutil.NewTestContext(http.MethodPost, "/attendance/check-out", nil)
	testutil.SetAuthContext(c, "worker-1")
	h.CheckOut(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_TodayNotCheckedIn(t *testing.T) {
	h := newAttendanceHandler(nil, nil, nil, nil, &mockTodayUC{result: &usecases.TodayAttendanceResult{
		WorkDate: "2025-06-02",
		State:    attendance.StateNotCheckedIn,
	}}, nil)

	c, rec := testutil.NewTestContext(http.MethodGet, "/attendance/today", nil)
	testutil.SetAuthContext(c, "worker-1")
	h.Today(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	assert.Equal(t, string(attendance.StateNotCheckedIn), data["state"])
	_, hasRecord := data["record"]
	assert.False(t, hasRecord)
}

func TestAttendanceHandler_Monthly(t *testing.T) {
	monthly := &mockMonthlyUC{result: &usecases.MonthlyAttendanceResult{
		Year:        2025,
		Month:       time.June,
		Records:     []*attendance.Record{sampleRecord()},
		DaysWorked:  1,
		TotalWorked: 8 * time.Hour,
	}}
	h := newAttendanceHandler(nil, nil, nil, nil, nil, monthly)

	c, rec := testutil.NewTestContext(http.MethodGet, "/worker/attendance/monthly", nil)
	testutil.SetAuthContext(c, "worker-1")
	testutil.SetQueryParams(c, map[string]string{"month": "2025-06"})
	h.Monthly(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2025, monthly.query.Year)
	assert.Equal(t, time.June, monthly.query.Month)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["days_worked"])
	assert.Equal(t, float64(480), data["total_worked_minutes"])
}

func TestAttendanceHandler_MonthlyBadQuery(t *testing.T) {
	h := newAttendanceHandler(nil, nil, nil, nil, nil, nil)

	c, rec := testutil.NewTestContext(http.MethodGet, "/worker/attendance/monthly", nil)
	testutil.SetAuthContext(c, "worker-1")
	testutil.SetQueryParams(c, map[string]string{"month": "June 2025"})
	h.Monthly(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
