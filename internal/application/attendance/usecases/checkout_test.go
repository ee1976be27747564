package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/errors"
)

func openRecord() *attendance.Record {
	return &attendance.Record{
		ID:          7,
		SiteID:      1,
		WorkerID:    "worker-1",
		WorkDate:    attendance.ResolveWorkDate(biztime.NowUTC(), 4),
		CheckInTime: biztime.NowUTC().Add(-9 * time.Hour),
	}
}

func TestCheckOut_Success(t *testing.T) {
	record := openRecord()
	var closedID uint
	attRepo := &mockAttendanceRepository{
		GetForWorkDateFunc: func(ctx context.Context, siteID uint, workerID string, workDate time.Time) (*attendance.Record, error) {
			return record, nil
		},
		CloseManualFunc: func(ctx context.Context, recordID uint, checkOut time.Time) (bool, error) {
			closedID = recordID
			return true, nil
		},
	}
	workerRepo, siteRepo := checkInDeps(activeWorker(), testSite(), attRepo)

	uc := NewCheckOutUseCase(workerRepo, siteRepo, attRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckOutCommand{WorkerID: "worker-1"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), closedID)
	assert.Equal(t, attendance.StateCheckedOut, result.Record.State())
	assert.False(t, result.Record.IsAutoOut)
}

func TestCheckOut_NotCheckedIn(t *testing.T) {
	attRepo := &mockAttendanceRepository{
		GetForWorkDateFunc: func(ctx context.Context, siteID uint, workerID string, workDate time.Time) (*attendance.Record, error) {
			return nil, nil
		},
	}
	workerRepo, siteRepo := checkInDeps(activeWorker(), testSite(), attRepo)

	uc := NewCheckOutUseCase(workerRepo, siteRepo, attRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CheckOutCommand{WorkerID: "worker-1"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCheckOut_AlreadyClosedManually(t *testing.T) {
	record := openRecord()
	out := record.CheckInTime.Add(8 * time.Hour)
	record.CheckOutTime = &out

	attRepo := &mockAttendanceRepository{
		GetForWorkDateFunc: func(ctx context.Context, siteID uint, workerID string, workDate time.Time) (*attendance.Record, error) {
			return record, nil
		},
		CloseManualFunc: func(ctx context.Context, recordID uint, checkOut time.Time) (bool, error) {
			t.Fatal("storage must not be touched for a manually closed record")
			return false, nil
		},
	}
	workerRepo, siteRepo := checkInDeps(activeWorker(), testSite(), attRepo)

	uc := NewCheckOutUseCase(workerRepo, siteRepo, attRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CheckOutCommand{WorkerID: "worker-1"})
	require.Error(t, err)
	assert.True(t, errors.IsLedgerConflict(err))
}

func TestCheckOut_OverridesAutoClose(t *testing.T) {
	record := openRecord()
	out := record.CheckInTime.Add(8 * time.Hour)
	record.CheckOutTime = &out
	record.IsAutoOut = true

	attRepo := &mockAttendanceRepository{
		GetForWorkDateFunc: func(ctx context.Context, siteID uint, workerID string, workDate time.Time) (*attendance.Record, error) {
			return record, nil
		},
		CloseManualFunc: func(ctx context.Context, recordID uint, checkOut time.Time) (bool, error) {
			return true, nil
		},
	}
	workerRepo, siteRepo := checkInDeps(activeWorker(), testSite(), attRepo)

	uc := NewCheckOutUseCase(workerRepo, siteRepo, attRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CheckOutCommand{WorkerID: "worker-1"})
	require.NoError(t, err)
	assert.False(t, result.Record.IsAutoOut)
}

func TestCheckOut_ConcurrentCloseLoses(t *testing.T) {
	attRepo := &mockAttendanceRepository{
		GetForWorkDateFunc: func(ctx context.Context, siteID uint, workerID string, workDate time.Time) (*attendance.Record, error) {
			return openRecord(), nil
		},
		CloseManualFunc: func(ctx context.Context, recordID uint, checkOut time.Time) (bool, error) {
			// Another request closed the row between our read and write.
			return false, nil
		},
	}
	workerRepo, siteRepo := checkInDeps(activeWorker(), testSite(), attRepo)

	uc := NewCheckOutUseCase(workerRepo, siteRepo, attRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CheckOutCommand{WorkerID: "worker-1"})
	require.Error(t, err)
	assert.True(t, errors.IsLedgerConflict(err))
}
