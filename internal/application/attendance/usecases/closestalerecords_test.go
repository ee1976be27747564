package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/domain/site"
	"tongpass/internal/shared/biztime"
)

func TestCloseStaleRecords_ClosesAtPolicyTime(t *testing.T) {
	now := biztime.NowUTC()
	stale := &attendance.Record{
		ID:          1,
		SiteID:      1,
		WorkerID:    "worker-1",
		CheckInTime: now.Add(-10 * time.Hour),
	}

	siteRepo := &mockSiteRepository{
		ListAutoCheckoutFunc: func(ctx context.Context) ([]*site.Site, error) {
			return []*site.Site{{ID: 1, CheckoutPolicyRaw: "AUTO_8H"}}, nil
		},
	}

	var closedAt time.Time
	var autoFlag bool
	attRepo := &mockAttendanceRepository{
		ListOpenBeforeFunc: func(ctx context.Context, siteID uint, cutoff time.Time) ([]*attendance.Record, error) {
			// The cutoff is now minus the shift length.
			assert.WithinDuration(t, now.Add(-8*time.Hour), cutoff, time.Minute)
			return []*attendance.Record{stale}, nil
		},
		CloseFunc: func(ctx context.Context, recordID uint, checkOut time.Time, isAutoOut bool) (bool, error) {
			closedAt = checkOut
			autoFlag = isAutoOut
			return true, nil
		},
	}

	uc := NewCloseStaleRecordsUseCase(siteRepo, attRepo, &mockLogger{})

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, autoFlag)
	// Check-out is stamped at check-in plus the shift, not at sweep time.
	assert.Equal(t, stale.CheckInTime.Add(8*time.Hour), closedAt)
}

func TestCloseStaleRecords_AlreadyClosedNotCounted(t *testing.T) {
	siteRepo := &mockSiteRepository{
		ListAutoCheckoutFunc: func(ctx context.Context) ([]*site.Site, error) {
			return []*site.Site{{ID: 1, CheckoutPolicyRaw: "AUTO_8H"}}, nil
		},
	}
	attRepo := &mockAttendanceRepository{
		ListOpenBeforeFunc: func(ctx context.Context, siteID uint, cutoff time.Time) ([]*attendance.Record, error) {
			return []*attendance.Record{{ID: 1, SiteID: 1, CheckInTime: biztime.NowUTC().Add(-10 * time.Hour)}}, nil
		},
		CloseFunc: func(ctx context.Context, recordID uint, checkOut time.Time, isAutoOut bool) (bool, error) {
			// A concurrent sweep or a manual check-out got there first.
			return false, nil
		},
	}

	uc := NewCloseStaleRecordsUseCase(siteRepo, attRepo, &mockLogger{})

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCloseStaleRecords_SkipsBrokenPolicy(t *testing.T) {
	siteRepo := &mockSiteRepository{
		ListAutoCheckoutFunc: func(ctx context.Context) ([]*site.Site, error) {
			return []*site.Site{
				{ID: 1, CheckoutPolicyRaw: "AUTO_XH"},
				{ID: 2, CheckoutPolicyRaw: "AUTO_8H"},
			}, nil
		},
	}
	attRepo := &mockAttendanceRepository{
		ListOpenBeforeFunc: func(ctx context.Context, siteID uint, cutoff time.Time) ([]*attendance.Record, error) {
			assert.Equal(t, uint(2), siteID, "broken site must be skipped")
			return nil, nil
		},
	}

	uc := NewCloseStaleRecordsUseCase(siteRepo, attRepo, &mockLogger{})

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
