package usecases

import (
	"context"
	"fmt"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/domain/site"
	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/logger"
)

// CloseStaleRecordsUseCase is the auto-checkout sweep. For every site with an
// AUTO_<N>H policy it closes open rows whose shift length has elapsed,
// stamping check-out at check-in plus the shift and flagging the row as
// auto-closed. The conditional update makes repeat and overlapping sweeps
// no-ops, so the job needs no leader election.
type CloseStaleRecordsUseCase struct {
	siteRepo       site.Repository
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewCloseStaleRecordsUseCase(
	siteRepo site.Repository,
	attendanceRepo attendance.Repository,
	logger logger.Interface,
) *CloseStaleRecordsUseCase {
	return &CloseStaleRecordsUseCase{
		siteRepo:       siteRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Execute runs one sweep and returns the number of rows closed.
func (uc *CloseStaleRecordsUseCase) Execute(ctx context.Context) (int, error) {
	sites, err := uc.siteRepo.ListAutoCheckout(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list auto-checkout sites: %w", err)
	}

	now := biztime.NowUTC()
	closedTotal := 0

	for _, s := range sites {
		policy, err := s.CheckoutPolicy()
		if err != nil {
			// A malformed policy string on one site must not stall the
			// sweep for the rest.
			uc.logger.Warnw("skipping site with invalid checkout policy",
				"site_id", s.ID,
				"policy", s.CheckoutPolicyRaw,
				"error", err)
			continue
		}
		if !policy.IsAuto() {
			continue
		}

		cutoff := now.Add(-policy.ShiftLength())
		stale, err := uc.attendanceRepo.ListOpenBefore(ctx, s.ID, cutoff)
		if err != nil {
			uc.logger.Errorw("failed to list stale records",
				"site_id", s.ID,
				"error", err)
			continue
		}

		for _, record := range stale {
			closed, err := uc.attendanceRepo.Close(ctx, record.ID, policy.AutoCheckoutTime(record.CheckInTime), true)
			if err != nil {
				uc.logger.Errorw("failed to auto-close record",
					"record_id", record.ID,
					"error", err)
				continue
			}
			if closed {
				closedTotal++
			}
		}
	}

	return closedTotal, nil
}
