package usecases

import (
	"context"
	"fmt"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/domain/site"
	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

type CheckOutCommand struct {
	WorkerID string
}

type CheckOutResult struct {
	Record   *attendance.Record
	WorkDate string
}

// CheckOutUseCase closes the worker's open row for the current work date. A
// row the scheduler already auto-closed is overridden with the worker's real
// check-out time; a row closed manually stays closed.
type CheckOutUseCase struct {
	workerRepo     worker.Repository
	siteRepo       site.Repository
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewCheckOutUseCase(
	workerRepo worker.Repository,
	siteRepo site.Repository,
	attendanceRepo attendance.Repository,
	logger logger.Interface,
) *CheckOutUseCase {
	return &CheckOutUseCase{
		workerRepo:     workerRepo,
		siteRepo:       siteRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *CheckOutUseCase) Execute(ctx context.Context, cmd CheckOutCommand) (*CheckOutResult, error) {
	w, err := uc.workerRepo.GetByID(ctx, cmd.WorkerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get worker", "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	s, err := uc.siteRepo.GetByID(ctx, w.SiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	now := biztime.NowUTC()
	workDate := attendance.ResolveWorkDate(now, s.WorkDayStartHour)

	record, err := uc.attendanceRepo.GetForWorkDate(ctx, s.ID, w.ID, workDate)
	if err != nil {
		uc.logger.Errorw("failed to get attendance record", "error", err)
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil {
		return nil, errors.NewNotCheckedInError()
	}

	// Domain-level validation: already manually closed rows are rejected
	// here before touching storage.
	if err := record.CheckOut(now); err != nil {
		return nil, err
	}

	closed, err := uc.attendanceRepo.CloseManual(ctx, record.ID, now)
	if err != nil {
		uc.logger.Errorw("failed to close attendance record", "error", err)
		return nil, fmt.Errorf("failed to close attendance record: %w", err)
	}
	if !closed {
		// A concurrent manual check-out won the conditional update.
		return nil, errors.NewAlreadyCheckedOutError()
	}

	uc.logger.Infow("worker checked out",
		"worker_id", w.ID,
		"site_id", s.ID,
		"work_date", attendance.FormatWorkDate(workDate))

	return &CheckOutResult{
		Record:   record,
		WorkDate: attendance.FormatWorkDate(workDate),
	}, nil
}
