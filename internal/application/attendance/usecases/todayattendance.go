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

type TodayAttendanceQuery struct {
	WorkerID string
}

type TodayAttendanceResult struct {
	WorkDate string
	State    attendance.State
	// Record is nil when the worker has not checked in on this work date.
	Record *attendance.Record
}

// TodayAttendanceUseCase reports the worker's ledger state for the current
// work date. The work date, not the calendar date, frames the answer: at 2am
// on a site with a 4am boundary this still reports yesterday's shift.
type TodayAttendanceUseCase struct {
	workerRepo     worker.Repository
	siteRepo       site.Repository
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewTodayAttendanceUseCase(
	workerRepo worker.Repository,
	siteRepo site.Repository,
	attendanceRepo attendance.Repository,
	logger logger.Interface,
) *TodayAttendanceUseCase {
	return &TodayAttendanceUseCase{
		workerRepo:     workerRepo,
		siteRepo:       siteRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *TodayAttendanceUseCase) Execute(ctx context.Context, query TodayAttendanceQuery) (*TodayAttendanceResult, error) {
	w, err := uc.workerRepo.GetByID(ctx, query.WorkerID)
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

	workDate := attendance.ResolveWorkDate(biztime.NowUTC(), s.WorkDayStartHour)

	record, err := uc.attendanceRepo.GetForWorkDate(ctx, s.ID, w.ID, workDate)
	if err != nil {
		uc.logger.Errorw("failed to get attendance record", "error", err)
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &TodayAttendanceResult{
		WorkDate: attendance.FormatWorkDate(workDate),
		State:    record.State(),
		Record:   record,
	}, nil
}
