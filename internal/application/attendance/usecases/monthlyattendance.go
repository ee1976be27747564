package usecases

import (
	"context"
	"fmt"
	"time"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

type MonthlyAttendanceQuery struct {
	WorkerID string
	Year     int
	Month    time.Month
}

type MonthlyAttendanceResult struct {
	Year    int
	Month   time.Month
	Records []*attendance.Record
	// DaysWorked counts distinct work dates with a row.
	DaysWorked int
	// TotalWorked sums closed-row durations; open rows count up to now.
	TotalWorked time.Duration
}

// MonthlyAttendanceUseCase lists a worker's ledger rows for one calendar
// month of work dates, newest first, with simple totals for the app's
// monthly view.
type MonthlyAttendanceUseCase struct {
	workerRepo     worker.Repository
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewMonthlyAttendanceUseCase(
	workerRepo worker.Repository,
	attendanceRepo attendance.Repository,
	logger logger.Interface,
) *MonthlyAttendanceUseCase {
	return &MonthlyAttendanceUseCase{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *MonthlyAttendanceUseCase) Execute(ctx context.Context, query MonthlyAttendanceQuery) (*MonthlyAttendanceResult, error) {
	if query.Year < 2000 || query.Month < time.January || query.Month > time.December {
		return nil, errors.NewValidationError("invalid year or month")
	}

	if _, err := uc.workerRepo.GetByID(ctx, query.WorkerID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get worker", "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	from := time.Date(query.Year, query.Month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := uc.attendanceRepo.ListForWorkerBetween(ctx, query.WorkerID, from, to)
	if err != nil {
		uc.logger.Errorw("failed to list attendance records", "error", err)
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	now := biztime.NowUTC()
	result := &MonthlyAttendanceResult{
		Year:       query.Year,
		Month:      query.Month,
		Records:    records,
		DaysWorked: len(records),
	}
	for _, record := range records {
		result.TotalWorked += record.WorkDuration(now)
	}

	return result, nil
}
