package usecases

import (
	"context"
	"fmt"
	"time"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/domain/site"
	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/constants"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

// CheckInWithQRCommand carries the scanned token exactly as the admin device
// received it, plus the site the scanner is stationed at. The ledger row is
// keyed on the scanned site, not the worker's profile site.
type CheckInWithQRCommand struct {
	SiteID uint
	Token  *attendance.Token
}

type CheckInResult struct {
	Record   *attendance.Record
	WorkDate string
}

// CheckInWithQRUseCase is the admin-side scan flow: verify the token, gate on
// worker status, resolve the work date and open a ledger row. The ledger's
// unique key decides concurrent duplicates, not this code.
type CheckInWithQRUseCase struct {
	workerRepo     worker.Repository
	siteRepo       site.Repository
	attendanceRepo attendance.Repository
	tokenService   attendance.TokenService
	logger         logger.Interface
}

func NewCheckInWithQRUseCase(
	workerRepo worker.Repository,
	siteRepo site.Repository,
	attendanceRepo attendance.Repository,
	tokenService attendance.TokenService,
	logger logger.Interface,
) *CheckInWithQRUseCase {
	return &CheckInWithQRUseCase{
		workerRepo:     workerRepo,
		siteRepo:       siteRepo,
		attendanceRepo: attendanceRepo,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (uc *CheckInWithQRUseCase) Execute(ctx context.Context, cmd CheckInWithQRCommand) (*CheckInResult, error) {
	if err := uc.tokenService.Verify(cmd.Token); err != nil {
		// Low severity: usually clock skew or a stale client, not an
		// attack.
		uc.logger.Debugw("attendance token rejected", "error", err)
		return nil, err
	}

	return openLedgerRow(ctx, ledgerDeps{
		workerRepo:     uc.workerRepo,
		siteRepo:       uc.siteRepo,
		attendanceRepo: uc.attendanceRepo,
		logger:         uc.logger,
	}, cmd.Token.WorkerID, cmd.SiteID)
}

// SelfCheckInCommand is the worker-initiated path for sites that allow
// checking in from the worker's own authenticated device.
type SelfCheckInCommand struct {
	WorkerID string
}

type SelfCheckInUseCase struct {
	workerRepo     worker.Repository
	siteRepo       site.Repository
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewSelfCheckInUseCase(
	workerRepo worker.Repository,
	siteRepo site.Repository,
	attendanceRepo attendance.Repository,
	logger logger.Interface,
) *SelfCheckInUseCase {
	return &SelfCheckInUseCase{
		workerRepo:     workerRepo,
		siteRepo:       siteRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *SelfCheckInUseCase) Execute(ctx context.Context, cmd SelfCheckInCommand) (*CheckInResult, error) {
	return openLedgerRow(ctx, ledgerDeps{
		workerRepo:     uc.workerRepo,
		siteRepo:       uc.siteRepo,
		attendanceRepo: uc.attendanceRepo,
		logger:         uc.logger,
	}, cmd.WorkerID, 0)
}

type ledgerDeps struct {
	workerRepo     worker.Repository
	siteRepo       site.Repository
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

// openLedgerRow is the shared tail of both check-in paths. A zero siteID
// falls back to the worker's profile site; the scan path passes the site the
// scanner belongs to.
func openLedgerRow(ctx context.Context, deps ledgerDeps, workerID string, siteID uint) (*CheckInResult, error) {
	w, err := deps.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		deps.logger.Errorw("failed to get worker", "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	if !w.Status.CanCheckIn() {
		return nil, errors.NewWorkerNotActiveError(w.Status.String(), w.Status.GateMessage())
	}

	if siteID == 0 {
		siteID = w.SiteID
	}
	s, err := deps.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			deps.logger.Errorw("check-in references missing site",
				"worker_id", w.ID,
				"site_id", siteID)
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	now := biztime.NowUTC()
	workDate := attendance.ResolveWorkDate(now, s.WorkDayStartHour)

	record, err := attendance.NewRecord(s.ID, w.ID, workDate, now, buildSnapshot(w, workDate, s.SeniorAgeThreshold))
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance record: %w", err)
	}

	if err := deps.attendanceRepo.Create(ctx, record); err != nil {
		// AlreadyCheckedIn is a normal concurrent outcome, not an
		// application error.
		if !errors.IsLedgerConflict(err) {
			deps.logger.Errorw("failed to create attendance record", "error", err)
		}
		return nil, err
	}

	deps.logger.Infow("worker checked in",
		"worker_id", w.ID,
		"site_id", s.ID,
		"work_date", attendance.FormatWorkDate(workDate))

	return &CheckInResult{
		Record:   record,
		WorkDate: attendance.FormatWorkDate(workDate),
	}, nil
}

// buildSnapshot captures the worker attributes as of the work date. The
// snapshot is stored on the row and never recomputed, so a birthday or role
// change later does not rewrite history.
func buildSnapshot(w *worker.Worker, workDate time.Time, seniorAge int) attendance.Snapshot {
	if seniorAge <= 0 {
		seniorAge = constants.DefaultSeniorAge
	}

	snap := attendance.Snapshot{
		WorkerName: w.Name,
		Role:       w.Role,
		BirthDate:  w.BirthDate,
	}
	if age, ok := w.AgeOn(workDate); ok {
		snap.Age = &age
		snap.IsSenior = age >= seniorAge
	}
	return snap
}
