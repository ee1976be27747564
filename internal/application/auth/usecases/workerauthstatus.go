package usecases

import (
	"context"
	"fmt"

	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

type WorkerAuthStatusQuery struct {
	WorkerID string
}

type WorkerAuthStatusResult struct {
	WorkerID   string
	Name       string
	Status     worker.Status
	CanCheckIn bool
	// Message is the status-specific reason shown when CanCheckIn is false.
	Message string
}

// WorkerAuthStatusUseCase reports the worker's ledger-visible status so the
// app can explain why attendance operations are unavailable before the
// worker even tries one.
type WorkerAuthStatusUseCase struct {
	workerRepo worker.Repository
	logger     logger.Interface
}

func NewWorkerAuthStatusUseCase(workerRepo worker.Repository, logger logger.Interface) *WorkerAuthStatusUseCase {
	return &WorkerAuthStatusUseCase{
		workerRepo: workerRepo,
		logger:     logger,
	}
}

func (uc *WorkerAuthStatusUseCase) Execute(ctx context.Context, query WorkerAuthStatusQuery) (*WorkerAuthStatusResult, error) {
	w, err := uc.workerRepo.GetByID(ctx, query.WorkerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get worker", "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	result := &WorkerAuthStatusResult{
		WorkerID:   w.ID,
		Name:       w.Name,
		Status:     w.Status,
		CanCheckIn: w.Status.CanCheckIn(),
	}
	if !result.CanCheckIn {
		result.Message = w.Status.GateMessage()
	}

	return result, nil
}
