package usecases

import (
	"context"
	"fmt"

	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

type RevokeAllTokensCommand struct {
	WorkerID string
}

type RevokeAllTokensResult struct {
	RevokedCount int64
}

// RevokeAllTokensUseCase is the administrator's force re-auth: every live
// refresh token of the worker is revoked at once. Outstanding access tokens
// stay valid until their short expiry.
type RevokeAllTokensUseCase struct {
	workerRepo  worker.Repository
	refreshRepo worker.RefreshTokenRepository
	logger      logger.Interface
}

func NewRevokeAllTokensUseCase(
	workerRepo worker.Repository,
	refreshRepo worker.RefreshTokenRepository,
	logger logger.Interface,
) *RevokeAllTokensUseCase {
	return &RevokeAllTokensUseCase{
		workerRepo:  workerRepo,
		refreshRepo: refreshRepo,
		logger:      logger,
	}
}

func (uc *RevokeAllTokensUseCase) Execute(ctx context.Context, cmd RevokeAllTokensCommand) (*RevokeAllTokensResult, error) {
	if cmd.WorkerID == "" {
		return nil, errors.NewValidationError("worker id is required")
	}

	// Confirm the worker exists so a typo'd id is an error, not a silent
	// zero-row update.
	if _, err := uc.workerRepo.GetByID(ctx, cmd.WorkerID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get worker", "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	count, err := uc.refreshRepo.RevokeAllForWorker(ctx, cmd.WorkerID)
	if err != nil {
		uc.logger.Errorw("failed to revoke refresh tokens", "error", err)
		return nil, fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	uc.logger.Infow("revoked all refresh tokens",
		"worker_id", cmd.WorkerID,
		"count", count)

	return &RevokeAllTokensResult{RevokedCount: count}, nil
}
