package usecases

import (
	"context"
	"fmt"

	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

type RefreshAccessTokenCommand struct {
	RefreshToken string
}

type RefreshAccessTokenResult struct {
	AccessToken string
	ExpiresIn   int64
}

// RefreshAccessTokenUseCase exchanges a refresh token for a new access token.
// Refresh tokens are not rotated on use; revocation and expiry are checked on
// every exchange.
type RefreshAccessTokenUseCase struct {
	workerRepo  worker.Repository
	refreshRepo worker.RefreshTokenRepository
	tokenIssuer AccessTokenIssuer
	logger      logger.Interface
}

func NewRefreshAccessTokenUseCase(
	workerRepo worker.Repository,
	refreshRepo worker.RefreshTokenRepository,
	tokenIssuer AccessTokenIssuer,
	logger logger.Interface,
) *RefreshAccessTokenUseCase {
	return &RefreshAccessTokenUseCase{
		workerRepo:  workerRepo,
		refreshRepo: refreshRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

func (uc *RefreshAccessTokenUseCase) Execute(ctx context.Context, cmd RefreshAccessTokenCommand) (*RefreshAccessTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewInvalidCredentialError()
	}

	token, err := uc.refreshRepo.GetByToken(ctx, cmd.RefreshToken)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialError()
		}
		uc.logger.Errorw("failed to get refresh token", "error", err)
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if !token.IsUsable() {
		uc.logger.Infow("refresh rejected",
			"worker_id", token.WorkerID,
			"revoked", token.IsRevoked(),
			"expired", token.IsExpired())
		return nil, errors.NewInvalidCredentialError()
	}

	w, err := uc.workerRepo.GetByID(ctx, token.WorkerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialError()
		}
		uc.logger.Errorw("failed to get worker", "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	// A refresh token outlives an admin blocking or deactivating the worker,
	// so the status is re-checked on every exchange.
	if w.Status == worker.StatusBlocked || w.Status == worker.StatusInactive {
		uc.logger.Infow("refresh rejected for gated worker",
			"worker_id", w.ID,
			"status", w.Status)
		return nil, errors.NewWorkerNotActiveError(w.Status.String(), w.Status.GateMessage())
	}

	accessToken, err := uc.tokenIssuer.Generate(w.ID, w.Role)
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &RefreshAccessTokenResult{
		AccessToken: accessToken,
		ExpiresIn:   int64(uc.tokenIssuer.AccessExpMinutes()) * 60,
	}, nil
}
