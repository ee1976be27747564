// Package usecases holds the credential-layer application services: login,
// refresh exchange, logout and forced re-authentication.
package usecases

import (
	"context"
	"fmt"
	"time"

	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/config"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

// AccessTokenIssuer signs short-lived access tokens. Refresh credentials are
// opaque database tokens and never go through this interface.
type AccessTokenIssuer interface {
	Generate(workerID, role string) (string, error)
	AccessExpMinutes() int
}

type LoginWorkerCommand struct {
	Phone      string
	Password   string
	DeviceInfo string
}

type LoginWorkerResult struct {
	Worker       *worker.Worker
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginWorkerUseCase struct {
	workerRepo    worker.Repository
	refreshRepo   worker.RefreshTokenRepository
	hasher        worker.PasswordHasher
	tokenIssuer   AccessTokenIssuer
	refreshConfig config.RefreshTokenConfig
	logger        logger.Interface
}

func NewLoginWorkerUseCase(
	workerRepo worker.Repository,
	refreshRepo worker.RefreshTokenRepository,
	hasher worker.PasswordHasher,
	tokenIssuer AccessTokenIssuer,
	refreshConfig config.RefreshTokenConfig,
	logger logger.Interface,
) *LoginWorkerUseCase {
	return &LoginWorkerUseCase{
		workerRepo:    workerRepo,
		refreshRepo:   refreshRepo,
		hasher:        hasher,
		tokenIssuer:   tokenIssuer,
		refreshConfig: refreshConfig,
		logger:        logger,
	}
}

// Execute authenticates the worker and issues a fresh credential pair.
// Login succeeds for any worker status; the status gate applies to
// attendance operations, not to holding a credential.
func (uc *LoginWorkerUseCase) Execute(ctx context.Context, cmd LoginWorkerCommand) (*LoginWorkerResult, error) {
	if cmd.Phone == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("phone and password are required")
	}

	w, err := uc.workerRepo.GetByPhone(ctx, cmd.Phone)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same error as a bad password so callers cannot enumerate
			// registered phone numbers.
			return nil, errors.NewInvalidCredentialError()
		}
		uc.logger.Errorw("failed to get worker by phone", "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, w.PasswordHash); err != nil {
		uc.logger.Infow("login rejected", "worker_id", w.ID)
		return nil, errors.NewInvalidCredentialError()
	}

	accessToken, err := uc.tokenIssuer.Generate(w.ID, w.Role)
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	lifetime := time.Duration(uc.refreshConfig.ExpDays) * 24 * time.Hour
	refreshToken, err := worker.NewRefreshToken(w.ID, cmd.DeviceInfo, lifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := uc.refreshRepo.Create(ctx, refreshToken); err != nil {
		uc.logger.Errorw("failed to persist refresh token", "error", err)
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	uc.logger.Infow("worker logged in", "worker_id", w.ID)

	return &LoginWorkerResult{
		Worker:       w,
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		ExpiresIn:    int64(uc.tokenIssuer.AccessExpMinutes()) * 60,
	}, nil
}
