package usecases

import (
	"context"
	"fmt"

	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

type LogoutWorkerCommand struct {
	RefreshToken string
}

// LogoutWorkerUseCase revokes a single refresh token. Logging out twice, or
// with a token that never existed, succeeds quietly.
type LogoutWorkerUseCase struct {
	refreshRepo worker.RefreshTokenRepository
	logger      logger.Interface
}

func NewLogoutWorkerUseCase(refreshRepo worker.RefreshTokenRepository, logger logger.Interface) *LogoutWorkerUseCase {
	return &LogoutWorkerUseCase{
		refreshRepo: refreshRepo,
		logger:      logger,
	}
}

func (uc *LogoutWorkerUseCase) Execute(ctx context.Context, cmd LogoutWorkerCommand) error {
	if cmd.RefreshToken == "" {
		return errors.NewValidationError("refresh token is required")
	}

	if err := uc.refreshRepo.Revoke(ctx, cmd.RefreshToken); err != nil {
		uc.logger.Errorw("failed to revoke refresh token", "error", err)
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
