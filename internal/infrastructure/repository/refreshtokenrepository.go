package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tongpass/internal/domain/worker"
	"tongpass/internal/infrastructure/persistence/mappers"
	"tongpass/internal/infrastructure/persistence/models"
	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/errors"
)

type RefreshTokenRepository struct {
	db     *gorm.DB
	mapper mappers.RefreshTokenMapper
}

func NewRefreshTokenRepository(db *gorm.DB) worker.RefreshTokenRepository {
	return &RefreshTokenRepository{
		db:     db,
		mapper: mappers.NewRefreshTokenMapper(),
	}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token *worker.RefreshToken) error {
	model := r.mapper.ToModel(token)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*worker.RefreshToken, error) {
	var model models.RefreshTokenModel
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("refresh token not found")
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// Revoke stamps revoked_at on a not-yet-revoked row. Revoking an already
// revoked or unknown token is a no-op so logout stays idempotent.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).
		Model(&models.RefreshTokenModel{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("revoked_at", biztime.NowUTC()).Error
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllForWorker(ctx context.Context, workerID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.RefreshTokenModel{}).
		Where("worker_id = ? AND revoked_at IS NULL", workerID).
		Update("revoked_at", biztime.NowUTC())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
