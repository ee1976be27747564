package mappers

import (
	"gorm.io/datatypes"

	"tongpass/internal/domain/worker"
	"tongpass/internal/infrastructure/persistence/models"
)

// RefreshTokenMapper handles the conversion between RefreshToken domain entities and persistence models.
type RefreshTokenMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *worker.RefreshToken) *models.RefreshTokenModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.RefreshTokenModel) *worker.RefreshToken
}

// RefreshTokenMapperImpl is the concrete implementation of RefreshTokenMapper.
type RefreshTokenMapperImpl struct{}

// NewRefreshTokenMapper creates a new RefreshTokenMapper.
func NewRefreshTokenMapper() RefreshTokenMapper {
	return &RefreshTokenMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *RefreshTokenMapperImpl) ToModel(entity *worker.RefreshToken) *models.RefreshTokenModel {
	if entity == nil {
		return nil
	}

	var deviceInfo datatypes.JSON
	if entity.DeviceInfo != "" {
		deviceInfo = datatypes.JSON(entity.DeviceInfo)
	}

	return &models.RefreshTokenModel{
		Token:      entity.Token,
		WorkerID:   entity.WorkerID,
		DeviceInfo: deviceInfo,
		IssuedAt:   entity.IssuedAt,
		ExpiresAt:  entity.ExpiresAt,
		RevokedAt:  entity.RevokedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *RefreshTokenMapperImpl) ToDomain(model *models.RefreshTokenModel) *worker.RefreshToken {
	if model == nil {
		return nil
	}
	return &worker.RefreshToken{
		Token:      model.Token,
		WorkerID:   model.WorkerID,
		DeviceInfo: string(model.DeviceInfo),
		IssuedAt:   model.IssuedAt,
		ExpiresAt:  model.ExpiresAt,
		RevokedAt:  model.RevokedAt,
	}
}
