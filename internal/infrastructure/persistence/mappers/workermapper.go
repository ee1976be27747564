package mappers

import (
	"time"

	"gorm.io/datatypes"

	"tongpass/internal/domain/worker"
	"tongpass/internal/infrastructure/persistence/models"
)

// WorkerMapper handles the conversion between Worker domain entities and persistence models.
type WorkerMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *worker.Worker) *models.WorkerModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.WorkerModel) *worker.Worker
}

// WorkerMapperImpl is the concrete implementation of WorkerMapper.
type WorkerMapperImpl struct{}

// NewWorkerMapper creates a new WorkerMapper.
func NewWorkerMapper() WorkerMapper {
	return &WorkerMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *WorkerMapperImpl) ToModel(entity *worker.Worker) *models.WorkerModel {
	if entity == nil {
		return nil
	}
	return &models.WorkerModel{
		ID:           entity.ID,
		Name:         entity.Name,
		Phone:        entity.Phone,
		PasswordHash: entity.PasswordHash,
		BirthDate:    toDateColumn(entity.BirthDate),
		Role:         entity.Role,
		Status:       entity.Status.String(),
		SiteID:       entity.SiteID,
		PartnerID:    entity.PartnerID,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *WorkerMapperImpl) ToDomain(model *models.WorkerModel) *worker.Worker {
	if model == nil {
		return nil
	}

	// An unknown stored status is kept as-is; the status gate rejects it
	// downstream instead of the mapper guessing.
	status, err := worker.ParseStatus(model.Status)
	if err != nil {
		status = worker.Status(model.Status)
	}

	return &worker.Worker{
		ID:           model.ID,
		Name:         model.Name,
		Phone:        model.Phone,
		PasswordHash: model.PasswordHash,
		BirthDate:    fromDateColumn(model.BirthDate),
		Role:         model.Role,
		Status:       status,
		SiteID:       model.SiteID,
		PartnerID:    model.PartnerID,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func toDateColumn(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func fromDateColumn(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
