package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tongpass/internal/domain/worker"
	"tongpass/internal/infrastructure/persistence/mappers"
	"tongpass/internal/infrastructure/persistence/models"
	"tongpass/internal/shared/errors"
)

type WorkerRepository struct {
	db     *gorm.DB
	mapper mappers.WorkerMapper
}

func NewWorkerRepository(db *gorm.DB) worker.Repository {
	return &WorkerRepository{
		db:     db,
		mapper: mappers.NewWorkerMapper(),
	}
}

func (r *WorkerRepository) Create(ctx context.Context, w *worker.Worker) error {
	model := r.mapper.ToModel(w)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("worker with this phone already exists")
		}
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id string) (*worker.Worker, error) {
	var model models.WorkerModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("worker not found")
		}
		return nil, fmt.Errorf("failed to get worker by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *WorkerRepository) GetByPhone(ctx context.Context, phone string) (*worker.Worker, error) {
	var model models.WorkerModel
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("worker not found")
		}
		return nil, fmt.Errorf("failed to get worker by phone: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *WorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	model := r.mapper.ToModel(w)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update worker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("worker not found")
	}
	return nil
}
