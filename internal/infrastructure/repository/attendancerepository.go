package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/infrastructure/persistence/mappers"
	"tongpass/internal/infrastructure/persistence/models"
	"tongpass/internal/shared/errors"
)

type AttendanceRepository struct {
	db     *gorm.DB
	mapper mappers.AttendanceMapper
}

func NewAttendanceRepository(db *gorm.DB) attendance.Repository {
	return &AttendanceRepository{
		db:     db,
		mapper: mappers.NewAttendanceMapper(),
	}
}

// Create inserts a new open row. The (site_id, worker_id, work_date) unique
// key arbitrates concurrent check-ins: the losing insert surfaces as a ledger
// conflict, never as a second row.
func (r *AttendanceRepository) Create(ctx context.Context, record *attendance.Record) error {
	model := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return r.conflictError(ctx, record)
		}
		return fmt.Errorf("failed to create attendance record: %w", err)
	}
	record.ID = model.ID
	return nil
}

// conflictError classifies a unique-key violation by the state of the row
// that won. A still-open row means a duplicate check-in; a closed row means
// the work date is complete and cannot be reopened. The scanner shows
// different guidance for each.
func (r *AttendanceRepository) conflictError(ctx context.Context, record *attendance.Record) error {
	existing, err := r.GetForWorkDate(ctx, record.SiteID, record.WorkerID, record.WorkDate)
	if err == nil && existing != nil && existing.State() == attendance.StateCheckedOut {
		return errors.NewAlreadyCheckedOutError()
	}
	return errors.NewAlreadyCheckedInError()
}

func (r *AttendanceRepository) GetForWorkDate(ctx context.Context, siteID uint, workerID string, workDate time.Time) (*attendance.Record, error) {
	var model models.AttendanceModel
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND worker_id = ? AND work_date = ?", siteID, workerID, datatypes.Date(workDate)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// Close is a conditional update guarded by the open state. RowsAffected zero
// means another caller closed the row first (or it never existed); that is
// reported as false, not an error, so repeat closes are no-ops.
func (r *AttendanceRepository) Close(ctx context.Context, recordID uint, checkOut time.Time, isAutoOut bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.AttendanceModel{}).
		Where("id = ? AND check_out_time IS NULL", recordID).
		Updates(map[string]interface{}{
			"check_out_time": checkOut,
			"is_auto_out":    isAutoOut,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to close attendance record: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CloseManual sets the real check-out on an open row, or replaces an
// auto-stamped one. A manually closed row is left untouched, reported as
// false.
func (r *AttendanceRepository) CloseManual(ctx context.Context, recordID uint, checkOut time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.AttendanceModel{}).
		Where("id = ? AND (check_out_time IS NULL OR is_auto_out = ?)", recordID, true).
		Updates(map[string]interface{}{
			"check_out_time": checkOut,
			"is_auto_out":    false,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to close attendance record: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AttendanceRepository) ListOpenBefore(ctx context.Context, siteID uint, cutoff time.Time) ([]*attendance.Record, error) {
	var recordModels []models.AttendanceModel
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND check_out_time IS NULL AND check_in_time <= ?", siteID, cutoff).
		Order("check_in_time ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendance records: %w", err)
	}

	records := make([]*attendance.Record, len(recordModels))
	for i := range recordModels {
		records[i] = r.mapper.ToDomain(&recordModels[i])
	}
	return records, nil
}

func (r *AttendanceRepository) ListForWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]*attendance.Record, error) {
	var recordModels []models.AttendanceModel
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND work_date >= ? AND work_date <= ?", workerID, datatypes.Date(from), datatypes.Date(to)).
		Order("work_date DESC").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	records := make([]*attendance.Record, len(recordModels))
	for i := range recordModels {
		records[i] = r.mapper.ToDomain(&recordModels[i])
	}
	return records, nil
}
