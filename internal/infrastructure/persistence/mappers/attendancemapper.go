package mappers

import (
	"time"

	"gorm.io/datatypes"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/infrastructure/persistence/models"
)

// AttendanceMapper handles the conversion between attendance Record domain entities and persistence models.
type AttendanceMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *attendance.Record) *models.AttendanceModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.AttendanceModel) *attendance.Record
}

// AttendanceMapperImpl is the concrete implementation of AttendanceMapper.
type AttendanceMapperImpl struct{}

// NewAttendanceMapper creates a new AttendanceMapper.
func NewAttendanceMapper() AttendanceMapper {
	return &AttendanceMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *AttendanceMapperImpl) ToModel(entity *attendance.Record) *models.AttendanceModel {
	if entity == nil {
		return nil
	}
	return &models.AttendanceModel{
		ID:           entity.ID,
		SiteID:       entity.SiteID,
		WorkerID:     entity.WorkerID,
		WorkDate:     datatypes.Date(entity.WorkDate),
		WorkerName:   entity.WorkerName,
		Role:         entity.Role,
		BirthDate:    toDateColumn(entity.BirthDate),
		Age:          entity.Age,
		IsSenior:     entity.IsSenior,
		CheckInTime:  entity.CheckInTime,
		CheckOutTime: entity.CheckOutTime,
		IsAutoOut:    entity.IsAutoOut,
		HasAccident:  entity.HasAccident,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *AttendanceMapperImpl) ToDomain(model *models.AttendanceModel) *attendance.Record {
	if model == nil {
		return nil
	}
	return &attendance.Record{
		ID:           model.ID,
		SiteID:       model.SiteID,
		WorkerID:     model.WorkerID,
		WorkDate:     time.Time(model.WorkDate),
		WorkerName:   model.WorkerName,
		Role:         model.Role,
		BirthDate:    fromDateColumn(model.BirthDate),
		Age:          model.Age,
		IsSenior:     model.IsSenior,
		CheckInTime:  model.CheckInTime,
		CheckOutTime: model.CheckOutTime,
		IsAutoOut:    model.IsAutoOut,
		HasAccident:  model.HasAccident,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
