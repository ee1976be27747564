package models

import (
	"time"

	"gorm.io/datatypes"
)

// AttendanceModel represents the database persistence model for attendance
// records. The (site_id, worker_id, work_date) unique index is the arbiter
// for concurrent check-ins; the repository maps its violation to a typed
// conflict error.
type AttendanceModel struct {
	ID           uint           `gorm:"primarykey"`
	SiteID       uint           `gorm:"not null;uniqueIndex:uq_attendance_site_worker_date,priority:1"`
	WorkerID     string         `gorm:"size:36;not null;uniqueIndex:uq_attendance_site_worker_date,priority:2;index"`
	WorkDate     datatypes.Date `gorm:"not null;uniqueIndex:uq_attendance_site_worker_date,priority:3"`
	WorkerName   string         `gorm:"size:100;not null"`
	Role         string         `gorm:"size:20"`
	BirthDate    *datatypes.Date
	Age          *int
	IsSenior     bool      `gorm:"not null;default:false"`
	CheckInTime  time.Time `gorm:"not null"`
	CheckOutTime *time.Time
	IsAutoOut    bool `gorm:"not null;default:false"`
	HasAccident  bool `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AttendanceModel) TableName() string {
	return "attendance_records"
}
