package models

import (
	"time"

	"gorm.io/datatypes"
)

// WorkerModel represents the database persistence model for workers.
type WorkerModel struct {
	ID           string `gorm:"primarykey;size:36"`
	Name         string `gorm:"size:100;not null"`
	Phone        string `gorm:"size:20;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	BirthDate    *datatypes.Date
	Role         string `gorm:"size:20;not null;default:WORKER"`
	Status       string `gorm:"size:20;not null;index"`
	SiteID       uint   `gorm:"not null;index"`
	PartnerID    *uint  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (WorkerModel) TableName() string {
	return "workers"
}
