package models

import (
	"time"

	"gorm.io/datatypes"
)

// RefreshTokenModel represents the database persistence model for refresh
// tokens. Rows are never deleted; revocation is a timestamp.
type RefreshTokenModel struct {
	Token      string `gorm:"primarykey;size:36"`
	WorkerID   string `gorm:"size:36;not null;index"`
	DeviceInfo datatypes.JSON
	IssuedAt   time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
