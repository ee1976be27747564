package models

import "time"

// SiteModel represents the database persistence model for sites. The wider
// administration product owns these rows; this service only reads the policy
// columns.
type SiteModel struct {
	ID                 uint   `gorm:"primarykey"`
	Name               string `gorm:"size:100;not null"`
	WorkDayStartHour   int    `gorm:"not null;default:4"`
	CheckoutPolicy     string `gorm:"size:20;not null;default:MANUAL"`
	AutoCheckoutHours  int    `gorm:"not null;default:8"`
	SeniorAgeThreshold int    `gorm:"not null;default:65"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (SiteModel) TableName() string {
	return "sites"
}
