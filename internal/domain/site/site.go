// Package site models the per-site attendance policy. Sites are owned by the
// out-of-scope administration product; this subsystem only reads them.
package site

import (
	"context"
	"time"

	"tongpass/internal/domain/attendance"
)

// Site carries the per-site configuration the attendance subsystem consumes.
type Site struct {
	ID                 uint
	Name               string
	WorkDayStartHour   int
	CheckoutPolicyRaw  string
	AutoHours          int
	SeniorAgeThreshold int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CheckoutPolicy parses the persisted policy string. For auto policies the
// auto_hours column is authoritative for the shift length; the hour count in
// the string only covers rows where the column was never set.
func (s *Site) CheckoutPolicy() (attendance.CheckoutPolicy, error) {
	policy, err := attendance.ParseCheckoutPolicy(s.CheckoutPolicyRaw)
	if err != nil {
		return attendance.CheckoutPolicy{}, err
	}
	if policy.IsAuto() && s.AutoHours > 0 {
		policy.Hours = s.AutoHours
	}
	return policy, nil
}

// Repository defines read access to site policy.
type Repository interface {
	// GetByID retrieves a site by id
	GetByID(ctx context.Context, id uint) (*Site, error)

	// ListAutoCheckout returns all sites whose checkout policy is AUTO_<N>H
	ListAutoCheckout(ctx context.Context) ([]*Site, error)
}
