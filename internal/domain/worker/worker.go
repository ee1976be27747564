// Package worker holds the worker identity domain model: the worker entity,
// its status value object, and the refresh-token credential entity.
package worker

import (
	"fmt"
	"time"

	"tongpass/internal/shared/biztime"
)

// Role values stored on the profile and carried in access-token claims. The
// administration console and gate scanners authenticate as ADMIN; the worker
// app as WORKER.
const (
	RoleWorker = "WORKER"
	RoleAdmin  = "ADMIN"
)

// Worker is the identity a credential or attendance token refers to. Workers
// are never hard-deleted; deactivation is a status change.
type Worker struct {
	ID           string
	Name         string
	Phone        string
	PasswordHash string
	BirthDate    *time.Time
	Role         string
	Status       Status
	SiteID       uint
	PartnerID    *uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewWorker creates a worker in PENDING state. The caller provides the
// generated id (uuid) and the already-hashed password.
func NewWorker(id, name, phone, passwordHash string, siteID uint) (*Worker, error) {
	if id == "" {
		return nil, fmt.Errorf("worker id is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}

	now := biztime.NowUTC()
	return &Worker{
		ID:           id,
		Name:         name,
		Phone:        phone,
		PasswordHash: passwordHash,
		Status:       StatusPending,
		SiteID:       siteID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AgeOn returns the worker's full age on the given date, or false when the
// birth date is unknown. The snapshot stored on an attendance record uses the
// work date as the base, so it reflects the age on that specific day.
func (w *Worker) AgeOn(date time.Time) (int, bool) {
	if w.BirthDate == nil {
		return 0, false
	}
	birth := *w.BirthDate
	age := date.Year() - birth.Year()
	if date.Month() < birth.Month() ||
		(date.Month() == birth.Month() && date.Day() < birth.Day()) {
		age--
	}
	return age, true
}

// IsSeniorOn reports whether the worker meets the senior age threshold on the
// given date. Always false when the birth date is unknown.
func (w *Worker) IsSeniorOn(date time.Time, seniorAge int) bool {
	age, ok := w.AgeOn(date)
	return ok && age >= seniorAge
}
