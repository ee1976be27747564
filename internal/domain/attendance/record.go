// Package attendance holds the attendance ledger domain: the work-date
// resolver, the per-site checkout policy, and the Record state machine.
package attendance

import (
	"fmt"
	"time"

	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/errors"
)

// State is the explicit attendance state for one (site, worker, work date).
// NotCheckedIn has no row; the other two are derived from the row's
// check-out column.
type State string

const (
	StateNotCheckedIn State = "NOT_CHECKED_IN"
	StateWorking      State = "WORKING"
	StateCheckedOut   State = "CHECKED_OUT"
)

// Record is one ledger row. The (SiteID, WorkerID, WorkDate) triple is unique;
// the storage layer enforces it so concurrent check-ins resolve to exactly one
// row. Transition methods are the only mutation path.
type Record struct {
	ID       uint
	WorkDate time.Time
	SiteID   uint
	WorkerID string

	// Snapshot taken at check-in; reflects the worker on that work date and
	// is never recomputed.
	WorkerName string
	Role       string
	BirthDate  *time.Time
	Age        *int
	IsSenior   bool

	CheckInTime  time.Time
	CheckOutTime *time.Time
	IsAutoOut    bool
	HasAccident  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot carries the worker attributes captured once at check-in.
type Snapshot struct {
	WorkerName string
	Role       string
	BirthDate  *time.Time
	Age        *int
	IsSenior   bool
}

// NewRecord opens a ledger row in the Working state.
func NewRecord(siteID uint, workerID string, workDate time.Time, checkIn time.Time, snap Snapshot) (*Record, error) {
	if siteID == 0 {
		return nil, fmt.Errorf("site id is required")
	}
	if workerID == "" {
		return nil, fmt.Errorf("worker id is required")
	}
	if workDate.IsZero() {
		return nil, fmt.Errorf("work date is required")
	}

	now := biztime.NowUTC()
	return &Record{
		WorkDate:    workDate,
		SiteID:      siteID,
		WorkerID:    workerID,
		WorkerName:  snap.WorkerName,
		Role:        snap.Role,
		BirthDate:   snap.BirthDate,
		Age:         snap.Age,
		IsSenior:    snap.IsSenior,
		CheckInTime: checkIn,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// State derives the record's state from the check-out column.
func (r *Record) State() State {
	if r == nil {
		return StateNotCheckedIn
	}
	if r.CheckOutTime == nil {
		return StateWorking
	}
	return StateCheckedOut
}

// IsOpen reports whether the record is still in the Working state.
func (r *Record) IsOpen() bool {
	return r.State() == StateWorking
}

// CheckOut closes the record at the given instant. A manual check-out of an
// auto-closed record is allowed and replaces the policy time with the real
// one; a manual check-out of a manually-closed record is rejected.
func (r *Record) CheckOut(at time.Time) error {
	if r.State() == StateCheckedOut && !r.IsAutoOut {
		return errors.NewAlreadyCheckedOutError()
	}

	checkOut := at
	r.CheckOutTime = &checkOut
	r.IsAutoOut = false
	r.UpdatedAt = biztime.NowUTC()
	return nil
}

// AutoClose closes the record at the policy-computed time and flags it as an
// automatic checkout. Closing an already-closed record is a no-op so repeat
// scheduler runs are safe.
func (r *Record) AutoClose(policy CheckoutPolicy) bool {
	if r.State() != StateWorking {
		return false
	}

	checkOut := policy.AutoCheckoutTime(r.CheckInTime)
	r.CheckOutTime = &checkOut
	r.IsAutoOut = true
	r.UpdatedAt = biztime.NowUTC()
	return true
}

// IsStale reports whether an open record has exceeded the site's shift length
// and should be closed by the scheduler.
func (r *Record) IsStale(policy CheckoutPolicy, now time.Time) bool {
	if !policy.IsAuto() || r.State() != StateWorking {
		return false
	}
	return !now.Before(policy.AutoCheckoutTime(r.CheckInTime))
}

// WorkDuration returns elapsed work time, using now for still-open records.
func (r *Record) WorkDuration(now time.Time) time.Duration {
	end := now
	if r.CheckOutTime != nil {
		end = *r.CheckOutTime
	}
	return end.Sub(r.CheckInTime)
}
