package attendance

import (
	"context"
	"time"
)

// Repository defines persistence for the attendance ledger.
//
// Create must rely on the storage-level (site_id, worker_id, work_date)
// unique constraint and translate its violation into AlreadyCheckedIn, so a
// concurrent double check-in resolves deterministically. Close must be a
// conditional update guarded by "check-out is currently null" so repeat and
// concurrent closes are no-ops.
type Repository interface {
	// Create inserts a new Working row. Returns AlreadyCheckedIn when the
	// unique constraint rejects the insert.
	Create(ctx context.Context, record *Record) error

	// GetForWorkDate returns the row for (site, worker, workDate), or nil
	// when the worker has not checked in on that work date.
	GetForWorkDate(ctx context.Context, siteID uint, workerID string, workDate time.Time) (*Record, error)

	// Close sets the check-out columns on an open row. Returns false when
	// the row was already closed (or missing), without error.
	Close(ctx context.Context, recordID uint, checkOut time.Time, isAutoOut bool) (bool, error)

	// CloseManual sets the worker's real check-out on an open row, or
	// replaces an auto-stamped one. Returns false when the row is missing
	// or already closed manually.
	CloseManual(ctx context.Context, recordID uint, checkOut time.Time) (bool, error)

	// ListOpenBefore returns open rows for the given site whose check-in
	// is at or before the cutoff. Used by the auto-checkout sweep.
	ListOpenBefore(ctx context.Context, siteID uint, cutoff time.Time) ([]*Record, error)

	// ListForWorkerBetween returns a worker's rows with work_date in
	// [from, to], newest first. Used by the monthly attendance view.
	ListForWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]*Record, error)
}
