package worker

import (
	"fmt"
	"strings"
)

// Status represents the worker status value object. Every attendance operation
// is gated on it: only ACTIVE workers may obtain a QR token or check in.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusRequested Status = "REQUESTED"
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusBlocked   Status = "BLOCKED"
	StatusRejected  Status = "REJECTED"
)

// ValidStatuses contains all valid status values
var ValidStatuses = map[Status]bool{
	StatusPending:   true,
	StatusRequested: true,
	StatusActive:    true,
	StatusInactive:  true,
	StatusBlocked:   true,
	StatusRejected:  true,
}

// StatusTransitions defines allowed status transitions
var StatusTransitions = map[Status][]Status{
	StatusPending: {
		StatusRequested,
	},
	StatusRequested: {
		StatusActive,
		StatusRejected,
	},
	StatusActive: {
		StatusInactive,
		StatusBlocked,
	},
	StatusInactive: {
		StatusActive,
		StatusBlocked,
	},
	StatusBlocked: {
		StatusActive,
	},
	StatusRejected: {
		StatusRequested,
	},
}

// gateMessages are the operator-facing reasons shown when a non-ACTIVE worker
// attempts an attendance operation. The corrective action differs by status.
var gateMessages = map[Status]string{
	StatusPending:   "consent required, complete signup in the app",
	StatusRequested: "signup approval pending, wait for the administrator",
	StatusInactive:  "inactive account, contact the administrator",
	StatusBlocked:   "access blocked, contact the administrator",
	StatusRejected:  "signup was rejected",
}

// ParseStatus parses a string to Status (case-insensitive)
func ParseStatus(value string) (Status, error) {
	normalized := Status(strings.ToUpper(strings.TrimSpace(value)))

	if normalized == "" {
		return "", fmt.Errorf("status cannot be empty")
	}

	if !ValidStatuses[normalized] {
		return "", fmt.Errorf("invalid status: %s", value)
	}

	return normalized, nil
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// IsActive checks if the status is active
func (s Status) IsActive() bool {
	return s == StatusActive
}

// CanCheckIn reports whether a worker with this status may obtain an
// attendance token or mutate the ledger.
func (s Status) CanCheckIn() bool {
	return s == StatusActive
}

// GateMessage returns the status-specific rejection message for attendance
// operations. Returns a generic message for unknown statuses.
func (s Status) GateMessage() string {
	if msg, ok := gateMessages[s]; ok {
		return msg
	}
	return "attendance operations are not available in the current state"
}

// CanTransitionTo checks if the current status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	allowedTransitions, exists := StatusTransitions[s]
	if !exists {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == target {
			return true
		}
	}

	return false
}

// TransitionTo attempts to transition to a new status
func (s *Status) TransitionTo(target Status) error {
	if !s.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition from %s to %s", s.String(), target.String())
	}

	*s = target
	return nil
}
