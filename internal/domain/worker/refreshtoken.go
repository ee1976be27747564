package worker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tongpass/internal/shared/biztime"
)

// RefreshToken is a long-lived opaque credential bound to one worker and
// optionally one device. Tokens are not rotated on use; revocation is the
// control against a leaked token outlasting logout.
type RefreshToken struct {
	Token      string
	WorkerID   string
	DeviceInfo string
	IssuedAt   time.Time
	ExpiresAt  time.Time
	RevokedAt  *time.Time
}

// NewRefreshToken issues a fresh token for the worker with the given lifetime.
func NewRefreshToken(workerID, deviceInfo string, lifetime time.Duration) (*RefreshToken, error) {
	if workerID == "" {
		return nil, fmt.Errorf("worker id is required")
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("lifetime must be positive")
	}

	now := biztime.NowUTC()
	return &RefreshToken{
		Token:      uuid.NewString(),
		WorkerID:   workerID,
		DeviceInfo: deviceInfo,
		IssuedAt:   now,
		ExpiresAt:  now.Add(lifetime),
	}, nil
}

// IsExpired reports whether the token is past its expiry.
func (t *RefreshToken) IsExpired() bool {
	return biztime.NowUTC().After(t.ExpiresAt)
}

// IsRevoked reports whether the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsUsable reports whether the token may still be exchanged for an access
// token. Both revocation and expiry must be checked on every exchange.
func (t *RefreshToken) IsUsable() bool {
	return !t.IsRevoked() && !t.IsExpired()
}

// Revoke marks the token revoked. Revoking an already-revoked token is a
// no-op so logout is idempotent.
func (t *RefreshToken) Revoke() {
	if t.RevokedAt != nil {
		return
	}
	now := biztime.NowUTC()
	t.RevokedAt = &now
}
