package attendance

import "time"

// Token is the ephemeral attendance token a worker's device renders as a QR
// code. Timestamps are millisecond epochs. Never persisted; the short expiry
// window is the primary replay control, the ledger unique key the secondary.
type Token struct {
	WorkerID  string `json:"worker_id"`
	Timestamp int64  `json:"timestamp"`
	ExpiresAt int64  `json:"expires_at"`
	Signature string `json:"signature"`
	KeyID     string `json:"key_id,omitempty"`
}

// TokenService signs and verifies attendance tokens. The signature covers
// worker id, issue time and expiry; mutating any field invalidates it.
type TokenService interface {
	// Issue signs a fresh token for the worker.
	Issue(workerID string) (*Token, error)

	// Verify checks the token signature, then its expiry. Returns typed
	// errors distinguishing a bad signature from a closed window.
	Verify(token *Token) error

	// Validity returns the configured token lifetime.
	Validity() time.Duration
}
