package worker

import "context"

// Repository defines the interface for worker data operations
type Repository interface {
	// Create creates a new worker
	Create(ctx context.Context, w *Worker) error

	// GetByID retrieves a worker by id
	GetByID(ctx context.Context, id string) (*Worker, error)

	// GetByPhone retrieves a worker by normalized phone number
	GetByPhone(ctx context.Context, phone string) (*Worker, error)

	// Update updates an existing worker
	Update(ctx context.Context, w *Worker) error
}

// RefreshTokenRepository defines persistence for refresh-token credentials.
// Tokens are never deleted; revocation is a timestamp on the row.
type RefreshTokenRepository interface {
	// Create persists a newly issued token
	Create(ctx context.Context, token *RefreshToken) error

	// GetByToken retrieves a token by its opaque value
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)

	// Revoke revokes a single token. Revoking an already-revoked token
	// is a no-op.
	Revoke(ctx context.Context, token string) error

	// RevokeAllForWorker revokes every non-revoked token of a worker and
	// returns the number of tokens revoked (admin force re-auth).
	RevokeAllForWorker(ctx context.Context, workerID string) (int64, error)
}

// PasswordHasher abstracts the password hashing scheme used for login.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
