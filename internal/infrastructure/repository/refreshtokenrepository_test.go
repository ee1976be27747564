package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/errors"
)

func issueToken(t *testing.T, repo worker.RefreshTokenRepository, workerID string) *worker.RefreshToken {
	t.Helper()
	token, err := worker.NewRefreshToken(workerID, `{"device":"test"}`, 30*24*time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), token))
	return token
}

func TestRefreshTokenRepository_CreateAndGet(t *testing.T) {
	repo := NewRefreshTokenRepository(setupTestDB(t))
	ctx := context.Background()

	token := issueToken(t, repo, "worker-1")

	found, err := repo.GetByToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, "worker-1", found.WorkerID)
	assert.True(t, found.IsUsable())

	_, err = repo.GetByToken(ctx, "missing-token")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRefreshTokenRepository_RevokeIdempotent(t *testing.T) {
	repo := NewRefreshTokenRepository(setupTestDB(t))
	ctx := context.Background()

	token := issueToken(t, repo, "worker-1")

	require.NoError(t, repo.Revoke(ctx, token.Token))

	found, err := repo.GetByToken(ctx, token.Token)
	require.NoError(t, err)
	require.True(t, found.IsRevoked())
	revokedAt := *found.RevokedAt

	// Repeat revocation keeps the original timestamp.
	require.NoError(t, repo.Revoke(ctx, token.Token))
	found, err = repo.GetByToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, revokedAt.Unix(), found.RevokedAt.Unix())

	// Unknown token is a no-op too.
	assert.NoError(t, repo.Revoke(ctx, "missing-token"))
}

func TestRefreshTokenRepository_RevokeAllForWorker(t *testing.T) {
	repo := NewRefreshTokenRepository(setupTestDB(t))
	ctx := context.Background()

	issueToken(t, repo, "worker-1")
	issueToken(t, repo, "worker-1")
	already := issueToken(t, repo, "worker-1")
	require.NoError(t, repo.Revoke(ctx, already.Token))
	other := issueToken(t, repo, "worker-2")

	revoked, err := repo.RevokeAllForWorker(ctx, "worker-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), revoked)

	// Another worker's tokens stay untouched.
	found, err := repo.GetByToken(ctx, other.Token)
	require.NoError(t, err)
	assert.True(t, found.IsUsable())
}
