package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/config"
	"tongpass/internal/shared/errors"
)

func storedWorker(status worker.Status) *worker.Worker {
	return &worker.Worker{
		ID:           "worker-1",
		Name:         "Kim Chulsoo",
		Phone:        "01012345678",
		PasswordHash: "hashed:secret",
		Role:         "worker",
		Status:       status,
		SiteID:       1,
	}
}

func TestLoginWorker_Success(t *testing.T) {
	var persisted *worker.RefreshToken
	workerRepo := &mockWorkerRepository{
		GetByPhoneFunc: func(ctx context.Context, phone string) (*worker.Worker, error) {
			assert.Equal(t, "01012345678", phone)
			return storedWorker(worker.StatusActive), nil
		},
	}
	refreshRepo := &mockRefreshTokenRepository{
		CreateFunc: func(ctx context.Context, token *worker.RefreshToken) error {
			persisted = token
			return nil
		},
	}
	hasher := &mockPasswordHasher{
		VerifyFunc: func(password, hash string) error {
			assert.Equal(t, "secret", password)
			assert.Equal(t, "hashed:secret", hash)
			return nil
		},
	}

	uc := NewLoginWorkerUseCase(workerRepo, refreshRepo, hasher, &mockTokenIssuer{},
		config.RefreshTokenConfig{ExpDays: 30}, &mockLogger{})

	result, err := uc.Execute(context.Background(), LoginWorkerCommand{
		Phone:      "01012345678",
		Password:   "secret",
		DeviceInfo: `{"model":"SM-G991N"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	require.NotNil(t, persisted)
	assert.Equal(t, persisted.Token, result.RefreshToken)
	assert.Equal(t, "worker-1", persisted.WorkerID)
	assert.Equal(t, `{"model":"SM-G991N"}`, persisted.DeviceInfo)
	assert.WithinDuration(t, biztime.NowUTC().Add(30*24*time.Hour), persisted.ExpiresAt, time.Minute)
}

func TestLoginWorker_UnknownPhoneAndBadPasswordLookAlike(t *testing.T) {
	unknownRepo := &mockWorkerRepository{
		GetByPhoneFunc: func(ctx context.Context, phone string) (*worker.Worker, error) {
			return nil, errors.NewNotFoundError("worker not found")
		},
	}
	knownRepo := &mockWorkerRepository{
		GetByPhoneFunc: func(ctx context.Context, phone string) (*worker.Worker, error) {
			return storedWorker(worker.StatusActive), nil
		},
	}
	badHasher := &mockPasswordHasher{
		VerifyFunc: func(password, hash string) error {
			return fmt.Errorf("mismatch")
		},
	}

	uc1 := NewLoginWorkerUseCase(unknownRepo, &mockRefreshTokenRepository{}, &mockPasswordHasher{},
		&mockTokenIssuer{}, config.RefreshTokenConfig{ExpDays: 30}, &mockLogger{})
	uc2 := NewLoginWorkerUseCase(knownRepo, &mockRefreshTokenRepository{}, badHasher,
		&mockTokenIssuer{}, config.RefreshTokenConfig{ExpDays: 30}, &mockLogger{})

	_, err1 := uc1.Execute(context.Background(), LoginWorkerCommand{Phone: "01000000000", Password: "x"})
	_, err2 := uc2.Execute(context.Background(), LoginWorkerCommand{Phone: "01012345678", Password: "wrong"})

	// An unregistered phone and a wrong password must be indistinguishable.
	var app1, app2 *errors.AppError
	require.ErrorAs(t, err1, &app1)
	require.ErrorAs(t, err2, &app2)
	assert.Equal(t, errors.ErrorTypeInvalidCredential, app1.Type)
	assert.Equal(t, app1.Type, app2.Type)
	assert.Equal(t, app1.Message, app2.Message)
	assert.Equal(t, app1.Code, app2.Code)
}

func TestLoginWorker_AnyStatusMayLogIn(t *testing.T) {
	// The status gate applies to attendance operations, not to login.
	for _, status := range []worker.Status{worker.StatusPending, worker.StatusActive} {
		t.Run(string(status), func(t *testing.T) {
			workerRepo := &mockWorkerRepository{
				GetByPhoneFunc: func(ctx context.Context, phone string) (*worker.Worker, error) {
					return storedWorker(status), nil
				},
			}
			uc := NewLoginWorkerUseCase(workerRepo, &mockRefreshTokenRepository{}, &mockPasswordHasher{},
				&mockTokenIssuer{}, config.RefreshTokenConfig{ExpDays: 30}, &mockLogger{})

			result, err := uc.Execute(context.Background(), LoginWorkerCommand{Phone: "01012345678", Password: "secret"})
			require.NoError(t, err)
			assert.NotEmpty(t, result.AccessToken)
		})
	}
}

func TestLoginWorker_MissingFields(t *testing.T) {
	uc := NewLoginWorkerUseCase(&mockWorkerRepository{}, &mockRefreshTokenRepository{}, &mockPasswordHasher{},
		&mockTokenIssuer{}, config.RefreshTokenConfig{ExpDays: 30}, &mockLogger{})

	_, err := uc.Execute(context.Background(), LoginWorkerCommand{Phone: "01012345678"})
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
