package usecases

import (
	"context"

	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/logger"
)

type mockWorkerRepository struct {
	CreateFunc     func(ctx context.Context, w *worker.Worker) error
	GetByIDFunc    func(ctx context.Context, id string) (*worker.Worker, error)
	GetByPhoneFunc func(ctx context.Context, phone string) (*worker.Worker, error)
	UpdateFunc     func(ctx context.Context, w *worker.Worker) error
}

func (m *mockWorkerRepository) Create(ctx context.Context, w *worker.Worker) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkerRepository) GetByID(ctx context.Context, id string) (*worker.Worker, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkerRepository) GetByPhone(ctx context.Context, phone string) (*worker.Worker, error) {
	if m.GetByPhoneFunc != nil {
		return m.GetByPhoneFunc(ctx, phone)
	}
	return nil, nil
}

func (m *mockWorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, w)
	}
	return nil
}

type mockRefreshTokenRepository struct {
	CreateFunc             func(ctx context.Context, token *worker.RefreshToken) error
	GetByTokenFunc         func(ctx context.Context, token string) (*worker.RefreshToken, error)
	RevokeFunc             func(ctx context.Context, token string) error
	RevokeAllForWorkerFunc func(ctx context.Context, workerID string) (int64, error)
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *worker.RefreshToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *mockRefreshTokenRepository) GetByToken(ctx context.Context, token string) (*worker.RefreshToken, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	return nil
}

func (m *mockRefreshTokenRepository) RevokeAllForWorker(ctx context.Context, workerID string) (int64, error) {
	if m.RevokeAllForWorkerFunc != nil {
		return m.RevokeAllForWorkerFunc(ctx, workerID)
	}
	return 0, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc         func(workerID, role string) (string, error)
	AccessExpMinutesFunc func() int
}

func (m *mockTokenIssuer) Generate(workerID, role string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(workerID, role)
	}
	return "access-token", nil
}

func (m *mockTokenIssuer) AccessExpMinutes() int {
	if m.AccessExpMinutesFunc != nil {
		return m.AccessExpMinutesFunc()
	}
	return 60
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
