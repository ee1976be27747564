package usecases

import (
	"context"
	"time"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/domain/site"
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

type mockSiteRepository struct {
	GetByIDFunc          func(ctx context.Context, id uint) (*site.Site, error)
	ListAutoCheckoutFunc func(ctx context.Context) ([]*site.Site, error)
}

func (m *mockSiteRepository) GetByID(ctx context.Context, id uint) (*site.Site, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSiteRepository) ListAutoCheckout(ctx context.Context) ([]*site.Site, error) {
	if m.ListAutoCheckoutFunc != nil {
		return m.ListAutoCheckoutFunc(ctx)
	}
	return nil, nil
}

type mockAttendanceRepository struct {
	CreateFunc               func(ctx context.Context, record *attendance.Record) error
	GetForWorkDateFunc       func(ctx context.Context, siteID uint, workerID string, workDate time.Time) (*attendance.Record, error)
	CloseFunc                func(ctx context.Context, recordID uint, checkOut time.Time, isAutoOut bool) (bool, error)
	CloseManualFunc          func(ctx context.Context, recordID uint, checkOut time.Time) (bool, error)
	ListOpenBeforeFunc       func(ctx context.Context, siteID uint, cutoff time.Time) ([]*attendance.Record, error)
	ListForWorkerBetweenFunc func(ctx context.Context, workerID string, from, to time.Time) ([]*attendance.Record, error)
}

func (m *mockAttendanceRepository) Create(ctx context.Context, record *attendance.Record) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *mockAttendanceRepository) GetForWorkDate(ctx context.Context, siteID uint, workerID string, workDate time.Time) (*attendance.Record, error) {
	if m.GetForWorkDateFunc != nil {
		return m.GetForWorkDateFunc(ctx, siteID, workerID, workDate)
	}
	return nil, nil
}

func (m *mockAttendanceRepository) Close(ctx context.Context, recordID uint, checkOut time.Time, isAutoOut bool) (bool, error) {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, recordID, checkOut, isAutoOut)
	}
	return true, nil
}

func (m *mockAttendanceRepository) CloseManual(ctx context.Context, recordID uint, checkOut time.Time) (bool, error) {
	if m.CloseManualFunc != nil {
		return m.CloseManualFunc(ctx, recordID, checkOut)
	}
	return true, nil
}

func (m *mockAttendanceRepository) ListOpenBefore(ctx context.Context, siteID uint, cutoff time.Time) ([]*attendance.Record, error) {
	if m.ListOpenBeforeFunc != nil {
		return m.ListOpenBeforeFunc(ctx, siteID, cutoff)
	}
	return nil, nil
}

func (m *mockAttendanceRepository) ListForWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]*attendance.Record, error) {
	if m.ListForWorkerBetweenFunc != nil {
		return m.ListForWorkerBetweenFunc(ctx, workerID, from, to)
	}
	return nil, nil
}

type mockTokenService struct {
	IssueFunc    func(workerID string) (*attendance.Token, error)
	VerifyFunc   func(token *attendance.Token) error
	ValidityFunc func() time.Duration
}

func (m *mockTokenService) Issue(workerID string) (*attendance.Token, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(workerID)
	}
	return &attendance.Token{WorkerID: workerID}, nil
}

func (m *mockTokenService) Verify(token *attendance.Token) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	return nil
}

func (m *mockTokenService) Validity() time.Duration {
	if m.ValidityFunc != nil {
		return m.ValidityFunc()
	}
	return 30 * time.Second
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
