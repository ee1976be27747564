package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/errors"
)

func activeWorker() *worker.Worker {
	return &worker.Worker{
		ID:     "worker-1",
		Name:   "Hong Gildong",
		Role:   "WORKER",
		Status: worker.StatusActive,
		SiteID: 1,
	}
}

func TestIssueQRToken_Success(t *testing.T) {
	workerRepo := &mockWorkerRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*worker.Worker, error) {
			return activeWorker(), nil
		},
	}
	tokens := &mockTokenService{
		IssueFunc: func(workerID string) (*attendance.Token, error) {
			return &attendance.Token{WorkerID: workerID, Signature: "sig"}, nil
		},
	}

	uc := NewIssueQRTokenUseCase(workerRepo, tokens, &mockLogger{})

	result, err := uc.Execute(context.Background(), IssueQRTokenCommand{WorkerID: "worker-1"})
	require.NoError(t, err)
	assert.Equal(t, "worker-1", result.Token.WorkerID)
	assert.Equal(t, 30, result.ValiditySeconds)
}

func TestIssueQRToken_StatusGate(t *testing.T) {
	for _, status := range []worker.Status{
		worker.StatusPending,
		worker.StatusRequested,
		worker.StatusInactive,
		worker.StatusBlocked,
		worker.StatusRejected,
	} {
		t.Run(string(status), func(t *testing.T) {
			w := activeWorker()
			w.Status = status
			workerRepo := &mockWorkerRepository{
				GetByIDFunc: func(ctx context.Context, id string) (*worker.Worker, error) {
					return w, nil
				},
			}

			uc := NewIssueQRTokenUseCase(workerRepo, &mockTokenService{}, &mockLogger{})

			_, err := uc.Execute(context.Background(), IssueQRTokenCommand{WorkerID: "worker-1"})
			require.Error(t, err)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
			assert.Contains(t, appErr.Details, string(status))
			assert.Equal(t, status.GateMessage(), appErr.Message)
		})
	}
}

func TestIssueQRToken_WorkerNotFound(t *testing.T) {
	workerRepo := &mockWorkerRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*worker.Worker, error) {
			return nil, errors.NewNotFoundError("worker not found")
		},
	}

	uc := NewIssueQRTokenUseCase(workerRepo, &mockTokenService{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), IssueQRTokenCommand{WorkerID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
