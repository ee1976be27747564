// Package usecases holds the attendance application services: token
// issuance, the two check-in paths, check-out, the stale-record sweep and
// the worker-facing attendance views.
package usecases

import (
	"context"
	"fmt"

	"tongpass/internal/domain/attendance"
	"tongpass/internal/domain/worker"
	"tongpass/internal/shared/errors"
	"tongpass/internal/shared/logger"
)

type IssueQRTokenCommand struct {
	WorkerID string
}

type IssueQRTokenResult struct {
	Token           *attendance.Token
	ValiditySeconds int
}

// IssueQRTokenUseCase hands an authenticated worker a fresh attendance token.
// The worker's device refreshes it before the short window closes.
type IssueQRTokenUseCase struct {
	workerRepo   worker.Repository
	tokenService attendance.TokenService
	logger       logger.Interface
}

func NewIssueQRTokenUseCase(
	workerRepo worker.Repository,
	tokenService attendance.TokenService,
	logger logger.Interface,
) *IssueQRTokenUseCase {
	return &IssueQRTokenUseCase{
		workerRepo:   workerRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *IssueQRTokenUseCase) Execute(ctx context.Context, cmd IssueQRTokenCommand) (*IssueQRTokenResult, error) {
	w, err := uc.workerRepo.GetByID(ctx, cmd.WorkerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get worker", "error", err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	// The status gate holds even with a perfectly valid credential.
	if !w.Status.CanCheckIn() {
		return nil, errors.NewWorkerNotActiveError(w.Status.String(), w.Status.GateMessage())
	}

	token, err := uc.tokenService.Issue(w.ID)
	if err != nil {
		uc.logger.Errorw("failed to issue attendance token", "error", err)
		return nil, fmt.Errorf("failed to issue attendance token: %w", err)
	}

	return &IssueQRTokenResult{
		Token:           token,
		ValiditySeconds: int(uc.tokenService.Validity().Seconds()),
	}, nil
}
