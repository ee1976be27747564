package handlers

import (
	"context"

	attusecases "tongpass/internal/application/attendance/usecases"
	authusecases "tongpass/internal/application/auth/usecases"
)

// Use case interfaces - enables unit testing the handlers with mocks.

type loginWorkerUseCase interface {
	Execute(ctx context.Context, cmd authusecases.LoginWorkerCommand) (*authusecases.LoginWorkerResult, error)
}

type refreshAccessTokenUseCase interface {
	Execute(ctx context.Context, cmd authusecases.RefreshAccessTokenCommand) (*authusecases.RefreshAccessTokenResult, error)
}

type logoutWorkerUseCase interface {
	Execute(ctx context.Context, cmd authusecases.LogoutWorkerCommand) error
}

type revokeAllTokensUseCase interface {
	Execute(ctx context.Context, cmd authusecases.RevokeAllTokensCommand) (*authusecases.RevokeAllTokensResult, error)
}

type workerAuthStatusUseCase interface {
	Execute(ctx context.Context, query authusecases.WorkerAuthStatusQuery) (*authusecases.WorkerAuthStatusResult, error)
}

type issueQRTokenUseCase interface {
	Execute(ctx context.Context, cmd attusecases.IssueQRTokenCommand) (*attusecases.IssueQRTokenResult, error)
}

type checkInWithQRUseCase interface {
	Execute(ctx context.Context, cmd attusecases.CheckInWithQRCommand) (*attusecases.CheckInResult, error)
}

type selfCheckInUseCase interface {
	Execute(ctx context.Context, cmd attusecases.SelfCheckInCommand) (*attusecases.CheckInResult, error)
}

type checkOutUseCase interface {
	Execute(ctx context.Context, cmd attusecases.CheckOutCommand) (*attusecases.CheckOutResult, error)
}

type todayAttendanceUseCase interface {
	Execute(ctx context.Context, query attusecases.TodayAttendanceQuery) (*attusecases.TodayAttendanceResult, error)
}

type monthlyAttendanceUseCase interface {
	Execute(ctx context.Context, query attusecases.MonthlyAttendanceQuery) (*attusecases.MonthlyAttendanceResult, error)
}
