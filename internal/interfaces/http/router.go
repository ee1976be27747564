package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	attusecases "tongpass/internal/application/attendance/usecases"
	authusecases "tongpass/internal/application/auth/usecases"
	"tongpass/internal/infrastructure/auth"
	"tongpass/internal/infrastructure/cache"
	"tongpass/internal/infrastructure/config"
	"tongpass/internal/infrastructure/repository"
	"tongpass/internal/interfaces/http/handlers"
	"tongpass/internal/interfaces/http/middleware"
	"tongpass/internal/shared/logger"
)

// Router wires the full request path: repositories, use cases, handlers and
// middleware. The auto-checkout sweep use case is built here too so the
// server command can hand it to the scheduler.
type Router struct {
	engine            *gin.Engine
	authHandler       *handlers.AuthHandler
	attendanceHandler *handlers.AttendanceHandler
	authMiddleware    *middleware.AuthMiddleware
	staleSweep        *attusecases.CloseStaleRecordsUseCase
	logger            logger.Interface
}

func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	workerRepo := repository.NewWorkerRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	siteRepo := repository.NewSiteRepository(db)

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		siteRepo = cache.NewSitePolicyCache(client, siteRepo, log)
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	qrTokenService, err := auth.NewQRTokenService(&cfg.QR)
	if err != nil {
		return nil, err
	}

	loginUC := authusecases.NewLoginWorkerUseCase(workerRepo, refreshRepo, hasher, jwtService, cfg.Auth.Refresh, log)
	refreshUC := authusecases.NewRefreshAccessTokenUseCase(workerRepo, refreshRepo, jwtService, log)
	logoutUC := authusecases.NewLogoutWorkerUseCase(refreshRepo, log)
	revokeAllUC := authusecases.NewRevokeAllTokensUseCase(workerRepo, refreshRepo, log)
	authStatusUC := authusecases.NewWorkerAuthStatusUseCase(workerRepo, log)

	issueTokenUC := attusecases.NewIssueQRTokenUseCase(workerRepo, qrTokenService, log)
	checkInUC := attusecases.NewCheckInWithQRUseCase(workerRepo, siteRepo, attendanceRepo, qrTokenService, log)
	selfCheckInUC := attusecases.NewSelfCheckInUseCase(workerRepo, siteRepo, attendanceRepo, log)
	checkOutUC := attusecases.NewCheckOutUseCase(workerRepo, siteRepo, attendanceRepo, log)
	todayUC := attusecases.NewTodayAttendanceUseCase(workerRepo, siteRepo, attendanceRepo, log)
	monthlyUC := attusecases.NewMonthlyAttendanceUseCase(workerRepo, attendanceRepo, log)
	staleSweepUC := attusecases.NewCloseStaleRecordsUseCase(siteRepo, attendanceRepo, log)

	return &Router{
		engine:            gin.New(),
		authHandler:       handlers.NewAuthHandler(loginUC, refreshUC, logoutUC, revokeAllUC, authStatusUC, log),
		attendanceHandler: handlers.NewAttendanceHandler(issueTokenUC, checkInUC, selfCheckInUC, checkOutUC, todayUC, monthlyUC, log),
		authMiddleware:    middleware.NewAuthMiddleware(jwtService, log),
		staleSweep:        staleSweepUC,
		logger:            log,
	}, nil
}

// Engine returns the configured gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// StaleSweep returns the auto-checkout sweep for scheduler registration.
func (r *Router) StaleSweep() *attusecases.CloseStaleRecordsUseCase {
	return r.staleSweep
}
