package http

import (
	"github.com/gin-gonic/gin"

	"tongpass/internal/domain/worker"
	"tongpass/internal/infrastructure/config"
	"tongpass/internal/interfaces/http/middleware"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.ErrorHandler())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	r.setupAuthRoutes(api)
	r.setupWorkerRoutes(api)
	r.setupAttendanceRoutes(api)
}

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.Refresh)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/status", r.authMiddleware.RequireAuth(), r.authHandler.Status)

		// Administration product calls this on a worker's behalf; a worker
		// must not be able to revoke another worker's sessions.
		auth.POST("/logout-all",
			r.authMiddleware.RequireAuth(),
			r.authMiddleware.RequireRole(worker.RoleAdmin),
			r.authHandler.RevokeAllTokens)
	}
}

// setupWorkerRoutes configures the worker app's own endpoints.
func (r *Router) setupWorkerRoutes(api *gin.RouterGroup) {
	worker := api.Group("/worker")
	worker.Use(r.authMiddleware.RequireAuth())
	{
		worker.GET("/qr-token", r.attendanceHandler.IssueToken)
		worker.POST("/commute/in", r.attendanceHandler.SelfCheckIn)
		worker.POST("/commute/out", r.attendanceHandler.CheckOut)
		worker.GET("/attendance/today", r.attendanceHandler.Today)
		worker.GET("/attendance/monthly", r.attendanceHandler.Monthly)
	}
}

// setupAttendanceRoutes configures the gate-scanner and site-admin endpoints.
// These act on arbitrary worker ids from the request body, so they are
// restricted to admin credentials.
func (r *Router) setupAttendanceRoutes(api *gin.RouterGroup) {
	attendance := api.Group("/attendance")
	attendance.Use(r.authMiddleware.RequireAuth(), r.authMiddleware.RequireRole(worker.RoleAdmin))
	{
		attendance.POST("/check-in", r.attendanceHandler.CheckInWithQR)
		attendance.POST("/check-out", r.attendanceHandler.CheckOutWorker)
	}
}
