package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tongpass/internal/infrastructure/auth"
	"tongpass/internal/shared/constants"
	"tongpass/internal/shared/logger"
	"tongpass/internal/shared/utils"
)

// AuthMiddleware guards the worker-facing routes. Clients are mobile apps,
// so the access token travels only in the Authorization header.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify access token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyWorkerID, claims.WorkerID)
		c.Set(constants.ContextKeyWorkerRole, claims.Role)

		c.Next()
	}
}

// RequireRole allows only the named roles past. Runs after RequireAuth, which
// puts the claim role on the context.
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyWorkerRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		m.logger.Warnw("role not permitted for route",
			"worker_id", WorkerID(c),
			"role", role,
			"path", c.Request.URL.Path)
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}

// WorkerID extracts the authenticated worker id set by RequireAuth.
func WorkerID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyWorkerID)
}
