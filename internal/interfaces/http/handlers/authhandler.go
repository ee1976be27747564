package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tongpass/internal/application/auth/usecases"
	"tongpass/internal/interfaces/http/middleware"
	"tongpass/internal/shared/logger"
	"tongpass/internal/shared/utils"
)

// AuthHandler serves the credential endpoints of the worker app: login,
// access-token refresh, logout and the pre-flight status check.
type AuthHandler struct {
	loginUseCase      loginWorkerUseCase
	refreshUseCase    refreshAccessTokenUseCase
	logoutUseCase     logoutWorkerUseCase
	revokeAllUseCase  revokeAllTokensUseCase
	authStatusUseCase workerAuthStatusUseCase
	logger            logger.Interface
}

func NewAuthHandler(
	loginUC loginWorkerUseCase,
	refreshUC refreshAccessTokenUseCase,
	logoutUC logoutWorkerUseCase,
	revokeAllUC revokeAllTokensUseCase,
	authStatusUC workerAuthStatusUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:      loginUC,
		refreshUseCase:    refreshUC,
		logoutUseCase:     logoutUC,
		revokeAllUseCase:  revokeAllUC,
		authStatusUseCase: authStatusUC,
		logger:            logger,
	}
}

type LoginRequest struct {
	Phone      string `json:"phone" binding:"required,krphone"`
	Password   string `json:"password" binding:"required"`
	DeviceInfo string `json:"device_info"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RevokeAllTokensRequest struct {
	WorkerID string `json:"worker_id" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginWorkerCommand{
		Phone:      req.Phone,
		Password:   req.Password,
		DeviceInfo: req.DeviceInfo,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"worker_id":     result.Worker.ID,
		"name":          result.Worker.Name,
		"status":        result.Worker.Status.String(),
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.refreshUseCase.Execute(c.Request.Context(), usecases.RefreshAccessTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", gin.H{
		"access_token": result.AccessToken,
		"expires_in":   result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutWorkerCommand{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RevokeAllTokens is the administrator's force re-auth endpoint.
func (h *AuthHandler) RevokeAllTokens(c *gin.Context) {
	var req RevokeAllTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.revokeAllUseCase.Execute(c.Request.Context(), usecases.RevokeAllTokensCommand{
		WorkerID: req.WorkerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tokens revoked", gin.H{
		"revoked_count": result.RevokedCount,
	})
}

// Status reports the authenticated worker's status and whether attendance
// operations are available, with the status-specific reason when gated.
func (h *AuthHandler) Status(c *gin.Context) {
	result, err := h.authStatusUseCase.Execute(c.Request.Context(), usecases.WorkerAuthStatusQuery{
		WorkerID: middleware.WorkerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"worker_id":    result.WorkerID,
		"name":         result.Name,
		"status":       result.Status.String(),
		"can_check_in": result.CanCheckIn,
		"message":      result.Message,
	})
}
