package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/middleware"
	"github.com/shiftboard/shiftboard_app/internal/platform/config"
	"github.com/shiftboard/shiftboard_app/internal/utils"
)

// AuthHandler serves the local login and refresh-token endpoints.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.TokenService)
	oauthHandler := NewGoogleOAuthHandler(cfg, services)

	// Per-IP rate limit on credential endpoints, AUTH_RATE_LIMIT format.
	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", limitMiddleware, h.Refresh)
		auth.POST("/google/exchange-code", limitMiddleware, oauthHandler.ExchangeCode)
	}
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.TokenService)
	rg.POST("/auth/logout", h.Logout)
}

// Register godoc
// @Summary Register a local account
// @Description Creates a username/password account and returns a token pair.
// @Description The account still needs onboarding before it can access any
// @Description workplace surface.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.RegisterLocalUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.issueTokens(c, http.StatusCreated, user)
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the caller's stored refresh token.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token plus a refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUserByUsername(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	h.issueTokens(c, http.StatusOK, user)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges a valid refresh token for a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired refresh token"})
		return
	}

	h.issueTokens(c, http.StatusOK, user)
}

// issueTokens generates an access/refresh token pair, persists the refresh
// token hash, and writes the login response.
func (h *AuthHandler) issueTokens(c *gin.Context, status int, user *domain.User) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	if err := h.userService.UpdateRefreshToken(c.Request.Context(), user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		logger.Error("Failed to store refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(status, dto.LoginResponse{
		Token:        accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
	})
}
