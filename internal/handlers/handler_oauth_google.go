package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/middleware"
	"github.com/shiftboard/shiftboard_app/internal/platform/config"
)

// GoogleOAuthHandler serves the Google sign-in code exchange.
type GoogleOAuthHandler struct {
	cfg             *config.Config
	oauthService    portssvc.GoogleOAuthHandlerSvcFacade
	identityService portssvc.IdentitySvcFacade
	tokenService    portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		cfg:             cfg,
		oauthService:    services.GoogleOAuthHandler,
		identityService: services.Identity,
		tokenService:    services.TokenService,
	}
}

// ExchangeCode godoc
// @Summary Exchange Google authorization code
// @Description Exchanges an OAuth code for an application JWT. The account is
// @Description created on the fly when provider-side provisioning has not run
// @Description yet. The response carries the route the client should load next.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.ExchangeCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	oauthToken, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("OAuth code exchange failed", slog.String("error", err.Error()))
		respondError(c, apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service."))
		return
	}

	identity, err := h.resolveIdentity(c, oauthToken)
	if err != nil {
		logger.Warn("Failed to resolve Google identity", slog.String("error", err.Error()))
		respondError(c, apperrors.NewUnauthorizedError("Authentication failed"))
		return
	}

	user, err := h.identityService.Reconcile(c.Request.Context(), *identity)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInternalServerError("Failed to generate access token."))
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeCodeResponse{
		Token:    accessToken,
		Redirect: postLoginRedirect(user),
	})
}

// resolveIdentity prefers the signed ID token over a userinfo round trip,
// falling back to the API call when the provider did not include one.
func (h *GoogleOAuthHandler) resolveIdentity(c *gin.Context, oauthToken *oauth2.Token) (*domain.ExternalIdentity, error) {
	if idTokenString, ok := oauthToken.Extra("id_token").(string); ok && idTokenString != "" {
		payload, err := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), idTokenString)
		if err == nil {
			identity := &domain.ExternalIdentity{ID: payload.Subject}
			if email, ok := payload.Claims["email"].(string); ok {
				identity.Email = email
			}
			if verified, ok := payload.Claims["email_verified"].(bool); ok {
				identity.EmailVerified = verified
			}
			if name, ok := payload.Claims["name"].(string); ok {
				identity.FullName = name
			}
			if given, ok := payload.Claims["given_name"].(string); ok {
				identity.Name = given
			}
			if picture, ok := payload.Claims["picture"].(string); ok {
				identity.AvatarURL = picture
			}
			return identity, nil
		}
	}
	return h.oauthService.GetUserInfo(c.Request.Context(), oauthToken)
}

// postLoginRedirect mirrors the account state onto the client route to load
// after sign-in.
func postLoginRedirect(user *domain.User) string {
	if !user.Onboarded() {
		return "/auth/complete-profile"
	}
	if user.IsManager {
		return "/manager/dashboard"
	}
	if user.IsApproved {
		return "/employee/dashboard"
	}
	return "/auth/pending-approval"
}
