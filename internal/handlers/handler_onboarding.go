package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/middleware"
)

// onboardingHandler serves role selection after first authentication.
type onboardingHandler struct {
	accessService     portssvc.AccessSvcFacade
	onboardingService portssvc.OnboardingSvcFacade
}

func registerOnboardingRoutes(rg *gin.RouterGroup, accessService portssvc.AccessSvcFacade, onboardingService portssvc.OnboardingSvcFacade) {
	h := &onboardingHandler{accessService: accessService, onboardingService: onboardingService}
	rg.POST("/onboarding", h.completeOnboarding)
}

// completeOnboarding godoc
// @Summary Complete onboarding
// @Description Finishes the caller's role selection: managers provision a
// @Description workplace gated by an invite code, employees join one by
// @Description business name and await approval.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param onboarding body dto.OnboardingRequest true "Role selection"
// @Success 200 {object} dto.OnboardingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Invalid invite code"
// @Failure 404 {object} ErrorResponse "Workplace not found"
// @Failure 409 {object} ErrorResponse "Already onboarded or name taken"
// @Security BearerAuth
// @Router /onboarding [post]
func (h *onboardingHandler) completeOnboarding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	if _, err := h.accessService.RequireUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CompleteOnboarding", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.onboardingService.CompleteOnboarding(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
