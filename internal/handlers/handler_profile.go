package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/middleware"
)

// profileHandler serves the caller's own profile.
type profileHandler struct {
	accessService portssvc.AccessSvcFacade
	userService   portssvc.UserSvcFacade
}

func registerProfileRoutes(rg *gin.RouterGroup, accessService portssvc.AccessSvcFacade, userService portssvc.UserSvcFacade) {
	h := &profileHandler{accessService: accessService, userService: userService}

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
	}
}

// getProfile godoc
// @Summary Get own profile
// @Description Returns the caller's account joined with its workplace, if any.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Profile incomplete"
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	if _, err := h.accessService.RequireUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// updateProfile godoc
// @Summary Update own profile
// @Description Applies a partial update to the caller's profile.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	if _, err := h.accessService.RequireUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}
