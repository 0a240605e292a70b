package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/utils/calendar"
)

// scheduleHandler serves the per-week shift board: preferences, the request
// window, and the publish lifecycle.
type scheduleHandler struct {
	accessService   portssvc.AccessSvcFacade
	scheduleService portssvc.ScheduleSvcFacade
}

// RegisterScheduleRoutes mounts the schedule surface on the manager group.
func RegisterScheduleRoutes(rg *gin.RouterGroup, accessService portssvc.AccessSvcFacade, scheduleService portssvc.ScheduleSvcFacade) {
	h := &scheduleHandler{accessService: accessService, scheduleService: scheduleService}

	schedule := rg.Group("/schedule")
	{
		schedule.GET("/preferences", h.getPreferences)
		schedule.PUT("/preferences", h.setPreferences)
		schedule.PUT("/request-window", h.setRequestWindow)
		schedule.GET("/publish", h.getBoard)
		schedule.POST("/publish", h.setPublishState)
		schedule.GET("/assignments", h.listAssignments)
		schedule.GET("/start-date", h.getStartDate)
	}
}

func (h *scheduleHandler) requireManager(c *gin.Context) (manager *domain.User, workplaceID string, ok bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return nil, "", false
	}
	manager, workplaceID, err := h.accessService.RequireManager(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return nil, "", false
	}
	return manager, workplaceID, true
}

// weekStartQuery parses the required week_start query parameter.
func weekStartQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("week_start")
	if raw == "" {
		respondError(c, apperrors.NewBadRequestError("week_start query parameter is required"))
		return time.Time{}, false
	}
	ws, err := calendar.ParseDate(raw)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("week_start must be formatted YYYY-MM-DD"))
		return time.Time{}, false
	}
	return ws, true
}

// getPreferences godoc
// @Summary Get a week's board preferences
// @Description Returns the stored preferences for the week, or the defaults
// @Description with exists=false when no board row has been created yet.
// @Tags manager
// @Produce json
// @Param week_start query string true "Week start Sunday (YYYY-MM-DD)"
// @Success 200 {object} dto.GetPreferencesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/schedule/preferences [get]
func (h *scheduleHandler) getPreferences(c *gin.Context) {
	_, workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	weekStart, ok := weekStartQuery(c)
	if !ok {
		return
	}

	prefs, err := h.scheduleService.GetPreferences(c.Request.Context(), workplaceID, weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// setPreferences godoc
// @Summary Set a week's board preferences
// @Tags manager
// @Accept json
// @Produce json
// @Param request body dto.SetPreferencesRequest true "Week and preferences"
// @Success 200 {object} dto.ShiftBoardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/schedule/preferences [put]
func (h *scheduleHandler) setPreferences(c *gin.Context) {
	_, workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	var req dto.SetPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}
	weekStart, err := calendar.ParseDate(req.WeekStart)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("week_start must be formatted YYYY-MM-DD"))
		return
	}

	board, err := h.scheduleService.SetPreferences(c.Request.Context(), workplaceID, weekStart, domain.BoardPreferences{
		ClosedDays:   req.Preferences.ClosedDays,
		ShiftsPerDay: req.Preferences.ShiftsPerDay,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftBoardResponse(board))
}

// setRequestWindow godoc
// @Summary Set a week's availability-request window
// @Tags manager
// @Accept json
// @Produce json
// @Param request body dto.SetRequestWindowRequest true "Week and window bounds"
// @Success 200 {object} dto.ShiftBoardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/schedule/request-window [put]
func (h *scheduleHandler) setRequestWindow(c *gin.Context) {
	_, workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	var req dto.SetRequestWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}
	weekStart, err := calendar.ParseDate(req.WeekStart)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("week_start must be formatted YYYY-MM-DD"))
		return
	}

	board, err := h.scheduleService.SetRequestWindow(c.Request.Context(), workplaceID, weekStart, req.RequestsWindowStart, req.RequestsWindowEnd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftBoardResponse(board))
}

// getBoard godoc
// @Summary Get a week's board with its publish state
// @Description Returns the stored board row, including the frozen content
// @Description snapshot when the week is published.
// @Tags manager
// @Produce json
// @Param week_start query string true "Week start Sunday (YYYY-MM-DD)"
// @Success 200 {object} dto.ShiftBoardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/schedule/publish [get]
func (h *scheduleHandler) getBoard(c *gin.Context) {
	_, workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	weekStart, ok := weekStartQuery(c)
	if !ok {
		return
	}

	board, err := h.scheduleService.GetBoard(c.Request.Context(), workplaceID, weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftBoardResponse(board))
}

// setPublishState godoc
// @Summary Publish or unpublish a week's board
// @Description Publishing snapshots the week's shifts and assignments into
// @Description the board content. Unpublishing clears the snapshot and hides
// @Description the week's upcoming shifts from employees again.
// @Tags manager
// @Accept json
// @Produce json
// @Param request body dto.PublishRequest true "Week and desired state"
// @Success 200 {object} dto.ShiftBoardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/schedule/publish [post]
func (h *scheduleHandler) setPublishState(c *gin.Context) {
	manager, workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	var req dto.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}
	weekStart, err := calendar.ParseDate(req.WeekStart)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("week_start must be formatted YYYY-MM-DD"))
		return
	}

	board, err := h.scheduleService.SetPublishState(c.Request.Context(), workplaceID, manager.UserID, weekStart, *req.IsPublished)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftBoardResponse(board))
}

// listAssignments godoc
// @Summary List a week's assignments as flat rows
// @Tags manager
// @Produce json
// @Param week_start query string true "Week start Sunday (YYYY-MM-DD)"
// @Success 200 {array} dto.WeekAssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/schedule/assignments [get]
func (h *scheduleHandler) listAssignments(c *gin.Context) {
	_, workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	weekStart, ok := weekStartQuery(c)
	if !ok {
		return
	}

	assignments, err := h.scheduleService.ListWeekAssignments(c.Request.Context(), workplaceID, weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWeekAssignmentResponses(assignments))
}

// getStartDate godoc
// @Summary Get the current week's start date
// @Description Returns the Sunday that opens the current week in UTC.
// @Tags manager
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/schedule/start-date [get]
func (h *scheduleHandler) getStartDate(c *gin.Context) {
	if _, _, ok := h.requireManager(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"start_date": calendar.FormatDate(calendar.WeekStart(calendar.Today()))})
}
