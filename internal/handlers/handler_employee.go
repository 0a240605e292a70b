package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/middleware"
	"github.com/shiftboard/shiftboard_app/internal/utils/calendar"
)

// employeeHandler serves the worker-facing shift listing and availability
// requests.
type employeeHandler struct {
	accessService  portssvc.AccessSvcFacade
	shiftService   portssvc.ShiftSvcFacade
	requestService portssvc.RequestSvcFacade
}

func registerEmployeeRoutes(rg *gin.RouterGroup, accessService portssvc.AccessSvcFacade, shiftService portssvc.ShiftSvcFacade, requestService portssvc.RequestSvcFacade) {
	h := &employeeHandler{accessService: accessService, shiftService: shiftService, requestService: requestService}

	employee := rg.Group("/employee")
	{
		employee.GET("/shifts", h.listShifts)
		employee.GET("/requests", h.listRequests)
		employee.POST("/requests", h.submitRequest)
	}
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := calendar.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " must be formatted YYYY-MM-DD"})
		return nil, false
	}
	return &parsed, true
}

// listShifts godoc
// @Summary List own visible shifts
// @Description Returns the caller's assignments restricted by the publish
// @Description visibility policy: past shifts always, current and future
// @Description shifts only from published weeks.
// @Tags employee
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListEmployeeShiftsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Pending approval"
// @Security BearerAuth
// @Router /employee/shifts [get]
func (h *employeeHandler) listShifts(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	user, workplaceID, err := h.accessService.RequireApprovedEmployee(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	resp, err := h.shiftService.ListEmployeeShifts(c.Request.Context(), workplaceID, user.UserID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listRequests godoc
// @Summary List own availability requests
// @Tags employee
// @Produce json
// @Success 200 {array} dto.UserRequestResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/requests [get]
func (h *employeeHandler) listRequests(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	user, workplaceID, err := h.accessService.RequireApprovedEmployee(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	requests, err := h.requestService.ListUserRequests(c.Request.Context(), user.UserID, workplaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserRequestResponses(requests))
}

// submitRequest godoc
// @Summary Submit availability request
// @Description Stores the caller's availability text, overwriting any
// @Description previous submission for the workplace.
// @Tags employee
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequestRequest true "Availability text"
// @Success 200 {object} dto.UserRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee/requests [post]
func (h *employeeHandler) submitRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	user, workplaceID, err := h.accessService.RequireApprovedEmployee(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	stored, err := h.requestService.SubmitRequest(c.Request.Context(), user.UserID, workplaceID, req.Requests)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserRequestResponse(stored))
}
