package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/utils/calendar"
)

// shiftHandler serves the manager's shift CRUD and assignment operations.
type shiftHandler struct {
	accessService portssvc.AccessSvcFacade
	shiftService  portssvc.ShiftSvcFacade
}

func registerShiftRoutes(rg *gin.RouterGroup, accessService portssvc.AccessSvcFacade, shiftService portssvc.ShiftSvcFacade) {
	h := &shiftHandler{accessService: accessService, shiftService: shiftService}

	shifts := rg.Group("/shifts")
	{
		shifts.GET("", h.listShifts)
		shifts.POST("", h.createShifts)
		shifts.POST("/generate", h.generateShifts)
		shifts.PUT("/:id", h.updateShift)
		shifts.DELETE("/:id", h.deleteShift)
		shifts.POST("/:id/workers", h.assignWorker)
		shifts.PATCH("/:id/workers/:workerId", h.updateAssignmentComment)
	}
}

func (h *shiftHandler) requireManager(c *gin.Context) (workplaceID string, ok bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return "", false
	}
	_, workplaceID, err := h.accessService.RequireManager(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return "", false
	}
	return workplaceID, true
}

// listShifts godoc
// @Summary List workplace shifts
// @Description Lists all shifts with their assignments, optionally bounded to
// @Description a date range.
// @Tags manager
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	workplaceID, ok := h.requireManager(c)
	if !ok {
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

	shifts, err := h.shiftService.ListShifts(c.Request.Context(), workplaceID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponses(shifts))
}

// createShifts godoc
// @Summary Create one or more shifts
// @Description Accepts either a single shift body or a bulk {"shifts": [...]}
// @Description body. A single create may assign a worker in the same call; a
// @Description failed assignment leaves the shift in place and is reported as
// @Description a warning. Bulk creation skips slots that already exist.
// @Tags manager
// @Accept json
// @Produce json
// @Param request body dto.CreateShiftRequest true "Shift to create"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/shifts [post]
func (h *shiftHandler) createShifts(c *gin.Context) {
	workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}

	var bulk dto.CreateShiftsRequest
	if err := c.ShouldBindBodyWith(&bulk, binding.JSON); err == nil {
		created, err := h.shiftService.CreateShifts(c.Request.Context(), workplaceID, bulk.Shifts)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"shifts": dto.ToShiftResponses(created), "created": len(created)})
		return
	}

	var req dto.CreateShiftRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}
	result, err := h.shiftService.CreateShift(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"shift": dto.ToShiftResponse(result.Shift)}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	c.JSON(http.StatusCreated, resp)
}

// generateShifts godoc
// @Summary Generate a week's shifts from another week
// @Description Copies the source week's slots onto the target week without
// @Description their assignments. Slots already present on the target week
// @Description are left untouched.
// @Tags manager
// @Accept json
// @Produce json
// @Param request body dto.GenerateShiftsRequest true "Source and target weeks"
// @Success 200 {object} map[string]int
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/shifts/generate [post]
func (h *shiftHandler) generateShifts(c *gin.Context) {
	workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	var req dto.GenerateShiftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}
	source, err := calendar.ParseDate(req.SourceWeekStart)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid source_week_start"))
		return
	}
	target, err := calendar.ParseDate(req.TargetWeekStart)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid target_week_start"))
		return
	}

	created, err := h.shiftService.GenerateShifts(c.Request.Context(), workplaceID, source, target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// updateShift godoc
// @Summary Move a shift to another date or part
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body dto.UpdateShiftRequest true "Fields to update"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/shifts/{id} [put]
func (h *shiftHandler) updateShift(c *gin.Context) {
	workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}

	shift, err := h.shiftService.UpdateShift(c.Request.Context(), workplaceID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// deleteShift godoc
// @Summary Delete a shift and its assignments
// @Tags manager
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/shifts/{id} [delete]
func (h *shiftHandler) deleteShift(c *gin.Context) {
	workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	if err := h.shiftService.DeleteShift(c.Request.Context(), workplaceID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// assignWorker godoc
// @Summary Add or remove a worker on a shift
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body dto.AssignWorkerRequest true "Assignment change"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/shifts/{id}/workers [post]
func (h *shiftHandler) assignWorker(c *gin.Context) {
	workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	var req dto.AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}

	shift, err := h.shiftService.AssignWorker(c.Request.Context(), workplaceID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// updateAssignmentComment godoc
// @Summary Update the comment on an assignment
// @Description An empty comment clears the stored one.
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param workerId path string true "Assignment ID"
// @Param request body dto.UpdateAssignmentCommentRequest true "New comment"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/shifts/{id}/workers/{workerId} [patch]
func (h *shiftHandler) updateAssignmentComment(c *gin.Context) {
	workplaceID, ok := h.requireManager(c)
	if !ok {
		return
	}
	var req dto.UpdateAssignmentCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}

	if err := h.shiftService.UpdateAssignmentComment(c.Request.Context(), workplaceID, c.Param("id"), c.Param("workerId"), &req.Comment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
