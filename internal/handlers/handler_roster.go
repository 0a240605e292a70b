package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
)

// rosterHandler serves the manager's employee roster and the workplace's
// availability requests.
type rosterHandler struct {
	accessService   portssvc.AccessSvcFacade
	employeeService portssvc.EmployeeSvcFacade
	requestService  portssvc.RequestSvcFacade
}

func registerRosterRoutes(rg *gin.RouterGroup, accessService portssvc.AccessSvcFacade, employeeService portssvc.EmployeeSvcFacade, requestService portssvc.RequestSvcFacade) {
	h := &rosterHandler{accessService: accessService, employeeService: employeeService, requestService: requestService}

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("/:id/approve", h.approveEmployee)
		employees.POST("/:id/reject", h.rejectEmployee)
	}
	rg.GET("/requests", h.listWorkplaceRequests)
}

// listEmployees godoc
// @Summary List workplace employees
// @Description Returns the workplace roster split into approved and pending
// @Description members, excluding the calling manager.
// @Tags manager
// @Produce json
// @Success 200 {object} dto.EmployeeRosterResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/employees [get]
func (h *rosterHandler) listEmployees(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	manager, workplaceID, err := h.accessService.RequireManager(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	approved, pending, err := h.employeeService.ListEmployees(c.Request.Context(), workplaceID, manager.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeRosterResponse(approved, pending))
}

// approveEmployee godoc
// @Summary Approve a pending employee
// @Tags manager
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/employees/{id}/approve [post]
func (h *rosterHandler) approveEmployee(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	_, workplaceID, err := h.accessService.RequireManager(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	employee, err := h.employeeService.ApproveEmployee(c.Request.Context(), workplaceID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(employee))
}

// rejectEmployee godoc
// @Summary Reject a workplace member
// @Description Removes the member's account, detaching them from the
// @Description workplace.
// @Tags manager
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/employees/{id}/reject [post]
func (h *rosterHandler) rejectEmployee(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	_, workplaceID, err := h.accessService.RequireManager(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.employeeService.RejectEmployee(c.Request.Context(), workplaceID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// listWorkplaceRequests godoc
// @Summary List workplace availability requests
// @Tags manager
// @Produce json
// @Success 200 {array} dto.UserRequestResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /manager/requests [get]
func (h *rosterHandler) listWorkplaceRequests(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	_, workplaceID, err := h.accessService.RequireManager(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	requests, err := h.requestService.ListWorkplaceRequests(c.Request.Context(), workplaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserRequestResponses(requests))
}
