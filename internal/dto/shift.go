package dto

import (
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	"github.com/shiftboard/shiftboard_app/internal/utils/calendar"
)

// --- Shift DTOs ---

// CreateShiftRequest creates one slot, optionally assigning a worker in the
// same call.
type CreateShiftRequest struct {
	ShiftDate string `json:"shift_date" binding:"required,datetime=2006-01-02"`
	ShiftPart string `json:"shift_part" binding:"required,oneof=morning noon evening"`
	UserID    string `json:"user_id" binding:"omitempty,uuid"`
	Comment   string `json:"comment"`
}

// CreateShiftsRequest creates several slots at once; existing slots are skipped.
type CreateShiftsRequest struct {
	Shifts []CreateShiftRequest `json:"shifts" binding:"required,min=1,dive"`
}

// UpdateShiftRequest moves a slot to another date and/or part.
type UpdateShiftRequest struct {
	ShiftDate *string `json:"shift_date" binding:"omitempty,datetime=2006-01-02"`
	ShiftPart *string `json:"shift_part" binding:"omitempty,oneof=morning noon evening"`
}

// GenerateShiftsRequest copies slots (not assignments) from one week to
// another; both dates must be Sundays.
type GenerateShiftsRequest struct {
	SourceWeekStart string `json:"source_week_start" binding:"required,datetime=2006-01-02"`
	TargetWeekStart string `json:"target_week_start" binding:"required,datetime=2006-01-02"`
}

// AssignWorkerRequest adds or removes a worker on a shift.
type AssignWorkerRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	Action  string `json:"action" binding:"required,oneof=add remove"`
	Comment string `json:"comment"`
}

// UpdateAssignmentCommentRequest rewrites the comment on an assignment.
type UpdateAssignmentCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// ShiftWorkerResponse is a nested assignment on a shift listing.
type ShiftWorkerResponse struct {
	AssignmentID string    `json:"id"`
	UserID       string    `json:"user_id"`
	Comment      *string   `json:"comment"`
	AssignedAt   time.Time `json:"assigned_at"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
}

// ShiftResponse is a shift with its nested assignments.
type ShiftResponse struct {
	ShiftID   string                `json:"id"`
	ShiftDate string                `json:"shift_date"`
	ShiftPart string                `json:"shift_part"`
	CreatedAt time.Time             `json:"created_at"`
	Workers   []ShiftWorkerResponse `json:"shift_workers"`
}

// ToShiftResponse converts a domain.Shift to its DTO.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	workers := make([]ShiftWorkerResponse, len(s.Workers))
	for i, w := range s.Workers {
		workers[i] = ShiftWorkerResponse{
			AssignmentID: w.AssignmentID,
			UserID:       w.UserID,
			Comment:      w.Comment,
			AssignedAt:   w.AssignedAt,
			FullName:     w.FullName,
			Email:        w.Email,
			AvatarURL:    w.AvatarURL,
		}
	}
	return ShiftResponse{
		ShiftID:   s.ShiftID,
		ShiftDate: calendar.FormatDate(s.ShiftDate),
		ShiftPart: string(s.ShiftPart),
		CreatedAt: s.CreatedAt,
		Workers:   workers,
	}
}

// ToShiftResponses converts a slice of domain shifts.
func ToShiftResponses(ss []domain.Shift) []ShiftResponse {
	out := make([]ShiftResponse, len(ss))
	for i := range ss {
		out[i] = ToShiftResponse(&ss[i])
	}
	return out
}

// AssignedShiftResponse is one visible shift on the employee's listing.
type AssignedShiftResponse struct {
	AssignmentID string    `json:"assignment_id"`
	AssignedAt   time.Time `json:"assigned_at"`
	Comment      *string   `json:"comment"`
	ShiftID      string    `json:"id"`
	ShiftDate    string    `json:"shift_date"`
	ShiftPart    string    `json:"shift_part"`
}

// ListEmployeeShiftsResponse wraps the visibility-filtered listing.
type ListEmployeeShiftsResponse struct {
	Shifts []AssignedShiftResponse `json:"shifts"`
	Total  int                     `json:"total"`
}

// ToListEmployeeShiftsResponse converts the filtered domain assignments.
func ToListEmployeeShiftsResponse(as []domain.AssignedShift) ListEmployeeShiftsResponse {
	shifts := make([]AssignedShiftResponse, len(as))
	for i, a := range as {
		shifts[i] = AssignedShiftResponse{
			AssignmentID: a.AssignmentID,
			AssignedAt:   a.AssignedAt,
			Comment:      a.Comment,
			ShiftID:      a.ShiftID,
			ShiftDate:    calendar.FormatDate(a.ShiftDate),
			ShiftPart:    string(a.ShiftPart),
		}
	}
	return ListEmployeeShiftsResponse{Shifts: shifts, Total: len(shifts)}
}
