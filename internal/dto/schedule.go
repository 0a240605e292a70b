package dto

import (
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	"github.com/shiftboard/shiftboard_app/internal/utils/calendar"
)

// --- Schedule (shift board) DTOs ---

// PreferencesPayload mirrors the stored board preferences.
type PreferencesPayload struct {
	ClosedDays   []string `json:"closed_days" binding:"required,dive,weekday"`
	ShiftsPerDay int      `json:"number_of_shifts_per_day" binding:"required,min=1,max=10"`
}

// SetPreferencesRequest upserts preferences for a week.
type SetPreferencesRequest struct {
	WeekStart   string             `json:"week_start" binding:"required,datetime=2006-01-02"`
	Preferences PreferencesPayload `json:"preferences" binding:"required"`
}

// GetPreferencesResponse describes a week's board, falling back to defaults
// when no board row exists yet.
type GetPreferencesResponse struct {
	Preferences         PreferencesPayload `json:"preferences"`
	IsPublished         bool               `json:"is_published"`
	RequestsWindowStart *time.Time         `json:"requests_window_start"`
	RequestsWindowEnd   *time.Time         `json:"requests_window_end"`
	Exists              bool               `json:"exists"`
}

// SetRequestWindowRequest upserts the availability-request window for a week.
type SetRequestWindowRequest struct {
	WeekStart           string    `json:"week_start" binding:"required,datetime=2006-01-02"`
	RequestsWindowStart time.Time `json:"requests_window_start" binding:"required"`
	RequestsWindowEnd   time.Time `json:"requests_window_end" binding:"required"`
}

// PublishRequest toggles a week's publish state.
type PublishRequest struct {
	WeekStart   string `json:"week_start" binding:"required,datetime=2006-01-02"`
	IsPublished *bool  `json:"is_published" binding:"required"`
}

// ShiftBoardResponse is the stored board returned after a board mutation.
type ShiftBoardResponse struct {
	BoardID             string                  `json:"id"`
	WorkplaceID         string                  `json:"workplace_id"`
	WeekStartDate       string                  `json:"week_start_date"`
	IsPublished         bool                    `json:"is_published"`
	Preferences         domain.BoardPreferences `json:"preferences"`
	RequestsWindowStart *time.Time              `json:"requests_window_start"`
	RequestsWindowEnd   *time.Time              `json:"requests_window_end"`
	Content             *domain.BoardContent    `json:"content,omitempty"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

// ToShiftBoardResponse converts a domain.ShiftBoard to its DTO.
func ToShiftBoardResponse(b *domain.ShiftBoard) ShiftBoardResponse {
	return ShiftBoardResponse{
		BoardID:             b.BoardID,
		WorkplaceID:         b.WorkplaceID,
		WeekStartDate:       calendar.FormatDate(b.WeekStartDate),
		IsPublished:         b.IsPublished,
		Preferences:         b.Preferences,
		RequestsWindowStart: b.RequestsWindowStart,
		RequestsWindowEnd:   b.RequestsWindowEnd,
		Content:             b.Content,
		UpdatedAt:           b.UpdatedAt,
	}
}

// WeekAssignmentResponse is a flattened assignment row for the board view.
type WeekAssignmentResponse struct {
	ID        string  `json:"id"`
	ShiftID   string  `json:"shift_id"`
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	Comment   *string `json:"comment"`
	ShiftDate string  `json:"shift_date"`
	ShiftPart string  `json:"shift_part"`
}

// ToWeekAssignmentResponses converts the domain assignments.
func ToWeekAssignmentResponses(as []domain.WeekAssignment) []WeekAssignmentResponse {
	out := make([]WeekAssignmentResponse, len(as))
	for i, a := range as {
		out[i] = WeekAssignmentResponse{
			ID:        a.ID,
			ShiftID:   a.ShiftID,
			UserID:    a.UserID,
			UserName:  a.UserName,
			Comment:   a.Comment,
			ShiftDate: calendar.FormatDate(a.ShiftDate),
			ShiftPart: string(a.ShiftPart),
		}
	}
	return out
}
