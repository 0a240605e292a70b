package domain

import "time"

// BoardPreferences configures how a week's board is laid out.
type BoardPreferences struct {
	ClosedDays   []string `json:"closed_days"`
	ShiftsPerDay int      `json:"number_of_shifts_per_day"`
}

// DefaultBoardPreferences are the implicit settings for weeks without a stored
// board: closed on Friday, two shifts per day.
func DefaultBoardPreferences() BoardPreferences {
	return BoardPreferences{
		ClosedDays:   []string{"friday"},
		ShiftsPerDay: 2,
	}
}

// BoardWorker is an assignment frozen inside a published snapshot.
type BoardWorker struct {
	AssignmentID string    `json:"id"`
	UserID       string    `json:"user_id"`
	AssignedAt   time.Time `json:"assigned_at"`
	Comment      *string   `json:"comment"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
}

// BoardShift is a shift frozen inside a published snapshot.
type BoardShift struct {
	ShiftID   string        `json:"id"`
	ShiftDate string        `json:"shift_date"` // YYYY-MM-DD
	ShiftPart ShiftPart     `json:"shift_part"`
	Workers   []BoardWorker `json:"shift_workers"`
}

// BoardContent is the denormalized point-in-time copy of a week's shifts and
// assignments taken at publish. Post-publish shift edits do not alter it until
// the week is published again.
type BoardContent struct {
	Shifts           []BoardShift `json:"shifts"`
	PublishedAt      time.Time    `json:"published_at"`
	PublishedBy      string       `json:"published_by"`
	TotalShifts      int          `json:"total_shifts"`
	TotalAssignments int          `json:"total_assignments"`
}

// ShiftBoard is the per-(workplace, week) container for publish state,
// preferences and the request window. (workplace, week_start) is unique.
// Content is populated only while published; unpublishing clears it.
type ShiftBoard struct {
	BoardID             string           `json:"id"`
	WorkplaceID         string           `json:"workplaceID"`
	WeekStartDate       time.Time        `json:"weekStartDate"` // Always a Sunday, UTC midnight
	IsPublished         bool             `json:"isPublished"`
	Preferences         BoardPreferences `json:"preferences"`
	RequestsWindowStart *time.Time       `json:"requestsWindowStart"`
	RequestsWindowEnd   *time.Time       `json:"requestsWindowEnd"`
	Content             *BoardContent    `json:"content"` // Nil while unpublished
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// WeekAssignment is a flattened (shift, worker) pair for the manager's weekly
// board view.
type WeekAssignment struct {
	ID        string    `json:"id"` // "<shift_id>-<user_id>"
	ShiftID   string    `json:"shift_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Comment   *string   `json:"comment"`
	ShiftDate time.Time `json:"-"`
	ShiftPart ShiftPart `json:"shift_part"`
}
