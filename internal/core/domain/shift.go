package domain

import "time"

// ShiftPart enumerates the slots of a working day.
type ShiftPart string

const (
	ShiftPartMorning ShiftPart = "morning"
	ShiftPartNoon    ShiftPart = "noon"
	ShiftPartEvening ShiftPart = "evening"
)

// Valid reports whether the part is one of the known slots.
func (p ShiftPart) Valid() bool {
	switch p {
	case ShiftPartMorning, ShiftPartNoon, ShiftPartEvening:
		return true
	}
	return false
}

// Shift is a single slot on the board. (workplace, date, part) is unique.
type Shift struct {
	ShiftID     string        `json:"id"`
	WorkplaceID string        `json:"workplaceID"`
	ShiftDate   time.Time     `json:"shiftDate"` // Calendar date, UTC midnight
	ShiftPart   ShiftPart     `json:"shiftPart"`
	CreatedAt   time.Time     `json:"createdAt"`
	Workers     []ShiftWorker `json:"workers,omitempty"`
}

// ShiftWorker assigns an account to a shift. (shift, account) is unique.
type ShiftWorker struct {
	AssignmentID string    `json:"id"`
	ShiftID      string    `json:"shiftID"`
	UserID       string    `json:"userID"`
	Comment      *string   `json:"comment,omitempty"`
	AssignedAt   time.Time `json:"assignedAt"`
	// Denormalized account fields for listings and snapshots.
	FullName  string  `json:"fullName,omitempty"`
	Email     string  `json:"email,omitempty"`
	AvatarURL *string `json:"avatarURL,omitempty"`
}

// AssignedShift is an employee-facing view of one assignment joined with its
// shift, used by the visibility-filtered listing.
type AssignedShift struct {
	AssignmentID string    `json:"assignment_id"`
	AssignedAt   time.Time `json:"assigned_at"`
	Comment      *string   `json:"comment,omitempty"`
	ShiftID      string    `json:"id"`
	WorkplaceID  string    `json:"workplace_id"`
	ShiftDate    time.Time `json:"-"`
	ShiftPart    ShiftPart `json:"shift_part"`
}

// UserRequest is an employee's free-text availability statement. The latest
// submission overwrites the previous one: (account, workplace) is unique.
type UserRequest struct {
	RequestID   string    `json:"id"`
	UserID      string    `json:"userID"`
	WorkplaceID string    `json:"workplaceID"`
	Requests    string    `json:"requests"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
