package dto

import (
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
)

// --- User / profile DTOs ---

// UserResponse is the public shape of an account.
type UserResponse struct {
	UserID      string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	IsManager   bool      `json:"is_manager"`
	IsActive    bool      `json:"is_active"`
	IsApproved  bool      `json:"is_approved"`
	WorkplaceID *string   `json:"workplace_id"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToUserResponse converts a domain.User to its DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Email:       u.Email,
		Username:    u.Username,
		FullName:    u.FullName,
		IsManager:   u.IsManager,
		IsActive:    u.IsActive,
		IsApproved:  u.IsApproved,
		WorkplaceID: u.WorkplaceID,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
	}
}

// WorkplaceResponse is the public shape of a workplace.
type WorkplaceResponse struct {
	WorkplaceID  string `json:"id"`
	BusinessName string `json:"business_name"`
	ManagerID    string `json:"manager_id"`
}

// ToWorkplaceResponse converts a domain.Workplace to its DTO.
func ToWorkplaceResponse(w *domain.Workplace) WorkplaceResponse {
	return WorkplaceResponse{
		WorkplaceID:  w.WorkplaceID,
		BusinessName: w.BusinessName,
		ManagerID:    w.ManagerID,
	}
}

// ProfileResponse is the account plus its attached workplace, if any.
type ProfileResponse struct {
	UserResponse
	Workplace *WorkplaceResponse `json:"workplaces"`
}

// UpdateProfileRequest edits the caller's own profile. Pointers distinguish
// omitted fields from zero values.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,min=1,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

// --- Employee roster DTOs ---

// EmployeeRosterResponse splits a workplace's employees by approval state.
type EmployeeRosterResponse struct {
	Employees struct {
		Approved []UserResponse `json:"approved"`
		Pending  []UserResponse `json:"pending"`
		Total    int            `json:"total"`
	} `json:"employees"`
}

// ToEmployeeRosterResponse builds the split roster.
func ToEmployeeRosterResponse(approved, pending []domain.User) EmployeeRosterResponse {
	var resp EmployeeRosterResponse
	resp.Employees.Approved = make([]UserResponse, len(approved))
	for i := range approved {
		resp.Employees.Approved[i] = ToUserResponse(&approved[i])
	}
	resp.Employees.Pending = make([]UserResponse, len(pending))
	for i := range pending {
		resp.Employees.Pending[i] = ToUserResponse(&pending[i])
	}
	resp.Employees.Total = len(approved) + len(pending)
	return resp
}
