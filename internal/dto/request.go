package dto

import (
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
)

// SubmitRequestRequest submits (or overwrites) an availability statement.
type SubmitRequestRequest struct {
	Requests string `json:"requests" binding:"required,min=1,max=1000"`
}

// UserRequestResponse is a stored availability request.
type UserRequestResponse struct {
	RequestID string    `json:"id"`
	UserID    string    `json:"user_id"`
	Requests  string    `json:"requests"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserRequestResponse converts a domain.UserRequest to its DTO.
func ToUserRequestResponse(r *domain.UserRequest) UserRequestResponse {
	return UserRequestResponse{
		RequestID: r.RequestID,
		UserID:    r.UserID,
		Requests:  r.Requests,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToUserRequestResponses converts a slice of requests.
func ToUserRequestResponses(rs []domain.UserRequest) []UserRequestResponse {
	out := make([]UserRequestResponse, len(rs))
	for i := range rs {
		out[i] = ToUserRequestResponse(&rs[i])
	}
	return out
}
