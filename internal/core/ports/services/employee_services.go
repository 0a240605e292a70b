package services

import (
	"context"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
)

// EmployeeSvcFacade manages the workplace roster from the manager side.
type EmployeeSvcFacade interface {
	// ListEmployees returns the approved and pending members of a workplace,
	// excluding the manager making the call.
	ListEmployees(ctx context.Context, workplaceID, managerID string) (approved []domain.User, pending []domain.User, err error)
	ApproveEmployee(ctx context.Context, workplaceID, employeeID string) (*domain.User, error)
	// RejectEmployee detaches a pending employee from the workplace.
	RejectEmployee(ctx context.Context, workplaceID, employeeID string) error
}

// RequestSvcFacade handles worker availability requests for a week.
type RequestSvcFacade interface {
	SubmitRequest(ctx context.Context, userID, workplaceID, requests string) (*domain.UserRequest, error)
	ListUserRequests(ctx context.Context, userID, workplaceID string) ([]domain.UserRequest, error)
	ListWorkplaceRequests(ctx context.Context, workplaceID string) ([]domain.UserRequest, error)
}
