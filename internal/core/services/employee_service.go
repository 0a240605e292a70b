package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
)

// employeeService manages the workplace roster from the manager side.
type employeeService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// NewEmployeeService creates a new employee service instance.
func NewEmployeeService(userRepo portsrepo.UserRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{userRepo: userRepo}
}

// ListEmployees returns the workplace's members split into approved and
// pending, excluding the calling manager.
func (s *employeeService) ListEmployees(ctx context.Context, workplaceID, managerID string) ([]domain.User, []domain.User, error) {
	members, err := s.userRepo.ListEmployeesByWorkplace(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplace members", slog.String("workplace_id", workplaceID))
		return nil, nil, err
	}

	approved := make([]domain.User, 0, len(members))
	pending := make([]domain.User, 0)
	for _, member := range members {
		if member.UserID == managerID {
			continue
		}
		if member.IsApproved {
			approved = append(approved, member)
		} else {
			pending = append(pending, member)
		}
	}
	return approved, pending, nil
}

// ApproveEmployee marks a pending workplace member as approved.
func (s *employeeService) ApproveEmployee(ctx context.Context, workplaceID, employeeID string) (*domain.User, error) {
	employee, err := s.findWorkplaceEmployee(ctx, workplaceID, employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetUserApproval(ctx, employee.UserID, true); err != nil {
		s.LogError(ctx, err, "Failed to approve employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	employee.IsApproved = true
	s.LogInfo(ctx, "Employee approved", slog.String("employee_id", employeeID), slog.String("workplace_id", workplaceID))
	return employee, nil
}

// RejectEmployee removes a member's account row, detaching them from the
// workplace. Their next sign-in recreates a blank account via the identity
// reconciliation path.
func (s *employeeService) RejectEmployee(ctx context.Context, workplaceID, employeeID string) error {
	employee, err := s.findWorkplaceEmployee(ctx, workplaceID, employeeID)
	if err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, employee.UserID); err != nil {
		s.LogError(ctx, err, "Failed to reject employee", slog.String("employee_id", employeeID))
		return err
	}
	s.LogInfo(ctx, "Employee rejected", slog.String("employee_id", employeeID), slog.String("workplace_id", workplaceID))
	return nil
}

// findWorkplaceEmployee loads a non-manager member of the given workplace.
func (s *employeeService) findWorkplaceEmployee(ctx context.Context, workplaceID, employeeID string) (*domain.User, error) {
	employee, err := s.userRepo.FindUserByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, err
	}
	if employee.WorkplaceID == nil || *employee.WorkplaceID != workplaceID {
		return nil, apperrors.NewForbiddenError("employee belongs to another workplace")
	}
	if employee.IsManager {
		return nil, apperrors.NewForbiddenError("cannot modify a manager account")
	}
	return employee, nil
}
