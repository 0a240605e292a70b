package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
)

// onboardingService completes a signed-in account's role selection. The
// manager flow provisions a workplace across several writes; a failure after
// the workplace insert triggers a compensating delete so no orphan tenant is
// left behind.
type onboardingService struct {
	BaseService
	userRepo      portsrepo.UserRepositoryFacade
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
	inviteRepo    portsrepo.InviteRepositoryFacade
}

var _ portssvc.OnboardingSvcFacade = (*onboardingService)(nil)

// NewOnboardingService creates a new onboarding service instance.
func NewOnboardingService(userRepo portsrepo.UserRepositoryFacade, workplaceRepo portsrepo.WorkplaceRepositoryFacade, inviteRepo portsrepo.InviteRepositoryFacade) portssvc.OnboardingSvcFacade {
	return &onboardingService{
		userRepo:      userRepo,
		workplaceRepo: workplaceRepo,
		inviteRepo:    inviteRepo,
	}
}

// CompleteOnboarding finishes onboarding for the authenticated account.
func (s *onboardingService) CompleteOnboarding(ctx context.Context, userID string, req dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("account not found")
		}
		return nil, err
	}
	if user.Onboarded() {
		return nil, apperrors.NewConflictError("profile already exists")
	}

	switch req.Role {
	case "manager":
		return s.onboardManager(ctx, user, req)
	case "employee":
		return s.onboardEmployee(ctx, user, req)
	default:
		return nil, apperrors.NewValidationFailedError("role must be manager or employee")
	}
}

// onboardManager runs the invite-gated workplace provisioning sequence:
// verify invite, pre-check the business name, persist the user first so the
// workplace manager FK resolves, insert the workplace, link the user, and
// finally burn the invite.
func (s *onboardingService) onboardManager(ctx context.Context, user *domain.User, req dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	if req.InviteCode == "" {
		return nil, apperrors.NewForbiddenError("an invite code is required for manager onboarding")
	}
	invite, err := s.inviteRepo.FindUnusedInvite(ctx, req.InviteCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewForbiddenError("invalid or already used invite code")
		}
		return nil, err
	}

	if existing, err := s.workplaceRepo.FindWorkplaceByBusinessName(ctx, req.BusinessName); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("a workplace with this business name already exists")
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user.IsManager = true
	user.IsApproved = true
	user.WorkplaceID = nil
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if err := s.userRepo.UpsertUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to persist manager account before workplace creation", slog.String("user_id", user.UserID))
		return nil, err
	}

	workplace := domain.Workplace{
		WorkplaceID:  uuid.NewString(),
		BusinessName: req.BusinessName,
		ManagerID:    user.UserID,
	}
	if err := s.workplaceRepo.CreateWorkplace(ctx, workplace); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a workplace with this business name already exists")
		}
		return nil, err
	}

	if err := s.userRepo.SetUserWorkplace(ctx, user.UserID, workplace.WorkplaceID); err != nil {
		// Compensate: remove the workplace so retrying onboarding does not
		// hit the business-name conflict on its own half-created tenant.
		if derr := s.workplaceRepo.DeleteWorkplace(ctx, workplace.WorkplaceID); derr != nil {
			s.LogError(ctx, derr, "Failed to roll back workplace after link failure", slog.String("workplace_id", workplace.WorkplaceID))
		}
		s.LogError(ctx, err, "Failed to link manager to new workplace", slog.String("workplace_id", workplace.WorkplaceID))
		return nil, err
	}

	if err := s.inviteRepo.MarkInviteUsed(ctx, invite.Code); err != nil {
		// The tenant is fully provisioned at this point. An unburned invite
		// is recoverable by hand, so log and carry on.
		s.LogError(ctx, err, "Failed to mark invite as used", slog.String("invite_code", invite.Code))
	}

	s.LogInfo(ctx, "Manager onboarding completed", slog.String("user_id", user.UserID), slog.String("workplace_id", workplace.WorkplaceID))
	return &dto.OnboardingResponse{Success: true, Role: "manager", WorkplaceID: workplace.WorkplaceID}, nil
}

// onboardEmployee joins an existing workplace by business name and parks the
// account pending manager approval.
func (s *onboardingService) onboardEmployee(ctx context.Context, user *domain.User, req dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	workplace, err := s.workplaceRepo.FindWorkplaceByBusinessName(ctx, req.BusinessName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no workplace found with this business name")
		}
		return nil, err
	}

	user.IsManager = false
	user.IsApproved = false
	user.WorkplaceID = &workplace.WorkplaceID
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if err := s.userRepo.UpsertUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to persist employee account", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee onboarding completed", slog.String("user_id", user.UserID), slog.String("workplace_id", workplace.WorkplaceID))
	return &dto.OnboardingResponse{Success: true, Role: "employee", WorkplaceID: workplace.WorkplaceID, Pending: true}, nil
}
