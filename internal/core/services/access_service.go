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

const completeProfilePath = "/auth/complete-profile"

// accessService implements the layered authorization gates. Each gate builds
// on the previous one and fails with an error that tells the client where to
// send the user next.
type accessService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

var _ portssvc.AccessSvcFacade = (*accessService)(nil)

// NewAccessService creates a new access service instance.
func NewAccessService(userRepo portsrepo.UserRepositoryFacade) portssvc.AccessSvcFacade {
	return &accessService{userRepo: userRepo}
}

// RequireUser resolves the account row for an authenticated subject. A valid
// token whose account row is missing gets a profile-incomplete error rather
// than a plain 401, so the client can route to onboarding.
func (s *accessService) RequireUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewIncompleteProfileError("PROFILE_INCOMPLETE", "account setup is incomplete", completeProfilePath)
		}
		s.LogError(ctx, err, "Failed to resolve account", slog.String("user_id", userID))
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("account is deactivated")
	}
	return user, nil
}

// RequireOnboarded additionally demands that the account is attached to a
// workplace. The returned workplace id scopes every downstream operation.
func (s *accessService) RequireOnboarded(ctx context.Context, userID string) (*domain.User, string, error) {
	user, err := s.RequireUser(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if !user.Onboarded() {
		return nil, "", apperrors.NewIncompleteProfileError("WORKPLACE_MISSING", "no workplace is linked to this account", completeProfilePath)
	}
	return user, *user.WorkplaceID, nil
}

// RequireManager demands the manager role on top of the onboarded gate.
func (s *accessService) RequireManager(ctx context.Context, userID string) (*domain.User, string, error) {
	user, workplaceID, err := s.RequireOnboarded(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if !user.IsManager {
		return nil, "", apperrors.NewForbiddenError("manager access required")
	}
	return user, workplaceID, nil
}

// RequireApprovedEmployee demands an approved non-manager member on top of
// the onboarded gate. Managers are rejected outright, and pending members get
// a distinct message so the client can show the waiting-for-approval state.
func (s *accessService) RequireApprovedEmployee(ctx context.Context, userID string) (*domain.User, string, error) {
	user, workplaceID, err := s.RequireOnboarded(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if user.IsManager {
		return nil, "", apperrors.NewForbiddenError("employee access only")
	}
	if !user.IsApproved {
		return nil, "", apperrors.NewForbiddenError("membership is pending manager approval")
	}
	return user, workplaceID, nil
}
