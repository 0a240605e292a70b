package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/utils"
)

// identityService resolves verified external identities to local accounts.
// When the account row is missing (the provisioning trigger lost a race or
// never ran), it creates one with safe defaults. Creation races with a
// concurrent request are resolved by re-fetching the winner's row.
type identityService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

// NewIdentityService creates a new identity service instance.
func NewIdentityService(userRepo portsrepo.UserRepositoryFacade) portssvc.IdentitySvcFacade {
	return &identityService{userRepo: userRepo}
}

// Reconcile returns the local account for the given identity, creating it if
// necessary. It is idempotent and safe to call concurrently for the same
// identity.
func (s *identityService) Reconcile(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, identity.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up account during reconciliation", slog.String("user_id", identity.ID))
		return nil, apperrors.NewProvisioningFailedError("failed to look up account", err)
	}

	s.LogInfo(ctx, "Account row missing for authenticated identity, creating defaults", slog.String("user_id", identity.ID))

	newUser := domain.User{
		UserID:     identity.ID,
		Email:      identity.Email,
		Username:   utils.GenerateUsername(identity.Email),
		FullName:   fallbackName(identity),
		IsManager:  false,
		IsActive:   true,
		IsApproved: false,
	}
	if identity.ID != "" {
		googleID := identity.ID
		newUser.GoogleID = &googleID
	}
	if identity.AvatarURL != "" {
		avatarURL := identity.AvatarURL
		newUser.AvatarURL = &avatarURL
	}

	err = s.userRepo.CreateUser(ctx, newUser)
	if err == nil {
		// Re-fetch so both race outcomes return the stored row, timestamps
		// included, rather than the in-memory draft.
		created, ferr := s.userRepo.FindUserByID(ctx, identity.ID)
		if ferr != nil {
			s.LogError(ctx, ferr, "Failed to fetch account after creation", slog.String("user_id", identity.ID))
			return nil, apperrors.NewProvisioningFailedError("failed to fetch account after creation", ferr)
		}
		return created, nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		// A concurrent request won the insert race. Their row is as good as
		// ours would have been, so adopt it.
		winner, ferr := s.userRepo.FindUserByID(ctx, identity.ID)
		if ferr != nil {
			s.LogError(ctx, ferr, "Failed to fetch account after losing creation race", slog.String("user_id", identity.ID))
			return nil, apperrors.NewProvisioningFailedError("failed to fetch account after creation race", ferr)
		}
		return winner, nil
	}

	s.LogError(ctx, err, "Failed to create account during reconciliation", slog.String("user_id", identity.ID))
	return nil, apperrors.NewProvisioningFailedError("failed to create account", err)
}

// fallbackName picks a display name from the identity, preferring the
// provider's full name, then its short name, then the email local part,
// and finally a generic placeholder.
func fallbackName(identity domain.ExternalIdentity) string {
	if identity.FullName != "" {
		return identity.FullName
	}
	if identity.Name != "" {
		return identity.Name
	}
	if at := strings.IndexByte(identity.Email, '@'); at > 0 {
		return identity.Email[:at]
	}
	return "User"
}
