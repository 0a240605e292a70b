package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/utils"
)

// userService covers account lookup, the profile surface, and credential
// verification for local logins and refresh tokens.
type userService struct {
	BaseService
	userRepo      portsrepo.UserRepositoryFacade
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// NewUserService creates a new user service instance.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, workplaceRepo portsrepo.WorkplaceRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, workplaceRepo: workplaceRepo}
}

// GetUserByID returns the account row.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return user, nil
}

// GetProfile returns the account joined with its workplace, if one is linked.
func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.ProfileResponse{UserResponse: dto.ToUserResponse(user)}
	if user.Onboarded() {
		workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, *user.WorkplaceID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			// A dangling workplace reference is surfaced as an incomplete
			// profile rather than a broken join.
			s.LogError(ctx, err, "Account references missing workplace", slog.String("user_id", userID))
		} else {
			wp := dto.ToWorkplaceResponse(workplace)
			profile.Workplace = &wp
		}
	}
	return profile, nil
}

// UpdateProfile applies a partial profile update.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	if req.FullName == nil && req.AvatarURL == nil {
		return nil, apperrors.NewValidationFailedError("nothing to update")
	}
	if req.FullName != nil && *req.FullName == "" {
		return nil, apperrors.NewValidationFailedError("full name must not be empty")
	}

	updated, err := s.userRepo.UpdateUserProfile(ctx, userID, req.FullName, req.AvatarURL)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, err
	}
	return updated, nil
}

// RegisterLocalUser creates a local username/password account. The account
// starts active but without a workplace; onboarding attaches one later.
func (s *userService) RegisterLocalUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := req.Username
	if username == "" {
		username = utils.GenerateUsername(req.Email)
	}
	if username == "" {
		return nil, apperrors.NewValidationFailedError("a username could not be derived from the email")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		Username:     username,
		FullName:     req.FullName,
		IsActive:     true,
		PasswordHash: &hash,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("an account with this email or username already exists")
		}
		s.LogError(ctx, err, "Failed to create account", slog.String("username", username))
		return nil, err
	}
	return &user, nil
}

// AuthenticateUserByUsername verifies a local password login.
func (s *userService) AuthenticateUserByUsername(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid username or password")
		}
		return nil, err
	}
	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("account is deactivated")
	}
	return user, nil
}

// UpdateRefreshToken stores the hash of a newly issued refresh token.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiryTime)
}

// VerifyRefreshToken checks a presented refresh token against the stored
// hash and expiry, returning the account when it matches.
func (s *userService) VerifyRefreshToken(ctx context.Context, userID, providedToken string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid refresh token")
		}
		return nil, err
	}
	if user.RefreshTokenHash == "" || !utils.CompareRefreshTokenHash(providedToken, user.RefreshTokenHash) {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}
	if user.RefreshTokenExpiryTime == nil || time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	return user, nil
}

// ClearRefreshToken invalidates the stored refresh token (logout).
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
