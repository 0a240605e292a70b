package services

import (
	"context"
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	"github.com/shiftboard/shiftboard_app/internal/dto"
)

// UserSvcFacade covers account lookup, the profile surface, and local
// credential verification.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// GetProfile returns the account joined with its workplace, if any.
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
	// RegisterLocalUser creates a local username/password account.
	RegisterLocalUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// AuthenticateUserByUsername verifies a local password login.
	AuthenticateUserByUsername(ctx context.Context, username, password string) (*domain.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiryTime time.Time) error
	VerifyRefreshToken(ctx context.Context, userID, providedToken string) (*domain.User, error)
	ClearRefreshToken(ctx context.Context, userID string) error
}
