package repositories

import (
	"context"
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
)

// UserReader defines read operations on accounts. Lookups run with store-admin
// privileges: they must not be blocked by row-visibility policy, because the
// access gate itself depends on the row existing.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListEmployeesByWorkplace(ctx context.Context, workplaceID string) ([]domain.User, error)
}

// UserWriter defines write operations on accounts.
type UserWriter interface {
	// CreateUser inserts a new account row. A unique violation surfaces as
	// apperrors.ErrDuplicate so reconciliation can treat it as "lost the race".
	CreateUser(ctx context.Context, user domain.User) error
	// UpsertUser inserts or overwrites the account keyed by user_id.
	UpsertUser(ctx context.Context, user domain.User) error
	SetUserWorkplace(ctx context.Context, userID, workplaceID string) error
	SetUserApproval(ctx context.Context, userID string, approved bool) error
	UpdateUserProfile(ctx context.Context, userID string, fullName, avatarURL *string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all account store operations.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
