package repositories

import (
	"context"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
)

// WorkplaceRepositoryFacade defines the workplace store operations. Deletion
// exists only as the compensating action for a failed onboarding sequence.
type WorkplaceRepositoryFacade interface {
	// CreateWorkplace inserts a workplace. A duplicate business name surfaces
	// as a conflict wrapping apperrors.ErrDuplicate.
	CreateWorkplace(ctx context.Context, workplace domain.Workplace) error
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)
	FindWorkplaceByBusinessName(ctx context.Context, businessName string) (*domain.Workplace, error)
	DeleteWorkplace(ctx context.Context, workplaceID string) error
}

// InviteRepositoryFacade defines the invite-code store operations.
type InviteRepositoryFacade interface {
	// FindUnusedInvite returns the invite only when it exists and is unused.
	FindUnusedInvite(ctx context.Context, code string) (*domain.Invite, error)
	MarkInviteUsed(ctx context.Context, code string) error
}
