package services

import (
	"context"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
)

// IdentitySvcFacade resolves a verified external identity to a local account,
// creating one when the provider-side provisioning trigger has not run yet.
// Reconcile is idempotent: repeated calls for the same identity return the
// same account with no duplicate side effects.
type IdentitySvcFacade interface {
	Reconcile(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error)
}

// AccessSvcFacade is the layered authorization gate applied before every
// board or shift operation. Each layer short-circuits: a failure at layer N
// never evaluates layer N+1. The workplace id returned by the onboarded
// layers is the authorization scope of the operation.
type AccessSvcFacade interface {
	// RequireUser resolves the authenticated account (layer 1).
	RequireUser(ctx context.Context, userID string) (*domain.User, error)
	// RequireOnboarded additionally demands a workplace reference (layer 2).
	RequireOnboarded(ctx context.Context, userID string) (*domain.User, string, error)
	// RequireManager demands the manager role (layer 3a).
	RequireManager(ctx context.Context, userID string) (*domain.User, string, error)
	// RequireApprovedEmployee demands an approved employee (layer 3b).
	RequireApprovedEmployee(ctx context.Context, userID string) (*domain.User, string, error)
}
