package services

import (
	"context"

	"github.com/shiftboard/shiftboard_app/internal/dto"
)

// OnboardingSvcFacade completes a signed-in account's role selection.
// Manager onboarding provisions a workplace and burns an invite code;
// employee onboarding parks the account pending approval.
type OnboardingSvcFacade interface {
	CompleteOnboarding(ctx context.Context, userID string, req dto.OnboardingRequest) (*dto.OnboardingResponse, error)
}
