package dto

// OnboardingRequest completes a profile after first authentication. The role
// selects between the manager flow (workplace creation, invite-gated) and the
// employee flow (join by business name).
type OnboardingRequest struct {
	Role         string `json:"role" binding:"required,oneof=manager employee"`
	BusinessName string `json:"businessName" binding:"required,min=1,max=100"`
	FullName     string `json:"fullName" binding:"omitempty,max=100"`
	InviteCode   string `json:"inviteCode"`
}

// OnboardingResponse reports the outcome of a completed onboarding.
type OnboardingResponse struct {
	Success     bool   `json:"success"`
	Role        string `json:"role"`
	WorkplaceID string `json:"workplace_id,omitempty"`
	Pending     bool   `json:"pending,omitempty"` // Employees await manager approval
}
