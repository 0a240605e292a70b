package domain

import "time"

// User represents an account in the domain. Rows are created either by the
// identity provider's provisioning trigger or by the reconciliation auto-heal,
// then completed during onboarding.
type User struct {
	UserID                 string     `json:"userID"` // External identity id (UUID)
	Email                  string     `json:"email"`
	Username               string     `json:"username"`
	FullName               string     `json:"fullName"`
	IsManager              bool       `json:"isManager"`
	IsActive               bool       `json:"isActive"`
	IsApproved             bool       `json:"isApproved"`
	WorkplaceID            *string    `json:"workplaceID"` // Nil until onboarding completes
	GoogleID               *string    `json:"googleID,omitempty"`
	AvatarURL              *string    `json:"avatarURL,omitempty"`
	PasswordHash           *string    `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// Onboarded reports whether the account has finished onboarding.
func (u *User) Onboarded() bool {
	return u.WorkplaceID != nil && *u.WorkplaceID != ""
}

// ExternalIdentity is the verified identity handed over by the auth provider.
type ExternalIdentity struct {
	ID            string
	Email         string
	FullName      string // "full_name" profile metadata, may be empty
	Name          string // "name" profile metadata, may be empty
	AvatarURL     string
	EmailVerified bool
}
