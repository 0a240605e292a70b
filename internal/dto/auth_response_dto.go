package dto

import "time"

// LoginRequest is a local username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a local username/password account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"omitempty,min=3,max=50,alphanum"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse carries the issued tokens.
type LoginResponse struct {
	Token        string    `json:"token"`
	ExpiresAt    time.Time `json:"expires_at"`
	RefreshToken string    `json:"refresh_token,omitempty"`
}

// ExchangeCodeRequest carries the provider authorization code from the frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCodeResponse returns the application JWT plus the routing hint the
// navigation layer uses after login.
type ExchangeCodeResponse struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}
