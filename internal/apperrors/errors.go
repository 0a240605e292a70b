package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller lacks the role or workplace scope for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that no account could be resolved for the caller.
var ErrUnauthorized = errors.New("unauthorized")

// ErrProfileIncomplete indicates the account exists but onboarding has not finished.
var ErrProfileIncomplete = errors.New("profile incomplete")

// ErrProvisioningFailed indicates an unexpected store failure while auto-healing
// a missing account row.
var ErrProvisioningFailed = errors.New("account provisioning failed")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError is a structured error carrying the HTTP status code, a stable
// machine-readable kind, and a human message. Handlers serialize it directly.
type AppError struct {
	Code     int    `json:"-"`
	Kind     string `json:"code"`
	Message  string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
	Err      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Kind: "INTERNAL", Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Kind: "NOT_FOUND", Message: message, Err: ErrNotFound}
}

// NewConflictError creates a 409 AppError.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Kind: "CONFLICT", Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError creates a 400 AppError for input that failed a business rule.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: "INVALID_INPUT", Message: message, Err: ErrValidation}
}

// NewBadRequestError creates a 400 AppError for malformed requests.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: "INVALID_INPUT", Message: message, Err: ErrValidation}
}

// NewUnauthorizedError creates a 401 AppError.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Kind: "UNAUTHORIZED", Message: message, Err: ErrUnauthorized}
}

// NewForbiddenError creates a 403 AppError.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Kind: "FORBIDDEN", Message: message, Err: ErrForbidden}
}

// NewIncompleteProfileError creates an AppError carrying a redirect hint so the
// navigation layer can route to onboarding without re-deriving business rules.
func NewIncompleteProfileError(kind, message, redirect string) *AppError {
	return &AppError{
		Code:     http.StatusConflict,
		Kind:     kind,
		Message:  message,
		Redirect: redirect,
		Err:      ErrProfileIncomplete,
	}
}

// NewProvisioningFailedError creates a 500 AppError for account auto-heal failures.
func NewProvisioningFailedError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    "PROVISIONING_FAILED",
		Message: message,
		Err:     errors.Join(ErrProvisioningFailed, err),
	}
}

// NewInternalServerError creates a 500 AppError.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Kind: "INTERNAL", Message: message}
}

// NewGatewayTimeoutError creates a 504 AppError for upstream provider failures.
func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Kind: "UPSTREAM_TIMEOUT", Message: message}
}
