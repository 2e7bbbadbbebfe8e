// Package errors defines the application error taxonomy. Every failure
// surfaced to a client is representable as one AppError kind; anything
// unclassified is coerced to the internal kind by the error middleware.
package errors

import (
	"net/http"

	"trove/internal/errors"
)

// Kind is the failure category. Each kind maps to exactly one HTTP status.
type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindAuthentication Kind = "AUTHENTICATION_ERROR"
	KindAuthorization  Kind = "AUTHORIZATION_ERROR"
	KindNotFound       Kind = "NOT_FOUND_ERROR"
	KindConflict       Kind = "CONFLICT_ERROR"
	KindInternal       Kind = "INTERNAL_SERVER_ERROR"
	KindExternal       Kind = "EXTERNAL_SERVICE_ERROR"
	KindRateLimit      Kind = "RATE_LIMIT_ERROR"
)

// HTTPStatus returns the HTTP status a kind renders as. Unknown kinds
// fall back to 500.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindExternal:
		return http.StatusBadGateway
	case KindRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Stable machine-readable error codes. The registry is fixed: clients key
// behavior off these, so codes are never renumbered.
const (
	CodeTokenMissing       = "AUTH_001"
	CodeTokenInvalid       = "AUTH_002"
	CodeTokenExpired       = "AUTH_003"
	CodeInvalidCredentials = "AUTH_004"
	CodeUserNotFound       = "AUTH_005"

	CodeInsufficientPermissions = "AUTHZ_001"
	CodeResourceAccessDenied    = "AUTHZ_002"

	CodeInvalidInput         = "VAL_001"
	CodeMissingRequiredField = "VAL_002"
	CodeInvalidFormat        = "VAL_003"

	CodeResourceNotFound      = "RES_001"
	CodeResourceAlreadyExists = "RES_002"

	CodeDatabaseError    = "SRV_001"
	CodeExternalAPIError = "SRV_002"
	CodeUnknownError     = "SRV_003"

	CodeRateLimited = "RATE_001"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	Kind() Kind        // Failure category
	HTTPStatus() int   // Derived HTTP status code
	ErrorCode() string // Stable machine-readable code
	Message() string   // User-facing error message
	Details() any      // Optional structured details
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	kind    Kind
	code    string
	message string
	details any
	origin  *BaseError
}

// NewBaseError creates a new base error.
func NewBaseError(kind Kind, code, message string) *BaseError {
	return &BaseError{
		kind:    kind,
		code:    code,
		message: message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// Kind returns the failure category.
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPStatus returns the HTTP status code derived from the kind.
func (e *BaseError) HTTPStatus() int {
	return e.kind.HTTPStatus()
}

// ErrorCode returns the stable machine-readable code.
func (e *BaseError) ErrorCode() string {
	return e.code
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns optional structured details.
func (e *BaseError) Details() any {
	return e.details
}

// WithMessage returns a copy of the error carrying a different message.
// The kind and code stay stable so clients can still classify it.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		kind:    e.kind,
		code:    e.code,
		message: message,
		details: e.details,
		origin:  e.root(),
	}
}

// WithDetails returns a copy of the error carrying structured details.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		kind:    e.kind,
		code:    e.code,
		message: e.message,
		details: details,
		origin:  e.root(),
	}
}

// Unwrap resolves a customized copy back to the predefined value it came
// from, so errors.Is against the sentinels keeps working.
func (e *BaseError) Unwrap() error {
	if e.origin == nil {
		return nil
	}

	return e.origin
}

func (e *BaseError) root() *BaseError {
	if e.origin != nil {
		return e.origin
	}

	return e
}

// WrapMessage wraps the error with additional context and a stack trace.
// errors.As still resolves the result to the underlying *BaseError.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Predefined error values.
var (
	// Authentication
	ErrTokenMissing       = NewBaseError(KindAuthentication, CodeTokenMissing, "Authentication token is missing")
	ErrTokenInvalid       = NewBaseError(KindAuthentication, CodeTokenInvalid, "Invalid authentication token")
	ErrTokenExpired       = NewBaseError(KindAuthentication, CodeTokenExpired, "Authentication token has expired")
	ErrTokenNotActive     = NewBaseError(KindAuthentication, CodeTokenInvalid, "Authentication token is not active yet")
	ErrInvalidCredentials = NewBaseError(KindAuthentication, CodeInvalidCredentials, "Invalid email or password")
	ErrAuthUserNotFound   = NewBaseError(KindNotFound, CodeUserNotFound, "User for this session no longer exists")
	ErrOAuthFailed        = NewBaseError(KindAuthentication, CodeInvalidCredentials, "OAuth authentication failed")

	// Authorization
	ErrInsufficientPermissions = NewBaseError(KindAuthorization, CodeInsufficientPermissions, "Access denied")
	ErrResourceAccessDenied    = NewBaseError(KindAuthorization, CodeResourceAccessDenied, "You do not have access to this resource")

	// Validation
	ErrInvalidInput         = NewBaseError(KindValidation, CodeInvalidInput, "Input validation failed")
	ErrMissingRequiredField = NewBaseError(KindValidation, CodeMissingRequiredField, "A required field is missing")
	ErrInvalidFormat        = NewBaseError(KindValidation, CodeInvalidFormat, "Field has an invalid format")

	// Resources
	ErrResourceNotFound      = NewBaseError(KindNotFound, CodeResourceNotFound, "Resource not found")
	ErrResourceAlreadyExists = NewBaseError(KindConflict, CodeResourceAlreadyExists, "Resource already exists")
	ErrUserAlreadyExists     = NewBaseError(KindConflict, CodeResourceAlreadyExists, "User with this email already exists")
	ErrTripNotFound          = NewBaseError(KindNotFound, CodeResourceNotFound, "Trip not found")
	ErrItineraryNotFound     = NewBaseError(KindNotFound, CodeResourceNotFound, "Itinerary not found")
	ErrItineraryExists       = NewBaseError(KindConflict, CodeResourceAlreadyExists, "Itinerary already exists for this trip")

	// Server / external
	ErrInternal             = NewBaseError(KindInternal, CodeUnknownError, "Internal server error")
	ErrPlannerNotConfigured = NewBaseError(KindInternal, CodeExternalAPIError, "AI planner is not configured")
	ErrPlannerResponse      = NewBaseError(KindExternal, CodeExternalAPIError, "AI generated an invalid response")
	ErrPlannerUnavailable   = NewBaseError(KindExternal, CodeExternalAPIError, "AI planner is unavailable")

	// Rate limiting
	ErrRateLimited = NewBaseError(KindRateLimit, CodeRateLimited, "Too many requests, please try again later")
)

// DatabaseError wraps a database failure as an AppError without exposing the
// driver error to clients.
type DatabaseError struct {
	err     error
	details any
}

// NewDatabaseError creates a database-related AppError.
func NewDatabaseError(err error, details any) AppError {
	return &DatabaseError{err: err, details: details}
}

// Error implements the error interface.
func (e *DatabaseError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Kind returns the failure category.
func (e *DatabaseError) Kind() Kind { return KindInternal }

// HTTPStatus returns the HTTP status code.
func (e *DatabaseError) HTTPStatus() int { return http.StatusInternalServerError }

// ErrorCode returns the stable machine-readable code.
func (e *DatabaseError) ErrorCode() string { return CodeDatabaseError }

// Message returns the user-facing error message.
func (e *DatabaseError) Message() string { return "Database operation failed" }

// Details returns optional structured details.
func (e *DatabaseError) Details() any { return e.details }

// Unwrap exposes the underlying driver error to errors.Is checks.
func (e *DatabaseError) Unwrap() error { return e.err }
