package errors

import (
	"errors"
	"fmt"
	"net/http"

	"session-gateway/app/domain"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Session flow errors
	ErrCodeNoTokenProvided    ErrorCode = "NO_TOKEN_PROVIDED"
	ErrCodeInvalidTokenFormat ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeSessionExpired     ErrorCode = "SESSION_EXPIRED"
	ErrCodeInvalidSession     ErrorCode = "INVALID_SESSION"

	// Provider errors
	ErrCodeStoreUnavailable    ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeUploadFailed        ErrorCode = "UPLOAD_FAILED"
	ErrCodeUnsupportedProvider ErrorCode = "UNSUPPORTED_PROVIDER"

	// User errors
	ErrCodeUserExists ErrorCode = "USER_EXISTS"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"

	// Rate limiting
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Generic errors
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// FromDomain translates a domain sentinel error into the AppError the REST
// layer serves. Unrecognized errors map to an internal error so the engine
// never leaks partial or ambiguous state to the client.
func FromDomain(err error) *AppError {
	switch {
	case errors.Is(err, domain.ErrNoTokenProvided):
		return Wrap(ErrCodeNoTokenProvided, "no token provided", err)
	case errors.Is(err, domain.ErrInvalidTokenFormat):
		return Wrap(ErrCodeInvalidTokenFormat, "invalid token format", err)
	case errors.Is(err, domain.ErrInvalidToken):
		return Wrap(ErrCodeInvalidToken, "invalid token", err)
	case errors.Is(err, domain.ErrSessionExpired):
		return Wrap(ErrCodeSessionExpired, "session expired", err)
	case errors.Is(err, domain.ErrInvalidSession):
		return Wrap(ErrCodeInvalidSession, "invalid session", err)
	case errors.Is(err, domain.ErrStoreUnavailable):
		return Wrap(ErrCodeStoreUnavailable, "persistent store unavailable", err)
	case errors.Is(err, domain.ErrUploadFailed):
		return Wrap(ErrCodeUploadFailed, "upload failed", err)
	case errors.Is(err, domain.ErrUnsupportedProvider):
		return Wrap(ErrCodeUnsupportedProvider, "unsupported provider", err)
	case errors.Is(err, domain.ErrUserExists), errors.Is(err, domain.ErrDuplicateKey):
		return Wrap(ErrCodeUserExists, "user already exists", err)
	default:
		return Wrap(ErrCodeInternalError, "internal server error", err)
	}
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeNoTokenProvided, ErrCodeInvalidTokenFormat, ErrCodeInvalidToken,
		ErrCodeSessionExpired, ErrCodeInvalidSession:
		return http.StatusUnauthorized
	case ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUserExists:
		return http.StatusConflict
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeUploadFailed:
		return http.StatusBadGateway
	case ErrCodeUnsupportedProvider, ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors
var (
	ErrNoTokenProvided    = New(ErrCodeNoTokenProvided, "no token provided")
	ErrInvalidTokenFormat = New(ErrCodeInvalidTokenFormat, "invalid token format")
	ErrInvalidToken       = New(ErrCodeInvalidToken, "invalid token")
	ErrInternalError      = New(ErrCodeInternalError, "internal server error")
	ErrRateLimitExceeded  = New(ErrCodeRateLimitExceeded, "rate limit exceeded")
	ErrBadRequest         = New(ErrCodeBadRequest, "bad request")
	ErrNotFound           = New(ErrCodeNotFound, "resource not found")
)
