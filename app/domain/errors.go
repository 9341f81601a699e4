package domain

import "errors"

// Session flow errors
var (
	// Token extraction errors
	ErrNoTokenProvided    = errors.New("no token provided")
	ErrInvalidTokenFormat = errors.New("invalid token format")

	// Verification errors
	ErrInvalidToken = errors.New("invalid token")

	// Session errors
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidSession = errors.New("invalid session")

	// Persistent store errors
	ErrStoreUnavailable = errors.New("persistent store unavailable")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrUserExists       = errors.New("user already exists")

	// Blob store errors
	ErrUploadFailed = errors.New("upload failed")

	// Configuration errors
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// General errors
	ErrInternal = errors.New("internal error")
)
