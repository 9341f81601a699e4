package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go

import (
	"context"
	"io"
	"time"

	"session-gateway/app/domain"
)

// SessionTokens mints and verifies the first-party stateless session
// credential bound to a verified subject id.
type SessionTokens interface {
	Issue(subjectID string, now time.Time) (token string, expiresAt time.Time, err error)
	Parse(token string) (*domain.SessionClaims, error)
}

// SessionUsecase defines the session protocol business logic interface
type SessionUsecase interface {
	// ValidateToken runs the full protocol for one request: token
	// extraction from the Authorization header value, remote verification,
	// user reconciliation and session issuance.
	ValidateToken(ctx context.Context, authorizationHeader string) (*domain.ValidationResult, error)

	// ValidateSession verifies a previously issued session credential.
	ValidateSession(ctx context.Context, sessionToken string) (*domain.SessionClaims, error)
}

// FileUsecase defines the per-user file management business logic interface
type FileUsecase interface {
	StoreUserFile(ctx context.Context, userID, filename string, data io.Reader) (string, error)
	DeleteUserFile(ctx context.Context, userID, filename string) (bool, error)
}
