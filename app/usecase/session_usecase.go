package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"session-gateway/app/domain"
	"session-gateway/app/port"
	"session-gateway/app/utils/logger"
)

// SessionUsecase turns verified third-party identities into first-party
// sessions. User reconciliation is best-effort: a store outage must not
// lock users out, so reconcile failures are logged and the session is
// issued anyway.
type SessionUsecase struct {
	providers  port.Providers
	reconciler port.UserReconciler
	tokens     port.SessionTokens
	logger     *slog.Logger
	now        func() time.Time
}

// NewSessionUsecase creates a new SessionUsecase instance
func NewSessionUsecase(
	providers port.Providers,
	reconciler port.UserReconciler,
	tokens port.SessionTokens,
	log *slog.Logger,
) *SessionUsecase {
	return &SessionUsecase{
		providers:  providers,
		reconciler: reconciler,
		tokens:     tokens,
		logger:     log,
		now:        time.Now,
	}
}

// ValidateToken extracts the bearer token from the Authorization header,
// verifies it against the configured identity provider, reconciles the
// user record and issues a session token.
func (u *SessionUsecase) ValidateToken(ctx context.Context, authorizationHeader string) (*domain.ValidationResult, error) {
	rawToken, err := extractBearerToken(authorizationHeader)
	if err != nil {
		return nil, err
	}

	verifier, err := u.providers.IdentityVerifier(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve identity verifier: %w", err)
	}

	identity, err := verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	result := &domain.ValidationResult{Identity: identity}

	user, isNew, err := u.reconciler.Reconcile(ctx, identity)
	if err != nil {
		// Availability over consistency: the identity is proven, so the
		// session is issued even when the user record could not be synced.
		logger.LogError(u.logger, err, "user reconciliation skipped",
			"subject_id", identity.SubjectID)
	} else {
		result.User = user
		result.IsNewUser = isNew
	}

	result.Message = welcomeMessage(identity, isNew)

	sessionToken, expiresAt, err := u.tokens.Issue(identity.SubjectID, u.now())
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	result.SessionToken = sessionToken
	result.ExpiresAt = expiresAt

	u.logger.Info("session issued",
		"subject_id", identity.SubjectID,
		"is_new_user", result.IsNewUser,
		"reconciled", result.User != nil)
	return result, nil
}

// ValidateSession parses and validates a previously issued session token.
func (u *SessionUsecase) ValidateSession(ctx context.Context, sessionToken string) (*domain.SessionClaims, error) {
	claims, err := u.tokens.Parse(sessionToken)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", domain.ErrNoTokenProvided
	}
	// A header of just "Bearer" carries no credential at all, so it counts
	// as missing rather than malformed; "Bearer " with nothing after it
	// names a credential and fails to supply one, which is a format error.
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", domain.ErrNoTokenProvided
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrInvalidTokenFormat
	}
	return token, nil
}

func welcomeMessage(identity *domain.VerifiedIdentity, isNew bool) string {
	name := identity.DisplayName
	if name == "" {
		name = identity.Email
	}
	if isNew {
		return fmt.Sprintf("Welcome, %s!", name)
	}
	return fmt.Sprintf("Welcome back, %s!", name)
}
