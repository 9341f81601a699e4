// Package firebase verifies externally-issued identity tokens against the
// issuer's OIDC discovery document and JWKS. Firebase ID tokens are
// standard OIDC ID tokens issued by https://securetoken.google.com/<project>
// with the project id as audience.
package firebase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"

	"session-gateway/app/config"
	"session-gateway/app/domain"
)

// retryBackoff is the fixed wait before the single clock-skew retry.
const retryBackoff = 1 * time.Second

// remoteVerifier is the remote verification primitive, already normalized
// to the domain claim set. Narrowed to an interface so tests can inject
// failing remotes.
type remoteVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*domain.VerifiedIdentity, error)
}

// oidcRemote adapts *oidc.IDTokenVerifier to remoteVerifier.
type oidcRemote struct {
	verifier *oidc.IDTokenVerifier
}

func (r *oidcRemote) Verify(ctx context.Context, rawIDToken string) (*domain.VerifiedIdentity, error) {
	idToken, err := r.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	var claims struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("malformed claims: %w", err)
	}

	return &domain.VerifiedIdentity{
		SubjectID:   idToken.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		PictureURL:  claims.Picture,
	}, nil
}

// Verifier verifies identity tokens against a remote OIDC issuer.
// Verification is pure: no persisted state is touched.
type Verifier struct {
	remote  remoteVerifier
	backoff time.Duration
	logger  *slog.Logger
}

// NewVerifier creates a verifier bound to the configured issuer. The
// issuer's discovery document is fetched once at construction.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Verifier, error) {
	if cfg.IdentityIssuerURL == "" {
		return nil, fmt.Errorf("identity issuer URL is required")
	}
	if cfg.IdentityAudience == "" {
		return nil, fmt.Errorf("identity audience is required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IdentityIssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover identity issuer: %w", err)
	}

	remote := &oidcRemote{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.IdentityAudience}),
	}

	logger.Info("identity verifier initialized",
		"issuer", cfg.IdentityIssuerURL,
		"audience", cfg.IdentityAudience)

	return &Verifier{
		remote:  remote,
		backoff: retryBackoff,
		logger:  logger,
	}, nil
}

// Verify validates a bearer token and returns the normalized identity.
// Empty or whitespace tokens are rejected before any remote call. If the
// remote verifier reports the token as used before its issuance time, the
// call waits a fixed backoff and retries exactly once; a second failure of
// any kind surfaces as domain.ErrInvalidToken.
func (v *Verifier) Verify(ctx context.Context, token string) (*domain.VerifiedIdentity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: empty token", domain.ErrInvalidToken)
	}

	identity, err := v.remote.Verify(ctx, token)
	if err != nil && isClockSkewError(err) {
		v.logger.Warn("token used before issuance time, retrying once",
			"backoff", v.backoff.String())

		select {
		case <-time.After(v.backoff):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, ctx.Err())
		}

		identity, err = v.remote.Verify(ctx, token)
	}
	if err != nil {
		v.logger.Warn("token verification failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	if !identity.Valid() {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}

	return identity, nil
}

// isClockSkewError reports whether the remote rejected the token only
// because its issuance or not-before time is still in the future. This is
// a transient clock-skew condition, not a security failure.
func isClockSkewError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "used too early") ||
		strings.Contains(msg, "before the nbf") ||
		strings.Contains(msg, "used before issued") ||
		strings.Contains(msg, "issued in the future")
}
