package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"session-gateway/app/domain"
)

// JWTService issues and parses first-party session tokens. Tokens are
// HS256-signed with a shared secret and carry only registered claims;
// everything else about the user is looked up from the store when needed.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewJWTService creates a new JWTService instance
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "session-gateway",
	}
}

// Issue signs a session token for the given subject. The expiry is
// computed from the provided time so callers control the clock.
func (s *JWTService) Issue(subjectID string, now time.Time) (string, time.Time, error) {
	if subjectID == "" {
		return "", time.Time{}, fmt.Errorf("issue session: %w", domain.ErrInvalidSession)
	}

	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse validates a session token and returns its claims. Expired tokens
// map to ErrSessionExpired so handlers can distinguish "log in again"
// from "this token was never ours".
func (s *JWTService) Parse(tokenString string) (*domain.SessionClaims, error) {
	if tokenString == "" {
		return nil, domain.ErrInvalidSession
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSession, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidSession
	}

	result := &domain.SessionClaims{SubjectID: claims.Subject}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}
