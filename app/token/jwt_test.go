package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"session-gateway/app/domain"
)

const testSecret = "unit-test-secret-key-0123456789"

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)
	now := time.Now().UTC().Truncate(time.Second)

	tokenString, expiresAt, err := svc.Issue("firebase-uid-1", now)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := svc.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", claims.SubjectID)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_Issue_EmptySubject(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	_, _, err := svc.Issue("", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestJWTService_Parse_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	tokenString, _, err := svc.Issue("uid", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = svc.Parse(tokenString)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestJWTService_Parse_WrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, time.Hour)
	parser := NewJWTService("a-completely-different-secret!!", time.Hour)

	tokenString, _, err := issuer.Issue("uid", time.Now())
	require.NoError(t, err)

	_, err = parser.Parse(tokenString)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestJWTService_Parse_WrongSigningMethod(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	// alg=none tokens must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "session-gateway",
		Subject:   "uid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Parse(tokenString)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestJWTService_Parse_WrongIssuer(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	claims := jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "uid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Parse(tokenString)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestJWTService_Parse_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	for _, tokenString := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Parse(tokenString)
		assert.ErrorIs(t, err, domain.ErrInvalidSession, "token %q", tokenString)
	}
}
