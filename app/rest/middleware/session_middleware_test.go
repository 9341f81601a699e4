package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"session-gateway/app/domain"
	mock_port "session-gateway/app/mocks"
	"session-gateway/app/utils/logger"
)

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	return log
}

func runSessionMiddleware(t *testing.T, mw *SessionMiddleware, cookie *http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw.RequireSession()(func(c echo.Context) error {
		reached = true
		assert.Equal(t, "uid", c.Get("subject_id"))
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func TestSessionMiddleware_ValidCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock_port.NewMockSessionTokens(ctrl)
	tokens.EXPECT().Parse("good-jwt").Return(&domain.SessionClaims{
		SubjectID: "uid",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	mw := NewSessionMiddleware(tokens, testLogger(t))

	rec, reached := runSessionMiddleware(t, mw,
		&http.Cookie{Name: SessionCookieName, Value: "good-jwt"})
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddleware_MissingCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mw := NewSessionMiddleware(mock_port.NewMockSessionTokens(ctrl), testLogger(t))

	rec, reached := runSessionMiddleware(t, mw, nil)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_ExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock_port.NewMockSessionTokens(ctrl)
	tokens.EXPECT().Parse("stale-jwt").Return(nil, domain.ErrSessionExpired)

	mw := NewSessionMiddleware(tokens, testLogger(t))

	rec, reached := runSessionMiddleware(t, mw,
		&http.Cookie{Name: SessionCookieName, Value: "stale-jwt"})
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_EXPIRED")
}

func TestSessionMiddleware_ForgedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock_port.NewMockSessionTokens(ctrl)
	tokens.EXPECT().Parse("forged").Return(nil, domain.ErrInvalidSession)

	mw := NewSessionMiddleware(tokens, testLogger(t))

	rec, reached := runSessionMiddleware(t, mw,
		&http.Cookie{Name: SessionCookieName, Value: "forged"})
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_SESSION")
}
