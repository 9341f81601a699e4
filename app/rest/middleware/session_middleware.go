package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"session-gateway/app/domain"
	"session-gateway/app/port"
)

// SessionCookieName must match the cookie issued by the auth handler.
const SessionCookieName = "session_token"

// SessionMiddleware guards routes behind a valid session cookie.
type SessionMiddleware struct {
	tokens port.SessionTokens
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(tokens port.SessionTokens, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireSession rejects requests without a valid session cookie and
// exposes the session subject to downstream handlers.
func (m *SessionMiddleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "session required",
					"code":  "INVALID_SESSION",
				})
			}

			claims, err := m.tokens.Parse(cookie.Value)
			if err != nil {
				code := "INVALID_SESSION"
				if errors.Is(err, domain.ErrSessionExpired) {
					code = "SESSION_EXPIRED"
				}
				m.logger.Debug("session rejected", "code", code, "ip", c.RealIP())
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid or expired session",
					"code":  code,
				})
			}

			c.Set("subject_id", claims.SubjectID)
			c.Set("session_expires_at", claims.ExpiresAt)
			return next(c)
		}
	}
}
