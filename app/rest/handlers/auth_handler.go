package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"session-gateway/app/port"
	apperrors "session-gateway/app/utils/errors"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	sessionUsecase port.SessionUsecase
	providers      port.Providers
	logger         *slog.Logger
	secureCookies  bool
	sessionTTL     time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionUsecase port.SessionUsecase, providers port.Providers, logger *slog.Logger, secureCookies bool, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		sessionUsecase: sessionUsecase,
		providers:      providers,
		logger:         logger,
		secureCookies:  secureCookies,
		sessionTTL:     sessionTTL,
	}
}

// ValidateToken handles POST /v1/auth/validate: it exchanges a bearer
// identity token for a session cookie.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.sessionUsecase.ValidateToken(ctx, c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		appErr := apperrors.FromDomain(err)
		h.logger.Warn("token validation failed",
			"code", appErr.Code,
			"ip", c.RealIP())
		return c.JSON(appErr.StatusCode, ErrorResponse{
			Error: appErr.Message,
			Code:  string(appErr.Code),
		})
	}

	c.SetCookie(h.sessionCookie(result.SessionToken, int(h.sessionTTL.Seconds())))

	return c.JSON(http.StatusOK, ValidateResponse{
		Status:    "success",
		Message:   result.Message,
		IsNewUser: result.IsNewUser,
		User:      result.User,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout handles POST /v1/auth/logout. Sessions are stateless, so logout
// only clears the cookie; an already-expired or absent session still
// succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, LogoutResponse{
		Status:  "success",
		Message: "Logged out",
	})
}

// Me handles GET /v1/auth/me: it returns the user record bound to the
// current session.
func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	subjectID, ok := c.Get("subject_id").(string)
	if !ok || subjectID == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "no active session",
			Code:  string(apperrors.ErrCodeInvalidSession),
		})
	}

	store, err := h.providers.PersistentStore(ctx)
	if err != nil {
		appErr := apperrors.FromDomain(err)
		return c.JSON(appErr.StatusCode, ErrorResponse{Error: appErr.Message, Code: string(appErr.Code)})
	}

	doc, err := port.FindUserBySubject(ctx, store, subjectID)
	if err != nil {
		appErr := apperrors.FromDomain(err)
		return c.JSON(appErr.StatusCode, ErrorResponse{Error: appErr.Message, Code: string(appErr.Code)})
	}
	if doc == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "user record not found",
			Code:  string(apperrors.ErrCodeNotFound),
		})
	}

	return c.JSON(http.StatusOK, doc)
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
