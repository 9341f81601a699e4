package handlers

import (
	"time"

	"session-gateway/app/domain"
)

// SessionCookieName is the cookie carrying the first-party session token.
const SessionCookieName = "session_token"

// ErrorResponse is the standard error response body
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ValidateResponse is returned by POST /v1/auth/validate
type ValidateResponse struct {
	Status    string       `json:"status"`
	Message   string       `json:"message"`
	IsNewUser bool         `json:"is_new_user"`
	User      *domain.User `json:"user,omitempty"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// LogoutResponse is returned by POST /v1/auth/logout
type LogoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FileUploadResponse is returned by POST /v1/files
type FileUploadResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// FileDeleteResponse is returned by DELETE /v1/files/:filename
type FileDeleteResponse struct {
	Status  string `json:"status"`
	Deleted bool   `json:"deleted"`
}

// HealthResponse is the health check response body
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// ReadinessResponse aggregates per-dependency readiness checks
type ReadinessResponse struct {
	Status string                  `json:"status"`
	Checks map[string]HealthStatus `json:"checks"`
}

// HealthStatus describes a single dependency check
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
