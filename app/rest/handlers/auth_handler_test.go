package handlers

import (
	"encoding/json"
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
	"session-gateway/app/port"
	"session-gateway/app/utils/logger"
)

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	return log
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_ValidateToken(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)

	tests := []struct {
		name           string
		header         string
		setupMocks     func(*mock_port.MockSessionUsecase)
		expectedStatus int
		expectedBody   func(*testing.T, []byte)
		expectCookie   bool
	}{
		{
			name:   "valid token issues session cookie",
			header: "Bearer firebase-token",
			setupMocks: func(uc *mock_port.MockSessionUsecase) {
				uc.EXPECT().ValidateToken(gomock.Any(), "Bearer firebase-token").
					Return(&domain.ValidationResult{
						Identity:     &domain.VerifiedIdentity{SubjectID: "uid", DisplayName: "Alice"},
						User:         &domain.User{ExternalSubjectID: "uid", DisplayName: "Alice"},
						Message:      "Welcome back, Alice!",
						SessionToken: "session-jwt",
						ExpiresAt:    expiresAt,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				var v ValidateResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.Equal(t, "success", v.Status)
				assert.Equal(t, "Welcome back, Alice!", v.Message)
				assert.False(t, v.IsNewUser)
				require.NotNil(t, v.User)
			},
			expectCookie: true,
		},
		{
			name:   "missing header maps to 401",
			header: "",
			setupMocks: func(uc *mock_port.MockSessionUsecase) {
				uc.EXPECT().ValidateToken(gomock.Any(), "").
					Return(nil, domain.ErrNoTokenProvided)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody: func(t *testing.T, body []byte) {
				var v ErrorResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.Equal(t, "NO_TOKEN_PROVIDED", v.Code)
			},
		},
		{
			name:   "rejected token maps to 401",
			header: "Bearer bad-token",
			setupMocks: func(uc *mock_port.MockSessionUsecase) {
				uc.EXPECT().ValidateToken(gomock.Any(), "Bearer bad-token").
					Return(nil, domain.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody: func(t *testing.T, body []byte) {
				var v ErrorResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.Equal(t, "INVALID_TOKEN", v.Code)
			},
		},
		{
			name:   "unsupported provider maps to 500",
			header: "Bearer any",
			setupMocks: func(uc *mock_port.MockSessionUsecase) {
				uc.EXPECT().ValidateToken(gomock.Any(), "Bearer any").
					Return(nil, domain.ErrUnsupportedProvider)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: func(t *testing.T, body []byte) {
				var v ErrorResponse
				require.NoError(t, json.Unmarshal(body, &v))
				assert.Equal(t, "UNSUPPORTED_PROVIDER", v.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := mock_port.NewMockSessionUsecase(ctrl)
			tt.setupMocks(uc)

			h := NewAuthHandler(uc, mock_port.NewMockProviders(ctrl),
				testLogger(t), false, time.Hour)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/auth/validate", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.ValidateToken(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.expectedBody(t, rec.Body.Bytes())

			cookie := sessionCookieFrom(t, rec)
			if tt.expectCookie {
				require.NotNil(t, cookie, "session cookie must be set on success")
				assert.Equal(t, "session-jwt", cookie.Value)
				assert.True(t, cookie.HttpOnly)
				assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
				assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)
			} else {
				assert.Nil(t, cookie, "no session cookie on failure")
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mock_port.NewMockSessionUsecase(ctrl),
		mock_port.NewMockProviders(ctrl), testLogger(t), false, time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookieFrom(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge, "logout must expire the cookie")
}

func TestAuthHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_port.NewMockPersistentStore(ctrl)
	store.EXPECT().
		FindOne(gomock.Any(), port.UsersCollection, port.Document{"external_subject_id": "uid"}).
		Return(port.Document{"external_subject_id": "uid", "email": "a@b.c"}, nil)

	providers := mock_port.NewMockProviders(ctrl)
	providers.EXPECT().PersistentStore(gomock.Any()).Return(store, nil)

	h := NewAuthHandler(mock_port.NewMockSessionUsecase(ctrl), providers,
		testLogger(t), false, time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("subject_id", "uid")

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "a@b.c", body["email"])
}

func TestAuthHandler_Me_UserMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_port.NewMockPersistentStore(ctrl)
	store.EXPECT().FindOne(gomock.Any(), port.UsersCollection, gomock.Any()).
		Return(nil, nil)

	providers := mock_port.NewMockProviders(ctrl)
	providers.EXPECT().PersistentStore(gomock.Any()).Return(store, nil)

	h := NewAuthHandler(mock_port.NewMockSessionUsecase(ctrl), providers,
		testLogger(t), false, time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("subject_id", "uid")

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
