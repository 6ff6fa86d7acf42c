package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Anish-A1/pricewise/internal/service"
	"github.com/Anish-A1/pricewise/internal/store"
	"github.com/Anish-A1/pricewise/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		registerErr error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "created",
			body:        `{"name":"Alice","email":"alice@example.com","password":"secret"}`,
			wantStatus:  http.StatusCreated,
			wantMessage: "User registered successfully",
		},
		{
			name:        "duplicate email",
			body:        `{"name":"Alice","email":"alice@example.com","password":"secret"}`,
			registerErr: store.ErrEmailAlreadyExists,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email already registered",
		},
		{
			name:        "malformed JSON",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON body",
		},
		{
			name:       "missing password",
			body:       `{"name":"Alice","email":"alice@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid email",
			body:       `{"name":"Alice","email":"not-an-email","password":"secret"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "store failure",
			body:        `{"name":"Alice","email":"alice@example.com","password":"secret"}`,
			registerErr: assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
				if tt.registerErr != nil {
					return models.User{}, tt.registerErr
				}
				return models.User{UserID: "u1", Email: req.Email, Name: req.Name}, nil
			}}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := serve(t, h, http.MethodPost, "/api/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// login / logout
// ─────────────────────────────────────────────

func TestLogin_SetsCookieAndReturnsToken(t *testing.T) {
	auth := &mockAuthService{loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
		return models.User{UserID: "u1", Email: req.Email, Name: "Alice"}, nil
	}}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rec := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "signed-u1", resp.Token)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "Bearer signed-u1", rec.Header().Get("Authorization"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, tokenCookieName, cookies[0].Name)
	assert.Equal(t, "signed-u1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

// TestLogin_InvalidCredentials verifies the single message for unknown
// email and wrong password.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
		return models.User{}, service.ErrInvalidCredentials
	}}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rec := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"x@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeMessage(t, rec))
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_TokenFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.User, error) {
			return models.User{UserID: "u1"}, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rec := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := serve(t, h, http.MethodPost, "/api/auth/logout", "", withCookie("good-token"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logout successful", decodeMessage(t, rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, tokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

func TestProfile(t *testing.T) {
	h := newTestHandler(t, nil)

	t.Run("bearer", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/api/profile", "", withBearer("good-token"))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.ProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "u1", resp.User.UserID)
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("cookie", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/api/profile", "", withCookie("good-token"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no credential", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/api/profile", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "No token provided", decodeMessage(t, rec))
	})

	t.Run("invalid credential", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/api/profile", "", withBearer("stale"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", decodeMessage(t, rec))
	})
}
