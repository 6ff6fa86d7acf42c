package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/service"
	"github.com/Anish-A1/pricewise/internal/utils"
	"github.com/Anish-A1/pricewise/models"
)

const tokenCookieName = "token"

// auth is an HTTP middleware that enforces credential-based authentication.
//
// The credential is read from the "Authorization: Bearer <token>" header,
// falling back to the "token" cookie. It is validated via
// [service.AuthService.ParseToken] and, on success, its claims are stored in
// the request context under [utils.ClaimsCtxKey].
//
// Requests without a credential or with an invalid one are rejected with
// HTTP 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := h.credentialFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ClaimsCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withOptionalAuth attaches the claims of a valid credential when one is
// presented. Missing or invalid credentials are ignored; the handler then
// relies on the identity given in the request body.
func (h *Handler) withOptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := h.credentialFromRequest(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("request without usable credential")
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ClaimsCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) credentialFromRequest(r *http.Request) (models.Claims, error) {
	tokenString, err := tokenFromRequest(r)
	if err != nil {
		return models.Claims{}, err
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return models.Claims{}, err
	}

	return token.Claims, nil
}

// tokenFromRequest extracts the raw credential. The "Authorization" header
// takes precedence over the cookie.
func tokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); strings.TrimSpace(header) != "" {
		tokenString, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
		}
		return tokenString, nil
	}

	if cookie, err := r.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrNoCredential
}

// checkIdentity fails with [service.ErrUnauthorizedAccessToDifferentUserData]
// when the request carries a credential for an account other than userID.
func checkIdentity(ctx context.Context, userID string) error {
	claimedID, ok := utils.GetUserIDFromContext(ctx)
	if ok && claimedID != userID {
		return service.ErrUnauthorizedAccessToDifferentUserData
	}
	return nil
}

// checkEmailIdentity is the email-keyed variant of [checkIdentity].
func checkEmailIdentity(ctx context.Context, email string) error {
	claims, ok := utils.GetClaimsFromContext(ctx)
	if ok && claims.Email != "" && claims.Email != service.NormalizeEmail(email) {
		return service.ErrUnauthorizedAccessToDifferentUserData
	}
	return nil
}

func (h *Handler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.settings.TokenDuration / time.Second),
		HttpOnly: true,
		Secure:   h.settings.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handler) clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.settings.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}
