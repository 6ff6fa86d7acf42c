package http

import (
	"net/http"

	"github.com/Anish-A1/pricewise/internal/app"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/utils"
	"github.com/Anish-A1/pricewise/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.UserID).Msg("user registered")
	utils.WriteMessage(w, app.MsgRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setTokenCookie(w, token.SignedString)
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoggedIn,
		Token:   token.SignedString,
		Name:    user.Name,
		Email:   user.Email,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearTokenCookie(w)
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}

// profile echoes the claims of the verified credential. Mounted behind auth.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoCredential)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Message: app.MsgProfile,
		User:    claims,
	}, http.StatusOK)
}
