package http

import (
	"errors"
	"net/http"

	"github.com/Anish-A1/pricewise/internal/app"
	"github.com/Anish-A1/pricewise/internal/history"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/service"
	"github.com/Anish-A1/pricewise/internal/store"
	"github.com/Anish-A1/pricewise/internal/utils"
	"github.com/Anish-A1/pricewise/internal/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first sentinel found in the error
// chain wins.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidOffset, http.StatusBadRequest, app.MsgInvalidOffset},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidData},
	{service.ErrInvalidPrice, http.StatusBadRequest, app.MsgInvalidPrice},
	{store.ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},
	{history.ErrOffsetOutOfRange, http.StatusBadRequest, app.MsgOffsetOutOfRange},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrProductNotFound, http.StatusNotFound, app.MsgProductNotFound},
	{store.ErrTrackingNotFound, http.StatusNotFound, app.MsgTrackingNotFound},
	{store.ErrTrackedProductNotFound, http.StatusNotFound, app.MsgTrackedNotFound},
	{history.ErrNoSamples, http.StatusNotFound, app.MsgNoPriceHistory},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailRegistered},
	{store.ErrAlreadyTracked, http.StatusBadRequest, app.MsgAlreadyTracked},
	{service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidCredentials},

	{ErrNoCredential, http.StatusUnauthorized, app.MsgNoToken},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgInvalidToken},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},

	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden, app.MsgAccessDenied},

	{service.ErrNotificationFailed, http.StatusInternalServerError, app.MsgEmailNotSent},
	{service.ErrPredictionUnavailable, http.StatusBadGateway, app.MsgPredictionDown},
}

func statusFromError(err error) int {
	status, _ := describeError(err)
	return status
}

// describeError returns the HTTP status and the client-facing message for err.
// Unknown errors become 500 without leaking their text.
func describeError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalError
}

// writeError logs err and answers with {"message": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := describeError(err)
	logError(r, err, status)
	utils.WriteMessage(w, message, status)
}

// writeTextError answers with a plain-text body. Used by /api/track.
func writeTextError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := describeError(err)
	logError(r, err, status)
	http.Error(w, message, status)
}

func logError(r *http.Request, err error, status int) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		return
	}
	log.Debug().Err(err).Int("status", status).Msg("request rejected")
}
