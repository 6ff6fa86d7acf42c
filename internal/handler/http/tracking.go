package http

import (
	"io"
	"net/http"

	"github.com/Anish-A1/pricewise/internal/app"
	"github.com/Anish-A1/pricewise/internal/utils"
	"github.com/Anish-A1/pricewise/models"
)

// track starts tracking a product for the account with the given email.
// Answers are plain text.
func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TrackRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeTextError(w, r, err)
		return
	}
	if err := checkEmailIdentity(ctx, req.Email); err != nil {
		writeTextError(w, r, err)
		return
	}

	if err := h.services.TrackingService.BeginTracking(ctx, req.Email, req.ProductID); err != nil {
		writeTextError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, app.MsgTracked)
}

func (h *Handler) updateTrackingPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TrackPriceRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := checkIdentity(ctx, req.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.services.TrackingService.UpdateTrackingPrice(ctx, req.UserID, req.ProductID, *req.TrackPrice)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UpdatedTrackingResponse{
		Message:                app.MsgTrackPriceUpdated,
		UpdatedTrackedProducts: entries,
	}, http.StatusOK)
}

func (h *Handler) untrackProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TrackedProductRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := checkIdentity(ctx, req.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TrackingService.StopTracking(ctx, req.UserID, req.ProductID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgUntracked, http.StatusOK)
}

// getTrackedProducts lists the tracked products of the authenticated account.
func (h *Handler) getTrackedProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoCredential)
		return
	}

	views, err := h.services.TrackingService.ListTracked(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.TrackedProductsResponse{TrackedProducts: views}
	if len(views) == 0 {
		resp.Message = app.MsgNothingTracked
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getTrackPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TrackedProductRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := checkIdentity(ctx, req.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	price, err := h.services.TrackingService.GetTrackPrice(ctx, req.UserID, req.ProductID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TrackPriceResponse{TrackPrice: price, ProductID: req.ProductID}, http.StatusOK)
}
