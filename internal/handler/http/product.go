package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Anish-A1/pricewise/internal/utils"
	"github.com/go-chi/chi/v5"
)

// products looks a product up by its source URL, or lists the first
// products of the catalog when no URL is given.
func (h *Handler) products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	if url := query.Get("url"); url != "" {
		product, err := h.services.ProductService.Lookup(ctx, url)
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, product, http.StatusOK)
		return
	}

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	products, err := h.services.ProductService.List(ctx, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) productByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.services.ProductService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, product, http.StatusOK)
}

// priceHistory returns the three-month window selected by ?offset=N.
func (h *Handler) priceHistory(w http.ResponseWriter, r *http.Request) {
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidOffset, raw))
			return
		}
		offset = n
	}

	window, err := h.services.ProductService.Window(r.Context(), chi.URLParam(r, "id"), offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, window, http.StatusOK)
}

func (h *Handler) prediction(w http.ResponseWriter, r *http.Request) {
	advisory, err := h.services.ProductService.Predict(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, advisory, http.StatusOK)
}
