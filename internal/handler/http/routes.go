package http

import (
	"net/http"

	"github.com/Anish-A1/pricewise/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.products)
			r.Get("/{id}", h.productByID)
			r.Get("/{id}/history", h.priceHistory)
			r.Post("/{id}/prediction", h.prediction)
		})

		// identity comes from the body; a presented credential must match it
		r.Group(func(r chi.Router) {
			r.Use(h.withOptionalAuth)
			r.Post("/track", h.track)
			r.Post("/updateTrackingPrice", h.updateTrackingPrice)
			r.Post("/untrackProduct", h.untrackProduct)
			r.Post("/getTPrice", h.getTrackPrice)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/profile", h.profile)
			r.Get("/getTrackedProducts", h.getTrackedProducts)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
