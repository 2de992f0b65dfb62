package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/calculator", func(r chi.Router) {
		r.Get("/operations", h.Operations)
		r.Get("/history", h.History)
		r.Delete("/history", h.ClearHistory)
		r.Post("/chain", h.Chain)
		r.Post("/{operation}", h.Compute)
	})
}
