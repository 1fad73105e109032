package shorts

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/generate", h.Generate)
	r.Patch("/{id}/complete", h.Complete)
	r.Get("/runs/latest", h.LatestRun)
	return r
}
