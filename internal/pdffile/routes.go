package pdffile

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Upload)
	r.Get("/latest", h.Latest)
	return r
}
