package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pdfshorts/backend/docs"
	"github.com/pdfshorts/backend/internal/auth"
	"github.com/pdfshorts/backend/internal/chat"
	"github.com/pdfshorts/backend/internal/events"
	"github.com/pdfshorts/backend/internal/middlewares"
	"github.com/pdfshorts/backend/internal/pdffile"
	"github.com/pdfshorts/backend/internal/shorts"
)

type RouterConfig struct {
	PDFFileHandler *pdffile.Handler
	ShortsHandler  *shorts.Handler
	ChatHandler    *chat.Handler
	EventsHandler  *events.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/swagger/doc.json", docs.ServeOpenAPI)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Mount("/pdfs", pdffile.Routes(cfg.PDFFileHandler))
		r.Mount("/shorts", shorts.Routes(cfg.ShortsHandler))
		r.Mount("/ask", chat.Routes(cfg.ChatHandler))

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Mount("/events", events.Routes(cfg.EventsHandler))
		})
	})

	return r
}
