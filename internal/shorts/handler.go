package shorts

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pdfshorts/backend/internal/completion"
	"github.com/pdfshorts/backend/internal/config"
)

type Handler struct {
	service   ShortService
	generator Generator
}

func NewHandler(service ShortService, generator Generator) *Handler {
	return &Handler{service: service, generator: generator}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.List(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusInternalServerError, "failed to load shorts")
		return
	}
	config.JSON(w, http.StatusOK, map[string]interface{}{"shorts": out})
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.generator.Generate(r.Context()); err != nil {
		log.WithError(err).Error("Shorts generation failed")
		config.JSONError(w, generationStatus(err), err.Error())
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "Shorts initialized successfully"})
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	id := chi.URLParam(r, "id")

	short, err := h.service.Complete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			config.JSONError(w, http.StatusBadRequest, ErrInvalidID.Error())
		case errors.Is(err, ErrShortNotFound):
			config.JSONError(w, http.StatusNotFound, ErrShortNotFound.Error())
		default:
			log.WithError(err).Error("Failed to complete short")
			config.JSONError(w, http.StatusInternalServerError, "failed to update short")
		}
		return
	}

	config.JSON(w, http.StatusOK, short)
}

func (h *Handler) LatestRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.service.LatestRun(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusInternalServerError, "failed to load generation run")
		return
	}
	if run == nil {
		config.JSONError(w, http.StatusNotFound, "no generation run yet")
		return
	}
	config.JSON(w, http.StatusOK, run)
}

func generationStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoDocument):
		return http.StatusNotFound
	case errors.Is(err, ErrMalformedResponse), errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, completion.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrStorageFetch), errors.Is(err, completion.ErrCompletion):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
