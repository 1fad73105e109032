package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pdfshorts/backend/internal/config"
)

type Asker interface {
	Ask(ctx context.Context, question string) (*AskResponse, error)
}

// Answer is what the UI renders: the QA answer, its context snippets, and
// the zero-based page the viewer should jump to when context is present.
type Answer struct {
	Answer         string           `json:"answer"`
	Context        []ContextSnippet `json:"context,omitempty"`
	NavigateToPage *int             `json:"navigate_to_page,omitempty"`
}

type Handler struct {
	qa Asker
}

func NewHandler(qa Asker) *Handler {
	return &Handler{qa: qa}
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		config.JSONError(w, http.StatusBadRequest, "question is required")
		return
	}

	resp, err := h.qa.Ask(r.Context(), req.Question)
	if err != nil {
		log.WithError(err).Error("QA request failed")
		config.JSONError(w, http.StatusBadGateway, "failed to answer question")
		return
	}

	answer := Answer{Answer: resp.Answer, Context: resp.Context}
	if len(resp.Context) > 0 {
		// Viewer pages are zero-based, QA context pages are one-based.
		page := resp.Context[0].PageNumber - 1
		if page < 0 {
			page = 0
		}
		answer.NavigateToPage = &page
	}

	config.JSON(w, http.StatusOK, answer)
}

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Ask)
	return r
}
