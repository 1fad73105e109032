package events

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pdfshorts/backend/internal/config"
)

type Handler struct {
	broker *Broker
}

func NewHandler(broker *Broker) *Handler {
	return &Handler{broker: broker}
}

// Stream serves change events as server-sent events. The optional "table"
// query parameter narrows the stream to a single table; reconnecting
// resubscribes from the current point, there is no replay.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		config.JSONError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	var tables []string
	if table := r.URL.Query().Get("table"); table != "" {
		tables = append(tables, table)
	}

	sub := h.broker.Subscribe(tables...)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	log.WithField("tables", tables).Info("Change stream subscribed")

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				log.WithError(err).Error("Failed to encode change event")
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Stream)
	return r
}
