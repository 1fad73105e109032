package pdffile

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdfshorts/backend/internal/config"
)

// GenerateFunc kicks off shorts generation for the current document. Wired
// by the container so this package stays independent of the shorts package.
type GenerateFunc func(ctx context.Context) error

type Handler struct {
	service        PDFFileService
	generate       GenerateFunc
	maxUploadBytes int64
}

func NewHandler(service PDFFileService, generate GenerateFunc, maxUploadBytes int64) *Handler {
	return &Handler{service: service, generate: generate, maxUploadBytes: maxUploadBytes}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		maxMB := h.maxUploadBytes / (1024 * 1024)
		config.JSONError(w, http.StatusBadRequest, fmt.Sprintf("file too large (max %dMB) or invalid form", maxMB))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		maxMB := h.maxUploadBytes / (1024 * 1024)
		config.JSONError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file too large (max %dMB)", maxMB))
		return
	}

	record, err := h.service.Replace(r.Context(), Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		if errors.Is(err, ErrNotPDF) {
			config.JSONError(w, http.StatusBadRequest, ErrNotPDF.Error())
			return
		}
		log.WithError(err).Error("Upload failed")
		config.JSONError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	if r.URL.Query().Get("generate") == "true" && h.generate != nil {
		go func() {
			if err := h.generate(context.Background()); err != nil {
				config.WithContext(context.Background()).WithError(err).Error("Shorts generation after upload failed")
			}
		}()
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message":  "File uploaded successfully",
		"filePath": record.FilePath,
	})
}

func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	record, err := h.service.Latest(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load latest document")
		config.JSONError(w, http.StatusInternalServerError, "failed to load document")
		return
	}
	if record == nil {
		config.JSONError(w, http.StatusNotFound, "no document uploaded")
		return
	}

	config.JSON(w, http.StatusOK, record)
}
