package pdffile

import (
	"github.com/pdfshorts/backend/internal/events"
	"github.com/pdfshorts/backend/internal/storage"
	"gorm.io/gorm"
)

type PDFFileContainer struct {
	Repo    PDFFileRepository
	Service PDFFileService
	Handler *Handler
}

func NewPDFFileContainer(db *gorm.DB, store storage.ObjectStore, broker *events.Broker, generate GenerateFunc, maxUploadBytes int64) *PDFFileContainer {
	repo := NewRepository(db)
	service := NewService(repo, store, broker)
	handler := NewHandler(service, generate, maxUploadBytes)

	return &PDFFileContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
