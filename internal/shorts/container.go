package shorts

import (
	"github.com/pdfshorts/backend/internal/completion"
	"github.com/pdfshorts/backend/internal/events"
	"github.com/pdfshorts/backend/internal/pdffile"
	"github.com/pdfshorts/backend/internal/storage"
	"gorm.io/gorm"
)

type ShortsContainer struct {
	Repo      ShortRepository
	Service   ShortService
	Generator Generator
	Handler   *Handler
}

func NewShortsContainer(
	db *gorm.DB,
	files pdffile.PDFFileRepository,
	store storage.ObjectStore,
	provider completion.Provider,
	broker *events.Broker,
	cfg GeneratorConfig,
) *ShortsContainer {
	repo := NewRepository(db)
	service := NewService(repo, broker)
	generator := NewGenerator(files, store, provider, repo, broker, cfg)
	handler := NewHandler(service, generator)

	return &ShortsContainer{
		Repo:      repo,
		Service:   service,
		Generator: generator,
		Handler:   handler,
	}
}
