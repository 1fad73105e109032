package container

import (
	"context"
	"fmt"

	"github.com/pdfshorts/backend/internal/auth"
	"github.com/pdfshorts/backend/internal/chat"
	"github.com/pdfshorts/backend/internal/completion"
	"github.com/pdfshorts/backend/internal/config"
	"github.com/pdfshorts/backend/internal/events"
	"github.com/pdfshorts/backend/internal/pdffile"
	"github.com/pdfshorts/backend/internal/shorts"
	"github.com/pdfshorts/backend/internal/storage"
)

type Container struct {
	Config config.Config

	Broker           *events.Broker
	PDFFileContainer *pdffile.PDFFileContainer
	ShortsContainer  *shorts.ShortsContainer
	ChatContainer    *chat.ChatContainer
	EventsHandler    *events.Handler
}

func New(ctx context.Context) (*Container, error) {
	config.Init()
	auth.Init()

	cfg := config.Load()

	db, err := config.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err := db.AutoMigrate(
		&pdffile.PDFFile{},
		&shorts.Short{},
		&shorts.Question{},
		&shorts.Option{},
		&shorts.GenerationRun{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	store, err := newObjectStore(cfg)
	if err != nil {
		return nil, err
	}

	provider, err := completion.NewGeminiProvider(ctx, cfg.GeminiModel, cfg.CompletionTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion provider: %w", err)
	}

	broker := events.NewBroker()

	fileRepo := pdffile.NewRepository(db)
	shortsContainer := shorts.NewShortsContainer(db, fileRepo, store, provider, broker,
		shorts.GeneratorConfig{Replace: cfg.ReplaceOnGenerate})

	pdfContainer := pdffile.NewPDFFileContainer(db, store, broker,
		shortsContainer.Generator.Generate, cfg.MaxUploadBytes)

	chatContainer := chat.NewChatContainer(cfg.QAServiceURL)

	return &Container{
		Config:           cfg,
		Broker:           broker,
		PDFFileContainer: pdfContainer,
		ShortsContainer:  shortsContainer,
		ChatContainer:    chatContainer,
		EventsHandler:    events.NewHandler(broker),
	}, nil
}

func newObjectStore(cfg config.Config) (storage.ObjectStore, error) {
	switch cfg.StorageBackend {
	case "local":
		return storage.NewLocalStore(cfg.LocalStorageDir)
	case "supabase":
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY must be set for the supabase backend")
		}
		return storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.StorageBucket), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
