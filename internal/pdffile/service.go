package pdffile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfshorts/backend/internal/config"
	"github.com/pdfshorts/backend/internal/events"
	"github.com/pdfshorts/backend/internal/storage"
)

var ErrNotPDF = errors.New("only PDF files are allowed")

type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type PDFFileService interface {
	// Replace removes the current document (blob and row) and stores the new
	// one. Single active document invariant, delete then insert.
	Replace(ctx context.Context, up Upload) (*PDFFile, error)
	Latest(ctx context.Context) (*PDFFile, error)
}

type pdfFileService struct {
	repo   PDFFileRepository
	store  storage.ObjectStore
	broker *events.Broker
}

func NewService(repo PDFFileRepository, store storage.ObjectStore, broker *events.Broker) PDFFileService {
	return &pdfFileService{repo: repo, store: store, broker: broker}
}

var nonASCII = regexp.MustCompile(`[^\x00-\x7F]`)

func sanitizeFilename(name string) string {
	return nonASCII.ReplaceAllString(name, "")
}

func (s *pdfFileService) Replace(ctx context.Context, up Upload) (*PDFFile, error) {
	log := config.WithContext(ctx)

	if up.ContentType != "application/pdf" {
		return nil, ErrNotPDF
	}

	existing, err := s.repo.Latest()
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.store.Remove(ctx, existing.FilePath); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			log.WithError(err).WithField("file_path", existing.FilePath).Error("Failed to delete existing object")
		}
		if err := s.repo.Delete(existing.ID.String()); err != nil {
			return nil, err
		}
		s.broker.Publish(events.Event{Table: "pdf_files", Type: events.EventDelete, RecordID: existing.ID.String()})
	}

	sanitized := sanitizeFilename(up.Filename)
	ext := strings.TrimPrefix(filepath.Ext(sanitized), ".")
	if ext == "" {
		ext = "pdf"
	}

	id := uuid.New()
	path := fmt.Sprintf("%s.%s", id.String(), ext)

	if err := s.store.Upload(ctx, path, up.ContentType, up.Body); err != nil {
		log.WithError(err).Error("Failed to upload object")
		return nil, err
	}

	record := &PDFFile{
		ID:          id,
		Filename:    sanitized,
		FilePath:    path,
		ContentType: up.ContentType,
		Size:        up.Size,
	}
	if err := s.repo.Create(record); err != nil {
		log.WithError(err).Error("Failed to save file metadata")
		return nil, err
	}

	s.broker.Publish(events.Event{Table: "pdf_files", Type: events.EventInsert, RecordID: record.ID.String()})
	log.WithField("file_path", path).Info("Document replaced")
	return record, nil
}

func (s *pdfFileService) Latest(ctx context.Context) (*PDFFile, error) {
	return s.repo.Latest()
}
