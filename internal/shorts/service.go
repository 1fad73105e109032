package shorts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pdfshorts/backend/internal/config"
	"github.com/pdfshorts/backend/internal/events"
)

var (
	ErrShortNotFound = errors.New("short not found")
	ErrInvalidID     = errors.New("invalid id format")
)

// ShortService is the reader/presenter surface over persisted shorts.
type ShortService interface {
	List(ctx context.Context) ([]*Short, error)
	Complete(ctx context.Context, id string) (*Short, error)
	LatestRun(ctx context.Context) (*GenerationRun, error)
}

type shortService struct {
	repo   ShortRepository
	broker *events.Broker
}

func NewService(repo ShortRepository, broker *events.Broker) ShortService {
	return &shortService{repo: repo, broker: broker}
}

func (s *shortService) List(ctx context.Context) ([]*Short, error) {
	log := config.WithContext(ctx)

	out, err := s.repo.ListWithTree()
	if err != nil {
		log.WithError(err).Error("Failed to list shorts")
		return nil, err
	}
	return out, nil
}

// Complete marks a short as completed. This is the only status mutation a
// user can make.
func (s *shortService) Complete(ctx context.Context, id string) (*Short, error) {
	log := config.WithContext(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	short, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to load short")
		return nil, err
	}
	if short == nil {
		return nil, ErrShortNotFound
	}

	if err := s.repo.UpdateStatus(id, StatusCompleted); err != nil {
		log.WithError(err).Error("Failed to update short status")
		return nil, err
	}
	short.Status = StatusCompleted

	s.broker.Publish(events.Event{Table: "shorts", Type: events.EventUpdate, RecordID: id})
	return short, nil
}

func (s *shortService) LatestRun(ctx context.Context) (*GenerationRun, error) {
	return s.repo.LatestRun()
}
