package shorts

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pdfshorts/backend/internal/completion"
	"github.com/pdfshorts/backend/internal/config"
	"github.com/pdfshorts/backend/internal/events"
	"github.com/pdfshorts/backend/internal/pdffile"
	"github.com/pdfshorts/backend/internal/storage"
	"gorm.io/datatypes"
)

// Generator runs the full pipeline: latest document, blob download, prompt,
// completion, strict parse and validation, then a best-effort persistence
// fan-out. Fetch, completion, parse and validation failures abort the run;
// per-item persistence failures are logged and skipped so one bad short
// never blocks the batch. There is no global atomicity.
type Generator interface {
	Generate(ctx context.Context) error
}

type GeneratorConfig struct {
	// Replace controls the re-run policy. When true, prior shorts are
	// deleted in the same call before the new batch is inserted; when false
	// every run appends an independent batch.
	Replace bool
}

type generator struct {
	files    pdffile.PDFFileRepository
	store    storage.ObjectStore
	provider completion.Provider
	repo     ShortRepository
	broker   *events.Broker
	cfg      GeneratorConfig
}

func NewGenerator(
	files pdffile.PDFFileRepository,
	store storage.ObjectStore,
	provider completion.Provider,
	repo ShortRepository,
	broker *events.Broker,
	cfg GeneratorConfig,
) Generator {
	return &generator{
		files:    files,
		store:    store,
		provider: provider,
		repo:     repo,
		broker:   broker,
		cfg:      cfg,
	}
}

func (g *generator) Generate(ctx context.Context) error {
	log := config.WithContext(ctx)

	run := &GenerationRun{ID: uuid.New(), Status: RunStarted}
	if err := g.repo.CreateRun(run); err != nil {
		// Bookkeeping must not block generation itself.
		log.WithError(err).Warn("Failed to record generation run")
		run = nil
	}

	payload, raw, err := g.producePayload(ctx)
	if err != nil {
		g.failRun(ctx, run, err)
		return err
	}

	if run != nil {
		run.RawPayload = datatypes.JSON([]byte(raw))
	}

	if g.cfg.Replace {
		if err := g.repo.DeleteAll(); err != nil {
			g.failRun(ctx, run, err)
			return fmt.Errorf("failed to replace existing shorts: %w", err)
		}
		g.broker.Publish(events.Event{Table: "shorts", Type: events.EventDelete, RecordID: "*"})
	}

	g.persist(ctx, payload, run)

	if run != nil {
		run.Status = RunCompleted
		if err := g.repo.SaveRun(run); err != nil {
			log.WithError(err).Warn("Failed to finalize generation run")
		}
	}

	log.WithField("shorts", len(payload.Shorts)).Info("Shorts generation finished")
	return nil
}

// producePayload covers the fatal half of the pipeline: everything up to a
// validated payload.
func (g *generator) producePayload(ctx context.Context) (*Payload, string, error) {
	log := config.WithContext(ctx)

	file, err := g.files.Latest()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNoDocument, err)
	}
	if file == nil {
		return nil, "", ErrNoDocument
	}

	data, err := g.store.Download(ctx, file.FilePath)
	if err != nil {
		log.WithError(err).WithField("file_path", file.FilePath).Error("Error downloading PDF")
		return nil, "", fmt.Errorf("%w: %v", ErrStorageFetch, err)
	}

	body := pdffile.ExtractText(data)
	prompt := BuildPrompt(body)

	raw, err := g.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, "", err
	}

	payload, err := ParsePayload(raw)
	if err != nil {
		log.WithError(err).Error("Completion response is not valid shorts JSON")
		return nil, "", err
	}
	if err := ValidatePayload(payload); err != nil {
		log.WithError(err).Error("Completion payload failed validation")
		return nil, "", err
	}

	return payload, raw, nil
}

// persist walks the tree short by short. Failures are counted, logged and
// skipped; sibling inserts keep going.
func (g *generator) persist(ctx context.Context, payload *Payload, run *GenerationRun) {
	log := config.WithContext(ctx)

	for _, sp := range payload.Shorts {
		short := &Short{
			ID:           uuid.New(),
			TopicName:    sp.TopicName,
			TopicSummary: sp.TopicSummary,
			Status:       StatusDraft,
		}
		if err := g.repo.CreateShort(short); err != nil {
			log.WithError(err).WithField("topic", sp.TopicName).Error("Error creating short")
			if run != nil {
				run.FailedItems++
			}
			continue
		}
		if run != nil {
			run.ShortsCreated++
		}
		g.broker.Publish(events.Event{Table: "shorts", Type: events.EventInsert, RecordID: short.ID.String()})

		for _, qp := range sp.Questions {
			question := &Question{
				ID:           uuid.New(),
				ShortID:      short.ID,
				QuestionText: qp.QuestionText,
			}
			if err := g.repo.CreateQuestion(question); err != nil {
				log.WithError(err).WithField("short_id", short.ID).Error("Error creating question")
				if run != nil {
					run.FailedItems++
				}
				continue
			}
			if run != nil {
				run.QuestionsCreated++
			}

			created, failed := g.insertOptions(question.ID, qp.Options)
			if failed > 0 {
				log.WithField("question_id", question.ID).Warnf("%d of %d option inserts failed", failed, len(qp.Options))
			}
			if run != nil {
				run.OptionsCreated += created
				run.FailedItems += failed
			}
		}
	}
}

// insertOptions fires all option inserts for one question concurrently and
// waits for the lot. Best-effort: a failed sibling is not rolled back.
func (g *generator) insertOptions(questionID uuid.UUID, opts []OptionPayload) (created, failed int) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, op := range opts {
		wg.Add(1)
		go func(op OptionPayload) {
			defer wg.Done()
			err := g.repo.CreateOption(&Option{
				ID:         uuid.New(),
				QuestionID: questionID,
				OptionText: op.OptionText,
				IsCorrect:  op.IsCorrect,
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
			} else {
				created++
			}
		}(op)
	}

	wg.Wait()
	return created, failed
}

func (g *generator) failRun(ctx context.Context, run *GenerationRun, cause error) {
	if run == nil {
		return
	}
	run.Status = RunFailed
	run.Error = cause.Error()
	if err := g.repo.SaveRun(run); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to record failed generation run")
	}
}
