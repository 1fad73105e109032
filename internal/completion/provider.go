package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdfshorts/backend/internal/config"
	"google.golang.org/genai"
)

var (
	ErrCompletion = errors.New("completion request failed")
	ErrTimeout    = errors.New("completion request timed out")
)

// Provider issues a single blocking completion request. No retries.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiProvider(ctx context.Context, model string, timeout time.Duration) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model, timeout: timeout}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.WithError(err).Error("Completion call exceeded deadline")
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		log.WithError(err).Error("Completion call failed")
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	raw := result.Text()
	if raw == "" {
		return "", fmt.Errorf("%w: empty response from model", ErrCompletion)
	}

	return StripFences(raw), nil
}

// StripFences removes the markdown code fences models like to wrap JSON in.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
