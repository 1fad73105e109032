package shorts

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	minOptionsPerQuestion = 2
	maxOptionsPerQuestion = 4
)

// ParsePayload decodes the completion text into the expected shape. Extra
// fields the model invents are ignored; anything that is not a JSON object
// with a shorts array is malformed.
func ParsePayload(raw string) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if p.Shorts == nil {
		return nil, fmt.Errorf("%w: missing shorts array", ErrMalformedResponse)
	}
	return &p, nil
}

// ValidatePayload enforces the quiz invariants before anything persists:
// at least one short, non-empty text everywhere, 2 to 4 options per question
// and exactly one correct option. A payload failing here is rejected whole
// rather than partially persisted.
func ValidatePayload(p *Payload) error {
	if p == nil || len(p.Shorts) == 0 {
		return fmt.Errorf("%w: no shorts in payload", ErrValidation)
	}

	for i, s := range p.Shorts {
		if strings.TrimSpace(s.TopicName) == "" {
			return fmt.Errorf("%w: short %d has empty topic_name", ErrValidation, i)
		}
		if strings.TrimSpace(s.TopicSummary) == "" {
			return fmt.Errorf("%w: short %d has empty topic_summary", ErrValidation, i)
		}
		if len(s.Questions) == 0 {
			return fmt.Errorf("%w: short %d has no questions", ErrValidation, i)
		}

		for j, q := range s.Questions {
			if strings.TrimSpace(q.QuestionText) == "" {
				return fmt.Errorf("%w: short %d question %d has empty question_text", ErrValidation, i, j)
			}
			if len(q.Options) < minOptionsPerQuestion || len(q.Options) > maxOptionsPerQuestion {
				return fmt.Errorf("%w: short %d question %d has %d options, want %d to %d",
					ErrValidation, i, j, len(q.Options), minOptionsPerQuestion, maxOptionsPerQuestion)
			}

			correct := 0
			for k, o := range q.Options {
				if strings.TrimSpace(o.OptionText) == "" {
					return fmt.Errorf("%w: short %d question %d option %d has empty option_text", ErrValidation, i, j, k)
				}
				if o.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				return fmt.Errorf("%w: short %d question %d has %d correct options, want exactly 1",
					ErrValidation, i, j, correct)
			}
		}
	}

	return nil
}
