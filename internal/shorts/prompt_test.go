package shorts

import (
	"strings"
	"testing"

	"github.com/pdfshorts/backend/internal/pdffile"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("ShortBodyUsedWhole", func(t *testing.T) {
		prompt := BuildPrompt("a tiny document")
		assert.Contains(t, prompt, "a tiny document")
		assert.Contains(t, prompt, "create 3 educational shorts")
	})

	t.Run("LongBodyTruncatedToBudget", func(t *testing.T) {
		body := strings.Repeat("x", pdffile.TextBudget) + "OVERFLOW"

		prompt := BuildPrompt(body)
		assert.Contains(t, prompt, strings.Repeat("x", pdffile.TextBudget))
		assert.NotContains(t, prompt, "OVERFLOW")
	})

	t.Run("ExactBudgetUnchanged", func(t *testing.T) {
		body := strings.Repeat("y", pdffile.TextBudget)
		prompt := BuildPrompt(body)
		assert.Contains(t, prompt, body)
	})
}
