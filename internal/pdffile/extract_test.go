package pdffile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("ShorterThanBudget", func(t *testing.T) {
		assert.Equal(t, "hello", Truncate("hello", TextBudget))
	})

	t.Run("ExactlyBudget", func(t *testing.T) {
		s := strings.Repeat("a", TextBudget)
		assert.Equal(t, s, Truncate(s, TextBudget))
	})

	t.Run("LongerThanBudget", func(t *testing.T) {
		s := strings.Repeat("a", TextBudget+500)
		got := Truncate(s, TextBudget)
		assert.Len(t, got, TextBudget)
		assert.Equal(t, s[:TextBudget], got)
	})

	t.Run("MultibyteRunesNotSplit", func(t *testing.T) {
		s := strings.Repeat("é", 10)
		got := Truncate(s, 4)
		assert.Equal(t, "éééé", got)
	})

	t.Run("NonPositiveBudget", func(t *testing.T) {
		assert.Equal(t, "", Truncate("abc", 0))
	})
}

func TestExtractText(t *testing.T) {
	t.Run("PlainTextFallback", func(t *testing.T) {
		got := ExtractText([]byte("not a pdf, just text"))
		assert.Equal(t, "not a pdf, just text", got)
	})

	t.Run("InvalidUTF8Dropped", func(t *testing.T) {
		got := ExtractText([]byte{'o', 'k', 0xff, 0xfe, '!'})
		assert.Equal(t, "ok!", got)
	})

	t.Run("LongBodyTruncated", func(t *testing.T) {
		body := []byte(strings.Repeat("z", TextBudget*2))
		got := ExtractText(body)
		assert.Len(t, got, TextBudget)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Equal(t, "", ExtractText(nil))
	})
}
