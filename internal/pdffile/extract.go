package pdffile

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// TextBudget caps how much of the document body ever reaches the prompt.
// Only the first 3000 characters of the extracted text inform generation;
// this is a fixed token-budget control, not derived from document size.
const TextBudget = 3000

// ExtractText pulls plain text out of the PDF bytes page by page. When the
// bytes cannot be parsed as a PDF the raw content is decoded as UTF-8 text
// instead, dropping invalid runes. The result is truncated to TextBudget
// characters.
func ExtractText(data []byte) string {
	text := pdfText(data)
	if text == "" {
		text = sanitizeUTF8(data)
	}
	return Truncate(text, TextBudget)
}

func pdfText(data []byte) string {
	defer func() {
		// ledongthuc/pdf panics on some malformed inputs; treat those the
		// same as a parse error.
		_ = recover()
	}()

	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var b strings.Builder
	for i := 1; i <= rdr.NumPage(); i++ {
		page := rdr.Page(i)
		if page.V.IsNull() {
			continue
		}
		txt, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if s := strings.TrimSpace(txt); s != "" {
			b.WriteString(s)
			b.WriteString("\n")
		}
		if b.Len() > TextBudget {
			break
		}
	}
	return strings.TrimSpace(b.String())
}

func sanitizeUTF8(data []byte) string {
	var b strings.Builder
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r != utf8.RuneError || size != 1 {
			b.WriteRune(r)
		}
		data = data[size:]
		if b.Len() > 4*TextBudget {
			break
		}
	}
	return b.String()
}

// Truncate cuts s to at most n runes without splitting a rune.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
