// Package pdf provides a PDF text extractor for the chunking pipeline.
//
// It uses ledongthuc/pdf (BSD-3, pure Go, no CGO). It lives in its own
// subpackage so the dependency is only pulled in by users who need PDF
// support.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/prasetya/kertas/extract"
)

// TypePDF is the content type for PDF documents.
const TypePDF = extract.TypePDF

// Extractor implements extract.Extractor for PDF documents.
type Extractor struct{}

// NewExtractor creates a PDF extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract extracts plain text from a PDF, page by page. Pages are joined
// with blank lines so paragraph-level splitting sees page breaks as
// boundaries. Unreadable pages are skipped rather than failing the whole
// document.
func (e *Extractor) Extract(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty PDF content")
	}

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteString("\n\n")
		}
		text.WriteString(pageText)
	}

	return strings.TrimSpace(text.String()), nil
}
