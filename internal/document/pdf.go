package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"evalreport/backend/internal/model"
)

// ExtractPDF returns the plain text of the selected pages joined by newlines.
func ExtractPDF(r io.ReaderAt, size int64, pages model.PageRange) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrCorrupt, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	total := reader.NumPage()
	if total == 0 {
		return "", fmt.Errorf("%w: document has no pages", ErrCorrupt)
	}

	start := pages.Start
	if start < 0 || start >= total {
		return "", fmt.Errorf("%w: invalid start page, must be between 0 and %d", ErrPageRange, total-1)
	}
	end := total - 1
	if pages.End != nil {
		end = *pages.End
	}
	if end < start || end >= total {
		return "", fmt.Errorf("%w: invalid end page, must be between %d and %d", ErrPageRange, start, total-1)
	}

	fonts := make(map[string]*pdf.Font)
	parts := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		// pdf pages are 1-based
		p := reader.Page(i + 1)
		if p.V.IsNull() {
			parts = append(parts, "")
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}
		pageText, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("%w: read page %d: %v", ErrCorrupt, i, err)
		}
		parts = append(parts, pageText)
	}

	return strings.Join(parts, "\n"), nil
}

// ExtractPDFBytes is ExtractPDF over an in-memory document.
func ExtractPDFBytes(data []byte, pages model.PageRange) (string, error) {
	return ExtractPDF(bytes.NewReader(data), int64(len(data)), pages)
}
