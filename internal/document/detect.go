package document

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// Kind is the detected document format.
type Kind string

const (
	KindPDF         Kind = "pdf"
	KindHTML        Kind = "html"
	KindUnsupported Kind = ""
)

// Detect sniffs the content; the filename extension is only a fallback
// for HTML pages that lack a recognizable prolog.
func Detect(data []byte, filename string) Kind {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is("application/pdf"):
		return KindPDF
	case mt.Is("text/html"):
		return KindHTML
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if (ext == ".html" || ext == ".htm") && utf8.Valid(data) {
		return KindHTML
	}
	return KindUnsupported
}

// TruncateRunes cuts text to at most max runes. max <= 0 disables the cap.
func TruncateRunes(text string, max int) (string, bool) {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text, false
	}
	n := 0
	for i := range text {
		if n == max {
			return text[:i], true
		}
		n++
	}
	return text, false
}
