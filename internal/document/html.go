package document

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"net/url"
	"regexp"
	"strings"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/microcosm-cc/bluemonday"
)

var (
	blockTagPattern = regexp.MustCompile(`(?i)</?(p|div|br|li|h[1-6]|tr|section|article)[^>]*>`)
	blankRunPattern = regexp.MustCompile(`\n\s*\n+`)
)

// HTMLExtractor turns an online CV page into plain text.
type HTMLExtractor struct {
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewHTMLExtractor() *HTMLExtractor {
	// Strip scripts and other elements that interfere with readability parsing
	ugc := bluemonday.UGCPolicy()
	ugc.AllowElements("article", "section", "header", "footer", "nav", "aside", "main", "figure", "figcaption")
	ugc.AllowAttrs("id", "class", "lang", "dir").Globally()

	return &HTMLExtractor{
		ugc:    ugc,
		strict: bluemonday.StrictPolicy(),
	}
}

// Extract parses the main content of the page and renders it as text.
func (e *HTMLExtractor) Extract(r io.Reader, pageURL *url.URL) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read html: %w", err)
	}
	sanitized := e.ugc.SanitizeBytes(raw)

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(sanitized), pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: parse html: %v", ErrCorrupt, err)
	}

	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}

	return e.toText(buf.String()), nil
}

func (e *HTMLExtractor) toText(content string) string {
	withBreaks := blockTagPattern.ReplaceAllString(content, "\n")
	text := html.UnescapeString(e.strict.Sanitize(withBreaks))
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
