package document_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"evalreport/backend/internal/document"
	"evalreport/backend/internal/document/documenttest"
)

func TestDetect(t *testing.T) {
	require.Equal(t, document.KindPDF, document.Detect(documenttest.BuildPDF("x"), "cv.bin"))
	require.Equal(t, document.KindHTML, document.Detect([]byte("<!DOCTYPE html><html><body><p>hi</p></body></html>"), ""))
	require.Equal(t, document.KindHTML, document.Detect([]byte("<div>profile</div>"), "profile.html"))
	require.Equal(t, document.KindUnsupported, document.Detect([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, "cv.pdf"))
}

func TestTruncateRunes(t *testing.T) {
	out, cut := document.TruncateRunes("čćžšđ", 3)
	require.True(t, cut)
	require.Equal(t, "čćž", out)

	out, cut = document.TruncateRunes("short", 10)
	require.False(t, cut)
	require.Equal(t, "short", out)

	out, cut = document.TruncateRunes("unbounded", 0)
	require.False(t, cut)
	require.Equal(t, "unbounded", out)
}

func TestHTMLExtractor_Extract(t *testing.T) {
	paragraph := "Dr. Ana Novak has taught undergraduate physics for twelve years and supervised " +
		"more than forty thesis projects in applied optics and photonics at several universities. "
	page := `<!DOCTYPE html><html><head><title>Ana Novak</title><script>alert(1)</script></head><body>
<nav><a href="/">Home</a></nav>
<article><h1>Ana Novak &amp; Research</h1>` +
		"<p>" + strings.Repeat(paragraph, 3) + "</p>" +
		"<p>" + strings.Repeat(paragraph, 3) + "</p>" +
		`</article></body></html>`

	u, _ := url.Parse("https://example.com/cv")
	text, err := document.NewHTMLExtractor().Extract(strings.NewReader(page), u)
	require.NoError(t, err)
	require.Contains(t, text, "applied optics")
	require.NotContains(t, text, "alert(1)")
	require.NotContains(t, text, "<p>")
}
