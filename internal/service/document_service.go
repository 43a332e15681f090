package service

//go:generate mockgen -source=document_service.go -destination=mock/document_service.go -package=mock

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/Noooste/azuretls-client"

	"evalreport/backend/internal/config"
	"evalreport/backend/internal/document"
	"evalreport/backend/internal/logger"
	"evalreport/backend/internal/metrics"
	"evalreport/backend/internal/model"
	"evalreport/backend/internal/network"
)

// DocumentSource identifies where the candidate document comes from.
// Exactly one of Data, URL or Path is used, in that order of precedence.
type DocumentSource struct {
	Filename string
	Data     []byte
	URL      string
	Path     string
}

// IsEmpty reports whether no document was supplied.
func (s DocumentSource) IsEmpty() bool {
	return len(s.Data) == 0 && s.URL == "" && s.Path == ""
}

// DocumentService acquires candidate documents and extracts their text.
type DocumentService interface {
	// Extract dispatches on the populated field of src.
	Extract(ctx context.Context, src DocumentSource, pages model.PageRange) (string, error)
	FromUpload(ctx context.Context, filename string, data []byte, pages model.PageRange) (string, error)
	FromURL(ctx context.Context, rawURL string, pages model.PageRange) (string, error)
	FromPath(ctx context.Context, path string, pages model.PageRange) (string, error)
}

// DocumentOptions tunes downloads and extraction.
type DocumentOptions struct {
	DownloadTimeout time.Duration
	MaxBytes        int64
	MaxChars        int
	Impersonate     bool // download through a Chrome-fingerprinted azuretls session
}

type documentService struct {
	clientFactory *network.ClientFactory
	html          *document.HTMLExtractor
	opts          DocumentOptions
}

func NewDocumentService(clientFactory *network.ClientFactory, opts DocumentOptions) DocumentService {
	if opts.DownloadTimeout <= 0 {
		opts.DownloadTimeout = 30 * time.Second
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 20 << 20
	}
	return &documentService{
		clientFactory: clientFactory,
		html:          document.NewHTMLExtractor(),
		opts:          opts,
	}
}

func (s *documentService) Extract(ctx context.Context, src DocumentSource, pages model.PageRange) (string, error) {
	switch {
	case len(src.Data) > 0:
		return s.FromUpload(ctx, src.Filename, src.Data, pages)
	case src.URL != "":
		return s.FromURL(ctx, src.URL, pages)
	case src.Path != "":
		return s.FromPath(ctx, src.Path, pages)
	default:
		return "", fmt.Errorf("%w: either file or file_url must be provided", ErrInvalid)
	}
}

func (s *documentService) FromUpload(ctx context.Context, filename string, data []byte, pages model.PageRange) (string, error) {
	text, err := s.extract(data, filename, &url.URL{Scheme: "file", Path: "/" + filepath.Base(filename)}, pages)
	metrics.DocumentsTotal.WithLabelValues("upload", metrics.Result(err)).Inc()
	return text, err
}

func (s *documentService) FromPath(ctx context.Context, path string, pages model.PageRange) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		metrics.DocumentsTotal.WithLabelValues("path", "failed").Inc()
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: PDF file not found: %s", ErrInvalid, path)
		}
		return "", fmt.Errorf("read document: %w", err)
	}

	abs, _ := filepath.Abs(path)
	text, err := s.extract(data, path, &url.URL{Scheme: "file", Path: abs}, pages)
	metrics.DocumentsTotal.WithLabelValues("path", metrics.Result(err)).Inc()
	return text, err
}

func (s *documentService) FromURL(ctx context.Context, rawURL string, pages model.PageRange) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Host == "" {
		return "", fmt.Errorf("%w: invalid file_url", ErrInvalid)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", fmt.Errorf("%w: file_url must use http or https", ErrInvalid)
	}

	var data []byte
	if s.opts.Impersonate {
		data, err = s.downloadAzure(ctx, parsedURL)
	} else {
		data, err = s.download(ctx, parsedURL)
	}
	if err != nil {
		metrics.DocumentsTotal.WithLabelValues("url", "failed").Inc()
		return "", err
	}

	text, err := s.extract(data, parsedURL.Path, parsedURL, pages)
	metrics.DocumentsTotal.WithLabelValues("url", metrics.Result(err)).Inc()
	return text, err
}

func (s *documentService) download(ctx context.Context, u *url.URL) ([]byte, error) {
	client := s.clientFactory.NewHTTPClient(ctx, s.opts.DownloadTimeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid file_url", ErrInvalid)
	}
	req.Header.Set("User-Agent", config.DefaultUserAgent)
	req.Header.Set("Accept", "application/pdf,text/html;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		logger.Warn("document download failed", "module", "service", "action", "fetch", "resource", "document", "result", "failed", "host", u.Host, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("document download http error", "module", "service", "action", "fetch", "resource", "document", "result", "failed", "host", u.Host, "status_code", resp.StatusCode)
		return nil, &DownloadError{URL: u.String(), StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrDownload, err)
	}
	if int64(len(data)) > s.opts.MaxBytes {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", ErrInvalid, s.opts.MaxBytes)
	}

	logger.Debug("document downloaded", "module", "service", "action", "fetch", "resource", "document", "result", "ok", "host", u.Host, "bytes", len(data))
	return data, nil
}

func (s *documentService) downloadAzure(ctx context.Context, u *url.URL) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.DownloadTimeout)
	defer cancel()

	session, err := s.clientFactory.NewAzureSession(ctx, s.opts.DownloadTimeout)
	if err != nil {
		logger.Warn("document download session failed", "module", "service", "action", "fetch", "resource", "document", "result", "failed", "host", u.Host, "client", "azuretls", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer session.Close()

	// The body is streamed so the size cap applies before it is buffered.
	req := &azuretls.Request{
		Method:     http.MethodGet,
		Url:        u.String(),
		IgnoreBody: true,
		OrderedHeaders: azuretls.OrderedHeaders{
			{"accept", "application/pdf,text/html;q=0.9,*/*;q=0.8"},
			{"accept-language", "en-US,en;q=0.9"},
			{"sec-ch-ua", config.ChromeSecChUa},
			{"sec-ch-ua-mobile", "?0"},
			{"sec-ch-ua-platform", `"Windows"`},
			{"user-agent", config.ChromeUserAgent},
		},
	}
	req.SetContext(ctx)

	resp, err := session.Do(req)
	if err != nil {
		logger.Warn("document download failed", "module", "service", "action", "fetch", "resource", "document", "result", "failed", "host", u.Host, "client", "azuretls", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.CloseBody()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("document download http error", "module", "service", "action", "fetch", "resource", "document", "result", "failed", "host", u.Host, "client", "azuretls", "status_code", resp.StatusCode)
		return nil, &DownloadError{URL: u.String(), StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.RawBody, s.opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrDownload, err)
	}
	if int64(len(raw)) > s.opts.MaxBytes {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", ErrInvalid, s.opts.MaxBytes)
	}
	data, err := azuretls.DecodeResponseBody(io.NopCloser(bytes.NewReader(raw)), resp.Header.Get("Content-Encoding"))
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrDownload, err)
	}
	if int64(len(data)) > s.opts.MaxBytes {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", ErrInvalid, s.opts.MaxBytes)
	}

	logger.Debug("document downloaded", "module", "service", "action", "fetch", "resource", "document", "result", "ok", "host", u.Host, "client", "azuretls", "bytes", len(data))
	return data, nil
}

func (s *documentService) extract(data []byte, filename string, source *url.URL, pages model.PageRange) (string, error) {
	var (
		text string
		err  error
	)
	switch document.Detect(data, filename) {
	case document.KindPDF:
		text, err = document.ExtractPDFBytes(data, pages)
	case document.KindHTML:
		text, err = s.html.Extract(bytes.NewReader(data), source)
	default:
		return "", fmt.Errorf("%w: expected a PDF document", ErrUnsupportedDocument)
	}
	if err != nil {
		logger.Warn("document extract failed", "module", "service", "action", "extract", "resource", "document", "result", "failed", "error", err)
		if errors.Is(err, document.ErrPageRange) || errors.Is(err, document.ErrCorrupt) {
			return "", fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return "", err
	}

	if text, cut := document.TruncateRunes(text, s.opts.MaxChars); cut {
		logger.Warn("document text truncated", "module", "service", "action", "extract", "resource", "document", "result", "ok", "max_chars", s.opts.MaxChars)
		return text, nil
	}
	if len(text) == 0 {
		logger.Warn("document has no extractable text", "module", "service", "action", "extract", "resource", "document", "result", "ok")
	}
	return text, nil
}
