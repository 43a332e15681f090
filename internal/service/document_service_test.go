package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"evalreport/backend/internal/document/documenttest"
	"evalreport/backend/internal/model"
	"evalreport/backend/internal/network"
	"evalreport/backend/internal/service"
)

func newDocumentService(t *testing.T, srv *httptest.Server) service.DocumentService {
	t.Helper()
	factory := network.NewClientFactory("")
	if srv != nil {
		factory = network.NewClientFactoryForTest(srv.Client())
	}
	return service.NewDocumentService(factory, service.DocumentOptions{MaxBytes: 1 << 20, MaxChars: 1000})
}

func TestDocumentService_FromUpload(t *testing.T) {
	svc := newDocumentService(t, nil)

	text, err := svc.FromUpload(context.Background(), "cv.pdf", documenttest.BuildPDF("Jane Doe", "Publications"), model.PageRange{})
	require.NoError(t, err)
	require.Contains(t, text, "Jane Doe")
	require.Contains(t, text, "Publications")
}

func TestDocumentService_FromUpload_BadPageRange(t *testing.T) {
	svc := newDocumentService(t, nil)

	_, err := svc.FromUpload(context.Background(), "cv.pdf", documenttest.BuildPDF("only"), model.PageRange{Start: 3})
	require.ErrorIs(t, err, service.ErrInvalid)
	require.Contains(t, err.Error(), "invalid start page")
}

func TestDocumentService_FromUpload_Unsupported(t *testing.T) {
	svc := newDocumentService(t, nil)

	_, err := svc.FromUpload(context.Background(), "photo.png", []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, model.PageRange{})
	require.ErrorIs(t, err, service.ErrUnsupportedDocument)
}

func TestDocumentService_FromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cv.pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(documenttest.BuildPDF("Downloaded CV"))
	}))
	defer srv.Close()

	text, err := newDocumentService(t, srv).FromURL(context.Background(), srv.URL+"/cv.pdf", model.PageRange{})
	require.NoError(t, err)
	require.Contains(t, text, "Downloaded CV")
}

func TestDocumentService_FromURL_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newDocumentService(t, srv).FromURL(context.Background(), srv.URL+"/missing.pdf", model.PageRange{})
	require.ErrorIs(t, err, service.ErrDownload)

	var dlErr *service.DownloadError
	require.ErrorAs(t, err, &dlErr)
	require.Equal(t, http.StatusNotFound, dlErr.StatusCode)
}

func TestDocumentService_FromURL_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 2<<20))
	}))
	defer srv.Close()

	_, err := newDocumentService(t, srv).FromURL(context.Background(), srv.URL+"/big.pdf", model.PageRange{})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestDocumentService_FromURL_BadScheme(t *testing.T) {
	svc := newDocumentService(t, nil)

	_, err := svc.FromURL(context.Background(), "ftp://example.com/cv.pdf", model.PageRange{})
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.FromURL(context.Background(), "not a url", model.PageRange{})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestDocumentService_FromPath(t *testing.T) {
	svc := newDocumentService(t, nil)
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, documenttest.BuildPDF("Local CV"), 0o600))

	text, err := svc.FromPath(context.Background(), path, model.PageRange{})
	require.NoError(t, err)
	require.Contains(t, text, "Local CV")

	_, err = svc.FromPath(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), model.PageRange{})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestDocumentService_Extract_Empty(t *testing.T) {
	_, err := newDocumentService(t, nil).Extract(context.Background(), service.DocumentSource{}, model.PageRange{})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestDocumentService_FromURL_ImpersonateCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(documenttest.BuildPDF("never read"))
	}))
	defer srv.Close()

	svc := service.NewDocumentService(network.NewClientFactory(""), service.DocumentOptions{Impersonate: true, DownloadTimeout: 5 * time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FromURL(ctx, srv.URL+"/cv.pdf", model.PageRange{})
	require.ErrorIs(t, err, service.ErrDownload)
}
