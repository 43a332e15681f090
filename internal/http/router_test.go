package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"evalreport/backend/internal/document/documenttest"
	"evalreport/backend/internal/handler"
	transport "evalreport/backend/internal/http"
	"evalreport/backend/internal/network"
	"evalreport/backend/internal/service"
	"evalreport/backend/internal/service/ai"
)

const (
	reportJSON     = `{"purpose":"Evaluate Jane Doe.","education_and_accomplishments":"PhD.","ability_to_lecture":"Strong.","suitability":"Suitable.","conclusion":"Recommended."}`
	translatedJSON = `{"title":"POROČILO O OCENI","purpose":"Oceniti Jane Doe.","education_and_accomplishments":"Doktorat.","ability_to_lecture":"Močna.","suitability":"Primerna.","conclusion":"Priporočeno.","date":"March 05, 2024","evaluator":"Ocenjevalec"}`
)

// fakeModel answers chat completions, picking the reply by requested model.
func fakeModel(t *testing.T, replies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var req struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.Unmarshal(raw, &req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": replies[req.Model]},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T, modelURL string, downloads *http.Client) *echo.Echo {
	t.Helper()
	reportProvider, err := ai.NewOpenAIProvider("test-key", modelURL, "gpt-4o", 0.7)
	require.NoError(t, err)
	translateProvider, err := ai.NewOpenAIProvider("test-key", modelURL, "gpt-4o-mini", 0.7)
	require.NoError(t, err)

	factory := network.NewClientFactory("")
	if downloads != nil {
		factory = network.NewClientFactoryForTest(downloads)
	}

	evaluation := service.NewEvaluationService(
		service.NewDocumentService(factory, service.DocumentOptions{MaxBytes: 1 << 20}),
		service.NewReportService(reportProvider, translateProvider, ai.NewRateLimiter(100), service.ReportOptions{Institution: "AMEU"}),
		service.NewMailService(nil, nil, "", nil),
	)
	return transport.NewRouter(handler.NewEvaluationHandler(evaluation, 1<<20), 1<<20)
}

func uploadRequest(t *testing.T, extra map[string]string, pdf []byte) *http.Request {
	t.Helper()
	fields := map[string]string{
		"first_name":            "Jane",
		"last_name":             "Doe",
		"email":                 "jane@example.com",
		"mobile_phone":          "+386 40 000 000",
		"country":               "Slovenia",
		"years_of_experience":   "10",
		"area_of_expertise":     "Physics",
		"study_programs":        "Applied Physics",
		"is_currently_teaching": "false",
	}
	for k, v := range extra {
		fields[k] = v
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if pdf != nil {
		fw, err := w.CreateFormFile("file", "cv.pdf")
		require.NoError(t, err)
		_, err = fw.Write(pdf)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func do(e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestUpload_ValidPDF(t *testing.T) {
	model := fakeModel(t, map[string]string{"gpt-4o": reportJSON, "gpt-4o-mini": translatedJSON})
	e := newTestRouter(t, model.URL, nil)

	rec, body := do(e, uploadRequest(t, nil, documenttest.BuildPDF("Jane Doe, PhD in Physics")))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "success", body["status"])
	require.EqualValues(t, 200, body["status_code"])
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	english := body["english_report"].(map[string]any)
	require.Equal(t, "EVALUATION REPORT", english["title"])
	require.Equal(t, "Evaluator", english["evaluator"])
	require.Equal(t, "Recommended.", english["conclusion"])
	require.NotEmpty(t, english["date"])

	slovenian := body["slovenian_report"].(map[string]any)
	require.Equal(t, "POROČILO O OCENI", slovenian["title"])
	require.Equal(t, "Ocenjevalec", slovenian["evaluator"])
	require.Equal(t, "Priporočeno.", slovenian["conclusion"])
}

func TestUpload_MissingFileAndURL(t *testing.T) {
	e := newTestRouter(t, "http://127.0.0.1:1", nil)

	rec, body := do(e, uploadRequest(t, nil, nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "error", body["status"])
	require.EqualValues(t, 400, body["status_code"])
}

func TestUpload_DownloadStatusPassthrough(t *testing.T) {
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer files.Close()
	e := newTestRouter(t, "http://127.0.0.1:1", files.Client())

	rec, body := do(e, uploadRequest(t, map[string]string{"file_url": files.URL + "/cv.pdf"}, nil))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.EqualValues(t, 403, body["status_code"])
	require.Contains(t, body["message"], "403")
}

func TestUpload_MalformedModelJSON(t *testing.T) {
	model := fakeModel(t, map[string]string{"gpt-4o": `{"purpose": "cut off`})
	e := newTestRouter(t, model.URL, nil)

	rec, body := do(e, uploadRequest(t, nil, documenttest.BuildPDF("Jane Doe")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "error", body["status"])
	require.EqualValues(t, 500, body["status_code"])
}

func TestUpload_PageRangeOutOfBounds(t *testing.T) {
	e := newTestRouter(t, "http://127.0.0.1:1", nil)

	rec, body := do(e, uploadRequest(t, map[string]string{"start_page": "5"}, documenttest.BuildPDF("one page")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, body["message"], "invalid start page")
}

func TestUpload_UnsupportedFile(t *testing.T) {
	e := newTestRouter(t, "http://127.0.0.1:1", nil)

	rec, _ := do(e, uploadRequest(t, nil, []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}))
	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRouter_CORSAndSystemRoutes(t *testing.T) {
	e := newTestRouter(t, "http://127.0.0.1:1", nil)

	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	req.Header.Set(echo.HeaderOrigin, "https://portal.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec, _ := do(e, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec, body := do(e, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Welcome to the Evaluation Report Generator API", body["message"])

	rec, _ = do(e, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")

	rec, body = do(e, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "error", body["status"])
	require.EqualValues(t, 404, body["status_code"])
}
