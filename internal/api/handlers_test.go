// internal/api/handlers_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenespeak/scenespeak/internal/services"
	"github.com/scenespeak/scenespeak/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full stack with a file store in a temp dir and no
// remote client, so analysis always takes the local path.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	history := services.NewHistoryService(store)
	analyzer := services.NewAnalyzerService(nil, history)
	handler := NewHandler(analyzer, history, services.NewExportService())
	return NewRouter(handler, false)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	return w, envelope
}

func TestAnalyzeEndpoint_Success(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/analyze",
		`{"text": "JOHN: I'm so happy to see you!\nMARY: Me too, this is wonderful."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.RequestID)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var outcome services.AnalyzeOutcome
	require.NoError(t, json.Unmarshal(data, &outcome))

	require.NotNil(t, outcome.Result)
	assert.NotEmpty(t, outcome.Result.ID)
	assert.GreaterOrEqual(t, outcome.Result.Score, 1)
	assert.Equal(t, "Uplifting & Positive", outcome.Result.SceneMood)
	require.Len(t, outcome.Result.Characters, 2)
	assert.Equal(t, "JOHN", outcome.Result.Characters[0].Name)
}

func TestAnalyzeEndpoint_EmptyRequest(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/analyze", `{"text": "  "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestAnalyzeEndpoint_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodPost, "/api/analyze", `{"text": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestHistoryEndpoint_ListAndClear(t *testing.T) {
	router := newTestRouter(t)

	_, _ = doJSON(t, router, http.MethodPost, "/api/analyze", `{"text": "JOHN: Hello there."}`)
	_, _ = doJSON(t, router, http.MethodPost, "/api/analyze", `{"text": "MARY: Goodbye now."}`)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusOK, w.Code)
	entries, ok := envelope.Data.([]interface{})
	require.True(t, ok, "expected a history array, got %T", envelope.Data)
	assert.Len(t, entries, 2)

	w, envelope = doJSON(t, router, http.MethodDelete, "/api/history", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "analysis history cleared", envelope.Message)

	_, envelope = doJSON(t, router, http.MethodGet, "/api/history", "")
	entries, ok = envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Empty(t, entries)
}

func TestExportEndpoint_Text(t *testing.T) {
	router := newTestRouter(t)

	_, _ = doJSON(t, router, http.MethodPost, "/api/analyze", `{"text": "JOHN: Hello there."}`)

	req := httptest.NewRequest(http.MethodGet, "/api/export/txt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "scenespeak-analysis.txt")
	assert.Contains(t, w.Body.String(), "SceneSpeak AI Analysis")
	assert.Contains(t, w.Body.String(), "Score: ")
}

func TestExportEndpoint_EmptyHistory(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/export/txt", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestExportEndpoint_BadIndex(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/export/txt?index=-3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestExportEndpoint_UnknownFormat(t *testing.T) {
	router := newTestRouter(t)

	_, _ = doJSON(t, router, http.MethodPost, "/api/analyze", `{"text": "JOHN: Hello there."}`)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/export/docx", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, envelope := doJSON(t, router, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}
