package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/firm-site/internal/middleware"
)

// serveLogged runs one request through NewSlogLogger and returns the parsed log line.
func serveLogged(t *testing.T, next http.HandlerFunc, path string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := middleware.NewSlogLogger(logger)(next)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	// Stand in for chimiddleware.RequestID with a known ID.
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id")
	h.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSlogLogger_logsRequestFields(t *testing.T) {
	entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Page-Source", "generic")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	}, "/locations/nc/asheboro")

	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/locations/nc/asheboro", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 5, entry["bytes"])
	assert.Equal(t, "generic", entry["page_source"])
	assert.Equal(t, "test-req-id", entry["request_id"])
	assert.NotNil(t, entry["duration_ms"])
}

func TestSlogLogger_omitsPageSourceForOtherRoutes(t *testing.T) {
	entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, "/healthz")

	assert.EqualValues(t, http.StatusNotFound, entry["status"])
	assert.NotContains(t, entry, "page_source")
}
