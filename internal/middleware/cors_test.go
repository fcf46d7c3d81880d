package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/firm-site/internal/middleware"
)

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

const siteOrigin = "https://www.example.com"

func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{siteOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/static-params/locations", nil)
	req.Header.Set("Origin", siteOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, siteOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "X-Page-Source", rec.Header().Get("Access-Control-Expose-Headers"))
}

// Browsers send lowercase Access-Control-Request-Headers values and rs/cors
// compares them verbatim against its normalized list.
func TestCORSHandler_OPTIONS_Preflight(t *testing.T) {
	h := middleware.NewCORSHandler([]string{siteOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/static-params/locations", nil)
	req.Header.Set("Origin", siteOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "accept-language")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

// The site is read-only: a preflight for POST gets no CORS grant.
func TestCORSHandler_OPTIONS_WriteMethodRejected(t *testing.T) {
	h := middleware.NewCORSHandler([]string{siteOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/static-params/locations", nil)
	req.Header.Set("Origin", siteOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{siteOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/static-params/locations", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
