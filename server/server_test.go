package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/claritycompass/core/audit"
)

func newTestServer(fetcher *stubFetcher) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(":0", logger, audit.New(audit.Config{}), fetcher, nil)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(&stubFetcher{})

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAnalyzeRoute(t *testing.T) {
	s := newTestServer(&stubFetcher{html: "<html><body><p>hi</p></body></html>"})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url":"https://example.com"}`))
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyzeRouteRejectsGet(t *testing.T) {
	s := newTestServer(&stubFetcher{})

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
