package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"truepedia.io/truepedia/internal/api/handlers"
	"truepedia.io/truepedia/internal/api/middleware"
	"truepedia.io/truepedia/internal/config"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	server := handlers.NewServer(handlers.ServerDeps{})
	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte("test-signing-key-0123456789abcdef"),
		Issuer:     "truepedia",
		ExpiresIn:  time.Hour,
	}
	return newRouter(cfg, server, jwtCfg)
}

func TestRouterHealthIsPublic(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterMetricsExposed(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRouterAdminRequiresToken(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/snapshots", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterValidatesRequests(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := httptest.NewRecorder()
	// Missing required q parameter is rejected before the handler runs.
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestRouterRequestIDHeader(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
