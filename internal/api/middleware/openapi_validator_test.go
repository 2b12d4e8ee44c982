package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validatorRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw, err := NewOpenAPIValidator()
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw)
	r.GET("/api/v1/search", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"query": c.Query("q"), "language": "en", "titles": []string{}})
	})
	r.POST("/api/v1/translate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"translated_text": "x", "source_lang": "en", "target_lang": "de", "truncated": false})
	})
	r.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "outside the contract")
	})
	return r
}

func TestOpenAPIValidatorAcceptsValidRequest(t *testing.T) {
	t.Parallel()

	r := validatorRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search?q=einstein", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOpenAPIValidatorRejectsMissingQueryParam(t *testing.T) {
	t.Parallel()

	r := validatorRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestOpenAPIValidatorRejectsInvalidBody(t *testing.T) {
	t.Parallel()

	r := validatorRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", strings.NewReader(`{"text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenAPIValidatorPassesThroughUncoveredPaths(t *testing.T) {
	t.Parallel()

	r := validatorRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "outside the contract", w.Body.String())
}
