package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestConfig() JWTConfig {
	return JWTConfig{
		SigningKey: []byte("test-signing-key-0123456789abcdef"),
		Issuer:     "truepedia",
		ExpiresIn:  time.Hour,
	}
}

func jwtTestRouter(cfg JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": GetUsername(c.Request.Context())})
	})
	return r
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	token, expiresAt, err := GenerateToken(jwtTestConfig(), "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
}

func TestJWTAuthValidToken(t *testing.T) {
	t.Parallel()

	cfg := jwtTestConfig()
	token, _, err := GenerateToken(cfg, "admin")
	require.NoError(t, err)

	r := jwtTestRouter(cfg)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	t.Parallel()

	r := jwtTestRouter(jwtTestConfig())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	t.Parallel()

	r := jwtTestRouter(jwtTestConfig())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthWrongKey(t *testing.T) {
	t.Parallel()

	token, _, err := GenerateToken(jwtTestConfig(), "admin")
	require.NoError(t, err)

	wrongKey := jwtTestConfig()
	wrongKey.SigningKey = []byte("a-completely-different-signing-key")
	r := jwtTestRouter(wrongKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := jwtTestConfig()
	cfg.ExpiresIn = -time.Minute
	token, _, err := GenerateToken(cfg, "admin")
	require.NoError(t, err)

	r := jwtTestRouter(cfg)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestJWTAuthWrongIssuer(t *testing.T) {
	t.Parallel()

	// Signed with the right key but issued by someone else.
	foreign := jwtTestConfig()
	foreign.Issuer = "another-service"
	token, _, err := GenerateToken(foreign, "admin")
	require.NoError(t, err)

	r := jwtTestRouter(jwtTestConfig())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
}
