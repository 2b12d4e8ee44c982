package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"truepedia.io/truepedia/internal/api/middleware"
	"truepedia.io/truepedia/internal/config"
	"truepedia.io/truepedia/internal/pkg/logger"
	"truepedia.io/truepedia/internal/service"
	"truepedia.io/truepedia/internal/translate"
	"truepedia.io/truepedia/internal/wiki"
)

func init() {
	_ = logger.Init("error", "json")
}

type gatewayStub struct {
	article *wiki.Article
	// canonical, when set, overrides the echoed title the way MediaWiki
	// redirect resolution does.
	canonical string
	variants  map[string]string
	err       error
}

func (g *gatewayStub) Article(_ context.Context, title, lang string) (*wiki.Article, error) {
	if g.err != nil {
		return nil, g.err
	}
	art := *g.article
	art.Title = title
	if g.canonical != "" {
		art.Title = g.canonical
	}
	art.Language = lang
	return &art, nil
}

func (g *gatewayStub) AvailableLanguages(_ context.Context, _, _ string) (map[string]string, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.variants, nil
}

type providerStub struct {
	result string
	err    error
}

func (p *providerStub) Translate(_ context.Context, _, _, _ string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.result, nil
}

func testRouter(server *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/api/v1/languages", server.GetLanguages)
	r.GET("/api/v1/health/live", server.GetLiveness)
	r.GET("/api/v1/health/ready", server.GetReadiness)
	r.GET("/api/v1/articles/:lang/:title", server.GetArticle)
	r.GET("/api/v1/articles/:lang/:title/languages", server.GetArticleLanguages)
	r.GET("/api/v1/articles/:lang/:title/highlights", server.GetHighlights)
	r.POST("/api/v1/articles/:lang/:title/highlights", server.PostHighlight)
	r.DELETE("/api/v1/highlights/:id", server.DeleteHighlight)
	r.POST("/api/v1/translate", server.PostTranslate)
	r.POST("/api/v1/auth/login", server.PostLogin)
	return r
}

func TestGetLanguages(t *testing.T) {
	t.Parallel()

	r := testRouter(&Server{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"de"`)
	assert.Contains(t, w.Body.String(), "Deutsch")
}

func TestGetLiveness(t *testing.T) {
	t.Parallel()

	r := testRouter(&Server{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetArticle(t *testing.T) {
	t.Parallel()

	gw := &gatewayStub{article: &wiki.Article{
		URL:     "https://en.wikipedia.org/wiki/Go_(programming_language)",
		Summary: "Go is a statically typed language.",
		Content: "Go is a statically typed language.\n== History ==\nDesigned at Google in 2007.",
	}}
	// No highlight store and no river client: the article must still render
	// with an unmarked summary and no prefetch enqueued.
	srv := &Server{articles: service.NewArticleService(gw, nil, time.Hour)}

	r := testRouter(srv)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/en/Go", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"title":"Go"`)
	assert.Contains(t, body, `"language":"en"`)
	assert.Contains(t, body, `"url":"https://en.wikipedia.org/wiki/Go_(programming_language)"`)
	assert.Contains(t, body, `"highlighted_summary":"Go is a statically typed language."`)
	assert.Contains(t, body, `"title":"Introduction"`)
	assert.Contains(t, body, `"title":"History"`)
	assert.Contains(t, body, "Designed at Google in 2007.")
}

func TestGetArticleUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	srv := &Server{articles: service.NewArticleService(&gatewayStub{}, nil, time.Hour)}
	r := testRouter(srv)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/xx/Go", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_LANGUAGE")
}

func TestGetArticleMissing(t *testing.T) {
	t.Parallel()

	srv := &Server{articles: service.NewArticleService(&gatewayStub{err: wiki.ErrArticleMissing}, nil, time.Hour)}
	r := testRouter(srv)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/en/Nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ARTICLE_NOT_FOUND")
}

func TestGetArticleLanguages(t *testing.T) {
	t.Parallel()

	gw := &gatewayStub{variants: map[string]string{
		"de": "Albert Einstein",
		"xx": "Some Title",
	}}
	srv := &Server{articles: service.NewArticleService(gw, nil, time.Hour)}

	r := testRouter(srv)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/en/Albert%20Einstein/languages", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"code":"de"`)
	assert.Contains(t, body, `"supported":true`)
	assert.Contains(t, body, `"code":"xx"`)
	assert.Contains(t, body, `"supported":false`)
}

func TestGetArticleLanguagesUnsupportedEdition(t *testing.T) {
	t.Parallel()

	srv := &Server{articles: service.NewArticleService(&gatewayStub{}, nil, time.Hour)}
	r := testRouter(srv)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/xx/Title/languages", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_LANGUAGE")
}

func TestGetArticleLanguagesArticleMissing(t *testing.T) {
	t.Parallel()

	srv := &Server{articles: service.NewArticleService(&gatewayStub{err: wiki.ErrArticleMissing}, nil, time.Hour)}
	r := testRouter(srv)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/en/Nope/languages", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ARTICLE_NOT_FOUND")
}

func TestPostTranslate(t *testing.T) {
	t.Parallel()

	srv := &Server{translator: translate.NewService(&providerStub{result: "Hallo"}, nil, 3000)}
	r := testRouter(srv)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate",
		strings.NewReader(`{"text":"Hello","source_lang":"en","target_lang":"de"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"translated_text":"Hallo"`)
	assert.Contains(t, w.Body.String(), `"truncated":false`)
}

func TestPostTranslateUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	srv := &Server{translator: translate.NewService(&providerStub{}, nil, 3000)}
	r := testRouter(srv)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate",
		strings.NewReader(`{"text":"Hello","source_lang":"en","target_lang":"xx"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_LANGUAGE")
}

func TestPostTranslateProviderDown(t *testing.T) {
	t.Parallel()

	srv := &Server{translator: translate.NewService(&providerStub{err: translate.ErrUnavailable}, nil, 3000)}
	r := testRouter(srv)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate",
		strings.NewReader(`{"text":"Hello","source_lang":"en","target_lang":"de"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "TRANSLATION_UNAVAILABLE")
}

func loginServer(t *testing.T) *Server {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("sesame"), bcrypt.MinCost)
	require.NoError(t, err)
	return &Server{
		authCfg: config.AuthConfig{
			AdminUser:         "admin",
			AdminPasswordHash: string(hash),
		},
		jwtCfg: middleware.JWTConfig{
			SigningKey: []byte("test-signing-key-0123456789abcdef"),
			Issuer:     "truepedia",
			ExpiresIn:  time.Hour,
		},
	}
}

func TestPostLogin(t *testing.T) {
	t.Parallel()

	r := testRouter(loginServer(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"sesame"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"expires_at"`)
}

func TestPostLoginBadPassword(t *testing.T) {
	t.Parallel()

	r := testRouter(loginServer(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_FAILED")
}

func TestPostLoginDisabled(t *testing.T) {
	t.Parallel()

	r := testRouter(&Server{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"sesame"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
