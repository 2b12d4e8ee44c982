package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truepedia.io/truepedia/internal/highlight"
	"truepedia.io/truepedia/internal/service"
	"truepedia.io/truepedia/internal/testutil"
	"truepedia.io/truepedia/internal/wiki"
)

func TestHighlightRoundTripUsesCanonicalTitle(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handlers_highlight_canonical")

	// The gateway resolves the URL-style title to the canonical one, the way
	// MediaWiki redirect resolution does.
	gw := &gatewayStub{
		canonical: "Albert Einstein",
		article: &wiki.Article{
			URL:     "https://en.wikipedia.org/wiki/Albert_Einstein",
			Summary: "Einstein developed the theory of relativity.",
			Content: "Einstein developed the theory of relativity.",
		},
	}
	srv := &Server{
		articles:   service.NewArticleService(gw, client, time.Hour),
		highlights: highlight.NewService(client),
	}
	r := testRouter(srv)

	// Save under the URL-style title.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/articles/en/Albert_Einstein/highlights",
		strings.NewReader(`{"fragment":"theory of relativity"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"article_key":"Albert Einstein_en"`)

	// Saving the same fragment again returns the stored row with 200.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/articles/en/Albert_Einstein/highlights",
		strings.NewReader(`{"fragment":"theory of relativity"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// The canonical article view renders the highlight saved via the
	// URL-style title.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/en/Albert%20Einstein", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var article struct {
		HighlightedSummary string `json:"highlighted_summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &article))
	assert.Equal(t, "Einstein developed the <mark>theory of relativity</mark>.", article.HighlightedSummary)

	// Listing under the URL-style title resolves to the same key and row.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/en/Albert_Einstein/highlights", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"article_key":"Albert Einstein_en"`)
	assert.Contains(t, w.Body.String(), `"fragment":"theory of relativity"`)
}
