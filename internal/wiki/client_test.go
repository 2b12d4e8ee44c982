package wiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truepedia.io/truepedia/internal/config"
	"truepedia.io/truepedia/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.WikiConfig{
		EndpointTemplate: srv.URL + "/%s/w/api.php",
		UserAgent:        "truepedia-test/1.0",
		Timeout:          5 * time.Second,
		SearchLimit:      10,
	})
}

func TestClientSearch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/w/api.php", r.URL.Path)
		assert.Equal(t, "truepedia-test/1.0", r.Header.Get("User-Agent"))

		q := r.URL.Query()
		assert.Equal(t, "query", q.Get("action"))
		assert.Equal(t, "2", q.Get("formatversion"))
		assert.Equal(t, "search", q.Get("list"))
		assert.Equal(t, "einstein", q.Get("srsearch"))
		assert.Equal(t, "3", q.Get("srlimit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"search":[{"title":"Albert Einstein"},{"title":"Einstein family"}]}}`))
	})

	titles, err := client.Search(context.Background(), "einstein", "en", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Albert Einstein", "Einstein family"}, titles)
}

func TestClientSearchDefaultLimit(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("srlimit"))
		_, _ = w.Write([]byte(`{"query":{"search":[]}}`))
	})

	titles, err := client.Search(context.Background(), "einstein", "en", 0)
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestClientArticle(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "extracts|info", q.Get("prop"))
		assert.Equal(t, "Albert Einstein", q.Get("titles"))

		w.Header().Set("Content-Type", "application/json")
		if q.Get("exintro") == "1" {
			_, _ = w.Write([]byte(`{"query":{"pages":[{"title":"Albert Einstein","extract":"Intro only.","fullurl":"https://en.wikipedia.org/wiki/Albert_Einstein"}]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"query":{"pages":[{"title":"Albert Einstein","extract":"Intro only.\n== Career ==\nPatent office.","fullurl":"https://en.wikipedia.org/wiki/Albert_Einstein"}]}}`))
	})

	art, err := client.Article(context.Background(), "Albert Einstein", "en")
	require.NoError(t, err)
	assert.Equal(t, "Albert Einstein", art.Title)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Albert_Einstein", art.URL)
	assert.Equal(t, "Intro only.", art.Summary)
	assert.Contains(t, art.Content, "Patent office.")
	assert.Equal(t, "en", art.Language)
}

func TestClientArticleMissing(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"query":{"pages":[{"title":"Nope","missing":true}]}}`))
	})

	_, err := client.Article(context.Background(), "Nope", "en")
	assert.ErrorIs(t, err, ErrArticleMissing)
}

func TestClientArticleEmptyPages(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"query":{"pages":[]}}`))
	})

	_, err := client.Article(context.Background(), "Nope", "en")
	assert.ErrorIs(t, err, ErrArticleMissing)
}

func TestClientAvailableLanguages(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "langlinks", q.Get("prop"))
		assert.Equal(t, "500", q.Get("lllimit"))
		_, _ = w.Write([]byte(`{"query":{"pages":[{"title":"Albert Einstein","langlinks":[{"lang":"de","title":"Albert Einstein"},{"lang":"fr","title":"Albert Einstein"}]}]}}`))
	})

	variants, err := client.AvailableLanguages(context.Background(), "Albert Einstein", "en")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"de": "Albert Einstein",
		"fr": "Albert Einstein",
	}, variants)
}

func TestClientServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Search(context.Background(), "einstein", "en", 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClientBreakerOpensAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	var hits int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 10; i++ {
		_, err := client.Search(context.Background(), "einstein", "en", 1)
		require.ErrorIs(t, err, ErrUnavailable)
	}
	// Once the breaker trips the server stops seeing requests.
	assert.Less(t, hits, 10)
}
