package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entsnapshot "truepedia.io/truepedia/ent/articlesnapshot"
	"truepedia.io/truepedia/internal/testutil"
	"truepedia.io/truepedia/internal/wiki"
)

type fakeGateway struct {
	calls    int
	article  *wiki.Article
	err      error
	variants map[string]string
}

func (f *fakeGateway) Article(_ context.Context, title, lang string) (*wiki.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	art := *f.article
	art.Title = title
	art.Language = lang
	return &art, nil
}

func (f *fakeGateway) AvailableLanguages(_ context.Context, _, _ string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.variants, nil
}

func testArticle() *wiki.Article {
	return &wiki.Article{
		Title:    "Albert Einstein",
		URL:      "https://en.wikipedia.org/wiki/Albert_Einstein",
		Summary:  "Physicist.",
		Content:  "Physicist.\n== Career ==\nPatent office.",
		Language: "en",
	}
}

func TestArticleServiceGetWithoutStorage(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{article: testArticle()}
	svc := NewArticleService(gw, nil, time.Hour)

	art, err := svc.Get(context.Background(), "Albert Einstein", "en")
	require.NoError(t, err)
	assert.Equal(t, "Albert Einstein", art.Title)
	assert.Equal(t, 1, gw.calls)

	// No storage, so every read goes to the gateway.
	_, err = svc.Get(context.Background(), "Albert Einstein", "en")
	require.NoError(t, err)
	assert.Equal(t, 2, gw.calls)
}

func TestArticleServiceGetPropagatesGatewayError(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{err: wiki.ErrArticleMissing}
	svc := NewArticleService(gw, nil, time.Hour)

	_, err := svc.Get(context.Background(), "Nope", "en")
	assert.ErrorIs(t, err, wiki.ErrArticleMissing)
}

func TestArticleServiceGetServesFreshSnapshot(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "article_snapshot_fresh")
	gw := &fakeGateway{article: testArticle()}
	svc := NewArticleService(gw, client, time.Hour)
	ctx := context.Background()

	first, err := svc.Get(ctx, "Albert Einstein", "en")
	require.NoError(t, err)
	require.Equal(t, 1, gw.calls)

	// Second read is served from the snapshot.
	second, err := svc.Get(ctx, "Albert Einstein", "en")
	require.NoError(t, err)
	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, "en", second.Language)
}

func TestArticleServiceGetRefetchesStaleSnapshot(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "article_snapshot_stale")
	gw := &fakeGateway{article: testArticle()}
	svc := NewArticleService(gw, client, time.Hour)
	ctx := context.Background()

	_, err := svc.Get(ctx, "Albert Einstein", "en")
	require.NoError(t, err)
	require.Equal(t, 1, gw.calls)

	// Age the snapshot past the TTL.
	stale := time.Now().UTC().Add(-2 * time.Hour)
	_, err = client.ArticleSnapshot.Update().
		Where(entsnapshot.ArticleKeyEQ("Albert Einstein_en")).
		SetFetchedAt(stale).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.Get(ctx, "Albert Einstein", "en")
	require.NoError(t, err)
	assert.Equal(t, 2, gw.calls)

	// The refetch rewrote the snapshot; only one row exists.
	count, err := client.ArticleSnapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestArticleServiceZeroTTLDisablesCachedReads(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "article_snapshot_nottl")
	gw := &fakeGateway{article: testArticle()}
	svc := NewArticleService(gw, client, 0)
	ctx := context.Background()

	_, err := svc.Get(ctx, "Albert Einstein", "en")
	require.NoError(t, err)
	_, err = svc.Get(ctx, "Albert Einstein", "en")
	require.NoError(t, err)
	assert.Equal(t, 2, gw.calls)

	// Snapshots are still written for the background jobs.
	count, err := client.ArticleSnapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
