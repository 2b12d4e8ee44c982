// Package service contains domain services that sit between the HTTP
// handlers and the storage/gateway layers.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"truepedia.io/truepedia/ent"
	entsnapshot "truepedia.io/truepedia/ent/articlesnapshot"
	"truepedia.io/truepedia/internal/highlight"
	"truepedia.io/truepedia/internal/pkg/logger"
	"truepedia.io/truepedia/internal/pkg/metrics"
	"truepedia.io/truepedia/internal/wiki"
)

// ArticleGateway is the outbound Wikipedia dependency of the article service;
// satisfied by *wiki.Client and by test fakes.
type ArticleGateway interface {
	Article(ctx context.Context, title, lang string) (*wiki.Article, error)
	AvailableLanguages(ctx context.Context, title, lang string) (map[string]string, error)
}

// ArticleService serves article reads through the snapshot cache. Fresh
// snapshots short-circuit the Wikipedia API; stale or missing ones trigger a
// refetch that rewrites the snapshot.
type ArticleService struct {
	gateway ArticleGateway
	client  *ent.Client
	ttl     time.Duration
}

// NewArticleService creates an article service. ttl zero disables cached
// reads (every read refetches) while snapshots are still written.
func NewArticleService(gateway ArticleGateway, client *ent.Client, ttl time.Duration) *ArticleService {
	return &ArticleService{
		gateway: gateway,
		client:  client,
		ttl:     ttl,
	}
}

// Get returns the article for title in the given language edition, serving
// from the snapshot cache when the snapshot is fresh.
func (s *ArticleService) Get(ctx context.Context, title, lang string) (*wiki.Article, error) {
	key := highlight.ArticleKey(title, lang)

	if art, ok := s.cachedArticle(ctx, key); ok {
		metrics.CacheEvents.WithLabelValues("snapshot", "hit").Inc()
		return art, nil
	}
	metrics.CacheEvents.WithLabelValues("snapshot", "miss").Inc()

	art, err := s.gateway.Article(ctx, title, lang)
	if err != nil {
		return nil, err
	}

	s.storeSnapshot(ctx, art)
	return art, nil
}

// AvailableLanguages proxies the langlinks lookup; variants are not cached
// separately since the prefetch job snapshots the variant articles themselves.
func (s *ArticleService) AvailableLanguages(ctx context.Context, title, lang string) (map[string]string, error) {
	return s.gateway.AvailableLanguages(ctx, title, lang)
}

func (s *ArticleService) cachedArticle(ctx context.Context, key string) (*wiki.Article, bool) {
	if s.client == nil || s.ttl <= 0 {
		return nil, false
	}
	snap, err := s.client.ArticleSnapshot.Query().
		Where(entsnapshot.ArticleKeyEQ(key)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			logger.Warn("snapshot lookup failed", zap.String("article_key", key), zap.Error(err))
		}
		return nil, false
	}
	if time.Since(snap.FetchedAt) > s.ttl {
		return nil, false
	}
	return &wiki.Article{
		Title:    snap.Title,
		URL:      snap.URL,
		Summary:  snap.Summary,
		Content:  snap.Content,
		Language: snap.Language,
	}, true
}

// storeSnapshot is best-effort: losing a snapshot write costs one future API
// call, nothing else.
func (s *ArticleService) storeSnapshot(ctx context.Context, art *wiki.Article) {
	if s.client == nil {
		return
	}
	key := highlight.ArticleKey(art.Title, art.Language)
	now := time.Now().UTC()

	updated, err := s.client.ArticleSnapshot.Update().
		Where(entsnapshot.ArticleKeyEQ(key)).
		SetTitle(art.Title).
		SetURL(art.URL).
		SetSummary(art.Summary).
		SetContent(art.Content).
		SetFetchedAt(now).
		Save(ctx)
	if err != nil {
		logger.Warn("snapshot update failed", zap.String("article_key", key), zap.Error(err))
		return
	}
	if updated > 0 {
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		logger.Warn("generate snapshot id failed", zap.Error(err))
		return
	}
	if err := s.client.ArticleSnapshot.Create().
		SetID(id.String()).
		SetArticleKey(key).
		SetTitle(art.Title).
		SetLanguage(strings.TrimSpace(art.Language)).
		SetURL(art.URL).
		SetSummary(art.Summary).
		SetContent(art.Content).
		SetFetchedAt(now).
		Exec(ctx); err != nil {
		if !ent.IsConstraintError(err) {
			logger.Warn("snapshot write failed", zap.String("article_key", key), zap.Error(err))
		}
	}
}
