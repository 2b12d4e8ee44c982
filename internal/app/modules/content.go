package modules

import (
	"context"

	"github.com/riverqueue/river"

	"truepedia.io/truepedia/internal/api/handlers"
	"truepedia.io/truepedia/internal/jobs"
	"truepedia.io/truepedia/internal/service"
)

// ContentModule wires the Wikipedia gateway and the snapshot-backed article
// service, plus the background language prefetch worker.
type ContentModule struct {
	infra    *Infrastructure
	articles *service.ArticleService
}

// NewContentModule creates the content module with explicit constructor wiring.
func NewContentModule(infra *Infrastructure) *ContentModule {
	return &ContentModule{
		infra:    infra,
		articles: service.NewArticleService(infra.Wiki, infra.EntClient, infra.Config.Snapshot.TTL),
	}
}

func (m *ContentModule) Name() string { return "content" }

func (m *ContentModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Wiki = m.infra.Wiki
	deps.Articles = m.articles
	deps.Prefetch = m.infra.Config.Snapshot.PrefetchLanguages
}

func (m *ContentModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewLanguagePrefetchWorker(m.articles, m.infra.Pools))
}

func (m *ContentModule) Shutdown(context.Context) error { return nil }
