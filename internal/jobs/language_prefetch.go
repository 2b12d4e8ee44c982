// Package jobs defines River Queue job types for background processing:
// language variant prefetching and periodic cache cleanup.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"truepedia.io/truepedia/internal/pkg/logger"
	"truepedia.io/truepedia/internal/pkg/worker"
	"truepedia.io/truepedia/internal/service"
	"truepedia.io/truepedia/internal/wiki"
)

// MaxPrefetchVariants caps how many language variants a single prefetch job
// will snapshot. Popular articles exist in hundreds of editions; warming the
// supported catalog is enough.
const MaxPrefetchVariants = 10

// LanguagePrefetchArgs requests background snapshotting of an article's
// language variants so cross-language reads are served warm.
type LanguagePrefetchArgs struct {
	Title    string `json:"title"`
	Language string `json:"language"`
}

// Kind returns the job kind identifier for language prefetch.
func (LanguagePrefetchArgs) Kind() string { return "language_prefetch" }

// InsertOpts deduplicates prefetches for the same article within an hour.
func (LanguagePrefetchArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 2,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// LanguagePrefetchWorker resolves an article's langlinks and fetches each
// supported variant through the article service, which writes the snapshots.
// Variant fetches fan out on the outbound pool; individual failures are
// logged and skipped so one missing edition does not fail the job.
type LanguagePrefetchWorker struct {
	river.WorkerDefaults[LanguagePrefetchArgs]
	articles *service.ArticleService
	pools    *worker.Pools
}

// NewLanguagePrefetchWorker creates a prefetch worker.
func NewLanguagePrefetchWorker(articles *service.ArticleService, pools *worker.Pools) *LanguagePrefetchWorker {
	return &LanguagePrefetchWorker{articles: articles, pools: pools}
}

// Work snapshots the article's supported language variants.
func (w *LanguagePrefetchWorker) Work(ctx context.Context, job *river.Job[LanguagePrefetchArgs]) error {
	if w == nil || w.articles == nil {
		return fmt.Errorf("language prefetch worker is not initialized")
	}

	args := job.Args
	variants, err := w.articles.AvailableLanguages(ctx, args.Title, args.Language)
	if err != nil {
		return fmt.Errorf("resolve language variants for %q (%s): %w", args.Title, args.Language, err)
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		prefetched int
		scheduled  int
	)
	for lang, title := range variants {
		if !wiki.IsSupported(lang) || lang == args.Language {
			continue
		}
		if scheduled >= MaxPrefetchVariants {
			break
		}
		scheduled++

		wg.Add(1)
		task := func(taskCtx context.Context) {
			defer wg.Done()
			if _, err := w.articles.Get(taskCtx, title, lang); err != nil {
				logger.Warn("variant prefetch failed",
					zap.String("title", title),
					zap.String("language", lang),
					zap.Error(err),
				)
				return
			}
			mu.Lock()
			prefetched++
			mu.Unlock()
		}
		if w.pools != nil {
			if err := w.pools.Outbound.Submit(ctx, task); err != nil {
				wg.Done()
				logger.Warn("variant prefetch submit failed",
					zap.String("language", lang),
					zap.Error(err),
				)
			}
			continue
		}
		task(ctx)
	}
	wg.Wait()

	logger.Info("language prefetch completed",
		zap.String("title", args.Title),
		zap.String("language", args.Language),
		zap.Int("variants", len(variants)),
		zap.Int("scheduled", scheduled),
		zap.Int("prefetched", prefetched),
	)
	return nil
}
