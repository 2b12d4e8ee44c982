package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"truepedia.io/truepedia/internal/pkg/logger"
	"truepedia.io/truepedia/internal/pkg/worker"
	"truepedia.io/truepedia/internal/service"
	"truepedia.io/truepedia/internal/wiki"
)

func init() {
	_ = logger.Init("error", "json")
}

// blockingGateway signals when the first article fetch starts, then blocks
// until the context is cancelled.
type blockingGateway struct {
	started chan struct{}
}

func (g *blockingGateway) Article(ctx context.Context, _, _ string) (*wiki.Article, error) {
	select {
	case g.started <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func (g *blockingGateway) AvailableLanguages(context.Context, string, string) (map[string]string, error) {
	return map[string]string{
		"de": "Albert Einstein",
		"fr": "Albert Einstein",
		"ja": "アルベルト・アインシュタイン",
	}, nil
}

func TestLanguagePrefetchWorkerWork_CancelledMidFanout(t *testing.T) {
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:  1,
		OutboundPoolSize: 1,
	})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	gw := &blockingGateway{started: make(chan struct{}, 1)}
	w := NewLanguagePrefetchWorker(service.NewArticleService(gw, nil, 0), pools)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { //nolint:naked-goroutine // test helper
		done <- w.Work(ctx, &river.Job[LanguagePrefetchArgs]{
			Args: LanguagePrefetchArgs{Title: "Albert Einstein", Language: "en"},
		})
	}()

	// Wait until the first variant fetch is in flight; the remaining variants
	// are queued behind the single outbound worker at that point.
	select {
	case <-gw.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first variant fetch never started")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Work did not return after cancellation; fan-out join hung")
	}
}
