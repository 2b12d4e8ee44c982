package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"truepedia.io/truepedia/ent"
	"truepedia.io/truepedia/ent/articlesnapshot"
	"truepedia.io/truepedia/ent/translationcache"
	"truepedia.io/truepedia/internal/pkg/logger"
)

const (
	// DefaultSnapshotRetention is the fallback retention window for article
	// snapshots when none is configured.
	DefaultSnapshotRetention = 7 * 24 * time.Hour

	// DefaultTranslationRetention is the fallback retention window for cached
	// translations.
	DefaultTranslationRetention = 30 * 24 * time.Hour
)

// SnapshotCleanupArgs is a periodic maintenance job that removes stale article
// snapshots and expired translation cache rows.
type SnapshotCleanupArgs struct{}

// Kind returns the job kind identifier for periodic snapshot cleanup.
func (SnapshotCleanupArgs) Kind() string { return "snapshot_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (SnapshotCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// SnapshotCleanupWorker deletes article snapshots and translation cache rows
// older than their configured retention durations.
type SnapshotCleanupWorker struct {
	river.WorkerDefaults[SnapshotCleanupArgs]
	entClient            *ent.Client
	snapshotRetention    time.Duration
	translationRetention time.Duration
}

// NewSnapshotCleanupWorker creates a cleanup worker. Non-positive retentions
// fall back to the defaults.
func NewSnapshotCleanupWorker(entClient *ent.Client, snapshotRetention, translationRetention time.Duration) *SnapshotCleanupWorker {
	if snapshotRetention <= 0 {
		snapshotRetention = DefaultSnapshotRetention
	}
	if translationRetention <= 0 {
		translationRetention = DefaultTranslationRetention
	}
	return &SnapshotCleanupWorker{
		entClient:            entClient,
		snapshotRetention:    snapshotRetention,
		translationRetention: translationRetention,
	}
}

// Work removes expired snapshot and translation rows.
func (w *SnapshotCleanupWorker) Work(ctx context.Context, _ *river.Job[SnapshotCleanupArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("snapshot cleanup worker is not initialized")
	}

	snapshotCutoff := time.Now().UTC().Add(-w.snapshotRetention)
	snapshots, err := w.entClient.ArticleSnapshot.Delete().
		Where(articlesnapshot.FetchedAtLT(snapshotCutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete stale snapshots before %s: %w", snapshotCutoff.Format(time.RFC3339), err)
	}

	translationCutoff := time.Now().UTC().Add(-w.translationRetention)
	translations, err := w.entClient.TranslationCache.Delete().
		Where(translationcache.CreatedAtLT(translationCutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete expired translations before %s: %w", translationCutoff.Format(time.RFC3339), err)
	}

	logger.Info("snapshot cleanup completed",
		zap.Int("deleted_snapshots", snapshots),
		zap.Int("deleted_translations", translations),
		zap.String("snapshot_cutoff", snapshotCutoff.Format(time.RFC3339)),
		zap.String("translation_cutoff", translationCutoff.Format(time.RFC3339)),
	)
	return nil
}
