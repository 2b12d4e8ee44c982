package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestSnapshotCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (SnapshotCleanupArgs{}).Kind(); got != "snapshot_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "snapshot_cleanup")
	}
}

func TestSnapshotCleanupArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (SnapshotCleanupArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestNewSnapshotCleanupWorkerRetention(t *testing.T) {
	t.Parallel()

	t.Run("defaults when non-positive", func(t *testing.T) {
		w := NewSnapshotCleanupWorker(nil, 0, -time.Hour)
		if w.snapshotRetention != DefaultSnapshotRetention {
			t.Fatalf("snapshotRetention = %s, want %s", w.snapshotRetention, DefaultSnapshotRetention)
		}
		if w.translationRetention != DefaultTranslationRetention {
			t.Fatalf("translationRetention = %s, want %s", w.translationRetention, DefaultTranslationRetention)
		}
	})

	t.Run("uses explicit retentions when provided", func(t *testing.T) {
		w := NewSnapshotCleanupWorker(nil, 48*time.Hour, 72*time.Hour)
		if w.snapshotRetention != 48*time.Hour {
			t.Fatalf("snapshotRetention = %s, want %s", w.snapshotRetention, 48*time.Hour)
		}
		if w.translationRetention != 72*time.Hour {
			t.Fatalf("translationRetention = %s, want %s", w.translationRetention, 72*time.Hour)
		}
	})
}

func TestSnapshotCleanupWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	w := NewSnapshotCleanupWorker(nil, 0, 0)
	err := w.Work(context.Background(), &river.Job[SnapshotCleanupArgs]{})
	if err == nil {
		t.Fatal("Work() with nil ent client: want error, got nil")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("Work() error = %q, want mention of missing initialization", err)
	}
}

func TestLanguagePrefetchArgsKind(t *testing.T) {
	t.Parallel()

	if got := (LanguagePrefetchArgs{}).Kind(); got != "language_prefetch" {
		t.Fatalf("Kind() = %q, want %q", got, "language_prefetch")
	}
}

func TestLanguagePrefetchArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (LanguagePrefetchArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 2 {
		t.Fatalf("MaxAttempts = %d, want 2", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Hour)
	}
}

func TestLanguagePrefetchWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	w := &LanguagePrefetchWorker{}
	err := w.Work(context.Background(), &river.Job[LanguagePrefetchArgs]{})
	if err == nil {
		t.Fatal("Work() with nil article service: want error, got nil")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("Work() error = %q, want mention of missing initialization", err)
	}
}
