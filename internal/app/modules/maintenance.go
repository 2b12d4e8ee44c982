package modules

import (
	"context"

	"github.com/riverqueue/river"

	"truepedia.io/truepedia/internal/api/handlers"
	"truepedia.io/truepedia/internal/jobs"
)

// MaintenanceModule owns the periodic cleanup of cached snapshots and
// translations.
type MaintenanceModule struct {
	infra *Infrastructure
}

func NewMaintenanceModule(infra *Infrastructure) *MaintenanceModule {
	return &MaintenanceModule{infra: infra}
}

func (m *MaintenanceModule) Name() string { return "maintenance" }

func (m *MaintenanceModule) ContributeServerDeps(_ *handlers.ServerDeps) {}

func (m *MaintenanceModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	cfg := m.infra.Config
	river.AddWorker(workers, jobs.NewSnapshotCleanupWorker(
		m.infra.EntClient,
		cfg.Snapshot.Retention,
		cfg.Translate.CacheRetention,
	))
}

func (m *MaintenanceModule) Shutdown(context.Context) error { return nil }
