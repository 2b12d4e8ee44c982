package modules

import (
	"context"

	"github.com/riverqueue/river"

	"truepedia.io/truepedia/internal/api/handlers"
	"truepedia.io/truepedia/internal/highlight"
)

// HighlightModule wires the shared highlight store.
type HighlightModule struct {
	highlights *highlight.Service
}

func NewHighlightModule(infra *Infrastructure) *HighlightModule {
	return &HighlightModule{highlights: highlight.NewService(infra.EntClient)}
}

func (m *HighlightModule) Name() string { return "highlight" }

func (m *HighlightModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Highlights = m.highlights
}

func (m *HighlightModule) RegisterWorkers(_ *river.Workers) {}

func (m *HighlightModule) Shutdown(context.Context) error { return nil }
