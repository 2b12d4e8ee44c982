package modules

import (
	"context"

	"github.com/riverqueue/river"

	"truepedia.io/truepedia/internal/api/handlers"
	"truepedia.io/truepedia/internal/translate"
)

// TranslationModule wires the cached translation service on top of the shared
// rate-limited provider client.
type TranslationModule struct {
	translator *translate.Service
}

func NewTranslationModule(infra *Infrastructure) *TranslationModule {
	return &TranslationModule{
		translator: translate.NewService(infra.Translator, infra.EntClient, infra.Config.Translate.MaxChars),
	}
}

func (m *TranslationModule) Name() string { return "translation" }

func (m *TranslationModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Translator = m.translator
}

func (m *TranslationModule) RegisterWorkers(_ *river.Workers) {}

func (m *TranslationModule) Shutdown(context.Context) error { return nil }
