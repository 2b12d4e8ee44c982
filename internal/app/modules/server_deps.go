package modules

import (
	"truepedia.io/truepedia/internal/api/handlers"
	"truepedia.io/truepedia/internal/api/middleware"
	"truepedia.io/truepedia/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute
// explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Auth.SigningSecret),
			Issuer:     "truepedia",
			ExpiresIn:  cfg.Auth.TokenTTL,
		},
		AuthCfg:     cfg.Auth,
		RiverClient: infra.RiverClient,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		contributor, ok := mod.(ServerDepsContributor)
		if !ok {
			continue
		}
		contributor.ContributeServerDeps(&deps)
	}
	return deps
}
