// Package handlers implements the HTTP handlers of the TruePedia API.
//
// Handlers attach domain errors via c.Error(); the error handler middleware
// turns them into JSON responses. Route registration happens in the app
// router, not here.
package handlers

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"truepedia.io/truepedia/ent"
	"truepedia.io/truepedia/internal/api/middleware"
	"truepedia.io/truepedia/internal/config"
	"truepedia.io/truepedia/internal/highlight"
	"truepedia.io/truepedia/internal/service"
	"truepedia.io/truepedia/internal/translate"
	"truepedia.io/truepedia/internal/wiki"
)

// Server implements all API handlers.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	jwtCfg      middleware.JWTConfig
	authCfg     config.AuthConfig
	wiki        *wiki.Client
	articles    *service.ArticleService
	highlights  *highlight.Service
	translator  *translate.Service
	riverClient *river.Client[pgx.Tx]
	prefetch    bool
}

// ServerDeps holds all dependencies for creating a Server. Dependencies are
// wired manually in the app modules.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	JWTCfg      middleware.JWTConfig
	AuthCfg     config.AuthConfig
	Wiki        *wiki.Client
	Articles    *service.ArticleService
	Highlights  *highlight.Service
	Translator  *translate.Service
	RiverClient *river.Client[pgx.Tx]
	Prefetch    bool
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		pool:        deps.Pool,
		jwtCfg:      deps.JWTCfg,
		authCfg:     deps.AuthCfg,
		wiki:        deps.Wiki,
		articles:    deps.Articles,
		highlights:  deps.Highlights,
		translator:  deps.Translator,
		riverClient: deps.RiverClient,
		prefetch:    deps.Prefetch,
	}
}
