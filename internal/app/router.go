package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"truepedia.io/truepedia/internal/api/handlers"
	"truepedia.io/truepedia/internal/api/middleware"
	"truepedia.io/truepedia/internal/config"
	"truepedia.io/truepedia/internal/pkg/metrics"
)

func newRouter(cfg *config.Config, server *handlers.Server, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		newCORS(cfg.Server.AllowedOrigins),
		metrics.HTTPMiddleware(),
		middleware.ErrorHandler(),
		middleware.MustOpenAPIValidator(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health/live", server.GetLiveness)
		v1.GET("/health/ready", server.GetReadiness)
		v1.GET("/search", server.GetSearch)
		v1.GET("/languages", server.GetLanguages)
		v1.GET("/articles/:lang/:title", server.GetArticle)
		v1.GET("/articles/:lang/:title/languages", server.GetArticleLanguages)
		v1.GET("/articles/:lang/:title/highlights", server.GetHighlights)
		v1.POST("/articles/:lang/:title/highlights", server.PostHighlight)
		v1.DELETE("/highlights/:id", server.DeleteHighlight)
		v1.POST("/translate", server.PostTranslate)
		v1.POST("/auth/login", server.PostLogin)

		admin := v1.Group("/admin", middleware.JWTAuth(jwtCfg))
		{
			admin.DELETE("/snapshots", server.DeleteSnapshots)
			admin.PUT("/log-level", server.PutLogLevel)
		}
	}

	return router
}

func newCORS(allowedOrigins []string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	return cors.New(corsCfg)
}
