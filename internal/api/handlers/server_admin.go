package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"truepedia.io/truepedia/internal/api/middleware"
	apperrors "truepedia.io/truepedia/internal/pkg/errors"
	"truepedia.io/truepedia/internal/pkg/logger"
)

// DeleteSnapshots handles DELETE /api/v1/admin/snapshots. Removes the entire
// snapshot cache; subsequent article reads refetch from Wikipedia.
func (s *Server) DeleteSnapshots(c *gin.Context) {
	deleted, err := s.client.ArticleSnapshot.Delete().Exec(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	logger.Info("snapshot cache purged",
		zap.Int("deleted", deleted),
		zap.String("actor", middleware.GetUsername(c.Request.Context())),
	)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// PutLogLevel handles PUT /api/v1/admin/log-level. Changes the global log
// level at runtime without a restart.
func (s *Server) PutLogLevel(c *gin.Context) {
	var req struct {
		Level string `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid request body"))
		return
	}

	if err := logger.SetLevel(req.Level); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "unknown log level"))
		return
	}

	logger.Info("log level changed",
		zap.String("level", req.Level),
		zap.String("actor", middleware.GetUsername(c.Request.Context())),
	)
	c.JSON(http.StatusOK, gin.H{"level": logger.GetLevel().String()})
}
