package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLiveness handles GET /api/v1/health/live.
func (s *Server) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadiness handles GET /api/v1/health/ready. Degrades to 503 when the
// database is unreachable.
func (s *Server) GetReadiness(c *gin.Context) {
	status := "ok"
	database := "ok"
	httpStatus := http.StatusOK

	if s.pool != nil {
		if err := s.pool.Ping(c.Request.Context()); err != nil {
			status = "degraded"
			database = "error"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	c.JSON(httpStatus, gin.H{
		"status":   status,
		"database": database,
	})
}
