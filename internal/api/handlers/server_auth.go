package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"truepedia.io/truepedia/internal/api/middleware"
	apperrors "truepedia.io/truepedia/internal/pkg/errors"
)

// PostLogin handles POST /api/v1/auth/login. Admin credentials come from
// configuration; an empty configured password hash disables login entirely.
func (s *Server) PostLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid request body"))
		return
	}

	if s.authCfg.AdminPasswordHash == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "admin login is disabled"))
		return
	}

	userMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.authCfg.AdminUser)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.authCfg.AdminPasswordHash), []byte(req.Password))
	if !userMatch || passErr != nil {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "invalid credentials"))
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, req.Username)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt,
	})
}
