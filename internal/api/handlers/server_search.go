package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "truepedia.io/truepedia/internal/pkg/errors"
	"truepedia.io/truepedia/internal/wiki"
)

const maxSearchLimit = 50

// GetSearch handles GET /api/v1/search.
func (s *Server) GetSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeMissingQuery, "query parameter q is required"))
		return
	}

	lang := c.DefaultQuery("lang", "en")
	if !wiki.IsSupported(lang) {
		_ = c.Error(apperrors.ErrUnsupportedLanguagef(lang))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSearchLimit {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "limit must be an integer between 1 and 50"))
			return
		}
		limit = parsed
	}

	titles, err := s.wiki.Search(c.Request.Context(), query, lang, limit)
	if err != nil {
		if errors.Is(err, wiki.ErrUnavailable) {
			_ = c.Error(apperrors.ErrWikiUnavailablef(lang))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"language": lang,
		"titles":   titles,
	})
}

// GetLanguages handles GET /api/v1/languages.
func (s *Server) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": wiki.SupportedLanguages(),
	})
}
