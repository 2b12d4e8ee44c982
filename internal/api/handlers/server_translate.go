package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "truepedia.io/truepedia/internal/pkg/errors"
	"truepedia.io/truepedia/internal/translate"
	"truepedia.io/truepedia/internal/wiki"
)

// PostTranslate handles POST /api/v1/translate.
func (s *Server) PostTranslate(c *gin.Context) {
	var req struct {
		Text   string `json:"text"`
		Source string `json:"source_lang"`
		Target string `json:"target_lang"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "text is required"))
		return
	}
	if !wiki.IsSupported(req.Source) {
		_ = c.Error(apperrors.ErrUnsupportedLanguagef(req.Source))
		return
	}
	if !wiki.IsSupported(req.Target) {
		_ = c.Error(apperrors.ErrUnsupportedLanguagef(req.Target))
		return
	}

	translated, truncated, err := s.translator.Translate(c.Request.Context(), req.Text, req.Source, req.Target)
	if err != nil {
		if errors.Is(err, translate.ErrUnavailable) {
			_ = c.Error(apperrors.Unavailable(apperrors.CodeTranslateUnavailable, "translation provider unavailable"))
			return
		}
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeTranslateFailed, "translation failed", http.StatusBadGateway))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"translated_text": translated,
		"source_lang":     req.Source,
		"target_lang":     req.Target,
		"truncated":       truncated,
	})
}
