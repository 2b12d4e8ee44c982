package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"truepedia.io/truepedia/ent"
	"truepedia.io/truepedia/internal/highlight"
	apperrors "truepedia.io/truepedia/internal/pkg/errors"
	"truepedia.io/truepedia/internal/wiki"
)

// highlightResponse is the JSON shape of one stored highlight.
type highlightResponse struct {
	ID         string    `json:"id"`
	ArticleKey string    `json:"article_key"`
	Title      string    `json:"title"`
	Language   string    `json:"language"`
	Fragment   string    `json:"fragment"`
	Section    string    `json:"section,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toHighlightResponse(h *ent.Highlight) highlightResponse {
	return highlightResponse{
		ID:         h.ID,
		ArticleKey: h.ArticleKey,
		Title:      h.Title,
		Language:   h.Language,
		Fragment:   h.Fragment,
		Section:    h.Section,
		CreatedAt:  h.CreatedAt,
	}
}

// canonicalTitle resolves the request title to the article's canonical title
// so highlights saved under a redirect or URL-style title land on the same
// key the article view renders from. Served from the snapshot cache when
// fresh.
func (s *Server) canonicalTitle(c *gin.Context, title, lang string) (string, error) {
	art, err := s.articles.Get(c.Request.Context(), title, lang)
	if err != nil {
		return "", mapWikiError(err, title, lang)
	}
	return art.Title, nil
}

// GetHighlights handles GET /api/v1/articles/:lang/:title/highlights.
func (s *Server) GetHighlights(c *gin.Context) {
	lang := c.Param("lang")
	title := c.Param("title")
	if !wiki.IsSupported(lang) {
		_ = c.Error(apperrors.ErrUnsupportedLanguagef(lang))
		return
	}

	title, err := s.canonicalTitle(c, title, lang)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rows, err := s.highlights.List(c.Request.Context(), title, lang)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]highlightResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, toHighlightResponse(h))
	}
	c.JSON(http.StatusOK, gin.H{
		"article_key": highlight.ArticleKey(title, lang),
		"highlights":  out,
	})
}

// PostHighlight handles POST /api/v1/articles/:lang/:title/highlights.
// Saving the same fragment twice is idempotent and returns the stored row.
func (s *Server) PostHighlight(c *gin.Context) {
	lang := c.Param("lang")
	title := c.Param("title")
	if !wiki.IsSupported(lang) {
		_ = c.Error(apperrors.ErrUnsupportedLanguagef(lang))
		return
	}

	title, err := s.canonicalTitle(c, title, lang)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req struct {
		Fragment string `json:"fragment"`
		Section  string `json:"section"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid request body"))
		return
	}

	h, created, err := s.highlights.Save(c.Request.Context(), title, lang, req.Fragment, req.Section)
	if err != nil {
		if errors.Is(err, highlight.ErrEmptyFragment) || errors.Is(err, highlight.ErrFragmentTooLong) {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidFragment, err.Error()))
			return
		}
		_ = c.Error(err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, toHighlightResponse(h))
}

// DeleteHighlight handles DELETE /api/v1/highlights/:id.
func (s *Server) DeleteHighlight(c *gin.Context) {
	id := c.Param("id")

	if err := s.highlights.Delete(c.Request.Context(), id); err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeHighlightNotFound, "highlight not found"))
			return
		}
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
