package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"truepedia.io/truepedia/internal/highlight"
	"truepedia.io/truepedia/internal/jobs"
	apperrors "truepedia.io/truepedia/internal/pkg/errors"
	"truepedia.io/truepedia/internal/pkg/logger"
	"truepedia.io/truepedia/internal/wiki"
)

// articleVariant is one language edition of an article, enriched with catalog
// names when the edition is in the supported set.
type articleVariant struct {
	Code       string `json:"code"`
	Name       string `json:"name,omitempty"`
	NativeName string `json:"native_name,omitempty"`
	Title      string `json:"title"`
	Supported  bool   `json:"supported"`
}

// GetArticle handles GET /api/v1/articles/:lang/:title.
func (s *Server) GetArticle(c *gin.Context) {
	lang := c.Param("lang")
	title := c.Param("title")
	if !wiki.IsSupported(lang) {
		_ = c.Error(apperrors.ErrUnsupportedLanguagef(lang))
		return
	}

	art, err := s.articles.Get(c.Request.Context(), title, lang)
	if err != nil {
		_ = c.Error(mapWikiError(err, title, lang))
		return
	}

	var fragments []string
	if s.highlights != nil {
		fragments, err = s.highlights.Fragments(c.Request.Context(), art.Title, lang)
		if err != nil {
			// Highlights are decoration; serve the article without them.
			logger.Warn("load highlight fragments failed",
				zap.String("title", art.Title),
				zap.String("language", lang),
				zap.Error(err),
			)
			fragments = nil
		}
	}

	s.enqueuePrefetch(c, art.Title, lang)

	c.JSON(http.StatusOK, gin.H{
		"title":               art.Title,
		"language":            art.Language,
		"url":                 art.URL,
		"summary":             art.Summary,
		"highlighted_summary": highlight.Apply(art.Summary, fragments),
		"content":             art.Content,
		"sections":            wiki.SplitSections(art.Content),
	})
}

// GetArticleLanguages handles GET /api/v1/articles/:lang/:title/languages.
func (s *Server) GetArticleLanguages(c *gin.Context) {
	lang := c.Param("lang")
	title := c.Param("title")
	if !wiki.IsSupported(lang) {
		_ = c.Error(apperrors.ErrUnsupportedLanguagef(lang))
		return
	}

	variants, err := s.articles.AvailableLanguages(c.Request.Context(), title, lang)
	if err != nil {
		_ = c.Error(mapWikiError(err, title, lang))
		return
	}

	out := make([]articleVariant, 0, len(variants))
	for code, variantTitle := range variants {
		v := articleVariant{
			Code:      code,
			Title:     variantTitle,
			Supported: wiki.IsSupported(code),
		}
		if v.Supported {
			v.Name = wiki.LanguageName(code)
			v.NativeName = wiki.NativeLanguageName(code)
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	c.JSON(http.StatusOK, gin.H{
		"title":    title,
		"language": lang,
		"variants": out,
	})
}

// enqueuePrefetch schedules background snapshotting of the article's language
// variants. Best-effort; a full queue or closed client never fails the read.
func (s *Server) enqueuePrefetch(c *gin.Context, title, lang string) {
	if !s.prefetch || s.riverClient == nil {
		return
	}
	if _, err := s.riverClient.Insert(c.Request.Context(), jobs.LanguagePrefetchArgs{
		Title:    title,
		Language: lang,
	}, nil); err != nil {
		logger.Warn("enqueue language prefetch failed",
			zap.String("title", title),
			zap.String("language", lang),
			zap.Error(err),
		)
	}
}

func mapWikiError(err error, title, lang string) error {
	switch {
	case errors.Is(err, wiki.ErrArticleMissing):
		return apperrors.ErrArticleNotFoundf(title, lang)
	case errors.Is(err, wiki.ErrUnavailable):
		return apperrors.ErrWikiUnavailablef(lang)
	default:
		return err
	}
}
