package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"truepedia.io/truepedia/ent"
	enttranslation "truepedia.io/truepedia/ent/translationcache"
	"truepedia.io/truepedia/internal/pkg/logger"
	"truepedia.io/truepedia/internal/pkg/metrics"
)

// Provider is the outbound translation dependency; satisfied by *Client and
// by test fakes.
type Provider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Service wraps the provider with the content-length cap and the PostgreSQL
// result cache.
type Service struct {
	provider Provider
	client   *ent.Client
	maxChars int
}

// NewService creates a translation service. maxChars caps how much text is
// sent to the provider per request; longer inputs are truncated.
func NewService(provider Provider, client *ent.Client, maxChars int) *Service {
	return &Service{
		provider: provider,
		client:   client,
		maxChars: maxChars,
	}
}

// Translate translates text from sourceLang to targetLang. Returns the
// translated text and whether the input was truncated to the content cap.
// Same-language requests are identities and never reach the provider.
func (s *Service) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, bool, error) {
	if sourceLang == targetLang {
		return text, false, nil
	}

	text, truncated := Truncate(text, s.maxChars)

	digest := textDigest(text)
	if cached, ok := s.cacheGet(ctx, sourceLang, targetLang, digest); ok {
		metrics.CacheEvents.WithLabelValues("translation", "hit").Inc()
		return cached, truncated, nil
	}
	metrics.CacheEvents.WithLabelValues("translation", "miss").Inc()

	translated, err := s.provider.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", false, err
	}

	s.cachePut(ctx, sourceLang, targetLang, digest, translated)
	return translated, truncated, nil
}

// Truncate caps text at maxChars runes, appending an ellipsis when cut.
// The cap counts runes, not bytes, so multi-byte scripts are not cut short.
func Truncate(text string, maxChars int) (string, bool) {
	if maxChars <= 0 {
		return text, false
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text, false
	}
	return string(runes[:maxChars]) + "...", true
}

func textDigest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (s *Service) cacheGet(ctx context.Context, sourceLang, targetLang, digest string) (string, bool) {
	if s.client == nil {
		return "", false
	}
	row, err := s.client.TranslationCache.Query().
		Where(
			enttranslation.SourceLangEQ(sourceLang),
			enttranslation.TargetLangEQ(targetLang),
			enttranslation.TextDigestEQ(digest),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			logger.Warn("translation cache lookup failed", zap.Error(err))
		}
		return "", false
	}
	return row.TranslatedText, true
}

// cachePut is best-effort: a failed cache write costs a future provider call,
// nothing else.
func (s *Service) cachePut(ctx context.Context, sourceLang, targetLang, digest, translated string) {
	if s.client == nil {
		return
	}
	id, err := uuid.NewV7()
	if err != nil {
		logger.Warn("generate translation cache id failed", zap.Error(err))
		return
	}
	if err := s.client.TranslationCache.Create().
		SetID(id.String()).
		SetSourceLang(sourceLang).
		SetTargetLang(targetLang).
		SetTextDigest(digest).
		SetTranslatedText(translated).
		Exec(ctx); err != nil {
		if !ent.IsConstraintError(err) {
			logger.Warn("translation cache write failed",
				zap.String("source", sourceLang),
				zap.String("target", targetLang),
				zap.Error(err),
			)
		}
	}
}
