package translate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	calls  int
	result string
	err    error

	lastText   string
	lastSource string
	lastTarget string
}

func (f *fakeProvider) Translate(_ context.Context, text, sourceLang, targetLang string) (string, error) {
	f.calls++
	f.lastText = text
	f.lastSource = sourceLang
	f.lastTarget = targetLang
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func TestServiceTranslate(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{result: "Hallo Welt"}
	svc := NewService(provider, nil, 3000)

	got, truncated, err := svc.Translate(context.Background(), "Hello world", "en", "de")
	require.NoError(t, err)
	assert.Equal(t, "Hallo Welt", got)
	assert.False(t, truncated)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "Hello world", provider.lastText)
	assert.Equal(t, "en", provider.lastSource)
	assert.Equal(t, "de", provider.lastTarget)
}

func TestServiceTranslateSameLanguageIsIdentity(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{result: "should not be used"}
	svc := NewService(provider, nil, 3000)

	got, truncated, err := svc.Translate(context.Background(), "Hello world", "en", "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", got)
	assert.False(t, truncated)
	assert.Zero(t, provider.calls, "same-language requests must not reach the provider")
}

func TestServiceTranslateTruncatesLongInput(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{result: "kurz"}
	svc := NewService(provider, nil, 10)

	long := strings.Repeat("a", 25)
	got, truncated, err := svc.Translate(context.Background(), long, "en", "de")
	require.NoError(t, err)
	assert.Equal(t, "kurz", got)
	assert.True(t, truncated)
	assert.Equal(t, strings.Repeat("a", 10)+"...", provider.lastText)
}

func TestServiceTranslatePropagatesProviderError(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{err: ErrUnavailable}
	svc := NewService(provider, nil, 3000)

	_, _, err := svc.Translate(context.Background(), "Hello", "en", "de")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestServiceTranslatePropagatesUnknownError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	provider := &fakeProvider{err: boom}
	svc := NewService(provider, nil, 3000)

	_, _, err := svc.Translate(context.Background(), "Hello", "en", "de")
	assert.ErrorIs(t, err, boom)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		maxChars int
		want     string
		wantCut  bool
	}{
		{"under cap", "short", 10, "short", false},
		{"exactly at cap", "12345", 5, "12345", false},
		{"over cap", "123456", 5, "12345...", true},
		{"zero cap disables truncation", strings.Repeat("a", 100), 0, strings.Repeat("a", 100), false},
		{"multibyte runes counted as one", "日本語テキスト", 3, "日本語...", true},
		{"empty text", "", 5, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, cut := Truncate(tt.text, tt.maxChars)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCut, cut)
		})
	}
}
