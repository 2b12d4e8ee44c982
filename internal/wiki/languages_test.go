package wiki

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedLanguages(t *testing.T) {
	t.Parallel()

	langs := SupportedLanguages()
	require.NotEmpty(t, langs)

	sorted := sort.SliceIsSorted(langs, func(i, j int) bool {
		return langs[i].Name < langs[j].Name
	})
	assert.True(t, sorted, "catalog should be ordered by English name")

	codes := make(map[string]struct{}, len(langs))
	for _, l := range langs {
		assert.NotEmpty(t, l.Code)
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.NativeName)
		_, dup := codes[l.Code]
		assert.False(t, dup, "duplicate code %q", l.Code)
		codes[l.Code] = struct{}{}
	}

	for _, code := range []string{"en", "de", "fr", "ja", "simple"} {
		_, ok := codes[code]
		assert.True(t, ok, "catalog should include %q", code)
	}
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSupported("en"))
	assert.True(t, IsSupported("simple"))
	assert.False(t, IsSupported("xx"))
	assert.False(t, IsSupported(""))
}

func TestLanguageNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "German", LanguageName("de"))
	assert.Equal(t, "Deutsch", NativeLanguageName("de"))

	// Unknown codes fall back to the code itself.
	assert.Equal(t, "xx", LanguageName("xx"))
	assert.Equal(t, "xx", NativeLanguageName("xx"))
}
