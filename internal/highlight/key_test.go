package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		lang  string
		want  string
	}{
		{"plain title", "Albert Einstein", "en", "Albert Einstein_en"},
		{"surrounding whitespace trimmed", "  Albert Einstein  ", " en ", "Albert Einstein_en"},
		{"inner whitespace collapsed", "Albert \t Einstein", "de", "Albert Einstein_de"},
		{"unicode title preserved", "Photosynthèse", "fr", "Photosynthèse_fr"},
		{"empty title", "", "en", "_en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ArticleKey(tt.title, tt.lang))
		})
	}
}

func TestArticleKeyStableAcrossFormatting(t *testing.T) {
	t.Parallel()

	// The same logical article must map to one key however the title was typed.
	assert.Equal(t,
		ArticleKey("Albert Einstein", "en"),
		ArticleKey("  Albert   Einstein ", "en"),
	)
}
