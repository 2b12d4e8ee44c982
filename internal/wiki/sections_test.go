package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections(t *testing.T) {
	t.Parallel()

	t.Run("no headings yields single introduction section", func(t *testing.T) {
		t.Parallel()
		sections := SplitSections("Einstein was a physicist.\nHe developed relativity.")
		require.Len(t, sections, 1)
		assert.Equal(t, IntroSectionTitle, sections[0].Title)
		assert.Equal(t, "Einstein was a physicist.\nHe developed relativity.", sections[0].Content)
	})

	t.Run("splits on level two headings", func(t *testing.T) {
		t.Parallel()
		content := "Intro text.\n== Early life ==\nBorn in Ulm.\n== Career ==\nPatent office."
		sections := SplitSections(content)
		require.Len(t, sections, 3)
		assert.Equal(t, IntroSectionTitle, sections[0].Title)
		assert.Equal(t, "Intro text.", sections[0].Content)
		assert.Equal(t, "Early life", sections[1].Title)
		assert.Equal(t, "Born in Ulm.", sections[1].Content)
		assert.Equal(t, "Career", sections[2].Title)
		assert.Equal(t, "Patent office.", sections[2].Content)
	})

	t.Run("deeper headings also split", func(t *testing.T) {
		t.Parallel()
		content := "Intro.\n=== Subtopic ===\nDetail."
		sections := SplitSections(content)
		require.Len(t, sections, 2)
		assert.Equal(t, "Subtopic", sections[1].Title)
	})

	t.Run("empty bodied sections are dropped", func(t *testing.T) {
		t.Parallel()
		content := "Intro.\n== References ==\n== External links ==\n== Legacy ==\nStill cited."
		sections := SplitSections(content)
		require.Len(t, sections, 2)
		assert.Equal(t, IntroSectionTitle, sections[0].Title)
		assert.Equal(t, "Legacy", sections[1].Title)
	})

	t.Run("heading with surrounding whitespace", func(t *testing.T) {
		t.Parallel()
		content := "Intro.\n  ==  Career  ==  \nPatent office."
		sections := SplitSections(content)
		require.Len(t, sections, 2)
		assert.Equal(t, "Career", sections[1].Title)
		assert.Equal(t, "Patent office.", sections[1].Content)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, SplitSections(""))
	})

	t.Run("single equals is not a heading", func(t *testing.T) {
		t.Parallel()
		sections := SplitSections("a = b\nrest")
		require.Len(t, sections, 1)
		assert.Equal(t, "a = b\nrest", sections[0].Content)
	})
}
