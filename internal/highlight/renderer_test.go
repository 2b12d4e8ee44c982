package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		fragments []string
		want      string
	}{
		{
			name:      "no fragments returns text unchanged",
			text:      "The quick brown fox",
			fragments: nil,
			want:      "The quick brown fox",
		},
		{
			name:      "single fragment is wrapped",
			text:      "The quick brown fox",
			fragments: []string{"quick"},
			want:      "The <mark>quick</mark> brown fox",
		},
		{
			name:      "fragment absent from text is ignored",
			text:      "The quick brown fox",
			fragments: []string{"zebra"},
			want:      "The quick brown fox",
		},
		{
			name:      "multiple disjoint fragments",
			text:      "The quick brown fox jumps",
			fragments: []string{"quick", "jumps"},
			want:      "The <mark>quick</mark> brown fox <mark>jumps</mark>",
		},
		{
			name:      "longer fragment wins over contained shorter one",
			text:      "The quick brown fox",
			fragments: []string{"quick", "quick brown"},
			want:      "The <mark>quick brown</mark> fox",
		},
		{
			name:      "overlapping shorter fragment still marks later occurrence",
			text:      "brown fox, quick fox",
			fragments: []string{"brown fox", "fox"},
			want:      "<mark>brown fox</mark>, quick <mark>fox</mark>",
		},
		{
			name:      "every occurrence of a fragment is marked",
			text:      "fox and fox",
			fragments: []string{"fox"},
			want:      "<mark>fox</mark> and <mark>fox</mark>",
		},
		{
			name:      "rejected overlap does not hide a following occurrence",
			text:      "xbaaa",
			fragments: []string{"xba", "aa"},
			want:      "<mark>xba</mark><mark>aa</mark>",
		},
		{
			name:      "run of rejected overlaps keeps scanning forward",
			text:      "abcbcbc",
			fragments: []string{"abc", "bcb"},
			want:      "<mark>abc</mark><mark>bcb</mark>c",
		},
		{
			name:      "empty and duplicate fragments are dropped",
			text:      "The quick brown fox",
			fragments: []string{"", "quick", "quick", "  "},
			want:      "The <mark>quick</mark> brown fox",
		},
		{
			name:      "empty text",
			text:      "",
			fragments: []string{"quick"},
			want:      "",
		},
		{
			name:      "unicode fragment",
			text:      "Das schnelle braune Füchslein",
			fragments: []string{"Füchslein"},
			want:      "Das schnelle braune <mark>Füchslein</mark>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Apply(tt.text, tt.fragments))
		})
	}
}

func TestApplyDeterministicTieBreak(t *testing.T) {
	t.Parallel()

	// Equal-length candidates are applied in lexicographic order, so the
	// result is independent of input ordering.
	text := "aa bb"
	first := Apply(text, []string{"aa", "bb"})
	second := Apply(text, []string{"bb", "aa"})
	assert.Equal(t, first, second)
	assert.Equal(t, "<mark>aa</mark> <mark>bb</mark>", first)
}

func TestApplyNeverNestsMarks(t *testing.T) {
	t.Parallel()

	got := Apply("one two three four", []string{"two three", "three four", "two"})
	assert.NotContains(t, got, "<mark><mark>")
	assert.Equal(t, strings.Count(got, markOpen), strings.Count(got, markClose))
}
