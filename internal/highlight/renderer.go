// Package highlight implements the shared highlight store and the renderer
// that marks stored fragments back into article text.
package highlight

import (
	"sort"
	"strings"
)

// Markup inserted around matched fragments.
const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// Apply returns text with every occurrence of each fragment wrapped in
// <mark> tags. Matching is deterministic: fragments are matched longest
// first and matched ranges never overlap or nest, so a short fragment inside
// an already-marked longer one contributes nothing. Fragments absent from
// the text are ignored. The input text is never mutated beyond inserting
// markup; replacement is computed on the original text in a single pass so
// inserted tags are never re-matched.
func Apply(text string, fragments []string) string {
	if text == "" || len(fragments) == 0 {
		return text
	}

	ordered := dedupeLongestFirst(fragments)
	if len(ordered) == 0 {
		return text
	}

	type span struct{ start, end int }
	var spans []span

	overlaps := func(start, end int) bool {
		for _, s := range spans {
			if start < s.end && s.start < end {
				return true
			}
		}
		return false
	}

	for _, frag := range ordered {
		offset := 0
		for {
			i := strings.Index(text[offset:], frag)
			if i < 0 {
				break
			}
			start := offset + i
			end := start + len(frag)
			if overlaps(start, end) {
				// A rejected span can still contain the start of a later
				// valid occurrence, so only step past its first byte.
				offset = start + 1
				continue
			}
			spans = append(spans, span{start, end})
			offset = end
		}
	}

	if len(spans) == 0 {
		return text
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(markOpen)+len(markClose)))
	prev := 0
	for _, s := range spans {
		b.WriteString(text[prev:s.start])
		b.WriteString(markOpen)
		b.WriteString(text[s.start:s.end])
		b.WriteString(markClose)
		prev = s.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// dedupeLongestFirst drops empty/duplicate fragments and orders the rest
// longest first (ties broken lexicographically for determinism).
func dedupeLongestFirst(fragments []string) []string {
	seen := make(map[string]struct{}, len(fragments))
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
