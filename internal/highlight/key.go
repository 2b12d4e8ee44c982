package highlight

import "strings"

// ArticleKey builds the normalized storage key for an article: the title with
// surrounding whitespace trimmed and internal whitespace runs collapsed to
// single spaces, joined to the language code with an underscore. The same
// article must always map to the same key regardless of how the title was
// spelled in the request.
func ArticleKey(title, lang string) string {
	return normalizeTitle(title) + "_" + strings.TrimSpace(lang)
}

func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}
