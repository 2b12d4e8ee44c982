package wiki

import (
	"regexp"
	"strings"
)

// Section is a titled slice of an article's plain-text content.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// IntroSectionTitle is the title given to text before the first heading.
const IntroSectionTitle = "Introduction"

// headingRe matches MediaWiki plain-text extract headings: a line that is
// entirely "== Title ==" with two or more equals signs on each side.
var headingRe = regexp.MustCompile(`^(={2,})\s*(.*?)\s*={2,}$`)

// SplitSections splits a plain-text article extract into sections on
// "== Heading ==" lines. Text before the first heading becomes an
// "Introduction" section. Headings whose bodies are empty (common for
// "References", "External links" in extracts) are dropped.
func SplitSections(content string) []Section {
	lines := strings.Split(content, "\n")

	var sections []Section
	current := Section{Title: IntroSectionTitle}
	var body []string

	flush := func() {
		current.Content = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Content != "" {
			sections = append(sections, current)
		}
		body = body[:0]
	}

	for _, line := range lines {
		m := headingRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			body = append(body, line)
			continue
		}
		flush()
		title := m[2]
		if title == "" {
			title = IntroSectionTitle
		}
		current = Section{Title: title}
	}
	flush()

	return sections
}
