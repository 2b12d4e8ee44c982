package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Highlight holds the schema definition for the Highlight entity.
// A highlight associates an article (title + language) with a text fragment
// that readers want marked in the rendered article. Highlights are shared
// across all readers; ordering is storage order (created_at).
type Highlight struct {
	ent.Schema
}

// Mixin of the Highlight.
func (Highlight) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // create/read/delete only, never updated in place
	}
}

// Fields of the Highlight.
func (Highlight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("article_key").
			NotEmpty().
			Immutable().
			Comment("Normalized {title}_{language} article identifier"),
		field.String("title").
			NotEmpty().
			Immutable(),
		field.String("language").
			NotEmpty().
			Immutable().
			MaxLen(16),
		field.String("fragment").
			NotEmpty().
			MaxLen(2048).
			Immutable().
			Comment("The highlighted substring of the article text"),
		field.String("section").
			Optional().
			Immutable().
			Comment("Section identifier the fragment was selected in (e.g. summary, section_2)"),
	}
}

// Indexes of the Highlight.
func (Highlight) Indexes() []ent.Index {
	return []ent.Index{
		// One stored record per fragment per article section.
		index.Fields("article_key", "section", "fragment").Unique(),
		index.Fields("article_key", "created_at"), // storage-order listing
	}
}
