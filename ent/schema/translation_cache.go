package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranslationCache holds the schema definition for the TranslationCache entity.
// The translation provider is rate-limited, so completed translations are
// cached by (source, target, digest-of-text) and served without a second
// provider round trip.
type TranslationCache struct {
	ent.Schema
}

// Mixin of the TranslationCache.
func (TranslationCache) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the TranslationCache.
func (TranslationCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("source_lang").
			NotEmpty().
			MaxLen(16).
			Immutable(),
		field.String("target_lang").
			NotEmpty().
			MaxLen(16).
			Immutable(),
		field.String("text_digest").
			NotEmpty().
			MaxLen(64).
			Immutable().
			Comment("sha256 hex digest of the source text"),
		field.Text("translated_text").
			Immutable(),
	}
}

// Indexes of the TranslationCache.
func (TranslationCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_lang", "target_lang", "text_digest").Unique(),
		index.Fields("created_at"), // retention cleanup
	}
}
