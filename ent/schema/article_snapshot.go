package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArticleSnapshot holds the schema definition for the ArticleSnapshot entity.
// Snapshots cache article content fetched from Wikipedia so repeated reads and
// background language prefetches do not hammer the external API. Articles are
// not owned by TruePedia; a snapshot is a transient copy with a fetch time.
type ArticleSnapshot struct {
	ent.Schema
}

// Mixin of the ArticleSnapshot.
func (ArticleSnapshot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ArticleSnapshot.
func (ArticleSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("article_key").
			NotEmpty().
			Unique().
			Comment("Normalized {title}_{language} article identifier"),
		field.String("title").
			NotEmpty(),
		field.String("language").
			NotEmpty().
			MaxLen(16),
		field.String("url").
			NotEmpty(),
		field.Text("summary"),
		field.Text("content"),
		field.Time("fetched_at").
			Comment("When the snapshot was fetched from the Wikipedia API"),
	}
}

// Indexes of the ArticleSnapshot.
func (ArticleSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("language"),
		index.Fields("fetched_at"), // retention cleanup
	}
}
