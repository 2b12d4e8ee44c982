// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticleSnapshotsColumns holds the columns for the "article_snapshots" table.
	ArticleSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "article_key", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Size: 16},
		{Name: "url", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "fetched_at", Type: field.TypeTime},
	}
	// ArticleSnapshotsTable holds the schema information for the "article_snapshots" table.
	ArticleSnapshotsTable = &schema.Table{
		Name:       "article_snapshots",
		Columns:    ArticleSnapshotsColumns,
		PrimaryKey: []*schema.Column{ArticleSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "articlesnapshot_language",
				Unique:  false,
				Columns: []*schema.Column{ArticleSnapshotsColumns[5]},
			},
			{
				Name:    "articlesnapshot_fetched_at",
				Unique:  false,
				Columns: []*schema.Column{ArticleSnapshotsColumns[9]},
			},
		},
	}
	// HighlightsColumns holds the columns for the "highlights" table.
	HighlightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "article_key", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Size: 16},
		{Name: "fragment", Type: field.TypeString, Size: 2048},
		{Name: "section", Type: field.TypeString, Nullable: true},
	}
	// HighlightsTable holds the schema information for the "highlights" table.
	HighlightsTable = &schema.Table{
		Name:       "highlights",
		Columns:    HighlightsColumns,
		PrimaryKey: []*schema.Column{HighlightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "highlight_article_key_section_fragment",
				Unique:  true,
				Columns: []*schema.Column{HighlightsColumns[2], HighlightsColumns[6], HighlightsColumns[5]},
			},
			{
				Name:    "highlight_article_key_created_at",
				Unique:  false,
				Columns: []*schema.Column{HighlightsColumns[2], HighlightsColumns[1]},
			},
		},
	}
	// TranslationCachesColumns holds the columns for the "translation_caches" table.
	TranslationCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_lang", Type: field.TypeString, Size: 16},
		{Name: "target_lang", Type: field.TypeString, Size: 16},
		{Name: "text_digest", Type: field.TypeString, Size: 64},
		{Name: "translated_text", Type: field.TypeString, Size: 2147483647},
	}
	// TranslationCachesTable holds the schema information for the "translation_caches" table.
	TranslationCachesTable = &schema.Table{
		Name:       "translation_caches",
		Columns:    TranslationCachesColumns,
		PrimaryKey: []*schema.Column{TranslationCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "translationcache_source_lang_target_lang_text_digest",
				Unique:  true,
				Columns: []*schema.Column{TranslationCachesColumns[2], TranslationCachesColumns[3], TranslationCachesColumns[4]},
			},
			{
				Name:    "translationcache_created_at",
				Unique:  false,
				Columns: []*schema.Column{TranslationCachesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticleSnapshotsTable,
		HighlightsTable,
		TranslationCachesTable,
	}
)

func init() {
}
