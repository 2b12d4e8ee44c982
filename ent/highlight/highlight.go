// Code generated by ent, DO NOT EDIT.

package highlight

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the highlight type in the database.
	Label = "highlight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldArticleKey holds the string denoting the article_key field in the database.
	FieldArticleKey = "article_key"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldFragment holds the string denoting the fragment field in the database.
	FieldFragment = "fragment"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// Table holds the table name of the highlight in the database.
	Table = "highlights"
)

// Columns holds all SQL columns for highlight fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldArticleKey,
	FieldTitle,
	FieldLanguage,
	FieldFragment,
	FieldSection,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// ArticleKeyValidator is a validator for the "article_key" field. It is called by the builders before save.
	ArticleKeyValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// FragmentValidator is a validator for the "fragment" field. It is called by the builders before save.
	FragmentValidator func(string) error
)

// OrderOption defines the ordering options for the Highlight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByArticleKey orders the results by the article_key field.
func ByArticleKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleKey, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByFragment orders the results by the fragment field.
func ByFragment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFragment, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}
