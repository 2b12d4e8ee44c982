// Code generated by ent, DO NOT EDIT.

package translationcache

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the translationcache type in the database.
	Label = "translation_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSourceLang holds the string denoting the source_lang field in the database.
	FieldSourceLang = "source_lang"
	// FieldTargetLang holds the string denoting the target_lang field in the database.
	FieldTargetLang = "target_lang"
	// FieldTextDigest holds the string denoting the text_digest field in the database.
	FieldTextDigest = "text_digest"
	// FieldTranslatedText holds the string denoting the translated_text field in the database.
	FieldTranslatedText = "translated_text"
	// Table holds the table name of the translationcache in the database.
	Table = "translation_caches"
)

// Columns holds all SQL columns for translationcache fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSourceLang,
	FieldTargetLang,
	FieldTextDigest,
	FieldTranslatedText,
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
	// SourceLangValidator is a validator for the "source_lang" field. It is called by the builders before save.
	SourceLangValidator func(string) error
	// TargetLangValidator is a validator for the "target_lang" field. It is called by the builders before save.
	TargetLangValidator func(string) error
	// TextDigestValidator is a validator for the "text_digest" field. It is called by the builders before save.
	TextDigestValidator func(string) error
)

// OrderOption defines the ordering options for the TranslationCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySourceLang orders the results by the source_lang field.
func BySourceLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLang, opts...).ToFunc()
}

// ByTargetLang orders the results by the target_lang field.
func ByTargetLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLang, opts...).ToFunc()
}

// ByTextDigest orders the results by the text_digest field.
func ByTextDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextDigest, opts...).ToFunc()
}

// ByTranslatedText orders the results by the translated_text field.
func ByTranslatedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslatedText, opts...).ToFunc()
}
