// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"truepedia.io/truepedia/ent/translationcache"
)

// TranslationCache is the model entity for the TranslationCache schema.
type TranslationCache struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// SourceLang holds the value of the "source_lang" field.
	SourceLang string `json:"source_lang,omitempty"`
	// TargetLang holds the value of the "target_lang" field.
	TargetLang string `json:"target_lang,omitempty"`
	// sha256 hex digest of the source text
	TextDigest string `json:"text_digest,omitempty"`
	// TranslatedText holds the value of the "translated_text" field.
	TranslatedText string `json:"translated_text,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranslationCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case translationcache.FieldID, translationcache.FieldSourceLang, translationcache.FieldTargetLang, translationcache.FieldTextDigest, translationcache.FieldTranslatedText:
			values[i] = new(sql.NullString)
		case translationcache.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranslationCache fields.
func (_m *TranslationCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case translationcache.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case translationcache.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case translationcache.FieldSourceLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_lang", values[i])
			} else if value.Valid {
				_m.SourceLang = value.String
			}
		case translationcache.FieldTargetLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_lang", values[i])
			} else if value.Valid {
				_m.TargetLang = value.String
			}
		case translationcache.FieldTextDigest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_digest", values[i])
			} else if value.Valid {
				_m.TextDigest = value.String
			}
		case translationcache.FieldTranslatedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translated_text", values[i])
			} else if value.Valid {
				_m.TranslatedText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TranslationCache.
// This includes values selected through modifiers, order, etc.
func (_m *TranslationCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TranslationCache.
// Note that you need to call TranslationCache.Unwrap() before calling this method if this TranslationCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranslationCache) Update() *TranslationCacheUpdateOne {
	return NewTranslationCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranslationCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranslationCache) Unwrap() *TranslationCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranslationCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranslationCache) String() string {
	var builder strings.Builder
	builder.WriteString("TranslationCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_lang=")
	builder.WriteString(_m.SourceLang)
	builder.WriteString(", ")
	builder.WriteString("target_lang=")
	builder.WriteString(_m.TargetLang)
	builder.WriteString(", ")
	builder.WriteString("text_digest=")
	builder.WriteString(_m.TextDigest)
	builder.WriteString(", ")
	builder.WriteString("translated_text=")
	builder.WriteString(_m.TranslatedText)
	builder.WriteByte(')')
	return builder.String()
}

// TranslationCaches is a parsable slice of TranslationCache.
type TranslationCaches []*TranslationCache
