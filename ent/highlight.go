// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"truepedia.io/truepedia/ent/highlight"
)

// Highlight is the model entity for the Highlight schema.
type Highlight struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Normalized {title}_{language} article identifier
	ArticleKey string `json:"article_key,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// The highlighted substring of the article text
	Fragment string `json:"fragment,omitempty"`
	// Section identifier the fragment was selected in (e.g. summary, section_2)
	Section      string `json:"section,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Highlight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case highlight.FieldID, highlight.FieldArticleKey, highlight.FieldTitle, highlight.FieldLanguage, highlight.FieldFragment, highlight.FieldSection:
			values[i] = new(sql.NullString)
		case highlight.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Highlight fields.
func (_m *Highlight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case highlight.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case highlight.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case highlight.FieldArticleKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_key", values[i])
			} else if value.Valid {
				_m.ArticleKey = value.String
			}
		case highlight.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case highlight.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case highlight.FieldFragment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fragment", values[i])
			} else if value.Valid {
				_m.Fragment = value.String
			}
		case highlight.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Highlight.
// This includes values selected through modifiers, order, etc.
func (_m *Highlight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Highlight.
// Note that you need to call Highlight.Unwrap() before calling this method if this Highlight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Highlight) Update() *HighlightUpdateOne {
	return NewHighlightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Highlight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Highlight) Unwrap() *Highlight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Highlight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Highlight) String() string {
	var builder strings.Builder
	builder.WriteString("Highlight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("article_key=")
	builder.WriteString(_m.ArticleKey)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("fragment=")
	builder.WriteString(_m.Fragment)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteByte(')')
	return builder.String()
}

// Highlights is a parsable slice of Highlight.
type Highlights []*Highlight
