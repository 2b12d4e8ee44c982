// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ArticleSnapshot is the predicate function for articlesnapshot builders.
type ArticleSnapshot func(*sql.Selector)

// Highlight is the predicate function for highlight builders.
type Highlight func(*sql.Selector)

// TranslationCache is the predicate function for translationcache builders.
type TranslationCache func(*sql.Selector)
