// Code generated by ent, DO NOT EDIT.

package highlight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"truepedia.io/truepedia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldCreatedAt, v))
}

// ArticleKey applies equality check predicate on the "article_key" field. It's identical to ArticleKeyEQ.
func ArticleKey(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldArticleKey, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldTitle, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldLanguage, v))
}

// Fragment applies equality check predicate on the "fragment" field. It's identical to FragmentEQ.
func Fragment(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldFragment, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldSection, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Highlight {
	return predicate.Highlight(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Highlight {
	return predicate.Highlight(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Highlight {
	return predicate.Highlight(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Highlight {
	return predicate.Highlight(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Highlight {
	return predicate.Highlight(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Highlight {
	return predicate.Highlight(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Highlight {
	return predicate.Highlight(sql.FieldLTE(FieldCreatedAt, v))
}

// ArticleKeyEQ applies the EQ predicate on the "article_key" field.
func ArticleKeyEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldArticleKey, v))
}

// ArticleKeyNEQ applies the NEQ predicate on the "article_key" field.
func ArticleKeyNEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNEQ(FieldArticleKey, v))
}

// ArticleKeyIn applies the In predicate on the "article_key" field.
func ArticleKeyIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldIn(FieldArticleKey, vs...))
}

// ArticleKeyNotIn applies the NotIn predicate on the "article_key" field.
func ArticleKeyNotIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNotIn(FieldArticleKey, vs...))
}

// ArticleKeyGT applies the GT predicate on the "article_key" field.
func ArticleKeyGT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGT(FieldArticleKey, v))
}

// ArticleKeyGTE applies the GTE predicate on the "article_key" field.
func ArticleKeyGTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGTE(FieldArticleKey, v))
}

// ArticleKeyLT applies the LT predicate on the "article_key" field.
func ArticleKeyLT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLT(FieldArticleKey, v))
}

// ArticleKeyLTE applies the LTE predicate on the "article_key" field.
func ArticleKeyLTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLTE(FieldArticleKey, v))
}

// ArticleKeyContains applies the Contains predicate on the "article_key" field.
func ArticleKeyContains(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContains(FieldArticleKey, v))
}

// ArticleKeyHasPrefix applies the HasPrefix predicate on the "article_key" field.
func ArticleKeyHasPrefix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasPrefix(FieldArticleKey, v))
}

// ArticleKeyHasSuffix applies the HasSuffix predicate on the "article_key" field.
func ArticleKeyHasSuffix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasSuffix(FieldArticleKey, v))
}

// ArticleKeyEqualFold applies the EqualFold predicate on the "article_key" field.
func ArticleKeyEqualFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEqualFold(FieldArticleKey, v))
}

// ArticleKeyContainsFold applies the ContainsFold predicate on the "article_key" field.
func ArticleKeyContainsFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContainsFold(FieldArticleKey, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContainsFold(FieldTitle, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContainsFold(FieldLanguage, v))
}

// FragmentEQ applies the EQ predicate on the "fragment" field.
func FragmentEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldFragment, v))
}

// FragmentNEQ applies the NEQ predicate on the "fragment" field.
func FragmentNEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNEQ(FieldFragment, v))
}

// FragmentIn applies the In predicate on the "fragment" field.
func FragmentIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldIn(FieldFragment, vs...))
}

// FragmentNotIn applies the NotIn predicate on the "fragment" field.
func FragmentNotIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNotIn(FieldFragment, vs...))
}

// FragmentGT applies the GT predicate on the "fragment" field.
func FragmentGT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGT(FieldFragment, v))
}

// FragmentGTE applies the GTE predicate on the "fragment" field.
func FragmentGTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGTE(FieldFragment, v))
}

// FragmentLT applies the LT predicate on the "fragment" field.
func FragmentLT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLT(FieldFragment, v))
}

// FragmentLTE applies the LTE predicate on the "fragment" field.
func FragmentLTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLTE(FieldFragment, v))
}

// FragmentContains applies the Contains predicate on the "fragment" field.
func FragmentContains(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContains(FieldFragment, v))
}

// FragmentHasPrefix applies the HasPrefix predicate on the "fragment" field.
func FragmentHasPrefix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasPrefix(FieldFragment, v))
}

// FragmentHasSuffix applies the HasSuffix predicate on the "fragment" field.
func FragmentHasSuffix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasSuffix(FieldFragment, v))
}

// FragmentEqualFold applies the EqualFold predicate on the "fragment" field.
func FragmentEqualFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEqualFold(FieldFragment, v))
}

// FragmentContainsFold applies the ContainsFold predicate on the "fragment" field.
func FragmentContainsFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContainsFold(FieldFragment, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.Highlight {
	return predicate.Highlight(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldHasSuffix(FieldSection, v))
}

// SectionIsNil applies the IsNil predicate on the "section" field.
func SectionIsNil() predicate.Highlight {
	return predicate.Highlight(sql.FieldIsNull(FieldSection))
}

// SectionNotNil applies the NotNil predicate on the "section" field.
func SectionNotNil() predicate.Highlight {
	return predicate.Highlight(sql.FieldNotNull(FieldSection))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.Highlight {
	return predicate.Highlight(sql.FieldContainsFold(FieldSection, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Highlight) predicate.Highlight {
	return predicate.Highlight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Highlight) predicate.Highlight {
	return predicate.Highlight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Highlight) predicate.Highlight {
	return predicate.Highlight(sql.NotPredicates(p))
}
