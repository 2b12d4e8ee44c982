// Code generated by ent, DO NOT EDIT.

package articlesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"truepedia.io/truepedia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// ArticleKey applies equality check predicate on the "article_key" field. It's identical to ArticleKeyEQ.
func ArticleKey(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldArticleKey, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldTitle, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldLanguage, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldURL, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldSummary, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldContent, v))
}

// FetchedAt applies equality check predicate on the "fetched_at" field. It's identical to FetchedAtEQ.
func FetchedAt(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldFetchedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldUpdatedAt, v))
}

// ArticleKeyEQ applies the EQ predicate on the "article_key" field.
func ArticleKeyEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldArticleKey, v))
}

// ArticleKeyNEQ applies the NEQ predicate on the "article_key" field.
func ArticleKeyNEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldArticleKey, v))
}

// ArticleKeyIn applies the In predicate on the "article_key" field.
func ArticleKeyIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldArticleKey, vs...))
}

// ArticleKeyNotIn applies the NotIn predicate on the "article_key" field.
func ArticleKeyNotIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldArticleKey, vs...))
}

// ArticleKeyGT applies the GT predicate on the "article_key" field.
func ArticleKeyGT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldArticleKey, v))
}

// ArticleKeyGTE applies the GTE predicate on the "article_key" field.
func ArticleKeyGTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldArticleKey, v))
}

// ArticleKeyLT applies the LT predicate on the "article_key" field.
func ArticleKeyLT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldArticleKey, v))
}

// ArticleKeyLTE applies the LTE predicate on the "article_key" field.
func ArticleKeyLTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldArticleKey, v))
}

// ArticleKeyContains applies the Contains predicate on the "article_key" field.
func ArticleKeyContains(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContains(FieldArticleKey, v))
}

// ArticleKeyHasPrefix applies the HasPrefix predicate on the "article_key" field.
func ArticleKeyHasPrefix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasPrefix(FieldArticleKey, v))
}

// ArticleKeyHasSuffix applies the HasSuffix predicate on the "article_key" field.
func ArticleKeyHasSuffix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasSuffix(FieldArticleKey, v))
}

// ArticleKeyEqualFold applies the EqualFold predicate on the "article_key" field.
func ArticleKeyEqualFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEqualFold(FieldArticleKey, v))
}

// ArticleKeyContainsFold applies the ContainsFold predicate on the "article_key" field.
func ArticleKeyContainsFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContainsFold(FieldArticleKey, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContainsFold(FieldTitle, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContainsFold(FieldLanguage, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContainsFold(FieldURL, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContainsFold(FieldSummary, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldContainsFold(FieldContent, v))
}

// FetchedAtEQ applies the EQ predicate on the "fetched_at" field.
func FetchedAtEQ(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldEQ(FieldFetchedAt, v))
}

// FetchedAtNEQ applies the NEQ predicate on the "fetched_at" field.
func FetchedAtNEQ(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNEQ(FieldFetchedAt, v))
}

// FetchedAtIn applies the In predicate on the "fetched_at" field.
func FetchedAtIn(vs ...time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldIn(FieldFetchedAt, vs...))
}

// FetchedAtNotIn applies the NotIn predicate on the "fetched_at" field.
func FetchedAtNotIn(vs ...time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldNotIn(FieldFetchedAt, vs...))
}

// FetchedAtGT applies the GT predicate on the "fetched_at" field.
func FetchedAtGT(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGT(FieldFetchedAt, v))
}

// FetchedAtGTE applies the GTE predicate on the "fetched_at" field.
func FetchedAtGTE(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldGTE(FieldFetchedAt, v))
}

// FetchedAtLT applies the LT predicate on the "fetched_at" field.
func FetchedAtLT(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLT(FieldFetchedAt, v))
}

// FetchedAtLTE applies the LTE predicate on the "fetched_at" field.
func FetchedAtLTE(v time.Time) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.FieldLTE(FieldFetchedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArticleSnapshot) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArticleSnapshot) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArticleSnapshot) predicate.ArticleSnapshot {
	return predicate.ArticleSnapshot(sql.NotPredicates(p))
}
