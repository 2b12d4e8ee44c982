// Code generated by ent, DO NOT EDIT.

package translationcache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"truepedia.io/truepedia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceLang applies equality check predicate on the "source_lang" field. It's identical to SourceLangEQ.
func SourceLang(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldSourceLang, v))
}

// TargetLang applies equality check predicate on the "target_lang" field. It's identical to TargetLangEQ.
func TargetLang(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldTargetLang, v))
}

// TextDigest applies equality check predicate on the "text_digest" field. It's identical to TextDigestEQ.
func TextDigest(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldTextDigest, v))
}

// TranslatedText applies equality check predicate on the "translated_text" field. It's identical to TranslatedTextEQ.
func TranslatedText(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldTranslatedText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLTE(FieldCreatedAt, v))
}

// SourceLangEQ applies the EQ predicate on the "source_lang" field.
func SourceLangEQ(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldSourceLang, v))
}

// SourceLangNEQ applies the NEQ predicate on the "source_lang" field.
func SourceLangNEQ(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNEQ(FieldSourceLang, v))
}

// SourceLangIn applies the In predicate on the "source_lang" field.
func SourceLangIn(vs ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldIn(FieldSourceLang, vs...))
}

// SourceLangNotIn applies the NotIn predicate on the "source_lang" field.
func SourceLangNotIn(vs ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNotIn(FieldSourceLang, vs...))
}

// SourceLangGT applies the GT predicate on the "source_lang" field.
func SourceLangGT(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGT(FieldSourceLang, v))
}

// SourceLangGTE applies the GTE predicate on the "source_lang" field.
func SourceLangGTE(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGTE(FieldSourceLang, v))
}

// SourceLangLT applies the LT predicate on the "source_lang" field.
func SourceLangLT(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLT(FieldSourceLang, v))
}

// SourceLangLTE applies the LTE predicate on the "source_lang" field.
func SourceLangLTE(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLTE(FieldSourceLang, v))
}

// SourceLangContains applies the Contains predicate on the "source_lang" field.
func SourceLangContains(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldContains(FieldSourceLang, v))
}

// SourceLangHasPrefix applies the HasPrefix predicate on the "source_lang" field.
func SourceLangHasPrefix(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldHasPrefix(FieldSourceLang, v))
}

// SourceLangHasSuffix applies the HasSuffix predicate on the "source_lang" field.
func SourceLangHasSuffix(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldHasSuffix(FieldSourceLang, v))
}

// SourceLangEqualFold applies the EqualFold predicate on the "source_lang" field.
func SourceLangEqualFold(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEqualFold(FieldSourceLang, v))
}

// SourceLangContainsFold applies the ContainsFold predicate on the "source_lang" field.
func SourceLangContainsFold(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldContainsFold(FieldSourceLang, v))
}

// TargetLangEQ applies the EQ predicate on the "target_lang" field.
func TargetLangEQ(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldTargetLang, v))
}

// TargetLangNEQ applies the NEQ predicate on the "target_lang" field.
func TargetLangNEQ(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNEQ(FieldTargetLang, v))
}

// TargetLangIn applies the In predicate on the "target_lang" field.
func TargetLangIn(vs ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldIn(FieldTargetLang, vs...))
}

// TargetLangNotIn applies the NotIn predicate on the "target_lang" field.
func TargetLangNotIn(vs ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNotIn(FieldTargetLang, vs...))
}

// TargetLangGT applies the GT predicate on the "target_lang" field.
func TargetLangGT(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGT(FieldTargetLang, v))
}

// TargetLangGTE applies the GTE predicate on the "target_lang" field.
func TargetLangGTE(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGTE(FieldTargetLang, v))
}

// TargetLangLT applies the LT predicate on the "target_lang" field.
func TargetLangLT(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLT(FieldTargetLang, v))
}

// TargetLangLTE applies the LTE predicate on the "target_lang" field.
func TargetLangLTE(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLTE(FieldTargetLang, v))
}

// TargetLangContains applies the Contains predicate on the "target_lang" field.
func TargetLangContains(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldContains(FieldTargetLang, v))
}

// TargetLangHasPrefix applies the HasPrefix predicate on the "target_lang" field.
func TargetLangHasPrefix(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldHasPrefix(FieldTargetLang, v))
}

// TargetLangHasSuffix applies the HasSuffix predicate on the "target_lang" field.
func TargetLangHasSuffix(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldHasSuffix(FieldTargetLang, v))
}

// TargetLangEqualFold applies the EqualFold predicate on the "target_lang" field.
func TargetLangEqualFold(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEqualFold(FieldTargetLang, v))
}

// TargetLangContainsFold applies the ContainsFold predicate on the "target_lang" field.
func TargetLangContainsFold(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldContainsFold(FieldTargetLang, v))
}

// TextDigestEQ applies the EQ predicate on the "text_digest" field.
func TextDigestEQ(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldTextDigest, v))
}

// TextDigestNEQ applies the NEQ predicate on the "text_digest" field.
func TextDigestNEQ(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNEQ(FieldTextDigest, v))
}

// TextDigestIn applies the In predicate on the "text_digest" field.
func TextDigestIn(vs ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldIn(FieldTextDigest, vs...))
}

// TextDigestNotIn applies the NotIn predicate on the "text_digest" field.
func TextDigestNotIn(vs ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNotIn(FieldTextDigest, vs...))
}

// TextDigestGT applies the GT predicate on the "text_digest" field.
func TextDigestGT(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGT(FieldTextDigest, v))
}

// TextDigestGTE applies the GTE predicate on the "text_digest" field.
func TextDigestGTE(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGTE(FieldTextDigest, v))
}

// TextDigestLT applies the LT predicate on the "text_digest" field.
func TextDigestLT(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLT(FieldTextDigest, v))
}

// TextDigestLTE applies the LTE predicate on the "text_digest" field.
func TextDigestLTE(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLTE(FieldTextDigest, v))
}

// TextDigestContains applies the Contains predicate on the "text_digest" field.
func TextDigestContains(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldContains(FieldTextDigest, v))
}

// TextDigestHasPrefix applies the HasPrefix predicate on the "text_digest" field.
func TextDigestHasPrefix(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldHasPrefix(FieldTextDigest, v))
}

// TextDigestHasSuffix applies the HasSuffix predicate on the "text_digest" field.
func TextDigestHasSuffix(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldHasSuffix(FieldTextDigest, v))
}

// TextDigestEqualFold applies the EqualFold predicate on the "text_digest" field.
func TextDigestEqualFold(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEqualFold(FieldTextDigest, v))
}

// TextDigestContainsFold applies the ContainsFold predicate on the "text_digest" field.
func TextDigestContainsFold(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldContainsFold(FieldTextDigest, v))
}

// TranslatedTextEQ applies the EQ predicate on the "translated_text" field.
func TranslatedTextEQ(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEQ(FieldTranslatedText, v))
}

// TranslatedTextNEQ applies the NEQ predicate on the "translated_text" field.
func TranslatedTextNEQ(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNEQ(FieldTranslatedText, v))
}

// TranslatedTextIn applies the In predicate on the "translated_text" field.
func TranslatedTextIn(vs ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldIn(FieldTranslatedText, vs...))
}

// TranslatedTextNotIn applies the NotIn predicate on the "translated_text" field.
func TranslatedTextNotIn(vs ...string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldNotIn(FieldTranslatedText, vs...))
}

// TranslatedTextGT applies the GT predicate on the "translated_text" field.
func TranslatedTextGT(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGT(FieldTranslatedText, v))
}

// TranslatedTextGTE applies the GTE predicate on the "translated_text" field.
func TranslatedTextGTE(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldGTE(FieldTranslatedText, v))
}

// TranslatedTextLT applies the LT predicate on the "translated_text" field.
func TranslatedTextLT(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLT(FieldTranslatedText, v))
}

// TranslatedTextLTE applies the LTE predicate on the "translated_text" field.
func TranslatedTextLTE(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldLTE(FieldTranslatedText, v))
}

// TranslatedTextContains applies the Contains predicate on the "translated_text" field.
func TranslatedTextContains(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldContains(FieldTranslatedText, v))
}

// TranslatedTextHasPrefix applies the HasPrefix predicate on the "translated_text" field.
func TranslatedTextHasPrefix(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldHasPrefix(FieldTranslatedText, v))
}

// TranslatedTextHasSuffix applies the HasSuffix predicate on the "translated_text" field.
func TranslatedTextHasSuffix(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldHasSuffix(FieldTranslatedText, v))
}

// TranslatedTextEqualFold applies the EqualFold predicate on the "translated_text" field.
func TranslatedTextEqualFold(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldEqualFold(FieldTranslatedText, v))
}

// TranslatedTextContainsFold applies the ContainsFold predicate on the "translated_text" field.
func TranslatedTextContainsFold(v string) predicate.TranslationCache {
	return predicate.TranslationCache(sql.FieldContainsFold(FieldTranslatedText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranslationCache) predicate.TranslationCache {
	return predicate.TranslationCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranslationCache) predicate.TranslationCache {
	return predicate.TranslationCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranslationCache) predicate.TranslationCache {
	return predicate.TranslationCache(sql.NotPredicates(p))
}
