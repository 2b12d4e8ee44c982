// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"truepedia.io/truepedia/ent/articlesnapshot"
	"truepedia.io/truepedia/ent/highlight"
	"truepedia.io/truepedia/ent/schema"
	"truepedia.io/truepedia/ent/translationcache"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	articlesnapshotMixin := schema.ArticleSnapshot{}.Mixin()
	articlesnapshotMixinFields0 := articlesnapshotMixin[0].Fields()
	_ = articlesnapshotMixinFields0
	articlesnapshotFields := schema.ArticleSnapshot{}.Fields()
	_ = articlesnapshotFields
	// articlesnapshotDescCreatedAt is the schema descriptor for created_at field.
	articlesnapshotDescCreatedAt := articlesnapshotMixinFields0[0].Descriptor()
	// articlesnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	articlesnapshot.DefaultCreatedAt = articlesnapshotDescCreatedAt.Default.(func() time.Time)
	// articlesnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	articlesnapshotDescUpdatedAt := articlesnapshotMixinFields0[1].Descriptor()
	// articlesnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	articlesnapshot.DefaultUpdatedAt = articlesnapshotDescUpdatedAt.Default.(func() time.Time)
	// articlesnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	articlesnapshot.UpdateDefaultUpdatedAt = articlesnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// articlesnapshotDescArticleKey is the schema descriptor for article_key field.
	articlesnapshotDescArticleKey := articlesnapshotFields[1].Descriptor()
	// articlesnapshot.ArticleKeyValidator is a validator for the "article_key" field. It is called by the builders before save.
	articlesnapshot.ArticleKeyValidator = articlesnapshotDescArticleKey.Validators[0].(func(string) error)
	// articlesnapshotDescTitle is the schema descriptor for title field.
	articlesnapshotDescTitle := articlesnapshotFields[2].Descriptor()
	// articlesnapshot.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	articlesnapshot.TitleValidator = articlesnapshotDescTitle.Validators[0].(func(string) error)
	// articlesnapshotDescLanguage is the schema descriptor for language field.
	articlesnapshotDescLanguage := articlesnapshotFields[3].Descriptor()
	// articlesnapshot.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	articlesnapshot.LanguageValidator = func() func(string) error {
		validators := articlesnapshotDescLanguage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(language string) error {
			for _, fn := range fns {
				if err := fn(language); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// articlesnapshotDescURL is the schema descriptor for url field.
	articlesnapshotDescURL := articlesnapshotFields[4].Descriptor()
	// articlesnapshot.URLValidator is a validator for the "url" field. It is called by the builders before save.
	articlesnapshot.URLValidator = articlesnapshotDescURL.Validators[0].(func(string) error)
	highlightMixin := schema.Highlight{}.Mixin()
	highlightMixinFields0 := highlightMixin[0].Fields()
	_ = highlightMixinFields0
	highlightFields := schema.Highlight{}.Fields()
	_ = highlightFields
	// highlightDescCreatedAt is the schema descriptor for created_at field.
	highlightDescCreatedAt := highlightMixinFields0[0].Descriptor()
	// highlight.DefaultCreatedAt holds the default value on creation for the created_at field.
	highlight.DefaultCreatedAt = highlightDescCreatedAt.Default.(func() time.Time)
	// highlightDescArticleKey is the schema descriptor for article_key field.
	highlightDescArticleKey := highlightFields[1].Descriptor()
	// highlight.ArticleKeyValidator is a validator for the "article_key" field. It is called by the builders before save.
	highlight.ArticleKeyValidator = highlightDescArticleKey.Validators[0].(func(string) error)
	// highlightDescTitle is the schema descriptor for title field.
	highlightDescTitle := highlightFields[2].Descriptor()
	// highlight.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	highlight.TitleValidator = highlightDescTitle.Validators[0].(func(string) error)
	// highlightDescLanguage is the schema descriptor for language field.
	highlightDescLanguage := highlightFields[3].Descriptor()
	// highlight.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	highlight.LanguageValidator = func() func(string) error {
		validators := highlightDescLanguage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(language string) error {
			for _, fn := range fns {
				if err := fn(language); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// highlightDescFragment is the schema descriptor for fragment field.
	highlightDescFragment := highlightFields[4].Descriptor()
	// highlight.FragmentValidator is a validator for the "fragment" field. It is called by the builders before save.
	highlight.FragmentValidator = func() func(string) error {
		validators := highlightDescFragment.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fragment string) error {
			for _, fn := range fns {
				if err := fn(fragment); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	translationcacheMixin := schema.TranslationCache{}.Mixin()
	translationcacheMixinFields0 := translationcacheMixin[0].Fields()
	_ = translationcacheMixinFields0
	translationcacheFields := schema.TranslationCache{}.Fields()
	_ = translationcacheFields
	// translationcacheDescCreatedAt is the schema descriptor for created_at field.
	translationcacheDescCreatedAt := translationcacheMixinFields0[0].Descriptor()
	// translationcache.DefaultCreatedAt holds the default value on creation for the created_at field.
	translationcache.DefaultCreatedAt = translationcacheDescCreatedAt.Default.(func() time.Time)
	// translationcacheDescSourceLang is the schema descriptor for source_lang field.
	translationcacheDescSourceLang := translationcacheFields[1].Descriptor()
	// translationcache.SourceLangValidator is a validator for the "source_lang" field. It is called by the builders before save.
	translationcache.SourceLangValidator = func() func(string) error {
		validators := translationcacheDescSourceLang.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_lang string) error {
			for _, fn := range fns {
				if err := fn(source_lang); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// translationcacheDescTargetLang is the schema descriptor for target_lang field.
	translationcacheDescTargetLang := translationcacheFields[2].Descriptor()
	// translationcache.TargetLangValidator is a validator for the "target_lang" field. It is called by the builders before save.
	translationcache.TargetLangValidator = func() func(string) error {
		validators := translationcacheDescTargetLang.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(target_lang string) error {
			for _, fn := range fns {
				if err := fn(target_lang); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// translationcacheDescTextDigest is the schema descriptor for text_digest field.
	translationcacheDescTextDigest := translationcacheFields[3].Descriptor()
	// translationcache.TextDigestValidator is a validator for the "text_digest" field. It is called by the builders before save.
	translationcache.TextDigestValidator = func() func(string) error {
		validators := translationcacheDescTextDigest.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(text_digest string) error {
			for _, fn := range fns {
				if err := fn(text_digest); err != nil {
					return err
				}
			}
			return nil
		}
	}()
}
