package errors

import "net/http"

// Error code constants. Errors carry code + params; messages stay English,
// clients decide how to present them.

// Article error codes.
const (
	CodeArticleNotFound = "ARTICLE_NOT_FOUND"
	CodeWikiUnavailable = "WIKIPEDIA_UNAVAILABLE"
)

// Language error codes.
const (
	CodeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
)

// Translation error codes.
const (
	CodeTranslateFailed      = "TRANSLATION_FAILED"
	CodeTranslateUnavailable = "TRANSLATION_UNAVAILABLE"
)

// Highlight error codes.
const (
	CodeHighlightNotFound = "HIGHLIGHT_NOT_FOUND"
	CodeInvalidFragment   = "INVALID_FRAGMENT"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeMissingQuery     = "MISSING_QUERY"
	CodeValidationFailed = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrArticleNotFoundf creates an article not found error.
func ErrArticleNotFoundf(title, lang string) *AppError {
	return (&AppError{
		Code:       CodeArticleNotFound,
		Message:    "article not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"title": title, "language": lang})
}

// ErrWikiUnavailablef creates a Wikipedia upstream unavailable error.
func ErrWikiUnavailablef(lang string) *AppError {
	return (&AppError{
		Code:       CodeWikiUnavailable,
		Message:    "wikipedia api is unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
	}).WithParams(map[string]interface{}{"language": lang})
}

// ErrUnsupportedLanguagef creates an unsupported language error.
func ErrUnsupportedLanguagef(lang string) *AppError {
	return (&AppError{
		Code:       CodeUnsupportedLanguage,
		Message:    "language is not in the supported catalog",
		HTTPStatus: http.StatusBadRequest,
	}).WithParams(map[string]interface{}{"language": lang})
}
