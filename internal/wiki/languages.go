package wiki

import "sort"

// Language is one entry of the supported language catalog.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// catalog maps language codes to English and native names. This is the set
// of Wikipedia editions the search UI offers; articles fetched via langlinks
// may reference editions outside of it, which is fine for display.
var catalog = map[string]Language{
	"ar":     {Code: "ar", Name: "Arabic", NativeName: "العربية"},
	"bn":     {Code: "bn", Name: "Bengali", NativeName: "বাংলা"},
	"cs":     {Code: "cs", Name: "Czech", NativeName: "Čeština"},
	"da":     {Code: "da", Name: "Danish", NativeName: "Dansk"},
	"de":     {Code: "de", Name: "German", NativeName: "Deutsch"},
	"el":     {Code: "el", Name: "Greek", NativeName: "Ελληνικά"},
	"en":     {Code: "en", Name: "English", NativeName: "English"},
	"es":     {Code: "es", Name: "Spanish", NativeName: "Español"},
	"fa":     {Code: "fa", Name: "Persian", NativeName: "فارسی"},
	"fi":     {Code: "fi", Name: "Finnish", NativeName: "Suomi"},
	"fr":     {Code: "fr", Name: "French", NativeName: "Français"},
	"he":     {Code: "he", Name: "Hebrew", NativeName: "עברית"},
	"hi":     {Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
	"hu":     {Code: "hu", Name: "Hungarian", NativeName: "Magyar"},
	"id":     {Code: "id", Name: "Indonesian", NativeName: "Bahasa Indonesia"},
	"it":     {Code: "it", Name: "Italian", NativeName: "Italiano"},
	"ja":     {Code: "ja", Name: "Japanese", NativeName: "日本語"},
	"ko":     {Code: "ko", Name: "Korean", NativeName: "한국어"},
	"nl":     {Code: "nl", Name: "Dutch", NativeName: "Nederlands"},
	"no":     {Code: "no", Name: "Norwegian", NativeName: "Norsk"},
	"pl":     {Code: "pl", Name: "Polish", NativeName: "Polski"},
	"pt":     {Code: "pt", Name: "Portuguese", NativeName: "Português"},
	"ro":     {Code: "ro", Name: "Romanian", NativeName: "Română"},
	"ru":     {Code: "ru", Name: "Russian", NativeName: "Русский"},
	"sv":     {Code: "sv", Name: "Swedish", NativeName: "Svenska"},
	"th":     {Code: "th", Name: "Thai", NativeName: "ไทย"},
	"tr":     {Code: "tr", Name: "Turkish", NativeName: "Türkçe"},
	"uk":     {Code: "uk", Name: "Ukrainian", NativeName: "Українська"},
	"vi":     {Code: "vi", Name: "Vietnamese", NativeName: "Tiếng Việt"},
	"zh":     {Code: "zh", Name: "Chinese", NativeName: "中文"},
	"simple": {Code: "simple", Name: "Simple English", NativeName: "Simple English"},
}

// SupportedLanguages returns the catalog sorted by English name.
func SupportedLanguages() []Language {
	langs := make([]Language, 0, len(catalog))
	for _, l := range catalog {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Name < langs[j].Name })
	return langs
}

// IsSupported reports whether code is in the search catalog.
func IsSupported(code string) bool {
	_, ok := catalog[code]
	return ok
}

// LanguageName returns the English name for a language code.
// Unknown codes fall back to the code itself.
func LanguageName(code string) string {
	if l, ok := catalog[code]; ok {
		return l.Name
	}
	return code
}

// NativeLanguageName returns the native name for a language code.
// Unknown codes fall back to the code itself.
func NativeLanguageName(code string) string {
	if l, ok := catalog[code]; ok {
		return l.NativeName
	}
	return code
}
