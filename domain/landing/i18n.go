package landing

import (
	"maps"
	"strings"

	"github.com/lixi-remit/lixi-landing/pkg/constants"
	"golang.org/x/text/language"
)

// SupportedLanguages is ordered by preference; the first entry is the default.
var SupportedLanguages = []string{constants.LanguageEnglish, constants.LanguageVietnamese}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Vietnamese})

// T looks key up in lang's table. Missing keys and unknown languages
// return the key itself.
func T(lang, key string) string {
	if value, ok := translations[lang][key]; ok {
		return value
	}
	return key
}

// Translations returns a copy of the table for lang.
func Translations(lang string) (map[string]string, bool) {
	table, ok := translations[normalizeLanguage(lang)]
	if !ok {
		return nil, false
	}
	return maps.Clone(table), true
}

func IsSupported(lang string) bool {
	_, ok := translations[normalizeLanguage(lang)]
	return ok
}

// ResolveLanguage picks the page language from an explicit query value, the
// persisted cookie, and finally the Accept-Language header.
func ResolveLanguage(query, cookie, acceptLanguage string) string {
	for _, candidate := range []string{query, cookie} {
		if lang := normalizeLanguage(candidate); IsSupported(lang) {
			return lang
		}
	}

	if strings.TrimSpace(acceptLanguage) == "" {
		return constants.LanguageEnglish
	}

	_, index := language.MatchStrings(matcher, acceptLanguage)
	return SupportedLanguages[index]
}

// OtherLanguage is the language the toggle switches to.
func OtherLanguage(lang string) string {
	if lang == constants.LanguageVietnamese {
		return constants.LanguageEnglish
	}
	return constants.LanguageVietnamese
}

func normalizeLanguage(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
