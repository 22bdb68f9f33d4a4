package enums

import "fmt"

// AppLanguage selects the localization table used for UI strings.
type AppLanguage string

const (
	AppLanguageEnglish    AppLanguage = "en"
	AppLanguageChinese    AppLanguage = "zh"
	AppLanguageJapanese   AppLanguage = "ja"
	AppLanguageKorean     AppLanguage = "ko"
	AppLanguageSpanish    AppLanguage = "es"
	AppLanguageFrench     AppLanguage = "fr"
	AppLanguageGerman     AppLanguage = "de"
	AppLanguageItalian    AppLanguage = "it"
	AppLanguagePortuguese AppLanguage = "pt"
)

var validAppLanguages = []AppLanguage{
	AppLanguageEnglish,
	AppLanguageChinese,
	AppLanguageJapanese,
	AppLanguageKorean,
	AppLanguageSpanish,
	AppLanguageFrench,
	AppLanguageGerman,
	AppLanguageItalian,
	AppLanguagePortuguese,
}

// IsValid checks whether the given language matches the canonical enum.
func (a AppLanguage) IsValid() bool {
	for _, candidate := range validAppLanguages {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAppLanguage converts raw strings into AppLanguage.
func ParseAppLanguage(value string) (AppLanguage, error) {
	for _, candidate := range validAppLanguages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid app language %q", value)
}
