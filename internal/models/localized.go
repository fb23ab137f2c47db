package models

// Language identifies one of the two supported UI languages
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// ParseLanguage maps a free-form tag (e.g. "en-US") to a supported language
func ParseLanguage(tag string, fallback Language) Language {
	if len(tag) >= 2 {
		switch Language(tag[:2]) {
		case LanguageArabic:
			return LanguageArabic
		case LanguageEnglish:
			return LanguageEnglish
		}
	}
	return fallback
}

// LocalizedString holds the English and Arabic variants of a user-facing text
type LocalizedString struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Get returns the text for lang, falling back to the other language when empty
func (s LocalizedString) Get(lang Language) string {
	if lang == LanguageArabic {
		if s.Ar != "" {
			return s.Ar
		}
		return s.En
	}
	if s.En != "" {
		return s.En
	}
	return s.Ar
}

// Complete reports whether both languages are filled in
func (s LocalizedString) Complete() bool {
	return trimmed(s.En) != "" && trimmed(s.Ar) != ""
}
