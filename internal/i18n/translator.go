// Package i18n serves the Arabic and English string tables.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"marhaba_app_echo/internal/models"
)

//go:embed locales/*.json
var locales embed.FS

// Direction is the text direction of a language
type Direction string

const (
	DirectionRTL Direction = "rtl"
	DirectionLTR Direction = "ltr"
)

// Translator looks up user-facing strings by key
type Translator struct {
	tables   map[models.Language]map[string]string
	fallback models.Language
}

// New loads the embedded string tables
func New(fallback models.Language) (*Translator, error) {
	tr := &Translator{
		tables:   make(map[models.Language]map[string]string),
		fallback: fallback,
	}
	for _, lang := range []models.Language{models.LanguageArabic, models.LanguageEnglish} {
		data, err := locales.ReadFile("locales/" + string(lang) + ".json")
		if err != nil {
			return nil, fmt.Errorf("failed to read %s translations: %w", lang, err)
		}
		table := make(map[string]string)
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse %s translations: %w", lang, err)
		}
		tr.tables[lang] = table
	}
	return tr, nil
}

// Fallback returns the language used when a request does not pick one
func (t *Translator) Fallback() models.Language {
	return t.fallback
}

// Has reports whether key exists in the fallback table
func (t *Translator) Has(key string) bool {
	_, ok := t.tables[t.fallback][key]
	return ok
}

// T returns the translation of key in lang. Missing keys render as the key
// itself. {{name}} placeholders are replaced from replacements.
func (t *Translator) T(lang models.Language, key string, replacements map[string]interface{}) string {
	text, ok := t.tables[lang][key]
	if !ok || text == "" {
		text = key
	}
	for name, value := range replacements {
		text = strings.ReplaceAll(text, "{{"+name+"}}", fmt.Sprint(value))
	}
	return text
}

// Table returns a copy of the full string table for lang
func (t *Translator) Table(lang models.Language) map[string]string {
	out := make(map[string]string, len(t.tables[lang]))
	for k, v := range t.tables[lang] {
		out[k] = v
	}
	return out
}

// Dir returns the text direction for lang
func Dir(lang models.Language) Direction {
	if lang == models.LanguageArabic {
		return DirectionRTL
	}
	return DirectionLTR
}
