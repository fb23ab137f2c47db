package i18n

import (
	"testing"

	"marhaba_app_echo/internal/models"
)

func TestTranslate(t *testing.T) {
	tr, err := New(models.LanguageArabic)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name         string
		lang         models.Language
		key          string
		replacements map[string]interface{}
		expected     string
	}{
		{
			name:     "english key",
			lang:     models.LanguageEnglish,
			key:      "selectRoomType",
			expected: "Please select a room type.",
		},
		{
			name:     "missing key renders raw key",
			lang:     models.LanguageEnglish,
			key:      "noSuchKey",
			expected: "noSuchKey",
		},
		{
			name:         "placeholder replacement",
			lang:         models.LanguageEnglish,
			key:          "totalNights",
			replacements: map[string]interface{}{"count": 3},
			expected:     "Total: 3 nights",
		},
		{
			name:         "arabic placeholder replacement",
			lang:         models.LanguageArabic,
			key:          "foundOffers",
			replacements: map[string]interface{}{"count": 4},
			expected:     "تم العثور على 4 عروض",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tr.T(tt.lang, tt.key, tt.replacements)
			if result != tt.expected {
				t.Errorf("T(%q, %q) = %q; want %q", tt.lang, tt.key, result, tt.expected)
			}
		})
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	tr, err := New(models.LanguageArabic)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ar := tr.Table(models.LanguageArabic)
	en := tr.Table(models.LanguageEnglish)
	for key := range en {
		if _, ok := ar[key]; !ok {
			t.Errorf("key %q missing from ar.json", key)
		}
	}
	for key := range ar {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q missing from en.json", key)
		}
	}
}

func TestDir(t *testing.T) {
	if Dir(models.LanguageArabic) != DirectionRTL {
		t.Error("arabic should be rtl")
	}
	if Dir(models.LanguageEnglish) != DirectionLTR {
		t.Error("english should be ltr")
	}
}
