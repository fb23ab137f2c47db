package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marhaba_app_echo/internal/i18n"
	"marhaba_app_echo/internal/models"
)

// I18nHandler serves the string tables to clients
type I18nHandler struct {
	tr *i18n.Translator
}

func NewI18nHandler(tr *i18n.Translator) *I18nHandler {
	return &I18nHandler{tr: tr}
}

// Translations returns the table and text direction of a language
func (h *I18nHandler) Translations(c echo.Context) error {
	lang := models.Language(c.Param("lang"))
	if lang != models.LanguageArabic && lang != models.LanguageEnglish {
		return echo.NewHTTPError(http.StatusNotFound, "notFound")
	}

	return c.JSON(http.StatusOK, TranslationsResponse{
		Lang:     lang,
		Dir:      string(i18n.Dir(lang)),
		Messages: h.tr.Table(lang),
	})
}

// Health reports liveness
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
