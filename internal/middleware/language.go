package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"marhaba_app_echo/internal/models"
)

const langKey = "lang"

// Language resolves the request language from the lang query parameter,
// then the Accept-Language header, then the default.
func Language(fallback models.Language) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := fallback
			if q := c.QueryParam("lang"); q != "" {
				lang = models.ParseLanguage(q, fallback)
			} else if header := c.Request().Header.Get("Accept-Language"); header != "" {
				first := strings.TrimSpace(strings.Split(header, ",")[0])
				lang = models.ParseLanguage(first, fallback)
			}
			c.Set(langKey, lang)
			c.Response().Header().Set("Content-Language", string(lang))
			return next(c)
		}
	}
}

// Lang returns the language resolved for the request
func Lang(c echo.Context) models.Language {
	if lang, ok := c.Get(langKey).(models.Language); ok {
		return lang
	}
	return models.LanguageArabic
}
