package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"marhaba_app_echo/internal/i18n"
	"marhaba_app_echo/internal/jwtutil"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/services"
)

type userMap map[string]models.User

func (m userMap) CurrentUser(id string) (models.User, bool) {
	u, ok := m[id]
	return u, ok
}

func newTestEcho(t *testing.T) (*echo.Echo, *jwtutil.JWTUtil) {
	t.Helper()
	tr, err := i18n.New(models.LanguageArabic)
	if err != nil {
		t.Fatal(err)
	}
	jwtUtil := jwtutil.New(jwtutil.Config{SigningKey: "test-key", ExpirationHours: 1})
	users := userMap{
		"u1": {ID: "u1", Name: "Ahmed", Type: models.UserTypeTourist},
		"p1": {ID: "p1", Name: "Sahara", Type: models.UserTypeProvider},
	}

	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(tr)
	e.Use(RequestID(), Language(models.LanguageArabic), Authenticate(jwtUtil, users))

	e.GET("/whoami", func(c echo.Context) error {
		if u := CurrentUser(c); u != nil {
			return c.String(http.StatusOK, u.ID)
		}
		return c.String(http.StatusOK, "anonymous")
	})
	e.GET("/private", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RequireAuth())
	e.GET("/provider", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RequireProvider())
	e.GET("/lang", func(c echo.Context) error { return c.String(http.StatusOK, string(Lang(c))) })
	e.GET("/fail/:kind", func(c echo.Context) error {
		switch c.Param("kind") {
		case "validation":
			return &services.ValidationError{Fields: services.FieldErrors{"dates": "checkOutAfterIn"}}
		case "auth":
			return services.ErrAuthRequired
		case "wrapped":
			return fmt.Errorf("lookup: %w", services.ErrNotFound)
		case "transition":
			return services.ErrInvalidTransition
		default:
			return fmt.Errorf("boom")
		}
	})
	return e, jwtUtil
}

func TestAuthenticate(t *testing.T) {
	e, jwtUtil := newTestEcho(t)
	token, _ := jwtUtil.GenerateToken("u1", "ahmed@test.com", "tourist")
	ghost, _ := jwtUtil.GenerateToken("u9", "ghost@test.com", "tourist")

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"bearer token", "Bearer " + token, "", "u1"},
		{"session cookie", "", token, "u1"},
		{"no token", "", "", "anonymous"},
		{"garbage token", "Bearer nope", "", "anonymous"},
		{"wrong scheme", "Basic " + token, "", "anonymous"},
		{"unknown user", "Bearer " + ghost, "", "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Body.String() != tt.want {
				t.Errorf("user = %q; want %q", rec.Body.String(), tt.want)
			}
			if rec.Header().Get(echo.HeaderXRequestID) == "" {
				t.Error("missing request id header")
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	e, jwtUtil := newTestEcho(t)
	tourist, _ := jwtUtil.GenerateToken("u1", "", "tourist")
	provider, _ := jwtUtil.GenerateToken("p1", "", "provider")

	tests := []struct {
		name  string
		path  string
		token string
		code  int
	}{
		{"private anonymous", "/private", "", http.StatusUnauthorized},
		{"private tourist", "/private", tourist, http.StatusNoContent},
		{"provider as tourist", "/provider", tourist, http.StatusForbidden},
		{"provider as provider", "/provider", provider, http.StatusNoContent},
		{"provider anonymous", "/provider", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tt.code {
				t.Errorf("code = %d; want %d", rec.Code, tt.code)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	e, _ := newTestEcho(t)

	tests := []struct {
		name   string
		query  string
		header string
		want   string
	}{
		{"default", "", "", "ar"},
		{"query", "?lang=en", "", "en"},
		{"header", "", "en-US,en;q=0.9", "en"},
		{"query wins", "?lang=ar", "en-US", "ar"},
		{"unsupported", "?lang=fr", "", "ar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/lang"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Body.String() != tt.want {
				t.Errorf("lang = %q; want %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	e, _ := newTestEcho(t)

	tests := []struct {
		name    string
		path    string
		code    int
		errKey  string
		message string
	}{
		{"auth required", "/fail/auth?lang=en", http.StatusUnauthorized, "loginToBook", "Login to book"},
		{"wrapped not found", "/fail/wrapped", http.StatusNotFound, "notFound", ""},
		{"invalid transition", "/fail/transition", http.StatusConflict, "invalidTransition", ""},
		{"unexpected", "/fail/other", http.StatusInternalServerError, "serverError", ""},
		{"unknown route", "/nope", http.StatusNotFound, "notFound", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.code {
				t.Fatalf("code = %d; want %d", rec.Code, tt.code)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Error != tt.errKey {
				t.Errorf("error = %q; want %q", resp.Error, tt.errKey)
			}
			if resp.Message == "" {
				t.Error("message not localized")
			}
			if tt.message != "" && resp.Message != tt.message {
				t.Errorf("message = %q; want %q", resp.Message, tt.message)
			}
		})
	}
}

func TestErrorHandlerValidation(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail/validation?lang=en", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code = %d; want 422", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Errors["dates"] == "" || resp.Errors["dates"] == "checkOutAfterIn" {
		t.Errorf("errors = %v; want localized dates message", resp.Errors)
	}
}
