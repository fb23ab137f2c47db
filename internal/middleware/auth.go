package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"marhaba_app_echo/internal/jwtutil"
	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/models"
)

// SessionCookie is the cookie carrying the session token for browsers
const SessionCookie = "session"

const userKey = "user"

// UserLookup resolves the user a session token belongs to
type UserLookup interface {
	CurrentUser(id string) (models.User, bool)
}

// Authenticate identifies the user from a Bearer token or the session cookie.
// Requests without a valid token continue anonymously.
func Authenticate(jwtUtil *jwtutil.JWTUtil, users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := bearerToken(c)
			if tokenString == "" {
				return next(c)
			}

			log := logger.FromEcho(c)
			claims, err := jwtUtil.ValidateToken(tokenString)
			if err != nil {
				log.Debug("Invalid or expired token", zap.Error(err))
				return next(c)
			}

			user, ok := users.CurrentUser(claims.UserID)
			if !ok {
				log.Warn("Token for unknown user", zap.String("user_id", claims.UserID))
				return next(c)
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// RequireAuth rejects anonymous requests
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "loginRequired")
			}
			return next(c)
		}
	}
}

// RequireProvider rejects requests not made by a provider account
func RequireProvider() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "loginRequired")
			}
			if !user.IsProvider() {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user, or nil
func CurrentUser(c echo.Context) *models.User {
	if user, ok := c.Get(userKey).(models.User); ok {
		return &user
	}
	return nil
}
