package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"marhaba_app_echo/internal/jwtutil"
	"marhaba_app_echo/internal/logger"
	authMiddleware "marhaba_app_echo/internal/middleware"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/services"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	auth         *services.AuthService
	jwtUtil      *jwtutil.JWTUtil
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *services.AuthService, jwtUtil *jwtutil.JWTUtil, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, jwtUtil: jwtUtil, secureCookie: secureCookie}
}

// HandleLogin checks the credentials and issues a session token
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, ok := h.auth.Login(req.Email, req.Password)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalidCredentials")
	}

	return h.startSession(c, http.StatusOK, user)
}

// HandleRegister creates an account and logs it in
func (h *AuthHandler) HandleRegister(c echo.Context) error {
	var req services.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.auth.Register(req)
	if err != nil {
		return err
	}

	return h.startSession(c, http.StatusCreated, user)
}

// HandleLogout clears the session cookie
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	cookie := &http.Cookie{
		Name:     authMiddleware.SessionCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]string{
		"status": "logged out",
	})
}

// Me returns the current user
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, authMiddleware.CurrentUser(c))
}

func (h *AuthHandler) startSession(c echo.Context, status int, user models.User) error {
	token, err := h.jwtUtil.GenerateToken(user.ID, user.Email, string(user.Type))
	if err != nil {
		logger.FromEcho(c).Error("Failed to generate token", zap.Error(err))
		return err
	}
	expiresIn := h.jwtUtil.Expiry()

	cookie := &http.Cookie{
		Name:     authMiddleware.SessionCookie,
		Value:    token,
		MaxAge:   int(expiresIn.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)

	return c.JSON(status, AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(expiresIn),
		User:      user,
	})
}
