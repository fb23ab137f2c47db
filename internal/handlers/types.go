package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/services"
)

// LoginRequest is the login form
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      models.User `json:"user"`
}

// BookRequest is the booking form plus the payment form
type BookRequest struct {
	services.BookingRequest
	Card services.CardDetails `json:"card"`
}

// InquiryRequest is the inquiry modal form
type InquiryRequest struct {
	Message string `json:"message"`
}

// ReplyRequest is the provider's reply form
type ReplyRequest struct {
	Response string `json:"response"`
}

// TranslationsResponse is the string table of one language
type TranslationsResponse struct {
	Lang     models.Language   `json:"lang"`
	Dir      string            `json:"dir"`
	Messages map[string]string `json:"messages"`
}

func bind(c echo.Context, dest interface{}) error {
	if err := c.Bind(dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "badRequest")
	}
	return nil
}
