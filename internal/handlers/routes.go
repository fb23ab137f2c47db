package handlers

import (
	"github.com/labstack/echo/v4"

	"marhaba_app_echo/internal/jwtutil"
	"marhaba_app_echo/internal/metrics"
	authMiddleware "marhaba_app_echo/internal/middleware"
)

// Handlers groups everything RegisterRoutes wires
type Handlers struct {
	Auth      *AuthHandler
	Offers    *OfferHandler
	Dashboard *DashboardHandler
	I18n      *I18nHandler
	JWT       *jwtutil.JWTUtil
	Users     authMiddleware.UserLookup
}

// RegisterRoutes mounts the API on e. Request id, logging and language
// middleware are expected to be installed by the caller.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.Use(authMiddleware.Authenticate(h.JWT, h.Users))
	requireAuth := authMiddleware.RequireAuth()

	e.GET("/health", Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/i18n/:lang", h.I18n.Translations)

	// Public routes
	e.POST("/auth/login", h.Auth.HandleLogin)
	e.POST("/auth/register", h.Auth.HandleRegister)
	e.POST("/auth/logout", h.Auth.HandleLogout)
	e.GET("/offers", h.Offers.ListOffers)
	e.GET("/offers/:id", h.Offers.GetOffer)
	e.POST("/offers/:id/quote", h.Offers.QuoteBooking)
	// anonymous bookings are rejected by the service with a login hint
	e.POST("/offers/:id/book", h.Offers.BookOffer)

	// Protected routes
	e.GET("/auth/me", h.Auth.Me, requireAuth)
	e.POST("/offers/:id/inquiries", h.Offers.CreateInquiry, requireAuth)
	e.GET("/bookings/:id/receipt", h.Offers.Receipt, requireAuth)
	e.GET("/dashboard", h.Dashboard.Dashboard, requireAuth)

	// Provider routes
	provider := e.Group("/dashboard", authMiddleware.RequireProvider())
	provider.POST("/offers", h.Dashboard.StoreOffer)
	provider.PUT("/offers/:id", h.Dashboard.UpdateOffer)
	provider.DELETE("/offers/:id", h.Dashboard.DeleteOffer)
	provider.POST("/bookings/:id/approve", h.Dashboard.ApproveBooking)
	provider.POST("/bookings/:id/reject", h.Dashboard.RejectBooking)
	provider.POST("/inquiries/:id/read", h.Dashboard.MarkInquiryRead)
	provider.POST("/inquiries/:id/reply", h.Dashboard.ReplyInquiry)
}
