package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"marhaba_app_echo/internal/i18n"
	authMiddleware "marhaba_app_echo/internal/middleware"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/services"
)

// OfferHandler serves the public offer pages and booking
type OfferHandler struct {
	offers    *services.OfferService
	bookings  *services.BookingService
	dashboard *services.DashboardService
	tr        *i18n.Translator
}

func NewOfferHandler(offers *services.OfferService, bookings *services.BookingService, dashboard *services.DashboardService, tr *i18n.Translator) *OfferHandler {
	return &OfferHandler{offers: offers, bookings: bookings, dashboard: dashboard, tr: tr}
}

// ListOffers searches offers by q, category and sort
func (h *OfferHandler) ListOffers(c echo.Context) error {
	category := models.OfferCategory(c.QueryParam("category"))
	if category != "" && !category.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "selectCategory")
	}

	offers, err := h.offers.Search(c.Request().Context(), services.OfferSearch{
		Query:    c.QueryParam("q"),
		Category: category,
		Sort:     c.QueryParam("sort"),
		Lang:     authMiddleware.Lang(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":  len(offers),
		"offers": offers,
	})
}

// GetOffer returns a single offer
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offer, err := h.offers.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offer)
}

// QuoteBooking validates and prices a booking form without booking
func (h *OfferHandler) QuoteBooking(c echo.Context) error {
	var req services.BookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	quote, err := h.bookings.Quote(c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

// BookOffer pays for and records a booking
func (h *OfferHandler) BookOffer(c echo.Context) error {
	var req BookRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	booking, err := h.bookings.Book(c.Request().Context(), authMiddleware.CurrentUser(c), c.Param("id"), req.BookingRequest, req.Card)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// CreateInquiry sends a question to the offer's provider
func (h *OfferHandler) CreateInquiry(c echo.Context) error {
	var req InquiryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	inquiry, err := h.dashboard.CreateInquiry(c.Request().Context(), authMiddleware.CurrentUser(c), c.Param("id"), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inquiry)
}

// Receipt returns the receipt of a booking
func (h *OfferHandler) Receipt(c echo.Context) error {
	receipt, err := h.bookings.Receipt(*authMiddleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}

	lang := authMiddleware.Lang(c)
	for i, line := range receipt.Lines {
		label := h.tr.T(lang, line.LabelKey, nil)
		if line.Name != nil {
			label = fmt.Sprintf("%s (%d %s)", line.Name.Get(lang), line.Quantity, label)
		}
		receipt.Lines[i].Label = label
	}
	return c.JSON(http.StatusOK, receipt)
}
