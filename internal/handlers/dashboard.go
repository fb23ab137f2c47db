package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	authMiddleware "marhaba_app_echo/internal/middleware"
	"marhaba_app_echo/internal/services"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboard *services.DashboardService
	offers    *services.OfferService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard *services.DashboardService, offers *services.OfferService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, offers: offers}
}

// Dashboard returns the projection for the user's role
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	user := authMiddleware.CurrentUser(c)
	return c.JSON(http.StatusOK, h.dashboard.Summary(*user))
}

// StoreOffer publishes a new offer
func (h *DashboardHandler) StoreOffer(c echo.Context) error {
	var form services.OfferForm
	if err := bind(c, &form); err != nil {
		return err
	}

	offer, err := h.offers.Create(c.Request().Context(), *authMiddleware.CurrentUser(c), form)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, offer)
}

// UpdateOffer replaces an offer's content
func (h *DashboardHandler) UpdateOffer(c echo.Context) error {
	var form services.OfferForm
	if err := bind(c, &form); err != nil {
		return err
	}

	offer, err := h.offers.Update(c.Request().Context(), *authMiddleware.CurrentUser(c), c.Param("id"), form)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offer)
}

// DeleteOffer removes an offer once ?confirm=true is given
func (h *DashboardHandler) DeleteOffer(c echo.Context) error {
	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))

	if err := h.offers.Delete(c.Request().Context(), *authMiddleware.CurrentUser(c), c.Param("id"), confirmed); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ApproveBooking confirms a pending booking
func (h *DashboardHandler) ApproveBooking(c echo.Context) error {
	booking, err := h.dashboard.ApproveBooking(c.Request().Context(), *authMiddleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// RejectBooking cancels and refunds a pending booking
func (h *DashboardHandler) RejectBooking(c echo.Context) error {
	booking, err := h.dashboard.RejectBooking(c.Request().Context(), *authMiddleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// MarkInquiryRead opens the reply draft of an inquiry
func (h *DashboardHandler) MarkInquiryRead(c echo.Context) error {
	inquiry, err := h.dashboard.OpenReplyDraft(*authMiddleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiry)
}

// ReplyInquiry attaches the provider's response
func (h *DashboardHandler) ReplyInquiry(c echo.Context) error {
	var req ReplyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	inquiry, err := h.dashboard.Reply(c.Request().Context(), *authMiddleware.CurrentUser(c), c.Param("id"), req.Response)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiry)
}
