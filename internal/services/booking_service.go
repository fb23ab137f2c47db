package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/metrics"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/store"
)

// BookingService turns a validated booking form into a paid booking
type BookingService struct {
	store    *store.Store
	payments *PaymentService
	alerter  Alerter
	now      func() time.Time
}

func NewBookingService(s *store.Store, payments *PaymentService, alerter Alerter) *BookingService {
	if alerter == nil {
		alerter = logAlerter{}
	}
	return &BookingService{store: s, payments: payments, alerter: alerter, now: time.Now}
}

// Quote prices the booking form for the offer without side effects
func (s *BookingService) Quote(offerID string, req BookingRequest) (QuoteResult, error) {
	offer, ok := s.store.FindOffer(offerID)
	if !ok {
		return QuoteResult{}, ErrNotFound
	}
	return Quote(offer, req), nil
}

// Book validates the form, charges the card and records a pending booking.
// Nothing is stored when the user is anonymous, the form is invalid or the
// payment does not settle. Resubmitting creates another booking.
func (s *BookingService) Book(ctx context.Context, user *models.User, offerID string, req BookingRequest, card CardDetails) (models.Booking, error) {
	if user == nil {
		return models.Booking{}, ErrAuthRequired
	}
	offer, ok := s.store.FindOffer(offerID)
	if !ok {
		return models.Booking{}, ErrNotFound
	}

	quote := Quote(offer, req)
	if len(quote.Errors) > 0 {
		return models.Booking{}, newValidationError(quote.Errors)
	}
	if !quote.CanSubmit {
		return models.Booking{}, newValidationError(FieldErrors{"form": "badRequest"})
	}

	if _, err := s.payments.Pay(ctx, *user, offer, quote.Total, card); err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		ID:            "b-" + uuid.New().String(),
		Offer:         offer.Clone(),
		UserID:        user.ID,
		Date:          s.now().Format(models.DateLayout),
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPaid,
		Companions:    append([]models.Companion{}, req.Companions...),
		TotalPrice:    quote.Total,
		RoomType:      quote.Room,
	}
	if offer.Category != models.OfferCategoryOrganizedTrip {
		booking.CheckInDate = req.CheckIn
		booking.CheckOutDate = req.CheckOut
	}
	if quote.Nights > 0 {
		booking.Nights = quote.Nights
	}
	s.store.AddBooking(booking)

	metrics.BookingsCreated.WithLabelValues(string(offer.Category)).Inc()
	logger.FromContext(ctx).Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("offer_id", offer.ID),
		zap.String("user_id", user.ID),
		zap.Float64("total", booking.TotalPrice))

	s.alerter.Alert(ctx, Alert{
		ProviderID: offer.Provider.ID,
		Key:        "newBookingAlert",
		Params: map[string]interface{}{
			"bookingId": booking.ID,
			"offer":     offer.Title,
			"total":     booking.TotalPrice,
		},
	})

	return booking, nil
}

// ReceiptLine is one priced row of a receipt. LabelKey is an i18n key; Name
// is set for hotel rooms.
type ReceiptLine struct {
	LabelKey  string                  `json:"labelKey"`
	Label     string                  `json:"label,omitempty"`
	Name      *models.LocalizedString `json:"name,omitempty"`
	Quantity  int                     `json:"quantity"`
	UnitPrice float64                 `json:"unitPrice"`
	Amount    float64                 `json:"amount"`
}

// Receipt is the printable summary of a booking
type Receipt struct {
	Booking models.Booking `json:"booking"`
	Lines   []ReceiptLine  `json:"lines"`
	Total   float64        `json:"total"`
}

// Receipt builds the receipt of a booking for its tourist or the provider of
// its offer.
func (s *BookingService) Receipt(user models.User, bookingID string) (Receipt, error) {
	booking, ok := s.store.FindBooking(bookingID)
	if !ok {
		return Receipt{}, ErrNotFound
	}
	if booking.UserID != user.ID && booking.Offer.Provider.ID != user.ID {
		return Receipt{}, ErrForbidden
	}
	return Receipt{Booking: booking, Lines: receiptLines(booking), Total: booking.TotalPrice}, nil
}

func receiptLines(b models.Booking) []ReceiptLine {
	if b.Offer.Category == models.OfferCategoryHotel && b.RoomType != nil {
		name := b.RoomType.Name
		return []ReceiptLine{{
			LabelKey:  "nights",
			Name:      &name,
			Quantity:  b.Nights,
			UnitPrice: b.RoomType.PriceDZD,
			Amount:    b.RoomType.PriceDZD * float64(b.Nights),
		}}
	}

	perPerson := b.Offer.PriceDZD
	if b.Offer.Category == models.OfferCategoryGuesthouse && b.Nights > 0 {
		perPerson *= float64(b.Nights)
	}
	lines := []ReceiptLine{{
		LabelKey:  "mainTraveler",
		Quantity:  1,
		UnitPrice: perPerson,
		Amount:    perPerson,
	}}
	if n := len(b.Companions); n > 0 {
		lines = append(lines, ReceiptLine{
			LabelKey:  "additionalTravelers",
			Quantity:  n,
			UnitPrice: perPerson,
			Amount:    perPerson * float64(n),
		})
	}
	return lines
}
