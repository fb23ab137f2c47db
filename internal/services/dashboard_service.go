package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/metrics"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/store"
)

// DashboardService holds the tourist and provider views and the booking and
// inquiry state changes a provider can make.
type DashboardService struct {
	store   *store.Store
	alerter Alerter
	now     func() time.Time
}

func NewDashboardService(s *store.Store, alerter Alerter) *DashboardService {
	if alerter == nil {
		alerter = logAlerter{}
	}
	return &DashboardService{store: s, alerter: alerter, now: time.Now}
}

// DashboardSummary is the role-specific dashboard projection
type DashboardSummary struct {
	Role            models.UserType  `json:"role"`
	Bookings        []models.Booking `json:"bookings"`
	Offers          []models.Offer   `json:"offers,omitempty"`
	Inquiries       []models.Inquiry `json:"inquiries,omitempty"`
	PendingBookings int              `json:"pendingBookings"`
	UnreadInquiries int              `json:"unreadInquiries"`
}

// TouristBookings returns the bookings made by the user
func (s *DashboardService) TouristBookings(userID string) []models.Booking {
	result := []models.Booking{}
	for _, b := range s.store.Bookings() {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result
}

// ProviderOffers returns the provider's current offers
func (s *DashboardService) ProviderOffers(providerID string) []models.Offer {
	result := []models.Offer{}
	for _, o := range s.store.Offers() {
		if o.Provider.ID == providerID {
			result = append(result, o)
		}
	}
	return result
}

// ProviderBookings returns bookings on the provider's current offers, pending
// ones first, otherwise in store order. Bookings of deleted offers drop out.
func (s *DashboardService) ProviderBookings(providerID string) []models.Booking {
	owned := make(map[string]bool)
	for _, o := range s.ProviderOffers(providerID) {
		owned[o.ID] = true
	}

	pending := []models.Booking{}
	rest := []models.Booking{}
	for _, b := range s.store.Bookings() {
		if !owned[b.Offer.ID] {
			continue
		}
		if b.Status == models.BookingStatusPending {
			pending = append(pending, b)
		} else {
			rest = append(rest, b)
		}
	}
	return append(pending, rest...)
}

// ProviderInquiries returns the inquiries addressed to the provider, newest first
func (s *DashboardService) ProviderInquiries(providerID string) []models.Inquiry {
	result := []models.Inquiry{}
	for _, inq := range s.store.Inquiries() {
		if inq.ProviderID == providerID {
			result = append(result, inq)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// Summary builds the dashboard for the user's role
func (s *DashboardService) Summary(user models.User) DashboardSummary {
	if !user.IsProvider() {
		return DashboardSummary{Role: user.Type, Bookings: s.TouristBookings(user.ID)}
	}

	summary := DashboardSummary{
		Role:      user.Type,
		Bookings:  s.ProviderBookings(user.ID),
		Offers:    s.ProviderOffers(user.ID),
		Inquiries: s.ProviderInquiries(user.ID),
	}
	for _, b := range summary.Bookings {
		if b.Status == models.BookingStatusPending {
			summary.PendingBookings++
		}
	}
	for _, inq := range summary.Inquiries {
		if !inq.IsReadByProvider {
			summary.UnreadInquiries++
		}
	}
	return summary
}

// ApproveBooking moves a pending booking to upcoming. Payment stays as is.
func (s *DashboardService) ApproveBooking(ctx context.Context, provider models.User, bookingID string) (models.Booking, error) {
	return s.transition(ctx, provider, bookingID, func(b *models.Booking) {
		b.Status = models.BookingStatusUpcoming
	})
}

// RejectBooking cancels a pending booking and refunds it
func (s *DashboardService) RejectBooking(ctx context.Context, provider models.User, bookingID string) (models.Booking, error) {
	return s.transition(ctx, provider, bookingID, func(b *models.Booking) {
		b.Status = models.BookingStatusCancelled
		b.PaymentStatus = models.PaymentStatusRefunded
	})
}

func (s *DashboardService) transition(ctx context.Context, provider models.User, bookingID string, apply func(*models.Booking)) (models.Booking, error) {
	if !provider.IsProvider() {
		return models.Booking{}, ErrForbidden
	}

	var from models.BookingStatus
	booking, err := s.store.UpdateBooking(bookingID, func(b *models.Booking) error {
		if b.Offer.Provider.ID != provider.ID {
			return ErrForbidden
		}
		if b.Status != models.BookingStatusPending {
			return ErrInvalidTransition
		}
		from = b.Status
		apply(b)
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}

	metrics.BookingTransitions.WithLabelValues(string(booking.Status)).Inc()
	logger.FromContext(ctx).Info("Booking status changed",
		zap.String("booking_id", booking.ID),
		zap.String("from", string(from)),
		zap.String("to", string(booking.Status)),
		zap.String("payment_status", string(booking.PaymentStatus)))
	return booking, nil
}

// CreateInquiry records a tourist's question about an offer and alerts its provider
func (s *DashboardService) CreateInquiry(ctx context.Context, user *models.User, offerID, message string) (models.Inquiry, error) {
	if user == nil {
		return models.Inquiry{}, ErrAuthRequired
	}
	offer, ok := s.store.FindOffer(offerID)
	if !ok {
		return models.Inquiry{}, ErrNotFound
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return models.Inquiry{}, newValidationError(FieldErrors{"message": "fieldCannotBeEmpty"})
	}

	inquiry := models.Inquiry{
		ID:         "inq-" + uuid.New().String(),
		OfferID:    offer.ID,
		OfferTitle: offer.Title,
		UserID:     user.ID,
		UserName:   user.Name,
		ProviderID: offer.Provider.ID,
		Message:    message,
		CreatedAt:  s.now(),
	}
	s.store.AddInquiry(inquiry)

	logger.FromContext(ctx).Info("Inquiry created",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("offer_id", offer.ID),
		zap.String("user_id", user.ID))

	s.alerter.Alert(ctx, Alert{
		ProviderID: offer.Provider.ID,
		Key:        "newInquiryAlert",
		Params: map[string]interface{}{
			"user":  user.Name,
			"offer": offer.Title,
		},
	})
	return inquiry, nil
}

// OpenReplyDraft marks the inquiry read, as opening the reply form does
func (s *DashboardService) OpenReplyDraft(provider models.User, inquiryID string) (models.Inquiry, error) {
	return s.store.UpdateInquiry(inquiryID, func(inq *models.Inquiry) error {
		if inq.ProviderID != provider.ID {
			return ErrForbidden
		}
		inq.IsReadByProvider = true
		return nil
	})
}

// Reply attaches the provider's single response to the inquiry
func (s *DashboardService) Reply(ctx context.Context, provider models.User, inquiryID, response string) (models.Inquiry, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return models.Inquiry{}, newValidationError(FieldErrors{"response": "fieldCannotBeEmpty"})
	}

	inquiry, err := s.store.UpdateInquiry(inquiryID, func(inq *models.Inquiry) error {
		if inq.ProviderID != provider.ID {
			return ErrForbidden
		}
		if inq.Answered() {
			return ErrAlreadyAnswered
		}
		inq.Response = &response
		inq.IsReadByProvider = true
		return nil
	})
	if err != nil {
		return models.Inquiry{}, err
	}

	logger.FromContext(ctx).Info("Inquiry answered", zap.String("inquiry_id", inquiry.ID))
	return inquiry, nil
}

// DigestEntry counts what is waiting on one provider
type DigestEntry struct {
	Provider        models.User
	UnreadInquiries int
	PendingBookings int
}

// Digest lists providers that have unread inquiries or pending bookings
func (s *DashboardService) Digest() []DigestEntry {
	var entries []DigestEntry
	for _, u := range s.store.Users() {
		if !u.IsProvider() {
			continue
		}
		summary := s.Summary(u)
		if summary.UnreadInquiries == 0 && summary.PendingBookings == 0 {
			continue
		}
		entries = append(entries, DigestEntry{
			Provider:        u,
			UnreadInquiries: summary.UnreadInquiries,
			PendingBookings: summary.PendingBookings,
		})
	}
	return entries
}
