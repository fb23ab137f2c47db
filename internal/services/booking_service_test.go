package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/store"
)

type recordingAlerter struct {
	mu     sync.Mutex
	alerts []Alert
}

func (r *recordingAlerter) Alert(_ context.Context, alert Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
}

var validCard = CardDetails{Number: "4111111111111111", Expiry: "12/30", CVC: "123"}

func newBookingFixture(delay time.Duration) (*store.Store, *BookingService, *recordingAlerter) {
	s := store.NewSeeded()
	alerter := &recordingAlerter{}
	payments := NewPaymentService(s, NewSimulatedGateway(delay))
	return s, NewBookingService(s, payments, alerter), alerter
}

func TestBookRequiresUser(t *testing.T) {
	s, svc, _ := newBookingFixture(0)

	_, err := svc.Book(context.Background(), nil, "offer-1", BookingRequest{}, validCard)
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("Book() error = %v; want ErrAuthRequired", err)
	}
	if n := len(s.Bookings()); n != 2 {
		t.Errorf("bookings = %d; want 2", n)
	}
}

func TestBookHotel(t *testing.T) {
	s, svc, alerter := newBookingFixture(time.Millisecond)
	user, _ := s.FindUserByID("u1")

	req := BookingRequest{CheckIn: "2024-08-01", CheckOut: "2024-08-03", RoomTypeID: "room-1"}
	b, err := svc.Book(context.Background(), &user, "offer-2", req, validCard)
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	if !strings.HasPrefix(b.ID, "b-") {
		t.Errorf("ID = %q; want b- prefix", b.ID)
	}
	if b.TotalPrice != 44000 || b.Nights != 2 {
		t.Errorf("total/nights = %v/%d; want 44000/2", b.TotalPrice, b.Nights)
	}
	if b.Status != models.BookingStatusPending || b.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("status = %s/%s; want pending/paid", b.Status, b.PaymentStatus)
	}
	if b.RoomType == nil || b.RoomType.ID != "room-1" {
		t.Errorf("RoomType = %+v; want room-1", b.RoomType)
	}
	if b.Date != time.Now().Format(models.DateLayout) {
		t.Errorf("Date = %q; want today", b.Date)
	}

	all := s.Bookings()
	if len(all) != 3 || all[0].ID != b.ID {
		t.Errorf("new booking not prepended: %d bookings, first %q", len(all), all[0].ID)
	}

	if len(alerter.alerts) != 1 || alerter.alerts[0].ProviderID != "p2" {
		t.Errorf("alerts = %+v; want one for p2", alerter.alerts)
	}
}

func TestBookTripHasNoNights(t *testing.T) {
	s, svc, _ := newBookingFixture(0)
	user, _ := s.FindUserByID("u2")

	b, err := svc.Book(context.Background(), &user, "offer-1", BookingRequest{Companions: []models.Companion{{Name: "Aisha"}}}, validCard)
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if b.Nights != 0 || b.TotalPrice != 170000 || b.RoomType != nil {
		t.Errorf("booking = %+v; want 170000, no nights, no room", b)
	}
}

func TestTripReceiptIgnoresStayDates(t *testing.T) {
	s, svc, _ := newBookingFixture(0)
	user, _ := s.FindUserByID("u2")

	req := BookingRequest{CheckIn: "2024-08-01", CheckOut: "2024-08-04"}
	b, err := svc.Book(context.Background(), &user, "offer-1", req, validCard)
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if b.Nights != 0 || b.CheckInDate != "" || b.CheckOutDate != "" {
		t.Errorf("booking dates = %q..%q (%d nights); want none", b.CheckInDate, b.CheckOutDate, b.Nights)
	}

	r, err := svc.Receipt(user, b.ID)
	if err != nil {
		t.Fatalf("Receipt() error = %v", err)
	}
	sum := 0.0
	for _, line := range r.Lines {
		sum += line.Amount
	}
	if sum != r.Total || r.Total != 85000 {
		t.Errorf("lines sum to %v, total %v; want both 85000", sum, r.Total)
	}
}

func TestBookValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   BookingRequest
		card  CardDetails
		field string
	}{
		{"bad dates", BookingRequest{CheckIn: "2024-08-03", CheckOut: "2024-08-01"}, validCard, "dates"},
		{"missing card", BookingRequest{CheckIn: "2024-08-01", CheckOut: "2024-08-02"}, CardDetails{Number: "4111"}, "payment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, svc, _ := newBookingFixture(0)
			user, _ := s.FindUserByID("u1")

			_, err := svc.Book(context.Background(), &user, "offer-3", tt.req, tt.card)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Book() error = %v; want ValidationError", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("Fields = %v; want %q", verr.Fields, tt.field)
			}
			if n := len(s.Bookings()); n != 2 {
				t.Errorf("bookings = %d; want 2", n)
			}
		})
	}
}

func TestBookCancelledPayment(t *testing.T) {
	s, svc, alerter := newBookingFixture(time.Hour)
	user, _ := s.FindUserByID("u1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Book(ctx, &user, "offer-1", BookingRequest{}, validCard)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Book() error = %v; want context.Canceled", err)
	}
	if n := len(s.Bookings()); n != 2 {
		t.Errorf("bookings = %d; want 2", n)
	}
	if len(alerter.alerts) != 0 {
		t.Errorf("alerts = %d; want 0", len(alerter.alerts))
	}
}

func TestBookUnknownOffer(t *testing.T) {
	s, svc, _ := newBookingFixture(0)
	user, _ := s.FindUserByID("u1")

	if _, err := svc.Book(context.Background(), &user, "offer-x", BookingRequest{}, validCard); !errors.Is(err, ErrNotFound) {
		t.Errorf("Book() error = %v; want ErrNotFound", err)
	}
}

func TestReceipt(t *testing.T) {
	s, svc, _ := newBookingFixture(0)
	tourist, _ := s.FindUserByID("u1")
	provider, _ := s.FindUserByID("p1")
	stranger, _ := s.FindUserByID("u2")

	r, err := svc.Receipt(tourist, "b1")
	if err != nil {
		t.Fatalf("Receipt() error = %v", err)
	}
	if len(r.Lines) != 2 || r.Lines[0].LabelKey != "mainTraveler" || r.Lines[1].Amount != 85000 {
		t.Errorf("Lines = %+v; want main traveler + one companion", r.Lines)
	}
	if r.Total != 170000 {
		t.Errorf("Total = %v; want 170000", r.Total)
	}

	if _, err := svc.Receipt(provider, "b1"); err != nil {
		t.Errorf("provider Receipt() error = %v", err)
	}
	if _, err := svc.Receipt(stranger, "b1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger Receipt() error = %v; want ErrForbidden", err)
	}

	hotel, err := svc.Receipt(stranger, "b2")
	if err != nil {
		t.Fatalf("hotel Receipt() error = %v", err)
	}
	if len(hotel.Lines) != 1 || hotel.Lines[0].Quantity != 3 || hotel.Lines[0].Amount != 66000 {
		t.Errorf("hotel Lines = %+v; want 3 nights at 22000", hotel.Lines)
	}
}
