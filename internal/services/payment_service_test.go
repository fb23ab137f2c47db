package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/midtrans/midtrans-go/snap"

	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/store"
)

type failingGateway struct{}

func (failingGateway) Charge(context.Context, *snap.Request) (*snap.Response, error) {
	return nil, errors.New("declined")
}

func TestPay(t *testing.T) {
	s := store.NewSeeded()
	svc := NewPaymentService(s, NewSimulatedGateway(0))
	user, _ := s.FindUserByID("u1")
	offer, _ := s.FindOffer("offer-1")

	session, err := svc.Pay(context.Background(), user, offer, 85000, validCard)
	if err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if !strings.HasPrefix(session.OrderID, "order-offer-1-") {
		t.Errorf("OrderID = %q", session.OrderID)
	}
	stored, ok := s.FindPaymentSession(session.OrderID)
	if !ok || stored.Status != models.PaymentSessionStatusSettled || stored.SettledAt == nil {
		t.Errorf("stored session = %+v", stored)
	}
	if len(stored.RequestMetadata) == 0 || len(stored.ResponseMetadata) == 0 {
		t.Error("gateway metadata not recorded")
	}
}

func TestPayGatewayFailure(t *testing.T) {
	s := store.NewSeeded()
	svc := NewPaymentService(s, failingGateway{})
	user, _ := s.FindUserByID("u1")
	offer, _ := s.FindOffer("offer-1")

	if _, err := svc.Pay(context.Background(), user, offer, 85000, validCard); err == nil {
		t.Fatal("Pay() expected error")
	}
}

func TestValidateCard(t *testing.T) {
	tests := []struct {
		name string
		card CardDetails
		ok   bool
	}{
		{"complete", validCard, true},
		{"missing cvc", CardDetails{Number: "4111", Expiry: "12/30"}, false},
		{"blank number", CardDetails{Number: " ", Expiry: "12/30", CVC: "1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCard(tt.card)
			if (len(errs) == 0) != tt.ok {
				t.Errorf("ValidateCard() = %v; want ok=%v", errs, tt.ok)
			}
		})
	}
}
