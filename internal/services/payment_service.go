package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"go.uber.org/zap"

	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/metrics"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/store"
)

// CardDetails is the payment form. Values are only checked for presence.
type CardDetails struct {
	Number string `json:"cardNumber"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

func (c CardDetails) complete() bool {
	return strings.TrimSpace(c.Number) != "" && strings.TrimSpace(c.Expiry) != "" && strings.TrimSpace(c.CVC) != ""
}

type PaymentService struct {
	store   *store.Store
	gateway Gateway
	now     func() time.Time
}

func NewPaymentService(s *store.Store, gateway Gateway) *PaymentService {
	return &PaymentService{store: s, gateway: gateway, now: time.Now}
}

// ValidateCard returns the payment form errors, if any
func ValidateCard(card CardDetails) FieldErrors {
	if !card.complete() {
		return FieldErrors{"payment": "allFieldsRequired"}
	}
	return nil
}

// Pay charges amount for the offer on behalf of user and records the payment
// session. It blocks until the gateway settles or ctx is done.
func (s *PaymentService) Pay(ctx context.Context, user models.User, offer models.Offer, amount float64, card CardDetails) (*models.PaymentSession, error) {
	if err := newValidationError(ValidateCard(card)); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	orderID := fmt.Sprintf("order-%s-%d", offer.ID, s.now().UnixNano())

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       offer.ID,
				Name:     offer.Title.En,
				Price:    int64(amount),
				Qty:      1,
				Category: string(offer.Category),
			},
		},
	}
	reqBytes, _ := json.Marshal(req)

	session := models.PaymentSession{
		ID:              uuid.New().String(),
		OrderID:         orderID,
		UserID:          user.ID,
		OfferID:         offer.ID,
		Amount:          amount,
		PaymentGateway:  models.PaymentGatewaySimulated,
		Status:          models.PaymentSessionStatusPending,
		RequestMetadata: reqBytes,
		CreatedAt:       s.now(),
	}
	s.store.AddPaymentSession(session)

	resp, err := s.gateway.Charge(ctx, req)
	if err != nil {
		session.Status = models.PaymentSessionStatusAbandoned
		_ = s.store.UpdatePaymentSession(session)
		log.Warn("Payment not settled", zap.String("order_id", orderID), zap.Error(err))
		return nil, fmt.Errorf("payment %s: %w", orderID, err)
	}

	respBytes, _ := json.Marshal(resp)
	settledAt := s.now()
	session.Status = models.PaymentSessionStatusSettled
	session.ResponseMetadata = respBytes
	session.SettledAt = &settledAt
	if err := s.store.UpdatePaymentSession(session); err != nil {
		return nil, err
	}

	metrics.PaymentsSettled.Inc()
	log.Info("Payment settled",
		zap.String("order_id", orderID),
		zap.String("user_id", user.ID),
		zap.Float64("amount", amount))

	return &session, nil
}
