package models

import (
	"encoding/json"
	"time"
)

type PaymentGateway string

const (
	PaymentGatewaySimulated PaymentGateway = "simulated"
)

type PaymentSessionStatus string

const (
	PaymentSessionStatusPending   PaymentSessionStatus = "pending"
	PaymentSessionStatusSettled   PaymentSessionStatus = "settled"
	PaymentSessionStatusAbandoned PaymentSessionStatus = "abandoned"
)

// PaymentSession records one charge attempt against the payment gateway
type PaymentSession struct {
	ID               string               `json:"id"`
	OrderID          string               `json:"order_id"`
	UserID           string               `json:"user_id"`
	OfferID          string               `json:"offer_id"`
	Amount           float64              `json:"amount"`
	PaymentGateway   PaymentGateway       `json:"payment_gateway"`
	Status           PaymentSessionStatus `json:"status"`
	RequestMetadata  json.RawMessage      `json:"request_metadata"`
	ResponseMetadata json.RawMessage      `json:"response_metadata,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	SettledAt        *time.Time           `json:"settled_at,omitempty"`
}
