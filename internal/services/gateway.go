package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go/snap"
)

// Gateway charges a payment request
type Gateway interface {
	Charge(ctx context.Context, req *snap.Request) (*snap.Response, error)
}

// SimulatedGateway accepts every charge after a fixed delay. It never talks
// to a real payment provider and has no decline path.
type SimulatedGateway struct {
	delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{delay: delay}
}

// Charge waits for the configured delay and settles the request. A cancelled
// context aborts the charge.
func (g *SimulatedGateway) Charge(ctx context.Context, req *snap.Request) (*snap.Response, error) {
	if req == nil || req.TransactionDetails.OrderID == "" {
		return nil, fmt.Errorf("simulated gateway: order id is required")
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &snap.Response{
		Token:      uuid.New().String(),
		StatusCode: "200",
	}, nil
}
