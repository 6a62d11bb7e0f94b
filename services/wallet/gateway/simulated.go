package gateway

import (
	"context"
	"time"

	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/wallet"
)

// ProviderSimulated names the in-process funding gateway
const ProviderSimulated = "simulated"

// SimulatedGateway approves every top-up after a fixed delay. It stands in
// for a card processor in local and demo environments.
type SimulatedGateway struct {
	delay time.Duration
}

// NewSimulatedGateway creates a gateway answering after delay
func NewSimulatedGateway(delay time.Duration) wallet.FundingGateway {
	return &SimulatedGateway{delay: delay}
}

// Name returns the provider label used in receipts and metrics
func (g *SimulatedGateway) Name() string {
	return ProviderSimulated
}

// Fund waits for the configured delay or until ctx is done
func (g *SimulatedGateway) Fund(ctx context.Context, req models.FundingRequest, _ models.PaymentMethod) (*models.FundingReceipt, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return &models.FundingReceipt{
		Provider:  ProviderSimulated,
		Reference: "sim_" + req.Reference,
		Status:    "succeeded",
	}, nil
}
