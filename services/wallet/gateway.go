package wallet

import (
	"context"

	"github.com/piresc/pullup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/pullup/services/wallet FundingGateway

// FundingGateway charges a stored payment method to top up the wallet
type FundingGateway interface {
	Name() string
	Fund(ctx context.Context, req models.FundingRequest, method models.PaymentMethod) (*models.FundingReceipt, error)
}
