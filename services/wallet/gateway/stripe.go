package gateway

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/wallet"
	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// ProviderStripe names the Stripe funding gateway
const ProviderStripe = "stripe"

// testPaymentMethods maps stored card networks to Stripe test-mode payment methods.
// Stored methods keep only the last four digits, so live charges need tokenized cards.
var testPaymentMethods = map[models.PaymentMethodType]string{
	models.PaymentMethodVisa:       "pm_card_visa",
	models.PaymentMethodMastercard: "pm_card_mastercard",
}

// StripeGateway tops up the wallet with a confirmed PaymentIntent
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a Stripe gateway. A nil backends uses the public API.
func NewStripeGateway(secretKey string, backends *stripe.Backends) wallet.FundingGateway {
	return &StripeGateway{api: client.New(secretKey, backends)}
}

// Name returns the provider label used in receipts and metrics
func (g *StripeGateway) Name() string {
	return ProviderStripe
}

// Fund creates and confirms a PaymentIntent for the top-up amount in cents.
// The wallet reference doubles as the idempotency key.
func (g *StripeGateway) Fund(ctx context.Context, req models.FundingRequest, method models.PaymentMethod) (*models.FundingReceipt, error) {
	pm, ok := testPaymentMethods[method.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot be charged", models.ErrPaymentFailed, method.Type)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency:           stripe.String(strings.ToLower(req.Currency)),
		PaymentMethod:      stripe.String(pm),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
		Description:        stripe.String("Wallet top-up " + req.Reference),
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(req.Reference)
	params.AddMetadata("user_id", req.UserID.String())
	params.AddMetadata("payment_method_id", req.PaymentMethodID.String())
	params.AddMetadata("reference", req.Reference)

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return nil, fmt.Errorf("%w: %s", models.ErrPaymentFailed, stripeErr.Msg)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		logger.Warn("Payment intent not settled",
			logger.String("payment_intent", pi.ID),
			logger.String("status", string(pi.Status)),
			logger.String("reference", req.Reference))
		return nil, fmt.Errorf("%w: payment intent %s is %s", models.ErrPaymentFailed, pi.ID, pi.Status)
	}

	return &models.FundingReceipt{
		Provider:  ProviderStripe,
		Reference: pi.ID,
		Status:    string(pi.Status),
	}, nil
}
