package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/metrics"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/wallet"
	"github.com/piresc/pullup/services/wallet/card"
	"github.com/piresc/pullup/services/wallet/ledger"
)

const (
	defaultCurrency       = "USD"
	defaultFundingTimeout = 10 * time.Second
	walletLabel           = "Wallet"
)

// QuickAmounts are the preset top-up amounts offered by the wallet page
var QuickAmounts = []float64{10, 25, 50, 100}

// walletUC implements wallet.WalletUC
type walletUC struct {
	cfg     *models.Config
	repo    wallet.WalletRepo
	funding wallet.FundingGateway
	now     func() time.Time
}

// NewWalletUC creates the wallet use case
func NewWalletUC(cfg *models.Config, repo wallet.WalletRepo, funding wallet.FundingGateway) wallet.WalletUC {
	return &walletUC{
		cfg:     cfg,
		repo:    repo,
		funding: funding,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (uc *walletUC) currency() string {
	if uc.cfg.Wallet.Currency == "" {
		return defaultCurrency
	}
	return uc.cfg.Wallet.Currency
}

func (uc *walletUC) fundingTimeout() time.Duration {
	if uc.cfg.Wallet.FundingTimeoutMs <= 0 {
		return defaultFundingTimeout
	}
	return time.Duration(uc.cfg.Wallet.FundingTimeoutMs) * time.Millisecond
}

// GetWallet returns the wallet of userID, opening an empty one on first use
func (uc *walletUC) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return uc.repo.GetOrCreateWallet(ctx, userID, uc.currency())
}

// ListTransactions returns the filtered ledger, newest first
func (uc *walletUC) ListTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, error) {
	criteria, err := ledger.Parse(filter)
	if err != nil {
		return nil, err
	}
	txns, err := uc.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return criteria.Apply(txns), nil
}

// GetSummary totals the whole ledger of userID
func (uc *walletUC) GetSummary(ctx context.Context, userID uuid.UUID) (*models.WalletSummary, error) {
	txns, err := uc.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	summary := ledger.Summarize(txns)
	return &summary, nil
}

// ExportTransactions writes the filtered ledger as CSV
func (uc *walletUC) ExportTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter, w io.Writer) error {
	txns, err := uc.ListTransactions(ctx, userID, filter)
	if err != nil {
		return err
	}
	return ledger.WriteCSV(w, txns)
}

// AddFunds charges a stored card and credits the wallet with exactly one top-up entry
func (uc *walletUC) AddFunds(ctx context.Context, userID uuid.UUID, req models.AddFundsRequest) (*models.TopUpResult, error) {
	if req.Amount < 0 {
		return nil, models.NewValidationError("amount", "must not be negative")
	}
	if !utils.HasAtMostTwoDecimals(req.Amount) {
		return nil, models.NewValidationError("amount", "must have at most two decimals")
	}
	if req.PaymentMethodID == uuid.Nil {
		return nil, models.NewValidationError("payment_method_id", "is required")
	}

	method, err := uc.ownedMethod(ctx, userID, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method.Type == models.PaymentMethodPayPal {
		return nil, models.NewValidationError("payment_method_id", "PayPal cannot be used to add funds")
	}

	w, err := uc.repo.GetOrCreateWallet(ctx, userID, uc.currency())
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}

	amount := utils.RoundMoney(req.Amount)
	reference := "TXN-" + uuid.New().String()
	receipt, err := uc.charge(ctx, models.FundingRequest{
		UserID:          userID,
		PaymentMethodID: method.ID,
		Amount:          amount,
		Currency:        w.Currency,
		Reference:       reference,
	}, *method)
	if err != nil {
		return nil, err
	}

	txn := models.Transaction{
		ID:            reference,
		UserID:        userID,
		Type:          models.TransactionWalletTopUp,
		Description:   "Wallet Top-up",
		Amount:        amount,
		Status:        models.TransactionCompleted,
		Date:          uc.now(),
		PaymentMethod: card.Label(*method),
	}
	updated, err := uc.repo.CreditWallet(ctx, txn)
	if err != nil {
		logger.Error("Funds charged but wallet credit failed",
			logger.String("user_id", userID.String()),
			logger.String("reference", reference),
			logger.String("provider_reference", receipt.Reference),
			logger.Err(err))
		return nil, fmt.Errorf("failed to credit wallet: %w", err)
	}

	result := &models.TopUpResult{Wallet: *updated, Transaction: txn, Receipt: *receipt}
	if txns, err := uc.repo.ListTransactions(ctx, userID); err == nil {
		result.Recent = ledger.Summarize(txns).RecentTransactions
	}

	logger.Info("Wallet topped up",
		logger.String("user_id", userID.String()),
		logger.String("reference", reference),
		logger.Float64("amount", amount),
		logger.Float64("balance", updated.Balance))
	return result, nil
}

func (uc *walletUC) charge(ctx context.Context, req models.FundingRequest, method models.PaymentMethod) (*models.FundingReceipt, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.fundingTimeout())
	defer cancel()

	receipt, err := uc.funding.Fund(ctx, req, method)
	metrics.WalletTopUpsTotal.WithLabelValues(uc.funding.Name(), metrics.Result(err)).Inc()
	switch {
	case err == nil:
		return receipt, nil
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("Funding provider timed out",
			logger.String("provider", uc.funding.Name()),
			logger.String("reference", req.Reference))
		return nil, fmt.Errorf("%w: funding provider did not answer in time", models.ErrPaymentFailed)
	case errors.Is(err, models.ErrPaymentFailed):
		return nil, err
	default:
		logger.Error("Funding provider failed",
			logger.String("provider", uc.funding.Name()),
			logger.String("reference", req.Reference),
			logger.Err(err))
		return nil, fmt.Errorf("%w: funding provider error", models.ErrPaymentFailed)
	}
}

// GetWalletView assembles the payment and wallet page
func (uc *walletUC) GetWalletView(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) (*models.WalletView, error) {
	criteria, err := ledger.Parse(filter)
	if err != nil {
		return nil, err
	}

	w, err := uc.repo.GetOrCreateWallet(ctx, userID, uc.currency())
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	txns, err := uc.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	methods, err := uc.repo.ListPaymentMethods(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	funding := make([]models.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		if m.Type != models.PaymentMethodPayPal {
			funding = append(funding, m)
		}
	}

	return &models.WalletView{
		Wallet:         *w,
		Summary:        ledger.Summarize(txns),
		PaymentMethods: methods,
		FundingMethods: funding,
		QuickAmounts:   append([]float64(nil), QuickAmounts...),
		Transactions:   criteria.Apply(txns),
	}, nil
}

// SettleRide records the rider payment and the driver earning of a completed ride.
// Entry ids derive from the ride id so a redelivered event records nothing new.
func (uc *walletUC) SettleRide(ctx context.Context, event models.RideCompletedEvent) error {
	if event.RideID == uuid.Nil || event.PassengerID == uuid.Nil {
		return models.NewValidationError("ride_id", "completed ride event is incomplete")
	}
	completedAt := event.CompletedAt
	if completedAt.IsZero() {
		completedAt = uc.now()
	}

	payment := models.Transaction{
		ID:            settlementID(event.RideID, models.TransactionRidePayment),
		UserID:        event.PassengerID,
		Type:          models.TransactionRidePayment,
		Description:   "Ride to " + event.Destination,
		Amount:        utils.RoundMoney(event.Fare.Total),
		Status:        models.TransactionCompleted,
		Date:          completedAt,
		PaymentMethod: uc.defaultMethodLabel(ctx, event.PassengerID),
		RideID:        event.RideID.String(),
		Breakdown: map[string]float64{
			"base_fare":    event.Fare.BaseFare,
			"distance_fee": event.Fare.DistanceFare,
			"time_fee":     event.Fare.TimeFare,
			"service_fee":  event.Fare.ServiceFee,
		},
	}
	txns := []models.Transaction{payment}

	if event.DriverID != uuid.Nil && event.DriverID != event.PassengerID {
		txns = append(txns, models.Transaction{
			ID:            settlementID(event.RideID, models.TransactionEarning),
			UserID:        event.DriverID,
			Type:          models.TransactionEarning,
			Description:   "Driver Earnings - Ride to " + event.Destination,
			Amount:        utils.RoundMoney(event.DriverEarnings),
			Status:        models.TransactionCompleted,
			Date:          completedAt,
			PaymentMethod: walletLabel,
			RideID:        event.RideID.String(),
		})
	}

	if err := uc.repo.RecordTransactions(ctx, txns...); err != nil {
		return fmt.Errorf("failed to record settlement of ride %s: %w", event.RideID, err)
	}
	logger.Info("Ride settled",
		logger.String("ride_id", event.RideID.String()),
		logger.Float64("fare", payment.Amount),
		logger.Int("entries", len(txns)))
	return nil
}

func (uc *walletUC) defaultMethodLabel(ctx context.Context, userID uuid.UUID) string {
	methods, err := uc.repo.ListPaymentMethods(ctx, userID)
	if err != nil {
		logger.Warn("Payment methods unavailable for settlement", logger.String("user_id", userID.String()), logger.Err(err))
		return walletLabel
	}
	for _, m := range methods {
		if m.IsDefault {
			return card.Label(m)
		}
	}
	return walletLabel
}

func settlementID(rideID uuid.UUID, kind models.TransactionType) string {
	return "TXN-" + uuid.NewSHA1(rideID, []byte(kind)).String()
}
