package wallet

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/pullup/services/wallet WalletUC

// WalletUC defines the wallet, ledger and payment method operations
type WalletUC interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, error)
	GetSummary(ctx context.Context, userID uuid.UUID) (*models.WalletSummary, error)
	ExportTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter, w io.Writer) error
	AddFunds(ctx context.Context, userID uuid.UUID, req models.AddFundsRequest) (*models.TopUpResult, error)

	ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error)
	AddPaymentMethod(ctx context.Context, userID uuid.UUID, req models.AddPaymentMethodRequest) (*models.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, userID, methodID uuid.UUID) error
	SetDefaultPaymentMethod(ctx context.Context, userID, methodID uuid.UUID) ([]models.PaymentMethod, error)

	GetWalletView(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) (*models.WalletView, error)

	// SettleRide records the rider payment and driver earning of a completed ride
	SettleRide(ctx context.Context, event models.RideCompletedEvent) error
}
