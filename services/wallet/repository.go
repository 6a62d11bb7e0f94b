package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/pullup/services/wallet WalletRepo

// WalletRepo defines the wallet persistence operations
type WalletRepo interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID, currency string) (*models.Wallet, error)
	// CreditWallet adds txn.Amount to the balance and records txn in one transaction
	CreditWallet(ctx context.Context, txn models.Transaction) (*models.Wallet, error)
	// RecordTransactions stores txns, skipping ids that already exist
	RecordTransactions(ctx context.Context, txns ...models.Transaction) error
	// ListTransactions returns the ledger of userID, newest first
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)

	ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, methodID uuid.UUID) (*models.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, userID, methodID uuid.UUID) error
	// SetDefaultPaymentMethod flags methodID and clears every other default of userID
	SetDefaultPaymentMethod(ctx context.Context, userID, methodID uuid.UUID) error
}
