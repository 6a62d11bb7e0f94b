package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is the ledger category of a transaction
type TransactionType string

const (
	TransactionRidePayment TransactionType = "ride_payment"
	TransactionWalletTopUp TransactionType = "wallet_topup"
	TransactionRefund      TransactionType = "refund"
	TransactionEarning     TransactionType = "earning"
)

// TransactionStatus is the settlement status of a transaction
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction is one ledger entry
type Transaction struct {
	ID            string             `json:"id"`
	UserID        uuid.UUID          `json:"user_id"`
	Type          TransactionType    `json:"type"`
	Description   string             `json:"description"`
	Amount        float64            `json:"amount"`
	Status        TransactionStatus  `json:"status"`
	Date          time.Time          `json:"date"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	RideID        string             `json:"ride_id,omitempty"`
	Breakdown     map[string]float64 `json:"breakdown,omitempty"`
}

// TransactionFilter narrows the ledger. Empty or "all" means unconstrained.
type TransactionFilter struct {
	Search   string `query:"search"`
	Type     string `query:"type"`
	Status   string `query:"status"`
	DateFrom string `query:"date_from"` // YYYY-MM-DD
	DateTo   string `query:"date_to"`   // YYYY-MM-DD, inclusive of the whole day
}

// Wallet is the stored balance of a user
type Wallet struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Balance   float64   `json:"balance" db:"balance"`
	Currency  string    `json:"currency" db:"currency"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// WalletSummary aggregates the ledger
type WalletSummary struct {
	TotalSpent         float64       `json:"total_spent"`
	TotalEarned        float64       `json:"total_earned"`
	TransactionCount   int           `json:"transaction_count"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}

// TopUpResult is returned by AddFunds
type TopUpResult struct {
	Wallet      Wallet         `json:"wallet"`
	Transaction Transaction    `json:"transaction"`
	Receipt     FundingReceipt `json:"receipt"`
	Recent      []Transaction  `json:"recent_transactions"`
}

// WalletView is the payment and wallet page read model
type WalletView struct {
	Wallet         Wallet          `json:"wallet"`
	Summary        WalletSummary   `json:"summary"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	FundingMethods []PaymentMethod `json:"funding_methods"`
	QuickAmounts   []float64       `json:"quick_amounts"`
	Transactions   []Transaction   `json:"transactions"`
}
