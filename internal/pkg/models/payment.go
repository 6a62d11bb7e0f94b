package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodType is the kind of stored payment method
type PaymentMethodType string

const (
	PaymentMethodVisa       PaymentMethodType = "visa"
	PaymentMethodMastercard PaymentMethodType = "mastercard"
	PaymentMethodPayPal     PaymentMethodType = "paypal"
)

// PaymentMethod is a stored card or PayPal account
type PaymentMethod struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	UserID         uuid.UUID         `json:"user_id" db:"user_id"`
	Type           PaymentMethodType `json:"type" db:"type"`
	LastFour       string            `json:"last_four,omitempty" db:"last_four"`
	Email          string            `json:"email,omitempty" db:"email"`
	ExpiryMonth    int               `json:"expiry_month,omitempty" db:"expiry_month"`
	ExpiryYear     int               `json:"expiry_year,omitempty" db:"expiry_year"`
	CardholderName string            `json:"cardholder_name,omitempty" db:"cardholder_name"`
	IsDefault      bool              `json:"is_default" db:"is_default"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
}

// AddPaymentMethodRequest is the input for a new payment method
type AddPaymentMethodRequest struct {
	Type           PaymentMethodType `json:"type"`
	CardNumber     string            `json:"card_number"`
	ExpiryMonth    int               `json:"expiry_month"`
	ExpiryYear     int               `json:"expiry_year"`
	CVV            string            `json:"cvv"`
	CardholderName string            `json:"cardholder_name"`
	Email          string            `json:"email"`
	MakeDefault    bool              `json:"make_default"`
}

// AddFundsRequest tops up the wallet from a stored method
type AddFundsRequest struct {
	Amount          float64   `json:"amount"`
	PaymentMethodID uuid.UUID `json:"payment_method_id"`
}

// FundingRequest is sent to the funding gateway
type FundingRequest struct {
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
	Amount          float64
	Currency        string
	Reference       string
}

// FundingReceipt is the gateway acknowledgement of a top-up
type FundingReceipt struct {
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}
