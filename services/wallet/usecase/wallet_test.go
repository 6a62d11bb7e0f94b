package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type walletFixture struct {
	uc      *walletUC
	repo    *mocks.MockWalletRepo
	funding *mocks.MockFundingGateway
	userID  uuid.UUID
}

func newWalletFixture(t *testing.T) *walletFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWalletRepo(ctrl)
	funding := mocks.NewMockFundingGateway(ctrl)
	funding.EXPECT().Name().Return("simulated").AnyTimes()

	cfg := &models.Config{Wallet: models.WalletConfig{Currency: "USD", FundingTimeoutMs: 50}}
	uc := NewWalletUC(cfg, repo, funding).(*walletUC)
	uc.now = func() time.Time { return fixedNow }
	return &walletFixture{uc: uc, repo: repo, funding: funding, userID: uuid.New()}
}

func (f *walletFixture) visa(isDefault bool) *models.PaymentMethod {
	return &models.PaymentMethod{
		ID: uuid.New(), UserID: f.userID, Type: models.PaymentMethodVisa,
		LastFour: "4532", ExpiryMonth: 12, ExpiryYear: 2027, CardholderName: "John Doe", IsDefault: isDefault,
	}
}

func (f *walletFixture) history() []models.Transaction {
	return []models.Transaction{
		{ID: "TXN001", UserID: f.userID, Type: models.TransactionRidePayment, Description: "Ride to Downtown",
			Amount: 24.50, Status: models.TransactionCompleted, Date: fixedNow.Add(-24 * time.Hour)},
		{ID: "TXN005", UserID: f.userID, Type: models.TransactionEarning, Description: "Driver Earnings - Week 42",
			Amount: 285.50, Status: models.TransactionCompleted, Date: fixedNow.Add(-120 * time.Hour)},
	}
}

func TestAddFunds_Success(t *testing.T) {
	// Arrange
	f := newWalletFixture(t)
	ctx := context.Background()
	method := f.visa(true)
	balance := 127.50

	f.repo.EXPECT().GetPaymentMethod(ctx, method.ID).Return(method, nil)
	f.repo.EXPECT().GetOrCreateWallet(ctx, f.userID, "USD").
		Return(&models.Wallet{UserID: f.userID, Balance: balance, Currency: "USD"}, nil)
	f.funding.EXPECT().Fund(gomock.Any(), gomock.Any(), *method).
		DoAndReturn(func(_ context.Context, req models.FundingRequest, _ models.PaymentMethod) (*models.FundingReceipt, error) {
			assert.Equal(t, 25.0, req.Amount)
			assert.Equal(t, "USD", req.Currency)
			assert.True(t, strings.HasPrefix(req.Reference, "TXN-"))
			return &models.FundingReceipt{Provider: "simulated", Reference: "sim_1", Status: "succeeded"}, nil
		})

	var credited models.Transaction
	f.repo.EXPECT().CreditWallet(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, txn models.Transaction) (*models.Wallet, error) {
			credited = txn
			return &models.Wallet{UserID: f.userID, Balance: balance + txn.Amount, Currency: "USD"}, nil
		})
	f.repo.EXPECT().ListTransactions(ctx, f.userID).
		DoAndReturn(func(context.Context, uuid.UUID) ([]models.Transaction, error) {
			return append([]models.Transaction{credited}, f.history()...), nil
		})

	// Act
	result, err := f.uc.AddFunds(ctx, f.userID, models.AddFundsRequest{Amount: 25, PaymentMethodID: method.ID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 152.50, result.Wallet.Balance)
	assert.Equal(t, models.TransactionWalletTopUp, result.Transaction.Type)
	assert.Equal(t, 25.0, result.Transaction.Amount)
	assert.Equal(t, models.TransactionCompleted, result.Transaction.Status)
	assert.Equal(t, "Visa •••• 4532", result.Transaction.PaymentMethod)
	assert.Equal(t, fixedNow, result.Transaction.Date)
	assert.Equal(t, "sim_1", result.Receipt.Reference)
	require.Len(t, result.Recent, 3)
	assert.Equal(t, result.Transaction.ID, result.Recent[0].ID)
}

func TestAddFunds_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   models.AddFundsRequest
		field string
	}{
		{name: "negative", req: models.AddFundsRequest{Amount: -5, PaymentMethodID: uuid.New()}, field: "amount"},
		{name: "sub-cent", req: models.AddFundsRequest{Amount: 10.005, PaymentMethodID: uuid.New()}, field: "amount"},
		{name: "missing method", req: models.AddFundsRequest{Amount: 10}, field: "payment_method_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWalletFixture(t)

			_, err := f.uc.AddFunds(context.Background(), f.userID, tt.req)

			var vErr *models.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestAddFunds_PayPalRejected(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	paypal := &models.PaymentMethod{ID: uuid.New(), UserID: f.userID, Type: models.PaymentMethodPayPal, Email: "john@example.com"}

	f.repo.EXPECT().GetPaymentMethod(ctx, paypal.ID).Return(paypal, nil)

	_, err := f.uc.AddFunds(ctx, f.userID, models.AddFundsRequest{Amount: 10, PaymentMethodID: paypal.ID})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "PayPal")
}

func TestAddFunds_MethodOfAnotherUser(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	method := f.visa(true)
	method.UserID = uuid.New()

	f.repo.EXPECT().GetPaymentMethod(ctx, method.ID).Return(method, nil)

	_, err := f.uc.AddFunds(ctx, f.userID, models.AddFundsRequest{Amount: 10, PaymentMethodID: method.ID})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddFunds_ProviderTimeout(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	method := f.visa(true)

	f.repo.EXPECT().GetPaymentMethod(ctx, method.ID).Return(method, nil)
	f.repo.EXPECT().GetOrCreateWallet(ctx, f.userID, "USD").Return(&models.Wallet{UserID: f.userID, Currency: "USD"}, nil)
	f.funding.EXPECT().Fund(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.FundingRequest, _ models.PaymentMethod) (*models.FundingReceipt, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := f.uc.AddFunds(ctx, f.userID, models.AddFundsRequest{Amount: 10, PaymentMethodID: method.ID})

	assert.ErrorIs(t, err, models.ErrPaymentFailed)
	assert.Contains(t, err.Error(), "did not answer in time")
}

func TestAddFunds_ProviderFailureKeepsBalance(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	method := f.visa(true)

	f.repo.EXPECT().GetPaymentMethod(ctx, method.ID).Return(method, nil)
	f.repo.EXPECT().GetOrCreateWallet(ctx, f.userID, "USD").Return(&models.Wallet{UserID: f.userID, Currency: "USD"}, nil)
	f.funding.EXPECT().Fund(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("tls handshake"))
	f.repo.EXPECT().CreditWallet(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.uc.AddFunds(ctx, f.userID, models.AddFundsRequest{Amount: 10, PaymentMethodID: method.ID})

	assert.ErrorIs(t, err, models.ErrPaymentFailed)
}

func TestListTransactions_Filtered(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().ListTransactions(ctx, f.userID).Return(f.history(), nil)

	txns, err := f.uc.ListTransactions(ctx, f.userID, models.TransactionFilter{Type: "earning", Status: "all"})

	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "TXN005", txns[0].ID)
}

func TestListTransactions_InvalidFilterSkipsRepository(t *testing.T) {
	f := newWalletFixture(t)

	_, err := f.uc.ListTransactions(context.Background(), f.userID, models.TransactionFilter{DateFrom: "March"})

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestGetSummary(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().ListTransactions(ctx, f.userID).Return(f.history(), nil)

	summary, err := f.uc.GetSummary(ctx, f.userID)

	require.NoError(t, err)
	assert.Equal(t, 24.50, summary.TotalSpent)
	assert.Equal(t, 285.50, summary.TotalEarned)
	assert.Equal(t, 2, summary.TransactionCount)
}

func TestExportTransactions(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().ListTransactions(ctx, f.userID).Return(f.history(), nil)

	var buf bytes.Buffer
	err := f.uc.ExportTransactions(ctx, f.userID, models.TransactionFilter{Search: "downtown"}, &buf)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "TXN001,"))
}

func TestGetWalletView(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	visa := f.visa(true)
	paypal := models.PaymentMethod{ID: uuid.New(), UserID: f.userID, Type: models.PaymentMethodPayPal, Email: "john@example.com"}

	f.repo.EXPECT().GetOrCreateWallet(ctx, f.userID, "USD").Return(&models.Wallet{UserID: f.userID, Balance: 127.5, Currency: "USD"}, nil)
	f.repo.EXPECT().ListTransactions(ctx, f.userID).Return(f.history(), nil)
	f.repo.EXPECT().ListPaymentMethods(ctx, f.userID).Return([]models.PaymentMethod{*visa, paypal}, nil)

	view, err := f.uc.GetWalletView(ctx, f.userID, models.TransactionFilter{Type: "ride_payment"})

	require.NoError(t, err)
	assert.Equal(t, 127.5, view.Wallet.Balance)
	assert.Len(t, view.PaymentMethods, 2)
	require.Len(t, view.FundingMethods, 1)
	assert.Equal(t, visa.ID, view.FundingMethods[0].ID)
	assert.Equal(t, []float64{10, 25, 50, 100}, view.QuickAmounts)
	assert.Len(t, view.Transactions, 1)
	assert.Equal(t, 2, view.Summary.TransactionCount)
}

func TestSettleRide(t *testing.T) {
	// Arrange
	f := newWalletFixture(t)
	ctx := context.Background()
	driverID := uuid.New()
	event := models.RideCompletedEvent{
		RideID:         uuid.New(),
		PassengerID:    f.userID,
		DriverID:       driverID,
		Destination:    "JFK Airport",
		Fare:           models.FareBreakdown{BaseFare: 2.5, DistanceFare: 14.2, TimeFare: 5.08, ServiceFee: 2, Total: 23.78},
		DriverEarnings: 19.02,
		CompletedAt:    fixedNow,
	}

	f.repo.EXPECT().ListPaymentMethods(ctx, f.userID).Return([]models.PaymentMethod{*f.visa(true)}, nil)
	var recorded []models.Transaction
	f.repo.EXPECT().RecordTransactions(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txns ...models.Transaction) error {
			recorded = txns
			return nil
		})

	// Act
	err := f.uc.SettleRide(ctx, event)

	// Assert
	require.NoError(t, err)
	require.Len(t, recorded, 2)

	payment := recorded[0]
	assert.Equal(t, models.TransactionRidePayment, payment.Type)
	assert.Equal(t, f.userID, payment.UserID)
	assert.Equal(t, 23.78, payment.Amount)
	assert.Equal(t, "Ride to JFK Airport", payment.Description)
	assert.Equal(t, "Visa •••• 4532", payment.PaymentMethod)
	assert.Equal(t, event.RideID.String(), payment.RideID)
	assert.Equal(t, 14.2, payment.Breakdown["distance_fee"])

	earning := recorded[1]
	assert.Equal(t, models.TransactionEarning, earning.Type)
	assert.Equal(t, driverID, earning.UserID)
	assert.Equal(t, 19.02, earning.Amount)
	assert.NotEqual(t, payment.ID, earning.ID)

	assert.Equal(t, settlementID(event.RideID, models.TransactionRidePayment), payment.ID, "ids are stable across redelivery")
}

func TestSettleRide_WithoutDriverRecordsPaymentOnly(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	event := models.RideCompletedEvent{RideID: uuid.New(), PassengerID: f.userID, Destination: "Home", Fare: models.FareBreakdown{Total: 9}}

	f.repo.EXPECT().ListPaymentMethods(ctx, f.userID).Return(nil, errors.New("db down"))
	f.repo.EXPECT().RecordTransactions(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, txns ...models.Transaction) error {
			require.Len(t, txns, 1)
			assert.Equal(t, "Wallet", txns[0].PaymentMethod)
			assert.Equal(t, fixedNow, txns[0].Date)
			return nil
		})

	require.NoError(t, f.uc.SettleRide(ctx, event))
}

func TestSettleRide_IncompleteEvent(t *testing.T) {
	f := newWalletFixture(t)

	err := f.uc.SettleRide(context.Background(), models.RideCompletedEvent{})

	assert.ErrorIs(t, err, models.ErrValidation)
}
