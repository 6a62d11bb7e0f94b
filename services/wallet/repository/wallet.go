package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/pullup/internal/pkg/database"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/wallet"
)

const transactionColumns = `id, user_id, type, description, amount, status, occurred_at, payment_method, ride_id, breakdown`

const paymentMethodColumns = `id, user_id, type, last_four, email, expiry_month, expiry_year, cardholder_name, is_default, created_at`

// transactionRow is the wallet_transactions table layout
type transactionRow struct {
	ID            string         `db:"id"`
	UserID        uuid.UUID      `db:"user_id"`
	Type          string         `db:"type"`
	Description   string         `db:"description"`
	Amount        float64        `db:"amount"`
	Status        string         `db:"status"`
	OccurredAt    time.Time      `db:"occurred_at"`
	PaymentMethod string         `db:"payment_method"`
	RideID        sql.NullString `db:"ride_id"`
	Breakdown     []byte         `db:"breakdown"`
}

func toTransactionRow(t models.Transaction) (*transactionRow, error) {
	row := &transactionRow{
		ID:            t.ID,
		UserID:        t.UserID,
		Type:          string(t.Type),
		Description:   t.Description,
		Amount:        t.Amount,
		Status:        string(t.Status),
		OccurredAt:    t.Date,
		PaymentMethod: t.PaymentMethod,
		RideID:        sql.NullString{String: t.RideID, Valid: t.RideID != ""},
	}
	if len(t.Breakdown) > 0 {
		b, err := json.Marshal(t.Breakdown)
		if err != nil {
			return nil, fmt.Errorf("failed to encode breakdown: %w", err)
		}
		row.Breakdown = b
	}
	return row, nil
}

func (r *transactionRow) toModel() (models.Transaction, error) {
	t := models.Transaction{
		ID:            r.ID,
		UserID:        r.UserID,
		Type:          models.TransactionType(r.Type),
		Description:   r.Description,
		Amount:        r.Amount,
		Status:        models.TransactionStatus(r.Status),
		Date:          r.OccurredAt.UTC(),
		PaymentMethod: r.PaymentMethod,
		RideID:        r.RideID.String,
	}
	if len(r.Breakdown) > 0 {
		if err := json.Unmarshal(r.Breakdown, &t.Breakdown); err != nil {
			return models.Transaction{}, fmt.Errorf("failed to decode breakdown of %s: %w", r.ID, err)
		}
	}
	return t, nil
}

// WalletRepo implements wallet.WalletRepo on PostgreSQL
type WalletRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(cfg *models.Config, db *sqlx.DB) wallet.WalletRepo {
	return &WalletRepo{cfg: cfg, db: db}
}

// GetOrCreateWallet opens an empty wallet on first access
func (r *WalletRepo) GetOrCreateWallet(ctx context.Context, userID uuid.UUID, currency string) (*models.Wallet, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wallets (user_id, balance, currency, updated_at)
		VALUES ($1, 0, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`,
		userID, currency, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet: %w", err)
	}

	var w models.Wallet
	err = r.db.GetContext(ctx, &w, `SELECT user_id, balance, currency, updated_at FROM wallets WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &w, nil
}

// CreditWallet records txn and adds its amount to the balance atomically
func (r *WalletRepo) CreditWallet(ctx context.Context, txn models.Transaction) (*models.Wallet, error) {
	row, err := toTransactionRow(txn)
	if err != nil {
		return nil, err
	}

	var w models.Wallet
	err = database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, insertTransaction, row); err != nil {
			if database.IsUniqueViolation(err) {
				return fmt.Errorf("%w: transaction %s already recorded", models.ErrConflict, txn.ID)
			}
			return fmt.Errorf("failed to record transaction: %w", err)
		}
		return tx.GetContext(ctx, &w, `
			INSERT INTO wallets (user_id, balance, currency, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id) DO UPDATE
			SET balance = wallets.balance + EXCLUDED.balance, updated_at = EXCLUDED.updated_at
			RETURNING user_id, balance, currency, updated_at`,
			txn.UserID, txn.Amount, r.currency(), time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

const insertTransaction = `
	INSERT INTO wallet_transactions (` + transactionColumns + `)
	VALUES (:id, :user_id, :type, :description, :amount, :status, :occurred_at, :payment_method, :ride_id, :breakdown)`

// RecordTransactions stores txns in one transaction, ignoring ids already present
func (r *WalletRepo) RecordTransactions(ctx context.Context, txns ...models.Transaction) error {
	rows := make([]*transactionRow, 0, len(txns))
	for _, t := range txns {
		row, err := toTransactionRow(t)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			if _, err := tx.NamedExecContext(ctx, insertTransaction+` ON CONFLICT (id) DO NOTHING`, row); err != nil {
				return fmt.Errorf("failed to record transaction %s: %w", row.ID, err)
			}
		}
		return nil
	})
}

// ListTransactions returns the ledger of userID, newest first
func (r *WalletRepo) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var rows []transactionRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+transactionColumns+`
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY occurred_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}

	txns := make([]models.Transaction, 0, len(rows))
	for i := range rows {
		t, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// ListPaymentMethods returns the methods of userID, default first
func (r *WalletRepo) ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error) {
	methods := []models.PaymentMethod{}
	err := r.db.SelectContext(ctx, &methods, `
		SELECT `+paymentMethodColumns+`
		FROM payment_methods
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	return methods, nil
}

// GetPaymentMethod loads one method by id
func (r *WalletRepo) GetPaymentMethod(ctx context.Context, methodID uuid.UUID) (*models.PaymentMethod, error) {
	var m models.PaymentMethod
	err := r.db.GetContext(ctx, &m, `SELECT `+paymentMethodColumns+` FROM payment_methods WHERE id = $1`, methodID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment method %s", models.ErrNotFound, methodID)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreatePaymentMethod stores method; a default method clears the previous default
func (r *WalletRepo) CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if method.IsDefault {
			if err := clearDefaults(ctx, tx, method.UserID, method.ID); err != nil {
				return err
			}
		}
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO payment_methods (`+paymentMethodColumns+`)
			VALUES (:id, :user_id, :type, :last_four, :email, :expiry_month, :expiry_year, :cardholder_name, :is_default, :created_at)`,
			method)
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: payment method already exists", models.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("failed to insert payment method: %w", err)
		}
		return nil
	})
}

// DeletePaymentMethod removes methodID when it belongs to userID
func (r *WalletRepo) DeletePaymentMethod(ctx context.Context, userID, methodID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payment_methods WHERE id = $1 AND user_id = $2`, methodID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: payment method %s", models.ErrNotFound, methodID)
	}
	return nil
}

// SetDefaultPaymentMethod clears every other default of userID and flags methodID, in one transaction
func (r *WalletRepo) SetDefaultPaymentMethod(ctx context.Context, userID, methodID uuid.UUID) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := clearDefaults(ctx, tx, userID, methodID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE payment_methods SET is_default = TRUE WHERE id = $1 AND user_id = $2`, methodID, userID)
		if err != nil {
			return fmt.Errorf("failed to set default payment method: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: payment method %s", models.ErrNotFound, methodID)
		}
		return nil
	})
}

func clearDefaults(ctx context.Context, tx *sqlx.Tx, userID, keepID uuid.UUID) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE payment_methods SET is_default = FALSE WHERE user_id = $1 AND id <> $2 AND is_default`, userID, keepID)
	if err != nil {
		return fmt.Errorf("failed to clear default payment methods: %w", err)
	}
	return nil
}

func (r *WalletRepo) currency() string {
	if r.cfg == nil || r.cfg.Wallet.Currency == "" {
		return "USD"
	}
	return r.cfg.Wallet.Currency
}
