package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/wallet/card"
)

const maxCardholderLength = 100

// ListPaymentMethods returns the stored methods of userID, default first
func (uc *walletUC) ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error) {
	methods, err := uc.repo.ListPaymentMethods(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

// AddPaymentMethod validates and stores a card or PayPal account. The first
// method of a user becomes the default.
func (uc *walletUC) AddPaymentMethod(ctx context.Context, userID uuid.UUID, req models.AddPaymentMethodRequest) (*models.PaymentMethod, error) {
	method, err := uc.buildMethod(userID, req)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListPaymentMethods(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	method.IsDefault = req.MakeDefault || len(existing) == 0

	if err := uc.repo.CreatePaymentMethod(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}

	logger.Info("Payment method added",
		logger.String("user_id", userID.String()),
		logger.String("method_id", method.ID.String()),
		logger.String("type", string(method.Type)),
		logger.Bool("default", method.IsDefault))
	return method, nil
}

func (uc *walletUC) buildMethod(userID uuid.UUID, req models.AddPaymentMethodRequest) (*models.PaymentMethod, error) {
	holder := utils.SanitizeString(req.CardholderName)
	method := &models.PaymentMethod{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: uc.now(),
	}

	if req.Type == models.PaymentMethodPayPal {
		email := strings.TrimSpace(req.Email)
		if !utils.IsValidEmail(email) {
			return nil, models.NewValidationError("email", "a valid PayPal email is required")
		}
		method.Type = models.PaymentMethodPayPal
		method.Email = email
		method.CardholderName = holder
		return method, nil
	}

	if err := card.ValidateNumber(req.CardNumber); err != nil {
		return nil, err
	}
	if err := card.ValidateExpiry(req.ExpiryMonth, req.ExpiryYear, uc.now()); err != nil {
		return nil, err
	}
	if err := card.ValidateCVV(req.CVV); err != nil {
		return nil, err
	}
	if holder == "" {
		return nil, models.NewValidationError("cardholder_name", "is required")
	}
	if len(holder) > maxCardholderLength {
		return nil, models.NewValidationError("cardholder_name", "is too long")
	}

	method.Type = card.DetectType(req.CardNumber)
	method.LastFour = card.LastFour(req.CardNumber)
	method.ExpiryMonth = req.ExpiryMonth
	method.ExpiryYear = card.NormalizeYear(req.ExpiryYear)
	method.CardholderName = holder
	return method, nil
}

// DeletePaymentMethod removes a method owned by userID
func (uc *walletUC) DeletePaymentMethod(ctx context.Context, userID, methodID uuid.UUID) error {
	if _, err := uc.ownedMethod(ctx, userID, methodID); err != nil {
		return err
	}
	if err := uc.repo.DeletePaymentMethod(ctx, userID, methodID); err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}

// SetDefaultPaymentMethod makes methodID the only default method of userID
func (uc *walletUC) SetDefaultPaymentMethod(ctx context.Context, userID, methodID uuid.UUID) ([]models.PaymentMethod, error) {
	if _, err := uc.ownedMethod(ctx, userID, methodID); err != nil {
		return nil, err
	}
	if err := uc.repo.SetDefaultPaymentMethod(ctx, userID, methodID); err != nil {
		return nil, fmt.Errorf("failed to set default payment method: %w", err)
	}
	return uc.ListPaymentMethods(ctx, userID)
}

// ownedMethod hides methods of other users behind ErrNotFound
func (uc *walletUC) ownedMethod(ctx context.Context, userID, methodID uuid.UUID) (*models.PaymentMethod, error) {
	method, err := uc.repo.GetPaymentMethod(ctx, methodID)
	if errors.Is(err, models.ErrNotFound) || (err == nil && method.UserID != userID) {
		return nil, fmt.Errorf("%w: payment method %s", models.ErrNotFound, methodID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment method: %w", err)
	}
	return method, nil
}
