package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/middleware"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/wallet"
)

// WalletHandler handles HTTP requests for the wallet, its ledger and payment methods
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

func userOrReject(c echo.Context) (uuid.UUID, bool, error) {
	userID := middleware.UserIDFromContext(c)
	if userID == uuid.Nil {
		return uuid.Nil, false, utils.UnauthorizedResponse(c, "Authentication required")
	}
	return userID, true, nil
}

func filterQuery(c echo.Context) models.TransactionFilter {
	return models.TransactionFilter{
		Search:   c.QueryParam("search"),
		Type:     c.QueryParam("type"),
		Status:   c.QueryParam("status"),
		DateFrom: c.QueryParam("date_from"),
		DateTo:   c.QueryParam("date_to"),
	}
}

// GetWallet handles GET /api/v1/wallet
func (h *WalletHandler) GetWallet(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	w, err := h.walletUC.GetWallet(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to get wallet")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Wallet retrieved", w)
}

// GetSummary handles GET /api/v1/wallet/summary
func (h *WalletHandler) GetSummary(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	summary, err := h.walletUC.GetSummary(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to summarize wallet")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Wallet summary retrieved", summary)
}

// AddFunds handles POST /api/v1/wallet/funds
func (h *WalletHandler) AddFunds(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}

	var req models.AddFundsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.walletUC.AddFunds(c.Request().Context(), userID, req)
	if err != nil {
		logger.Warn("Top-up rejected",
			logger.String("user_id", userID.String()),
			logger.Float64("amount", req.Amount),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err, "Failed to add funds")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Funds added", result)
}

// ListTransactions handles GET /api/v1/wallet/transactions
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	txns, err := h.walletUC.ListTransactions(c.Request().Context(), userID, filterQuery(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to list transactions")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", txns)
}

// ExportTransactions handles GET /api/v1/wallet/transactions/export
func (h *WalletHandler) ExportTransactions(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}

	var buf bytes.Buffer
	if err := h.walletUC.ExportTransactions(c.Request().Context(), userID, filterQuery(c), &buf); err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to export transactions")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "transactions.csv"))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ListPaymentMethods handles GET /api/v1/payment-methods
func (h *WalletHandler) ListPaymentMethods(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	methods, err := h.walletUC.ListPaymentMethods(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to list payment methods")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment methods retrieved", methods)
}

// AddPaymentMethod handles POST /api/v1/payment-methods
func (h *WalletHandler) AddPaymentMethod(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}

	var req models.AddPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	method, err := h.walletUC.AddPaymentMethod(c.Request().Context(), userID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to add payment method")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment method added", method)
}

// DeletePaymentMethod handles DELETE /api/v1/payment-methods/:id
func (h *WalletHandler) DeletePaymentMethod(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	methodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment method ID")
	}

	if err := h.walletUC.DeletePaymentMethod(c.Request().Context(), userID, methodID); err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to delete payment method")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment method deleted", nil)
}

// SetDefaultPaymentMethod handles PUT /api/v1/payment-methods/:id/default
func (h *WalletHandler) SetDefaultPaymentMethod(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	methodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment method ID")
	}

	methods, err := h.walletUC.SetDefaultPaymentMethod(c.Request().Context(), userID, methodID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to set default payment method")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Default payment method updated", methods)
}

// WalletView handles GET /api/v1/views/payment-wallet-management
func (h *WalletHandler) WalletView(c echo.Context) error {
	userID, ok, err := userOrReject(c)
	if !ok {
		return err
	}
	view, err := h.walletUC.GetWalletView(c.Request().Context(), userID, filterQuery(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to load wallet")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Wallet view retrieved", view)
}
