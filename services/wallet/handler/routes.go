package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/middleware"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/wallet/handler/http"
	"github.com/piresc/pullup/services/wallet/handler/nats"
)

// Handler coordinates all protocol handlers for the wallet service
type Handler struct {
	walletHandler     *http.WalletHandler
	settlementHandler *nats.SettlementHandler
	cfg               *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(walletHandler *http.WalletHandler, settlementHandler *nats.SettlementHandler, cfg *models.Config) *Handler {
	return &Handler{
		walletHandler:     walletHandler,
		settlementHandler: settlementHandler,
		cfg:               cfg,
	}
}

// InitNATSConsumers starts the ride settlement consumer
func (h *Handler) InitNATSConsumers() error {
	return h.settlementHandler.InitNATSConsumers()
}

// Close stops the NATS consumers
func (h *Handler) Close() {
	h.settlementHandler.Close()
}

// RegisterRoutes registers the wallet routes, all behind JWT authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	walletGroup := api.Group("/wallet")
	walletGroup.GET("", h.walletHandler.GetWallet)
	walletGroup.GET("/summary", h.walletHandler.GetSummary)
	walletGroup.POST("/funds", h.walletHandler.AddFunds)
	walletGroup.GET("/transactions", h.walletHandler.ListTransactions)
	walletGroup.GET("/transactions/export", h.walletHandler.ExportTransactions)

	methods := api.Group("/payment-methods")
	methods.GET("", h.walletHandler.ListPaymentMethods)
	methods.POST("", h.walletHandler.AddPaymentMethod)
	methods.DELETE("/:id", h.walletHandler.DeletePaymentMethod)
	methods.PUT("/:id/default", h.walletHandler.SetDefaultPaymentMethod)

	api.GET("/views/payment-wallet-management", h.walletHandler.WalletView)
}
