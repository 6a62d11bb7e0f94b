package handler

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/models"
	httphandler "github.com/piresc/pullup/services/wallet/handler/http"
	natshandler "github.com/piresc/pullup/services/wallet/handler/nats"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "routes-secret"}}
	h := NewHandler(httphandler.NewWalletHandler(nil), natshandler.NewSettlementHandler(nil, nil, nil), cfg)
	e := echo.New()

	h.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, route := range []string{
		"GET /api/v1/wallet",
		"GET /api/v1/wallet/summary",
		"POST /api/v1/wallet/funds",
		"GET /api/v1/wallet/transactions",
		"GET /api/v1/wallet/transactions/export",
		"GET /api/v1/payment-methods",
		"POST /api/v1/payment-methods",
		"DELETE /api/v1/payment-methods/:id",
		"PUT /api/v1/payment-methods/:id/default",
		"GET /api/v1/views/payment-wallet-management",
	} {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
