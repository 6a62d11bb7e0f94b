package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	natspkg "github.com/piresc/pullup/internal/pkg/nats"
	nrpkg "github.com/piresc/pullup/internal/pkg/newrelic"
	"github.com/piresc/pullup/services/wallet"
)

// SettlementHandler records ledger entries for completed rides. Instances share
// a queue group so each event is settled once per deployment.
type SettlementHandler struct {
	walletUC   wallet.WalletUC
	natsClient *natspkg.Client
	sub        *nats.Subscription
	nrApp      *newrelic.Application
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(walletUC wallet.WalletUC, client *natspkg.Client, nrApp *newrelic.Application) *SettlementHandler {
	return &SettlementHandler{walletUC: walletUC, natsClient: client, nrApp: nrApp}
}

// InitNATSConsumers subscribes to ride.completed in the settlement queue group
func (h *SettlementHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectRideCompleted, constants.QueueWalletSettlement, func(msg *nats.Msg) {
		ctx, end := nrpkg.StartBackground(context.Background(), h.nrApp, "nats/"+constants.SubjectRideCompleted)
		defer end()
		if err := h.handleRideCompleted(ctx, msg.Data); err != nil {
			nrpkg.NoticeError(ctx, err)
			logger.ErrorCtx(ctx, "Failed to settle ride", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectRideCompleted, err)
	}
	h.sub = sub
	logger.Info("Wallet settlement consumer started",
		logger.String("subject", constants.SubjectRideCompleted),
		logger.String("queue", constants.QueueWalletSettlement))
	return nil
}

// Close unsubscribes the consumer
func (h *SettlementHandler) Close() {
	if h.sub != nil {
		_ = h.sub.Unsubscribe()
		h.sub = nil
	}
}

func (h *SettlementHandler) handleRideCompleted(ctx context.Context, data []byte) error {
	var event models.RideCompletedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal ride completed event: %w", err)
	}
	if err := h.walletUC.SettleRide(ctx, event); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Ride settled", logger.String("ride_id", event.RideID.String()))
	return nil
}
