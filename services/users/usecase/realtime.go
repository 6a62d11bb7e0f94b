package usecase

import (
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/users"
)

// realtimeUC implements users.RealtimeUC
type realtimeUC struct {
	gw users.UserGW
}

// NewRealtimeUC creates the realtime subscription use case
func NewRealtimeUC(gw users.UserGW) users.RealtimeUC {
	return &realtimeUC{gw: gw}
}

func (uc *realtimeUC) SubscribeToUserProfile(userID uuid.UUID, handler realtime.Handler) models.Result[string] {
	if userID == uuid.Nil {
		return utils.AdapterResult[string](models.NewValidationError("user_id", "is required"), "Failed to subscribe to profile updates.")
	}
	handle, err := uc.gw.SubscribeUserProfile(userID, handler)
	if err != nil {
		return utils.AdapterResult[string](err, "Failed to subscribe to profile updates.")
	}
	return models.Ok(handle)
}

func (uc *realtimeUC) SubscribeToDriverLocations(handler realtime.Handler) models.Result[string] {
	handle, err := uc.gw.SubscribeDriverLocations(handler)
	if err != nil {
		return utils.AdapterResult[string](err, "Failed to subscribe to driver locations.")
	}
	return models.Ok(handle)
}

// Unsubscribe releases handle. An empty handle is a no-op.
func (uc *realtimeUC) Unsubscribe(handle string) models.Result[struct{}] {
	if handle == "" {
		return models.Ok(struct{}{})
	}
	if err := uc.gw.Unsubscribe(handle); err != nil {
		logger.Debug("Unsubscribe failed", logger.String("handle", handle), logger.Err(err))
		return utils.AdapterResult[struct{}](err, "Failed to unsubscribe.")
	}
	return models.Ok(struct{}{})
}
