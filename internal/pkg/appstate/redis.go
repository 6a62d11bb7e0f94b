package appstate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/database"
	"github.com/piresc/pullup/internal/pkg/models"
)

// RedisPersister keeps app state in one hash per user
type RedisPersister struct {
	redis *database.RedisClient
}

func NewRedisPersister(redis *database.RedisClient) *RedisPersister {
	return &RedisPersister{redis: redis}
}

func (p *RedisPersister) Load(ctx context.Context, userID uuid.UUID) (*State, error) {
	fields, err := p.redis.HGetAll(ctx, fmt.Sprintf(constants.KeyAppState, userID))
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	st := Default(userID)
	if mode := models.Mode(fields[constants.FieldMode]); mode.Valid() {
		st.Mode = mode
	}
	if raw := fields[constants.FieldActiveRideID]; raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			st.ActiveRideID = &id
		}
	}
	if raw := fields[constants.FieldUpdatedAt]; raw != "" {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			st.UpdatedAt = ts
		}
	}
	return &st, nil
}

func (p *RedisPersister) Save(ctx context.Context, state State) error {
	active := ""
	if state.ActiveRideID != nil {
		active = state.ActiveRideID.String()
	}
	return p.redis.HSetWithTTL(ctx, fmt.Sprintf(constants.KeyAppState, state.UserID), map[string]interface{}{
		constants.FieldMode:         string(state.Mode),
		constants.FieldActiveRideID: active,
		constants.FieldUpdatedAt:    state.UpdatedAt.Format(time.RFC3339Nano),
	}, 0)
}
