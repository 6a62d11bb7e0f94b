package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/database"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides"
)

// TrackingRepo keeps the live state of active rides in Redis
type TrackingRepo struct {
	redisClient *database.RedisClient
	locationTTL time.Duration
	messageTTL  time.Duration
}

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(cfg *models.Config, redisClient *database.RedisClient) rides.TrackingRepo {
	return &TrackingRepo{
		redisClient: redisClient,
		locationTTL: time.Duration(cfg.Rides.LocationTTLSeconds) * time.Second,
		messageTTL:  time.Duration(cfg.Rides.MessageTTLSeconds) * time.Second,
	}
}

// SavePosition overwrites the last known vehicle position of a ride
func (r *TrackingRepo) SavePosition(ctx context.Context, rideID uuid.UUID, pos models.VehiclePosition) error {
	key := fmt.Sprintf(constants.KeyRideLocation, rideID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(pos.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(pos.Longitude, 'f', -1, 64),
		constants.FieldHeading:   strconv.FormatFloat(pos.Heading, 'f', -1, 64),
		constants.FieldTimestamp: pos.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if err := r.redisClient.HSetWithTTL(ctx, key, fields, r.locationTTL); err != nil {
		return fmt.Errorf("failed to store position: %w", err)
	}
	return nil
}

// GetPosition returns the last known vehicle position, nil when none was reported
func (r *TrackingRepo) GetPosition(ctx context.Context, rideID uuid.UUID) (*models.VehiclePosition, error) {
	values, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyRideLocation, rideID))
	if err != nil {
		return nil, fmt.Errorf("failed to read position: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	var pos models.VehiclePosition
	if pos.Latitude, err = strconv.ParseFloat(values[constants.FieldLatitude], 64); err != nil {
		return nil, fmt.Errorf("invalid stored latitude: %w", err)
	}
	if pos.Longitude, err = strconv.ParseFloat(values[constants.FieldLongitude], 64); err != nil {
		return nil, fmt.Errorf("invalid stored longitude: %w", err)
	}
	pos.Heading, _ = strconv.ParseFloat(values[constants.FieldHeading], 64)
	pos.Timestamp, _ = time.Parse(time.RFC3339Nano, values[constants.FieldTimestamp])
	return &pos, nil
}

// AppendMessage adds msg to the chat history of its ride
func (r *TrackingRepo) AppendMessage(ctx context.Context, msg models.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	key := fmt.Sprintf(constants.KeyRideMessages, msg.RideID)
	if err := r.redisClient.RPushWithTTL(ctx, key, r.messageTTL, data); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// ListMessages returns the chat history of a ride, oldest first
func (r *TrackingRepo) ListMessages(ctx context.Context, rideID uuid.UUID) ([]models.ChatMessage, error) {
	items, err := r.redisClient.LRange(ctx, fmt.Sprintf(constants.KeyRideMessages, rideID), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	messages := make([]models.ChatMessage, 0, len(items))
	for _, item := range items {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// SaveShareLink stores link under its token and indexes it by ride; both expire with the link
func (r *TrackingRepo) SaveShareLink(ctx context.Context, link models.ShareLink) error {
	ttl := time.Until(link.ExpiresAt)
	if ttl <= 0 {
		return models.NewValidationError("expires_at", "share link is already expired")
	}
	data, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to encode share link: %w", err)
	}

	pipe := r.redisClient.Client.TxPipeline()
	pipe.Set(ctx, fmt.Sprintf(constants.KeyRideShare, link.Token), data, ttl)
	pipe.Set(ctx, fmt.Sprintf(constants.KeyRideShareRef, link.RideID), link.Token, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store share link: %w", err)
	}
	return nil
}

// GetShareLink resolves a share token
func (r *TrackingRepo) GetShareLink(ctx context.Context, token string) (*models.ShareLink, error) {
	data, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyRideShare, token))
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: share link", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read share link: %w", err)
	}

	var link models.ShareLink
	if err := json.Unmarshal([]byte(data), &link); err != nil {
		return nil, fmt.Errorf("failed to decode share link: %w", err)
	}
	return &link, nil
}

// GetRideShareLink returns the live share link of a ride
func (r *TrackingRepo) GetRideShareLink(ctx context.Context, rideID uuid.UUID) (*models.ShareLink, error) {
	token, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyRideShareRef, rideID))
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: share link", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read share link: %w", err)
	}
	return r.GetShareLink(ctx, token)
}

// ClearRide removes the position, chat and share index of a finished ride.
// Outstanding share tokens keep resolving until they expire.
func (r *TrackingRepo) ClearRide(ctx context.Context, rideID uuid.UUID) error {
	keys := []string{
		fmt.Sprintf(constants.KeyRideLocation, rideID),
		fmt.Sprintf(constants.KeyRideMessages, rideID),
		fmt.Sprintf(constants.KeyRideShareRef, rideID),
	}
	if err := r.redisClient.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear ride state: %w", err)
	}
	return nil
}
