package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/piresc/pullup/services/rides"
	"github.com/piresc/pullup/services/rides/callsession"
	"github.com/piresc/pullup/services/rides/fare"
	"github.com/piresc/pullup/services/rides/lifecycle"
	"github.com/piresc/pullup/services/rides/projection"
)

const (
	maxMessageLength = 500
	shareTokenLength = 24
)

// trackingUC implements rides.TrackingUC
type trackingUC struct {
	cfg          *models.Config
	catalog      *fare.Catalog
	rideRepo     rides.RideRepo
	trackingRepo rides.TrackingRepo
	rideGW       rides.RideGW
	calls        *callsession.Manager
	responder    *AutoResponder
	now          func() time.Time
}

// NewTrackingUC creates the active ride tracking use case. responder may be nil.
func NewTrackingUC(
	cfg *models.Config,
	catalog *fare.Catalog,
	rideRepo rides.RideRepo,
	trackingRepo rides.TrackingRepo,
	rideGW rides.RideGW,
	calls *callsession.Manager,
	responder *AutoResponder,
) rides.TrackingUC {
	return &trackingUC{
		cfg:          cfg,
		catalog:      catalog,
		rideRepo:     rideRepo,
		trackingRepo: trackingRepo,
		rideGW:       rideGW,
		calls:        calls,
		responder:    responder,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// UpdatePosition records the vehicle position reported by the driver
func (uc *trackingUC) UpdatePosition(ctx context.Context, caller models.Caller, rideID uuid.UUID, pos models.VehiclePosition) error {
	if !utils.ValidCoordinates(pos.Latitude, pos.Longitude) {
		return models.NewValidationError("position", "coordinates are out of range")
	}
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}
	if !canActAsDriver(uc.catalog, ride, caller) {
		return fmt.Errorf("%w: only the assigned driver reports positions", models.ErrForbidden)
	}
	if !lifecycle.IsActive(ride.Status) {
		return fmt.Errorf("%w: ride is %s", models.ErrConflict, ride.Status)
	}
	if pos.Timestamp.IsZero() {
		pos.Timestamp = uc.now()
	}
	return uc.trackingRepo.SavePosition(ctx, rideID, pos)
}

// GetTracking returns the live view of a ride for one of its participants
func (uc *trackingUC) GetTracking(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*projection.TrackingView, error) {
	ride, err := uc.participantRide(ctx, caller, rideID)
	if err != nil {
		return nil, err
	}
	return uc.trackingView(ctx, ride, caller), nil
}

// GetActiveTracking returns the live view of the caller's active ride
func (uc *trackingUC) GetActiveTracking(ctx context.Context, caller models.Caller) (*projection.TrackingView, error) {
	ride, err := uc.rideRepo.GetActiveRideByPassenger(ctx, caller.ID)
	if errors.Is(err, models.ErrNotFound) {
		ride, err = uc.rideRepo.GetActiveRideByDriver(ctx, caller.ID)
	}
	if err != nil {
		return nil, err
	}
	return uc.trackingView(ctx, ride, caller), nil
}

func (uc *trackingUC) trackingView(ctx context.Context, ride *models.Ride, caller models.Caller) *projection.TrackingView {
	pos, err := uc.trackingRepo.GetPosition(ctx, ride.ID)
	if err != nil {
		logger.Warn("Vehicle position unavailable", logger.String("ride_id", ride.ID.String()), logger.Err(err))
		pos = nil
	}
	share, err := uc.trackingRepo.GetRideShareLink(ctx, ride.ID)
	if err != nil {
		share = nil
	}

	role := models.RoleRider
	if ride.DriverID != nil && *ride.DriverID == caller.ID {
		role = models.RoleDriver
	}
	view := projection.Tracking(*ride, role, pos, share, uc.catalog.AverageSpeedKmh)
	return &view
}

// QuickMessages returns the canned chat messages
func (uc *trackingUC) QuickMessages() []string {
	out := make([]string, len(uc.catalog.QuickMessages))
	copy(out, uc.catalog.QuickMessages)
	return out
}

// SendMessage posts a chat message to the other participant
func (uc *trackingUC) SendMessage(ctx context.Context, caller models.Caller, rideID uuid.UUID, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("text", "is required")
	}
	if len(text) > maxMessageLength {
		return nil, models.NewValidationError("text", fmt.Sprintf("must be at most %d characters", maxMessageLength))
	}

	ride, err := uc.participantRide(ctx, caller, rideID)
	if err != nil {
		return nil, err
	}
	if !lifecycle.IsActive(ride.Status) {
		return nil, fmt.Errorf("%w: ride is %s", models.ErrConflict, ride.Status)
	}

	sender, counterpart := models.SenderRider, models.SenderDriver
	if ride.DriverID != nil && *ride.DriverID == caller.ID {
		sender, counterpart = models.SenderDriver, models.SenderRider
	}
	senderID := caller.ID
	msg := models.ChatMessage{
		ID:        uuid.New(),
		RideID:    ride.ID,
		Sender:    sender,
		SenderID:  &senderID,
		Text:      text,
		Timestamp: uc.now(),
	}
	if err := uc.trackingRepo.AppendMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	recipients := participants(ride)
	if err := uc.rideGW.PublishMessage(ctx, models.MessageEvent{Message: msg, Recipients: recipients}); err != nil {
		logger.Warn("Failed to publish chat message", logger.String("ride_id", ride.ID.String()), logger.Err(err))
	}

	if uc.responder != nil && ride.DriverID != nil {
		var replyID *uuid.UUID
		if counterpart == models.SenderDriver {
			replyID = ride.DriverID
		} else {
			id := ride.PassengerID
			replyID = &id
		}
		uc.responder.Respond(ride.ID, counterpart, replyID, recipients)
	}
	return &msg, nil
}

// ListMessages returns the chat history of a ride, oldest first
func (uc *trackingUC) ListMessages(ctx context.Context, caller models.Caller, rideID uuid.UUID) ([]models.ChatMessage, error) {
	if _, err := uc.participantRide(ctx, caller, rideID); err != nil {
		return nil, err
	}
	return uc.trackingRepo.ListMessages(ctx, rideID)
}

// StartCall opens the simulated call between rider and driver
func (uc *trackingUC) StartCall(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.CallSession, error) {
	ride, err := uc.participantRide(ctx, caller, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == nil || !lifecycle.IsActive(ride.Status) {
		return nil, fmt.Errorf("%w: there is nobody to call on this ride", models.ErrConflict)
	}
	session, err := uc.calls.Start(ride.ID, caller.ID)
	if err != nil {
		return nil, err
	}
	logger.Info("Call started", logger.String("ride_id", ride.ID.String()), logger.String("user_id", caller.ID.String()))
	return &session, nil
}

// EndCall hangs up the call of a ride
func (uc *trackingUC) EndCall(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.CallSession, error) {
	if _, err := uc.participantRide(ctx, caller, rideID); err != nil {
		return nil, err
	}
	session, err := uc.calls.End(rideID)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetCall returns the current or last call of a ride
func (uc *trackingUC) GetCall(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.CallSession, error) {
	if _, err := uc.participantRide(ctx, caller, rideID); err != nil {
		return nil, err
	}
	session, err := uc.calls.Status(rideID)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ShareTrip creates a read-only tracking link and notifies the recipients
func (uc *trackingUC) ShareTrip(ctx context.Context, caller models.Caller, rideID uuid.UUID, recipients []string) (*models.ShareLink, error) {
	for _, r := range recipients {
		if !utils.IsValidEmail(r) && !utils.IsValidPhoneNumber(r) {
			return nil, models.NewValidationError("recipients", fmt.Sprintf("%q is neither an email nor a phone number", r))
		}
	}

	ride, err := uc.participantRide(ctx, caller, rideID)
	if err != nil {
		return nil, err
	}
	if !lifecycle.IsActive(ride.Status) {
		return nil, fmt.Errorf("%w: ride is %s", models.ErrConflict, ride.Status)
	}

	token, err := utils.GenerateRandomString(shareTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate share token: %w", err)
	}
	link := models.ShareLink{
		Token:      token,
		RideID:     ride.ID,
		SharedBy:   caller.ID,
		URL:        strings.TrimRight(uc.cfg.Rides.ShareBaseURL, "/") + "/" + token,
		Recipients: recipients,
		ExpiresAt:  uc.now().Add(time.Duration(uc.cfg.Rides.ShareLinkTTLMinutes) * time.Minute),
	}
	if err := uc.trackingRepo.SaveShareLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to store share link: %w", err)
	}
	if err := uc.rideGW.PublishTripShared(ctx, link); err != nil {
		logger.Warn("Failed to publish trip shared event", logger.String("ride_id", ride.ID.String()), logger.Err(err))
	}
	return &link, nil
}

// GetSharedTracking returns the public view behind a share token
func (uc *trackingUC) GetSharedTracking(ctx context.Context, token string) (*projection.TrackingView, error) {
	link, err := uc.trackingRepo.GetShareLink(ctx, token)
	if err != nil {
		return nil, err
	}
	if uc.now().After(link.ExpiresAt) {
		return nil, fmt.Errorf("%w: share link expired", models.ErrNotFound)
	}

	ride, err := uc.rideRepo.GetRide(ctx, link.RideID)
	if err != nil {
		return nil, err
	}
	pos, err := uc.trackingRepo.GetPosition(ctx, ride.ID)
	if err != nil {
		pos = nil
	}
	view := projection.Public(*ride, pos, uc.catalog.AverageSpeedKmh)
	return &view, nil
}

// RaiseEmergency publishes an emergency alert with the last known position
func (uc *trackingUC) RaiseEmergency(ctx context.Context, caller models.Caller, rideID uuid.UUID, note string) (*models.EmergencyAlert, error) {
	ride, err := uc.participantRide(ctx, caller, rideID)
	if err != nil {
		return nil, err
	}
	if !lifecycle.IsActive(ride.Status) {
		return nil, fmt.Errorf("%w: ride is %s", models.ErrConflict, ride.Status)
	}

	pos, err := uc.trackingRepo.GetPosition(ctx, ride.ID)
	if err != nil {
		pos = nil
	}
	alert := models.EmergencyAlert{
		ID:       uuid.New(),
		RideID:   ride.ID,
		RaisedBy: caller.ID,
		Note:     utils.Truncate(strings.TrimSpace(note), maxMessageLength),
		Position: pos,
		RaisedAt: uc.now(),
	}
	if err := uc.rideGW.PublishEmergency(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to raise emergency: %w", err)
	}

	logger.Warn("Emergency raised",
		logger.String("ride_id", ride.ID.String()),
		logger.String("raised_by", caller.ID.String()))
	return &alert, nil
}

// ReleaseRide drops the live state of a finished ride
func (uc *trackingUC) ReleaseRide(ctx context.Context, rideID uuid.UUID) error {
	uc.calls.Forget(rideID)
	return uc.trackingRepo.ClearRide(ctx, rideID)
}

func (uc *trackingUC) participantRide(ctx context.Context, caller models.Caller, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(ride, caller.ID) {
		return nil, fmt.Errorf("%w: not a participant of this ride", models.ErrForbidden)
	}
	return ride, nil
}

func participants(ride *models.Ride) []uuid.UUID {
	ids := []uuid.UUID{ride.PassengerID}
	if ride.DriverID != nil {
		ids = append(ids, *ride.DriverID)
	}
	return ids
}
