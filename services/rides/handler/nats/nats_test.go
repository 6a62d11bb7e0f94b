package nats

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/models"
	natspkg "github.com/piresc/pullup/internal/pkg/nats"
	"github.com/piresc/pullup/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notification struct {
	userID uuid.UUID
	event  string
	data   interface{}
}

// recordingNotifier collects what would be pushed to WebSocket clients
type recordingNotifier struct {
	mu    sync.Mutex
	sent  []notification
	added chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{added: make(chan struct{}, 16)}
}

func (n *recordingNotifier) NotifyUser(userID uuid.UUID, event string, data interface{}) {
	n.mu.Lock()
	n.sent = append(n.sent, notification{userID: userID, event: event, data: data})
	n.mu.Unlock()
	n.added <- struct{}{}
}

func (n *recordingNotifier) all() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.sent...)
}

func testConfig() *models.Config {
	return &models.Config{Rides: models.RidesConfig{CommissionRate: 0.2}}
}

func assignedRide(status models.RideStatus) models.Ride {
	driverID := uuid.New()
	return models.Ride{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		DriverID:    &driverID,
		Status:      status,
		Fare:        models.FareBreakdown{Total: 20},
		Driver:      &models.DriverCard{ID: driverID, Name: "Ben"},
		Passenger:   models.PassengerCard{Name: "Ana"},
	}
}

func rideEvent(t *testing.T, ride models.Ride, previous models.RideStatus) []byte {
	t.Helper()
	data, err := json.Marshal(models.RideEvent{Ride: ride, Previous: previous, Timestamp: time.Now()})
	require.NoError(t, err)
	return data
}

func TestHandleRideUpdated_RoleSpecificViews(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTrackingUC(ctrl)
	notifier := newRecordingNotifier()
	h := NewRidesHandler(uc, notifier, nil, testConfig(), nil)
	ride := assignedRide(models.RideStatusInProgress)

	// Act
	err := h.handleRideUpdated(context.Background(), rideEvent(t, ride, models.RideStatusArrived))

	// Assert
	require.NoError(t, err)
	sent := notifier.all()
	require.Len(t, sent, 2)

	assert.Equal(t, ride.PassengerID, sent[0].userID)
	assert.Equal(t, constants.EventRideUpdated, sent[0].event)
	riderUpdate := sent[0].data.(RideUpdate)
	require.NotNil(t, riderUpdate.Rider)
	assert.Nil(t, riderUpdate.Driver)
	assert.Equal(t, models.RideStatusArrived, riderUpdate.Previous)

	assert.Equal(t, *ride.DriverID, sent[1].userID)
	driverUpdate := sent[1].data.(RideUpdate)
	require.NotNil(t, driverUpdate.Driver)
	assert.Nil(t, driverUpdate.Rider)
	assert.InDelta(t, 16.0, driverUpdate.Driver.Earnings, 0.001)
}

func TestHandleRideUpdated_SearchingNotifiesPassengerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTrackingUC(ctrl)
	notifier := newRecordingNotifier()
	h := NewRidesHandler(uc, notifier, nil, testConfig(), nil)
	ride := models.Ride{ID: uuid.New(), PassengerID: uuid.New(), Status: models.RideStatusSearching}

	err := h.handleRideUpdated(context.Background(), rideEvent(t, ride, ""))

	require.NoError(t, err)
	sent := notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, ride.PassengerID, sent[0].userID)
}

func TestHandleRideUpdated_TerminalReleasesTracking(t *testing.T) {
	tests := []struct {
		name       string
		status     models.RideStatus
		releaseErr error
		wantErr    bool
	}{
		{name: "completed", status: models.RideStatusCompleted},
		{name: "cancelled", status: models.RideStatusCancelled},
		{name: "release failure", status: models.RideStatusCompleted, releaseErr: errors.New("redis down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockTrackingUC(ctrl)
			h := NewRidesHandler(uc, newRecordingNotifier(), nil, testConfig(), nil)
			ride := assignedRide(tt.status)

			uc.EXPECT().ReleaseRide(gomock.Any(), ride.ID).Return(tt.releaseErr)

			err := h.handleRideUpdated(context.Background(), rideEvent(t, ride, models.RideStatusInProgress))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHandleRideUpdated_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRidesHandler(mocks.NewMockTrackingUC(ctrl), newRecordingNotifier(), nil, testConfig(), nil)

	err := h.handleRideUpdated(context.Background(), []byte("{not json"))

	assert.Error(t, err)
}

func TestHandleRideMessage_FansOutToRecipients(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := newRecordingNotifier()
	h := NewRidesHandler(mocks.NewMockTrackingUC(ctrl), notifier, nil, testConfig(), nil)
	recipients := []uuid.UUID{uuid.New(), uuid.New()}
	data, err := json.Marshal(models.MessageEvent{
		Message:    models.ChatMessage{Text: "I'm here"},
		Recipients: recipients,
	})
	require.NoError(t, err)

	err = h.handleRideMessage(context.Background(), data)

	require.NoError(t, err)
	sent := notifier.all()
	require.Len(t, sent, 2)
	for i, n := range sent {
		assert.Equal(t, recipients[i], n.userID)
		assert.Equal(t, constants.EventRideMessage, n.event)
		assert.Equal(t, "I'm here", n.data.(models.ChatMessage).Text)
	}
}

func TestHandleRideMessage_NoRecipients(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := newRecordingNotifier()
	h := NewRidesHandler(mocks.NewMockTrackingUC(ctrl), notifier, nil, testConfig(), nil)
	data, err := json.Marshal(models.MessageEvent{Message: models.ChatMessage{RideID: uuid.New(), Text: "hello"}})
	require.NoError(t, err)

	err = h.handleRideMessage(context.Background(), data)

	require.NoError(t, err)
	assert.Empty(t, notifier.all())
}

func TestInitNATSConsumers_DeliversOverBroker(t *testing.T) {
	s := natsserver.RunRandClientPortServer()
	defer s.Shutdown()
	client, err := natspkg.NewClient(s.ClientURL(), "rides-consumer-test")
	require.NoError(t, err)
	defer client.Close()

	ctrl := gomock.NewController(t)
	notifier := newRecordingNotifier()
	h := NewRidesHandler(mocks.NewMockTrackingUC(ctrl), notifier, client, testConfig(), nil)
	require.NoError(t, h.InitNATSConsumers())
	defer h.Close()
	require.NoError(t, client.Flush())

	recipient := uuid.New()
	require.NoError(t, client.PublishJSON(constants.SubjectRideMessage, models.MessageEvent{
		Message:    models.ChatMessage{Text: "Running late"},
		Recipients: []uuid.UUID{recipient},
	}))

	select {
	case <-notifier.added:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
	sent := notifier.all()
	require.Len(t, sent, 1)
	assert.Equal(t, recipient, sent[0].userID)
}
