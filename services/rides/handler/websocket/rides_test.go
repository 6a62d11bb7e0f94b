package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/constants"
	jwtpkg "github.com/piresc/pullup/internal/pkg/jwt"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/websocket"
	"github.com/piresc/pullup/services/rides/mocks"
	"github.com/piresc/pullup/services/rides/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "feed-secret", Expiration: 10, Issuer: "pullup-test"}

func startFeed(t *testing.T, uc *mocks.MockTrackingUC) *httptest.Server {
	t.Helper()
	h := NewRideFeedHandler(websocket.NewManager(testJWT, "rides"), uc)
	e := echo.New()
	e.GET("/ws/rides", h.HandleWebSocket)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func connect(t *testing.T, srv *httptest.Server, caller models.Caller) *gws.Conn {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(caller, testJWT)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/rides"
	header := map[string][]string{"Authorization": {"Bearer " + token}}
	conn, _, err := gws.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func next(t *testing.T, conn *gws.Conn) websocket.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg websocket.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestRideFeed_SnapshotWithoutActiveRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTrackingUC(ctrl)
	caller := models.Caller{ID: uuid.New(), Role: models.RoleRider, Name: "Ana"}

	uc.EXPECT().GetActiveTracking(gomock.Any(), caller).Return(nil, models.ErrNotFound)

	conn := connect(t, startFeed(t, uc), caller)

	msg := next(t, conn)
	assert.Equal(t, constants.EventRideSnapshot, msg.Event)
	assert.Equal(t, "null", string(msg.Data))
}

func TestRideFeed_SnapshotAndRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTrackingUC(ctrl)
	caller := models.Caller{ID: uuid.New(), Role: models.RoleRider, Name: "Ana"}
	view := &projection.TrackingView{RideID: uuid.New(), Status: models.RideStatusInProgress, ETAMinutes: 7}

	uc.EXPECT().GetActiveTracking(gomock.Any(), caller).Return(view, nil).Times(2)

	conn := connect(t, startFeed(t, uc), caller)

	first := next(t, conn)
	require.Equal(t, constants.EventRideSnapshot, first.Event)
	var got projection.TrackingView
	require.NoError(t, json.Unmarshal(first.Data, &got))
	assert.Equal(t, view.RideID, got.RideID)
	assert.Equal(t, 7, got.ETAMinutes)

	require.NoError(t, conn.WriteJSON(websocket.WSMessage{Event: EventRefresh}))
	second := next(t, conn)
	assert.Equal(t, constants.EventRideSnapshot, second.Event)
}

func TestRideFeed_SnapshotFailureReportsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTrackingUC(ctrl)
	caller := models.Caller{ID: uuid.New(), Role: models.RoleDriver, Name: "Ben"}

	uc.EXPECT().GetActiveTracking(gomock.Any(), caller).Return(nil, errors.New("redis down"))

	conn := connect(t, startFeed(t, uc), caller)

	msg := next(t, conn)
	assert.Equal(t, constants.EventError, msg.Event)
	assert.Contains(t, string(msg.Data), "connect_failed")
}

func TestRideFeed_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTrackingUC(ctrl)
	caller := models.Caller{ID: uuid.New(), Role: models.RoleRider, Name: "Ana"}
	rideID := uuid.New()

	uc.EXPECT().GetActiveTracking(gomock.Any(), caller).Return(nil, models.ErrNotFound)
	sent := make(chan string, 1)
	uc.EXPECT().SendMessage(gomock.Any(), caller, rideID, "On my way down").
		DoAndReturn(func(_ context.Context, _ models.Caller, _ uuid.UUID, text string) (*models.ChatMessage, error) {
			sent <- text
			return &models.ChatMessage{Text: text}, nil
		})

	conn := connect(t, startFeed(t, uc), caller)
	next(t, conn)

	data, err := json.Marshal(sendMessageRequest{RideID: rideID, Text: "On my way down"})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(websocket.WSMessage{Event: EventSendMessage, Data: data}))

	select {
	case text := <-sent:
		assert.Equal(t, "On my way down", text)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not forwarded")
	}
}

func TestRideFeed_UpdatePositionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTrackingUC(ctrl)
	caller := models.Caller{ID: uuid.New(), Role: models.RoleRider, Name: "Ana"}
	rideID := uuid.New()

	uc.EXPECT().GetActiveTracking(gomock.Any(), caller).Return(nil, models.ErrNotFound)
	uc.EXPECT().UpdatePosition(gomock.Any(), caller, rideID, gomock.Any()).Return(models.ErrForbidden)

	conn := connect(t, startFeed(t, uc), caller)
	next(t, conn)

	data, err := json.Marshal(updatePositionRequest{RideID: rideID, Latitude: 40.7, Longitude: -74.0})
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(websocket.WSMessage{Event: EventUpdatePosition, Data: data}))

	msg := next(t, conn)
	assert.Equal(t, constants.EventError, msg.Event)
	assert.Contains(t, string(msg.Data), "invalid_request")
}

func TestRideFeed_UnsupportedEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTrackingUC(ctrl)
	caller := models.Caller{ID: uuid.New(), Role: models.RoleRider, Name: "Ana"}

	uc.EXPECT().GetActiveTracking(gomock.Any(), caller).Return(nil, models.ErrNotFound)

	conn := connect(t, startFeed(t, uc), caller)
	next(t, conn)

	require.NoError(t, conn.WriteJSON(websocket.WSMessage{Event: "dance"}))
	msg := next(t, conn)
	assert.Equal(t, constants.EventError, msg.Event)
	assert.Contains(t, string(msg.Data), "unsupported event: dance")

	require.NoError(t, conn.WriteJSON(websocket.WSMessage{Event: constants.EventPing}))
	assert.Equal(t, constants.EventPong, next(t, conn).Event)
}
