package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/pkg/realtime"
	"github.com/piresc/pullup/internal/pkg/websocket"
	"github.com/piresc/pullup/services/users"
)

// Inbound events accepted on the realtime feed
const (
	EventSubscribe   = "subscribe"
	EventUnsubscribe = "unsubscribe"
)

type subscribeRequest struct {
	Channel string `json:"channel"`
}

type unsubscribeRequest struct {
	Handle string `json:"handle"`
}

// Subscription acknowledges a subscribe or unsubscribe request
type Subscription struct {
	Handle  string `json:"handle"`
	Channel string `json:"channel,omitempty"`
	Active  bool   `json:"active"`
}

// ChangeMessage is one row change pushed to a client
type ChangeMessage struct {
	Handle string          `json:"handle"`
	Change realtime.Change `json:"change"`
}

// RealtimeHandler serves row change subscriptions at /ws/realtime
type RealtimeHandler struct {
	manager    *websocket.Manager
	realtimeUC users.RealtimeUC

	mu      sync.Mutex
	handles map[*websocket.Client]map[string]struct{}
}

// NewRealtimeHandler creates a new realtime feed handler
func NewRealtimeHandler(manager *websocket.Manager, realtimeUC users.RealtimeUC) *RealtimeHandler {
	return &RealtimeHandler{
		manager:    manager,
		realtimeUC: realtimeUC,
		handles:    make(map[*websocket.Client]map[string]struct{}),
	}
}

// HandleWebSocket upgrades the request and serves subscriptions until the client leaves
func (h *RealtimeHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, nil, h.handleMessage, h.release)
}

func (h *RealtimeHandler) handleMessage(client *websocket.Client, msg websocket.WSMessage) error {
	switch msg.Event {
	case EventSubscribe:
		var req subscribeRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return fmt.Errorf("invalid subscribe payload")
		}
		return h.subscribe(client, req.Channel)
	case EventUnsubscribe:
		var req unsubscribeRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil || req.Handle == "" {
			return fmt.Errorf("invalid unsubscribe payload")
		}
		return h.unsubscribe(client, req.Handle)
	default:
		return fmt.Errorf("unsupported event: %s", msg.Event)
	}
}

func (h *RealtimeHandler) subscribe(client *websocket.Client, channel string) error {
	var handle string
	ready := make(chan struct{})
	deliver := func(change realtime.Change) {
		<-ready
		if err := client.Send(constants.EventRealtimeChange, ChangeMessage{Handle: handle, Change: change}); err != nil {
			logger.Debug("Realtime delivery failed", logger.String("handle", handle), logger.Err(err))
		}
	}

	var result models.Result[string]
	switch channel {
	case constants.ChannelUserProfile:
		result = h.realtimeUC.SubscribeToUserProfile(client.Caller.ID, deliver)
	case constants.ChannelDriverLocations:
		result = h.realtimeUC.SubscribeToDriverLocations(deliver)
	default:
		return fmt.Errorf("unknown channel: %s", channel)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	handle = result.Data
	close(ready)

	h.mu.Lock()
	set, ok := h.handles[client]
	if !ok {
		set = make(map[string]struct{})
		h.handles[client] = set
	}
	set[handle] = struct{}{}
	h.mu.Unlock()

	return client.Send(constants.EventRealtimeSubscribed, Subscription{Handle: handle, Channel: channel, Active: true})
}

func (h *RealtimeHandler) unsubscribe(client *websocket.Client, handle string) error {
	h.mu.Lock()
	_, owned := h.handles[client][handle]
	delete(h.handles[client], handle)
	h.mu.Unlock()

	if !owned {
		return fmt.Errorf("unknown subscription: %s", handle)
	}
	if result := h.realtimeUC.Unsubscribe(handle); !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	return client.Send(constants.EventRealtimeSubscribed, Subscription{Handle: handle, Active: false})
}

// release drops every subscription of a disconnected client
func (h *RealtimeHandler) release(client *websocket.Client) {
	h.mu.Lock()
	set := h.handles[client]
	delete(h.handles, client)
	h.mu.Unlock()

	for handle := range set {
		h.realtimeUC.Unsubscribe(handle)
	}
}

// Subscriptions returns the number of live subscriptions across clients
func (h *RealtimeHandler) Subscriptions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, set := range h.handles {
		n += len(set)
	}
	return n
}
