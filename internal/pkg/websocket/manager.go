package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/pullup/internal/pkg/constants"
	jwtpkg "github.com/piresc/pullup/internal/pkg/jwt"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/metrics"
	"github.com/piresc/pullup/internal/pkg/models"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 * 1024
)

// WSMessage is the frame exchanged with clients
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// WSErrorMessage is the payload of an error event
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client is one authenticated connection. Writes are serialized.
type Client struct {
	Caller models.Caller
	conn   *websocket.Conn
	mu     sync.Mutex
}

// Send writes one event to the client
func (c *Client) Send(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(WSMessage{Event: event, Data: rawData})
}

// SendError writes an error event to the client
func (c *Client) SendError(code, message string) error {
	return c.Send(constants.EventError, WSErrorMessage{Code: code, Message: message})
}

// MessageHandler handles one inbound client frame
type MessageHandler func(client *Client, msg WSMessage) error

// Manager authenticates WebSocket connections and tracks them per user
type Manager struct {
	sync.RWMutex
	clients  map[uuid.UUID]map[*Client]struct{}
	cfg      models.JWTConfig
	feed     string
	upgrader websocket.Upgrader
}

// NewManager creates a manager for the named feed
func NewManager(jwtConfig models.JWTConfig, feed string) *Manager {
	return &Manager{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		cfg:     jwtConfig,
		feed:    feed,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, upgrades and serves one connection until it closes.
// onConnect runs once after registration; onMessage runs per inbound frame.
// onClose runs after the client is unregistered.
func (m *Manager) HandleConnection(c echo.Context, onConnect func(*Client) error, onMessage MessageHandler, onClose func(*Client)) error {
	caller, err := m.authenticate(c.Request())
	if err != nil {
		return err
	}

	conn, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{Caller: caller, conn: conn}
	m.AddClient(client)
	defer func() {
		m.RemoveClient(client)
		if onClose != nil {
			onClose(client)
		}
		conn.Close()
	}()

	if onConnect != nil {
		if err := onConnect(client); err != nil {
			logger.Warn("WebSocket connect hook failed",
				logger.String("feed", m.feed),
				logger.String("user_id", caller.ID.String()),
				logger.Err(err))
			_ = client.SendError("connect_failed", err.Error())
		}
	}

	conn.SetReadLimit(maxMessageSize)
	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed", logger.String("feed", m.feed), logger.Err(err))
			}
			return nil
		}

		if msg.Event == constants.EventPing {
			_ = client.Send(constants.EventPong, nil)
			continue
		}
		if onMessage == nil {
			continue
		}
		if err := onMessage(client, msg); err != nil {
			_ = client.SendError("invalid_request", err.Error())
		}
	}
}

func (m *Manager) authenticate(r *http.Request) (models.Caller, error) {
	token := jwtpkg.ExtractToken(r)
	if token == "" {
		return models.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return models.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	caller, err := claims.Caller()
	if err != nil {
		return models.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return caller, nil
}

// AddClient registers a connection
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	set, ok := m.clients[client.Caller.ID]
	if !ok {
		set = make(map[*Client]struct{})
		m.clients[client.Caller.ID] = set
	}
	set[client] = struct{}{}
	metrics.WebSocketConnections.WithLabelValues(m.feed).Inc()
}

// RemoveClient unregisters a connection
func (m *Manager) RemoveClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	set, ok := m.clients[client.Caller.ID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(m.clients, client.Caller.ID)
	}
	metrics.WebSocketConnections.WithLabelValues(m.feed).Dec()
}

// ConnectionCount returns the number of open connections of userID
func (m *Manager) ConnectionCount(userID uuid.UUID) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[userID])
}

// NotifyUser sends an event to every connection of userID
func (m *Manager) NotifyUser(userID uuid.UUID, event string, data interface{}) {
	m.RLock()
	targets := make([]*Client, 0, len(m.clients[userID]))
	for client := range m.clients[userID] {
		targets = append(targets, client)
	}
	m.RUnlock()

	for _, client := range targets {
		if err := client.Send(event, data); err != nil {
			logger.Warn("Error sending message to client",
				logger.String("feed", m.feed),
				logger.String("user_id", userID.String()),
				logger.Err(err))
		}
	}
}
