package realtime

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	natspkg "github.com/piresc/pullup/internal/pkg/nats"
)

// Row change event types
const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

var ErrUnknownSubscription = fmt.Errorf("%w: unknown subscription", models.ErrNotFound)

// Filter restricts a subscription to rows where Column equals Value
type Filter struct {
	Column string
	Value  string
}

// Change is one row change delivered to subscribers
type Change struct {
	Table     string          `json:"table"`
	EventType string          `json:"event_type"`
	Record    json.RawMessage `json:"record"`
	Timestamp time.Time       `json:"timestamp"`
}

// Handler receives row changes
type Handler func(Change)

// Subject returns the subject a change of table keyed by column=value is published on
func Subject(table, column, value string) string {
	return fmt.Sprintf(constants.SubjectRealtimeFormat, token(table), token(column), token(value))
}

func tableSubject(table string) string {
	return constants.SubjectRealtimePrefix + "." + token(table)
}

func token(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, s)
}

// Hub publishes row changes and manages subscriptions over NATS
type Hub struct {
	client *natspkg.Client
	mu     sync.Mutex
	subs   map[string]*nats.Subscription
}

// NewHub creates a hub on client
func NewHub(client *natspkg.Client) *Hub {
	return &Hub{
		client: client,
		subs:   make(map[string]*nats.Subscription),
	}
}

// Publish announces a change of table. keys lists the column values the row can be filtered on.
func (h *Hub) Publish(table, eventType string, record interface{}, keys map[string]string) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	data, err := json.Marshal(Change{
		Table:     table,
		EventType: eventType,
		Record:    raw,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	if err := h.client.Publish(tableSubject(table), data); err != nil {
		return err
	}
	for column, value := range keys {
		if err := h.client.Publish(Subject(table, column, value), data); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe delivers changes of table matching filter to handler and returns an opaque handle
func (h *Hub) Subscribe(table string, filter *Filter, handler Handler) (string, error) {
	if table == "" {
		return "", models.NewValidationError("table", "is required")
	}

	subject := tableSubject(table)
	if filter != nil {
		subject = Subject(table, filter.Column, filter.Value)
	}

	sub, err := h.client.Subscribe(subject, func(msg *nats.Msg) {
		var change Change
		if err := json.Unmarshal(msg.Data, &change); err != nil {
			logger.Warn("Dropping malformed realtime change",
				logger.String("subject", msg.Subject),
				logger.Err(err))
			return
		}
		handler(change)
	})
	if err != nil {
		return "", err
	}

	handle := uuid.NewString()
	h.mu.Lock()
	h.subs[handle] = sub
	h.mu.Unlock()

	logger.Debug("Realtime subscription created",
		logger.String("handle", handle),
		logger.String("subject", subject))
	return handle, nil
}

// Unsubscribe removes the subscription identified by handle
func (h *Hub) Unsubscribe(handle string) error {
	h.mu.Lock()
	sub, ok := h.subs[handle]
	delete(h.subs, handle)
	h.mu.Unlock()

	if !ok {
		return ErrUnknownSubscription
	}
	return sub.Unsubscribe()
}

// Count returns the number of live subscriptions
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close removes every subscription
func (h *Hub) Close() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[string]*nats.Subscription)
	h.mu.Unlock()

	for _, sub := range subs {
		_ = sub.Unsubscribe()
	}
}
