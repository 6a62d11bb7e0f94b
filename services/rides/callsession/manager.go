// Package callsession simulates a voice call between rider and driver.
// A call ends on request or automatically after the maximum duration.
package callsession

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
)

var (
	ErrCallInProgress = fmt.Errorf("%w: a call is already in progress", models.ErrConflict)
	ErrNoActiveCall   = fmt.Errorf("%w: no call for this ride", models.ErrNotFound)
)

type call struct {
	session models.CallSession
	timer   *time.Timer
}

// Manager tracks at most one call per ride
type Manager struct {
	maxDuration time.Duration
	now         func() time.Time

	mu    sync.Mutex
	calls map[uuid.UUID]*call
	onEnd func(models.CallSession)
}

func NewManager(maxDuration time.Duration) *Manager {
	if maxDuration <= 0 {
		maxDuration = 30 * time.Second
	}
	return &Manager{
		maxDuration: maxDuration,
		now:         time.Now,
		calls:       make(map[uuid.UUID]*call),
	}
}

// OnEnd registers fn to run whenever a call ends, manually or by timeout
func (m *Manager) OnEnd(fn func(models.CallSession)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onEnd = fn
}

// Start opens a call on rideID
func (m *Manager) Start(rideID, startedBy uuid.UUID) (models.CallSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.calls[rideID]; ok && c.session.Active {
		return m.view(c.session), ErrCallInProgress
	}

	c := &call{session: models.CallSession{
		RideID:    rideID,
		StartedBy: startedBy,
		StartedAt: m.now(),
		Active:    true,
	}}
	c.timer = time.AfterFunc(m.maxDuration, func() {
		if _, err := m.End(rideID); err == nil {
			logger.Info("Call ended after maximum duration", logger.String("ride_id", rideID.String()))
		}
	})
	m.calls[rideID] = c

	return m.view(c.session), nil
}

// End hangs up the active call of rideID
func (m *Manager) End(rideID uuid.UUID) (models.CallSession, error) {
	m.mu.Lock()
	c, ok := m.calls[rideID]
	if !ok || !c.session.Active {
		m.mu.Unlock()
		return models.CallSession{}, ErrNoActiveCall
	}

	c.timer.Stop()
	ended := m.now()
	if limit := c.session.StartedAt.Add(m.maxDuration); ended.After(limit) {
		ended = limit
	}
	c.session.Active = false
	c.session.EndedAt = &ended
	session := m.view(c.session)
	onEnd := m.onEnd
	m.mu.Unlock()

	if onEnd != nil {
		onEnd(session)
	}
	return session, nil
}

// Status returns the current or last call of rideID
func (m *Manager) Status(rideID uuid.UUID) (models.CallSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.calls[rideID]
	if !ok {
		return models.CallSession{}, ErrNoActiveCall
	}
	return m.view(c.session), nil
}

// Forget drops any call state of rideID, ending an active call silently
func (m *Manager) Forget(rideID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.calls[rideID]; ok {
		c.timer.Stop()
		delete(m.calls, rideID)
	}
}

// Stop cancels every auto-end timer
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.calls {
		c.timer.Stop()
		delete(m.calls, id)
	}
}

func (m *Manager) view(s models.CallSession) models.CallSession {
	end := m.now()
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	elapsed := end.Sub(s.StartedAt)
	if elapsed > m.maxDuration {
		elapsed = m.maxDuration
	}
	s.Seconds = int(elapsed / time.Second)
	s.Display = utils.FormatClock(s.Seconds)
	return s
}
