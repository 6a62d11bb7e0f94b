package appstate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
)

// Persister loads and saves checkpointed state
type Persister interface {
	Load(ctx context.Context, userID uuid.UUID) (*State, error)
	Save(ctx context.Context, state State) error
}

// Store reduces app state over the persisted copy. Several services share that
// copy, so every read goes through the persister. The in-process copy only
// answers when the persister is unreachable.
type Store struct {
	mu        sync.Mutex
	states    map[uuid.UUID]State
	persister Persister
	now       func() time.Time
}

// NewStore creates a store backed by persister
func NewStore(persister Persister) *Store {
	return &Store{
		states:    make(map[uuid.UUID]State),
		persister: persister,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the state of userID
func (s *Store) Get(ctx context.Context, userID uuid.UUID) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, userID)
}

// Dispatch reduces action into the state of userID, persisting at checkpoints
func (s *Store) Dispatch(ctx context.Context, userID uuid.UUID, action Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, userID)
	if err != nil {
		return State{}, err
	}

	next, err := Reduce(current, action, s.now())
	if err != nil {
		return current, err
	}
	if next == current {
		return current, nil
	}

	if action.Checkpoint() {
		if err := s.persister.Save(ctx, next); err != nil {
			return current, fmt.Errorf("failed to persist app state: %w", err)
		}
	}
	s.states[userID] = next

	logger.Debug("App state changed",
		logger.String("user_id", userID.String()),
		logger.String("action", string(action.Type)),
		logger.String("mode", string(next.Mode)))
	return next, nil
}

func (s *Store) load(ctx context.Context, userID uuid.UUID) (State, error) {
	persisted, err := s.persister.Load(ctx, userID)
	if err != nil {
		if st, ok := s.states[userID]; ok {
			logger.Warn("Serving cached app state",
				logger.String("user_id", userID.String()),
				logger.Err(err))
			return st, nil
		}
		return State{}, fmt.Errorf("failed to load app state: %w", err)
	}

	st := Default(userID)
	if persisted != nil {
		st = *persisted
	}
	s.states[userID] = st
	return st, nil
}
