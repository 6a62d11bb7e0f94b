// Package dispatch schedules the simulated driver assignment of new rides.
// It is a placeholder standing in for a dispatch service, not a matching policy.
package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/metrics"
)

// AssignFunc performs the assignment once the delay elapsed
type AssignFunc func(ctx context.Context) error

type job struct {
	cancel context.CancelFunc
	seq    uint64
}

// Simulator runs one delayed assignment per ride, each cancellable by ride id
type Simulator struct {
	delay   time.Duration
	timeout time.Duration

	mu      sync.Mutex
	seq     uint64
	pending map[uuid.UUID]job
	wg      sync.WaitGroup
	ctx     context.Context
	stop    context.CancelFunc
}

// NewSimulator creates a simulator. timeout bounds each assignment call.
func NewSimulator(delay, timeout time.Duration) *Simulator {
	if delay <= 0 {
		delay = 3 * time.Second
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Simulator{
		delay:   delay,
		timeout: timeout,
		pending: make(map[uuid.UUID]job),
		ctx:     ctx,
		stop:    stop,
	}
}

// Schedule runs assign for rideID after the delay. A ride already scheduled is rescheduled.
func (s *Simulator) Schedule(rideID uuid.UUID, assign AssignFunc) {
	ctx, cancel := context.WithCancel(s.ctx)

	s.mu.Lock()
	s.seq++
	seq := s.seq
	if prev, ok := s.pending[rideID]; ok {
		prev.cancel()
	} else {
		metrics.DispatchPending.Inc()
	}
	s.pending[rideID] = job{cancel: cancel, seq: seq}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.release(rideID, seq)

		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		callCtx, callCancel := context.WithTimeout(ctx, s.timeout)
		defer callCancel()
		if err := assign(callCtx); err != nil {
			logger.Warn("Simulated driver assignment failed",
				logger.String("ride_id", rideID.String()),
				logger.Err(err))
		}
	}()
}

// release drops the pending entry unless it was rescheduled meanwhile
func (s *Simulator) release(rideID uuid.UUID, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.pending[rideID]
	if !ok || j.seq != seq {
		return
	}
	delete(s.pending, rideID)
	j.cancel()
	metrics.DispatchPending.Dec()
}

// Cancel stops the pending assignment of rideID and reports whether one existed
func (s *Simulator) Cancel(rideID uuid.UUID) bool {
	s.mu.Lock()
	j, ok := s.pending[rideID]
	if ok {
		delete(s.pending, rideID)
		metrics.DispatchPending.Dec()
	}
	s.mu.Unlock()

	if ok {
		j.cancel()
	}
	return ok
}

// Pending returns the number of scheduled assignments
func (s *Simulator) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop cancels every pending assignment and waits for running ones to return
func (s *Simulator) Stop() {
	s.stop()
	s.wg.Wait()
}
