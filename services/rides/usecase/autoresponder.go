package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/logger"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/services/rides"
)

// AutoResponder answers chat messages on behalf of the counterpart after a delay.
// It is a demo placeholder: replies are picked at random from a fixed list.
type AutoResponder struct {
	delay     time.Duration
	responses []string
	repo      rides.TrackingRepo
	gw        rides.RideGW
	pick      func(n int) int

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup
}

// NewAutoResponder creates a responder; it returns nil when there is nothing to answer with
func NewAutoResponder(delay time.Duration, responses []string, repo rides.TrackingRepo, gw rides.RideGW) *AutoResponder {
	if len(responses) == 0 {
		return nil
	}
	ctx, stop := context.WithCancel(context.Background())
	return &AutoResponder{
		delay:     delay,
		responses: responses,
		repo:      repo,
		gw:        gw,
		pick:      rand.Intn,
		ctx:       ctx,
		stop:      stop,
	}
}

// Respond schedules a reply in rideID from sender to recipients
func (a *AutoResponder) Respond(rideID uuid.UUID, sender models.MessageSender, senderID *uuid.UUID, recipients []uuid.UUID) {
	text := a.responses[a.pick(len(a.responses))]

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-a.ctx.Done():
			return
		case <-timer.C:
		}

		msg := models.ChatMessage{
			ID:        uuid.New(),
			RideID:    rideID,
			Sender:    sender,
			SenderID:  senderID,
			Text:      text,
			Timestamp: time.Now().UTC(),
			AutoReply: true,
		}
		if err := a.repo.AppendMessage(a.ctx, msg); err != nil {
			logger.Warn("Auto reply was not stored", logger.String("ride_id", rideID.String()), logger.Err(err))
			return
		}
		if err := a.gw.PublishMessage(a.ctx, models.MessageEvent{Message: msg, Recipients: recipients}); err != nil {
			logger.Warn("Auto reply was not published", logger.String("ride_id", rideID.String()), logger.Err(err))
		}
	}()
}

// Stop drops pending replies and waits for running ones
func (a *AutoResponder) Stop() {
	if a == nil {
		return
	}
	a.stop()
	a.wg.Wait()
}
