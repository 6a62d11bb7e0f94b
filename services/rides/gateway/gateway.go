package gateway

import (
	"context"

	"github.com/piresc/pullup/internal/pkg/constants"
	"github.com/piresc/pullup/internal/pkg/metrics"
	"github.com/piresc/pullup/internal/pkg/models"
	natspkg "github.com/piresc/pullup/internal/pkg/nats"
	nsqpkg "github.com/piresc/pullup/internal/pkg/nsq"
	"github.com/piresc/pullup/services/rides"
)

// RideGW publishes ride events: service-to-service changes on NATS,
// outbound notifications (share links, emergencies) on NSQ
type RideGW struct {
	natsClient *natspkg.Client
	notifier   nsqpkg.Publisher
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client, notifier nsqpkg.Publisher) rides.RideGW {
	return &RideGW{
		natsClient: client,
		notifier:   notifier,
	}
}

// PublishRideUpdated publishes every ride change
func (g *RideGW) PublishRideUpdated(ctx context.Context, event models.RideEvent) error {
	return g.publishNATS(constants.SubjectRideUpdated, event)
}

// PublishRideCompleted publishes a completed trip for wallet settlement
func (g *RideGW) PublishRideCompleted(ctx context.Context, event models.RideCompletedEvent) error {
	return g.publishNATS(constants.SubjectRideCompleted, event)
}

// PublishMessage publishes a chat message for delivery to its recipients
func (g *RideGW) PublishMessage(ctx context.Context, event models.MessageEvent) error {
	return g.publishNATS(constants.SubjectRideMessage, event)
}

// PublishTripShared hands a share link to the notification pipeline
func (g *RideGW) PublishTripShared(ctx context.Context, link models.ShareLink) error {
	return g.publishNSQ(constants.TopicTripShared, link)
}

// PublishEmergency hands an emergency alert to the notification pipeline
func (g *RideGW) PublishEmergency(ctx context.Context, alert models.EmergencyAlert) error {
	return g.publishNSQ(constants.TopicRideEmergency, alert)
}

func (g *RideGW) publishNATS(subject string, v interface{}) error {
	err := g.natsClient.PublishJSON(subject, v)
	metrics.EventsPublishedTotal.WithLabelValues("nats", subject, metrics.Result(err)).Inc()
	return err
}

func (g *RideGW) publishNSQ(topic string, v interface{}) error {
	err := g.notifier.Publish(topic, v)
	metrics.EventsPublishedTotal.WithLabelValues("nsq", topic, metrics.Result(err)).Inc()
	return err
}
