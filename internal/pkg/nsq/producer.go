package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/pullup/internal/pkg/logger"
)

// Publisher publishes JSON messages to a topic
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer and pings the daemon
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends a JSON encoded message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := encode(message)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message to NSQ", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// LogPublisher records notification events in the log when no nsqd is configured
type LogPublisher struct{}

// Publish logs the encoded message
func (LogPublisher) Publish(topic string, message interface{}) error {
	msgBytes, err := encode(message)
	if err != nil {
		return err
	}
	logger.Info("Notification event (nsq disabled)",
		logger.String("topic", topic),
		logger.String("payload", string(msgBytes)))
	return nil
}

func encode(message interface{}) ([]byte, error) {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	return msgBytes, nil
}
