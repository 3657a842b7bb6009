// Package kafka publishes outbox notifications to a message broker.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"scheduling/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var _ ports.NotificationProducer = (*Producer)(nil)

// ProducerConfig configures the broker connection.
type ProducerConfig struct {
	Brokers      []string
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

// Producer writes notifications with a kafka-go Writer. The topic travels with each
// notification, so one writer serves every topic.
type Producer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewProducer creates a producer for the given brokers.
func NewProducer(cfg ProducerConfig, logger *slog.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka producer needs at least one broker")
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 10 * time.Millisecond
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           cfg.BatchTimeout,
			WriteTimeout:           cfg.WriteTimeout,
			AllowAutoTopicCreation: true,
		},
		logger: logger.With("component", "KafkaProducer"),
	}, nil
}

// Publish writes one message and waits for the broker to acknowledge it.
func (p *Producer) Publish(ctx context.Context, notification ports.Notification) error {
	msg, err := newMessage(notification)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message to topic %s: %w", notification.Topic, err)
	}

	p.logger.DebugContext(ctx, "notification published",
		"topic", notification.Topic,
		"key", notification.Key,
	)
	return nil
}

// Close flushes pending writes and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

func newMessage(notification ports.Notification) (kafka.Message, error) {
	if notification.Topic == "" {
		return kafka.Message{}, errors.New("notification has no topic")
	}

	keys := make([]string, 0, len(notification.Headers))
	for k := range notification.Headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	headers := make([]kafka.Header, 0, len(keys))
	for _, k := range keys {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(notification.Headers[k])})
	}

	return kafka.Message{
		Topic:   notification.Topic,
		Key:     []byte(notification.Key),
		Value:   notification.Payload,
		Headers: headers,
	}, nil
}
