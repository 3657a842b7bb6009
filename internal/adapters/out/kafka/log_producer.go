package kafka

import (
	"context"
	"log/slog"

	"scheduling/internal/core/ports"
)

var _ ports.NotificationProducer = (*LogProducer)(nil)

// LogProducer writes notifications to the log. It stands in for the broker in local runs.
type LogProducer struct {
	logger *slog.Logger
}

// NewLogProducer creates a producer that logs every notification at info level.
func NewLogProducer(logger *slog.Logger) *LogProducer {
	return &LogProducer{logger: logger.With("component", "LogProducer")}
}

// Publish logs the notification. It fails only when ctx is already done.
func (p *LogProducer) Publish(ctx context.Context, notification ports.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	attrs := []any{
		"topic", notification.Topic,
		"key", notification.Key,
		"payload", string(notification.Payload),
	}
	for k, v := range notification.Headers {
		attrs = append(attrs, k, v)
	}
	p.logger.InfoContext(ctx, "notification", attrs...)
	return nil
}

// Close is a no-op.
func (p *LogProducer) Close() error {
	return nil
}
