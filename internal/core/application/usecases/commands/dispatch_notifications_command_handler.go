package commands

import (
	"context"
	"log/slog"
	"time"

	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/metrics"
)

// DispatchResult counts the messages a run handled.
type DispatchResult struct {
	Claimed int
	Sent    int
	Failed  int
}

// DispatchNotificationsCommandHandler moves outbox messages to the notification producer.
//
// A batch is claimed in one short transaction; each message is then published and marked
// done or failed on its own, so a slow or failing producer never holds locks and never
// affects the schedules whose transitions raised the messages. Failures are logged and
// counted; the message is retried by later runs until it reaches the command's MaxAttempts.
type DispatchNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	producer   ports.NotificationProducer
	logger     *slog.Logger
	now        func() time.Time
}

// NewDispatchNotificationsCommandHandler creates the handler. A nil now defaults to time.Now.
func NewDispatchNotificationsCommandHandler(
	uowFactory OutboxUoWFactory,
	producer ports.NotificationProducer,
	logger *slog.Logger,
	now func() time.Time,
) DispatchNotificationsCommandHandler {
	if now == nil {
		now = time.Now
	}
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		producer:   producer,
		logger:     logger.With("component", "DispatchNotificationsCommandHandler"),
		now:        now,
	}
}

// Handle dispatches one batch.
func (h DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) (DispatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchResult{}, err
	}

	messages, err := h.claim(ctx, cmd)
	if err != nil {
		return DispatchResult{}, err
	}

	result := DispatchResult{Claimed: len(messages)}
	metrics.OutboxBatchSize.Set(float64(len(messages)))

	outbox := h.uowFactory.Create().OutboxRepository()
	for _, msg := range messages {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		sendErr := h.producer.Publish(ctx, ports.Notification{
			Topic:   msg.Topic,
			Key:     msg.Key,
			Payload: msg.Payload,
			Headers: map[string]string{
				"event_type": msg.EventType,
				"message_id": msg.ID.String(),
			},
		})
		if sendErr != nil {
			result.Failed++
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			h.logger.WarnContext(ctx, "notification not sent",
				"message_id", msg.ID.String(),
				"event_type", msg.EventType,
				"attempt", msg.Attempts,
				"error", sendErr,
			)
			if err = outbox.MarkFailed(ctx, msg.ID, sendErr.Error(), h.now()); err != nil {
				h.logger.ErrorContext(ctx, "failed to record notification failure",
					"message_id", msg.ID.String(), "error", err)
			}
			continue
		}

		result.Sent++
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
		if err = outbox.MarkDone(ctx, msg.ID, h.now()); err != nil {
			h.logger.ErrorContext(ctx, "failed to record sent notification",
				"message_id", msg.ID.String(), "error", err)
		}
	}

	return result, nil
}

func (h DispatchNotificationsCommandHandler) claim(ctx context.Context, cmd DispatchNotificationsCommand) ([]ports.OutboxMessage, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now()
	messages, err := uow.OutboxRepository().Claim(ctx, ports.ClaimRequest{
		Limit:       cmd.BatchSize(),
		MaxAttempts: cmd.MaxAttempts(),
		StaleBefore: now.Add(-cmd.ClaimTimeout()),
		Now:         now,
	})
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return messages, nil
}
