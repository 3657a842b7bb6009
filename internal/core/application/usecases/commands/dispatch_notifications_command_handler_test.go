package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxMessage(eventType string) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		EventType: eventType,
		Topic:     "schedule-events",
		Key:       kernel.NewUUID().String(),
		Payload:   []byte(`{"type":"` + eventType + `"}`),
		Status:    ports.OutboxProcessing,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}

func TestDispatchNotificationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDispatchNotificationsCommand(10, 5, time.Minute)
	require.NoError(t, err)

	sent := outboxMessage("schedule.proposed")
	failing := outboxMessage("schedule.confirmed")

	uow := new(MockUoW)
	outbox := new(MockOutboxRepository)
	producer := new(MockProducer)
	factory := new(MockOutboxUoWFactory)

	factory.On("Create").Return(uow).Twice()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Twice()
	outbox.On("Claim", ctx, ports.ClaimRequest{
		Limit:       10,
		MaxAttempts: 5,
		StaleBefore: fixedNow.Add(-time.Minute),
		Now:         fixedNow,
	}).Return([]ports.OutboxMessage{sent, failing}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	producer.On("Publish", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Key == sent.Key && n.Headers["event_type"] == "schedule.proposed" &&
			n.Headers["message_id"] == sent.ID.String()
	})).Return(nil).Once()
	producer.On("Publish", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Key == failing.Key
	})).Return(errors.New("broker unavailable")).Once()

	outbox.On("MarkDone", ctx, sent.ID, fixedNow).Return(nil).Once()
	outbox.On("MarkFailed", ctx, failing.ID, "broker unavailable", fixedNow).Return(nil).Once()

	handler := commands.NewDispatchNotificationsCommandHandler(factory, producer, slog.New(slog.NewTextHandler(io.Discard, nil)), clock)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.DispatchResult{Claimed: 2, Sent: 1, Failed: 1}, result)
	outbox.AssertExpectations(t)
	producer.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchNotificationsCommandHandler_Handle_ClaimError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDispatchNotificationsCommand(10, 5, time.Minute)
	require.NoError(t, err)

	uow := new(MockUoW)
	outbox := new(MockOutboxRepository)
	producer := new(MockProducer)
	factory := new(MockOutboxUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Once()
	outbox.On("Claim", ctx, mock.Anything).Return(nil, errors.New("claim error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDispatchNotificationsCommandHandler(factory, producer, slog.New(slog.NewTextHandler(io.Discard, nil)), clock)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "claim error")
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDispatchNotificationsCommandHandler_Handle_EmptyBatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDispatchNotificationsCommand(1, 1, time.Second)
	require.NoError(t, err)

	uow := new(MockUoW)
	outbox := new(MockOutboxRepository)
	producer := new(MockProducer)
	factory := new(MockOutboxUoWFactory)

	factory.On("Create").Return(uow).Twice()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Twice()
	outbox.On("Claim", ctx, mock.Anything).Return([]ports.OutboxMessage{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDispatchNotificationsCommandHandler(factory, producer, slog.New(slog.NewTextHandler(io.Discard, nil)), clock)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result)
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNewDispatchNotificationsCommand(t *testing.T) {
	_, err := commands.NewDispatchNotificationsCommand(0, -1, 0)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "batch size")
	assert.Contains(t, err.Error(), "max attempts")
	assert.Contains(t, err.Error(), "claim timeout")

	require.ErrorIs(t, commands.DispatchNotificationsCommand{}.Validate(), commands.ErrDispatchNotificationsCommandIsNotConstructed)
}
