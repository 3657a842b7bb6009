package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"scheduling/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Handle(ctx context.Context, cmd commands.DispatchNotificationsCommand) (commands.DispatchResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.DispatchResult), args.Error(1)
}

func newDispatchCommand(t *testing.T) commands.DispatchNotificationsCommand {
	t.Helper()
	cmd, err := commands.NewDispatchNotificationsCommand(10, 5, time.Minute)
	require.NoError(t, err)
	return cmd
}

func TestNotificationDispatchJob_Run(t *testing.T) {
	cmd := newDispatchCommand(t)
	dispatcher := new(MockDispatcher)
	dispatcher.On("Handle", mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return hasDeadline
	}), cmd).Return(commands.DispatchResult{Claimed: 2, Sent: 1, Failed: 1}, nil).Once()

	job := NewNotificationDispatchJob(dispatcher, cmd, "", time.Second, slog.Default())
	job.run()

	dispatcher.AssertExpectations(t)
	assert.Equal(t, DefaultDispatchSpec, job.spec)
}

func TestNotificationDispatchJob_RunLogsFailure(t *testing.T) {
	cmd := newDispatchCommand(t)
	dispatcher := new(MockDispatcher)
	dispatcher.On("Handle", mock.Anything, cmd).
		Return(commands.DispatchResult{}, errors.New("database is down")).Once()

	job := NewNotificationDispatchJob(dispatcher, cmd, "@every 1h", 0, slog.Default())

	assert.NotPanics(t, job.run)
	dispatcher.AssertExpectations(t)
}

func TestNotificationDispatchJob_StartRejectsBadSpec(t *testing.T) {
	job := NewNotificationDispatchJob(new(MockDispatcher), newDispatchCommand(t), "not a cron spec", 0, slog.Default())

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	cmd := newDispatchCommand(t)
	dispatcher := new(MockDispatcher)
	dispatcher.On("Handle", mock.Anything, cmd).Return(commands.DispatchResult{}, nil).Maybe()

	manager := NewJobManager(NewNotificationDispatchJob(dispatcher, cmd, "@every 1h", 0, slog.Default()))

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
