package jobs

import (
	"context"
	"log/slog"
	"time"

	"scheduling/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchSpec runs the dispatcher every five seconds.
const DefaultDispatchSpec = "*/5 * * * * *"

// NotificationDispatcher runs one outbox dispatch. commands.DispatchNotificationsCommandHandler
// implements it.
type NotificationDispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchNotificationsCommand) (commands.DispatchResult, error)
}

// NotificationDispatchJob periodically moves outbox messages to the notification producer.
// A run that is still busy when the next one is due causes that tick to be skipped.
type NotificationDispatchJob struct {
	dispatcher NotificationDispatcher
	cmd        commands.DispatchNotificationsCommand
	spec       string
	timeout    time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationDispatchJob creates the job. spec is a six-field cron expression (with seconds);
// an empty spec means DefaultDispatchSpec. Each run is bounded by timeout.
func NewNotificationDispatchJob(
	dispatcher NotificationDispatcher,
	cmd commands.DispatchNotificationsCommand,
	spec string,
	timeout time.Duration,
	logger *slog.Logger,
) *NotificationDispatchJob {
	if spec == "" {
		spec = DefaultDispatchSpec
	}
	return &NotificationDispatchJob{
		dispatcher: dispatcher,
		cmd:        cmd,
		spec:       spec,
		timeout:    timeout,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "notification_dispatch_job"),
	}
}

// Start schedules the job. It fails for an invalid cron expression.
func (j *NotificationDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started", "spec", j.spec)
	return nil
}

// Stop stops scheduling and waits for a running dispatch to finish.
func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

func (j *NotificationDispatchJob) run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	result, err := j.dispatcher.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification dispatch failed", "error", err)
		return
	}
	if result.Claimed > 0 {
		j.logger.InfoContext(ctx, "Notifications dispatched",
			"claimed", result.Claimed,
			"sent", result.Sent,
			"failed", result.Failed,
		)
	}
}
