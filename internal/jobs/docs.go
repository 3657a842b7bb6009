// Package jobs provides scheduled background tasks for the scheduling service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// NotificationDispatchJob runs DispatchNotificationsCommand on a schedule, by default every five
// seconds. Each run claims a batch of outbox messages written by schedule transitions and hands
// them to the notification producer.
//
// # Usage
//
//	job := jobs.NewNotificationDispatchJob(handler, cmd, "", 30*time.Second, logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick; messages that could not be sent stay
// in the outbox until they reach the command's attempt limit.
package jobs
