package ports

import "context"

// Notification is a message addressed to a broker topic.
type Notification struct {
	Topic   string
	Key     string
	Payload []byte
	Headers map[string]string
}

// NotificationProducer delivers notifications to the party being notified.
// Delivery is best effort from the caller's point of view: failures are reported
// but never undo the transition that raised the notification.
type NotificationProducer interface {
	Publish(ctx context.Context, notification Notification) error
	Close() error
}
