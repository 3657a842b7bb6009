package ports

import (
	"context"
	"time"

	"scheduling/internal/core/domain/model/kernel"
)

// OutboxStatus is the delivery state of an outbox message.
type OutboxStatus int

const (
	OutboxUnknown OutboxStatus = iota
	// OutboxPending messages were written with a transition and never attempted.
	OutboxPending
	// OutboxProcessing messages are claimed by a dispatcher run.
	OutboxProcessing
	// OutboxFailed messages failed at least once and are retried until MaxAttempts.
	OutboxFailed
	// OutboxDone messages were handed to the producer.
	OutboxDone
)

func (s OutboxStatus) String() string {
	switch s {
	case OutboxPending:
		return "pending"
	case OutboxProcessing:
		return "processing"
	case OutboxFailed:
		return "failed"
	case OutboxDone:
		return "done"
	case OutboxUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// OutboxMessage is a notification waiting to be delivered.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	Topic       string
	Key         string
	Payload     []byte
	Status      OutboxStatus
	Attempts    int
	LastError   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// ClaimRequest selects the outbox messages a dispatcher run takes over.
type ClaimRequest struct {
	// Limit caps the batch size.
	Limit int
	// MaxAttempts excludes failed or stale messages that were already claimed this many times.
	MaxAttempts int
	// StaleBefore reclaims Processing messages last touched before this instant
	// (a dispatcher that died mid-batch).
	StaleBefore time.Time
	// Now stamps the claimed messages.
	Now time.Time
}

// OutboxRepository stores notifications next to the transitions that raised them.
type OutboxRepository interface {
	// Add stores messages in the current transaction.
	Add(ctx context.Context, messages ...OutboxMessage) error

	// Claim marks a batch of deliverable messages as Processing and returns them, oldest first.
	// Concurrent dispatchers never claim the same message.
	Claim(ctx context.Context, req ClaimRequest) ([]OutboxMessage, error)

	// MarkDone records a successful hand-off.
	MarkDone(ctx context.Context, id kernel.UUID, at time.Time) error

	// MarkFailed records the cause of a failed attempt.
	MarkFailed(ctx context.Context, id kernel.UUID, cause string, at time.Time) error
}
