package schedule

import (
	"fmt"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"
)

// EventType identifies which transition raised an Event.
type EventType int

const (
	EventUnknown EventType = iota
	EventProposed
	EventConfirmed
	EventRejected
)

func getEventTypeNames() map[EventType]string {
	//nolint:exhaustive // EventUnknown has no wire name
	return map[EventType]string{
		EventProposed:  "schedule.proposed",
		EventConfirmed: "schedule.confirmed",
		EventRejected:  "schedule.rejected",
	}
}

// String returns the wire name, e.g. "schedule.proposed".
func (t EventType) String() string {
	if name, ok := getEventTypeNames()[t]; ok {
		return name
	}
	return "schedule.unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EventType) UnmarshalText(data []byte) error {
	for eventType, name := range getEventTypeNames() {
		if name == string(data) {
			*t = eventType
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("%q is not a known event type", data))
}

// Event tells the recipient party that a schedule was proposed, confirmed or rejected.
// ActorID is who acted; RecipientID is who must be told.
type Event struct {
	ID          kernel.UUID `json:"id"`
	Type        EventType   `json:"type"`
	OrderID     kernel.UUID `json:"orderId"`
	ScheduleID  kernel.UUID `json:"scheduleId"`
	ActorID     kernel.UUID `json:"actorId"`
	RecipientID kernel.UUID `json:"recipientId"`
	Summary     string      `json:"summary"`
	OccurredAt  time.Time   `json:"occurredAt"`
}

func newEvent(eventType EventType, s *Schedule, actor, recipient kernel.UUID, summary string, at time.Time) Event {
	return Event{
		ID:          kernel.NewUUID(),
		Type:        eventType,
		OrderID:     s.orderID,
		ScheduleID:  s.id,
		ActorID:     actor,
		RecipientID: recipient,
		Summary:     summary,
		OccurredAt:  at,
	}
}
