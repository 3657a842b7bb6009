package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/pkg/errs"
)

var (
	// ErrScheduleIsNotConstructed is returned when a Schedule instance was not created through
	// NewProposal or Restore.
	ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewProposal constructor")
)

// Schedule is the aggregate root of one delivery proposal and its resolution.
//
// Schedule follows these invariants:
//   - Must have valid identifiers for itself, its order and its proposer
//   - A Proposed schedule has no confirmer and no response notes
//   - A Confirmed or Rejected schedule names the party who answered, who is never the proposer
//   - Once Confirmed or Rejected, nothing about the schedule changes
//   - Timestamps are UTC with microsecond precision so they survive a database round trip unchanged
//
// Every transition appends an Event to DomainEvents; the unit of work drains them on commit.
type Schedule struct {
	// id is the unique identifier of the proposal
	id kernel.UUID

	// orderID is the order being scheduled
	orderID kernel.UUID

	// proposerID is the party that made the proposal
	proposerID kernel.UUID

	// confirmerID is the party that confirmed or rejected it (nil while Proposed)
	confirmerID *kernel.UUID

	// status is the current lifecycle state
	status Status

	// candidate is the proposed slot
	candidate Candidate

	// responseNotes is the counterparty's optional comment on resolution
	responseNotes *string

	createdAt time.Time
	updatedAt time.Time

	// events raised since the aggregate was loaded or created
	events []Event

	// isConstructed ensures the schedule was created via a constructor
	isConstructed bool
}

// NewProposal creates a Proposed schedule for ord on behalf of proposer.
//
// Business rules checked, in order:
//   - the order accepts schedules (errs.InvalidOrderStateError otherwise)
//   - the proposer is the buyer or the seller (errs.UnauthorizedError otherwise)
//
// Policy compliance is not checked here; callers run the compliance validator first.
// A Proposed event addressed to the other party is recorded.
func NewProposal(id kernel.UUID, ord *order.Order, proposer kernel.UUID, candidate Candidate, at time.Time) (*Schedule, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if err := ord.ValidateSchedulable(); err != nil {
		return nil, err
	}
	counterparty, err := ord.Counterparty(proposer)
	if err != nil {
		return nil, err
	}

	at = normalizeTime(at)
	s := &Schedule{
		orderID:       ord.ID(),
		status:        Proposed,
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}
	if err = errors.Join(
		s.setID(id),
		s.setProposer(proposer),
		s.setCandidate(candidate),
	); err != nil {
		return nil, err
	}

	s.raise(EventProposed, proposer, counterparty, "Delivery proposed for "+candidate.Summary(), at)
	return s, nil
}

// Restore rebuilds a Schedule from persisted state, checking every invariant again.
func Restore(
	id, orderID, proposerID kernel.UUID,
	confirmerID *kernel.UUID,
	status Status,
	candidate Candidate,
	responseNotes *string,
	createdAt, updatedAt time.Time,
) (*Schedule, error) {
	s := &Schedule{
		responseNotes: normalizeNotes(responseNotes),
		createdAt:     normalizeTime(createdAt),
		updatedAt:     normalizeTime(updatedAt),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setProposer(proposerID),
		s.setCandidate(candidate),
		s.setStatus(status, confirmerID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Schedule instance was properly constructed.
func (s *Schedule) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduleIsNotConstructed
	}
	return nil
}

// IsEqual compares two schedules by their unique identifiers.
func (s *Schedule) IsEqual(other *Schedule) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the schedule's unique identifier.
func (s *Schedule) ID() kernel.UUID { return s.id }

// OrderID returns the identifier of the scheduled order.
func (s *Schedule) OrderID() kernel.UUID { return s.orderID }

// Proposer returns the party that made the proposal.
func (s *Schedule) Proposer() kernel.UUID { return s.proposerID }

// Confirmer returns the party that answered the proposal, nil while Proposed.
func (s *Schedule) Confirmer() *kernel.UUID {
	if s.confirmerID == nil {
		return nil
	}
	id := *s.confirmerID
	return &id
}

// Status returns the current lifecycle state.
func (s *Schedule) Status() Status { return s.status }

// Candidate returns the proposed slot.
func (s *Schedule) Candidate() Candidate { return s.candidate }

// ResponseNotes returns the counterparty's comment, nil when none was given.
func (s *Schedule) ResponseNotes() *string {
	if s.responseNotes == nil {
		return nil
	}
	notes := *s.responseNotes
	return &notes
}

// CreatedAt returns when the proposal was made.
func (s *Schedule) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns when the schedule last changed.
func (s *Schedule) UpdatedAt() time.Time { return s.updatedAt }

// Confirm accepts the proposal on behalf of actor. See Respond.
func (s *Schedule) Confirm(ord *order.Order, actor kernel.UUID, notes *string, at time.Time) error {
	return s.Respond(ord, actor, ActionConfirm, notes, at)
}

// Reject declines the proposal on behalf of actor. See Respond.
func (s *Schedule) Reject(ord *order.Order, actor kernel.UUID, notes *string, at time.Time) error {
	return s.Respond(ord, actor, ActionReject, notes, at)
}

// Respond applies the counterparty's answer.
//
// Business rules checked, in order:
//   - ord is the order this schedule belongs to (errs.ValueIsInvalidError otherwise)
//   - actor is the buyer or the seller (errs.UnauthorizedError)
//   - the schedule is still Proposed (errs.InvalidTransitionError naming current and attempted status)
//   - actor is not the proposer (errs.UnauthorizedError)
//   - the order still accepts schedules (errs.InvalidOrderStateError)
//
// On any error the schedule is left unchanged. On success the confirmer, notes and
// update time are stamped and an event addressed to the proposer is recorded.
func (s *Schedule) Respond(ord *order.Order, actor kernel.UUID, action Action, notes *string, at time.Time) error {
	if err := errors.Join(ord.Validate(), actor.Validate(), action.Validate()); err != nil {
		return err
	}
	if !ord.ID().IsEqual(s.orderID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("schedule %s belongs to order %s, not %s", s.id, s.orderID, ord.ID()),
		)
	}
	if !ord.IsParty(actor) {
		return errs.NewUnauthorizedError(actor.String(), "not a party to order "+s.orderID.String())
	}

	next, err := s.status.resolve(action.Target())
	if err != nil {
		return err
	}

	if actor.IsEqual(s.proposerID) {
		return errs.NewUnauthorizedError(actor.String(), "the proposer cannot answer their own proposal")
	}
	if err = ord.ValidateSchedulable(); err != nil {
		return err
	}

	at = normalizeTime(at)
	s.status = next
	s.confirmerID = &actor
	s.responseNotes = normalizeNotes(notes)
	s.updatedAt = at

	eventType, verb := EventConfirmed, "confirmed"
	if next == Rejected {
		eventType, verb = EventRejected, "rejected"
	}
	summary := fmt.Sprintf("Delivery for %s %s", s.candidate.Summary(), verb)
	if s.responseNotes != nil {
		summary += ": " + *s.responseNotes
	}
	s.raise(eventType, actor, s.proposerID, summary, at)

	return nil
}

// DomainEvents returns the events raised since the schedule was created or loaded.
func (s *Schedule) DomainEvents() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// ClearDomainEvents forgets raised events once they were persisted.
func (s *Schedule) ClearDomainEvents() {
	s.events = nil
}

func (s *Schedule) raise(eventType EventType, actor, recipient kernel.UUID, summary string, at time.Time) {
	s.events = append(s.events, newEvent(eventType, s, actor, recipient, summary, at))
}

func (s *Schedule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Schedule) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.orderID = id
	return nil
}

func (s *Schedule) setProposer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.proposerID = id
	return nil
}

func (s *Schedule) setCandidate(c Candidate) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.candidate = c
	return nil
}

func (s *Schedule) setStatus(status Status, confirmerID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	switch {
	case status == Proposed && confirmerID != nil:
		return errs.NewValueIsInvalidErrorWithCause("confirmer", errors.New("a proposed schedule has no confirmer"))
	case status.IsTerminal() && confirmerID == nil:
		return errs.NewValueIsRequiredErrorWithCause("confirmer", fmt.Errorf("a %s schedule names who answered it", status))
	case confirmerID != nil:
		if err := confirmerID.Validate(); err != nil {
			return err
		}
		if confirmerID.IsEqual(s.proposerID) {
			return errs.NewValueIsInvalidErrorWithCause("confirmer", errors.New("the proposer cannot be the confirmer"))
		}
		id := *confirmerID
		s.confirmerID = &id
	}

	s.status = status
	return nil
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type scheduleJSON struct {
	ID            kernel.UUID  `json:"id"`
	OrderID       kernel.UUID  `json:"orderId"`
	ProposerID    kernel.UUID  `json:"proposerId"`
	ConfirmerID   *kernel.UUID `json:"confirmerId"`
	Status        string       `json:"status"`
	Candidate     Candidate    `json:"candidate"`
	ResponseNotes *string      `json:"responseNotes"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// MarshalJSON implements json.Marshaler. Raised events are not part of the representation.
func (s *Schedule) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(scheduleJSON{
		ID:            s.id,
		OrderID:       s.orderID,
		ProposerID:    s.proposerID,
		ConfirmerID:   s.confirmerID,
		Status:        s.status.String(),
		Candidate:     s.candidate,
		ResponseNotes: s.responseNotes,
		CreatedAt:     s.createdAt,
		UpdatedAt:     s.updatedAt,
	})
}

// UnmarshalJSON implements json.Unmarshaler through Restore.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var raw scheduleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseStatus(raw.Status)
	if err != nil {
		return err
	}
	restored, err := Restore(raw.ID, raw.OrderID, raw.ProposerID, raw.ConfirmerID, status,
		raw.Candidate, raw.ResponseNotes, raw.CreatedAt, raw.UpdatedAt)
	if err != nil {
		return err
	}
	*s = *restored
	return nil
}
