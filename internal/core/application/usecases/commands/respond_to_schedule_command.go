package commands

import (
	"errors"
	"strings"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/guard"
)

var ErrRespondToScheduleCommandIsNotConstructed = errors.New(
	"RespondToScheduleCommand must be created via NewRespondToScheduleCommand or NewRespondToActiveScheduleCommand",
)

// RespondToScheduleCommand confirms or rejects a proposal. The proposal is named either by
// its own id or by its order, in which case the order's single Proposed schedule is meant.
//
// Example:
//
//	cmd, err := NewRespondToScheduleCommand(scheduleID, actorID, schedule.ActionConfirm, nil)
//	// or, when the caller only knows the order:
//	cmd, err = NewRespondToActiveScheduleCommand(orderID, actorID, schedule.ActionReject, &notes)
type RespondToScheduleCommand struct { //nolint:recvcheck //using for validation
	scheduleID *kernel.UUID
	orderID    *kernel.UUID
	actorID    kernel.UUID
	action     schedule.Action
	notes      *string

	guard guard.ConstructorGuard
}

// NewRespondToScheduleCommand targets the schedule with the given id.
func NewRespondToScheduleCommand(
	scheduleID, actorID kernel.UUID,
	action schedule.Action,
	notes *string,
) (RespondToScheduleCommand, error) {
	if err := scheduleID.Validate(); err != nil {
		return RespondToScheduleCommand{}, err
	}
	cmd, err := newRespondToScheduleCommand(actorID, action, notes)
	if err != nil {
		return RespondToScheduleCommand{}, err
	}
	cmd.scheduleID = &scheduleID
	return cmd, nil
}

// NewRespondToActiveScheduleCommand targets the order's Proposed schedule.
func NewRespondToActiveScheduleCommand(
	orderID, actorID kernel.UUID,
	action schedule.Action,
	notes *string,
) (RespondToScheduleCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RespondToScheduleCommand{}, err
	}
	cmd, err := newRespondToScheduleCommand(actorID, action, notes)
	if err != nil {
		return RespondToScheduleCommand{}, err
	}
	cmd.orderID = &orderID
	return cmd, nil
}

func newRespondToScheduleCommand(actorID kernel.UUID, action schedule.Action, notes *string) (RespondToScheduleCommand, error) {
	if err := errors.Join(actorID.Validate(), action.Validate()); err != nil {
		return RespondToScheduleCommand{}, err
	}

	cmd := RespondToScheduleCommand{
		actorID: actorID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}
	if notes != nil && strings.TrimSpace(*notes) != "" {
		trimmed := strings.TrimSpace(*notes)
		cmd.notes = &trimmed
	}
	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c RespondToScheduleCommand) Validate() error {
	return c.guard.Validate(ErrRespondToScheduleCommandIsNotConstructed)
}

// ScheduleID returns the targeted schedule id, if the command names one.
func (c RespondToScheduleCommand) ScheduleID() (kernel.UUID, bool) {
	if c.scheduleID == nil {
		return kernel.UUID{}, false
	}
	return *c.scheduleID, true
}

// OrderID returns the targeted order id, if the command names the proposal by its order.
func (c RespondToScheduleCommand) OrderID() (kernel.UUID, bool) {
	if c.orderID == nil {
		return kernel.UUID{}, false
	}
	return *c.orderID, true
}

// ActorID returns the responding party.
func (c RespondToScheduleCommand) ActorID() kernel.UUID { return c.actorID }

// Action returns confirm or reject.
func (c RespondToScheduleCommand) Action() schedule.Action { return c.action }

// Notes returns the optional response notes.
func (c RespondToScheduleCommand) Notes() *string { return c.notes }
