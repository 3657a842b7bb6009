package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/guard"
)

var ErrProposeScheduleCommandIsNotConstructed = errors.New(
	"ProposeScheduleCommand must be created via NewProposeScheduleCommand constructor",
)

// ProposeScheduleCommand asks to propose a delivery slot for an order on behalf of one of its parties.
//
// Example:
//
//	cmd, err := NewProposeScheduleCommand(orderID, actorID, candidate)
//	if err != nil {
//	    return err
//	}
//	proposal, err := handler.Handle(ctx, cmd)
type ProposeScheduleCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	candidate schedule.Candidate

	guard guard.ConstructorGuard
}

// NewProposeScheduleCommand validates the identifiers and the candidate structure.
// Policy compliance of the candidate is decided by the handler.
func NewProposeScheduleCommand(orderID, actorID kernel.UUID, candidate schedule.Candidate) (ProposeScheduleCommand, error) {
	cmd := ProposeScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setCandidate(candidate),
	); err != nil {
		return ProposeScheduleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProposeScheduleCommand) Validate() error {
	return c.guard.Validate(ErrProposeScheduleCommandIsNotConstructed)
}

// OrderID returns the order to schedule.
func (c ProposeScheduleCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the party proposing.
func (c ProposeScheduleCommand) ActorID() kernel.UUID { return c.actorID }

// Candidate returns the proposed slot.
func (c ProposeScheduleCommand) Candidate() schedule.Candidate { return c.candidate }

func (c *ProposeScheduleCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ProposeScheduleCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *ProposeScheduleCommand) setCandidate(candidate schedule.Candidate) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	c.candidate = candidate
	return nil
}
