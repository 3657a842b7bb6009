package commands

import (
	"context"
	"errors"
	"time"

	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/metrics"
)

// RespondToScheduleCommandHandler confirms or rejects a proposal on behalf of the counterparty.
//
// The proposal is resolved by id, or through the order's single Proposed schedule. The domain
// checks party membership, the Proposed status and that the actor is not the proposer. The
// write itself is conditional on the stored row still being Proposed; when a concurrent
// response got there first the row is read again and errs.InvalidTransitionError reports the
// status it ended in. The proposer's notification is committed with the transition.
//
// Example:
//
//	handler := NewRespondToScheduleCommandHandler(uowFactory, authorizer, time.Now)
//	cmd, _ := NewRespondToScheduleCommand(scheduleID, buyerID, schedule.ActionConfirm, nil)
//	confirmed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // someone already answered
//	}
type RespondToScheduleCommandHandler struct {
	uowFactory NegotiationUoWFactory
	authorizer ports.RoleAuthorizer
	now        func() time.Time
}

// NewRespondToScheduleCommandHandler creates the handler. A nil now defaults to time.Now.
func NewRespondToScheduleCommandHandler(
	uowFactory NegotiationUoWFactory,
	authorizer ports.RoleAuthorizer,
	now func() time.Time,
) RespondToScheduleCommandHandler {
	if now == nil {
		now = time.Now
	}
	return RespondToScheduleCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		now:        now,
	}
}

// Handle applies the response and returns the resolved schedule.
func (h RespondToScheduleCommandHandler) Handle(ctx context.Context, cmd RespondToScheduleCommand) (*schedule.Schedule, error) {
	resolved, err := h.handle(ctx, cmd)
	metrics.ResponsesTotal.WithLabelValues(cmd.Action().String(), metrics.Outcome(err)).Inc()
	return resolved, err
}

func (h RespondToScheduleCommandHandler) handle(ctx context.Context, cmd RespondToScheduleCommand) (*schedule.Schedule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduleRepository()

	proposal, err := h.find(ctx, scheduleRepo, cmd)
	if err != nil {
		return nil, err
	}

	ord, err := uow.OrderRepository().Get(ctx, proposal.OrderID())
	if err != nil {
		return nil, err
	}

	if role, ok := ord.Role(cmd.ActorID()); ok {
		allowed, authErr := h.authorizer.Authorize(role, actionFor(cmd.Action()))
		if authErr != nil {
			return nil, authErr
		}
		if !allowed {
			return nil, errs.NewUnauthorizedError(cmd.ActorID().String(),
				"the "+role.String()+" may not "+cmd.Action().String()+" schedules")
		}
	}

	if err = proposal.Respond(ord, cmd.ActorID(), cmd.Action(), cmd.Notes(), h.now()); err != nil {
		return nil, err
	}

	if err = scheduleRepo.Resolve(ctx, proposal); err != nil {
		if errors.Is(err, ports.ErrScheduleNotProposed) {
			return nil, h.lostRace(ctx, scheduleRepo, proposal, cmd.Action())
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return proposal, nil
}

// find resolves the targeted proposal. By order it is a point lookup of the single Proposed
// schedule; there is no fallback to other schedules of the order.
func (h RespondToScheduleCommandHandler) find(
	ctx context.Context,
	repo ports.ScheduleRepository,
	cmd RespondToScheduleCommand,
) (*schedule.Schedule, error) {
	if id, ok := cmd.ScheduleID(); ok {
		return repo.Get(ctx, id)
	}
	orderID, _ := cmd.OrderID()
	return repo.GetActiveByOrder(ctx, orderID)
}

// lostRace reports the status a concurrent response left the schedule in.
func (h RespondToScheduleCommandHandler) lostRace(
	ctx context.Context,
	repo ports.ScheduleRepository,
	proposal *schedule.Schedule,
	action schedule.Action,
) error {
	current, err := repo.Get(ctx, proposal.ID())
	if err != nil {
		return err
	}
	return errs.NewInvalidTransitionError(current.Status().String(), action.Target().String())
}

func actionFor(action schedule.Action) ports.ScheduleAction {
	if action == schedule.ActionReject {
		return ports.ActionReject
	}
	return ports.ActionConfirm
}
