package commands

import (
	"context"
	"errors"
	"strconv"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/domain/services"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/metrics"
)

// ProposeScheduleCommandHandler records a new delivery proposal for an order.
//
// Checks, in order:
//   - the order exists (errs.ObjectNotFoundError)
//   - the order accepts schedules (errs.InvalidOrderStateError)
//   - the actor is the buyer or the seller and the role may propose (errs.UnauthorizedError)
//   - the candidate complies with the policy (services.PolicyViolationError with the full verdict)
//   - the order has no other Proposed schedule (errs.ConflictingProposalError naming it)
//
// The proposal and its notification for the counterparty are committed together. When a
// concurrent proposal wins the race for the same order, the store rejects the second insert
// and the loser receives errs.ConflictingProposalError naming the winner.
//
// Example:
//
//	handler := NewProposeScheduleCommandHandler(uowFactory, authorizer, policy.DefaultPolicy(), time.Now)
//	proposal, err := handler.Handle(ctx, cmd)
//	var violation *services.PolicyViolationError
//	if errors.As(err, &violation) {
//	    // show violation.Verdict to the proposer
//	}
type ProposeScheduleCommandHandler struct {
	uowFactory NegotiationUoWFactory
	authorizer ports.RoleAuthorizer
	policy     *policy.Policy
	validator  services.ComplianceValidator
	now        func() time.Time
}

// NewProposeScheduleCommandHandler creates the handler. A nil now defaults to time.Now.
func NewProposeScheduleCommandHandler(
	uowFactory NegotiationUoWFactory,
	authorizer ports.RoleAuthorizer,
	p *policy.Policy,
	now func() time.Time,
) ProposeScheduleCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ProposeScheduleCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		policy:     p,
		validator:  services.NewComplianceValidator(),
		now:        now,
	}
}

// Handle validates and stores the proposal and returns it.
func (h ProposeScheduleCommandHandler) Handle(ctx context.Context, cmd ProposeScheduleCommand) (*schedule.Schedule, error) {
	proposal, err := h.handle(ctx, cmd)
	metrics.ProposalsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	return proposal, err
}

func (h ProposeScheduleCommandHandler) handle(ctx context.Context, cmd ProposeScheduleCommand) (*schedule.Schedule, error) {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = ord.ValidateSchedulable(); err != nil {
		return nil, err
	}
	if err = authorize(h.authorizer, ord, cmd.ActorID(), ports.ActionPropose); err != nil {
		return nil, err
	}

	now := h.now()
	verdict := h.validator.Evaluate(cmd.Candidate(), h.policy, now)
	metrics.VerdictsTotal.WithLabelValues(strconv.FormatBool(verdict.IsValid)).Inc()
	if !verdict.IsValid {
		return nil, services.NewPolicyViolationError(verdict)
	}

	scheduleRepo := uow.ScheduleRepository()

	active, err := scheduleRepo.GetActiveByOrder(ctx, cmd.OrderID())
	switch {
	case err == nil:
		return nil, errs.NewConflictingProposalError(cmd.OrderID().String(), active.ID().String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	proposal, err := schedule.NewProposal(kernel.NewUUID(), ord, cmd.ActorID(), cmd.Candidate(), now)
	if err != nil {
		return nil, err
	}

	if err = scheduleRepo.Add(ctx, proposal); err != nil {
		if errors.Is(err, errs.ErrConflictingProposal) {
			_ = uow.Rollback(ctx)
			return nil, h.nameWinner(ctx, cmd.OrderID(), err)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return proposal, nil
}

// nameWinner looks up the proposal that won a concurrent insert so the loser can be told
// which one it is. The original conflict is returned unchanged if the lookup fails.
func (h ProposeScheduleCommandHandler) nameWinner(ctx context.Context, orderID kernel.UUID, conflict error) error {
	var conflictErr *errs.ConflictingProposalError
	if !errors.As(conflict, &conflictErr) || conflictErr.ExistingID != "" {
		return conflict
	}

	winner, err := h.uowFactory.Create().ScheduleRepository().GetActiveByOrder(ctx, orderID)
	if err != nil {
		return conflict
	}
	return errs.NewConflictingProposalErrorWithCause(orderID.String(), winner.ID().String(), conflictErr.Cause)
}

// authorize resolves the actor's role on the order and asks the authorizer whether that
// role may perform action.
func authorize(authorizer ports.RoleAuthorizer, ord *order.Order, actor kernel.UUID, action ports.ScheduleAction) error {
	role, ok := ord.Role(actor)
	if !ok {
		return errs.NewUnauthorizedError(actor.String(), "not a party to order "+ord.ID().String())
	}

	allowed, err := authorizer.Authorize(role, action)
	if err != nil {
		return err
	}
	if !allowed {
		return errs.NewUnauthorizedError(actor.String(), "the "+role.String()+" may not "+string(action)+" schedules")
	}
	return nil
}
