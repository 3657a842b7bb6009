package commands_test

import (
	"testing"

	"scheduling/internal/core/application/usecases/commands"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func respondHandler(m proposeMocks) commands.RespondToScheduleCommandHandler {
	return commands.NewRespondToScheduleCommandHandler(m.factory, m.authorizer, clock)
}

func TestRespondToScheduleCommandHandler_Handle_Confirm(t *testing.T) {
	ctx := t.Context()
	p := newParties(t)
	proposal := proposedBy(t, p, p.seller)
	notes := "  gate 4  "
	cmd, err := commands.NewRespondToScheduleCommand(proposal.ID(), p.buyer, schedule.ActionConfirm, &notes)
	require.NoError(t, err)

	m := newProposeMocks()
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("ScheduleRepository").Return(m.schedules).Once(),
		m.schedules.On("Get", ctx, proposal.ID()).Return(proposal, nil).Once(),
		m.uow.On("OrderRepository").Return(m.orders).Once(),
		m.orders.On("Get", ctx, p.order.ID()).Return(p.order, nil).Once(),
		m.authorizer.On("Authorize", order.RoleBuyer, ports.ActionConfirm).Return(true, nil).Once(),
		m.schedules.On("Resolve", ctx, proposal).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	confirmed, err := respondHandler(m).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, schedule.Confirmed, confirmed.Status())
	require.NotNil(t, confirmed.Confirmer())
	assert.Equal(t, p.buyer, *confirmed.Confirmer())
	require.NotNil(t, confirmed.ResponseNotes())
	assert.Equal(t, "gate 4", *confirmed.ResponseNotes())
	assert.Equal(t, fixedNow, confirmed.UpdatedAt())

	events := confirmed.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, schedule.EventConfirmed, events[0].Type)
	assert.Equal(t, p.seller, events[0].RecipientID)
	m.assert(t)
}

func TestRespondToScheduleCommandHandler_Handle_RejectByOrder(t *testing.T) {
	ctx := t.Context()
	p := newParties(t)
	proposal := proposedBy(t, p, p.buyer)
	cmd, err := commands.NewRespondToActiveScheduleCommand(p.order.ID(), p.seller, schedule.ActionReject, nil)
	require.NoError(t, err)

	m := newProposeMocks()
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("ScheduleRepository").Return(m.schedules).Once()
	m.schedules.On("GetActiveByOrder", ctx, p.order.ID()).Return(proposal, nil).Once()
	m.uow.On("OrderRepository").Return(m.orders).Once()
	m.orders.On("Get", ctx, p.order.ID()).Return(p.order, nil).Once()
	m.authorizer.On("Authorize", order.RoleSeller, ports.ActionReject).Return(true, nil).Once()
	m.schedules.On("Resolve", ctx, proposal).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	rejected, err := respondHandler(m).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, schedule.Rejected, rejected.Status())
	assert.Nil(t, rejected.ResponseNotes())
	m.schedules.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	m.assert(t)
}

func TestRespondToScheduleCommandHandler_Handle_NoActiveProposal(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRespondToActiveScheduleCommand(orderID, kernel.NewUUID(), schedule.ActionConfirm, nil)
	require.NoError(t, err)

	m := newProposeMocks()
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("ScheduleRepository").Return(m.schedules).Once()
	m.schedules.On("GetActiveByOrder", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("schedule", orderID.String())).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = respondHandler(m).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	m.uow.AssertNotCalled(t, "OrderRepository")
}

func TestRespondToScheduleCommandHandler_Handle_RefusedResponses(t *testing.T) {
	tests := []struct {
		name   string
		actor  func(p parties) kernel.UUID
		action schedule.Action
		want   error
	}{
		{
			name:   "proposer confirming their own proposal",
			actor:  func(p parties) kernel.UUID { return p.seller },
			action: schedule.ActionConfirm,
			want:   errs.ErrUnauthorized,
		},
		{
			name:   "proposer rejecting their own proposal",
			actor:  func(p parties) kernel.UUID { return p.seller },
			action: schedule.ActionReject,
			want:   errs.ErrUnauthorized,
		},
		{
			name:   "stranger confirming",
			actor:  func(parties) kernel.UUID { return kernel.NewUUID() },
			action: schedule.ActionConfirm,
			want:   errs.ErrUnauthorized,
		},
		{
			name:   "stranger rejecting",
			actor:  func(parties) kernel.UUID { return kernel.NewUUID() },
			action: schedule.ActionReject,
			want:   errs.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			p := newParties(t)
			proposal := proposedBy(t, p, p.seller)
			cmd, err := commands.NewRespondToScheduleCommand(proposal.ID(), tt.actor(p), tt.action, nil)
			require.NoError(t, err)

			m := newProposeMocks()
			m.factory.On("Create").Return(m.uow).Once()
			m.uow.On("Begin", ctx).Return(nil).Once()
			m.uow.On("ScheduleRepository").Return(m.schedules).Once()
			m.schedules.On("Get", ctx, proposal.ID()).Return(proposal, nil).Once()
			m.uow.On("OrderRepository").Return(m.orders).Once()
			m.orders.On("Get", ctx, p.order.ID()).Return(p.order, nil).Once()
			m.authorizer.On("Authorize", mock.Anything, mock.Anything).Return(true, nil).Maybe()
			m.uow.On("Rollback", ctx).Return(nil).Once()

			_, err = respondHandler(m).Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, schedule.Proposed, proposal.Status())
			m.schedules.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
			m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestRespondToScheduleCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	ctx := t.Context()
	p := newParties(t)
	proposal := proposedBy(t, p, p.seller)
	require.NoError(t, proposal.Reject(p.order, p.buyer, nil, fixedNow))
	cmd, err := commands.NewRespondToScheduleCommand(proposal.ID(), p.buyer, schedule.ActionConfirm, nil)
	require.NoError(t, err)

	m := newProposeMocks()
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("ScheduleRepository").Return(m.schedules).Once()
	m.schedules.On("Get", ctx, proposal.ID()).Return(proposal, nil).Once()
	m.uow.On("OrderRepository").Return(m.orders).Once()
	m.orders.On("Get", ctx, p.order.ID()).Return(p.order, nil).Once()
	m.authorizer.On("Authorize", order.RoleBuyer, ports.ActionConfirm).Return(true, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = respondHandler(m).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, schedule.Rejected, proposal.Status())
	m.schedules.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestRespondToScheduleCommandHandler_Handle_LostResolveRace(t *testing.T) {
	ctx := t.Context()
	p := newParties(t)
	stale := proposedBy(t, p, p.seller)

	// The row as the concurrent winner left it.
	winnerConfirmer := p.buyer
	current, err := schedule.Restore(stale.ID(), p.order.ID(), p.seller, &winnerConfirmer, schedule.Rejected,
		stale.Candidate(), nil, stale.CreatedAt(), fixedNow)
	require.NoError(t, err)

	cmd, err := commands.NewRespondToScheduleCommand(stale.ID(), p.buyer, schedule.ActionConfirm, nil)
	require.NoError(t, err)

	m := newProposeMocks()
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("ScheduleRepository").Return(m.schedules).Once()
	m.schedules.On("Get", ctx, stale.ID()).Return(stale, nil).Once()
	m.uow.On("OrderRepository").Return(m.orders).Once()
	m.orders.On("Get", ctx, p.order.ID()).Return(p.order, nil).Once()
	m.authorizer.On("Authorize", order.RoleBuyer, ports.ActionConfirm).Return(true, nil).Once()
	m.schedules.On("Resolve", ctx, stale).Return(ports.ErrScheduleNotProposed).Once()
	m.schedules.On("Get", ctx, stale.ID()).Return(current, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = respondHandler(m).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	var transition *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, schedule.Rejected.String(), transition.Current)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.assert(t)
}

func TestNewRespondToScheduleCommand(t *testing.T) {
	t.Run("blank notes are dropped", func(t *testing.T) {
		blank := "   "
		cmd, err := commands.NewRespondToScheduleCommand(kernel.NewUUID(), kernel.NewUUID(), schedule.ActionReject, &blank)

		require.NoError(t, err)
		assert.Nil(t, cmd.Notes())
		_, byOrder := cmd.OrderID()
		assert.False(t, byOrder)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := commands.NewRespondToScheduleCommand(kernel.NewUUID(), kernel.NewUUID(), schedule.ActionUnknown, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("by order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cmd, err := commands.NewRespondToActiveScheduleCommand(orderID, kernel.NewUUID(), schedule.ActionConfirm, nil)

		require.NoError(t, err)
		got, ok := cmd.OrderID()
		assert.True(t, ok)
		assert.Equal(t, orderID, got)
		_, byID := cmd.ScheduleID()
		assert.False(t, byID)
	})
}
