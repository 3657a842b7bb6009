package order_test

import (
	"testing"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	buyer := kernel.NewUUID()
	seller := kernel.NewUUID()

	t.Run("should create pending order with both parties", func(t *testing.T) {
		o, err := order.NewOrder(id, buyer, seller)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.Buyer().IsEqual(buyer))
		assert.True(t, o.Seller().IsEqual(seller))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, buyer, seller)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail when buyer and seller are the same actor", func(t *testing.T) {
		o, err := order.NewOrder(id, buyer, buyer)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "parties are invalid")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, seller)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep the restored status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.InTransit)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.Unknown)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Roles(t *testing.T) {
	buyer := kernel.NewUUID()
	seller := kernel.NewUUID()
	stranger := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), buyer, seller)
	require.NoError(t, err)

	t.Run("should resolve buyer and seller", func(t *testing.T) {
		role, ok := o.Role(buyer)
		assert.True(t, ok)
		assert.Equal(t, order.RoleBuyer, role)
		assert.Equal(t, "buyer", role.String())

		role, ok = o.Role(seller)
		assert.True(t, ok)
		assert.Equal(t, order.RoleSeller, role)
		assert.Equal(t, "seller", role.String())
	})

	t.Run("should report strangers as non-parties", func(t *testing.T) {
		role, ok := o.Role(stranger)
		assert.False(t, ok)
		assert.Equal(t, order.RoleNone, role)
		assert.False(t, o.IsParty(stranger))
	})

	t.Run("should return the other party", func(t *testing.T) {
		cp, err := o.Counterparty(buyer)
		require.NoError(t, err)
		assert.True(t, cp.IsEqual(seller))

		cp, err = o.Counterparty(seller)
		require.NoError(t, err)
		assert.True(t, cp.IsEqual(buyer))
	})

	t.Run("should refuse counterparty lookup for strangers", func(t *testing.T) {
		_, err := o.Counterparty(stranger)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestOrder_ValidateSchedulable(t *testing.T) {
	tests := []struct {
		status  order.Status
		wantErr bool
	}{
		{order.Pending, false},
		{order.Accepted, false},
		{order.InTransit, false},
		{order.Delivered, true},
		{order.Cancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), tt.status)
			require.NoError(t, err)

			err = o.ValidateSchedulable()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidOrderState)
			var stateErr *errs.InvalidOrderStateError
			require.ErrorAs(t, err, &stateErr)
			assert.Equal(t, tt.status.String(), stateErr.Status)
		})
	}
}

func TestOrder_ChangeStatus(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	require.NoError(t, o.ChangeStatus(order.Cancelled))
	assert.Equal(t, order.Cancelled, o.Status())

	require.Error(t, o.ChangeStatus(order.Status(42)))
	assert.Equal(t, order.Cancelled, o.Status())
}
