package order_test

import (
	"testing"

	"scheduling/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Pending))
	assert.Equal(t, 2, int(order.Accepted))
	assert.Equal(t, 3, int(order.InTransit))
	assert.Equal(t, 4, int(order.Delivered))
	assert.Equal(t, 5, int(order.Cancelled))
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Accepted, order.InTransit, order.Delivered, order.Cancelled} {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		err := order.Status(99).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "99 is not a valid status")
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "InTransit", order.InTransit.String())
	assert.Equal(t, "Unknown", order.Status(-1).String())
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("Accepted")
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, s)

	s, err = order.ParseStatus("Unknown")
	require.Error(t, err)
	assert.Equal(t, order.Unknown, s)
}

func TestStatus_IsSchedulable(t *testing.T) {
	assert.True(t, order.Pending.IsSchedulable())
	assert.True(t, order.Accepted.IsSchedulable())
	assert.True(t, order.InTransit.IsSchedulable())
	assert.False(t, order.Delivered.IsSchedulable())
	assert.False(t, order.Cancelled.IsSchedulable())
	assert.False(t, order.Unknown.IsSchedulable())
	assert.True(t, order.Delivered.IsFinal())
}
