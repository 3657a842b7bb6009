package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection reset")

	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("scheduleId", "42"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 42",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("scheduleId", "42", cause),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: scheduleId, ID is: 42 (cause: connection reset)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("zone"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: zone",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("zone", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: zone (cause: connection reset)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("time of day"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: time of day",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("time of day", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: time of day (cause: connection reset)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("hour", 25, 0, 23),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 25 is hour, min value is 0, max value is 23",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("minute", -1, 0, 59, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -1 is minute, min value is 0, max value is 59 (cause: connection reset)",
		},
		{
			name:     "unauthorized",
			err:      errs.NewUnauthorizedError("actor-1", "not a party to the order"),
			sentinel: errs.ErrUnauthorized,
			message:  "unauthorized: actor actor-1: not a party to the order",
		},
		{
			name:     "conflicting proposal",
			err:      errs.NewConflictingProposalError("order-1", "schedule-9"),
			sentinel: errs.ErrConflictingProposal,
			message:  "conflicting proposal: order order-1 already has proposed schedule schedule-9",
		},
		{
			name:     "conflicting proposal without a known winner",
			err:      errs.NewConflictingProposalErrorWithCause("order-1", "", cause),
			sentinel: errs.ErrConflictingProposal,
			message:  "conflicting proposal: order order-1 already has a proposed schedule (cause: connection reset)",
		},
		{
			name:     "invalid transition",
			err:      errs.NewInvalidTransitionError("Confirmed", "Rejected"),
			sentinel: errs.ErrInvalidTransition,
			message:  "invalid transition: cannot move from Confirmed to Rejected",
		},
		{
			name:     "invalid order state",
			err:      errs.NewInvalidOrderStateError("order-1", "Cancelled"),
			sentinel: errs.ErrInvalidOrderState,
			message:  "invalid order state: order order-1 is Cancelled",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
			require.ErrorIs(t, fmt.Errorf("wrapped: %w", tc.err), tc.sentinel)
		})
	}
}

func TestErrorFields(t *testing.T) {
	notFound := errs.NewObjectNotFoundError("orderId", "o-1")
	assert.Equal(t, "orderId", notFound.ParamName)
	assert.Equal(t, "o-1", notFound.ID)
	require.NoError(t, notFound.Cause)

	outOfRange := errs.NewValueIsOutOfRangeError("weight", 0.0, 0.1, 100000.0)
	assert.Equal(t, "weight", outOfRange.ParamName)
	assert.Equal(t, 0.0, outOfRange.Value)
	assert.Equal(t, 0.1, outOfRange.Min)
	assert.Equal(t, 100000.0, outOfRange.Max)

	transition := errs.NewInvalidTransitionError("Rejected", "Confirmed")
	assert.Equal(t, "Rejected", transition.Current)
	assert.Equal(t, "Confirmed", transition.Attempted)
}

func TestMessagesAreSingleLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("notes", "line one\nline two", 0, 10)

	assert.Contains(t, err.Error(), "line one line two")
	assert.NotContains(t, err.Error(), "\n")

	assert.Equal(t, "object not found: %!s(int=7)", errs.NewObjectNotFoundError("orderId", 7).Error())
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected errs.Kind
	}{
		{"nil", nil, ""},
		{"unauthorized", errs.NewUnauthorizedError("a", "b"), errs.KindUnauthorized},
		{"conflict", errs.NewConflictingProposalError("o", "s"), errs.KindConflictingProposal},
		{"policy violation", fmt.Errorf("propose: %w", errs.ErrPolicyViolation), errs.KindPolicyViolation},
		{"transition", errs.NewInvalidTransitionError("Rejected", "Confirmed"), errs.KindInvalidTransition},
		{"order state", errs.NewInvalidOrderStateError("o", "Delivered"), errs.KindInvalidOrderState},
		{"not found", errs.NewObjectNotFoundError("order", "o"), errs.KindNotFound},
		{"required", errs.NewValueIsRequiredError("zone"), errs.KindValueIsRequired},
		{"invalid", errs.NewValueIsInvalidError("zone"), errs.KindValueIsInvalid},
		{"out of range", errs.NewValueIsOutOfRangeError("minute", 2000, 0, 1439), errs.KindValueIsOutOfRange},
		{"infrastructure", errors.New("connection refused"), errs.KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.KindOf(tc.err))
		})
	}
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, errs.IsBusiness(errs.NewInvalidTransitionError("a", "b")))
	assert.True(t, errs.IsBusiness(errs.NewObjectNotFoundError("order", "o")))
	assert.False(t, errs.IsBusiness(errors.New("boom")))
	assert.False(t, errs.IsBusiness(nil))
}
