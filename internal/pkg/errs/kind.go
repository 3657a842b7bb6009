package errs

import "errors"

// Kind is the stable identifier a caller branches on. Values never change once published.
type Kind string

const (
	KindUnauthorized        Kind = "unauthorized"
	KindConflictingProposal Kind = "conflicting_proposal"
	KindPolicyViolation     Kind = "policy_violation"
	KindInvalidTransition   Kind = "invalid_transition"
	KindInvalidOrderState   Kind = "invalid_order_state"
	KindNotFound            Kind = "not_found"
	KindValueIsRequired     Kind = "value_is_required"
	KindValueIsInvalid      Kind = "value_is_invalid"
	KindValueIsOutOfRange   Kind = "value_is_out_of_range"
	KindInternal            Kind = "internal"
)

var kindsBySentinel = []struct {
	sentinel error
	kind     Kind
}{
	{ErrUnauthorized, KindUnauthorized},
	{ErrConflictingProposal, KindConflictingProposal},
	{ErrPolicyViolation, KindPolicyViolation},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrInvalidOrderState, KindInvalidOrderState},
	{ErrObjectNotFound, KindNotFound},
	{ErrValueIsRequired, KindValueIsRequired},
	{ErrValueIsOutOfRange, KindValueIsOutOfRange},
	{ErrValueIsInvalid, KindValueIsInvalid},
}

// KindOf classifies err. Anything that does not wrap a known sentinel is KindInternal,
// which callers treat as an unexpected infrastructure failure.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindsBySentinel {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}

// IsBusiness reports whether err is an expected, caller-recoverable outcome.
func IsBusiness(err error) bool {
	k := KindOf(err)
	return k != "" && k != KindInternal
}
