package order

import (
	"fmt"

	"scheduling/internal/pkg/errs"
)

// Status represents the lifecycle state of a marketplace order as mirrored from the order store.
//
// State transitions (owned by the order store, listed for reference):
//
//	Pending ──> Accepted ──> InTransit ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──────> Cancelled
//
// Delivered and Cancelled are final; scheduling is refused for both.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is an order that was placed but not yet accepted by the seller.
	Pending

	// Accepted is an order the seller agreed to fulfil.
	Accepted

	// InTransit is an order that left the seller.
	InTransit

	// Delivered is an order handed over to the buyer.
	Delivered

	// Cancelled is an order withdrawn by either party.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// ParseStatus converts the name produced by String back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the known lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the order reached a state it never leaves.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// IsSchedulable reports whether delivery schedules may still be negotiated for the order.
//
// Schedulable statuses: Pending, Accepted, InTransit.
func (s Status) IsSchedulable() bool {
	return s.Validate() == nil && !s.IsFinal()
}
