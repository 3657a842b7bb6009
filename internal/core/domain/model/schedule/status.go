package schedule

import (
	"fmt"

	"scheduling/internal/pkg/errs"
)

// Status is the lifecycle state of a Schedule.
//
// State transitions:
//
//	Proposed ──┬──> Confirmed
//	           └──> Rejected
//
// Confirmed and Rejected are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Proposed is the initial status, waiting for the counterparty.
	Proposed

	// Confirmed means the counterparty accepted the proposal.
	Confirmed

	// Rejected means the counterparty declined the proposal.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Proposed:  "Proposed",
		Confirmed: "Confirmed",
		Rejected:  "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Proposed:  "Proposed",
		Confirmed: "Confirmed",
		Rejected:  "Rejected",
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

// Validate checks if the Status value is valid.
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

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Rejected
}

// Confirm transitions Proposed to Confirmed.
//
// Returns errs.InvalidTransitionError from any other status.
func (s Status) Confirm() (Status, error) {
	return s.resolve(Confirmed)
}

// Reject transitions Proposed to Rejected.
//
// Returns errs.InvalidTransitionError from any other status.
func (s Status) Reject() (Status, error) {
	return s.resolve(Rejected)
}

func (s Status) resolve(target Status) (Status, error) {
	if s != Proposed {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
