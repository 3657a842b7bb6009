package schedule

import (
	"fmt"
	"strings"

	"scheduling/internal/pkg/errs"
)

// Action is the counterparty's answer to a proposal.
type Action int

const (
	ActionUnknown Action = iota
	ActionConfirm
	ActionReject
)

// ParseAction accepts "confirm" and "reject" in any letter case.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirm":
		return ActionConfirm, nil
	case "reject":
		return ActionReject, nil
	default:
		return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is neither confirm nor reject", s))
	}
}

// Validate rejects ActionUnknown and out-of-range values.
func (a Action) Validate() error {
	if a != ActionConfirm && a != ActionReject {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// Target is the status the action moves a proposal to.
func (a Action) Target() Status {
	switch a {
	case ActionConfirm:
		return Confirmed
	case ActionReject:
		return Rejected
	case ActionUnknown:
		return Unknown
	default:
		return Unknown
	}
}

func (a Action) String() string {
	switch a {
	case ActionConfirm:
		return "confirm"
	case ActionReject:
		return "reject"
	case ActionUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}
