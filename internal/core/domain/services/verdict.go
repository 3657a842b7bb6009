package services

import (
	"strings"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/pkg/errs"
)

// FindingCode is the stable, machine-readable identifier of a Finding.
type FindingCode string

const (
	// CodeWeightRequired: the vehicle weight is missing or not a positive number.
	CodeWeightRequired FindingCode = "weight_required"
	// CodeExemptionUnverifiable: the claimed exemption is recognized but needs human review.
	CodeExemptionUnverifiable FindingCode = "exemption_unverifiable"
	// CodeExemptionNotRecognized: the claimed exemption is not in the policy; the ordinance still applies.
	CodeExemptionNotRecognized FindingCode = "exemption_not_recognized"
	// CodeUnrecognizedZone: the zone is unknown or has no rules.
	CodeUnrecognizedZone FindingCode = "unrecognized_zone"
	// CodeOutsidePermittedWindow: the time of day is outside every permitted window of the zone.
	CodeOutsidePermittedWindow FindingCode = "outside_permitted_window"
	// CodeNearWindowBoundary: the time of day leaves less than the boundary buffer before the window closes.
	CodeNearWindowBoundary FindingCode = "near_window_boundary"
	// CodeScheduleInPast: the delivery date and time is not after the reference time.
	CodeScheduleInPast FindingCode = "schedule_in_past"
)

// Finding is one violation or warning with a message ready to be shown to the user.
type Finding struct {
	Code    FindingCode `json:"code"`
	Message string      `json:"message"`
}

// Suggestion points the proposer at permitted windows so a corrected slot can be offered
// without querying the policy again.
type Suggestion struct {
	Message       string           `json:"message"`
	Zone          policy.Zone      `json:"zone"`
	Windows       []policy.Window  `json:"windows"`
	SuggestedTime kernel.TimeOfDay `json:"suggestedTime"`
}

// Verdict is the outcome of evaluating a candidate. IsValid is true iff Violations is empty;
// warnings and suggestions never affect it. The slices are never nil.
type Verdict struct {
	IsValid     bool         `json:"isValid"`
	Violations  []Finding    `json:"violations"`
	Warnings    []Finding    `json:"warnings"`
	Suggestions []Suggestion `json:"suggestions"`
}

func newVerdict() Verdict {
	return Verdict{
		Violations:  []Finding{},
		Warnings:    []Finding{},
		Suggestions: []Suggestion{},
	}
}

func (v *Verdict) violate(code FindingCode, message string) {
	v.Violations = append(v.Violations, Finding{Code: code, Message: message})
}

func (v *Verdict) warn(code FindingCode, message string) {
	v.Warnings = append(v.Warnings, Finding{Code: code, Message: message})
}

func (v *Verdict) suggest(s Suggestion) {
	v.Suggestions = append(v.Suggestions, s)
}

func (v *Verdict) seal() Verdict {
	v.IsValid = len(v.Violations) == 0
	return *v
}

// HasViolation reports whether a violation with the given code was found.
func (v Verdict) HasViolation(code FindingCode) bool {
	return hasCode(v.Violations, code)
}

// HasWarning reports whether a warning with the given code was found.
func (v Verdict) HasWarning(code FindingCode) bool {
	return hasCode(v.Warnings, code)
}

func hasCode(findings []Finding, code FindingCode) bool {
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}

// PolicyViolationError is returned when a proposal fails compliance. It carries the
// complete Verdict so the caller can show every violation, warning and suggestion.
type PolicyViolationError struct {
	Verdict Verdict
}

// NewPolicyViolationError wraps a failing verdict.
func NewPolicyViolationError(verdict Verdict) *PolicyViolationError {
	return &PolicyViolationError{Verdict: verdict}
}

func (e *PolicyViolationError) Error() string {
	messages := make([]string, 0, len(e.Verdict.Violations))
	for _, f := range e.Verdict.Violations {
		messages = append(messages, f.Message)
	}
	return errs.ErrPolicyViolation.Error() + ": " + strings.Join(messages, "; ")
}

func (e *PolicyViolationError) Unwrap() error {
	return errs.ErrPolicyViolation
}
