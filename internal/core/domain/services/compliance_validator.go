package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/domain/model/schedule"

	"github.com/shopspring/decimal"
)

// ComplianceValidator is a domain service that judges a candidate delivery slot against the
// truck-ban ordinance described by a policy.Policy.
//
// Evaluation order:
//   - vehicles lighter than the threshold are unregulated: valid, no findings
//   - a missing or non-positive weight is a violation, and the vehicle is treated as regulated
//   - a recognized exemption claim satisfies the window restriction ("other" adds a warning)
//   - an exemption the policy does not recognize is reported and the restriction still applies
//   - the zone must have rules; the time of day must fall in one of its windows
//   - a time close to the end of its window is a warning
//   - a date and time at or before now is a violation of its own
//
// Example usage:
//
//	validator := services.NewComplianceValidator()
//	verdict := validator.Evaluate(candidate, policy.DefaultPolicy(), time.Now())
//	if !verdict.IsValid {
//	    return services.NewPolicyViolationError(verdict)
//	}
type ComplianceValidator struct{}

// NewComplianceValidator creates a ComplianceValidator.
func NewComplianceValidator() ComplianceValidator {
	return ComplianceValidator{}
}

// Evaluate returns the verdict for candidate under p, with now as the reference instant for
// the past-date check. It has no side effects. An unconstructed policy yields a single
// unrecognized_zone violation, since no zone can be resolved against it.
func (v ComplianceValidator) Evaluate(candidate schedule.Candidate, p *policy.Policy, now time.Time) Verdict {
	verdict := newVerdict()

	if err := p.Validate(); err != nil {
		verdict.violate(CodeUnrecognizedZone, "No delivery policy is configured, so no zone can be checked.")
		return verdict.seal()
	}

	weight, hasWeight := candidate.WeightKg()
	weightKnown := hasWeight && !math.IsNaN(weight) && !math.IsInf(weight, 0)
	if weightKnown && weight < p.WeightThresholdKg() {
		return verdict.seal()
	}
	if !weightKnown {
		verdict.violate(CodeWeightRequired, fmt.Sprintf(
			"Provide the vehicle's gross weight in kilograms; vehicles of %s kg or more are subject to the truck ban.",
			formatKg(p.WeightThresholdKg()),
		))
	}

	// An exemption lifts the time windows, never the zone: the record must name a real zone.
	rules, zoneKnown := v.checkZone(candidate, p, &verdict)
	if !v.isExempt(candidate, p, &verdict) && zoneKnown {
		v.checkWindows(candidate, rules, p, &verdict)
	}

	v.checkNotInPast(candidate, p, now, &verdict)

	return verdict.seal()
}

// isExempt reports whether a recognized exemption lifts the window restriction, adding the
// warnings an exemption claim can raise.
func (v ComplianceValidator) isExempt(candidate schedule.Candidate, p *policy.Policy, verdict *Verdict) bool {
	claim, ok := candidate.Exemption()
	if !ok || !claim.IsExempt {
		return false
	}

	if !p.IsExemptionRecognized(claim.Category) {
		verdict.warn(CodeExemptionNotRecognized, fmt.Sprintf(
			"The exemption %q is not recognized by the ordinance, so the delivery windows still apply.",
			claim.Category,
		))
		return false
	}

	if !claim.Category.IsVerifiable() {
		verdict.warn(CodeExemptionUnverifiable,
			"The exemption is declared as \"other\" and cannot be verified automatically; keep supporting documents in the vehicle.")
	}
	return true
}

func (v ComplianceValidator) checkZone(
	candidate schedule.Candidate,
	p *policy.Policy,
	verdict *Verdict,
) (policy.ZoneRules, bool) {
	zone := candidate.Zone()
	rules, ok := p.RulesFor(zone)
	if !ok {
		verdict.violate(CodeUnrecognizedZone, fmt.Sprintf(
			"The delivery zone %q is not recognized; choose one of: %s.",
			zone, joinZones(p.Zones()),
		))
	}
	return rules, ok
}

func (v ComplianceValidator) checkWindows(
	candidate schedule.Candidate,
	rules policy.ZoneRules,
	p *policy.Policy,
	verdict *Verdict,
) {
	at := candidate.TimeOfDay()
	window, permitted := rules.Permits(at)
	if !permitted {
		v.reportOutsideWindow(at, rules, p, verdict)
		return
	}

	remaining := time.Duration(window.MinutesUntilEnd(at)) * time.Minute
	if remaining <= p.BoundaryBuffer() {
		verdict.warn(CodeNearWindowBoundary, fmt.Sprintf(
			"%s leaves only %d minutes before the %s window closes at %s; a late arrival would violate the truck ban.",
			at, int(remaining.Minutes()), window, window.End(),
		))
	}
}

func (v ComplianceValidator) reportOutsideWindow(
	at kernel.TimeOfDay,
	rules policy.ZoneRules,
	p *policy.Policy,
	verdict *Verdict,
) {
	message := fmt.Sprintf(
		"Heavy vehicles may not deliver in %s at %s; permitted windows are %s.",
		rules.Zone(), at, joinWindows(rules.Windows()),
	)
	if penalty := p.PenaltyFor(1); penalty.IsPositive() {
		message += fmt.Sprintf(" A first offense is fined %s.", penalty.StringFixed(2))
	}
	verdict.violate(CodeOutsidePermittedWindow, message)

	nearest := rules.Nearest(at)
	if len(nearest) == 0 {
		return
	}
	verdict.suggest(Suggestion{
		Message: fmt.Sprintf("Reschedule to %s, the nearest permitted window in %s (for example at %s).",
			joinWindows(nearest), rules.Zone(), nearest[0].Start()),
		Zone:          rules.Zone(),
		Windows:       nearest,
		SuggestedTime: nearest[0].Start(),
	})
}

func (v ComplianceValidator) checkNotInPast(
	candidate schedule.Candidate,
	p *policy.Policy,
	now time.Time,
	verdict *Verdict,
) {
	due := candidate.Date().At(candidate.TimeOfDay(), p.Location())
	if due.After(now) {
		return
	}
	verdict.violate(CodeScheduleInPast, fmt.Sprintf(
		"%s %s has already passed; choose a future date and time.",
		candidate.Date(), candidate.TimeOfDay(),
	))
}

func joinWindows(windows []policy.Window) string {
	parts := make([]string, 0, len(windows))
	for _, w := range windows {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, ", ")
}

func joinZones(zones []policy.Zone) string {
	parts := make([]string, 0, len(zones))
	for _, z := range zones {
		parts = append(parts, z.String())
	}
	return strings.Join(parts, ", ")
}

func formatKg(kg float64) string {
	return decimal.NewFromFloat(kg).String()
}
