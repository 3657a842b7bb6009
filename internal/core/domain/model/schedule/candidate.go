package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/guard"
)

// ErrCandidateIsNotConstructed is returned when validating a zero-value Candidate.
var ErrCandidateIsNotConstructed = errs.NewValueIsRequiredError("candidate must be created via NewCandidate")

// ExemptionClaim is the proposer's statement that the vehicle is excused from the window restriction.
type ExemptionClaim struct {
	Category policy.ExemptionCategory `json:"category"`
	IsExempt bool                     `json:"isExempt"`
}

// Candidate is a proposed delivery slot and the facts the ordinance is evaluated against.
//
// Only the date and time of day are structurally required. Zone, weight and exemption are
// judged by the compliance validator, so a Candidate with an unknown zone or a missing weight
// can still be built and evaluated; the verdict reports what is wrong with it.
type Candidate struct {
	date      kernel.Date
	timeOfDay kernel.TimeOfDay
	zone      policy.Zone
	weightKg  *float64
	routeTag  string
	exemption *ExemptionClaim
	address   string
	notes     string
	guard     guard.ConstructorGuard
}

// CandidateOption sets one of the optional Candidate fields.
type CandidateOption func(*Candidate)

// WithWeightKg records the vehicle's gross weight in kilograms.
func WithWeightKg(kg float64) CandidateOption {
	return func(c *Candidate) {
		c.weightKg = &kg
	}
}

// WithRouteTag records a free-form route label.
func WithRouteTag(tag string) CandidateOption {
	return func(c *Candidate) {
		c.routeTag = strings.TrimSpace(tag)
	}
}

// WithExemption records an exemption claim.
func WithExemption(category policy.ExemptionCategory, isExempt bool) CandidateOption {
	return func(c *Candidate) {
		c.exemption = &ExemptionClaim{Category: category, IsExempt: isExempt}
	}
}

// WithAddress records the delivery address.
func WithAddress(address string) CandidateOption {
	return func(c *Candidate) {
		c.address = strings.TrimSpace(address)
	}
}

// WithNotes records free-form notes from the proposer.
func WithNotes(notes string) CandidateOption {
	return func(c *Candidate) {
		c.notes = strings.TrimSpace(notes)
	}
}

// NewCandidate builds a Candidate for the given date, time of day and zone.
//
// Example:
//
//	date, _ := kernel.ParseDate("2026-10-20")
//	candidate, err := schedule.NewCandidate(date, kernel.MustTimeOfDay(3, 0), policy.ZoneCentralBusinessDistrict,
//	    schedule.WithWeightKg(5000),
//	    schedule.WithExemption(policy.ExemptionFireFightingSupport, true),
//	)
func NewCandidate(
	date kernel.Date,
	timeOfDay kernel.TimeOfDay,
	zone policy.Zone,
	opts ...CandidateOption,
) (Candidate, error) {
	if err := errors.Join(date.Validate(), timeOfDay.Validate()); err != nil {
		return Candidate{}, err
	}

	c := Candidate{
		date:      date,
		timeOfDay: timeOfDay,
		zone:      zone,
		guard:     guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c, nil
}

// Validate fails for the zero value.
func (c Candidate) Validate() error {
	return c.guard.Validate(ErrCandidateIsNotConstructed)
}

// Date returns the civil delivery date.
func (c Candidate) Date() kernel.Date { return c.date }

// TimeOfDay returns the delivery time on the zone's wall clock.
func (c Candidate) TimeOfDay() kernel.TimeOfDay { return c.timeOfDay }

// Zone returns the delivery zone; it may be policy.ZoneUnknown.
func (c Candidate) Zone() policy.Zone { return c.zone }

// WeightKg returns the vehicle weight and whether it was provided.
func (c Candidate) WeightKg() (float64, bool) {
	if c.weightKg == nil {
		return 0, false
	}
	return *c.weightKg, true
}

// RouteTag returns the optional route label.
func (c Candidate) RouteTag() string { return c.routeTag }

// Exemption returns the exemption claim, if any.
func (c Candidate) Exemption() (ExemptionClaim, bool) {
	if c.exemption == nil {
		return ExemptionClaim{}, false
	}
	return *c.exemption, true
}

// Address returns the optional delivery address.
func (c Candidate) Address() string { return c.address }

// Notes returns the optional proposer notes.
func (c Candidate) Notes() string { return c.notes }

// Summary renders a one-line description used in notifications.
func (c Candidate) Summary() string {
	return fmt.Sprintf("%s %s (%s)", c.date, c.timeOfDay, c.zone)
}

// IsEqual compares all fields.
func (c Candidate) IsEqual(other Candidate) bool {
	sameWeight := (c.weightKg == nil && other.weightKg == nil) ||
		(c.weightKg != nil && other.weightKg != nil && *c.weightKg == *other.weightKg)
	sameExemption := (c.exemption == nil && other.exemption == nil) ||
		(c.exemption != nil && other.exemption != nil && *c.exemption == *other.exemption)

	return c.date.IsEqual(other.date) &&
		c.timeOfDay == other.timeOfDay &&
		c.zone == other.zone &&
		sameWeight &&
		sameExemption &&
		c.routeTag == other.routeTag &&
		c.address == other.address &&
		c.notes == other.notes
}

type candidateJSON struct {
	Date      kernel.Date      `json:"date"`
	TimeOfDay kernel.TimeOfDay `json:"timeOfDay"`
	Zone      policy.Zone      `json:"zone"`
	WeightKg  *float64         `json:"weightKg,omitempty"`
	RouteTag  string           `json:"routeTag,omitempty"`
	Exemption *ExemptionClaim  `json:"exemption,omitempty"`
	Address   string           `json:"address,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (c Candidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(candidateJSON{
		Date:      c.date,
		TimeOfDay: c.timeOfDay,
		Zone:      c.zone,
		WeightKg:  c.weightKg,
		RouteTag:  c.routeTag,
		Exemption: c.exemption,
		Address:   c.address,
		Notes:     c.notes,
	})
}

// UnmarshalJSON implements json.Unmarshaler; the result is validated like NewCandidate.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	var raw candidateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	opts := []CandidateOption{WithRouteTag(raw.RouteTag), WithAddress(raw.Address), WithNotes(raw.Notes)}
	if raw.WeightKg != nil {
		opts = append(opts, WithWeightKg(*raw.WeightKg))
	}
	if raw.Exemption != nil {
		opts = append(opts, WithExemption(raw.Exemption.Category, raw.Exemption.IsExempt))
	}

	parsed, err := NewCandidate(raw.Date, raw.TimeOfDay, raw.Zone, opts...)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
