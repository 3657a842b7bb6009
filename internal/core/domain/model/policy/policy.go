package policy

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"scheduling/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPolicyIsNotConstructed is returned when validating a Policy that bypassed NewPolicy.
var ErrPolicyIsNotConstructed = errors.New("Policy must be created via NewPolicy constructor")

// Policy is the truck-ban ordinance configuration: where the clock lives, which vehicles are
// regulated, when each zone admits them, what repeat offenses cost and which uses are exempt.
//
// A Policy is immutable once built and safe for concurrent readers without locking. The
// concrete clock times and amounts are supplied from configuration and must be checked
// against the ordinance text, not hard-coded.
type Policy struct {
	location          *time.Location
	weightThresholdKg float64
	zones             map[Zone]ZoneRules
	penalties         []decimal.Decimal
	exemptions        map[ExemptionCategory]struct{}
	boundaryBuffer    time.Duration
	isConstructed     bool
}

// NewPolicy validates and assembles a Policy.
//
// Rules:
//   - location is required; time-of-day values are read on its wall clock
//   - weightThresholdKg must be positive; lighter vehicles are unregulated
//   - every zone appears at most once
//   - penalties are non-negative and non-decreasing (offense 1, 2, 3, ...)
//   - exemptions are known categories
//   - boundaryBuffer is not negative
func NewPolicy(
	location *time.Location,
	weightThresholdKg float64,
	rules []ZoneRules,
	penalties []decimal.Decimal,
	exemptions []ExemptionCategory,
	boundaryBuffer time.Duration,
) (*Policy, error) {
	p := &Policy{
		zones:         make(map[Zone]ZoneRules, len(rules)),
		exemptions:    make(map[ExemptionCategory]struct{}, len(exemptions)),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setLocation(location),
		p.setWeightThreshold(weightThresholdKg),
		p.setZones(rules),
		p.setPenalties(penalties),
		p.setExemptions(exemptions),
		p.setBoundaryBuffer(boundaryBuffer),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Policy came from NewPolicy.
func (p *Policy) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPolicyIsNotConstructed
	}
	return nil
}

// Location returns the time zone whose wall clock the windows are expressed in.
func (p *Policy) Location() *time.Location { return p.location }

// WeightThresholdKg returns the weight at or above which the ordinance applies.
func (p *Policy) WeightThresholdKg() float64 { return p.weightThresholdKg }

// BoundaryBuffer returns the margin before a window closes that triggers a lateness warning.
func (p *Policy) BoundaryBuffer() time.Duration { return p.boundaryBuffer }

// RulesFor returns the rules of zone, if the policy defines any.
func (p *Policy) RulesFor(zone Zone) (ZoneRules, bool) {
	r, ok := p.zones[zone]
	return r, ok
}

// Zones returns the zones the policy covers, in declaration order.
func (p *Policy) Zones() []Zone {
	zones := slices.Collect(maps.Keys(p.zones))
	slices.Sort(zones)
	return zones
}

// AvailableWindows returns the permitted windows of zone so a caller can offer valid times
// without re-deriving them.
func (p *Policy) AvailableWindows(zone Zone) ([]Window, error) {
	r, ok := p.zones[zone]
	if !ok {
		return nil, errs.NewObjectNotFoundError("zone", zone.String())
	}
	return r.Windows(), nil
}

// IsExemptionRecognized reports whether category belongs to the policy's exemption set.
func (p *Policy) IsExemptionRecognized(category ExemptionCategory) bool {
	_, ok := p.exemptions[category]
	return ok
}

// Exemptions returns the recognized categories in declaration order.
func (p *Policy) Exemptions() []ExemptionCategory {
	categories := slices.Collect(maps.Keys(p.exemptions))
	slices.Sort(categories)
	return categories
}

// Penalties returns the penalty schedule, first offense first.
func (p *Policy) Penalties() []decimal.Decimal {
	return slices.Clone(p.penalties)
}

// PenaltyFor returns the fine for the offense-th violation (counting from 1). Offenses past
// the end of the schedule pay the last amount; offense < 1 or an empty schedule pays zero.
func (p *Policy) PenaltyFor(offense int) decimal.Decimal {
	if offense < 1 || len(p.penalties) == 0 {
		return decimal.Zero
	}
	if offense > len(p.penalties) {
		return p.penalties[len(p.penalties)-1]
	}
	return p.penalties[offense-1]
}

func (p *Policy) setLocation(location *time.Location) error {
	if location == nil {
		return errs.NewValueIsRequiredError("location")
	}
	p.location = location
	return nil
}

func (p *Policy) setWeightThreshold(kg float64) error {
	if !(kg > 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight threshold", fmt.Errorf("%v is not greater than 0", kg))
	}
	p.weightThresholdKg = kg
	return nil
}

func (p *Policy) setZones(rules []ZoneRules) error {
	if len(rules) == 0 {
		return errs.NewValueIsRequiredError("zone rules")
	}
	for _, r := range rules {
		if err := r.Zone().Validate(); err != nil {
			return err
		}
		if _, dup := p.zones[r.Zone()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("zone rules", fmt.Errorf("zone %s is defined twice", r.Zone()))
		}
		p.zones[r.Zone()] = r
	}
	return nil
}

func (p *Policy) setPenalties(penalties []decimal.Decimal) error {
	for i, amount := range penalties {
		if amount.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause("penalties", fmt.Errorf("offense %d amount %s is negative", i+1, amount))
		}
		if i > 0 && amount.LessThan(penalties[i-1]) {
			return errs.NewValueIsInvalidErrorWithCause(
				"penalties",
				fmt.Errorf("offense %d amount %s is lower than offense %d", i+1, amount, i),
			)
		}
	}
	p.penalties = slices.Clone(penalties)
	return nil
}

func (p *Policy) setExemptions(exemptions []ExemptionCategory) error {
	for _, c := range exemptions {
		if err := c.Validate(); err != nil {
			return err
		}
		p.exemptions[c] = struct{}{}
	}
	return nil
}

func (p *Policy) setBoundaryBuffer(d time.Duration) error {
	if d < 0 {
		return errs.NewValueIsInvalidErrorWithCause("boundary buffer", fmt.Errorf("%s is negative", d))
	}
	p.boundaryBuffer = d
	return nil
}
