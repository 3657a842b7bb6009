package policy

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"
)

// ZoneRules holds the permitted windows of one zone, ordered by start time.
// Invariant: no two windows overlap.
type ZoneRules struct {
	zone    Zone
	windows []Window
}

// NewZoneRules validates the zone and rejects overlapping or empty window sets.
func NewZoneRules(zone Zone, windows []Window) (ZoneRules, error) {
	if err := zone.Validate(); err != nil {
		return ZoneRules{}, err
	}
	if len(windows) == 0 {
		return ZoneRules{}, errs.NewValueIsRequiredErrorWithCause(
			"windows",
			fmt.Errorf("zone %s needs at least one permitted window", zone),
		)
	}

	var overlapErrs []error
	for i := range windows {
		for j := i + 1; j < len(windows); j++ {
			if windows[i].Overlaps(windows[j]) {
				overlapErrs = append(overlapErrs, fmt.Errorf("%s overlaps %s", windows[i], windows[j]))
			}
		}
	}
	if err := errors.Join(overlapErrs...); err != nil {
		return ZoneRules{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("windows of zone %s", zone), err)
	}

	sorted := slices.Clone(windows)
	slices.SortFunc(sorted, func(a, b Window) int {
		return a.Start().Minutes() - b.Start().Minutes()
	})

	return ZoneRules{zone: zone, windows: sorted}, nil
}

// Zone returns the zone these rules describe.
func (r ZoneRules) Zone() Zone { return r.zone }

// Windows returns a copy of the permitted windows.
func (r ZoneRules) Windows() []Window {
	return slices.Clone(r.windows)
}

// Permits returns the window that admits t, if any.
func (r ZoneRules) Permits(t kernel.TimeOfDay) (Window, bool) {
	for _, w := range r.windows {
		if w.Contains(t) {
			return w, true
		}
	}
	return Window{}, false
}

// Nearest returns the window(s) closest to t. Several windows are returned only when they
// are equally close. The result is empty when t is already permitted.
func (r ZoneRules) Nearest(t kernel.TimeOfDay) []Window {
	if _, ok := r.Permits(t); ok {
		return nil
	}

	best := math.MaxInt
	var nearest []Window
	for _, w := range r.windows {
		d := w.DistanceFrom(t)
		switch {
		case d < best:
			best = d
			nearest = []Window{w}
		case d == best:
			nearest = append(nearest, w)
		}
	}
	return nearest
}
