package policy

import (
	"encoding/json"
	"errors"
	"fmt"

	"scheduling/internal/core/domain/model/kernel"
)

// Window is a half-open permitted interval [Start, End) on the 24-hour clock.
//
// A window whose End is numerically less than or equal to its Start crosses midnight:
// [22:00, 02:00) admits 23:30 and 01:00 but not 02:00 or 21:59. Start == End covers the
// whole day.
//
//	22:00 ─────────── 24:00|00:00 ──────── 02:00
//	  └── admitted ──────────────────────┘  (02:00 excluded)
type Window struct {
	start kernel.TimeOfDay
	end   kernel.TimeOfDay
}

// NewWindow validates both bounds and builds a Window.
func NewWindow(start, end kernel.TimeOfDay) (Window, error) {
	if err := errors.Join(start.Validate(), end.Validate()); err != nil {
		return Window{}, err
	}
	return Window{start: start, end: end}, nil
}

// ParseWindow parses the bounds of a window from "HH:MM" strings.
func ParseWindow(start, end string) (Window, error) {
	s, startErr := kernel.ParseTimeOfDay(start)
	e, endErr := kernel.ParseTimeOfDay(end)
	if err := errors.Join(startErr, endErr); err != nil {
		return Window{}, err
	}
	return NewWindow(s, e)
}

// Start returns the first admitted minute.
func (w Window) Start() kernel.TimeOfDay { return w.start }

// End returns the first excluded minute.
func (w Window) End() kernel.TimeOfDay { return w.end }

// CrossesMidnight reports whether the window spans midnight.
func (w Window) CrossesMidnight() bool {
	return w.end <= w.start
}

// Length returns the number of admitted minutes.
func (w Window) Length() int {
	return w.unrolledEnd() - w.start.Minutes()
}

// unrolledEnd returns End on a clock that continues past midnight: a day is added when
// the window wraps.
func (w Window) unrolledEnd() int {
	end := w.end.Minutes()
	if w.CrossesMidnight() {
		end += kernel.MinutesPerDay
	}
	return end
}

// unroll lifts t onto the same continuous clock as unrolledEnd: a time numerically
// earlier than Start belongs to the following day.
func (w Window) unroll(t kernel.TimeOfDay) int {
	m := t.Minutes()
	if m < w.start.Minutes() {
		m += kernel.MinutesPerDay
	}
	return m
}

// Contains reports whether t is admitted by the window.
func (w Window) Contains(t kernel.TimeOfDay) bool {
	return w.unroll(t) < w.unrolledEnd()
}

// MinutesUntilEnd returns how many admitted minutes remain from t, or -1 when t is outside.
func (w Window) MinutesUntilEnd(t kernel.TimeOfDay) int {
	if !w.Contains(t) {
		return -1
	}
	return w.unrolledEnd() - w.unroll(t)
}

// DistanceFrom returns how far t lies outside the window, in minutes, measured to the
// nearer of the next Start and the previous End. It is zero when t is inside.
func (w Window) DistanceFrom(t kernel.TimeOfDay) int {
	if w.Contains(t) {
		return 0
	}
	untilStart := (w.start.Minutes() - t.Minutes() + kernel.MinutesPerDay) % kernel.MinutesPerDay
	sinceEnd := (t.Minutes() - w.end.Minutes() + kernel.MinutesPerDay) % kernel.MinutesPerDay
	// t == End is outside and 0 minutes past it; count that as the first excluded minute.
	sinceEnd++
	return min(untilStart, sinceEnd)
}

// Overlaps reports whether two windows admit at least one common minute.
func (w Window) Overlaps(other Window) bool {
	return w.Contains(other.start) || other.Contains(w.start)
}

// IsEqual compares both bounds.
func (w Window) IsEqual(other Window) bool {
	return w.start == other.start && w.end == other.end
}

// String renders the window as "HH:MM–HH:MM".
func (w Window) String() string {
	return fmt.Sprintf("%s–%s", w.start, w.end)
}

type windowJSON struct {
	Start kernel.TimeOfDay `json:"start"`
	End   kernel.TimeOfDay `json:"end"`
}

// MarshalJSON renders {"start":"HH:MM","end":"HH:MM"}.
func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(windowJSON{Start: w.start, End: w.end})
}

// UnmarshalJSON parses the form produced by MarshalJSON.
func (w *Window) UnmarshalJSON(data []byte) error {
	var raw windowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewWindow(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
