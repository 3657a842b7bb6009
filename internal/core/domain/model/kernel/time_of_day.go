package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"scheduling/internal/pkg/errs"
)

// MinutesPerDay is the length of the 24-hour clock TimeOfDay lives on.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute precision, counted in minutes since midnight.
// It is deliberately not an instant: the same TimeOfDay means the same local clock reading in
// whichever zone the policy describes, so comparisons never depend on the server locale.
// The zero value is midnight and is valid.
//
// Example:
//
//	start, _ := kernel.ParseTimeOfDay("22:00")
//	end, _ := kernel.NewTimeOfDay(2, 0)
//	fmt.Println(start, end) // 22:00 02:00
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from an hour in [0, 23] and a minute in [0, 59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return 0, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay is NewTimeOfDay for literals known to be valid; it panics otherwise.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses "H:MM" or "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || hh == "" || len(hh) > 2 {
		return 0, errs.NewValueIsInvalidErrorWithCause("time of day", fmt.Errorf("%q is not in HH:MM format", s))
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	return NewTimeOfDay(hour, minute)
}

// TimeOfDayFromMinutes restores a TimeOfDay from its persisted minute count.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	t := TimeOfDay(minutes)
	if err := t.Validate(); err != nil {
		return 0, err
	}
	return t, nil
}

// Validate rejects values outside [0, MinutesPerDay).
func (t TimeOfDay) Validate() error {
	if t < 0 || t >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("time of day minutes", int(t), 0, MinutesPerDay-1)
	}
	return nil
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// String renders the value as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(data []byte) error {
	parsed, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
