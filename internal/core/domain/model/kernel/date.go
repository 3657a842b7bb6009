package kernel

import (
	"fmt"
	"time"

	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/guard"
)

// DateLayout is the wire and storage format of Date.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when validating a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate or ParseDate")

// Date is a civil calendar date without a time zone. Combined with a TimeOfDay and a
// location it yields the instant a delivery is due (see At).
type Date struct { //nolint:recvcheck //using for validation
	year  int
	month time.Month
	day   int
	guard guard.ConstructorGuard
}

// NewDate builds a Date, rejecting values time.Date would normalize (e.g. February 30).
func NewDate(year int, month time.Month, day int) (Date, error) {
	probe := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if probe.Year() != year || probe.Month() != month || probe.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, int(month), day),
		)
	}
	return Date{year: year, month: month, day: day, guard: guard.NewConstructorGuard()}, nil
}

// ParseDate parses the "2006-01-02" layout.
func ParseDate(s string) (Date, error) {
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return NewDate(parsed.Year(), parsed.Month(), parsed.Day())
}

// DateOf returns the civil date of instant t as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	local := t.In(loc)
	d, _ := NewDate(local.Year(), local.Month(), local.Day())
	return d
}

// Validate fails for the zero value.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Year returns the year component.
func (d Date) Year() int { return d.year }

// Month returns the month component.
func (d Date) Month() time.Month { return d.month }

// Day returns the day-of-month component.
func (d Date) Day() int { return d.day }

// At returns the instant at which the wall clock in loc reads this date and time of day.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, t.Hour(), t.Minute(), 0, 0, loc)
}

// IsEqual compares the calendar components.
func (d Date) IsEqual(other Date) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// String renders the date in DateLayout.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
