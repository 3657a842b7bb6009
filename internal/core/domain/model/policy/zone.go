package policy

import (
	"fmt"

	"scheduling/internal/pkg/errs"
)

// Zone is the closed set of delivery-area classifications the ordinance distinguishes.
// Policy data is keyed by Zone, so a value outside the set is a validation error rather
// than a string that silently matches nothing.
type Zone int

const (
	// ZoneUnknown is the zero value and never has rules.
	ZoneUnknown Zone = iota

	// ZoneCentralBusinessDistrict covers deliveries inside the central business district.
	ZoneCentralBusinessDistrict

	// ZoneOutsideCentralBusinessDistrict covers every other regulated road.
	ZoneOutsideCentralBusinessDistrict
)

func getZoneCodes() map[Zone]string {
	//nolint:exhaustive // ZoneUnknown has no wire code
	return map[Zone]string{
		ZoneCentralBusinessDistrict:        "central-business-district",
		ZoneOutsideCentralBusinessDistrict: "outside-central-business-district",
	}
}

// AllZones lists every known zone in declaration order.
func AllZones() []Zone {
	return []Zone{ZoneCentralBusinessDistrict, ZoneOutsideCentralBusinessDistrict}
}

// ParseZone maps a wire code to a Zone. Unrecognized input returns ZoneUnknown and an error;
// callers that want the validator to report it may keep the ZoneUnknown result.
func ParseZone(code string) (Zone, error) {
	for zone, c := range getZoneCodes() {
		if c == code {
			return zone, nil
		}
	}
	return ZoneUnknown, errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%q is not a recognized zone", code))
}

// Validate rejects ZoneUnknown and out-of-range values.
func (z Zone) Validate() error {
	if _, ok := getZoneCodes()[z]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the wire code, or "unknown".
func (z Zone) String() string {
	if c, ok := getZoneCodes()[z]; ok {
		return c
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler. ZoneUnknown marshals as "unknown" so that a
// rejected candidate can still be echoed back to the caller.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "unknown" decodes to ZoneUnknown.
func (z *Zone) UnmarshalText(data []byte) error {
	if string(data) == "unknown" {
		*z = ZoneUnknown
		return nil
	}
	parsed, err := ParseZone(string(data))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}
