package policy

import (
	"fmt"

	"scheduling/internal/pkg/errs"
)

// ExemptionCategory enumerates the vehicle uses excused from the time-window restriction.
type ExemptionCategory int

const (
	ExemptionUnknown ExemptionCategory = iota
	ExemptionFireFightingSupport
	ExemptionEmergencyResponse
	ExemptionPublicUtilityRepair
	ExemptionGovernmentRegistered
	ExemptionHeavyEquipmentOnSite
	ExemptionCalamityResponse
	// ExemptionOther is the free-text category; it cannot be verified mechanically.
	ExemptionOther
)

func getExemptionCodes() map[ExemptionCategory]string {
	//nolint:exhaustive // ExemptionUnknown has no wire code
	return map[ExemptionCategory]string{
		ExemptionFireFightingSupport:  "fire-fighting-support",
		ExemptionEmergencyResponse:    "emergency-response",
		ExemptionPublicUtilityRepair:  "public-utility-repair",
		ExemptionGovernmentRegistered: "government-registered",
		ExemptionHeavyEquipmentOnSite: "heavy-equipment-on-site",
		ExemptionCalamityResponse:     "calamity-response",
		ExemptionOther:                "other",
	}
}

// AllExemptions lists every known category in declaration order.
func AllExemptions() []ExemptionCategory {
	return []ExemptionCategory{
		ExemptionFireFightingSupport,
		ExemptionEmergencyResponse,
		ExemptionPublicUtilityRepair,
		ExemptionGovernmentRegistered,
		ExemptionHeavyEquipmentOnSite,
		ExemptionCalamityResponse,
		ExemptionOther,
	}
}

// ParseExemptionCategory maps a wire code to a category.
func ParseExemptionCategory(code string) (ExemptionCategory, error) {
	for category, c := range getExemptionCodes() {
		if c == code {
			return category, nil
		}
	}
	return ExemptionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"exemption category",
		fmt.Errorf("%q is not a recognized exemption category", code),
	)
}

// Validate rejects ExemptionUnknown and out-of-range values.
func (c ExemptionCategory) Validate() error {
	if _, ok := getExemptionCodes()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("exemption category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// IsVerifiable reports whether the category can be checked without human review.
func (c ExemptionCategory) IsVerifiable() bool {
	return c != ExemptionOther && c.Validate() == nil
}

// String returns the wire code, or "unknown".
func (c ExemptionCategory) String() string {
	if code, ok := getExemptionCodes()[c]; ok {
		return code
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (c ExemptionCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "unknown" decodes to ExemptionUnknown.
func (c *ExemptionCategory) UnmarshalText(data []byte) error {
	if string(data) == "unknown" {
		*c = ExemptionUnknown
		return nil
	}
	parsed, err := ParseExemptionCategory(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
