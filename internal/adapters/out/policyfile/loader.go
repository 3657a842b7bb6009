// Package policyfile loads the truck-ban ordinance from a YAML document.
//
// Example:
//
//	timezone: Asia/Manila
//	weightThresholdKg: 4500
//	boundaryBufferMinutes: 15
//	penalties: ["2000", "3000", "5000"]
//	exemptions: [fire-fighting-support, emergency-response]
//	zones:
//	  central-business-district:
//	    - {start: "10:00", end: "17:00"}
//	    - {start: "22:00", end: "06:00"}
package policyfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type windowDocument struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type policyDocument struct {
	Timezone              string                      `yaml:"timezone"`
	WeightThresholdKg     float64                     `yaml:"weightThresholdKg"`
	BoundaryBufferMinutes int                         `yaml:"boundaryBufferMinutes"`
	Penalties             []string                    `yaml:"penalties"`
	Exemptions            []string                    `yaml:"exemptions"`
	Zones                 map[string][]windowDocument `yaml:"zones"`
}

// Load reads and validates the policy file at path.
func Load(path string) (*policy.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	p, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("policy file %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a policy document. Unknown keys are rejected, and every problem in the
// document is reported, not just the first.
func Parse(r io.Reader) (*policy.Policy, error) {
	var doc policyDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("policy document", err)
	}

	var problems []error

	location, err := time.LoadLocation(doc.Timezone)
	if doc.Timezone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("timezone"))
	} else if err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("timezone", err))
	}

	rules := make([]policy.ZoneRules, 0, len(doc.Zones))
	for code, windows := range doc.Zones {
		zoneRules, err := parseZone(code, windows)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		rules = append(rules, zoneRules)
	}

	penalties := make([]decimal.Decimal, 0, len(doc.Penalties))
	for i, raw := range doc.Penalties {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("penalties[%d]", i), err))
			continue
		}
		penalties = append(penalties, amount)
	}

	exemptions := make([]policy.ExemptionCategory, 0, len(doc.Exemptions))
	for _, code := range doc.Exemptions {
		category, err := policy.ParseExemptionCategory(code)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		exemptions = append(exemptions, category)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return policy.NewPolicy(
		location,
		doc.WeightThresholdKg,
		rules,
		penalties,
		exemptions,
		time.Duration(doc.BoundaryBufferMinutes)*time.Minute,
	)
}

func parseZone(code string, windows []windowDocument) (policy.ZoneRules, error) {
	zone, err := policy.ParseZone(code)
	if err != nil {
		return policy.ZoneRules{}, err
	}

	parsed := make([]policy.Window, 0, len(windows))
	for i, w := range windows {
		window, err := policy.ParseWindow(w.Start, w.End)
		if err != nil {
			return policy.ZoneRules{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("zones.%s[%d]", code, i), err,
			)
		}
		parsed = append(parsed, window)
	}

	return policy.NewZoneRules(zone, parsed)
}
