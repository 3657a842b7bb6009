// Package services provides domain services that work across the policy and schedule models.
//
// The package includes:
//   - ComplianceValidator: judges a candidate delivery slot against the truck-ban ordinance
//   - Verdict: the structured result (violations, warnings and suggestions)
//   - PolicyViolationError: the error that carries a failing Verdict to the caller
//
// The validator is a pure function of the candidate, the policy and the reference time, so
// the same inputs always give the same verdict regardless of the server's time zone.
package services
