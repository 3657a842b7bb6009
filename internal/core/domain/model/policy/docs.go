// Package policy models the municipal truck-ban ordinance as configuration data.
//
// The package includes:
//   - Zone and ExemptionCategory: closed enumerations; unknown values are errors
//   - Window: a half-open permitted interval on a 24-hour clock with midnight wraparound
//   - ZoneRules: the non-overlapping windows of one zone
//   - Policy: threshold, zone rules, penalty schedule, exemptions and boundary buffer
//
// A Policy never changes after construction, so it is shared between request handlers
// without synchronization.
package policy
