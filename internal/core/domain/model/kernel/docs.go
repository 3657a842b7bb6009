// Package kernel provides the shared value objects of the scheduling domain.
//
// The package includes:
//   - UUID: identifiers for orders, schedules, actors and outbox messages
//   - TimeOfDay: a minute-precision wall-clock value on a single 24-hour clock
//   - Date: a civil calendar date without a time zone
//
// TimeOfDay and Date are deliberately zone-free. Only the ZonePolicy knows which
// location its clock refers to, which keeps compliance checks independent of the
// server locale.
package kernel
