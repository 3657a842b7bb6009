// Package schedule models a delivery schedule negotiated between the buyer and seller of an order.
//
// The package includes:
//   - Candidate: the proposed date, time, zone, vehicle weight and optional exemption claim
//   - Status: the Proposed -> Confirmed | Rejected state machine
//   - Action: the two responses a counterparty can give
//   - Schedule: the aggregate root recording who proposed, who answered and how
//   - Event: the notification raised for the other party on every transition
//
// Key business rules:
//   - A schedule starts Proposed and ends Confirmed or Rejected; terminal schedules never change
//   - Only a party of the order other than the proposer can confirm or reject
//   - At most one Proposed schedule exists per order (enforced by the store, see the postgres adapter)
//
// Every transition records an Event that the unit of work persists next to the schedule,
// so the notification is never lost when the transition commits and never sent when it does not.
package schedule
