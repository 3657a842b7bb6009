// Package order holds the slice of a marketplace order that delivery scheduling depends on.
//
// Orders are owned by an external order store; this package models only what the
// negotiation workflow reads from them:
//   - Order: identity, the buyer and seller parties, and the lifecycle status
//   - Status: where the order is in its lifecycle, and whether it still accepts schedules
//   - Role: which side of the order a given actor is on
//
// Key business rules:
//   - Buyer and seller must be distinct, valid identifiers
//   - Delivered and Cancelled orders cannot have schedules proposed or answered
//   - An actor that is neither buyer nor seller has no role on the order
package order
