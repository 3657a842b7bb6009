// Package errs provides standardized error types for the scheduling application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an order or schedule cannot be found
//   - UnauthorizedError, ConflictingProposalError, InvalidTransitionError and
//     InvalidOrderStateError: the negotiation outcomes a caller must handle
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any error in a chain to a stable Kind string, so the presentation
// layer can branch on the outcome without matching message text.
package errs
