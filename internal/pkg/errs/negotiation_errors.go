package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the actor may not perform the operation on the order.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflictingProposal is returned when the order already has a pending proposal.
	ErrConflictingProposal = errors.New("conflicting proposal")
	// ErrPolicyViolation is returned when a candidate schedule breaks the zone policy.
	ErrPolicyViolation = errors.New("policy violation")
	// ErrInvalidTransition is returned when a record is not in the source state an action requires.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrInvalidOrderState is returned when the order does not permit scheduling.
	ErrInvalidOrderState = errors.New("invalid order state")
)

// UnauthorizedError names the actor and why the action was refused.
type UnauthorizedError struct {
	ActorID string
	Reason  string
}

// NewUnauthorizedError creates an UnauthorizedError.
func NewUnauthorizedError(actorID, reason string) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID, Reason: reason}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: actor %s: %s", ErrUnauthorized.Error(), e.ActorID, e.Reason)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ConflictingProposalError names the order and the proposal that is still pending.
// ExistingID is empty when the competing record could not be read back.
type ConflictingProposalError struct {
	OrderID    string
	ExistingID string
	Cause      error
}

// NewConflictingProposalError creates a ConflictingProposalError.
func NewConflictingProposalError(orderID, existingID string) *ConflictingProposalError {
	return &ConflictingProposalError{OrderID: orderID, ExistingID: existingID}
}

// NewConflictingProposalErrorWithCause creates a ConflictingProposalError wrapping the store failure
// that revealed the conflict.
func NewConflictingProposalErrorWithCause(orderID, existingID string, cause error) *ConflictingProposalError {
	return &ConflictingProposalError{OrderID: orderID, ExistingID: existingID, Cause: cause}
}

func (e *ConflictingProposalError) Error() string {
	msg := fmt.Sprintf("%s: order %s already has a proposed schedule", ErrConflictingProposal.Error(), e.OrderID)
	if e.ExistingID != "" {
		msg = fmt.Sprintf("%s: order %s already has proposed schedule %s",
			ErrConflictingProposal.Error(), e.OrderID, e.ExistingID)
	}
	return withCause(msg, e.Cause)
}

func (e *ConflictingProposalError) Unwrap() error {
	return ErrConflictingProposal
}

// InvalidTransitionError identifies the current state and the state the caller tried to reach.
type InvalidTransitionError struct {
	Current   string
	Attempted string
}

// NewInvalidTransitionError creates an InvalidTransitionError.
func NewInvalidTransitionError(current, attempted string) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Attempted: attempted}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", ErrInvalidTransition.Error(), e.Current, e.Attempted)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidOrderStateError identifies the order and the status that blocks scheduling.
type InvalidOrderStateError struct {
	OrderID string
	Status  string
}

// NewInvalidOrderStateError creates an InvalidOrderStateError.
func NewInvalidOrderStateError(orderID, status string) *InvalidOrderStateError {
	return &InvalidOrderStateError{OrderID: orderID, Status: status}
}

func (e *InvalidOrderStateError) Error() string {
	return fmt.Sprintf("%s: order %s is %s", ErrInvalidOrderState.Error(), e.OrderID, e.Status)
}

func (e *InvalidOrderStateError) Unwrap() error {
	return ErrInvalidOrderState
}
