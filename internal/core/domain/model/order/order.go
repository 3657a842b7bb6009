package order

import (
	"errors"
	"fmt"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the scheduling view of a marketplace order: who the two parties are and
// whether the order still accepts delivery schedules.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Buyer and seller must be valid and different from each other
//   - Status is one of the known lifecycle states
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier shared with the order store
	id kernel.UUID

	// buyerID is the party receiving the delivery
	buyerID kernel.UUID

	// sellerID is the party shipping the delivery
	sellerID kernel.UUID

	// status is the lifecycle state mirrored from the order store
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed order in the Pending status.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), buyerID, sellerID)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, buyerID, sellerID kernel.UUID) (*Order, error) {
	return RestoreOrder(id, buyerID, sellerID, Pending)
}

// RestoreOrder rebuilds an Order from persisted or mirrored state.
// All invariants are checked again; a row that violates them is rejected.
func RestoreOrder(id, buyerID, sellerID kernel.UUID, status Status) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, sellerID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Buyer returns the buyer's identifier.
func (o *Order) Buyer() kernel.UUID {
	return o.buyerID
}

// Seller returns the seller's identifier.
func (o *Order) Seller() kernel.UUID {
	return o.sellerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Role returns the side of the order the actor is on.
// The boolean is false (with RoleNone) when the actor is not a party.
func (o *Order) Role(actor kernel.UUID) (Role, bool) {
	switch {
	case actor.IsEqual(o.buyerID):
		return RoleBuyer, true
	case actor.IsEqual(o.sellerID):
		return RoleSeller, true
	default:
		return RoleNone, false
	}
}

// IsParty reports whether the actor is the buyer or the seller.
func (o *Order) IsParty(actor kernel.UUID) bool {
	_, ok := o.Role(actor)
	return ok
}

// Counterparty returns the other party of the order.
//
// Returns:
//   - the seller when actor is the buyer, the buyer when actor is the seller
//   - errs.UnauthorizedError when actor is not a party
func (o *Order) Counterparty(actor kernel.UUID) (kernel.UUID, error) {
	role, ok := o.Role(actor)
	if !ok {
		return kernel.UUID{}, errs.NewUnauthorizedError(actor.String(), "not a party to order "+o.id.String())
	}
	if role == RoleBuyer {
		return o.sellerID, nil
	}
	return o.buyerID, nil
}

// ValidateSchedulable returns errs.InvalidOrderStateError when the order is
// Delivered or Cancelled.
func (o *Order) ValidateSchedulable() error {
	if !o.status.IsSchedulable() {
		return errs.NewInvalidOrderStateError(o.id.String(), o.status.String())
	}
	return nil
}

// ChangeStatus mirrors a status change made in the order store.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(buyerID, sellerID kernel.UUID) error {
	if err := errors.Join(buyerID.Validate(), sellerID.Validate()); err != nil {
		return err
	}
	if buyerID.IsEqual(sellerID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"parties are invalid",
			fmt.Errorf("buyer and seller are both %s", buyerID.String()),
		)
	}
	o.buyerID = buyerID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
