package commands

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/pkg/guard"
)

var (
	ErrRegisterOrderCommandIsNotConstructed = errors.New(
		"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
	)
)

// RegisterOrderCommand mirrors an order from the marketplace order store into the
// scheduling store: its parties and current status.
//
// Example:
//
//	cmd, err := NewRegisterOrderCommand(orderID, buyerID, sellerID, order.Accepted)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewRegisterOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register order: %w", err)
//	}
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	buyerID  kernel.UUID
	sellerID kernel.UUID
	status   order.Status

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand validates the identifiers and the status.
func NewRegisterOrderCommand(orderID, buyerID, sellerID kernel.UUID, status order.Status) (RegisterOrderCommand, error) {
	cmd := RegisterOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParties(buyerID, sellerID),
		cmd.setStatus(status),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

// OrderID returns the order identifier shared with the order store.
func (c RegisterOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the buyer's identifier.
func (c RegisterOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// SellerID returns the seller's identifier.
func (c RegisterOrderCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Status returns the order's current status.
func (c RegisterOrderCommand) Status() order.Status {
	return c.status
}

func (c *RegisterOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RegisterOrderCommand) setParties(buyerID, sellerID kernel.UUID) error {
	if err := errors.Join(buyerID.Validate(), sellerID.Validate()); err != nil {
		return err
	}

	c.buyerID = buyerID
	c.sellerID = sellerID
	return nil
}

func (c *RegisterOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
