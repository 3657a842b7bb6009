package commands

import (
	"context"
	"errors"
	"fmt"

	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/pkg/errs"
)

// RegisterOrderCommandHandler stores a new order or mirrors the status of a known one.
//
// Example:
//
//	handler := NewRegisterOrderCommandHandler(uowFactory)
//	cmd, _ := NewRegisterOrderCommand(orderID, buyerID, sellerID, order.Pending)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order registration failed: %w", err)
//	}
type RegisterOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRegisterOrderCommandHandler creates a handler for order registration.
func NewRegisterOrderCommandHandler(uowFactory OrderUoWFactory) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the order, or updates the status of an existing order with the same parties.
// An existing order whose parties differ is rejected with errs.ValueIsInvalidError: the
// parties of an order never change.
func (h RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		o, newErr := order.RestoreOrder(cmd.OrderID(), cmd.BuyerID(), cmd.SellerID(), cmd.Status())
		if newErr != nil {
			return newErr
		}
		if err = orderRepo.Add(ctx, o); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if !existing.Buyer().IsEqual(cmd.BuyerID()) || !existing.Seller().IsEqual(cmd.SellerID()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"parties",
				fmt.Errorf("order %s is registered with different parties", cmd.OrderID()),
			)
		}
		if err = existing.ChangeStatus(cmd.Status()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, existing); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
