// Package ports defines the contracts between the scheduling core and its infrastructure:
// persistence, the transaction boundary, notification delivery and role authorization.
package ports

import (
	"context"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
)

// OrderRepository persists the scheduling view of marketplace orders.
type OrderRepository interface {
	// Add stores an order mirrored from the order store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores a changed order. Returns errs.ObjectNotFoundError if it does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
