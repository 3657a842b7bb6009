// Package orderrepo persists the scheduling view of marketplace orders: the two parties
// and the order status.
package orderrepo

import (
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status   int       `gorm:"type:smallint;not null"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		BuyerID:  aggregate.Buyer().Bytes(),
		SellerID: aggregate.Seller().Bytes(),
		Status:   int(aggregate.Status()),
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, so a corrupted row fails validation
// instead of producing an order nobody could have created.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyer, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	seller, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, buyer, seller, order.Status(dto.Status))
}
