package queries

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrGetScheduleHistoryQueryIsNotConstructed = errors.New(
	"GetScheduleHistoryQuery must be created via NewGetScheduleHistoryQuery constructor",
)

// GetScheduleHistoryQuery asks for every schedule of an order, oldest first: rejected
// proposals, at most one confirmed record and the proposal awaiting an answer.
type GetScheduleHistoryQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetScheduleHistoryQuery validates the identifiers.
func NewGetScheduleHistoryQuery(orderID, actorID kernel.UUID) (GetScheduleHistoryQuery, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return GetScheduleHistoryQuery{}, err
	}
	return GetScheduleHistoryQuery{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetScheduleHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleHistoryQueryIsNotConstructed)
}

func (q GetScheduleHistoryQuery) OrderID() kernel.UUID { return q.orderID }

func (q GetScheduleHistoryQuery) ActorID() kernel.UUID { return q.actorID }
