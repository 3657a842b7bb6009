package queries

import (
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/guard"
)

var ErrGetActiveProposalQueryIsNotConstructed = errors.New(
	"GetActiveProposalQuery must be created via NewGetActiveProposalQuery constructor",
)

// GetActiveProposalQuery asks for the order's current Proposed schedule on behalf of one of
// its parties.
//
// Example:
//
//	query, err := NewGetActiveProposalQuery(orderID, actorID)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing awaits an answer
//	}
type GetActiveProposalQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveProposalQuery validates the identifiers.
func NewGetActiveProposalQuery(orderID, actorID kernel.UUID) (GetActiveProposalQuery, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return GetActiveProposalQuery{}, err
	}
	return GetActiveProposalQuery{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveProposalQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveProposalQueryIsNotConstructed)
}

func (q GetActiveProposalQuery) OrderID() kernel.UUID { return q.orderID }

func (q GetActiveProposalQuery) ActorID() kernel.UUID { return q.actorID }
