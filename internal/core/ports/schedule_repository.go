package ports

import (
	"context"
	"errors"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
)

// ErrScheduleNotProposed is returned by ScheduleRepository.Resolve when the stored schedule
// had already left the Proposed status, i.e. another response won the race.
var ErrScheduleNotProposed = errors.New("schedule is no longer proposed")

// ScheduleRepository persists Schedule aggregates.
//
// Implementations must enforce at most one Proposed schedule per order at the store level,
// so that two concurrent proposals can never both be stored.
type ScheduleRepository interface {
	// Add stores a new proposal. When the order already has a Proposed schedule it returns
	// an errs.ConflictingProposalError; ExistingID may be empty if the store could not name it.
	Add(ctx context.Context, aggregate *schedule.Schedule) error

	// Resolve stores a confirmed or rejected schedule with a single conditional write that only
	// succeeds while the stored row is still Proposed. Otherwise it returns ErrScheduleNotProposed,
	// or errs.ObjectNotFoundError when the row does not exist.
	Resolve(ctx context.Context, aggregate *schedule.Schedule) error

	// Get returns the schedule or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error)

	// GetActiveByOrder returns the order's Proposed schedule or errs.ObjectNotFoundError.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*schedule.Schedule, error)

	// ListByOrder returns every schedule of the order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*schedule.Schedule, error)
}
