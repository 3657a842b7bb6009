package queries

import (
	"errors"

	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/pkg/guard"
)

var ErrGetAvailableWindowsQueryIsNotConstructed = errors.New(
	"GetAvailableWindowsQuery must be created via NewGetAvailableWindowsQuery constructor",
)

// GetAvailableWindowsQuery asks for the permitted delivery windows of a zone together with
// the rest of the ordinance a proposer needs to know.
type GetAvailableWindowsQuery struct {
	zone policy.Zone

	guard guard.ConstructorGuard
}

// NewGetAvailableWindowsQuery rejects unknown zones.
func NewGetAvailableWindowsQuery(zone policy.Zone) (GetAvailableWindowsQuery, error) {
	if err := zone.Validate(); err != nil {
		return GetAvailableWindowsQuery{}, err
	}
	return GetAvailableWindowsQuery{zone: zone, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableWindowsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableWindowsQueryIsNotConstructed)
}

func (q GetAvailableWindowsQuery) Zone() policy.Zone { return q.zone }
