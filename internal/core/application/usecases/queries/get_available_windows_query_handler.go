package queries

import (
	"context"

	"scheduling/internal/core/domain/model/policy"

	"github.com/shopspring/decimal"
)

// GetAvailableWindowsQueryResponse describes the ordinance as it applies to one zone.
type GetAvailableWindowsQueryResponse struct {
	Zone              policy.Zone                `json:"zone"`
	Windows           []policy.Window            `json:"windows"`
	WeightThresholdKg float64                    `json:"weightThresholdKg"`
	Timezone          string                     `json:"timezone"`
	Penalties         []decimal.Decimal          `json:"penalties"`
	Exemptions        []policy.ExemptionCategory `json:"exemptions"`
	BoundaryBufferMin int                        `json:"boundaryBufferMinutes"`
}

// GetAvailableWindowsQueryHandler reads the configured policy.
type GetAvailableWindowsQueryHandler struct {
	policy *policy.Policy
}

// NewGetAvailableWindowsQueryHandler creates the handler.
func NewGetAvailableWindowsQueryHandler(p *policy.Policy) GetAvailableWindowsQueryHandler {
	return GetAvailableWindowsQueryHandler{policy: p}
}

// Handle returns the zone's windows in start order, the penalty for each offense count and the
// recognized exemptions. A zone the policy has no rules for is errs.ObjectNotFoundError.
func (h GetAvailableWindowsQueryHandler) Handle(
	_ context.Context,
	query GetAvailableWindowsQuery,
) (GetAvailableWindowsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailableWindowsQueryResponse{}, err
	}

	windows, err := h.policy.AvailableWindows(query.Zone())
	if err != nil {
		return GetAvailableWindowsQueryResponse{}, err
	}

	return GetAvailableWindowsQueryResponse{
		Zone:              query.Zone(),
		Windows:           windows,
		WeightThresholdKg: h.policy.WeightThresholdKg(),
		Timezone:          h.policy.Location().String(),
		Penalties:         h.policy.Penalties(),
		Exemptions:        h.policy.Exemptions(),
		BoundaryBufferMin: int(h.policy.BoundaryBuffer().Minutes()),
	}, nil
}
