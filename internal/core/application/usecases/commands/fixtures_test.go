package commands_test

import (
	"testing"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/domain/model/schedule"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// testPolicy permits heavy vehicles in the business district between 09:00 and 17:00 UTC.
func testPolicy(t *testing.T) *policy.Policy {
	t.Helper()
	window, err := policy.ParseWindow("09:00", "17:00")
	require.NoError(t, err)
	rules, err := policy.NewZoneRules(policy.ZoneCentralBusinessDistrict, []policy.Window{window})
	require.NoError(t, err)

	p, err := policy.NewPolicy(
		time.UTC,
		4500,
		[]policy.ZoneRules{rules},
		[]decimal.Decimal{decimal.NewFromInt(2000), decimal.NewFromInt(3000)},
		[]policy.ExemptionCategory{policy.ExemptionFireFightingSupport},
		10*time.Minute,
	)
	require.NoError(t, err)
	return p
}

func heavyCandidate(t *testing.T, at string, opts ...schedule.CandidateOption) schedule.Candidate {
	t.Helper()
	date, err := kernel.ParseDate("2026-10-20")
	require.NoError(t, err)
	tod, err := kernel.ParseTimeOfDay(at)
	require.NoError(t, err)
	opts = append([]schedule.CandidateOption{schedule.WithWeightKg(5000)}, opts...)
	c, err := schedule.NewCandidate(date, tod, policy.ZoneCentralBusinessDistrict, opts...)
	require.NoError(t, err)
	return c
}

type parties struct {
	order  *order.Order
	buyer  kernel.UUID
	seller kernel.UUID
}

func newParties(t *testing.T) parties {
	t.Helper()
	buyer, seller := kernel.NewUUID(), kernel.NewUUID()
	o, err := order.RestoreOrder(kernel.NewUUID(), buyer, seller, order.Accepted)
	require.NoError(t, err)
	return parties{order: o, buyer: buyer, seller: seller}
}

// proposedBy returns a stored-looking proposal for the order, with its events cleared.
func proposedBy(t *testing.T, p parties, proposer kernel.UUID) *schedule.Schedule {
	t.Helper()
	s, err := schedule.NewProposal(kernel.NewUUID(), p.order, proposer, heavyCandidate(t, "10:00"), fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	s.ClearDomainEvents()
	return s
}
