package policy_test

import (
	"testing"
	"time"

	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZone(t *testing.T) {
	zone, err := policy.ParseZone("central-business-district")
	require.NoError(t, err)
	assert.Equal(t, policy.ZoneCentralBusinessDistrict, zone)

	zone, err = policy.ParseZone("downtown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, policy.ZoneUnknown, zone)
	assert.Equal(t, "unknown", zone.String())
}

func TestParseExemptionCategory(t *testing.T) {
	for _, c := range policy.AllExemptions() {
		parsed, err := policy.ParseExemptionCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := policy.ParseExemptionCategory("diplomatic")
	require.Error(t, err)

	assert.False(t, policy.ExemptionOther.IsVerifiable())
	assert.True(t, policy.ExemptionFireFightingSupport.IsVerifiable())
	assert.False(t, policy.ExemptionUnknown.IsVerifiable())
}

func TestNewZoneRules(t *testing.T) {
	t.Run("sorts windows by start", func(t *testing.T) {
		rules, err := policy.NewZoneRules(policy.ZoneCentralBusinessDistrict, []policy.Window{
			window(t, "22:00", "06:00"),
			window(t, "10:00", "17:00"),
		})

		require.NoError(t, err)
		windows := rules.Windows()
		require.Len(t, windows, 2)
		assert.Equal(t, "10:00–17:00", windows[0].String())
		assert.Equal(t, "22:00–06:00", windows[1].String())
	})

	t.Run("rejects overlapping windows", func(t *testing.T) {
		_, err := policy.NewZoneRules(policy.ZoneCentralBusinessDistrict, []policy.Window{
			window(t, "22:00", "06:00"),
			window(t, "05:00", "09:00"),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "overlaps")
	})

	t.Run("rejects unknown zone and empty windows", func(t *testing.T) {
		_, err := policy.NewZoneRules(policy.ZoneUnknown, []policy.Window{window(t, "10:00", "14:00")})
		require.Error(t, err)

		_, err = policy.NewZoneRules(policy.ZoneCentralBusinessDistrict, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestZoneRules_Nearest(t *testing.T) {
	rules, err := policy.NewZoneRules(policy.ZoneOutsideCentralBusinessDistrict, []policy.Window{
		window(t, "09:00", "12:00"),
		window(t, "15:01", "18:00"),
	})
	require.NoError(t, err)

	t.Run("permitted time has no suggestion", func(t *testing.T) {
		assert.Empty(t, rules.Nearest(at(t, "10:00")))
	})

	t.Run("closest window wins", func(t *testing.T) {
		nearest := rules.Nearest(at(t, "14:00"))
		require.Len(t, nearest, 1)
		assert.Equal(t, "15:01–18:00", nearest[0].String())
	})

	t.Run("ties return both windows", func(t *testing.T) {
		// 13:30 is 91 minutes past the first window's close and 91 minutes before 15:01
		nearest := rules.Nearest(at(t, "13:30"))
		require.Len(t, nearest, 2)
	})
}

func newPolicy(t *testing.T, penalties ...int64) *policy.Policy {
	t.Helper()
	rules, err := policy.NewZoneRules(policy.ZoneCentralBusinessDistrict, []policy.Window{window(t, "09:00", "17:00")})
	require.NoError(t, err)

	amounts := make([]decimal.Decimal, 0, len(penalties))
	for _, p := range penalties {
		amounts = append(amounts, decimal.NewFromInt(p))
	}

	p, err := policy.NewPolicy(time.UTC, 4500, []policy.ZoneRules{rules}, amounts,
		[]policy.ExemptionCategory{policy.ExemptionFireFightingSupport}, 10*time.Minute)
	require.NoError(t, err)
	return p
}

func TestNewPolicy(t *testing.T) {
	t.Run("valid policy", func(t *testing.T) {
		p := newPolicy(t, 2000, 3000)

		require.NoError(t, p.Validate())
		assert.InDelta(t, 4500.0, p.WeightThresholdKg(), 0.0001)
		assert.Equal(t, []policy.Zone{policy.ZoneCentralBusinessDistrict}, p.Zones())
		assert.True(t, p.IsExemptionRecognized(policy.ExemptionFireFightingSupport))
		assert.False(t, p.IsExemptionRecognized(policy.ExemptionOther))
	})

	t.Run("collects every construction error", func(t *testing.T) {
		_, err := policy.NewPolicy(nil, 0, nil,
			[]decimal.Decimal{decimal.NewFromInt(-1)},
			[]policy.ExemptionCategory{policy.ExemptionUnknown}, -time.Second)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "location")
		assert.Contains(t, err.Error(), "weight threshold")
		assert.Contains(t, err.Error(), "zone rules")
		assert.Contains(t, err.Error(), "penalties")
		assert.Contains(t, err.Error(), "exemption category")
		assert.Contains(t, err.Error(), "boundary buffer")
	})

	t.Run("rejects decreasing penalties", func(t *testing.T) {
		rules, err := policy.NewZoneRules(policy.ZoneCentralBusinessDistrict, []policy.Window{window(t, "09:00", "17:00")})
		require.NoError(t, err)

		_, err = policy.NewPolicy(time.UTC, 4500, []policy.ZoneRules{rules},
			[]decimal.Decimal{decimal.NewFromInt(3000), decimal.NewFromInt(2000)}, nil, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var p *policy.Policy
		assert.Equal(t, policy.ErrPolicyIsNotConstructed, p.Validate())
	})
}

func TestPolicy_PenaltyFor(t *testing.T) {
	p := newPolicy(t, 2000, 3000, 5000)

	assert.True(t, decimal.Zero.Equal(p.PenaltyFor(0)))
	assert.True(t, decimal.NewFromInt(2000).Equal(p.PenaltyFor(1)))
	assert.True(t, decimal.NewFromInt(3000).Equal(p.PenaltyFor(2)))
	assert.True(t, decimal.NewFromInt(5000).Equal(p.PenaltyFor(3)))
	assert.True(t, decimal.NewFromInt(5000).Equal(p.PenaltyFor(7)))

	assert.True(t, decimal.Zero.Equal(newPolicy(t).PenaltyFor(1)))
}

func TestPolicy_AvailableWindows(t *testing.T) {
	p := newPolicy(t)

	windows, err := p.AvailableWindows(policy.ZoneCentralBusinessDistrict)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "09:00–17:00", windows[0].String())

	_, err = p.AvailableWindows(policy.ZoneOutsideCentralBusinessDistrict)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDefaultPolicy(t *testing.T) {
	p := policy.DefaultPolicy()

	require.NoError(t, p.Validate())
	assert.Len(t, p.Zones(), 2)
	assert.Len(t, p.Exemptions(), len(policy.AllExemptions()))
}
