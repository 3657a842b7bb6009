package policy

import (
	"time"

	"scheduling/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DefaultLocationName is the zone the bootstrap policy reads its clock in.
const DefaultLocationName = "Asia/Manila"

// DefaultPolicy returns a development bootstrap modeled on a metro truck-ban ordinance:
// 4,500 kg threshold; central business district open 10:00–17:00 and 22:00–06:00; other
// roads open 09:00–17:00 and 21:00–06:00. Deployments load the authoritative figures from
// the policy file instead.
func DefaultPolicy() *Policy {
	loc, err := time.LoadLocation(DefaultLocationName)
	if err != nil {
		loc = time.FixedZone("PHT", 8*60*60)
	}

	cbd, _ := NewZoneRules(ZoneCentralBusinessDistrict, []Window{
		mustWindow(kernel.MustTimeOfDay(10, 0), kernel.MustTimeOfDay(17, 0)),
		mustWindow(kernel.MustTimeOfDay(22, 0), kernel.MustTimeOfDay(6, 0)),
	})
	outside, _ := NewZoneRules(ZoneOutsideCentralBusinessDistrict, []Window{
		mustWindow(kernel.MustTimeOfDay(9, 0), kernel.MustTimeOfDay(17, 0)),
		mustWindow(kernel.MustTimeOfDay(21, 0), kernel.MustTimeOfDay(6, 0)),
	})

	p, err := NewPolicy(
		loc,
		4500,
		[]ZoneRules{cbd, outside},
		[]decimal.Decimal{decimal.NewFromInt(2000), decimal.NewFromInt(3000), decimal.NewFromInt(5000)},
		AllExemptions(),
		15*time.Minute,
	)
	if err != nil {
		panic(err)
	}
	return p
}

func mustWindow(start, end kernel.TimeOfDay) Window {
	w, err := NewWindow(start, end)
	if err != nil {
		panic(err)
	}
	return w
}
