package service

import "math"

// BudgetBand is a named, contiguous GBP bucket; the final band is unbounded.
type BudgetBand struct {
	Key string
	Max float64
}

// ordered low to high; keys are stable for the widget
var budgetBands = []BudgetBand{
	{Key: "under_1500", Max: 1500},
	{Key: "1500_2500", Max: 2500},
	{Key: "2500_4000", Max: 4000},
	{Key: "over_4000", Max: math.Inf(1)},
}

// BudgetCeiling resolves a band key to its upper bound. Unknown keys and
// "unsure"/empty resolve to an unbounded ceiling.
func BudgetCeiling(bandKey string) float64 {
	for _, b := range budgetBands {
		if b.Key == bandKey {
			return b.Max
		}
	}
	return math.Inf(1)
}

// Range bands over battery capacity in watt-hours. Fixed, non-overlapping:
// below 400 short, 400..550 medium, above 550 long. No usable value derives
// "unknown", which never satisfies a stated range preference.
const (
	RangeShort   = "short"
	RangeMedium  = "medium"
	RangeLong    = "long"
	RangeUnknown = "unknown"
)

func RangeBand(batteryWh *float64) string {
	if batteryWh == nil || *batteryWh <= 0 {
		return RangeUnknown
	}
	switch wh := *batteryWh; {
	case wh < 400:
		return RangeShort
	case wh <= 550:
		return RangeMedium
	default:
		return RangeLong
	}
}
