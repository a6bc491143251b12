package service

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/guttosm/awardpulse/internal/domain/models"
)

// Aggregate combines the selected sectors into one row per month.
//
// Behavior:
//   - Every month starts at zero awards and zero dollars.
//   - Each distinct sector whose <name>_Awards and <name>_Dollars columns both
//     exist adds its per-month values. Any other name is skipped silently.
//   - Dollars are summed exactly and rounded half-to-even to whole units once,
//     on the combined total.
//
// The result does not depend on the order of sectors.
func Aggregate(t *models.Table, sectors []string) *models.AggregatedSeries {
	n := t.Len()
	out := &models.AggregatedSeries{
		Months:  make([]string, n),
		Awards:  make([]int64, n),
		Dollars: make([]float64, n),
		Sectors: []string{},
	}
	if n == 0 {
		return out
	}
	copy(out.Months, t.Months)

	totals := make([]decimal.Decimal, n)
	seen := make(map[string]struct{}, len(sectors))
	for _, name := range sectors {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if !t.HasSector(name) {
			continue
		}
		counts := t.Counts[name+models.AwardsSuffix]
		amounts := t.Amounts[name+models.DollarsSuffix]
		for m := 0; m < n; m++ {
			out.Awards[m] += counts[m]
			totals[m] = totals[m].Add(decimal.NewFromFloat(amounts[m]))
		}
		out.Sectors = append(out.Sectors, name)
	}

	for m := range totals {
		out.Dollars[m] = totals[m].RoundBank(0).InexactFloat64()
	}
	slices.Sort(out.Sectors)
	return out
}
