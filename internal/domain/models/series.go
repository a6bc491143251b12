package models

// AggregatedSeries holds per-month totals across the selected sectors.
//
// Awards[i] and Dollars[i] belong to Months[i]. Dollars are rounded to whole
// units after summation. Sectors lists the selected sectors that actually
// contributed (both columns present), sorted.
//
// swagger:model AggregatedSeries
type AggregatedSeries struct {
	Months  []string  `json:"months" example:"Oct,Nov"`
	Awards  []int64   `json:"awards" example:"5,7"`
	Dollars []float64 `json:"dollars" example:"100,200"`
	Sectors []string  `json:"sectors" example:"Construction"`
}

// Len returns the number of months in the series.
func (s *AggregatedSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Months)
}
