package models

// Column naming conventions of the awards dataset.
const (
	MonthColumn   = "Month"
	AwardsSuffix  = "_Awards"
	DollarsSuffix = "_Dollars"
)

// Table is the in-memory form of the awards CSV.
//
// Every column of the header is kept: the Month column as labels, columns ending
// in "_Awards" as integer counts, other columns containing "_Dollars" as cleaned
// currency amounts, and anything else verbatim in Text. A Table is built once by
// the loader and never mutated afterwards.
//
// Example (header → fields):
//
//	Month,Construction_Awards,Construction_Dollars
//	Oct,5,"$100"
//
//	Months  = ["Oct"]
//	Counts  = {"Construction_Awards": [5]}
//	Amounts = {"Construction_Dollars": [100]}
type Table struct {
	Columns []string             // header order as read
	Months  []string             // one label per row
	Counts  map[string][]int64   // "<Sector>_Awards" columns
	Amounts map[string][]float64 // "<Sector>_Dollars" columns
	Text    map[string][]string  // all remaining columns, untouched
}

// Len returns the number of rows (months).
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Months)
}

// HasSector reports whether the sector has both a count column and a currency
// column, which is what it takes to contribute to an aggregate.
func (t *Table) HasSector(name string) bool {
	if t == nil || name == "" {
		return false
	}
	_, okA := t.Counts[name+AwardsSuffix]
	_, okD := t.Amounts[name+DollarsSuffix]
	return okA && okD
}
