package ingestion

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyStripper removes the dollar sign and thousands separators.
var currencyStripper = strings.NewReplacer("$", "", ",", "")

// CleanCurrency converts a currency-formatted cell such as "$1,234" into 1234.0.
//
// An empty (or whitespace-only) cell is 0. Anything that is not a number once
// "$" and "," are removed, including a bare "$" or a value outside the float64
// range ("$1e400"), fails with *DataFormatError wrapping ErrInvalidCurrency.
//
// Examples:
//
//	CleanCurrency("$1,234")    -> 1234, nil
//	CleanCurrency("$0")        -> 0, nil
//	CleanCurrency("$1,234.56") -> 1234.56, nil
//	CleanCurrency("N/A")       -> 0, *DataFormatError
func CleanCurrency(raw string) (float64, error) {
	d, err := parseCurrency(raw)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func parseCurrency(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.TrimSpace(currencyStripper.Replace(s))
	if s == "" {
		return decimal.Zero, &DataFormatError{Value: raw, Err: ErrInvalidCurrency}
	}
	d, err := decimal.NewFromString(s)
	if err != nil || math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Zero, &DataFormatError{Value: raw, Err: ErrInvalidCurrency}
	}
	return d, nil
}

var (
	maxCount = decimal.NewFromInt(math.MaxInt64)
	minCount = decimal.NewFromInt(math.MinInt64)
)

// parseCount reads an integer-like award count. Thousands separators are
// accepted, as is an integral float ("7.0") which spreadsheet exports produce.
func parseCount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ",", "")
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() || d.GreaterThan(maxCount) || d.LessThan(minCount) {
		return 0, &DataFormatError{Value: raw, Err: ErrInvalidCount}
	}
	return d.IntPart(), nil
}
