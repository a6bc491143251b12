package ingestion

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes carried inside DataFormatError.Err.
var (
	ErrInvalidCurrency    = errors.New("invalid currency amount")
	ErrInvalidCount       = errors.New("invalid award count")
	ErrMissingMonthColumn = errors.New("missing Month column")
	ErrDuplicateColumn    = errors.New("duplicate column")
	ErrColumnCount        = errors.New("unexpected column count")
	ErrNoHeader           = errors.New("missing header row")
)

// DataFormatError reports a dataset that cannot be loaded. It is fatal at
// startup: the dashboard refuses to serve a partially parsed table.
//
// Path, Line, Column and Value are filled in as far as they are known; Line is
// 1-based and counts the header as line 1.
type DataFormatError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *DataFormatError) Error() string {
	var b strings.Builder
	b.WriteString("data format error")
	if e.Path != "" {
		b.WriteString(" in ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " value %q", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DataFormatError) Unwrap() error { return e.Err }
