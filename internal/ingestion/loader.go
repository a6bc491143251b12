package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guttosm/awardpulse/internal/domain/models"
)

type columnKind int

const (
	kindText columnKind = iota
	kindMonth
	kindCount
	kindCurrency
)

// classify maps a header name to how its cells are parsed. Count columns are
// recognised by suffix, currency columns by substring. The suffix wins, so
// "X_Dollars_Awards" is the count column of sector "X_Dollars".
func classify(name string) columnKind {
	switch {
	case name == models.MonthColumn:
		return kindMonth
	case strings.HasSuffix(name, models.AwardsSuffix):
		return kindCount
	case strings.Contains(name, models.DollarsSuffix):
		return kindCurrency
	default:
		return kindText
	}
}

// Load opens path and parses it with LoadReader. Format errors carry the path.
func Load(ctx context.Context, path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := LoadReader(ctx, f)
	if err != nil {
		var dfe *DataFormatError
		if errors.As(err, &dfe) {
			dfe.Path = path
		}
		return nil, err
	}
	return t, nil
}

// LoadReader reads a comma-separated awards table with a header row.
//
// It fails on:
//   - a missing header or a missing Month column
//   - duplicate header names
//   - rows whose column count differs from the header
//   - currency or count cells that do not parse
//
// It tolerates:
//   - empty numeric cells (they become zero)
//   - a UTF-8 byte order mark and surrounding spaces in the header
//
// Reported lines are physical lines of the input, so a quoted cell spanning
// several lines does not shift later positions.
func LoadReader(ctx context.Context, in io.Reader) (*models.Table, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1 // checked explicitly for a better message
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DataFormatError{Line: 1, Err: ErrNoHeader}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	kinds := make([]columnKind, len(header))
	seen := make(map[string]struct{}, len(header))
	hasMonth := false
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		header[i] = h
		if _, dup := seen[h]; dup {
			return nil, &DataFormatError{Line: 1, Column: h, Err: ErrDuplicateColumn}
		}
		seen[h] = struct{}{}
		kinds[i] = classify(h)
		if kinds[i] == kindMonth {
			hasMonth = true
		}
	}
	if !hasMonth {
		return nil, &DataFormatError{Line: 1, Column: models.MonthColumn, Err: ErrMissingMonthColumn}
	}

	t := &models.Table{
		Columns: append([]string(nil), header...),
		Months:  []string{},
		Counts:  make(map[string][]int64),
		Amounts: make(map[string][]float64),
		Text:    make(map[string][]string),
	}
	for i, h := range header {
		switch kinds[i] {
		case kindCount:
			t.Counts[h] = []int64{}
		case kindCurrency:
			t.Amounts[h] = []float64{}
		case kindText:
			t.Text[h] = []string{}
		}
	}

	line := 1 // physical line of the last record read
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read record after line %d: %w", line, err)
		}
		line, _ = r.FieldPos(0)

		if len(rec) != len(header) {
			return nil, &DataFormatError{
				Line: line,
				Err:  fmt.Errorf("%w: expected %d got %d", ErrColumnCount, len(header), len(rec)),
			}
		}

		for i, cell := range rec {
			name := header[i]
			switch kinds[i] {
			case kindMonth:
				t.Months = append(t.Months, strings.TrimSpace(cell))
			case kindCount:
				v, err := parseCount(cell)
				if err != nil {
					return nil, locate(err, r, i, name)
				}
				t.Counts[name] = append(t.Counts[name], v)
			case kindCurrency:
				v, err := CleanCurrency(cell)
				if err != nil {
					return nil, locate(err, r, i, name)
				}
				t.Amounts[name] = append(t.Amounts[name], v)
			default:
				t.Text[name] = append(t.Text[name], cell)
			}
		}
	}

	return t, nil
}

// locate fills in the position of a cell-level DataFormatError: the physical
// line the field starts on.
func locate(err error, r *csv.Reader, field int, column string) error {
	var dfe *DataFormatError
	if errors.As(err, &dfe) {
		dfe.Line, _ = r.FieldPos(field)
		dfe.Column = column
	}
	return err
}
