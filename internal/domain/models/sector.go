package models

import "time"

// Sector is an industry category backed by a pair of columns
// "<Name>_Awards" and "<Name>_Dollars".
//
// Complete is false when only the awards column exists. Such sectors are still
// offered for selection; they simply add nothing to the aggregate.
type Sector struct {
	Name     string `json:"name" example:"Construction"`
	Label    string `json:"label" example:"Construction"`
	Complete bool   `json:"complete" example:"true"`
}

// DollarsColumn returns the currency column name for the sector.
func (s Sector) DollarsColumn() string { return s.Name + DollarsSuffix }

// Dataset is the read-only context built once at startup: the loaded table and
// the sector catalog derived from its header.
type Dataset struct {
	Source   string
	LoadedAt time.Time
	Table    *Table
	Sectors  []Sector
}

// SectorNames returns the catalog as plain names, in catalog order.
func (d *Dataset) SectorNames() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Sectors))
	for _, s := range d.Sectors {
		names = append(names, s.Name)
	}
	return names
}
