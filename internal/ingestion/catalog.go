package ingestion

import (
	"sort"
	"strings"

	"github.com/guttosm/awardpulse/internal/domain/models"
)

// DeriveSectors returns the unique sector names found in columns: the prefix of
// every column ending in "_Awards". The result is sorted so the page and the API
// list sectors in a stable order.
//
// A sector is listed even when its "_Dollars" column is absent; Aggregate skips
// it. Columns named exactly "_Awards" have no prefix and are ignored.
func DeriveSectors(columns []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range columns {
		if !strings.HasSuffix(c, models.AwardsSuffix) {
			continue
		}
		name := strings.TrimSuffix(c, models.AwardsSuffix)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// BuildCatalog derives the sector catalog of t with display labels and the
// Complete flag set.
func BuildCatalog(t *models.Table) []models.Sector {
	if t == nil {
		return []models.Sector{}
	}
	names := DeriveSectors(t.Columns)
	sectors := make([]models.Sector, 0, len(names))
	for _, n := range names {
		sectors = append(sectors, models.Sector{Name: n, Label: Label(n), Complete: t.HasSector(n)})
	}
	return sectors
}

// Label is the checkbox text for a sector: underscores become spaces.
func Label(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
