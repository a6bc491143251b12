package app

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/awardpulse/internal/domain/models"
	"github.com/guttosm/awardpulse/internal/ingestion"
	"github.com/guttosm/awardpulse/internal/logger"
	"github.com/guttosm/awardpulse/internal/metrics"
)

// tableLoader is the loader used by LoadDataset; tests replace it.
var tableLoader = ingestion.Load

// LoadDataset reads the CSV at path and builds the read-only Dataset the
// dashboard serves: the table plus its sector catalog.
//
// Behavior:
//   - Any load error (including *ingestion.DataFormatError) is returned wrapped;
//     the caller is expected to abort startup.
//   - Sectors lacking a dollars column are logged at warn level but kept.
//   - m may be nil.
func LoadDataset(ctx context.Context, path string, m *metrics.Manager) (*models.Dataset, error) {
	log := logger.Component("app")
	start := time.Now()

	table, err := tableLoader(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}

	sectors := ingestion.BuildCatalog(table)
	took := time.Since(start)
	m.SetDataset(table.Len(), len(sectors), took)

	for _, s := range sectors {
		if !s.Complete {
			log.Warn().Str("sector", s.Name).Str("missing", s.DollarsColumn()).Msg("sector has no dollars column and will contribute zero")
		}
	}
	log.Info().
		Str("path", path).
		Int("rows", table.Len()).
		Int("columns", len(table.Columns)).
		Int("sectors", len(sectors)).
		Dur("took", took).
		Msg("dataset loaded")

	return &models.Dataset{
		Source:   path,
		LoadedAt: time.Now().UTC(),
		Table:    table,
		Sectors:  sectors,
	}, nil
}
