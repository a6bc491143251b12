package ingestion

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/awardpulse/internal/logger"
)

const maxParallel = 8

// FileReport summarises one dataset checked by ValidateFiles.
type FileReport struct {
	Path       string
	Rows       int
	Sectors    int
	Incomplete []string // sectors with an awards column but no dollars column
	Elapsed    time.Duration
}

// ValidateFiles loads every path concurrently and reports what each contains.
//
// Behavior:
//   - Concurrency defaults to min(8, NumCPU); parallel > 0 overrides it (clamped to 8).
//   - The first failure cancels the remaining loads and is returned.
//   - Reports come back in the order of paths.
func ValidateFiles(ctx context.Context, paths []string, parallel int) ([]FileReport, error) {
	limit := maxParallel
	if parallel > 0 {
		limit = min(parallel, maxParallel)
	} else if c := runtime.NumCPU(); c < limit {
		limit = c
	}

	log := logger.Component("ingestion")
	log.Info().Int("files", len(paths)).Int("max_parallel", limit).Msg("validation start")

	reports := make([]FileReport, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(p)

			t, err := Load(gctx, p)
			if err != nil {
				log.Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", p, err)
			}

			rep := FileReport{Path: p, Rows: t.Len(), Elapsed: time.Since(start)}
			for _, s := range BuildCatalog(t) {
				rep.Sectors++
				if !s.Complete {
					rep.Incomplete = append(rep.Incomplete, s.Name)
				}
			}
			reports[i] = rep

			log.Info().Int("idx", i+1).Int("total", len(paths)).Str("file", base).
				Int("rows", rep.Rows).Int("sectors", rep.Sectors).Strs("incomplete", rep.Incomplete).
				Dur("elapsed", rep.Elapsed).Msg("file ok")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
