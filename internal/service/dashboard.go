package service

import (
	"context"
	"io"
	"time"

	"github.com/guttosm/awardpulse/internal/chart"
	"github.com/guttosm/awardpulse/internal/domain/models"
	"github.com/guttosm/awardpulse/internal/logger"
	"github.com/guttosm/awardpulse/internal/metrics"
)

// DashboardService answers the page's questions over a loaded dataset.
// Every call is a pure computation: selection -> series -> chart.
type DashboardService interface {
	Catalog() []models.Sector
	Select(selectAll bool, explicit []string) []string
	Series(ctx context.Context, selection []string) (*models.AggregatedSeries, error)
	Chart(ctx context.Context, selection []string) (*models.ChartSpec, error)
	ChartPNG(ctx context.Context, selection []string, w io.Writer) error
	Ready() bool
}

type dashboardService struct {
	data    *models.Dataset
	metrics *metrics.Manager
	opts    chart.Options
}

// NewDashboardService wires the dataset, an optional metrics manager (nil is
// allowed) and chart options. The dataset must not be modified afterwards.
func NewDashboardService(data *models.Dataset, m *metrics.Manager, opts chart.Options) DashboardService {
	return &dashboardService{data: data, metrics: m, opts: opts}
}

func (s *dashboardService) Ready() bool {
	return s.data != nil && s.data.Table != nil
}

func (s *dashboardService) Catalog() []models.Sector {
	if s.data == nil {
		return []models.Sector{}
	}
	return append([]models.Sector{}, s.data.Sectors...)
}

func (s *dashboardService) Select(selectAll bool, explicit []string) []string {
	s.metrics.RecordSelection(selectAll)
	return ResolveSelection(s.data.SectorNames(), selectAll, explicit)
}

func (s *dashboardService) Series(ctx context.Context, selection []string) (*models.AggregatedSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	var table *models.Table
	if s.data != nil {
		table = s.data.Table
	}
	series := Aggregate(table, selection)
	took := time.Since(start)
	s.metrics.RecordAggregation(took)

	log := logger.Component("service")
	log.Debug().
		Strs("selection", selection).
		Strs("contributing", series.Sectors).
		Int("months", series.Len()).
		Dur("took", took).
		Msg("series aggregated")
	return series, nil
}

func (s *dashboardService) Chart(ctx context.Context, selection []string) (*models.ChartSpec, error) {
	series, err := s.Series(ctx, selection)
	if err != nil {
		return nil, err
	}
	spec := chart.Render(series, s.opts)
	s.metrics.RecordChartRender("json", nil)
	return spec, nil
}

func (s *dashboardService) ChartPNG(ctx context.Context, selection []string, w io.Writer) error {
	series, err := s.Series(ctx, selection)
	if err != nil {
		return err
	}
	err = chart.RenderPNG(series, s.opts, w)
	s.metrics.RecordChartRender("png", err)
	return err
}
