package chart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/guttosm/awardpulse/internal/domain/models"
)

// ErrEmptyChart is returned by RenderPNG when there is nothing to draw.
var ErrEmptyChart = errors.New("chart has no data points")

// RenderPNG draws series as a PNG into w. Dollars are a line with dots on the
// left axis; awards are a filled series on the right axis so both scales stay
// readable. Month labels are placed as ticks at integer positions.
func RenderPNG(series *models.AggregatedSeries, opts Options, w io.Writer) error {
	n := series.Len()
	if n == 0 {
		return ErrEmptyChart
	}
	opts = opts.withDefaults()

	xs := make([]float64, n)
	awards := make([]float64, n)
	ticks := make([]gochart.Tick, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(i)
		awards[i] = float64(series.Awards[i])
		ticks[i] = gochart.Tick{Value: float64(i), Label: series.Months[i]}
	}
	dollars := append([]float64(nil), series.Dollars...)

	awardsFill := drawing.ColorFromHex(awardsColor[1:])
	graph := gochart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20}},
		XAxis: gochart.XAxis{
			Name:  "Month",
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
		},
		YAxis: gochart.YAxis{
			Name:           "Dollars",
			Range:          axisRange(dollars),
			ValueFormatter: func(v interface{}) string { return formatTick(v, FormatDollars) },
		},
		YAxisSecondary: gochart.YAxis{
			Name:           "Awards",
			Range:          axisRange(awards),
			ValueFormatter: func(v interface{}) string { return formatTick(v, func(f float64) string { return FormatCount(int64(f)) }) },
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Awards",
				YAxis:   gochart.YAxisSecondary,
				XValues: xs,
				YValues: awards,
				Style: gochart.Style{
					StrokeColor: awardsFill,
					StrokeWidth: 1,
					FillColor:   awardsFill.WithAlpha(160),
				},
			},
			gochart.ContinuousSeries{
				Name:    "Dollars",
				XValues: xs,
				YValues: dollars,
				Style: gochart.Style{
					StrokeColor: drawing.ColorFromHex(dollarsColor[1:]),
					StrokeWidth: 3,
					DotWidth:    4,
					DotColor:    drawing.ColorFromHex(markerColor[1:]),
				},
			},
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

// axisRange spans the values and zero, with a little headroom. A flat series
// still gets a non-empty range.
func axisRange(values []float64) *gochart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi + (hi-lo)*0.1}
}

func formatTick(v interface{}, f func(float64) string) string {
	if x, ok := v.(float64); ok {
		return f(x)
	}
	return fmt.Sprint(v)
}
