// Package chart turns an aggregated series into something a user can look at:
// a Plotly figure for the page, or a PNG for clients without JavaScript.
package chart

import (
	"github.com/guttosm/awardpulse/internal/domain/models"
)

// Colors and chrome; purely presentational.
const (
	awardsColor   = "#FFA726"
	dollarsColor  = "#42A5F5"
	markerColor   = "#1E88E5"
	textColor     = "#263238"
	plotColor     = "#F9F9F9"
	paperColor    = "#F4F4F8"
	defaultTitle  = "Combined Awards and Dollars"
	defaultWidth  = 1024
	defaultHeight = 512
)

// Options tunes a render. Zero values fall back to defaults.
type Options struct {
	Title  string
	Width  int // PNG only
	Height int // PNG only
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = defaultTitle
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	return o
}

// Render builds the dual-trace figure for series: bars for award counts and a
// line with markers for dollar totals, both labelled. A nil or empty series
// gives a figure whose traces have no points.
func Render(series *models.AggregatedSeries, opts Options) *models.ChartSpec {
	opts = opts.withDefaults()
	n := series.Len()

	months := make([]string, n)
	awardsY := make([]float64, n)
	awardsText := make([]string, n)
	dollarsY := make([]float64, n)
	dollarsText := make([]string, n)
	for i := 0; i < n; i++ {
		months[i] = series.Months[i]
		awardsY[i] = float64(series.Awards[i])
		awardsText[i] = FormatCount(series.Awards[i])
		dollarsY[i] = series.Dollars[i]
		dollarsText[i] = FormatDollars(series.Dollars[i])
	}

	bars := models.Trace{
		Type:         "bar",
		Name:         "Awards",
		X:            months,
		Y:            awardsY,
		Text:         awardsText,
		TextPosition: "auto",
		Opacity:      0.8,
		Marker:       &models.Marker{Color: awardsColor},
	}
	line := models.Trace{
		Type:         "scatter",
		Name:         "Dollars",
		Mode:         "lines+markers+text",
		X:            months,
		Y:            dollarsY,
		Text:         dollarsText,
		TextPosition: "top center",
		Line:         &models.Line{Color: dollarsColor, Width: 3},
		Marker: &models.Marker{
			Color:  markerColor,
			Size:   8,
			Symbol: "circle",
			Line:   &models.Line{Color: "white", Width: 2},
		},
	}

	return &models.ChartSpec{
		Data: []models.Trace{bars, line},
		Layout: models.Layout{
			Title: models.Title{Text: opts.Title, X: 0.5, Y: 0.9, XAnchor: "center", YAnchor: "top"},
			XAxis: models.Axis{
				Title:     models.Title{Text: "Month"},
				TickAngle: 45,
			},
			YAxis: models.Axis{
				Title:     models.Title{Text: "Count of Awards / Dollars"},
				ShowGrid:  true,
				GridColor: "lightgrey",
			},
			Legend: models.Legend{
				Orientation: "h",
				X:           1,
				Y:           1.02,
				XAnchor:     "right",
				YAnchor:     "bottom",
			},
			PlotBGColor:  plotColor,
			PaperBGColor: paperColor,
			Margin:       models.Margin{T: 50, B: 50, L: 50, R: 50},
		},
	}
}
