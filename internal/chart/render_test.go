package chart

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/guttosm/awardpulse/internal/domain/models"
)

func sampleSeries() *models.AggregatedSeries {
	return &models.AggregatedSeries{
		Months:  []string{"Oct", "Nov", "Dec"},
		Awards:  []int64{5, 1234, 1234567},
		Dollars: []float64{100, 1234, 2500000},
		Sectors: []string{"Construction"},
	}
}

func TestFormatters(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"count small", FormatCount(7), "7"},
		{"count grouped", FormatCount(1234567), "1,234,567"},
		{"dollars zero", FormatDollars(0), "$0"},
		{"dollars grouped", FormatDollars(1234), "$1,234"},
		{"dollars no decimals", FormatDollars(1234.4), "$1,234"},
		{"dollars half even", FormatDollars(2.5), "$2"},
		{"dollars negative", FormatDollars(-1500), "$-1,500"},
		{"dollars beyond int64", FormatDollars(1e19), "$10,000,000,000,000,000,000"},
		{"dollars beyond int64 negative", FormatDollars(-1e19), "$-10,000,000,000,000,000,000"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestRender(t *testing.T) {
	Convey("Given an aggregated series", t, func() {
		spec := Render(sampleSeries(), Options{Title: "FY 2024"})

		Convey("Then it has a bar trace for awards and a line trace for dollars", func() {
			So(spec.Data, ShouldHaveLength, 2)
			bars, line := spec.Data[0], spec.Data[1]

			So(bars.Type, ShouldEqual, "bar")
			So(bars.Name, ShouldEqual, "Awards")
			So(bars.X, ShouldResemble, []string{"Oct", "Nov", "Dec"})
			So(bars.Y, ShouldResemble, []float64{5, 1234, 1234567})
			So(bars.Text, ShouldResemble, []string{"5", "1,234", "1,234,567"})

			So(line.Type, ShouldEqual, "scatter")
			So(line.Mode, ShouldEqual, "lines+markers+text")
			So(line.X, ShouldResemble, bars.X)
			So(line.Y, ShouldResemble, []float64{100, 1234, 2500000})
			So(line.Text, ShouldResemble, []string{"$100", "$1,234", "$2,500,000"})
		})

		Convey("Then the layout carries the title and axis names", func() {
			So(spec.Layout.Title.Text, ShouldEqual, "FY 2024")
			So(spec.Layout.XAxis.Title.Text, ShouldEqual, "Month")
		})

		Convey("Then it encodes as a Plotly figure", func() {
			b, err := json.Marshal(spec)
			So(err, ShouldBeNil)
			var fig map[string]any
			So(json.Unmarshal(b, &fig), ShouldBeNil)
			So(fig, ShouldContainKey, "data")
			So(fig, ShouldContainKey, "layout")
		})
	})

	Convey("Given an empty series", t, func() {
		specs := []*models.ChartSpec{Render(nil, Options{}), Render(&models.AggregatedSeries{}, Options{})}

		Convey("Then both traces exist with no points", func() {
			for _, spec := range specs {
				So(spec.Data, ShouldHaveLength, 2)
				for _, tr := range spec.Data {
					So(tr.X, ShouldNotBeNil)
					So(tr.X, ShouldBeEmpty)
					So(tr.Y, ShouldBeEmpty)
				}
				So(spec.Layout.Title.Text, ShouldEqual, defaultTitle)
			}
		})
	})
}

func TestRenderPNG(t *testing.T) {
	cases := []struct {
		name    string
		series  *models.AggregatedSeries
		wantErr error
	}{
		{name: "several months", series: sampleSeries()},
		{name: "single month", series: &models.AggregatedSeries{Months: []string{"Oct"}, Awards: []int64{3}, Dollars: []float64{10}}},
		{name: "all zero", series: &models.AggregatedSeries{Months: []string{"Oct", "Nov"}, Awards: []int64{0, 0}, Dollars: []float64{0, 0}}},
		{name: "empty", series: &models.AggregatedSeries{}, wantErr: ErrEmptyChart},
		{name: "nil", series: nil, wantErr: ErrEmptyChart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := RenderPNG(tc.series, Options{Width: 400, Height: 300}, &buf)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
				t.Fatalf("output is not a PNG (%d bytes)", buf.Len())
			}
		})
	}
}

func TestAxisRange(t *testing.T) {
	r := axisRange([]float64{0, 0})
	if r.Min != 0 || r.Max <= r.Min {
		t.Fatalf("flat series should still have a range, got %+v", r)
	}
	r = axisRange([]float64{-10, 90})
	if r.Min != -10 || r.Max != 100 {
		t.Fatalf("unexpected range %+v", r)
	}
}
