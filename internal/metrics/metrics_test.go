package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on its own registry", t, func() {
		m := New(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

		Convey("When the dataset is recorded", func() {
			m.SetDataset(12, 4, 250*time.Millisecond)

			Convey("Then the gauges reflect it", func() {
				So(testutil.ToFloat64(m.datasetRows), ShouldEqual, 12)
				So(testutil.ToFloat64(m.datasetSectors), ShouldEqual, 4)
				So(testutil.ToFloat64(m.datasetLoadDuration), ShouldAlmostEqual, 0.25)
			})
		})

		Convey("When selections and renders are recorded", func() {
			m.RecordSelection(true)
			m.RecordSelection(true)
			m.RecordSelection(false)
			m.RecordAggregation(time.Millisecond)
			m.RecordChartRender("json", nil)
			m.RecordChartRender("png", errors.New("boom"))

			Convey("Then the counters are labelled", func() {
				So(testutil.ToFloat64(m.selections.WithLabelValues("true")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.selections.WithLabelValues("false")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.aggregations), ShouldEqual, 1)
				So(testutil.ToFloat64(m.chartRenders.WithLabelValues("json")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.chartRenderErrors.WithLabelValues("png")), ShouldEqual, 1)
			})
		})

		Convey("When an HTTP request is recorded", func() {
			m.RecordHTTPRequest("/api/v1/chart", http.MethodGet, 200, 3*time.Millisecond)

			Convey("Then it is exposed by the handler", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/chart", "GET", "200")), ShouldEqual, 1)

				w := httptest.NewRecorder()
				m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "test_dashboard_http_requests_total")
			})
		})
	})
}

func TestNilManagerIsNoop(t *testing.T) {
	Convey("Given a nil manager", t, func() {
		var m *Manager
		Convey("Recording does not panic", func() {
			So(func() {
				m.SetDataset(1, 1, time.Second)
				m.RecordSelection(true)
				m.RecordAggregation(time.Second)
				m.RecordChartRender("json", nil)
				m.RecordHTTPRequest("/", "GET", 200, time.Second)
			}, ShouldNotPanic)
		})
	})
}

func TestNew_DefaultRegistryHasRuntimeCollectors(t *testing.T) {
	Convey("Given a manager with the default registry", t, func() {
		m := New()
		mfs, err := m.Registry().Gather()
		So(err, ShouldBeNil)

		names := map[string]bool{}
		for _, mf := range mfs {
			names[mf.GetName()] = true
		}
		So(names["go_goroutines"], ShouldBeTrue)
	})
}
