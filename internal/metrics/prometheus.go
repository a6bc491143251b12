// Package metrics provides Prometheus metrics for the awards dashboard.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the dashboard's collectors and the registry they live on.
//
// All Record*/Set* methods are safe on a nil *Manager, so components can be
// built without metrics in tests.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Dataset
	datasetRows         prometheus.Gauge
	datasetSectors      prometheus.Gauge
	datasetLoadDuration prometheus.Gauge

	// Recompute pipeline
	selections          *prometheus.CounterVec
	aggregations        prometheus.Counter
	aggregationDuration prometheus.Histogram
	chartRenders        *prometheus.CounterVec
	chartRenderErrors   *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates a Manager on a fresh registry (unless WithRegistry is given) that
// also carries the Go runtime and process collectors.
func New(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "awardpulse",
		subsystem:        "dashboard",
		histogramBuckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "dataset_rows",
		Help: "Number of months in the loaded dataset",
	})
	m.datasetSectors = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "dataset_sectors",
		Help: "Number of sectors in the catalog",
	})
	m.datasetLoadDuration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "dataset_load_duration_seconds",
		Help: "Time spent loading the dataset at startup",
	})

	m.selections = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "selections_total",
		Help: "Selections resolved, by whether Select All was active",
	}, []string{"select_all"})
	m.aggregations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "aggregations_total",
		Help: "Number of aggregated series computed",
	})
	m.aggregationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "aggregation_duration_seconds",
		Help:    "Time spent aggregating the selected sectors",
		Buckets: m.histogramBuckets,
	})
	m.chartRenders = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "chart_renders_total",
		Help: "Charts rendered, by output format",
	}, []string{"format"})
	m.chartRenderErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "chart_render_errors_total",
		Help: "Chart render failures, by output format",
	}, []string{"format"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "http_requests_total",
		Help: "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration by route, method and status code",
		Buckets: m.histogramBuckets,
	}, []string{"route", "method", "status_code"})
}

// SetDataset records the size of the loaded dataset and how long loading took.
func (m *Manager) SetDataset(rows, sectors int, took time.Duration) {
	if m == nil {
		return
	}
	m.datasetRows.Set(float64(rows))
	m.datasetSectors.Set(float64(sectors))
	m.datasetLoadDuration.Set(took.Seconds())
}

// RecordSelection counts one resolved selection.
func (m *Manager) RecordSelection(selectAll bool) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(strconv.FormatBool(selectAll)).Inc()
}

// RecordAggregation counts one aggregation and its duration.
func (m *Manager) RecordAggregation(took time.Duration) {
	if m == nil {
		return
	}
	m.aggregations.Inc()
	m.aggregationDuration.Observe(took.Seconds())
}

// RecordChartRender counts a chart render in format ("json" or "png"); err marks a failure.
func (m *Manager) RecordChartRender(format string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.chartRenderErrors.WithLabelValues(format).Inc()
		return
	}
	m.chartRenders.WithLabelValues(format).Inc()
}

// RecordHTTPRequest counts a request and observes its latency.
func (m *Manager) RecordHTTPRequest(route, method string, status int, took time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(took.Seconds())
}

// Registry returns the registry backing this manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
