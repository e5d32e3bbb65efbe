// Package metrics provides Prometheus metrics for the BetCast ingestion service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load status label values.
const (
	StatusLive     = "live"
	StatusFallback = "fallback"
)

// Manager manages all Prometheus metrics for the BetCast service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pipeline
	loads          *prometheus.CounterVec
	fallbacks      *prometheus.CounterVec
	fetchLatency   *prometheus.HistogramVec
	loadLatency    prometheus.Histogram
	rowsAccepted   prometheus.Counter
	rowsSkipped    *prometheus.CounterVec
	cellIssues     prometheus.Counter
	lastLoadBets   prometheus.Gauge
	lastLoadWeeks  prometheus.Gauge
	lastLoadStatus *prometheus.GaugeVec
	lastLoadUnix   prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByComponent *prometheus.CounterVec
	errorsByEndpoint  *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Init replaces the global manager with one built from opts on a fresh
// registry. Call it once at startup, before metrics are recorded or served.
func Init(opts ...Option) {
	customRegistry = prometheus.NewRegistry()
	globalManager = NewManager(append(opts, WithPrometheusRegistry(customRegistry))...)
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "betcast",
		subsystem:        "ingest",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)

	m.loads = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "loads_total",
		Help:      "Total number of facade loads by outcome status",
	}, []string{"status"})

	m.fallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fallbacks_total",
		Help:      "Total number of loads served from generated sample data, by failure stage",
	}, []string{"stage"})

	m.fetchLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_latency_milliseconds",
		Help:      "Transport fetch latency in milliseconds by source kind and result",
		Buckets:   m.histogramBuckets,
	}, []string{"source", "result"})

	m.loadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_latency_milliseconds",
		Help:      "End-to-end facade load latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rowsAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_accepted_total",
		Help:      "Total number of CSV rows turned into bet records",
	})

	m.rowsSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_skipped_total",
		Help:      "Total number of CSV rows skipped, by reason",
	}, []string{"reason"})

	m.cellIssues = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cell_issues_total",
		Help:      "Total number of numeric cells that could not be coerced",
	})

	m.lastLoadBets = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_load_bets",
		Help:      "Number of bet records in the most recent load",
	})

	m.lastLoadWeeks = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_load_weeks",
		Help:      "Number of weekly summaries in the most recent load",
	})

	m.lastLoadStatus = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_load_status",
		Help:      "1 for the status of the most recent load, 0 otherwise",
	}, []string{"status"})

	m.lastLoadUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_load_unix",
		Help:      "Unix timestamp of the most recent load",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_component_total",
		Help:      "Total number of errors by component",
	}, []string{"component", "error_type"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of errors by endpoint",
	}, []string{"endpoint", "method", "error_type"})
}

// RecordLoad records a finished facade load.
func RecordLoad(status string, bets, weeks int, latencyMs float64, unix int64) {
	globalManager.loads.WithLabelValues(status).Inc()
	globalManager.loadLatency.Observe(latencyMs)
	globalManager.lastLoadBets.Set(float64(bets))
	globalManager.lastLoadWeeks.Set(float64(weeks))
	globalManager.lastLoadUnix.Set(float64(unix))
	for _, s := range []string{StatusLive, StatusFallback} {
		v := 0.0
		if s == status {
			v = 1
		}
		globalManager.lastLoadStatus.WithLabelValues(s).Set(v)
	}
}

// RecordFallback increments the fallback counter for the failing stage.
func RecordFallback(stage string) {
	globalManager.fallbacks.WithLabelValues(stage).Inc()
}

// RecordFetchLatency records how long a transport fetch took.
func RecordFetchLatency(source, result string, latencyMs float64) {
	globalManager.fetchLatency.WithLabelValues(source, result).Observe(latencyMs)
}

// RecordRowsAccepted adds accepted rows.
func RecordRowsAccepted(n int) {
	globalManager.rowsAccepted.Add(float64(n))
}

// RecordRowSkipped increments skipped rows for a reason.
func RecordRowSkipped(reason string) {
	globalManager.rowsSkipped.WithLabelValues(reason).Inc()
}

// RecordCellIssues adds uncoercible numeric cells.
func RecordCellIssues(n int) {
	globalManager.cellIssues.Add(float64(n))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
