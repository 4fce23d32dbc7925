// Package metrics provides Prometheus metrics for the podium medal service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// latencyBuckets covers sub-millisecond in-memory ranking up to the
// simulated data source delay, in milliseconds.
var latencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000}

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Ranking Metrics
	rankingsServed  *prometheus.CounterVec
	sortFallbacks   prometheus.Counter
	rankingLatency  prometheus.Histogram
	countriesRanked prometheus.Gauge

	// Data Source Metrics
	dataLoads       prometheus.Counter
	dataLoadErrors  prometheus.Counter
	dataLoadLatency prometheus.Histogram

	// HTTP Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec
	errorRateByType     *prometheus.CounterVec

	// System Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "medals",
		histogramBuckets: latencyBuckets,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     m.histogramBuckets,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rankingsServed = auto.NewCounterVec(
		m.counterOpts("rankings_served_total", "Total number of medal tables ranked, by sort key"),
		[]string{"sort"},
	)
	m.sortFallbacks = auto.NewCounter(m.counterOpts("sort_fallbacks_total",
		"Requests whose sort key was missing or unknown and fell back to the default"))
	m.rankingLatency = auto.NewHistogram(m.histogramOpts("ranking_latency_milliseconds",
		"Time spent aggregating and ranking a medal table"))
	m.countriesRanked = auto.NewGauge(m.gaugeOpts("countries",
		"Number of countries in the most recently loaded data set"))

	m.dataLoads = auto.NewCounter(m.counterOpts("data_loads_total", "Total number of data source loads"))
	m.dataLoadErrors = auto.NewCounter(m.counterOpts("data_load_errors_total", "Total number of failed data source loads"))
	m.dataLoadLatency = auto.NewHistogram(m.histogramOpts("data_load_latency_milliseconds",
		"Data source load latency, including simulated delay"))

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint, method and error type"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type and severity"),
		[]string{"error_type", "severity"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_bytes", "Current heap allocation in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutines", "Current number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_milliseconds", "Average GC pause time in milliseconds"))
}

// Ranking Metrics Functions.

// RecordRankingServed counts one ranked table for sort.
func RecordRankingServed(sort string) {
	globalManager.rankingsServed.WithLabelValues(sort).Inc()
}

// RecordSortFallback counts a request that fell back to the default sort key.
func RecordSortFallback() {
	globalManager.sortFallbacks.Inc()
}

// RecordRankingLatency records the time spent ranking one table.
func RecordRankingLatency(latencyMs float64) {
	globalManager.rankingLatency.Observe(latencyMs)
}

// UpdateCountries sets the number of countries in the current data set.
func UpdateCountries(count int) {
	globalManager.countriesRanked.Set(float64(count))
}

// Data Source Metrics Functions.

// RecordDataLoad counts a data source load and records its latency.
func RecordDataLoad(latencyMs float64) {
	globalManager.dataLoads.Inc()
	globalManager.dataLoadLatency.Observe(latencyMs)
}

// RecordDataLoadError counts a failed data source load.
func RecordDataLoadError() {
	globalManager.dataLoadErrors.Inc()
}

// HTTP Metrics Functions.

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// System Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
