// Package metrics provides Prometheus metrics for the trade analyzer
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Pool Metrics - how the player pool was built
	poolSize                prometheus.Gauge
	poolLoadDuration        prometheus.Histogram
	poolFallbacks           prometheus.Counter
	providerRecordsFetched  prometheus.Counter
	providerRecordsSkipped  prometheus.Counter
	providerRecordsFiltered prometheus.Counter
	providerFetchErrors     prometheus.Counter

	// Valuation Metrics
	valuationsTotal   prometheus.Counter
	valuationDuration prometheus.Histogram

	// Rankings / Trade Metrics
	rankingsRequests prometheus.Counter
	tradesAnalyzed   prometheus.Counter
	tradeVerdicts    *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fftw",
		subsystem:        "tradewizard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.poolSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pool_size",
		Help:      "Number of players in the loaded pool",
	})

	m.poolLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pool_load_duration_milliseconds",
		Help:      "Time spent building the player pool",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 15000},
	})

	m.poolFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pool_fallbacks_total",
		Help:      "Times the loader substituted the static default pool",
	})

	m.providerRecordsFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provider_records_fetched_total",
		Help:      "Raw records received from the provider",
	})

	m.providerRecordsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provider_records_skipped_total",
		Help:      "Records dropped because they failed normalization",
	})

	m.providerRecordsFiltered = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provider_records_filtered_total",
		Help:      "Records dropped by position or relevance filtering",
	})

	m.providerFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provider_fetch_errors_total",
		Help:      "Provider fetches that failed outright",
	})

	m.valuationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "valuations_total",
		Help:      "Individual player valuations computed",
	})

	m.valuationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "valuation_duration_milliseconds",
		Help:      "Time spent valuing one request's worth of players",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100},
	})

	m.rankingsRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rankings_requests_total",
		Help:      "Ranking computations served",
	})

	m.tradesAnalyzed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trades_analyzed_total",
		Help:      "Trade analyses served",
	})

	m.tradeVerdicts = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trade_verdicts_total",
		Help:      "Trade verdicts by classification band",
	}, []string{"verdict"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration by endpoint, method and status",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Errors by type and severity",
	}, []string{"error_type", "severity"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Errors by endpoint and method",
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// UpdatePoolSize sets the loaded pool size.
func UpdatePoolSize(size int) {
	globalManager.poolSize.Set(float64(size))
}

// RecordPoolLoadDuration records pool build time in milliseconds.
func RecordPoolLoadDuration(durationMs float64) {
	globalManager.poolLoadDuration.Observe(durationMs)
}

// RecordPoolFallback increments the static-fallback counter.
func RecordPoolFallback() {
	globalManager.poolFallbacks.Inc()
}

// RecordProviderRecordsFetched adds to the raw-records counter.
func RecordProviderRecordsFetched(n int) {
	if n > 0 {
		globalManager.providerRecordsFetched.Add(float64(n))
	}
}

// RecordProviderRecordsSkipped adds to the skipped-records counter.
func RecordProviderRecordsSkipped(n int) {
	if n > 0 {
		globalManager.providerRecordsSkipped.Add(float64(n))
	}
}

// RecordProviderRecordsFiltered adds to the filtered-records counter.
func RecordProviderRecordsFiltered(n int) {
	if n > 0 {
		globalManager.providerRecordsFiltered.Add(float64(n))
	}
}

// RecordProviderFetchError increments the provider failure counter.
func RecordProviderFetchError() {
	globalManager.providerFetchErrors.Inc()
}

// RecordValuations adds to the valuations counter.
func RecordValuations(n int) {
	if n > 0 {
		globalManager.valuationsTotal.Add(float64(n))
	}
}

// RecordValuationDuration records valuation time in milliseconds.
func RecordValuationDuration(durationMs float64) {
	globalManager.valuationDuration.Observe(durationMs)
}

// RecordRankingsRequest increments the rankings counter.
func RecordRankingsRequest() {
	globalManager.rankingsRequests.Inc()
}

// RecordTradeAnalyzed increments the trades counter and tags the verdict.
func RecordTradeAnalyzed(verdict string) {
	globalManager.tradesAnalyzed.Inc()
	globalManager.tradeVerdicts.WithLabelValues(verdict).Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByType increments the error counter by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint increments the error counter by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the current memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used for scraping.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
