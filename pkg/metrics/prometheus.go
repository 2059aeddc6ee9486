// Package metrics provides Prometheus metrics for the counterspace engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Surface model metrics
	surfaceGenerations prometheus.Counter
	surfaceLatency     prometheus.Histogram
	surfaceErrors      prometheus.Counter

	// Counterfactual engine metrics
	scenarioEvaluations *prometheus.CounterVec
	validationErrors    prometheus.Counter
	analysisContexts    prometheus.Counter

	// Optimizer metrics
	optimizerTrials *prometheus.CounterVec
	trialLatency    prometheus.Histogram
	bestScore       prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "counterspace",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
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
	auto := promauto.With(m.registry)

	m.surfaceGenerations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "surface_generations_total",
		Help:      "Total number of control surface generations",
	})

	m.surfaceLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "surface_generation_latency_milliseconds",
		Help:      "Histogram of surface generation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.surfaceErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "surface_generation_errors_total",
		Help:      "Total number of surface generation failures",
	})

	m.scenarioEvaluations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "scenario_evaluations_total",
			Help:      "Total number of counterfactual scenario evaluations by kind",
		},
		[]string{"kind"},
	)

	m.validationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_errors_total",
		Help:      "Total number of rejected inputs before surface computation",
	})

	m.analysisContexts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_contexts_total",
		Help:      "Total number of analysis contexts constructed",
	})

	m.optimizerTrials = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "optimizer_trials_total",
			Help:      "Total number of optimizer trials by phase",
		},
		[]string{"phase"},
	)

	m.trialLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "optimizer_trial_latency_milliseconds",
		Help:      "Histogram of single optimizer trial latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.bestScore = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "optimizer_best_score",
		Help:      "Best space-created score found by the most recent optimizer run",
	})
}

// Handler returns an HTTP handler exposing the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// RecordSurfaceGeneration records one surface generation and its latency.
func RecordSurfaceGeneration(latencyMs float64) {
	globalManager.surfaceGenerations.Inc()
	globalManager.surfaceLatency.Observe(latencyMs)
}

// RecordSurfaceError records a surface generation failure.
func RecordSurfaceError() {
	globalManager.surfaceErrors.Inc()
}

// RecordScenarioEvaluation records one counterfactual evaluation of the given kind.
func RecordScenarioEvaluation(kind string) {
	globalManager.scenarioEvaluations.WithLabelValues(kind).Inc()
}

// RecordValidationError records an input rejected by eager validation.
func RecordValidationError() {
	globalManager.validationErrors.Inc()
}

// RecordAnalysisContext records construction of a new analysis context.
func RecordAnalysisContext() {
	globalManager.analysisContexts.Inc()
}

// RecordTrial records one optimizer trial in the given phase and its latency.
func RecordTrial(phase string, latencyMs float64) {
	globalManager.optimizerTrials.WithLabelValues(phase).Inc()
	globalManager.trialLatency.Observe(latencyMs)
}

// UpdateBestScore publishes the best score of the latest optimizer run.
func UpdateBestScore(score float64) {
	globalManager.bestScore.Set(score)
}
