package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricExpenseIngested       = "expense.ingested"
	MetricExtractionCompleted   = "extraction.completed"
	MetricTranscription         = "transcription.completed"
	MetricCorrectionApplied     = "correction.applied"
	MetricCircuitBreakerState   = "circuit_breaker.state"
	MetricIngestionBatchSize    = "ingestion.batch_size"
	MetricLLMRequestTime        = "llm.request"
	MetricTranscriptionTime     = "transcription.request"
	MetricIngestionPipelineTime = "ingestion.pipeline"
)

type PrometheusMetrics struct {
	expensesIngested      *prometheus.CounterVec
	extractions           *prometheus.CounterVec
	transcriptions        *prometheus.CounterVec
	corrections           *prometheus.CounterVec
	circuitBreakerState   *prometheus.GaugeVec
	batchSize             prometheus.Histogram
	llmDuration           prometheus.Histogram
	transcriptionDuration prometheus.Histogram
	ingestionDuration     prometheus.Histogram
}

// NewPrometheusMetrics registers the pipeline metrics on the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

func NewPrometheusMetricsWith(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		expensesIngested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_ingested_total",
				Help: "Total number of extracted expenses by input source and persistence status",
			},
			[]string{"source", "status"},
		),
		extractions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_extractions_total",
				Help: "Total number of extractions by engine (llm or fallback) and fallback reason",
			},
			[]string{"engine", "reason"},
		),
		transcriptions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audio_transcriptions_total",
				Help: "Total number of audio transcriptions by status",
			},
			[]string{"status"},
		),
		corrections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_corrections_total",
				Help: "Total number of category corrections by status and corrected category",
			},
			[]string{"status", "category"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		batchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "expenses_per_ingestion",
				Help:    "Number of expenses extracted from a single input",
				Buckets: []float64{1, 2, 3, 5, 8, 13},
			},
		),
		llmDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "llm_request_duration_seconds",
				Help:    "Extraction model request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		transcriptionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transcription_request_duration_seconds",
				Help:    "Transcription request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 9),
			},
		),
		ingestionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingestion_duration_milliseconds",
				Help:    "End to end ingestion duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricExpenseIngested:
		m.expensesIngested.WithLabelValues(tags["source"], status).Inc()
	case MetricExtractionCompleted:
		m.extractions.WithLabelValues(tags["engine"], tags["reason"]).Inc()
	case MetricTranscription:
		m.transcriptions.WithLabelValues(status).Inc()
	case MetricCorrectionApplied:
		m.corrections.WithLabelValues(status, tags["category"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricLLMRequestTime:
		m.llmDuration.Observe(duration.Seconds())
	case MetricTranscriptionTime:
		m.transcriptionDuration.Observe(duration.Seconds())
	case MetricIngestionPipelineTime:
		m.ingestionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricIngestionBatchSize:
		m.batchSize.Observe(value)
	}
}
