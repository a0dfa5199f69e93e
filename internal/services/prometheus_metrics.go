package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by MetricsRecorderInterface
const (
	MetricAnalysisCompleted = "analysis.completed"
	MetricAnalysisFailed    = "analysis.failed"
	MetricAnalysisDuration  = "analysis.duration"
	MetricAnalysisSize      = "analysis.transactions"
	MetricLLMRequest        = "llm.request"
	MetricLLMCategorizeTime = "llm.duration.categorize"
	MetricLLMBudgetTime     = "llm.duration.budget"
	MetricLLMChatTime       = "llm.duration.chat"
	MetricCircuitBreaker    = "circuit_breaker.state"
	MetricBudgetGenerated   = "budget.generated"
	MetricChatReply         = "chat.reply"
	MetricProfileEvent      = "profile.event"
	MetricArchiveUpload     = "archive.upload"
)

type PrometheusMetrics struct {
	analysisRuns        *prometheus.CounterVec
	analysisDuration    prometheus.Histogram
	analysisSize        prometheus.Histogram
	llmRequests         *prometheus.CounterVec
	llmDuration         *prometheus.HistogramVec
	circuitBreakerState *prometheus.GaugeVec
	budgetsGenerated    *prometheus.CounterVec
	chatReplies         *prometheus.CounterVec
	profileEvents       *prometheus.CounterVec
	archiveUploads      *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the collectors on reg, so tests
// can use a fresh prometheus.NewRegistry()
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		analysisRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finn_analysis_runs_total",
				Help: "Total number of expense analysis runs",
			},
			[]string{"status", "source"},
		),
		analysisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finn_analysis_duration_seconds",
				Help:    "Expense analysis duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		analysisSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finn_analysis_transactions",
				Help:    "Number of transactions per analysis run",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		llmRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finn_llm_requests_total",
				Help: "Total number of LLM requests by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		llmDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finn_llm_duration_seconds",
				Help:    "LLM request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
			[]string{"operation"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finn_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		budgetsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finn_budgets_generated_total",
				Help: "Total number of budgets generated by source",
			},
			[]string{"source"},
		),
		chatReplies: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finn_chat_replies_total",
				Help: "Total number of chat replies by source",
			},
			[]string{"source"},
		),
		profileEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finn_profile_events_total",
				Help: "Total number of profile lifecycle events",
			},
			[]string{"event"},
		),
		archiveUploads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finn_archive_uploads_total",
				Help: "Total number of statement archive uploads",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAnalysisCompleted:
		m.analysisRuns.WithLabelValues("success", tags["source"]).Inc()
	case MetricAnalysisFailed:
		m.analysisRuns.WithLabelValues("failed_"+tags["reason"], tags["source"]).Inc()
	case MetricLLMRequest:
		m.llmRequests.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case MetricBudgetGenerated:
		m.budgetsGenerated.WithLabelValues(tags["source"]).Inc()
	case MetricChatReply:
		m.chatReplies.WithLabelValues(tags["source"]).Inc()
	case MetricProfileEvent:
		if event := tags["event"]; event != "" {
			m.profileEvents.WithLabelValues(event).Inc()
		}
	case MetricArchiveUpload:
		if status := tags["status"]; status != "" {
			m.archiveUploads.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricAnalysisDuration:
		m.analysisDuration.Observe(duration.Seconds())
	case MetricLLMCategorizeTime:
		m.llmDuration.WithLabelValues("categorize").Observe(duration.Seconds())
	case MetricLLMBudgetTime:
		m.llmDuration.WithLabelValues("budget").Observe(duration.Seconds())
	case MetricLLMChatTime:
		m.llmDuration.WithLabelValues("chat").Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreaker:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricAnalysisSize:
		m.analysisSize.Observe(value)
	}
}

// noopMetrics is used when no recorder is wired, e.g. by the CLI
type noopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
