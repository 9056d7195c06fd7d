// Package metrics provides Prometheus instrumentation for the aggregation
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LLM dispatcher metrics.
var (
	LLMCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotaggr_llm_calls_total",
		Help: "Total number of LLM calls by terminal status.",
	}, []string{"status"})

	LLMCallDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hotaggr_llm_call_duration_seconds",
		Help:    "Wall-clock duration of LLM calls including retries.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})

	LLMRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotaggr_llm_retries_total",
		Help: "Total number of LLM call retry attempts.",
	})

	LLMTokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotaggr_llm_tokens_total",
		Help: "Total LLM tokens consumed.",
	}, []string{"direction"})
)

// Aggregation metrics.
var (
	NewsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotaggr_news_processed_total",
		Help: "News items processed by the aggregation engine.",
	}, []string{"result"})

	EventsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotaggr_events_created_total",
		Help: "Events created from new-cluster proposals.",
	})

	StragglerRedispatchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotaggr_straggler_redispatch_total",
		Help: "News items re-dispatched after being omitted by the LLM.",
	})
)

// Merge metrics.
var (
	MergesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotaggr_merges_total",
		Help: "Merge suggestions executed, by result.",
	}, []string{"result"})

	EventsMergedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotaggr_events_merged_total",
		Help: "Child events absorbed into a surviving primary.",
	})
)

// Run metrics.
var (
	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotaggr_run_duration_seconds",
		Help:    "Duration of engine runs.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"task_type"})

	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotaggr_runs_total",
		Help: "Engine runs by task type and terminal status.",
	}, []string{"task_type", "status"})
)
