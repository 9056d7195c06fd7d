package config

import "time"

// AggregationConfig controls which news is selected for a run and which
// events form the assignment context.
type AggregationConfig struct {
	// Window is how far back unprocessed news is selected.
	Window time.Duration

	// RecentEventsCount is the number of recent active events shown to
	// the LLM as assignment candidates.
	RecentEventsCount int

	// SummaryDays bounds the recent-event context by age as well as
	// by count.
	SummaryDays int

	// ExcludedNewsTypes lists source types to skip entirely.
	ExcludedNewsTypes []string

	// CacheTTL is how long the recent-event snapshot stays fresh.
	CacheTTL time.Duration
}

// Custom overrides the selection window and excluded source types
// explicitly. Zero values keep the receiver's.
func (c *AggregationConfig) Custom(window time.Duration, excludedTypes []string) *AggregationConfig {
	out := *c
	if window > 0 {
		out.Window = window
	}
	if len(excludedTypes) > 0 {
		out.ExcludedNewsTypes = excludedTypes
	}
	return &out
}

// DefaultAggregationConfig returns the built-in aggregation defaults,
// overridable via environment variables.
func DefaultAggregationConfig() *AggregationConfig {
	return &AggregationConfig{
		Window:            getEnvDuration("AGGREGATION_WINDOW", 2*time.Hour),
		RecentEventsCount: getEnvInt("RECENT_EVENTS_COUNT", 50),
		SummaryDays:       getEnvInt("EVENT_SUMMARY_DAYS", 7),
		ExcludedNewsTypes: getEnvList("EXCLUDED_NEWS_TYPES"),
		CacheTTL:          getEnvDuration("RECENT_EVENTS_CACHE_TTL", 5*time.Minute),
	}
}
