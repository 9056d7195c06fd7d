package config

import "time"

// MergeConfig controls duplicate-event detection and merging.
type MergeConfig struct {
	// Window is how far back candidate events are selected. Zero means
	// select by count only.
	Window time.Duration

	// RecentEventCount caps the number of candidate events per run.
	RecentEventCount int

	// ConfidenceThreshold filters LLM merge suggestions. Suggestions
	// below it are discarded.
	ConfidenceThreshold float64

	Model       string
	Temperature float32
	MaxTokens   int32
}

// DefaultMergeConfig returns the built-in merge defaults, overridable
// via environment variables.
func DefaultMergeConfig() *MergeConfig {
	return &MergeConfig{
		Window:              getEnvDuration("EVENT_COMBINE_WINDOW", 24*time.Hour),
		RecentEventCount:    getEnvInt("EVENT_COMBINE_COUNT", 30),
		ConfidenceThreshold: getEnvFloat("EVENT_COMBINE_CONFIDENCE_THRESHOLD", 0.75),
		Model:               getEnvOrDefault("EVENT_COMBINE_MODEL", getEnvOrDefault("EVENT_AGGREGATION_MODEL", "qwen-plus")),
		Temperature:         float32(getEnvFloat("EVENT_COMBINE_TEMPERATURE", 0.2)),
		MaxTokens:           int32(getEnvInt("EVENT_COMBINE_MAX_TOKENS", 4096)),
	}
}

// Incremental narrows the config to the events touched since the last
// merge run: a short window, small candidate cap.
func (c *MergeConfig) Incremental() *MergeConfig {
	out := *c
	out.Window = getEnvDuration("EVENT_COMBINE_INCREMENTAL_WINDOW", 2*time.Hour)
	return &out
}

// Daily widens the config for the consolidation pass over a full day.
func (c *MergeConfig) Daily() *MergeConfig {
	out := *c
	out.Window = 24 * time.Hour
	out.RecentEventCount = getEnvInt("EVENT_COMBINE_DAILY_COUNT", c.RecentEventCount*2)
	return &out
}

// Custom overrides the window and candidate cap explicitly. Zero values
// keep the receiver's.
func (c *MergeConfig) Custom(window time.Duration, count int) *MergeConfig {
	out := *c
	if window > 0 {
		out.Window = window
	}
	if count > 0 {
		out.RecentEventCount = count
	}
	return &out
}
