package config

import "time"

// SchedulerConfig controls the periodic jobs run by the serve command.
type SchedulerConfig struct {
	// AggregationInterval is the cadence of incremental aggregation runs.
	AggregationInterval time.Duration

	// IncrementalMergeInterval is the cadence of incremental merge runs.
	IncrementalMergeInterval time.Duration

	// DailyMergeInterval is the cadence of the wide consolidation merge.
	DailyMergeInterval time.Duration

	// LabelingInterval is the cadence of the event-labeling hook.
	LabelingInterval time.Duration

	// CleanupInterval is the cadence of retention cleanup.
	CleanupInterval time.Duration

	// MisfireGrace is how long past its due time a tick may still fire.
	// A job that was blocked longer than this skips the missed tick
	// instead of running late.
	MisfireGrace time.Duration
}

// DefaultSchedulerConfig returns the built-in scheduler defaults,
// overridable via environment variables.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		AggregationInterval:      getEnvDuration("AGGREGATION_INTERVAL", 10*time.Minute),
		IncrementalMergeInterval: getEnvDuration("INCREMENTAL_MERGE_INTERVAL", 30*time.Minute),
		DailyMergeInterval:       getEnvDuration("DAILY_MERGE_INTERVAL", 24*time.Hour),
		LabelingInterval:         getEnvDuration("LABELING_INTERVAL", time.Hour),
		CleanupInterval:          getEnvDuration("CLEANUP_INTERVAL", 12*time.Hour),
		MisfireGrace:             getEnvDuration("SCHEDULER_MISFIRE_GRACE", 1*time.Minute),
	}
}
