package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// ProcessingLogRetentionDays is how many days to keep finished
	// run records.
	ProcessingLogRetentionDays int

	// CallRecordRetention is the maximum age of on-disk LLM call
	// artefacts before deletion.
	CallRecordRetention time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults,
// overridable via environment variables.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ProcessingLogRetentionDays: getEnvInt("PROCESSING_LOG_RETENTION_DAYS", 30),
		CallRecordRetention:        getEnvDuration("LLM_CALLS_RETENTION", 7*24*time.Hour),
	}
}
