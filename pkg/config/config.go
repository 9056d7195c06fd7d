// Package config holds the environment-driven configuration for every
// component of the pipeline. Each section has a Default* constructor
// that reads its environment variables once; Load assembles them all.
package config

// Config is the umbrella configuration object used throughout the
// application.
type Config struct {
	Dispatch    *DispatchConfig
	Aggregation *AggregationConfig
	Merge       *MergeConfig
	Scheduler   *SchedulerConfig
	Retention   *RetentionConfig

	// LLMServiceAddr is the gRPC address of the LLM sidecar.
	LLMServiceAddr string

	// HTTPPort is the ops API listen port.
	HTTPPort int
}

// Load builds the full configuration from the environment.
func Load() *Config {
	return &Config{
		Dispatch:       DefaultDispatchConfig(),
		Aggregation:    DefaultAggregationConfig(),
		Merge:          DefaultMergeConfig(),
		Scheduler:      DefaultSchedulerConfig(),
		Retention:      DefaultRetentionConfig(),
		LLMServiceAddr: getEnvOrDefault("LLM_SERVICE_ADDR", "localhost:50051"),
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
	}
}
