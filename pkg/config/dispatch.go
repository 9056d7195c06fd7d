package config

import "time"

// DispatchConfig controls how LLM calls are batched, parallelised,
// and retried.
type DispatchConfig struct {
	// BatchSize is the number of news items sent per aggregation call.
	BatchSize int

	// MaxConcurrent bounds the number of in-flight LLM calls.
	MaxConcurrent int

	// RetryAttempts is the total number of tries for one call, the
	// first attempt included.
	RetryAttempts int

	// InitialBackoff is the delay before the first retry. Subsequent
	// retries back off exponentially up to MaxBackoff.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// AttemptTimeout bounds one attempt, not the whole call.
	AttemptTimeout time.Duration

	Model       string
	Temperature float32
	MaxTokens   int32

	// CallsDir is where per-call debug artefacts are written.
	// Empty disables recording.
	CallsDir string

	// ReplayEnabled serves identical prompts from the on-disk replay
	// cache instead of calling the LLM. Development only.
	ReplayEnabled bool
}

// DefaultDispatchConfig returns the built-in dispatch defaults,
// overridable via environment variables.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		BatchSize:      getEnvInt("LLM_BATCH_SIZE", 10),
		MaxConcurrent:  getEnvInt("LLM_MAX_CONCURRENT", 3),
		RetryAttempts:  getEnvInt("LLM_RETRY_TIMES", 3),
		InitialBackoff: getEnvDuration("LLM_RETRY_BACKOFF", 2*time.Second),
		MaxBackoff:     getEnvDuration("LLM_RETRY_MAX_BACKOFF", 30*time.Second),
		AttemptTimeout: getEnvDuration("LLM_ATTEMPT_TIMEOUT", 120*time.Second),
		Model:          getEnvOrDefault("EVENT_AGGREGATION_MODEL", "qwen-plus"),
		Temperature:    float32(getEnvFloat("EVENT_AGGREGATION_TEMPERATURE", 0.3)),
		MaxTokens:      int32(getEnvInt("EVENT_AGGREGATION_MAX_TOKENS", 4096)),
		CallsDir:       getEnvOrDefault("LLM_CALLS_DIR", "llm_calls"),
		ReplayEnabled:  getEnvBool("LLM_DEBUG_REPLAY", false),
	}
}
