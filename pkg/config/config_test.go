package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 10, cfg.Dispatch.BatchSize)
	assert.Equal(t, 3, cfg.Dispatch.MaxConcurrent)
	assert.Equal(t, 3, cfg.Dispatch.RetryAttempts)
	assert.Equal(t, 2*time.Second, cfg.Dispatch.InitialBackoff)
	assert.Equal(t, "qwen-plus", cfg.Dispatch.Model)

	assert.Equal(t, 2*time.Hour, cfg.Aggregation.Window)
	assert.Equal(t, 50, cfg.Aggregation.RecentEventsCount)
	assert.Empty(t, cfg.Aggregation.ExcludedNewsTypes)

	assert.Equal(t, 24*time.Hour, cfg.Merge.Window)
	assert.Equal(t, 30, cfg.Merge.RecentEventCount)
	assert.Equal(t, 0.75, cfg.Merge.ConfidenceThreshold)

	assert.Equal(t, time.Hour, cfg.Scheduler.LabelingInterval)

	assert.Equal(t, "localhost:50051", cfg.LLMServiceAddr)
	assert.Equal(t, 8080, cfg.HTTPPort)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LLM_BATCH_SIZE", "4")
	t.Setenv("LLM_MAX_CONCURRENT", "8")
	t.Setenv("LLM_RETRY_BACKOFF", "500ms")
	t.Setenv("EVENT_AGGREGATION_MODEL", "qwen-max")
	t.Setenv("EXCLUDED_NEWS_TYPES", "ad, spam")
	t.Setenv("EVENT_COMBINE_CONFIDENCE_THRESHOLD", "0.9")
	t.Setenv("HTTP_PORT", "9090")

	cfg := Load()
	assert.Equal(t, 4, cfg.Dispatch.BatchSize)
	assert.Equal(t, 8, cfg.Dispatch.MaxConcurrent)
	assert.Equal(t, 500*time.Millisecond, cfg.Dispatch.InitialBackoff)
	assert.Equal(t, "qwen-max", cfg.Dispatch.Model)
	assert.Equal(t, []string{"ad", "spam"}, cfg.Aggregation.ExcludedNewsTypes)
	assert.Equal(t, 0.9, cfg.Merge.ConfidenceThreshold)
	assert.Equal(t, 9090, cfg.HTTPPort)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("LLM_BATCH_SIZE", "lots")
	t.Setenv("LLM_RETRY_BACKOFF", "soon")
	t.Setenv("EVENT_COMBINE_CONFIDENCE_THRESHOLD", "very high")

	cfg := Load()
	assert.Equal(t, 10, cfg.Dispatch.BatchSize)
	assert.Equal(t, 2*time.Second, cfg.Dispatch.InitialBackoff)
	assert.Equal(t, 0.75, cfg.Merge.ConfidenceThreshold)
}

func TestAggregationConfig_Custom(t *testing.T) {
	base := DefaultAggregationConfig()

	custom := base.Custom(30*time.Minute, []string{"ad"})
	assert.Equal(t, 30*time.Minute, custom.Window)
	assert.Equal(t, []string{"ad"}, custom.ExcludedNewsTypes)
	// The receiver is not mutated.
	assert.Equal(t, 2*time.Hour, base.Window)

	unchanged := base.Custom(0, nil)
	assert.Equal(t, base.Window, unchanged.Window)
	assert.Empty(t, unchanged.ExcludedNewsTypes)
}

func TestMergeConfig_Variants(t *testing.T) {
	base := DefaultMergeConfig()

	t.Run("incremental narrows window", func(t *testing.T) {
		inc := base.Incremental()
		assert.Equal(t, 2*time.Hour, inc.Window)
		assert.Equal(t, base.RecentEventCount, inc.RecentEventCount)
		// The receiver is not mutated.
		assert.Equal(t, 24*time.Hour, base.Window)
	})

	t.Run("daily doubles the candidate cap", func(t *testing.T) {
		daily := base.Daily()
		assert.Equal(t, 24*time.Hour, daily.Window)
		assert.Equal(t, base.RecentEventCount*2, daily.RecentEventCount)
	})

	t.Run("custom overrides only non-zero values", func(t *testing.T) {
		custom := base.Custom(6*time.Hour, 0)
		assert.Equal(t, 6*time.Hour, custom.Window)
		assert.Equal(t, base.RecentEventCount, custom.RecentEventCount)
	})
}
