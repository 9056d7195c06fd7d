// Package models defines the typed records exchanged between the engines,
// the LLM dispatcher, and the persistence layer. JSON decoding of model
// output lives at the dispatcher boundary; everything downstream sees
// these types.
package models

// Event status values as persisted in hot_aggr_events.status.
const (
	EventStatusActive  int8 = 1
	EventStatusMerged  int8 = 2
	EventStatusDeleted int8 = 3
)

// Sentiment values.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// NormalizeSentiment maps arbitrary model output onto the persisted enum,
// defaulting to neutral.
func NormalizeSentiment(s string) string {
	switch s {
	case SentimentPositive, SentimentNegative:
		return s
	default:
		return SentimentNeutral
	}
}

// ProcessingLog task types.
const (
	TaskTypeAggregation    = "aggregation"
	TaskTypeMerge          = "merge"
	TaskTypeCleanup        = "cleanup"
	TaskTypeIngestionCheck = "ingestion_check"
)

// ProcessingLog statuses.
const (
	RunStatusRunning = "running"
	RunStatusSuccess = "success"
	RunStatusPartial = "partial"
	RunStatusFailed  = "failed"
)
