package models

import "time"

// ExistingEventAssignment is one LLM decision assigning news items to an
// event already present in the context set.
type ExistingEventAssignment struct {
	EventID    int     `json:"event_id"`
	NewsIDs    []int   `json:"news_ids"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// NewEventProposal is one LLM decision clustering news items into a new
// event.
type NewEventProposal struct {
	NewsIDs    []int    `json:"news_ids"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	EventType  string   `json:"event_type"`
	Region     string   `json:"region"`
	Tags       []string `json:"tags"`
	Confidence float64  `json:"confidence"`
	Priority   string   `json:"priority"`
	Sentiment  string   `json:"sentiment"`
}

// AggregationResult is the decoded aggregation response for one batch.
// Every input news id must appear in exactly one of the two arrays; the
// validator enforces this and repairs what it can.
type AggregationResult struct {
	ExistingEvents []ExistingEventAssignment `json:"existing_events"`
	NewEvents      []NewEventProposal        `json:"new_events"`
}

// ProcessedIDs returns the union of all news ids referenced by the result,
// in document order (existing entries first), de-duplicated.
func (r *AggregationResult) ProcessedIDs() []int {
	seen := make(map[int]struct{})
	var ids []int
	appendIDs := func(in []int) {
		for _, id := range in {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, e := range r.ExistingEvents {
		appendIDs(e.NewsIDs)
	}
	for _, e := range r.NewEvents {
		appendIDs(e.NewsIDs)
	}
	return ids
}

// ValidationOutcome is the result of validating an AggregationResult
// against its input batch. Fixed is always usable when non-nil — the
// engine persists it even when IsValid is false, then re-dispatches the
// missing items.
type ValidationOutcome struct {
	IsValid     bool
	Fixed       *AggregationResult
	MissingNews []int
	ExtraIDs    []int
	Message     string
}

// AggregationSummary is the run summary returned by the Aggregation Engine.
type AggregationSummary struct {
	TaskID         string        `json:"task_id"`
	TotalNews      int           `json:"total_news"`
	ProcessedCount int           `json:"processed_count"`
	FailedCount    int           `json:"failed_count"`
	EventsCreated  int           `json:"events_created"`
	Duration       time.Duration `json:"duration"`
	FailedNewsIDs  []int         `json:"failed_news_ids,omitempty"`
}
