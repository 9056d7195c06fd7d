package models

import "time"

// MergeSuggestion is one group of duplicate events proposed by the LLM
// (or built synthetically for a manual merge).
type MergeSuggestion struct {
	GroupID           string         `json:"group_id"`
	EventsToMerge     []int          `json:"events_to_merge"`
	PrimaryEventID    int            `json:"primary_event_id"`
	Confidence        float64        `json:"confidence"`
	Reason            string         `json:"reason"`
	MergedTitle       string         `json:"merged_title"`
	MergedDescription string         `json:"merged_description"`
	MergedKeywords    []string       `json:"merged_keywords"`
	MergedRegions     []string       `json:"merged_regions"`
	Analysis          map[string]any `json:"analysis"`
}

// Contains reports whether the suggestion references the event id.
func (s *MergeSuggestion) Contains(eventID int) bool {
	for _, id := range s.EventsToMerge {
		if id == eventID {
			return true
		}
	}
	return false
}

// BatchMergeResult is the decoded batch-merge response: all duplicate
// groups found in one LLM pass over the recent events.
type BatchMergeResult struct {
	MergeSuggestions []MergeSuggestion `json:"merge_suggestions"`
	AnalysisSummary  string            `json:"analysis_summary"`
}

// FailedMerge describes one suggestion that could not be executed.
type FailedMerge struct {
	GroupID        string `json:"group_id"`
	PrimaryEventID int    `json:"primary_event_id"`
	Error          string `json:"error"`
}

// MergeSummary is the run summary returned by the Merge Engine.
type MergeSummary struct {
	TaskID           string        `json:"task_id"`
	SuggestionsCount int           `json:"suggestions_count"`
	MergedCount      int           `json:"merged_count"`
	FailedCount      int           `json:"failed_count"`
	Duration         time.Duration `json:"duration"`
	FailedMerges     []FailedMerge `json:"failed_merges,omitempty"`
}
