package models

import "time"

// NewsDigest is the prompt-facing view of a news item. The prompt builder
// and dispatcher work on digests so they stay decoupled from the
// persistence layer.
type NewsDigest struct {
	ID          int
	SourceType  string
	Title       string
	Body        string
	CityName    string
	FirstSeenAt time.Time
}

// EventDigest is the prompt-facing view of a context event.
type EventDigest struct {
	ID          int
	Title       string
	Description string
	EventType   string
	Regions     string
	Keywords    string
	CreatedAt   time.Time
}

// NewsIDs extracts the id set of a digest slice, preserving order.
func NewsIDs(news []NewsDigest) []int {
	ids := make([]int, len(news))
	for i, n := range news {
		ids[i] = n.ID
	}
	return ids
}

// EventIDSet builds a membership set of context event ids.
func EventIDSet(events []EventDigest) map[int]struct{} {
	set := make(map[int]struct{}, len(events))
	for _, e := range events {
		set[e.ID] = struct{}{}
	}
	return set
}
