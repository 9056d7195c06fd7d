// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// EventHistoryRelation is the predicate function for eventhistoryrelation builders.
type EventHistoryRelation func(*sql.Selector)

// NewsEventRelation is the predicate function for newseventrelation builders.
type NewsEventRelation func(*sql.Selector)

// NewsItem is the predicate function for newsitem builders.
type NewsItem func(*sql.Selector)

// ProcessingLog is the predicate function for processinglog builders.
type ProcessingLog func(*sql.Selector)
