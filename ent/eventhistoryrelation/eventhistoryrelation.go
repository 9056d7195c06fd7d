// Code generated by ent, DO NOT EDIT.

package eventhistoryrelation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventhistoryrelation type in the database.
	Label = "event_history_relation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldParentEventID holds the string denoting the parent_event_id field in the database.
	FieldParentEventID = "parent_event_id"
	// FieldChildEventID holds the string denoting the child_event_id field in the database.
	FieldChildEventID = "child_event_id"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the eventhistoryrelation in the database.
	Table = "hot_aggr_event_history_relations"
)

// Columns holds all SQL columns for eventhistoryrelation fields.
var Columns = []string{
	FieldID,
	FieldParentEventID,
	FieldChildEventID,
	FieldRelationType,
	FieldConfidenceScore,
	FieldDescription,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore float64
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RelationType defines the type for the "relation_type" enum field.
type RelationType string

// RelationType values.
const (
	RelationTypeBatchMerge   RelationType = "batch_merge"
	RelationTypeContinuation RelationType = "continuation"
	RelationTypeEvolution    RelationType = "evolution"
)

func (rt RelationType) String() string {
	return string(rt)
}

// RelationTypeValidator is a validator for the "relation_type" field enum values. It is called by the builders before save.
func RelationTypeValidator(rt RelationType) error {
	switch rt {
	case RelationTypeBatchMerge, RelationTypeContinuation, RelationTypeEvolution:
		return nil
	default:
		return fmt.Errorf("eventhistoryrelation: invalid enum value for relation_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the EventHistoryRelation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParentEventID orders the results by the parent_event_id field.
func ByParentEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentEventID, opts...).ToFunc()
}

// ByChildEventID orders the results by the child_event_id field.
func ByChildEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildEventID, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
