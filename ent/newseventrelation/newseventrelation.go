// Code generated by ent, DO NOT EDIT.

package newseventrelation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the newseventrelation type in the database.
	Label = "news_event_relation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNewsID holds the string denoting the news_id field in the database.
	FieldNewsID = "news_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the newseventrelation in the database.
	Table = "hot_aggr_news_event_relations"
)

// Columns holds all SQL columns for newseventrelation fields.
var Columns = []string{
	FieldID,
	FieldNewsID,
	FieldEventID,
	FieldRelationType,
	FieldConfidenceScore,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RelationType defines the type for the "relation_type" enum field.
type RelationType string

// RelationType values.
const (
	RelationTypeAssignedToExisting RelationType = "assigned_to_existing"
	RelationTypeAssignedToNew      RelationType = "assigned_to_new"
	RelationTypeBatchMerge         RelationType = "batch_merge"
)

func (rt RelationType) String() string {
	return string(rt)
}

// RelationTypeValidator is a validator for the "relation_type" field enum values. It is called by the builders before save.
func RelationTypeValidator(rt RelationType) error {
	switch rt {
	case RelationTypeAssignedToExisting, RelationTypeAssignedToNew, RelationTypeBatchMerge:
		return nil
	default:
		return fmt.Errorf("newseventrelation: invalid enum value for relation_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the NewsEventRelation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNewsID orders the results by the news_id field.
func ByNewsID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewsID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
