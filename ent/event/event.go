// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldSentiment holds the string denoting the sentiment field in the database.
	FieldSentiment = "sentiment"
	// FieldEntities holds the string denoting the entities field in the database.
	FieldEntities = "entities"
	// FieldRegions holds the string denoting the regions field in the database.
	FieldRegions = "regions"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldNewsCount holds the string denoting the news_count field in the database.
	FieldNewsCount = "news_count"
	// FieldFirstNewsTime holds the string denoting the first_news_time field in the database.
	FieldFirstNewsTime = "first_news_time"
	// FieldLastNewsTime holds the string denoting the last_news_time field in the database.
	FieldLastNewsTime = "last_news_time"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the event in the database.
	Table = "hot_aggr_events"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldEventType,
	FieldSentiment,
	FieldEntities,
	FieldRegions,
	FieldKeywords,
	FieldConfidenceScore,
	FieldNewsCount,
	FieldFirstNewsTime,
	FieldLastNewsTime,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultEventType holds the default value on creation for the "event_type" field.
	DefaultEventType string
	// DefaultEntities holds the default value on creation for the "entities" field.
	DefaultEntities string
	// DefaultRegions holds the default value on creation for the "regions" field.
	DefaultRegions string
	// DefaultKeywords holds the default value on creation for the "keywords" field.
	DefaultKeywords string
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore float64
	// DefaultNewsCount holds the default value on creation for the "news_count" field.
	DefaultNewsCount int
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus int8
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Sentiment defines the type for the "sentiment" enum field.
type Sentiment string

// SentimentNeutral is the default value of the Sentiment enum.
const DefaultSentiment = SentimentNeutral

// Sentiment values.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) String() string {
	return string(s)
}

// SentimentValidator is a validator for the "sentiment" field enum values. It is called by the builders before save.
func SentimentValidator(s Sentiment) error {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for sentiment field: %q", s)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// BySentiment orders the results by the sentiment field.
func BySentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentiment, opts...).ToFunc()
}

// ByEntities orders the results by the entities field.
func ByEntities(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntities, opts...).ToFunc()
}

// ByRegions orders the results by the regions field.
func ByRegions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegions, opts...).ToFunc()
}

// ByKeywords orders the results by the keywords field.
func ByKeywords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeywords, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByNewsCount orders the results by the news_count field.
func ByNewsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewsCount, opts...).ToFunc()
}

// ByFirstNewsTime orders the results by the first_news_time field.
func ByFirstNewsTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstNewsTime, opts...).ToFunc()
}

// ByLastNewsTime orders the results by the last_news_time field.
func ByLastNewsTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastNewsTime, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
