// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldDescription, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// Entities applies equality check predicate on the "entities" field. It's identical to EntitiesEQ.
func Entities(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEntities, v))
}

// Regions applies equality check predicate on the "regions" field. It's identical to RegionsEQ.
func Regions(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRegions, v))
}

// Keywords applies equality check predicate on the "keywords" field. It's identical to KeywordsEQ.
func Keywords(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldKeywords, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldConfidenceScore, v))
}

// NewsCount applies equality check predicate on the "news_count" field. It's identical to NewsCountEQ.
func NewsCount(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldNewsCount, v))
}

// FirstNewsTime applies equality check predicate on the "first_news_time" field. It's identical to FirstNewsTimeEQ.
func FirstNewsTime(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFirstNewsTime, v))
}

// LastNewsTime applies equality check predicate on the "last_news_time" field. It's identical to LastNewsTimeEQ.
func LastNewsTime(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLastNewsTime, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int8) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldDescription, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventType, v))
}

// SentimentEQ applies the EQ predicate on the "sentiment" field.
func SentimentEQ(v Sentiment) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSentiment, v))
}

// SentimentNEQ applies the NEQ predicate on the "sentiment" field.
func SentimentNEQ(v Sentiment) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSentiment, v))
}

// SentimentIn applies the In predicate on the "sentiment" field.
func SentimentIn(vs ...Sentiment) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSentiment, vs...))
}

// SentimentNotIn applies the NotIn predicate on the "sentiment" field.
func SentimentNotIn(vs ...Sentiment) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSentiment, vs...))
}

// EntitiesEQ applies the EQ predicate on the "entities" field.
func EntitiesEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEntities, v))
}

// EntitiesNEQ applies the NEQ predicate on the "entities" field.
func EntitiesNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEntities, v))
}

// EntitiesIn applies the In predicate on the "entities" field.
func EntitiesIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEntities, vs...))
}

// EntitiesNotIn applies the NotIn predicate on the "entities" field.
func EntitiesNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEntities, vs...))
}

// EntitiesGT applies the GT predicate on the "entities" field.
func EntitiesGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEntities, v))
}

// EntitiesGTE applies the GTE predicate on the "entities" field.
func EntitiesGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEntities, v))
}

// EntitiesLT applies the LT predicate on the "entities" field.
func EntitiesLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEntities, v))
}

// EntitiesLTE applies the LTE predicate on the "entities" field.
func EntitiesLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEntities, v))
}

// EntitiesContains applies the Contains predicate on the "entities" field.
func EntitiesContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEntities, v))
}

// EntitiesHasPrefix applies the HasPrefix predicate on the "entities" field.
func EntitiesHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEntities, v))
}

// EntitiesHasSuffix applies the HasSuffix predicate on the "entities" field.
func EntitiesHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEntities, v))
}

// EntitiesEqualFold applies the EqualFold predicate on the "entities" field.
func EntitiesEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEntities, v))
}

// EntitiesContainsFold applies the ContainsFold predicate on the "entities" field.
func EntitiesContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEntities, v))
}

// RegionsEQ applies the EQ predicate on the "regions" field.
func RegionsEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRegions, v))
}

// RegionsNEQ applies the NEQ predicate on the "regions" field.
func RegionsNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRegions, v))
}

// RegionsIn applies the In predicate on the "regions" field.
func RegionsIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRegions, vs...))
}

// RegionsNotIn applies the NotIn predicate on the "regions" field.
func RegionsNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRegions, vs...))
}

// RegionsGT applies the GT predicate on the "regions" field.
func RegionsGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRegions, v))
}

// RegionsGTE applies the GTE predicate on the "regions" field.
func RegionsGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRegions, v))
}

// RegionsLT applies the LT predicate on the "regions" field.
func RegionsLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRegions, v))
}

// RegionsLTE applies the LTE predicate on the "regions" field.
func RegionsLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRegions, v))
}

// RegionsContains applies the Contains predicate on the "regions" field.
func RegionsContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRegions, v))
}

// RegionsHasPrefix applies the HasPrefix predicate on the "regions" field.
func RegionsHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRegions, v))
}

// RegionsHasSuffix applies the HasSuffix predicate on the "regions" field.
func RegionsHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRegions, v))
}

// RegionsEqualFold applies the EqualFold predicate on the "regions" field.
func RegionsEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRegions, v))
}

// RegionsContainsFold applies the ContainsFold predicate on the "regions" field.
func RegionsContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRegions, v))
}

// KeywordsEQ applies the EQ predicate on the "keywords" field.
func KeywordsEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldKeywords, v))
}

// KeywordsNEQ applies the NEQ predicate on the "keywords" field.
func KeywordsNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldKeywords, v))
}

// KeywordsIn applies the In predicate on the "keywords" field.
func KeywordsIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldKeywords, vs...))
}

// KeywordsNotIn applies the NotIn predicate on the "keywords" field.
func KeywordsNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldKeywords, vs...))
}

// KeywordsGT applies the GT predicate on the "keywords" field.
func KeywordsGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldKeywords, v))
}

// KeywordsGTE applies the GTE predicate on the "keywords" field.
func KeywordsGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldKeywords, v))
}

// KeywordsLT applies the LT predicate on the "keywords" field.
func KeywordsLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldKeywords, v))
}

// KeywordsLTE applies the LTE predicate on the "keywords" field.
func KeywordsLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldKeywords, v))
}

// KeywordsContains applies the Contains predicate on the "keywords" field.
func KeywordsContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldKeywords, v))
}

// KeywordsHasPrefix applies the HasPrefix predicate on the "keywords" field.
func KeywordsHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldKeywords, v))
}

// KeywordsHasSuffix applies the HasSuffix predicate on the "keywords" field.
func KeywordsHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldKeywords, v))
}

// KeywordsEqualFold applies the EqualFold predicate on the "keywords" field.
func KeywordsEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldKeywords, v))
}

// KeywordsContainsFold applies the ContainsFold predicate on the "keywords" field.
func KeywordsContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldKeywords, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldConfidenceScore, v))
}

// NewsCountEQ applies the EQ predicate on the "news_count" field.
func NewsCountEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldNewsCount, v))
}

// NewsCountNEQ applies the NEQ predicate on the "news_count" field.
func NewsCountNEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldNewsCount, v))
}

// NewsCountIn applies the In predicate on the "news_count" field.
func NewsCountIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldNewsCount, vs...))
}

// NewsCountNotIn applies the NotIn predicate on the "news_count" field.
func NewsCountNotIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldNewsCount, vs...))
}

// NewsCountGT applies the GT predicate on the "news_count" field.
func NewsCountGT(v int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldNewsCount, v))
}

// NewsCountGTE applies the GTE predicate on the "news_count" field.
func NewsCountGTE(v int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldNewsCount, v))
}

// NewsCountLT applies the LT predicate on the "news_count" field.
func NewsCountLT(v int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldNewsCount, v))
}

// NewsCountLTE applies the LTE predicate on the "news_count" field.
func NewsCountLTE(v int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldNewsCount, v))
}

// FirstNewsTimeEQ applies the EQ predicate on the "first_news_time" field.
func FirstNewsTimeEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFirstNewsTime, v))
}

// FirstNewsTimeNEQ applies the NEQ predicate on the "first_news_time" field.
func FirstNewsTimeNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldFirstNewsTime, v))
}

// FirstNewsTimeIn applies the In predicate on the "first_news_time" field.
func FirstNewsTimeIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldFirstNewsTime, vs...))
}

// FirstNewsTimeNotIn applies the NotIn predicate on the "first_news_time" field.
func FirstNewsTimeNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldFirstNewsTime, vs...))
}

// FirstNewsTimeGT applies the GT predicate on the "first_news_time" field.
func FirstNewsTimeGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldFirstNewsTime, v))
}

// FirstNewsTimeGTE applies the GTE predicate on the "first_news_time" field.
func FirstNewsTimeGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldFirstNewsTime, v))
}

// FirstNewsTimeLT applies the LT predicate on the "first_news_time" field.
func FirstNewsTimeLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldFirstNewsTime, v))
}

// FirstNewsTimeLTE applies the LTE predicate on the "first_news_time" field.
func FirstNewsTimeLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldFirstNewsTime, v))
}

// FirstNewsTimeIsNil applies the IsNil predicate on the "first_news_time" field.
func FirstNewsTimeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldFirstNewsTime))
}

// FirstNewsTimeNotNil applies the NotNil predicate on the "first_news_time" field.
func FirstNewsTimeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldFirstNewsTime))
}

// LastNewsTimeEQ applies the EQ predicate on the "last_news_time" field.
func LastNewsTimeEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLastNewsTime, v))
}

// LastNewsTimeNEQ applies the NEQ predicate on the "last_news_time" field.
func LastNewsTimeNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLastNewsTime, v))
}

// LastNewsTimeIn applies the In predicate on the "last_news_time" field.
func LastNewsTimeIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLastNewsTime, vs...))
}

// LastNewsTimeNotIn applies the NotIn predicate on the "last_news_time" field.
func LastNewsTimeNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLastNewsTime, vs...))
}

// LastNewsTimeGT applies the GT predicate on the "last_news_time" field.
func LastNewsTimeGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLastNewsTime, v))
}

// LastNewsTimeGTE applies the GTE predicate on the "last_news_time" field.
func LastNewsTimeGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLastNewsTime, v))
}

// LastNewsTimeLT applies the LT predicate on the "last_news_time" field.
func LastNewsTimeLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLastNewsTime, v))
}

// LastNewsTimeLTE applies the LTE predicate on the "last_news_time" field.
func LastNewsTimeLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLastNewsTime, v))
}

// LastNewsTimeIsNil applies the IsNil predicate on the "last_news_time" field.
func LastNewsTimeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldLastNewsTime))
}

// LastNewsTimeNotNil applies the NotNil predicate on the "last_news_time" field.
func LastNewsTimeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldLastNewsTime))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int8) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int8) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int8) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int8) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int8) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int8) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int8) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int8) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
