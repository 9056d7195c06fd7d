// Code generated by ent, DO NOT EDIT.

package newseventrelation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLTE(FieldID, id))
}

// NewsID applies equality check predicate on the "news_id" field. It's identical to NewsIDEQ.
func NewsID(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldNewsID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldEventID, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldConfidenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// NewsIDEQ applies the EQ predicate on the "news_id" field.
func NewsIDEQ(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldNewsID, v))
}

// NewsIDNEQ applies the NEQ predicate on the "news_id" field.
func NewsIDNEQ(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNEQ(FieldNewsID, v))
}

// NewsIDIn applies the In predicate on the "news_id" field.
func NewsIDIn(vs ...int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldIn(FieldNewsID, vs...))
}

// NewsIDNotIn applies the NotIn predicate on the "news_id" field.
func NewsIDNotIn(vs ...int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNotIn(FieldNewsID, vs...))
}

// NewsIDGT applies the GT predicate on the "news_id" field.
func NewsIDGT(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGT(FieldNewsID, v))
}

// NewsIDGTE applies the GTE predicate on the "news_id" field.
func NewsIDGTE(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGTE(FieldNewsID, v))
}

// NewsIDLT applies the LT predicate on the "news_id" field.
func NewsIDLT(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLT(FieldNewsID, v))
}

// NewsIDLTE applies the LTE predicate on the "news_id" field.
func NewsIDLTE(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLTE(FieldNewsID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v int) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLTE(FieldEventID, v))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v RelationType) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v RelationType) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...RelationType) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...RelationType) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNotIn(FieldRelationType, vs...))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLTE(FieldConfidenceScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NewsEventRelation) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NewsEventRelation) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NewsEventRelation) predicate.NewsEventRelation {
	return predicate.NewsEventRelation(sql.NotPredicates(p))
}
