// Code generated by ent, DO NOT EDIT.

package eventhistoryrelation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLTE(FieldID, id))
}

// ParentEventID applies equality check predicate on the "parent_event_id" field. It's identical to ParentEventIDEQ.
func ParentEventID(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldParentEventID, v))
}

// ChildEventID applies equality check predicate on the "child_event_id" field. It's identical to ChildEventIDEQ.
func ChildEventID(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldChildEventID, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldConfidenceScore, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// ParentEventIDEQ applies the EQ predicate on the "parent_event_id" field.
func ParentEventIDEQ(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldParentEventID, v))
}

// ParentEventIDNEQ applies the NEQ predicate on the "parent_event_id" field.
func ParentEventIDNEQ(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNEQ(FieldParentEventID, v))
}

// ParentEventIDIn applies the In predicate on the "parent_event_id" field.
func ParentEventIDIn(vs ...int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldIn(FieldParentEventID, vs...))
}

// ParentEventIDNotIn applies the NotIn predicate on the "parent_event_id" field.
func ParentEventIDNotIn(vs ...int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNotIn(FieldParentEventID, vs...))
}

// ParentEventIDGT applies the GT predicate on the "parent_event_id" field.
func ParentEventIDGT(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGT(FieldParentEventID, v))
}

// ParentEventIDGTE applies the GTE predicate on the "parent_event_id" field.
func ParentEventIDGTE(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGTE(FieldParentEventID, v))
}

// ParentEventIDLT applies the LT predicate on the "parent_event_id" field.
func ParentEventIDLT(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLT(FieldParentEventID, v))
}

// ParentEventIDLTE applies the LTE predicate on the "parent_event_id" field.
func ParentEventIDLTE(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLTE(FieldParentEventID, v))
}

// ChildEventIDEQ applies the EQ predicate on the "child_event_id" field.
func ChildEventIDEQ(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldChildEventID, v))
}

// ChildEventIDNEQ applies the NEQ predicate on the "child_event_id" field.
func ChildEventIDNEQ(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNEQ(FieldChildEventID, v))
}

// ChildEventIDIn applies the In predicate on the "child_event_id" field.
func ChildEventIDIn(vs ...int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldIn(FieldChildEventID, vs...))
}

// ChildEventIDNotIn applies the NotIn predicate on the "child_event_id" field.
func ChildEventIDNotIn(vs ...int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNotIn(FieldChildEventID, vs...))
}

// ChildEventIDGT applies the GT predicate on the "child_event_id" field.
func ChildEventIDGT(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGT(FieldChildEventID, v))
}

// ChildEventIDGTE applies the GTE predicate on the "child_event_id" field.
func ChildEventIDGTE(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGTE(FieldChildEventID, v))
}

// ChildEventIDLT applies the LT predicate on the "child_event_id" field.
func ChildEventIDLT(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLT(FieldChildEventID, v))
}

// ChildEventIDLTE applies the LTE predicate on the "child_event_id" field.
func ChildEventIDLTE(v int) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLTE(FieldChildEventID, v))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v RelationType) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v RelationType) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...RelationType) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...RelationType) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNotIn(FieldRelationType, vs...))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLTE(FieldConfidenceScore, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventHistoryRelation) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventHistoryRelation) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventHistoryRelation) predicate.EventHistoryRelation {
	return predicate.EventHistoryRelation(sql.NotPredicates(p))
}
