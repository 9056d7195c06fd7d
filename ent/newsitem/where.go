// Code generated by ent, DO NOT EDIT.

package newsitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldID, id))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldSourceType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldBody, v))
}

// CityName applies equality check predicate on the "city_name" field. It's identical to CityNameEQ.
func CityName(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldCityName, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldFirstSeenAt, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldURL, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldSourceType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldBody, v))
}

// CityNameEQ applies the EQ predicate on the "city_name" field.
func CityNameEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldCityName, v))
}

// CityNameNEQ applies the NEQ predicate on the "city_name" field.
func CityNameNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldCityName, v))
}

// CityNameIn applies the In predicate on the "city_name" field.
func CityNameIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldCityName, vs...))
}

// CityNameNotIn applies the NotIn predicate on the "city_name" field.
func CityNameNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldCityName, vs...))
}

// CityNameGT applies the GT predicate on the "city_name" field.
func CityNameGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldCityName, v))
}

// CityNameGTE applies the GTE predicate on the "city_name" field.
func CityNameGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldCityName, v))
}

// CityNameLT applies the LT predicate on the "city_name" field.
func CityNameLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldCityName, v))
}

// CityNameLTE applies the LTE predicate on the "city_name" field.
func CityNameLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldCityName, v))
}

// CityNameContains applies the Contains predicate on the "city_name" field.
func CityNameContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldCityName, v))
}

// CityNameHasPrefix applies the HasPrefix predicate on the "city_name" field.
func CityNameHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldCityName, v))
}

// CityNameHasSuffix applies the HasSuffix predicate on the "city_name" field.
func CityNameHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldCityName, v))
}

// CityNameEqualFold applies the EqualFold predicate on the "city_name" field.
func CityNameEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldCityName, v))
}

// CityNameContainsFold applies the ContainsFold predicate on the "city_name" field.
func CityNameContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldCityName, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldFirstSeenAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.NewsItem {
	return predicate.NewsItem(sql.FieldContainsFold(FieldURL, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NewsItem) predicate.NewsItem {
	return predicate.NewsItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NewsItem) predicate.NewsItem {
	return predicate.NewsItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NewsItem) predicate.NewsItem {
	return predicate.NewsItem(sql.NotPredicates(p))
}
