// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
)

// NewsEventRelation is the model entity for the NewsEventRelation schema.
type NewsEventRelation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// NewsID holds the value of the "news_id" field.
	NewsID int `json:"news_id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID int `json:"event_id,omitempty"`
	// RelationType holds the value of the "relation_type" field.
	RelationType newseventrelation.RelationType `json:"relation_type,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NewsEventRelation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case newseventrelation.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case newseventrelation.FieldID, newseventrelation.FieldNewsID, newseventrelation.FieldEventID:
			values[i] = new(sql.NullInt64)
		case newseventrelation.FieldRelationType:
			values[i] = new(sql.NullString)
		case newseventrelation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NewsEventRelation fields.
func (_m *NewsEventRelation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case newseventrelation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case newseventrelation.FieldNewsID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field news_id", values[i])
			} else if value.Valid {
				_m.NewsID = int(value.Int64)
			}
		case newseventrelation.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = int(value.Int64)
			}
		case newseventrelation.FieldRelationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type", values[i])
			} else if value.Valid {
				_m.RelationType = newseventrelation.RelationType(value.String)
			}
		case newseventrelation.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case newseventrelation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NewsEventRelation.
// This includes values selected through modifiers, order, etc.
func (_m *NewsEventRelation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NewsEventRelation.
// Note that you need to call NewsEventRelation.Unwrap() before calling this method if this NewsEventRelation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NewsEventRelation) Update() *NewsEventRelationUpdateOne {
	return NewNewsEventRelationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NewsEventRelation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NewsEventRelation) Unwrap() *NewsEventRelation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NewsEventRelation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NewsEventRelation) String() string {
	var builder strings.Builder
	builder.WriteString("NewsEventRelation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("news_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewsID))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	builder.WriteString("relation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelationType))
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NewsEventRelations is a parsable slice of NewsEventRelation.
type NewsEventRelations []*NewsEventRelation
