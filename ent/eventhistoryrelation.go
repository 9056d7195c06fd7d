// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/newsflow/hotaggr/ent/eventhistoryrelation"
)

// EventHistoryRelation is the model entity for the EventHistoryRelation schema.
type EventHistoryRelation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// The surviving event
	ParentEventID int `json:"parent_event_id,omitempty"`
	// The absorbed event
	ChildEventID int `json:"child_event_id,omitempty"`
	// RelationType holds the value of the "relation_type" field.
	RelationType eventhistoryrelation.RelationType `json:"relation_type,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventHistoryRelation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventhistoryrelation.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case eventhistoryrelation.FieldID, eventhistoryrelation.FieldParentEventID, eventhistoryrelation.FieldChildEventID:
			values[i] = new(sql.NullInt64)
		case eventhistoryrelation.FieldRelationType, eventhistoryrelation.FieldDescription:
			values[i] = new(sql.NullString)
		case eventhistoryrelation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventHistoryRelation fields.
func (_m *EventHistoryRelation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventhistoryrelation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case eventhistoryrelation.FieldParentEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_event_id", values[i])
			} else if value.Valid {
				_m.ParentEventID = int(value.Int64)
			}
		case eventhistoryrelation.FieldChildEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field child_event_id", values[i])
			} else if value.Valid {
				_m.ChildEventID = int(value.Int64)
			}
		case eventhistoryrelation.FieldRelationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type", values[i])
			} else if value.Valid {
				_m.RelationType = eventhistoryrelation.RelationType(value.String)
			}
		case eventhistoryrelation.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case eventhistoryrelation.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case eventhistoryrelation.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EventHistoryRelation.
// This includes values selected through modifiers, order, etc.
func (_m *EventHistoryRelation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EventHistoryRelation.
// Note that you need to call EventHistoryRelation.Unwrap() before calling this method if this EventHistoryRelation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventHistoryRelation) Update() *EventHistoryRelationUpdateOne {
	return NewEventHistoryRelationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventHistoryRelation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventHistoryRelation) Unwrap() *EventHistoryRelation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventHistoryRelation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventHistoryRelation) String() string {
	var builder strings.Builder
	builder.WriteString("EventHistoryRelation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("parent_event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParentEventID))
	builder.WriteString(", ")
	builder.WriteString("child_event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildEventID))
	builder.WriteString(", ")
	builder.WriteString("relation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelationType))
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EventHistoryRelations is a parsable slice of EventHistoryRelation.
type EventHistoryRelations []*EventHistoryRelation
