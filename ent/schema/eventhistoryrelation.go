package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventHistoryRelation is the merge ledger: one row per absorbed child
// event, pointing at the surviving parent. The child→parent graph is a
// forest — every merged event reaches exactly one active event.
type EventHistoryRelation struct {
	ent.Schema
}

// Fields of the EventHistoryRelation.
func (EventHistoryRelation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("parent_event_id").
			Comment("The surviving event"),
		field.Int("child_event_id").
			Comment("The absorbed event"),
		field.Enum("relation_type").
			Values("batch_merge", "continuation", "evolution"),
		field.Float("confidence_score").
			Default(0),
		field.Text("description").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EventHistoryRelation.
func (EventHistoryRelation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_event_id"),
		index.Fields("child_event_id"),
	}
}

// Annotations maps the entity onto the hot_aggr_event_history_relations table.
func (EventHistoryRelation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "hot_aggr_event_history_relations"},
	}
}
