package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — a clustered
// representation of one or more news items describing the same happening.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("title"),
		field.Text("description").
			Default(""),
		field.String("event_type").
			Default("").
			Comment("Free-form event classification from the LLM"),
		field.Enum("sentiment").
			Values("positive", "neutral", "negative").
			Default("neutral"),
		field.Text("entities").
			Default("").
			Comment("Opaque JSON string of named entities"),
		field.String("regions").
			Default("").
			Comment("Comma-joined, de-duplicated region set"),
		field.String("keywords").
			Default("").
			Comment("Comma-joined keyword set"),
		field.Float("confidence_score").
			Default(0),
		field.Int("news_count").
			Default(0).
			Comment("Count of active news-event relations"),
		field.Time("first_news_time").
			Optional().
			Nillable(),
		field.Time("last_news_time").
			Optional().
			Nillable(),
		field.Int8("status").
			Default(1).
			Comment("1=active, 2=merged, 3=deleted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
		index.Fields("status", "created_at"),
	}
}

// Annotations maps the entity onto the hot_aggr_events table.
func (Event) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "hot_aggr_events"},
	}
}
