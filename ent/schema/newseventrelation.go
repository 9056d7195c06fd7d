package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NewsEventRelation associates a news item with the event it was assigned
// to. The (news_id, event_id) unique constraint is the single source of
// truth for idempotency — inserts racing with each other resolve via the
// unique-violation path, never via check-then-insert.
type NewsEventRelation struct {
	ent.Schema
}

// Fields of the NewsEventRelation.
func (NewsEventRelation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("news_id"),
		field.Int("event_id"),
		field.Enum("relation_type").
			Values("assigned_to_existing", "assigned_to_new", "batch_merge"),
		field.Float("confidence_score").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the NewsEventRelation.
func (NewsEventRelation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("news_id", "event_id").
			Unique(),
		index.Fields("event_id"),
	}
}

// Annotations maps the entity onto the hot_aggr_news_event_relations table.
func (NewsEventRelation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "hot_aggr_news_event_relations"},
	}
}
