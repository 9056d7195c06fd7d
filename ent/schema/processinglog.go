package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessingLog records one aggregation or merge run: totals, outcome,
// and the config snapshot that produced it. Makes post-mortems possible
// without re-running.
type ProcessingLog struct {
	ent.Schema
}

// Fields of the ProcessingLog.
func (ProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_type").
			Comment("aggregation | merge | cleanup | ingestion_check"),
		field.String("task_id").
			Unique(),
		field.Time("start_time").
			Default(time.Now),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.String("status").
			Default("running").
			Comment("running | success | partial | failed"),
		field.Int("total").
			Default(0),
		field.Int("success").
			Default(0),
		field.Int("failed").
			Default(0),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.JSON("config_snapshot", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the ProcessingLog.
func (ProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_type"),
		index.Fields("task_type", "start_time"),
	}
}

// Annotations maps the entity onto the hot_aggr_processing_logs table.
func (ProcessingLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "hot_aggr_processing_logs"},
	}
}
