// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HotAggrEventsColumns holds the columns for the "hot_aggr_events" table.
	HotAggrEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "event_type", Type: field.TypeString, Default: ""},
		{Name: "sentiment", Type: field.TypeEnum, Enums: []string{"positive", "neutral", "negative"}, Default: "neutral"},
		{Name: "entities", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "regions", Type: field.TypeString, Default: ""},
		{Name: "keywords", Type: field.TypeString, Default: ""},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "news_count", Type: field.TypeInt, Default: 0},
		{Name: "first_news_time", Type: field.TypeTime, Nullable: true},
		{Name: "last_news_time", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeInt8, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HotAggrEventsTable holds the schema information for the "hot_aggr_events" table.
	HotAggrEventsTable = &schema.Table{
		Name:       "hot_aggr_events",
		Columns:    HotAggrEventsColumns,
		PrimaryKey: []*schema.Column{HotAggrEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_status",
				Unique:  false,
				Columns: []*schema.Column{HotAggrEventsColumns[12]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{HotAggrEventsColumns[13]},
			},
			{
				Name:    "event_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{HotAggrEventsColumns[12], HotAggrEventsColumns[13]},
			},
		},
	}
	// HotAggrEventHistoryRelationsColumns holds the columns for the "hot_aggr_event_history_relations" table.
	HotAggrEventHistoryRelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "parent_event_id", Type: field.TypeInt},
		{Name: "child_event_id", Type: field.TypeInt},
		{Name: "relation_type", Type: field.TypeEnum, Enums: []string{"batch_merge", "continuation", "evolution"}},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// HotAggrEventHistoryRelationsTable holds the schema information for the "hot_aggr_event_history_relations" table.
	HotAggrEventHistoryRelationsTable = &schema.Table{
		Name:       "hot_aggr_event_history_relations",
		Columns:    HotAggrEventHistoryRelationsColumns,
		PrimaryKey: []*schema.Column{HotAggrEventHistoryRelationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventhistoryrelation_parent_event_id",
				Unique:  false,
				Columns: []*schema.Column{HotAggrEventHistoryRelationsColumns[1]},
			},
			{
				Name:    "eventhistoryrelation_child_event_id",
				Unique:  false,
				Columns: []*schema.Column{HotAggrEventHistoryRelationsColumns[2]},
			},
		},
	}
	// HotAggrNewsEventRelationsColumns holds the columns for the "hot_aggr_news_event_relations" table.
	HotAggrNewsEventRelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "news_id", Type: field.TypeInt},
		{Name: "event_id", Type: field.TypeInt},
		{Name: "relation_type", Type: field.TypeEnum, Enums: []string{"assigned_to_existing", "assigned_to_new", "batch_merge"}},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// HotAggrNewsEventRelationsTable holds the schema information for the "hot_aggr_news_event_relations" table.
	HotAggrNewsEventRelationsTable = &schema.Table{
		Name:       "hot_aggr_news_event_relations",
		Columns:    HotAggrNewsEventRelationsColumns,
		PrimaryKey: []*schema.Column{HotAggrNewsEventRelationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "newseventrelation_news_id_event_id",
				Unique:  true,
				Columns: []*schema.Column{HotAggrNewsEventRelationsColumns[1], HotAggrNewsEventRelationsColumns[2]},
			},
			{
				Name:    "newseventrelation_event_id",
				Unique:  false,
				Columns: []*schema.Column{HotAggrNewsEventRelationsColumns[2]},
			},
		},
	}
	// HotNewsBaseColumns holds the columns for the "hot_news_base" table.
	HotNewsBaseColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "city_name", Type: field.TypeString, Default: ""},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "url", Type: field.TypeString, Default: ""},
	}
	// HotNewsBaseTable holds the schema information for the "hot_news_base" table.
	HotNewsBaseTable = &schema.Table{
		Name:       "hot_news_base",
		Columns:    HotNewsBaseColumns,
		PrimaryKey: []*schema.Column{HotNewsBaseColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "newsitem_source_type",
				Unique:  false,
				Columns: []*schema.Column{HotNewsBaseColumns[1]},
			},
			{
				Name:    "newsitem_first_seen_at",
				Unique:  false,
				Columns: []*schema.Column{HotNewsBaseColumns[5]},
			},
			{
				Name:    "newsitem_source_type_first_seen_at",
				Unique:  false,
				Columns: []*schema.Column{HotNewsBaseColumns[1], HotNewsBaseColumns[5]},
			},
		},
	}
	// HotAggrProcessingLogsColumns holds the columns for the "hot_aggr_processing_logs" table.
	HotAggrProcessingLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_type", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "running"},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "success", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "config_snapshot", Type: field.TypeJSON, Nullable: true},
	}
	// HotAggrProcessingLogsTable holds the schema information for the "hot_aggr_processing_logs" table.
	HotAggrProcessingLogsTable = &schema.Table{
		Name:       "hot_aggr_processing_logs",
		Columns:    HotAggrProcessingLogsColumns,
		PrimaryKey: []*schema.Column{HotAggrProcessingLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processinglog_task_type",
				Unique:  false,
				Columns: []*schema.Column{HotAggrProcessingLogsColumns[1]},
			},
			{
				Name:    "processinglog_task_type_start_time",
				Unique:  false,
				Columns: []*schema.Column{HotAggrProcessingLogsColumns[1], HotAggrProcessingLogsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HotAggrEventsTable,
		HotAggrEventHistoryRelationsTable,
		HotAggrNewsEventRelationsTable,
		HotNewsBaseTable,
		HotAggrProcessingLogsTable,
	}
)

func init() {
	HotAggrEventsTable.Annotation = &entsql.Annotation{
		Table: "hot_aggr_events",
	}
	HotAggrEventHistoryRelationsTable.Annotation = &entsql.Annotation{
		Table: "hot_aggr_event_history_relations",
	}
	HotAggrNewsEventRelationsTable.Annotation = &entsql.Annotation{
		Table: "hot_aggr_news_event_relations",
	}
	HotNewsBaseTable.Annotation = &entsql.Annotation{
		Table: "hot_news_base",
	}
	HotAggrProcessingLogsTable.Annotation = &entsql.Annotation{
		Table: "hot_aggr_processing_logs",
	}
}
