package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NewsItem mirrors the external hot_news_base table populated by the
// crawler pipeline. The aggregation core treats it as read-only; IDs are
// assigned upstream.
type NewsItem struct {
	ent.Schema
}

// Fields of the NewsItem.
func (NewsItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_type").
			Comment("Upstream source identifier (e.g. 'weibo', 'toutiao')"),
		field.String("title"),
		field.Text("body").
			Default(""),
		field.String("city_name").
			Default("").
			Comment("Free-form, possibly comma-joined city names"),
		field.Time("first_seen_at").
			Default(time.Now),
		field.String("url").
			Default(""),
	}
}

// Indexes of the NewsItem.
func (NewsItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_type"),
		index.Fields("first_seen_at"),
		index.Fields("source_type", "first_seen_at"),
	}
}

// Annotations maps the entity onto the external hot_news_base table.
func (NewsItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "hot_news_base"},
	}
}
