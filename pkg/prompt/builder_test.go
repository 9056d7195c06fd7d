package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/newsflow/hotaggr/pkg/models"
)

func TestBuildAggregationPrompt(t *testing.T) {
	news := []models.NewsDigest{
		{ID: 101, SourceType: "weibo", Title: "Bridge closed downtown", CityName: "chengdu",
			FirstSeenAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		{ID: 102, SourceType: "rss", Title: "Traffic rerouted after closure"},
	}
	events := []models.EventDigest{
		{ID: 7, Title: "Downtown bridge incident", Regions: "chengdu", Keywords: "bridge,traffic"},
	}

	b := NewBuilder()
	p := b.BuildAggregationPrompt(news, events)

	assert.Contains(t, p, "## Recent Events")
	assert.Contains(t, p, "### Event 7")
	assert.Contains(t, p, "## News Items")
	assert.Contains(t, p, "### News 101")
	assert.Contains(t, p, "### News 102")
	assert.Contains(t, p, "**City:** chengdu")
	// The output contract lists every input id.
	assert.Contains(t, p, "101, 102")
}

func TestBuildAggregationPrompt_NoEvents(t *testing.T) {
	b := NewBuilder()
	p := b.BuildAggregationPrompt([]models.NewsDigest{{ID: 1, Title: "x"}}, nil)
	assert.Contains(t, p, "No recent events. Every news item forms a new event.")
}

func TestBuildAggregationPrompt_TruncatesBody(t *testing.T) {
	long := strings.Repeat("身", 2000)
	b := NewBuilder()
	p := b.BuildAggregationPrompt([]models.NewsDigest{{ID: 1, Title: "x", Body: long}}, nil)
	assert.NotContains(t, p, long)
	assert.Contains(t, p, "…")
}

func TestBuildBatchMergePrompt(t *testing.T) {
	events := []models.EventDigest{
		{ID: 1, Title: "Quake near city", EventType: "disaster"},
		{ID: 2, Title: "Earthquake reported", EventType: "disaster"},
	}
	b := NewBuilder()
	p := b.BuildBatchMergePrompt(events)

	assert.Contains(t, p, "## Candidate Events")
	assert.Contains(t, p, "### Event 1")
	assert.Contains(t, p, "### Event 2")
	assert.Contains(t, p, "merge_suggestions")
}

func TestSystemPrompts(t *testing.T) {
	b := NewBuilder()
	assert.NotEmpty(t, b.AggregationSystemPrompt())
	assert.NotEmpty(t, b.MergeSystemPrompt())
	assert.NotEqual(t, b.AggregationSystemPrompt(), b.MergeSystemPrompt())
}
