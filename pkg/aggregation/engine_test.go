package aggregation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/ent/event"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/pkg/cache"
	"github.com/newsflow/hotaggr/pkg/config"
	"github.com/newsflow/hotaggr/pkg/dispatch"
	"github.com/newsflow/hotaggr/pkg/llm"
	"github.com/newsflow/hotaggr/pkg/models"
	"github.com/newsflow/hotaggr/pkg/prompt"
	"github.com/newsflow/hotaggr/pkg/services"
	testdb "github.com/newsflow/hotaggr/test/database"
)

// scriptedLLM answers every call with the output of respond(prompt).
type scriptedLLM struct {
	respond func(prompt string) string
}

func (s *scriptedLLM) Generate(ctx context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk, 2)
	ch <- &llm.TextChunk{Content: s.respond(input.Prompt)}
	ch <- &llm.UsageChunk{InputTokens: 100, OutputTokens: 50, TotalTokens: 150}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

var newsIDPattern = regexp.MustCompile(`### News (\d+)`)

func promptNewsIDs(p string) []int {
	var ids []int
	for _, m := range newsIDPattern.FindAllStringSubmatch(p, -1) {
		id, _ := strconv.Atoi(m[1])
		ids = append(ids, id)
	}
	return ids
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func newTestEngine(t *testing.T, client *ent.Client, respond func(prompt string) string) *Engine {
	t.Helper()
	c := cache.New()
	d, err := dispatch.NewDispatcher(&scriptedLLM{respond: respond}, prompt.NewBuilder(), c,
		&config.DispatchConfig{
			BatchSize:      10,
			MaxConcurrent:  2,
			RetryAttempts:  1,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     time.Millisecond,
			AttemptTimeout: 10 * time.Second,
			Model:          "test-model",
		})
	require.NoError(t, err)
	return NewEngine(client, d, c, &config.AggregationConfig{
		Window:            time.Hour,
		RecentEventsCount: 50,
		SummaryDays:       7,
		CacheTTL:          time.Minute,
	})
}

func seedNews(t *testing.T, client *ent.Client, title, city string) *ent.NewsItem {
	t.Helper()
	n, err := client.NewsItem.Create().
		SetSourceType("weibo").
		SetTitle(title).
		SetCityName(city).
		SetFirstSeenAt(time.Now().Add(-10 * time.Minute)).
		Save(context.Background())
	require.NoError(t, err)
	return n
}

func TestEngineRun_CreatesNewEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	n1 := seedNews(t, client.Client, "Bridge collapse downtown", "chengdu")
	n2 := seedNews(t, client.Client, "Rescue underway after bridge collapse", "chengdu")

	engine := newTestEngine(t, client.Client, func(p string) string {
		return mustJSON(t, models.AggregationResult{
			NewEvents: []models.NewEventProposal{{
				NewsIDs:    promptNewsIDs(p),
				Title:      "Downtown bridge collapse",
				Summary:    "A bridge collapsed downtown; rescue is underway.",
				EventType:  "accident",
				Region:     "chengdu",
				Tags:       []string{"bridge", "collapse"},
				Confidence: 0.9,
				Sentiment:  "negative",
			}},
		})
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalNews)
	assert.Equal(t, 2, summary.ProcessedCount)
	assert.Equal(t, 1, summary.EventsCreated)
	assert.Zero(t, summary.FailedCount)

	evt, err := client.Event.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Downtown bridge collapse", evt.Title)
	assert.Equal(t, models.EventStatusActive, evt.Status)
	assert.Equal(t, 2, evt.NewsCount)
	assert.Equal(t, "chengdu", evt.Regions)
	assert.Equal(t, event.SentimentNegative, evt.Sentiment)
	require.NotNil(t, evt.FirstNewsTime)
	require.NotNil(t, evt.LastNewsTime)

	rels, err := client.NewsEventRelation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rels, 2)
	relNews := map[int]bool{}
	for _, rel := range rels {
		assert.Equal(t, evt.ID, rel.EventID)
		assert.Equal(t, newseventrelation.RelationTypeAssignedToNew, rel.RelationType)
		relNews[rel.NewsID] = true
	}
	assert.True(t, relNews[n1.ID])
	assert.True(t, relNews[n2.ID])

	run, err := services.NewProcessingLogService(client.Client).LastRunOfType(ctx, models.TaskTypeAggregation)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusSuccess, run.Status)
	assert.Equal(t, 2, run.Total)
	assert.Equal(t, 2, run.Success)
}

func TestEngineRun_AssignsToExistingEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	existing, err := client.Event.Create().
		SetTitle("Typhoon approaching coast").
		SetRegions("beijing").
		SetStatus(models.EventStatusActive).
		Save(ctx)
	require.NoError(t, err)

	seedNews(t, client.Client, "Typhoon expected to make landfall tonight", "shanghai")

	engine := newTestEngine(t, client.Client, func(p string) string {
		return mustJSON(t, models.AggregationResult{
			ExistingEvents: []models.ExistingEventAssignment{{
				EventID:    existing.ID,
				NewsIDs:    promptNewsIDs(p),
				Confidence: 0.85,
				Reason:     "same typhoon",
			}},
		})
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ProcessedCount)
	assert.Zero(t, summary.EventsCreated)

	rel, err := client.NewsEventRelation.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, rel.EventID)
	assert.Equal(t, newseventrelation.RelationTypeAssignedToExisting, rel.RelationType)
	assert.Equal(t, 0.85, rel.ConfidenceScore)

	updated, err := client.Event.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.NewsCount)
	assert.Equal(t, "beijing,shanghai", updated.Regions)
	require.NotNil(t, updated.LastNewsTime)
}

func TestEngineRun_ContextIncludesEventsOfWindowNews(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// An event old enough to fall off the recent-events snapshot, still
	// holding an already-processed news item from the current window.
	old, err := client.Event.Create().
		SetTitle("Long-running reservoir dispute").
		SetStatus(models.EventStatusActive).
		SetCreatedAt(time.Now().Add(-30 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	processed := seedNews(t, client.Client, "Reservoir dispute covered earlier", "")
	_, err = client.NewsEventRelation.Create().
		SetNewsID(processed.ID).
		SetEventID(old.ID).
		SetRelationType(newseventrelation.RelationTypeAssignedToExisting).
		Save(ctx)
	require.NoError(t, err)

	fresh := seedNews(t, client.Client, "New protest over reservoir", "")

	engine := newTestEngine(t, client.Client, func(p string) string {
		// The old event must be offered as assignment context.
		assert.Contains(t, p, fmt.Sprintf("### Event %d", old.ID))
		return mustJSON(t, models.AggregationResult{
			ExistingEvents: []models.ExistingEventAssignment{{
				EventID:    old.ID,
				NewsIDs:    promptNewsIDs(p),
				Confidence: 0.8,
				Reason:     "continuation of the dispute",
			}},
		})
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalNews)
	assert.Equal(t, 1, summary.ProcessedCount)
	assert.Zero(t, summary.FailedCount)

	rel, err := client.NewsEventRelation.Query().
		Where(newseventrelation.NewsIDEQ(fresh.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, old.ID, rel.EventID)
}

func TestEngineRun_NoUnprocessedNews(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	engine := newTestEngine(t, client.Client, func(p string) string {
		t.Fatal("LLM must not be called when there is nothing to process")
		return ""
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalNews)

	// An empty window leaves no run record behind.
	_, err = services.NewProcessingLogService(client.Client).LastRunOfType(ctx, models.TaskTypeAggregation)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestEngineRun_RerunIsNoOp(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedNews(t, client.Client, "Stock market rallies", "")

	calls := 0
	engine := newTestEngine(t, client.Client, func(p string) string {
		calls++
		return mustJSON(t, models.AggregationResult{
			NewEvents: []models.NewEventProposal{{
				NewsIDs: promptNewsIDs(p), Title: "Market rally", Confidence: 0.8,
			}},
		})
	})

	first, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ProcessedCount)

	second, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.TotalNews)
	assert.Equal(t, 1, calls)

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEngineRun_PersistentOmissionEndsPartial(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedNews(t, client.Client, "Covered story", "")
	stubborn := seedNews(t, client.Client, "Never assigned story", "")

	// The model refuses to place one specific item, run after run.
	engine := newTestEngine(t, client.Client, func(p string) string {
		var kept []int
		for _, id := range promptNewsIDs(p) {
			if id != stubborn.ID {
				kept = append(kept, id)
			}
		}
		result := models.AggregationResult{}
		if len(kept) > 0 {
			result.NewEvents = []models.NewEventProposal{{
				NewsIDs: kept, Title: "Covered event", Confidence: 0.8,
			}}
		}
		return mustJSON(t, result)
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalNews)
	assert.Equal(t, 1, summary.ProcessedCount)
	assert.Equal(t, 1, summary.FailedCount)
	assert.Equal(t, []int{stubborn.ID}, summary.FailedNewsIDs)

	// Only the covered item got a relation.
	rels, err := client.NewsEventRelation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rels, 1)
	assert.NotEqual(t, stubborn.ID, rels[0].NewsID)

	run, err := services.NewProcessingLogService(client.Client).LastRunOfType(ctx, models.TaskTypeAggregation)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusPartial, run.Status)
}

func TestEngineRun_ExcludedSourceTypesSkipped(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	_, err := client.Client.NewsItem.Create().
		SetSourceType("ad").
		SetTitle("Sponsored content").
		SetFirstSeenAt(time.Now().Add(-5 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	engine := newTestEngine(t, client.Client, func(p string) string {
		t.Fatal("excluded source types must never reach the LLM")
		return ""
	})
	engine.cfg.ExcludedNewsTypes = []string{"ad"}

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalNews)
}
