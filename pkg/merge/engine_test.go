package merge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/ent/eventhistoryrelation"
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
	return NewEngine(client, d, c, &config.MergeConfig{
		Window:              24 * time.Hour,
		RecentEventCount:    30,
		ConfidenceThreshold: 0.75,
		Model:               "test-model",
	})
}

func seedEvent(t *testing.T, client *ent.Client, title, regions string, age time.Duration) *ent.Event {
	t.Helper()
	evt, err := client.Event.Create().
		SetTitle(title).
		SetRegions(regions).
		SetStatus(models.EventStatusActive).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return evt
}

func seedRelation(t *testing.T, client *ent.Client, newsID, eventID int) {
	t.Helper()
	_, err := client.NewsEventRelation.Create().
		SetNewsID(newsID).
		SetEventID(eventID).
		SetRelationType(newseventrelation.RelationTypeAssignedToNew).
		SetConfidenceScore(0.9).
		Save(context.Background())
	require.NoError(t, err)
}

func TestEngineRun_MergesDuplicateGroup(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	primary := seedEvent(t, client.Client, "Factory fire in suburb", "chengdu", 2*time.Hour)
	dup := seedEvent(t, client.Client, "Fire breaks out at factory", "mianyang", time.Hour)

	// News 1 sits on both events; news 2 only on the duplicate.
	seedRelation(t, client.Client, 1, primary.ID)
	seedRelation(t, client.Client, 1, dup.ID)
	seedRelation(t, client.Client, 2, dup.ID)

	engine := newTestEngine(t, client.Client, func(p string) string {
		return mustJSON(t, models.BatchMergeResult{
			MergeSuggestions: []models.MergeSuggestion{{
				GroupID:        "g1",
				EventsToMerge:  []int{primary.ID, dup.ID},
				PrimaryEventID: primary.ID,
				Confidence:     0.9,
				Reason:         "same factory fire",
				MergedTitle:    "Factory fire in suburb",
			}},
			AnalysisSummary: "one duplicate pair",
		})
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuggestionsCount)
	assert.Equal(t, 1, summary.MergedCount)
	assert.Zero(t, summary.FailedCount)

	merged, err := client.Event.Get(ctx, dup.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusMerged, merged.Status)

	survivor, err := client.Event.Get(ctx, primary.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusActive, survivor.Status)
	// News 1's duplicate relation was deleted, news 2's was rewritten.
	assert.Equal(t, 2, survivor.NewsCount)
	assert.Equal(t, "chengdu,mianyang", survivor.Regions)

	rels, err := client.NewsEventRelation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rels, 2)
	for _, rel := range rels {
		assert.Equal(t, primary.ID, rel.EventID)
	}

	history, err := client.EventHistoryRelation.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, primary.ID, history.ParentEventID)
	assert.Equal(t, dup.ID, history.ChildEventID)
	assert.Equal(t, eventhistoryrelation.RelationTypeBatchMerge, history.RelationType)
	assert.Equal(t, 0.9, history.ConfidenceScore)

	run, err := services.NewProcessingLogService(client.Client).LastRunOfType(ctx, models.TaskTypeMerge)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusSuccess, run.Status)
}

func TestEngineRun_BelowThresholdIgnored(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	a := seedEvent(t, client.Client, "Heavy rain warning", "", 2*time.Hour)
	b := seedEvent(t, client.Client, "Rainstorm alert issued", "", time.Hour)

	engine := newTestEngine(t, client.Client, func(p string) string {
		return mustJSON(t, models.BatchMergeResult{
			MergeSuggestions: []models.MergeSuggestion{{
				GroupID:        "g1",
				EventsToMerge:  []int{a.ID, b.ID},
				PrimaryEventID: a.ID,
				Confidence:     0.5,
			}},
		})
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.SuggestionsCount)
	assert.Zero(t, summary.MergedCount)

	for _, id := range []int{a.ID, b.ID} {
		evt, err := client.Event.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.EventStatusActive, evt.Status)
	}
}

func TestEngineRun_ConflictingGroupsResolvedByConfidence(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	a := seedEvent(t, client.Client, "Metro line opens", "", 3*time.Hour)
	b := seedEvent(t, client.Client, "New metro line inaugurated", "", 2*time.Hour)
	c := seedEvent(t, client.Client, "Subway extension opens to public", "", time.Hour)

	engine := newTestEngine(t, client.Client, func(p string) string {
		return mustJSON(t, models.BatchMergeResult{
			MergeSuggestions: []models.MergeSuggestion{
				{GroupID: "low", EventsToMerge: []int{a.ID, b.ID}, PrimaryEventID: a.ID, Confidence: 0.8},
				{GroupID: "high", EventsToMerge: []int{b.ID, c.ID}, PrimaryEventID: b.ID, Confidence: 0.95},
			},
		})
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	// The higher-confidence group wins; the overlapping one is skipped.
	assert.Equal(t, 1, summary.SuggestionsCount)
	assert.Equal(t, 1, summary.MergedCount)

	evtA, err := client.Event.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusActive, evtA.Status)

	evtC, err := client.Event.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusMerged, evtC.Status)
}

func TestEngineRun_UnknownPrimaryFallsBackToEarliest(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	older := seedEvent(t, client.Client, "Port congestion reported", "", 4*time.Hour)
	newer := seedEvent(t, client.Client, "Ships queue outside port", "", time.Hour)

	engine := newTestEngine(t, client.Client, func(p string) string {
		return mustJSON(t, models.BatchMergeResult{
			MergeSuggestions: []models.MergeSuggestion{{
				GroupID:        "g1",
				EventsToMerge:  []int{older.ID, newer.ID},
				PrimaryEventID: 99999, // not in the group
				Confidence:     0.85,
			}},
		})
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MergedCount)

	survivor, err := client.Event.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusActive, survivor.Status)

	absorbed, err := client.Event.Get(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusMerged, absorbed.Status)
}

func TestEngineRun_NotEnoughCandidates(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedEvent(t, client.Client, "Lone event", "", time.Hour)

	engine := newTestEngine(t, client.Client, func(p string) string {
		t.Fatal("LLM must not be called with fewer than two candidates")
		return ""
	})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.SuggestionsCount)

	_, err = services.NewProcessingLogService(client.Client).LastRunOfType(ctx, models.TaskTypeMerge)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestManualMerge(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// The first requested id survives even when another event is older.
	primary := seedEvent(t, client.Client, "Chosen survivor", "", time.Hour)
	oldest := seedEvent(t, client.Client, "Oldest record", "", 5*time.Hour)
	third := seedEvent(t, client.Client, "Third record", "", 2*time.Hour)

	engine := newTestEngine(t, client.Client, func(p string) string {
		t.Fatal("manual merge must not call the LLM")
		return ""
	})

	summary, err := engine.ManualMerge(ctx, []int{primary.ID, oldest.ID, third.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MergedCount)
	assert.Zero(t, summary.FailedCount)

	survivor, err := client.Event.Get(ctx, primary.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusActive, survivor.Status)

	for _, id := range []int{oldest.ID, third.ID} {
		evt, err := client.Event.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.EventStatusMerged, evt.Status)
	}

	history, err := client.EventHistoryRelation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, h := range history {
		assert.Equal(t, primary.ID, h.ParentEventID)
		assert.Equal(t, eventhistoryrelation.RelationTypeBatchMerge, h.RelationType)
		assert.Equal(t, 1.0, h.ConfidenceScore)
	}
}

func TestManualMerge_RejectsInactiveEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	active := seedEvent(t, client.Client, "Active", "", time.Hour)
	inactive := seedEvent(t, client.Client, "Already merged", "", time.Hour)
	_, err := client.Event.UpdateOneID(inactive.ID).
		SetStatus(models.EventStatusMerged).
		Save(ctx)
	require.NoError(t, err)

	engine := newTestEngine(t, client.Client, func(p string) string { return "" })

	_, err = engine.ManualMerge(ctx, []int{active.ID, inactive.ID})
	assert.True(t, errors.Is(err, services.ErrInvalidInput))
}

func TestManualMerge_NeedsTwoIDs(t *testing.T) {
	client := testdb.NewTestClient(t)

	engine := newTestEngine(t, client.Client, func(p string) string { return "" })
	_, err := engine.ManualMerge(context.Background(), []int{42})
	assert.True(t, errors.Is(err, ErrNothingToMerge))
}
