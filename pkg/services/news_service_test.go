package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/pkg/models"
	testdb "github.com/newsflow/hotaggr/test/database"
)

func createNews(t *testing.T, client *ent.Client, sourceType, title string, age time.Duration) *ent.NewsItem {
	t.Helper()
	n, err := client.NewsItem.Create().
		SetSourceType(sourceType).
		SetTitle(title).
		SetFirstSeenAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return n
}

func TestNewsService_SelectUnprocessed(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNewsService(client.Client)
	ctx := context.Background()

	oldest := createNews(t, client.Client, "weibo", "oldest in window", 90*time.Minute)
	newest := createNews(t, client.Client, "weibo", "newest in window", 10*time.Minute)
	processed := createNews(t, client.Client, "weibo", "already assigned", 30*time.Minute)
	createNews(t, client.Client, "weibo", "outside window", 5*time.Hour)
	createNews(t, client.Client, "ad", "excluded type", 20*time.Minute)

	evt, err := client.Event.Create().
		SetTitle("existing event").
		SetStatus(models.EventStatusActive).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.NewsEventRelation.Create().
		SetNewsID(processed.ID).
		SetEventID(evt.ID).
		SetRelationType(newseventrelation.RelationTypeAssignedToExisting).
		Save(ctx)
	require.NoError(t, err)

	digests, err := svc.SelectUnprocessed(ctx, time.Now().Add(-2*time.Hour), []string{"ad"})
	require.NoError(t, err)
	require.Len(t, digests, 2)
	// Newest first, so fresh items go out in the earliest batches.
	assert.Equal(t, newest.ID, digests[0].ID)
	assert.Equal(t, oldest.ID, digests[1].ID)
}

func TestNewsService_SelectUnprocessed_EmptyWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNewsService(client.Client)

	digests, err := svc.SelectUnprocessed(context.Background(), time.Now().Add(-time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, digests)
}

func TestNewsService_ProcessedEventIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNewsService(client.Client)
	ctx := context.Background()

	inWindow := createNews(t, client.Client, "weibo", "in window", 30*time.Minute)
	alsoInWindow := createNews(t, client.Client, "weibo", "also in window", 40*time.Minute)
	outside := createNews(t, client.Client, "weibo", "outside window", 5*time.Hour)
	excluded := createNews(t, client.Client, "ad", "excluded type", 10*time.Minute)

	evtA := createEvent(t, client.Client, "a", models.EventStatusActive, time.Hour)
	evtB := createEvent(t, client.Client, "b", models.EventStatusActive, time.Hour)
	evtC := createEvent(t, client.Client, "c", models.EventStatusActive, time.Hour)

	relate := func(newsID, eventID int) {
		_, err := client.NewsEventRelation.Create().
			SetNewsID(newsID).
			SetEventID(eventID).
			SetRelationType(newseventrelation.RelationTypeAssignedToExisting).
			Save(ctx)
		require.NoError(t, err)
	}
	relate(inWindow.ID, evtA.ID)
	relate(alsoInWindow.ID, evtA.ID)
	relate(outside.ID, evtB.ID)
	relate(excluded.ID, evtC.ID)

	ids, err := svc.ProcessedEventIDs(ctx, time.Now().Add(-2*time.Hour), []string{"ad"})
	require.NoError(t, err)
	// Distinct, and only events reached through in-window, non-excluded news.
	assert.Equal(t, []int{evtA.ID}, ids)
}

func TestNewsService_CountSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNewsService(client.Client)
	ctx := context.Background()

	createNews(t, client.Client, "weibo", "recent", 10*time.Minute)
	createNews(t, client.Client, "weibo", "old", 2*time.Hour)

	count, err := svc.CountSince(ctx, time.Now().Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewsService_ByIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNewsService(client.Client)
	ctx := context.Background()

	a := createNews(t, client.Client, "weibo", "a", time.Minute)
	b := createNews(t, client.Client, "rss", "b", time.Minute)

	t.Run("preserves input order, skips unknown ids", func(t *testing.T) {
		digests, err := svc.ByIDs(ctx, []int{b.ID, 99999, a.ID})
		require.NoError(t, err)
		require.Len(t, digests, 2)
		assert.Equal(t, b.ID, digests[0].ID)
		assert.Equal(t, a.ID, digests[1].ID)
	})

	t.Run("empty input", func(t *testing.T) {
		digests, err := svc.ByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, digests)
	})
}
