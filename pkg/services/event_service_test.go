package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/pkg/models"
	testdb "github.com/newsflow/hotaggr/test/database"
)

func createEvent(t *testing.T, client *ent.Client, title string, status int8, age time.Duration) *ent.Event {
	t.Helper()
	evt, err := client.Event.Create().
		SetTitle(title).
		SetStatus(status).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return evt
}

func TestEventService_RecentActiveDigests(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	newest := createEvent(t, client.Client, "newest", models.EventStatusActive, time.Hour)
	older := createEvent(t, client.Client, "older", models.EventStatusActive, 3*time.Hour)
	createEvent(t, client.Client, "merged", models.EventStatusMerged, time.Hour)
	createEvent(t, client.Client, "ancient", models.EventStatusActive, 10*24*time.Hour)

	t.Run("filters by status and age, newest first", func(t *testing.T) {
		digests, err := svc.RecentActiveDigests(ctx, 10, 24*time.Hour)
		require.NoError(t, err)
		require.Len(t, digests, 2)
		assert.Equal(t, newest.ID, digests[0].ID)
		assert.Equal(t, older.ID, digests[1].ID)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		digests, err := svc.RecentActiveDigests(ctx, 1, 24*time.Hour)
		require.NoError(t, err)
		require.Len(t, digests, 1)
		assert.Equal(t, newest.ID, digests[0].ID)
	})

	t.Run("zero max age means no age filter", func(t *testing.T) {
		digests, err := svc.RecentActiveDigests(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, digests, 3)
	})
}

func TestEventService_ActiveByIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	active := createEvent(t, client.Client, "active", models.EventStatusActive, time.Hour)
	merged := createEvent(t, client.Client, "merged", models.EventStatusMerged, time.Hour)

	events, err := svc.ActiveByIDs(ctx, []int{active.ID, merged.ID, 99999})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, active.ID, events[0].ID)
}

func TestEventService_ActiveDigestsByIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	active := createEvent(t, client.Client, "active", models.EventStatusActive, time.Hour)
	merged := createEvent(t, client.Client, "merged", models.EventStatusMerged, time.Hour)

	digests, err := svc.ActiveDigestsByIDs(ctx, []int{active.ID, merged.ID})
	require.NoError(t, err)
	require.Len(t, digests, 1)
	assert.Equal(t, active.ID, digests[0].ID)
	assert.Equal(t, "active", digests[0].Title)

	digests, err = svc.ActiveDigestsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, digests)
}

func TestEventService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	evt := createEvent(t, client.Client, "target", models.EventStatusActive, time.Hour)

	got, err := svc.Get(ctx, evt.ID)
	require.NoError(t, err)
	assert.Equal(t, "target", got.Title)

	_, err = svc.Get(ctx, 99999)
	assert.True(t, errors.Is(err, ErrNotFound))
}
