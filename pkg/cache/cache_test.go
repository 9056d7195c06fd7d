package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, c.Set("key", payload{Name: "quake", Count: 3}, time.Minute))

	var got payload
	require.True(t, c.Get("key", &got))
	assert.Equal(t, "quake", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestCache_Miss(t *testing.T) {
	c := New()
	var got string
	assert.False(t, c.Get("absent", &got))
}

func TestCache_Expiry(t *testing.T) {
	c := New()
	require.NoError(t, c.Set("key", "value", 10*time.Millisecond))

	var got string
	require.True(t, c.Get("key", &got))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, c.Get("key", &got))
	// Expired entry was evicted lazily.
	assert.Equal(t, 0, c.Len())
}

func TestCache_Delete(t *testing.T) {
	c := New()
	require.NoError(t, c.Set("key", 1, time.Minute))
	c.Delete("key")

	var got int
	assert.False(t, c.Get("key", &got))
}

func TestCache_ClearPrefix(t *testing.T) {
	c := New()
	require.NoError(t, c.Set(RecentEventsKey(7), []int{1}, time.Minute))
	require.NoError(t, c.Set(RecentEventsKey(30), []int{2}, time.Minute))
	require.NoError(t, c.Set(LLMResultKey("abc"), "x", time.Minute))

	removed := c.ClearPrefix(RecentEventsPrefix)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())

	var got string
	assert.True(t, c.Get(LLMResultKey("abc"), &got))
}

func TestCache_OverwriteRefreshesTTL(t *testing.T) {
	c := New()
	require.NoError(t, c.Set("key", "old", 10*time.Millisecond))
	require.NoError(t, c.Set("key", "new", time.Minute))

	time.Sleep(20 * time.Millisecond)
	var got string
	require.True(t, c.Get("key", &got))
	assert.Equal(t, "new", got)
}
