// Package cache provides a concurrency-safe in-memory key/value store with
// per-entry TTLs. It is advisory: every caller must tolerate a miss and
// must not rely on it for correctness. A remote keyed store with the same
// semantics can be substituted behind the same operations.
package cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Logical key namespaces used by the engines.
const (
	RecentEventsPrefix = "recent_events:"
	LLMResultPrefix    = "llm_result:"
)

// RecentEventsKey builds the cache key for the recent-event snapshot.
func RecentEventsKey(days int) string {
	return fmt.Sprintf("%s%d", RecentEventsPrefix, days)
}

// LLMResultKey builds the cache key for a batch result, keyed by the
// sorted-news-id hash computed by the caller.
func LLMResultKey(hash string) string {
	return LLMResultPrefix + hash
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Cache is a thread-safe in-memory cache with TTL expiration. Expired
// entries are cleaned up lazily on Get() — no background goroutine.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Set stores a JSON-serialisable value under key for ttl.
func (c *Cache) Set(key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value for %q: %w", key, err)
	}
	c.mu.Lock()
	c.entries[key] = entry{value: data, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Get loads the value stored under key into dst. Returns false on a miss
// or an expired entry.
func (c *Cache) Get(key string, dst any) bool {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false
	}

	if time.Now().After(e.expiresAt) {
		// Expired — clean up lazily. Re-check under write lock: a
		// concurrent Set may have replaced the entry with a fresh one.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Now().After(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return false
	}

	return json.Unmarshal(e.value, dst) == nil
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// ClearPrefix removes every key under the given prefix. Used to invalidate
// a whole namespace after writes that make its snapshots stale.
func (c *Cache) ClearPrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of live entries (expired entries may be counted
// until their lazy eviction).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
