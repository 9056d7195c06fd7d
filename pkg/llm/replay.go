package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReplayCache serves previously recorded responses from disk, keyed by a
// hash of the full request. Debug mode only — it lets a failed run be
// replayed against the exact same model output without contacting the LLM.
type ReplayCache struct {
	dir string
}

// NewReplayCache creates a replay cache rooted at dir.
func NewReplayCache(dir string) (*ReplayCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create replay directory: %w", err)
	}
	return &ReplayCache{dir: dir}, nil
}

// Key hashes the request parameters that determine the response.
func (c *ReplayCache) Key(prompt, model string, temperature *float32, maxTokens *int32) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00", model, prompt)
	if temperature != nil {
		fmt.Fprintf(h, "t=%g\x00", *temperature)
	}
	if maxTokens != nil {
		fmt.Fprintf(h, "m=%d\x00", *maxTokens)
	}
	return hex.EncodeToString(h.Sum(nil))
}

type replayEntry struct {
	Response string      `json:"response"`
	Usage    *TokenUsage `json:"usage,omitempty"`
}

// Load returns the stored response for the key, if any.
func (c *ReplayCache) Load(key string) (string, *TokenUsage, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", nil, false
	}
	var entry replayEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", nil, false
	}
	return entry.Response, entry.Usage, true
}

// Store saves a response under the key for later replay.
func (c *ReplayCache) Store(key, response string, usage *TokenUsage) error {
	data, err := json.Marshal(replayEntry{Response: response, Usage: usage})
	if err != nil {
		return fmt.Errorf("failed to marshal replay entry: %w", err)
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write replay entry: %w", err)
	}
	return nil
}

func (c *ReplayCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}
