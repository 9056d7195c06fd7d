package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AttemptRecord captures one retry attempt inside a call.
type AttemptRecord struct {
	Attempt   int           `json:"attempt"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ms"`
	Error     string        `json:"error,omitempty"`
}

// CallRecord is the persisted artefact for one LLM call: everything needed
// for an offline post-mortem or replay without re-running the pipeline.
type CallRecord struct {
	RequestID   string          `json:"request_id"`
	Model       string          `json:"model"`
	Temperature *float32        `json:"temperature,omitempty"`
	MaxTokens   *int32          `json:"max_tokens,omitempty"`
	Prompt      string          `json:"prompt"`
	Response    string          `json:"response"`
	Attempts    []AttemptRecord `json:"attempts"`
	Usage       *TokenUsage     `json:"usage,omitempty"`
	Success     bool            `json:"success"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Recorder writes one JSON file per LLM call under a directory.
// Failures to record never fail the call — artefacts are best-effort.
type Recorder struct {
	dir string
}

// NewRecorder creates a recorder rooted at dir, creating it if needed.
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create llm_calls directory: %w", err)
	}
	return &Recorder{dir: dir}, nil
}

// Save writes the record as <timestamp>_<request_id>.json.
func (r *Recorder) Save(rec *CallRecord) {
	name := fmt.Sprintf("%s_%s.json",
		rec.CreatedAt.UTC().Format("20060102T150405.000"),
		sanitizeFileComponent(rec.RequestID))
	path := filepath.Join(r.dir, name)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		slog.Warn("Failed to marshal LLM call record", "request_id", rec.RequestID, "error", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		slog.Warn("Failed to write LLM call record", "path", path, "error", err)
	}
}

// Prune removes call artefacts older than the retention window.
// Returns the number of files removed.
func (r *Recorder) Prune(olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read llm_calls directory: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(r.dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

func sanitizeFileComponent(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, s)
}
