package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow/hotaggr/pkg/cache"
	"github.com/newsflow/hotaggr/pkg/config"
	"github.com/newsflow/hotaggr/pkg/llm"
	"github.com/newsflow/hotaggr/pkg/models"
	"github.com/newsflow/hotaggr/pkg/prompt"
)

// fakeLLM scripts responses per call. Safe for concurrent use.
type fakeLLM struct {
	mu      sync.Mutex
	calls   int
	respond func(call int, input *llm.GenerateInput) []llm.Chunk
}

func (f *fakeLLM) Generate(ctx context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()

	ch := make(chan llm.Chunk, 8)
	go func() {
		defer close(ch)
		for _, c := range f.respond(call, input) {
			select {
			case ch <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func (f *fakeLLM) Close() error { return nil }

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func textChunks(s string) []llm.Chunk {
	return []llm.Chunk{
		&llm.TextChunk{Content: s},
		&llm.UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

func testConfig() *config.DispatchConfig {
	return &config.DispatchConfig{
		BatchSize:      2,
		MaxConcurrent:  2,
		RetryAttempts:  3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		AttemptTimeout: time.Second,
		Model:          "test-model",
		Temperature:    0.3,
		MaxTokens:      1024,
	}
}

func newTestDispatcher(t *testing.T, client llm.Client) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(client, prompt.NewBuilder(), cache.New(), testConfig())
	require.NoError(t, err)
	return d
}

func TestCallSingle_Success(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		return textChunks(`{"value":42}`)
	}}
	d := newTestDispatcher(t, fake)

	var out struct {
		Value int `json:"value"`
	}
	usage, err := d.CallSingle(context.Background(), CallOptions{RequestID: "r1", Prompt: "p"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, out.Value)
	require.NotNil(t, usage)
	assert.Equal(t, 15, usage.TotalTokens)
	assert.Equal(t, 1, fake.callCount())
}

func TestCallSingle_RetriesTransientErrors(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		if call < 3 {
			return []llm.Chunk{&llm.ErrorChunk{Message: "overloaded", Code: "rate_limit", Retryable: true}}
		}
		return textChunks(`{"value":1}`)
	}}
	d := newTestDispatcher(t, fake)

	var out struct {
		Value int `json:"value"`
	}
	_, err := d.CallSingle(context.Background(), CallOptions{RequestID: "r2", Prompt: "p"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Value)
	assert.Equal(t, 3, fake.callCount())
}

func TestCallSingle_GivesUpAfterRetryBudget(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		return []llm.Chunk{&llm.ErrorChunk{Message: "down", Code: "transport", Retryable: true}}
	}}
	d := newTestDispatcher(t, fake)

	var out map[string]any
	_, err := d.CallSingle(context.Background(), CallOptions{RequestID: "r3", Prompt: "p"}, &out)
	require.Error(t, err)
	assert.Equal(t, 3, fake.callCount())
}

func TestCallSingle_NonRetryableStopsImmediately(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		return []llm.Chunk{&llm.ErrorChunk{Message: "bad request", Code: "invalid_argument", Retryable: false}}
	}}
	d := newTestDispatcher(t, fake)

	var out map[string]any
	_, err := d.CallSingle(context.Background(), CallOptions{RequestID: "r4", Prompt: "p"}, &out)
	require.Error(t, err)
	assert.Equal(t, 1, fake.callCount())
}

func TestCallSingle_DecodeFailureStopsImmediately(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		return textChunks("no structured payload in this response")
	}}
	d := newTestDispatcher(t, fake)

	var out map[string]any
	_, err := d.CallSingle(context.Background(), CallOptions{RequestID: "r6", Prompt: "p"}, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrNoJSONObject))
	assert.Equal(t, 1, fake.callCount())
}

func TestCallSingle_RetriesEmptyResponse(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		if call == 1 {
			return []llm.Chunk{&llm.TextChunk{Content: "   "}}
		}
		return textChunks(`{"value":7}`)
	}}
	d := newTestDispatcher(t, fake)

	var out struct {
		Value int `json:"value"`
	}
	_, err := d.CallSingle(context.Background(), CallOptions{RequestID: "r5", Prompt: "p"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Value)
	assert.Equal(t, 2, fake.callCount())
}

var newsIDPattern = regexp.MustCompile(`### News (\d+)`)

// promptNewsIDs extracts the batch's news ids from the rendered prompt.
func promptNewsIDs(p string) []int {
	var ids []int
	for _, m := range newsIDPattern.FindAllStringSubmatch(p, -1) {
		id, _ := strconv.Atoi(m[1])
		ids = append(ids, id)
	}
	return ids
}

// assignAll responds with one new event covering the given ids.
func assignAll(ids []int) []llm.Chunk {
	result := models.AggregationResult{
		NewEvents: []models.NewEventProposal{
			{NewsIDs: ids, Title: "event", Confidence: 0.9, Sentiment: "neutral"},
		},
	}
	data, _ := json.Marshal(result)
	return textChunks(string(data))
}

func TestProcessBatch_PartialWhenIDsOmitted(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		ids := promptNewsIDs(input.Prompt)
		return assignAll(ids[:len(ids)-1]) // omit the last id
	}}
	d := newTestDispatcher(t, fake)

	batch := []models.NewsDigest{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	outcome := d.ProcessBatch(context.Background(), "req", batch, nil)
	assert.Equal(t, BatchPartial, outcome.Status)
	assert.Equal(t, []int{2}, outcome.Missing)
	require.NotNil(t, outcome.Result)
	assert.Equal(t, []int{1}, outcome.Result.ProcessedIDs())
}

func TestProcessBatch_UndecodableResponseIsPartial(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		return textChunks("sorry, I cannot produce that")
	}}
	d := newTestDispatcher(t, fake)

	batch := []models.NewsDigest{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	outcome := d.ProcessBatch(context.Background(), "req", batch, nil)

	// Every item is missing and the call is not retried in place.
	assert.Equal(t, BatchPartial, outcome.Status)
	assert.Equal(t, []int{1, 2}, outcome.Missing)
	require.NotNil(t, outcome.Result)
	assert.Empty(t, outcome.Result.ProcessedIDs())
	assert.Equal(t, 1, fake.callCount())
}

func TestProcessBatch_RepeatedBatchServedFromCache(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		return assignAll(promptNewsIDs(input.Prompt))
	}}
	d := newTestDispatcher(t, fake)

	batch := []models.NewsDigest{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	first := d.ProcessBatch(context.Background(), "req-1", batch, nil)
	second := d.ProcessBatch(context.Background(), "req-2", batch, nil)

	assert.Equal(t, BatchValid, first.Status)
	assert.Equal(t, BatchValid, second.Status)
	assert.Equal(t, first.Result.ProcessedIDs(), second.Result.ProcessedIDs())
	assert.Equal(t, 1, fake.callCount())
}

func TestProcessNewsConcurrent_BoundsConcurrency(t *testing.T) {
	var inFlight, maxSeen atomic.Int32
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		cur := inFlight.Add(1)
		for {
			prev := maxSeen.Load()
			if cur <= prev || maxSeen.CompareAndSwap(prev, cur) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return assignAll(promptNewsIDs(input.Prompt))
	}}
	d := newTestDispatcher(t, fake)

	news := make([]models.NewsDigest, 10)
	for i := range news {
		news[i] = models.NewsDigest{ID: i + 1, Title: fmt.Sprintf("n%d", i+1)}
	}
	outcomes := d.ProcessNewsConcurrent(context.Background(), "task", news, nil, BatchOptions{})
	assert.Len(t, outcomes, 5) // 10 items / batch size 2
	for _, o := range outcomes {
		assert.Equal(t, BatchValid, o.Status)
	}
	assert.LessOrEqual(t, maxSeen.Load(), int32(2))
}

func TestProcessNewsConcurrent_StragglerPassRunsOnce(t *testing.T) {
	// The model never assigns news id 3, no matter how often it is asked.
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		ids := promptNewsIDs(input.Prompt)
		var kept []int
		for _, id := range ids {
			if id != 3 {
				kept = append(kept, id)
			}
		}
		return assignAll(kept)
	}}
	d := newTestDispatcher(t, fake)

	news := []models.NewsDigest{
		{ID: 1, Title: "a"}, {ID: 2, Title: "b"},
		{ID: 3, Title: "c"}, {ID: 4, Title: "d"},
	}
	outcomes := d.ProcessNewsConcurrent(context.Background(), "task", news, nil,
		BatchOptions{RetryStragglers: true})

	// First pass: 2 batches. Straggler pass: one batch of [3] at half size.
	// No third pass even though 3 is still missing.
	assert.Equal(t, 3, fake.callCount())
	require.Len(t, outcomes, 3)
	last := outcomes[2]
	assert.Equal(t, BatchPartial, last.Status)
	assert.Equal(t, []int{3}, last.Missing)
}

func TestProcessNewsConcurrent_UndecodableBatchRedispatchedAtHalfSize(t *testing.T) {
	// The first call yields no JSON; every later call behaves.
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		if call == 1 {
			return textChunks("not json")
		}
		return assignAll(promptNewsIDs(input.Prompt))
	}}
	d := newTestDispatcher(t, fake)

	news := []models.NewsDigest{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	outcomes := d.ProcessNewsConcurrent(context.Background(), "task", news, nil,
		BatchOptions{RetryStragglers: true})

	// The undecodable batch surfaces as partial with everything missing,
	// then both items come back in half-size straggler batches.
	require.Len(t, outcomes, 3)
	assert.Equal(t, BatchPartial, outcomes[0].Status)
	assert.Equal(t, []int{1, 2}, outcomes[0].Missing)

	processed := map[int]bool{}
	for _, o := range outcomes[1:] {
		assert.Equal(t, BatchValid, o.Status)
		for _, id := range o.Result.ProcessedIDs() {
			processed[id] = true
		}
	}
	assert.True(t, processed[1])
	assert.True(t, processed[2])
	assert.Equal(t, 3, fake.callCount())
}

func TestProcessNewsConcurrent_NoStragglersNoSecondPass(t *testing.T) {
	fake := &fakeLLM{respond: func(call int, input *llm.GenerateInput) []llm.Chunk {
		return assignAll(promptNewsIDs(input.Prompt))
	}}
	d := newTestDispatcher(t, fake)

	news := []models.NewsDigest{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	outcomes := d.ProcessNewsConcurrent(context.Background(), "task", news, nil,
		BatchOptions{RetryStragglers: true})
	assert.Len(t, outcomes, 1)
	assert.Equal(t, 1, fake.callCount())
}
