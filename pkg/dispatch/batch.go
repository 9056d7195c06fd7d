package dispatch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/newsflow/hotaggr/pkg/cache"
	"github.com/newsflow/hotaggr/pkg/llm"
	"github.com/newsflow/hotaggr/pkg/metrics"
	"github.com/newsflow/hotaggr/pkg/models"
)

// llmResultTTL is how long a decoded batch result stays cached under the
// llm_result namespace.
const llmResultTTL = 2 * time.Hour

// BatchStatus is the terminal state of one batch call.
type BatchStatus string

// Batch status values.
const (
	// BatchValid: the decoded result covers the batch exactly.
	BatchValid BatchStatus = "valid"
	// BatchPartial: the result needed repair; Missing lists what the
	// model omitted. Result is still safe to persist.
	BatchPartial BatchStatus = "partial"
	// BatchInvalid: the call failed outright; nothing to persist.
	BatchInvalid BatchStatus = "invalid"
)

// BatchOutcome is the result of dispatching one news batch.
type BatchOutcome struct {
	Batch   []models.NewsDigest
	Status  BatchStatus
	Result  *models.AggregationResult
	Missing []int
	Err     error
}

// BatchOptions controls a ProcessNewsConcurrent run.
type BatchOptions struct {
	// BatchSize overrides the configured batch size when positive.
	BatchSize int
	// RetryStragglers re-dispatches model-omitted items once, at half
	// the batch size.
	RetryStragglers bool
}

// ProcessBatch dispatches one aggregation batch: builds the prompt,
// calls the LLM, and validates the decoded result against the inputs.
// Decoded results are cached under the llm_result namespace, keyed by the
// batch's sorted news ids; a repeated batch skips the LLM call entirely
// and is only re-validated against the current event context.
func (d *Dispatcher) ProcessBatch(ctx context.Context, requestID string, batch []models.NewsDigest, events []models.EventDigest) BatchOutcome {
	outcome := BatchOutcome{Batch: batch}
	cacheKey := batchResultKey(batch)

	var result models.AggregationResult
	if d.cache == nil || !d.cache.Get(cacheKey, &result) {
		fullPrompt := d.builder.AggregationSystemPrompt() + "\n\n" +
			d.builder.BuildAggregationPrompt(batch, events)

		if _, err := d.CallSingle(ctx, CallOptions{RequestID: requestID, Prompt: fullPrompt}, &result); err != nil {
			if errors.Is(err, llm.ErrNoJSONObject) {
				// Undecodable output counts as a partial response with
				// every item missing; the straggler pass re-dispatches
				// the batch once at half size.
				slog.Warn("Aggregation response was not decodable JSON",
					"request_id", requestID, "error", err)
				outcome.Status = BatchPartial
				outcome.Result = &models.AggregationResult{}
				outcome.Missing = models.NewsIDs(batch)
				outcome.Err = err
				return outcome
			}
			outcome.Status = BatchInvalid
			outcome.Err = err
			return outcome
		}
		if d.cache != nil {
			if err := d.cache.Set(cacheKey, &result, llmResultTTL); err != nil {
				slog.Warn("Failed to cache batch result", "request_id", requestID, "error", err)
			}
		}
	}

	validation := ValidateAndFix(batch, models.EventIDSet(events), &result)
	outcome.Result = validation.Fixed
	outcome.Missing = validation.MissingNews
	if validation.IsValid {
		outcome.Status = BatchValid
	} else {
		outcome.Status = BatchPartial
		slog.Warn("Aggregation response required repair",
			"request_id", requestID, "detail", validation.Message)
	}
	return outcome
}

// ProcessNewsConcurrent splits news into batches and dispatches them with
// bounded concurrency. When RetryStragglers is set, items the model
// omitted from otherwise-usable responses get one re-dispatch pass at
// half the batch size.
func (d *Dispatcher) ProcessNewsConcurrent(ctx context.Context, taskID string, news []models.NewsDigest, events []models.EventDigest, opts BatchOptions) []BatchOutcome {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = d.cfg.BatchSize
	}

	batches := chunkDigests(news, batchSize)
	outcomes := d.dispatchBatches(ctx, taskID, batches, events)

	if !opts.RetryStragglers {
		return outcomes
	}

	stragglers := collectStragglers(news, outcomes)
	if len(stragglers) == 0 {
		return outcomes
	}

	slog.Info("Re-dispatching straggler news items",
		"task_id", taskID, "count", len(stragglers))
	metrics.StragglerRedispatchTotal.Add(float64(len(stragglers)))

	halfSize := max(batchSize/2, 1)
	retryBatches := chunkDigests(stragglers, halfSize)
	retryOutcomes := d.dispatchBatches(ctx, taskID+"-straggler", retryBatches, events)

	return append(outcomes, retryOutcomes...)
}

// dispatchBatches runs one pass of batch calls under the concurrency bound.
func (d *Dispatcher) dispatchBatches(ctx context.Context, taskID string, batches [][]models.NewsDigest, events []models.EventDigest) []BatchOutcome {
	outcomes := make([]BatchOutcome, len(batches))

	sem := make(chan struct{}, d.cfg.MaxConcurrent)
	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []models.NewsDigest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			requestID := fmt.Sprintf("%s-b%03d", taskID, i)
			outcomes[i] = d.ProcessBatch(ctx, requestID, batch, events)
		}(i, batch)
	}
	wg.Wait()

	return outcomes
}

// collectStragglers gathers the digests of items omitted from usable
// (partial) responses. Items from failed batches are not stragglers —
// the whole batch failed and the engine reports it as such.
func collectStragglers(news []models.NewsDigest, outcomes []BatchOutcome) []models.NewsDigest {
	missing := make(map[int]struct{})
	for _, o := range outcomes {
		if o.Status != BatchPartial {
			continue
		}
		for _, id := range o.Missing {
			missing[id] = struct{}{}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out []models.NewsDigest
	for _, n := range news {
		if _, ok := missing[n.ID]; ok {
			out = append(out, n)
		}
	}
	return out
}

// batchResultKey hashes the batch's sorted news ids into its llm_result
// cache key. The event context is deliberately not part of the key: a
// cached result is re-validated against the live context on every hit.
func batchResultKey(batch []models.NewsDigest) string {
	ids := models.NewsIDs(batch)
	sort.Ints(ids)
	h := sha256.New()
	for _, id := range ids {
		fmt.Fprintf(h, "%d,", id)
	}
	return cache.LLMResultKey(hex.EncodeToString(h.Sum(nil)))
}

func chunkDigests(news []models.NewsDigest, size int) [][]models.NewsDigest {
	if len(news) == 0 {
		return nil
	}
	var batches [][]models.NewsDigest
	for start := 0; start < len(news); start += size {
		end := min(start+size, len(news))
		batches = append(batches, news[start:end])
	}
	return batches
}
