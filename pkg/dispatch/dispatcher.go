// Package dispatch sends prompts to the LLM with batching, bounded
// concurrency, retries, and response validation. The engines hand it
// digests; it hands back decoded, repaired results.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/newsflow/hotaggr/pkg/cache"
	"github.com/newsflow/hotaggr/pkg/config"
	"github.com/newsflow/hotaggr/pkg/llm"
	"github.com/newsflow/hotaggr/pkg/metrics"
	"github.com/newsflow/hotaggr/pkg/prompt"
)

// ErrEmptyResponse is returned when a call completes without any text.
var ErrEmptyResponse = errors.New("llm returned an empty response")

// Dispatcher owns the LLM call policy: retry, timeout, recording, replay.
// Thread-safe; one instance serves all engines.
type Dispatcher struct {
	client   llm.Client
	builder  *prompt.Builder
	cache    *cache.Cache      // nil disables batch-result caching
	cfg      *config.DispatchConfig
	recorder *llm.Recorder     // nil when recording is disabled
	replay   *llm.ReplayCache  // nil unless debug replay is enabled
}

// NewDispatcher wires a dispatcher from config. Recording is enabled when
// CallsDir is set; replay when ReplayEnabled is set.
func NewDispatcher(client llm.Client, builder *prompt.Builder, c *cache.Cache, cfg *config.DispatchConfig) (*Dispatcher, error) {
	d := &Dispatcher{client: client, builder: builder, cache: c, cfg: cfg}

	if cfg.CallsDir != "" {
		recorder, err := llm.NewRecorder(cfg.CallsDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize call recorder: %w", err)
		}
		d.recorder = recorder
	}
	if cfg.ReplayEnabled {
		replay, err := llm.NewReplayCache(filepath.Join(cfg.CallsDir, "replay"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize replay cache: %w", err)
		}
		d.replay = replay
	}
	return d, nil
}

// Builder exposes the prompt builder for engines that compose their own
// prompts (the merge engine).
func (d *Dispatcher) Builder() *prompt.Builder { return d.builder }

// Config exposes the dispatch configuration.
func (d *Dispatcher) Config() *config.DispatchConfig { return d.cfg }

// CallOptions parameterizes one CallSingle invocation. Zero Model,
// Temperature, or MaxTokens fall back to the dispatch config.
type CallOptions struct {
	RequestID   string
	Prompt      string
	Model       string
	Temperature float32
	MaxTokens   int32
}

// CallSingle performs one complete LLM call: retries with exponential
// backoff, collects the streamed response, decodes the JSON payload into
// out, and records the call artefact. It returns the token usage of the
// successful attempt.
func (d *Dispatcher) CallSingle(ctx context.Context, opts CallOptions, out any) (*llm.TokenUsage, error) {
	input := d.buildInput(opts)
	callStart := time.Now()

	if d.replay != nil {
		key := d.replay.Key(input.Prompt, input.Model, input.Temperature, input.MaxTokens)
		if text, usage, ok := d.replay.Load(key); ok {
			if err := llm.DecodeResponse(text, out); err != nil {
				return nil, fmt.Errorf("replayed response failed to decode: %w", err)
			}
			metrics.LLMCallsTotal.WithLabelValues("replayed").Inc()
			slog.Debug("Served LLM call from replay cache", "request_id", opts.RequestID)
			return usage, nil
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = d.cfg.InitialBackoff
	bo.MaxInterval = d.cfg.MaxBackoff

	record := &llm.CallRecord{
		RequestID:   input.RequestID,
		Model:       input.Model,
		Temperature: input.Temperature,
		MaxTokens:   input.MaxTokens,
		Prompt:      input.Prompt,
		CreatedAt:   callStart,
	}

	var lastErr error
	for attempt := 1; attempt <= d.cfg.RetryAttempts; attempt++ {
		attemptStart := time.Now()
		text, usage, err := d.attempt(ctx, input)

		if err == nil {
			err = llm.DecodeResponse(text, out)
		}

		record.Attempts = append(record.Attempts, llm.AttemptRecord{
			Attempt:   attempt,
			StartedAt: attemptStart,
			Duration:  time.Since(attemptStart),
			Error:     errString(err),
		})

		if err == nil {
			record.Response = text
			record.Usage = usage
			record.Success = true
			d.finishCall(record, callStart, usage)
			if d.replay != nil {
				key := d.replay.Key(input.Prompt, input.Model, input.Temperature, input.MaxTokens)
				if storeErr := d.replay.Store(key, text, usage); storeErr != nil {
					slog.Warn("Failed to store replay entry", "request_id", input.RequestID, "error", storeErr)
				}
			}
			return usage, nil
		}

		lastErr = err
		if ctx.Err() != nil || !isRetryable(err) {
			break
		}
		if attempt < d.cfg.RetryAttempts {
			wait := bo.NextBackOff()
			slog.Warn("LLM call attempt failed, retrying",
				"request_id", input.RequestID, "attempt", attempt, "wait", wait, "error", err)
			metrics.LLMRetriesTotal.Inc()
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				lastErr = ctx.Err()
			}
		}
		if ctx.Err() != nil {
			break
		}
	}

	d.finishCall(record, callStart, nil)
	return nil, fmt.Errorf("llm call %s failed after %d attempts: %w",
		input.RequestID, len(record.Attempts), lastErr)
}

// attempt performs one streamed call under the per-attempt timeout and
// collects the response text.
func (d *Dispatcher) attempt(ctx context.Context, input *llm.GenerateInput) (string, *llm.TokenUsage, error) {
	attemptCtx := ctx
	if d.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, d.cfg.AttemptTimeout)
		defer cancel()
	}

	chunks, err := d.client.Generate(attemptCtx, input)
	if err != nil {
		return "", nil, &retryableError{err: fmt.Errorf("failed to start generation: %w", err)}
	}

	var sb strings.Builder
	var usage *llm.TokenUsage
	for chunk := range chunks {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			sb.WriteString(c.Content)
		case *llm.UsageChunk:
			usage = &llm.TokenUsage{
				InputTokens:  c.InputTokens,
				OutputTokens: c.OutputTokens,
				TotalTokens:  c.TotalTokens,
			}
		case *llm.ErrorChunk:
			err := fmt.Errorf("llm error (%s): %s", c.Code, c.Message)
			if c.Retryable {
				return "", nil, &retryableError{err: err}
			}
			return "", nil, err
		}
	}
	if attemptCtx.Err() != nil {
		return "", nil, &retryableError{err: attemptCtx.Err()}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", nil, &retryableError{err: ErrEmptyResponse}
	}
	return sb.String(), usage, nil
}

func (d *Dispatcher) buildInput(opts CallOptions) *llm.GenerateInput {
	model := opts.Model
	if model == "" {
		model = d.cfg.Model
	}
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = d.cfg.Temperature
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = d.cfg.MaxTokens
	}
	return &llm.GenerateInput{
		RequestID:   opts.RequestID,
		Prompt:      opts.Prompt,
		Model:       model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}
}

func (d *Dispatcher) finishCall(record *llm.CallRecord, start time.Time, usage *llm.TokenUsage) {
	metrics.LLMCallDuration.Observe(time.Since(start).Seconds())
	if record.Success {
		metrics.LLMCallsTotal.WithLabelValues("success").Inc()
	} else {
		metrics.LLMCallsTotal.WithLabelValues("failed").Inc()
	}
	if usage != nil {
		metrics.LLMTokensTotal.WithLabelValues("input").Add(float64(usage.InputTokens))
		metrics.LLMTokensTotal.WithLabelValues("output").Add(float64(usage.OutputTokens))
	}
	if d.recorder != nil {
		d.recorder.Save(record)
	}
}

// retryableError marks transient failures worth another attempt.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// isRetryable reports whether the error is transient. Only errors that
// attempt() wrapped as retryable — transport failures, retryable provider
// errors, per-attempt timeouts, empty responses — get another attempt.
// Non-retryable provider errors and decode failures stop the call; an
// undecodable response is handled at the batch level, not by burning the
// retry budget on the same prompt.
func isRetryable(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
