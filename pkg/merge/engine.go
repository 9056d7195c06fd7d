// Package merge implements duplicate-event detection and consolidation:
// one LLM pass over the recent events, confidence filtering, greedy
// conflict resolution, and transactional execution of each merge group.
package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/pkg/cache"
	"github.com/newsflow/hotaggr/pkg/config"
	"github.com/newsflow/hotaggr/pkg/dispatch"
	"github.com/newsflow/hotaggr/pkg/metrics"
	"github.com/newsflow/hotaggr/pkg/models"
	"github.com/newsflow/hotaggr/pkg/services"
)

// ErrNothingToMerge is returned by ManualMerge when fewer than two of the
// requested events are active. Scheduled runs treat the condition as a
// zero-merge success instead.
var ErrNothingToMerge = errors.New("nothing to merge")

// Engine runs one merge pass. The config decides the candidate window and
// confidence threshold; the CLI modes are just config variants.
type Engine struct {
	client     *ent.Client
	events     *services.EventService
	runs       *services.ProcessingLogService
	dispatcher *dispatch.Dispatcher
	cache      *cache.Cache
	cfg        *config.MergeConfig
}

// NewEngine wires a merge engine.
func NewEngine(client *ent.Client, dispatcher *dispatch.Dispatcher, c *cache.Cache, cfg *config.MergeConfig) *Engine {
	return &Engine{
		client:     client,
		events:     services.NewEventService(client),
		runs:       services.NewProcessingLogService(client),
		dispatcher: dispatcher,
		cache:      c,
		cfg:        cfg,
	}
}

// Run executes one merge pass and returns the run summary. Fewer than two
// candidate events is a zero-merge success.
func (e *Engine) Run(ctx context.Context) (*models.MergeSummary, error) {
	taskID := "merge-" + uuid.NewString()
	start := time.Now()
	summary := &models.MergeSummary{TaskID: taskID}

	candidates, err := e.events.RecentActiveDigests(ctx, e.cfg.RecentEventCount, e.cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to load merge candidates: %w", err)
	}
	if len(candidates) < 2 {
		slog.Info("Not enough events to merge", "task_id", taskID, "candidates", len(candidates))
		return summary, nil
	}

	if err := e.runs.StartRun(ctx, models.TaskTypeMerge, taskID, e.configSnapshot()); err != nil {
		return nil, fmt.Errorf("failed to start merge run: %w", err)
	}
	slog.Info("Merge run started", "task_id", taskID, "candidates", len(candidates))

	builder := e.dispatcher.Builder()
	fullPrompt := builder.MergeSystemPrompt() + "\n\n" + builder.BuildBatchMergePrompt(candidates)

	var result models.BatchMergeResult
	_, err = e.dispatcher.CallSingle(ctx, dispatch.CallOptions{
		RequestID:   taskID,
		Prompt:      fullPrompt,
		Model:       e.cfg.Model,
		Temperature: e.cfg.Temperature,
		MaxTokens:   e.cfg.MaxTokens,
	}, &result)
	if err != nil {
		e.finish(ctx, taskID, summary, err)
		return summary, fmt.Errorf("merge analysis call failed: %w", err)
	}

	accepted := e.selectSuggestions(result.MergeSuggestions, candidates)
	summary.SuggestionsCount = len(accepted)
	slog.Info("Merge suggestions selected",
		"task_id", taskID,
		"raw", len(result.MergeSuggestions),
		"accepted", len(accepted),
		"analysis", result.AnalysisSummary)

	e.executeAll(ctx, taskID, accepted, summary)
	summary.Duration = time.Since(start)

	if summary.MergedCount > 0 {
		e.cache.ClearPrefix(cache.RecentEventsPrefix)
	}
	e.finish(ctx, taskID, summary, nil)
	metrics.RunDuration.WithLabelValues(models.TaskTypeMerge).Observe(summary.Duration.Seconds())

	slog.Info("Merge run finished",
		"task_id", taskID,
		"merged", summary.MergedCount,
		"failed", summary.FailedCount,
		"duration", summary.Duration)
	return summary, nil
}

// ManualMerge merges the given events without LLM analysis. The first id
// is the surviving primary; the suggestion carries confidence 1.0.
func (e *Engine) ManualMerge(ctx context.Context, eventIDs []int) (*models.MergeSummary, error) {
	if len(eventIDs) < 2 {
		return nil, fmt.Errorf("%w: need at least two event ids", ErrNothingToMerge)
	}

	active, err := e.events.ActiveByIDs(ctx, eventIDs)
	if err != nil {
		return nil, err
	}
	activeSet := make(map[int]struct{}, len(active))
	for _, evt := range active {
		activeSet[evt.ID] = struct{}{}
	}
	for _, id := range eventIDs {
		if _, ok := activeSet[id]; !ok {
			return nil, fmt.Errorf("event %d is not active: %w", id, services.ErrInvalidInput)
		}
	}

	taskID := "merge-manual-" + uuid.NewString()
	summary := &models.MergeSummary{TaskID: taskID}
	start := time.Now()

	if err := e.runs.StartRun(ctx, models.TaskTypeMerge, taskID, map[string]interface{}{
		"mode":      "manual",
		"event_ids": eventIDs,
	}); err != nil {
		return nil, fmt.Errorf("failed to start manual merge run: %w", err)
	}

	suggestion := models.MergeSuggestion{
		GroupID:        "manual",
		EventsToMerge:  eventIDs,
		PrimaryEventID: eventIDs[0],
		Confidence:     1.0,
		Reason:         "manual merge requested by operator",
	}
	summary.SuggestionsCount = 1

	e.executeAll(ctx, taskID, []models.MergeSuggestion{suggestion}, summary)
	summary.Duration = time.Since(start)

	if summary.MergedCount > 0 {
		e.cache.ClearPrefix(cache.RecentEventsPrefix)
	}
	e.finish(ctx, taskID, summary, nil)

	if summary.FailedCount > 0 {
		return summary, fmt.Errorf("manual merge failed: %s", summary.FailedMerges[0].Error)
	}
	return summary, nil
}

// selectSuggestions filters raw suggestions by confidence and
// well-formedness, then resolves conflicts greedily by confidence so no
// event is consumed by two groups in one run.
func (e *Engine) selectSuggestions(raw []models.MergeSuggestion, candidates []models.EventDigest) []models.MergeSuggestion {
	known := models.EventIDSet(candidates)
	createdAt := make(map[int]time.Time, len(candidates))
	for _, c := range candidates {
		createdAt[c.ID] = c.CreatedAt
	}

	var wellFormed []models.MergeSuggestion
	for _, s := range raw {
		if s.Confidence < e.cfg.ConfidenceThreshold {
			continue
		}
		if len(s.EventsToMerge) < 2 {
			continue
		}
		valid := true
		for _, id := range s.EventsToMerge {
			if _, ok := known[id]; !ok {
				slog.Warn("Dropping merge suggestion referencing unknown event",
					"group_id", s.GroupID, "event_id", id)
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		if !s.Contains(s.PrimaryEventID) {
			s.PrimaryEventID = earliestEvent(s.EventsToMerge, createdAt)
		}
		wellFormed = append(wellFormed, s)
	}

	sort.SliceStable(wellFormed, func(i, j int) bool {
		return wellFormed[i].Confidence > wellFormed[j].Confidence
	})

	consumed := make(map[int]struct{})
	var accepted []models.MergeSuggestion
	for _, s := range wellFormed {
		conflict := false
		for _, id := range s.EventsToMerge {
			if _, ok := consumed[id]; ok {
				conflict = true
				break
			}
		}
		if conflict {
			slog.Debug("Skipping conflicting merge suggestion", "group_id", s.GroupID)
			continue
		}
		for _, id := range s.EventsToMerge {
			consumed[id] = struct{}{}
		}
		accepted = append(accepted, s)
	}
	return accepted
}

// executeAll runs each accepted suggestion in its own transaction.
// Failures are collected; suggestions are independent.
func (e *Engine) executeAll(ctx context.Context, taskID string, suggestions []models.MergeSuggestion, summary *models.MergeSummary) {
	for _, s := range suggestions {
		if err := e.executeBatchMerge(ctx, s); err != nil {
			slog.Error("Merge suggestion failed",
				"task_id", taskID, "group_id", s.GroupID, "primary", s.PrimaryEventID, "error", err)
			summary.FailedCount++
			summary.FailedMerges = append(summary.FailedMerges, models.FailedMerge{
				GroupID:        s.GroupID,
				PrimaryEventID: s.PrimaryEventID,
				Error:          err.Error(),
			})
			metrics.MergesTotal.WithLabelValues("failed").Inc()
			continue
		}
		summary.MergedCount++
		metrics.MergesTotal.WithLabelValues("success").Inc()
		metrics.EventsMergedTotal.Add(float64(len(s.EventsToMerge) - 1))
	}
}

func (e *Engine) finish(ctx context.Context, taskID string, summary *models.MergeSummary, runErr error) {
	status := models.RunStatusSuccess
	errMsg := ""
	switch {
	case runErr != nil:
		status = models.RunStatusFailed
		errMsg = runErr.Error()
	case summary.FailedCount > 0 && summary.MergedCount > 0:
		status = models.RunStatusPartial
	case summary.FailedCount > 0:
		status = models.RunStatusFailed
	}
	metrics.RunsTotal.WithLabelValues(models.TaskTypeMerge, status).Inc()

	if err := e.runs.FinishRun(ctx, taskID, status,
		summary.SuggestionsCount, summary.MergedCount, summary.FailedCount, errMsg); err != nil {
		slog.Error("Failed to finalize merge run", "task_id", taskID, "error", err)
	}
}

func (e *Engine) configSnapshot() map[string]interface{} {
	return map[string]interface{}{
		"window":               e.cfg.Window.String(),
		"recent_event_count":   e.cfg.RecentEventCount,
		"confidence_threshold": e.cfg.ConfidenceThreshold,
		"model":                e.cfg.Model,
	}
}

func earliestEvent(ids []int, createdAt map[int]time.Time) int {
	best := ids[0]
	for _, id := range ids[1:] {
		if createdAt[id].Before(createdAt[best]) {
			best = id
		}
	}
	return best
}
