// Package aggregation implements the news-to-event clustering run: select
// unprocessed news, dispatch it to the LLM in batches, and persist the
// assignments transactionally.
package aggregation

import (
	"context"
	"fmt"
	"log/slog"
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

// Engine runs one aggregation pass end to end. Safe for repeated runs:
// relation inserts are idempotent and re-processing already-assigned news
// is a no-op.
type Engine struct {
	client     *ent.Client
	news       *services.NewsService
	events     *services.EventService
	runs       *services.ProcessingLogService
	dispatcher *dispatch.Dispatcher
	cache      *cache.Cache
	cfg        *config.AggregationConfig
}

// NewEngine wires an aggregation engine.
func NewEngine(client *ent.Client, dispatcher *dispatch.Dispatcher, c *cache.Cache, cfg *config.AggregationConfig) *Engine {
	return &Engine{
		client:     client,
		news:       services.NewNewsService(client),
		events:     services.NewEventService(client),
		runs:       services.NewProcessingLogService(client),
		dispatcher: dispatcher,
		cache:      c,
		cfg:        cfg,
	}
}

// Run executes one aggregation pass over the unprocessed news window and
// returns the run summary. The summary is also persisted as a processing
// log row; Run itself returns an error only when the run could not start
// or nothing could be persisted at all.
func (e *Engine) Run(ctx context.Context) (*models.AggregationSummary, error) {
	taskID := "agg-" + uuid.NewString()
	start := time.Now()

	news, err := e.news.SelectUnprocessed(ctx, start.Add(-e.cfg.Window), e.cfg.ExcludedNewsTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to select unprocessed news: %w", err)
	}
	summary := &models.AggregationSummary{TaskID: taskID, TotalNews: len(news)}
	if len(news) == 0 {
		slog.Info("No unprocessed news in window", "task_id", taskID, "window", e.cfg.Window)
		return summary, nil
	}

	if err := e.runs.StartRun(ctx, models.TaskTypeAggregation, taskID, e.configSnapshot()); err != nil {
		return nil, fmt.Errorf("failed to start aggregation run: %w", err)
	}
	slog.Info("Aggregation run started",
		"task_id", taskID, "news_count", len(news), "window", e.cfg.Window)

	events, err := e.assignmentContext(ctx, start.Add(-e.cfg.Window))
	if err != nil {
		e.finish(ctx, taskID, summary, start, err)
		return summary, err
	}

	outcomes := e.dispatcher.ProcessNewsConcurrent(ctx, taskID, news, events,
		dispatch.BatchOptions{RetryStragglers: true})

	processed, created, failedIDs := e.persistOutcomes(ctx, taskID, outcomes)

	// Items whose batches produced usable results but were dropped at
	// persistence time get one narrow re-dispatch at half batch size.
	if dropped := subtractIDs(models.NewsIDs(news), processed, failedIDs); len(dropped) > 0 {
		slog.Warn("Recovering news dropped during persistence",
			"task_id", taskID, "count", len(dropped))
		recovered, recCreated, recFailed := e.recoverDropped(ctx, taskID, dropped, events)
		processed = append(processed, recovered...)
		created += recCreated
		failedIDs = append(failedIDs, recFailed...)
	}

	summary.ProcessedCount = len(processed)
	summary.EventsCreated = created
	summary.FailedNewsIDs = subtractIDs(models.NewsIDs(news), processed, nil)
	summary.FailedCount = len(summary.FailedNewsIDs)
	summary.Duration = time.Since(start)

	e.cache.ClearPrefix(cache.RecentEventsPrefix)
	e.finish(ctx, taskID, summary, start, nil)

	metrics.NewsProcessedTotal.WithLabelValues("success").Add(float64(summary.ProcessedCount))
	metrics.NewsProcessedTotal.WithLabelValues("failed").Add(float64(summary.FailedCount))
	metrics.EventsCreatedTotal.Add(float64(created))
	metrics.RunDuration.WithLabelValues(models.TaskTypeAggregation).Observe(summary.Duration.Seconds())

	slog.Info("Aggregation run finished",
		"task_id", taskID,
		"processed", summary.ProcessedCount,
		"failed", summary.FailedCount,
		"events_created", summary.EventsCreated,
		"duration", summary.Duration)
	return summary, nil
}

// assignmentContext builds the event context shown to the LLM: the most
// recently created active events unioned with the events already holding
// news from the same window and type filter, de-duplicated by event id.
// The union keeps a window spanning already-processed news clustering
// into its established events even when they fell off the recent set.
func (e *Engine) assignmentContext(ctx context.Context, since time.Time) ([]models.EventDigest, error) {
	events, err := e.recentEvents(ctx)
	if err != nil {
		return nil, err
	}

	windowEventIDs, err := e.news.ProcessedEventIDs(ctx, since, e.cfg.ExcludedNewsTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to load in-window event ids: %w", err)
	}

	seen := make(map[int]struct{}, len(events))
	for _, ev := range events {
		seen[ev.ID] = struct{}{}
	}
	var missing []int
	for _, id := range windowEventIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return events, nil
	}

	extra, err := e.events.ActiveDigestsByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to load in-window events: %w", err)
	}
	return append(events, extra...), nil
}

// recentEvents returns the recent-event snapshot, served from cache when
// it is fresh.
func (e *Engine) recentEvents(ctx context.Context) ([]models.EventDigest, error) {
	key := cache.RecentEventsKey(e.cfg.SummaryDays)
	var events []models.EventDigest
	if e.cache.Get(key, &events) {
		return events, nil
	}

	maxAge := time.Duration(e.cfg.SummaryDays) * 24 * time.Hour
	events, err := e.events.RecentActiveDigests(ctx, e.cfg.RecentEventsCount, maxAge)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent events: %w", err)
	}
	if err := e.cache.Set(key, events, e.cfg.CacheTTL); err != nil {
		slog.Warn("Failed to cache recent events", "error", err)
	}
	return events, nil
}

// persistOutcomes applies every usable batch result in its own
// transaction. Returns the processed news ids, events created, and the
// ids of news in failed batches.
func (e *Engine) persistOutcomes(ctx context.Context, taskID string, outcomes []dispatch.BatchOutcome) (processed []int, created int, failedIDs []int) {
	for _, outcome := range outcomes {
		if outcome.Status == dispatch.BatchInvalid {
			slog.Error("Aggregation batch failed",
				"task_id", taskID, "batch_size", len(outcome.Batch), "error", outcome.Err)
			failedIDs = append(failedIDs, models.NewsIDs(outcome.Batch)...)
			continue
		}

		batchProcessed, batchCreated, err := e.persistResult(ctx, outcome.Batch, outcome.Result)
		if err != nil {
			slog.Error("Failed to persist aggregation batch",
				"task_id", taskID, "batch_size", len(outcome.Batch), "error", err)
			failedIDs = append(failedIDs, models.NewsIDs(outcome.Batch)...)
			continue
		}
		processed = append(processed, batchProcessed...)
		created += batchCreated
	}
	return processed, created, failedIDs
}

// recoverDropped re-dispatches persistence-time drops once, at half the
// configured batch size, without another straggler pass.
func (e *Engine) recoverDropped(ctx context.Context, taskID string, droppedIDs []int, events []models.EventDigest) (processed []int, created int, failedIDs []int) {
	dropped, err := e.news.ByIDs(ctx, droppedIDs)
	if err != nil {
		slog.Error("Failed to reload dropped news", "task_id", taskID, "error", err)
		return nil, 0, droppedIDs
	}

	halfSize := e.dispatcher.Config().BatchSize / 2
	if halfSize < 1 {
		halfSize = 1
	}
	outcomes := e.dispatcher.ProcessNewsConcurrent(ctx, taskID+"-recover", dropped, events,
		dispatch.BatchOptions{BatchSize: halfSize})
	return e.persistOutcomes(ctx, taskID, outcomes)
}

func (e *Engine) finish(ctx context.Context, taskID string, summary *models.AggregationSummary, start time.Time, runErr error) {
	status := models.RunStatusSuccess
	errMsg := ""
	switch {
	case runErr != nil:
		status = models.RunStatusFailed
		errMsg = runErr.Error()
	case summary.FailedCount > 0 && summary.ProcessedCount > 0:
		status = models.RunStatusPartial
	case summary.FailedCount > 0:
		status = models.RunStatusFailed
	}
	metrics.RunsTotal.WithLabelValues(models.TaskTypeAggregation, status).Inc()

	if err := e.runs.FinishRun(ctx, taskID, status,
		summary.TotalNews, summary.ProcessedCount, summary.FailedCount, errMsg); err != nil {
		slog.Error("Failed to finalize aggregation run", "task_id", taskID, "error", err)
	}
}

func (e *Engine) configSnapshot() map[string]interface{} {
	return map[string]interface{}{
		"window":              e.cfg.Window.String(),
		"recent_events_count": e.cfg.RecentEventsCount,
		"summary_days":        e.cfg.SummaryDays,
		"excluded_news_types": e.cfg.ExcludedNewsTypes,
		"batch_size":          e.dispatcher.Config().BatchSize,
		"max_concurrent":      e.dispatcher.Config().MaxConcurrent,
		"model":               e.dispatcher.Config().Model,
	}
}

// subtractIDs returns the ids in all that appear in neither done nor skip.
func subtractIDs(all, done, skip []int) []int {
	exclude := make(map[int]struct{}, len(done)+len(skip))
	for _, id := range done {
		exclude[id] = struct{}{}
	}
	for _, id := range skip {
		exclude[id] = struct{}{}
	}
	var out []int
	for _, id := range all {
		if _, ok := exclude[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
