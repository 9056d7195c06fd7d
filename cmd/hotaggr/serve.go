package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/newsflow/hotaggr/pkg/aggregation"
	"github.com/newsflow/hotaggr/pkg/api"
	"github.com/newsflow/hotaggr/pkg/cleanup"
	"github.com/newsflow/hotaggr/pkg/merge"
	"github.com/newsflow/hotaggr/pkg/scheduler"
	"github.com/newsflow/hotaggr/pkg/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scheduled pipeline and the ops HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, closer, err := setup(ctx)
	if err != nil {
		return err
	}
	defer closer()

	aggEngine := aggregation.NewEngine(a.db.Client, a.dispatcher, a.cache, a.cfg.Aggregation)
	incrementalMerge := merge.NewEngine(a.db.Client, a.dispatcher, a.cache, a.cfg.Merge.Incremental())
	dailyMerge := merge.NewEngine(a.db.Client, a.dispatcher, a.cache, a.cfg.Merge.Daily())

	sched := scheduler.New(a.cfg.Scheduler.MisfireGrace)
	registerJobs(sched, a, aggEngine, incrementalMerge, dailyMerge)
	sched.Start(ctx)
	defer sched.Stop()

	httpServer := api.NewServer(a.db, sched).HTTPServer(a.cfg.HTTPPort)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	return nil
}

func registerJobs(sched *scheduler.Scheduler, a *app, aggEngine *aggregation.Engine, incrementalMerge, dailyMerge *merge.Engine) {
	newsService := services.NewNewsService(a.db.Client)

	sched.Register(scheduler.Job{
		Name:     api.JobAggregation,
		Interval: a.cfg.Scheduler.AggregationInterval,
		Fn: func(ctx context.Context) error {
			_, err := aggEngine.Run(ctx)
			return err
		},
	})
	sched.Register(scheduler.Job{
		Name:     api.JobIncrementalMerge,
		Interval: a.cfg.Scheduler.IncrementalMergeInterval,
		Fn: func(ctx context.Context) error {
			_, err := incrementalMerge.Run(ctx)
			return err
		},
	})
	sched.Register(scheduler.Job{
		Name:     api.JobDailyMerge,
		Interval: a.cfg.Scheduler.DailyMergeInterval,
		Fn: func(ctx context.Context) error {
			_, err := dailyMerge.Run(ctx)
			return err
		},
	})
	sched.Register(scheduler.Job{
		Name:     api.JobLabeling,
		Interval: a.cfg.Scheduler.LabelingInterval,
		// Labeling of freshly created events happens in the enrichment
		// service; this hook keeps the cadence registered and visible
		// in job state until an in-process labeler exists.
		Fn: func(ctx context.Context) error { return nil },
	})
	retention := cleanup.NewService(a.cfg.Retention, a.db.Client, a.cfg.Dispatch.CallsDir)
	sched.Register(scheduler.Job{
		Name:     api.JobCleanup,
		Interval: a.cfg.Scheduler.CleanupInterval,
		Fn:       retention.RunOnce,
	})
	sched.Register(scheduler.Job{
		Name:     api.JobIngestionCheck,
		Interval: 10 * time.Minute,
		Fn: func(ctx context.Context) error {
			count, err := newsService.CountSince(ctx, time.Now().Add(-30*time.Minute))
			if err != nil {
				return err
			}
			if count == 0 {
				slog.Warn("No news ingested in the last 30 minutes, crawler may be stalled")
			}
			return nil
		},
	})
}
