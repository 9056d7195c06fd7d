// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/pkg/config"
	"github.com/newsflow/hotaggr/pkg/llm"
	"github.com/newsflow/hotaggr/pkg/services"
)

// Service enforces retention policies:
//   - Removes finished processing-log rows past the retention window
//   - Prunes on-disk LLM call artefacts past their retention window
//
// All operations are idempotent; running them twice removes nothing extra.
type Service struct {
	config   *config.RetentionConfig
	runs     *services.ProcessingLogService
	callsDir string
}

// NewService creates a new cleanup service. callsDir may be empty when
// call recording is disabled.
func NewService(cfg *config.RetentionConfig, client *ent.Client, callsDir string) *Service {
	return &Service{
		config:   cfg,
		runs:     services.NewProcessingLogService(client),
		callsDir: callsDir,
	}
}

// RunOnce applies every retention policy once. Policies are independent;
// the first failure is returned but does not mask the others' progress.
func (s *Service) RunOnce(ctx context.Context) error {
	if err := s.cleanupProcessingLogs(ctx); err != nil {
		return err
	}
	return s.pruneCallRecords()
}

func (s *Service) cleanupProcessingLogs(ctx context.Context) error {
	count, err := s.runs.CleanupOld(ctx, s.config.ProcessingLogRetentionDays)
	if err != nil {
		return fmt.Errorf("failed to clean up processing logs: %w", err)
	}
	if count > 0 {
		slog.Info("Retention: removed old processing logs", "count", count)
	}
	return nil
}

func (s *Service) pruneCallRecords() error {
	if s.callsDir == "" {
		return nil
	}
	recorder, err := llm.NewRecorder(s.callsDir)
	if err != nil {
		return err
	}
	count, err := recorder.Prune(s.config.CallRecordRetention)
	if err != nil {
		return fmt.Errorf("failed to prune LLM call records: %w", err)
	}
	if count > 0 {
		slog.Info("Retention: pruned old LLM call records", "count", count)
	}
	return nil
}
