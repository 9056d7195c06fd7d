package services

import (
	"context"
	"fmt"
	"time"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/ent/processinglog"
	"github.com/newsflow/hotaggr/pkg/models"
)

// ProcessingLogService records engine runs. A run row is created when
// the run starts and finalized exactly once when it ends — no run may
// stay "running" after its engine returns.
type ProcessingLogService struct {
	client *ent.Client
}

// NewProcessingLogService creates a new ProcessingLogService
func NewProcessingLogService(client *ent.Client) *ProcessingLogService {
	return &ProcessingLogService{client: client}
}

// StartRun creates the run record in the running state.
func (s *ProcessingLogService) StartRun(ctx context.Context, taskType, taskID string, snapshot map[string]interface{}) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.ProcessingLog.Create().
		SetTaskType(taskType).
		SetTaskID(taskID).
		SetStartTime(time.Now()).
		SetStatus(models.RunStatusRunning).
		SetConfigSnapshot(snapshot).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to create processing log for %s: %w", taskID, err)
	}
	return nil
}

// FinishRun finalizes the run record with its terminal status and totals.
func (s *ProcessingLogService) FinishRun(ctx context.Context, taskID, status string, total, success, failed int, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.ProcessingLog.Update().
		Where(processinglog.TaskIDEQ(taskID)).
		SetEndTime(time.Now()).
		SetStatus(status).
		SetTotal(total).
		SetSuccess(success).
		SetFailed(failed)
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to finalize processing log for %s: %w", taskID, err)
	}
	if n == 0 {
		return fmt.Errorf("processing log for %s: %w", taskID, ErrNotFound)
	}
	return nil
}

// RecentRuns returns the latest runs, newest first.
func (s *ProcessingLogService) RecentRuns(ctx context.Context, limit int) ([]*ent.ProcessingLog, error) {
	runs, err := s.client.ProcessingLog.Query().
		Order(ent.Desc(processinglog.FieldStartTime)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent runs: %w", err)
	}
	return runs, nil
}

// LastRunOfType returns the most recent run of the task type, or
// ErrNotFound when none exists.
func (s *ProcessingLogService) LastRunOfType(ctx context.Context, taskType string) (*ent.ProcessingLog, error) {
	run, err := s.client.ProcessingLog.Query().
		Where(processinglog.TaskTypeEQ(taskType)).
		Order(ent.Desc(processinglog.FieldStartTime)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("runs of type %s: %w", taskType, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last run of type %s: %w", taskType, err)
	}
	return run, nil
}

// CleanupOld removes finished run records older than the retention window.
func (s *ProcessingLogService) CleanupOld(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.ProcessingLog.Delete().
		Where(
			processinglog.StartTimeLT(cutoff),
			processinglog.StatusNEQ(models.RunStatusRunning),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old processing logs: %w", err)
	}
	return count, nil
}
