package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/pkg/config"
	"github.com/newsflow/hotaggr/pkg/models"
	testdb "github.com/newsflow/hotaggr/test/database"
)

func seedRun(t *testing.T, client *ent.Client, taskID, status string, age time.Duration) {
	t.Helper()
	_, err := client.ProcessingLog.Create().
		SetTaskType(models.TaskTypeAggregation).
		SetTaskID(taskID).
		SetStartTime(time.Now().Add(-age)).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
}

func TestRunOnce_RemovesOldFinishedRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedRun(t, client.Client, "old-success", models.RunStatusSuccess, 40*24*time.Hour)
	seedRun(t, client.Client, "old-failed", models.RunStatusFailed, 40*24*time.Hour)
	seedRun(t, client.Client, "recent", models.RunStatusSuccess, time.Hour)
	// A stuck run is never reaped by retention, however old.
	seedRun(t, client.Client, "old-running", models.RunStatusRunning, 40*24*time.Hour)

	svc := NewService(&config.RetentionConfig{
		ProcessingLogRetentionDays: 30,
		CallRecordRetention:        7 * 24 * time.Hour,
	}, client.Client, "")

	require.NoError(t, svc.RunOnce(ctx))

	remaining, err := client.ProcessingLog.Query().All(ctx)
	require.NoError(t, err)
	ids := make(map[string]bool, len(remaining))
	for _, run := range remaining {
		ids[run.TaskID] = true
	}
	assert.Equal(t, map[string]bool{"recent": true, "old-running": true}, ids)
}

func TestRunOnce_PrunesOldCallRecords(t *testing.T) {
	client := testdb.NewTestClient(t)
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "20260101T000000.000_agg-old.json")
	require.NoError(t, os.WriteFile(oldFile, []byte("{}"), 0o644))
	past := time.Now().Add(-14 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, past, past))

	freshFile := filepath.Join(dir, "20260820T000000.000_agg-new.json")
	require.NoError(t, os.WriteFile(freshFile, []byte("{}"), 0o644))

	svc := NewService(&config.RetentionConfig{
		ProcessingLogRetentionDays: 30,
		CallRecordRetention:        7 * 24 * time.Hour,
	}, client.Client, dir)

	require.NoError(t, svc.RunOnce(context.Background()))

	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, freshFile)
}

func TestRunOnce_NoCallsDirIsNoOp(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := NewService(&config.RetentionConfig{
		ProcessingLogRetentionDays: 30,
		CallRecordRetention:        7 * 24 * time.Hour,
	}, client.Client, "")

	assert.NoError(t, svc.RunOnce(context.Background()))
}
