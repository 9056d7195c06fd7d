package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow/hotaggr/pkg/models"
	testdb "github.com/newsflow/hotaggr/test/database"
)

func TestProcessingLogService_RunLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProcessingLogService(client.Client)
	ctx := context.Background()

	snapshot := map[string]interface{}{"batch_size": 10, "model": "qwen-plus"}
	require.NoError(t, svc.StartRun(ctx, models.TaskTypeAggregation, "agg-abc", snapshot))

	run, err := svc.LastRunOfType(ctx, models.TaskTypeAggregation)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusRunning, run.Status)
	assert.Equal(t, "agg-abc", run.TaskID)
	assert.Nil(t, run.EndTime)

	require.NoError(t, svc.FinishRun(ctx, "agg-abc", models.RunStatusPartial, 20, 18, 2, ""))

	run, err = svc.LastRunOfType(ctx, models.TaskTypeAggregation)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusPartial, run.Status)
	assert.Equal(t, 20, run.Total)
	assert.Equal(t, 18, run.Success)
	assert.Equal(t, 2, run.Failed)
	require.NotNil(t, run.EndTime)
}

func TestProcessingLogService_FinishUnknownRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProcessingLogService(client.Client)

	err := svc.FinishRun(context.Background(), "no-such-task", models.RunStatusSuccess, 0, 0, 0, "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestProcessingLogService_RecentRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProcessingLogService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.StartRun(ctx, models.TaskTypeAggregation, "agg-1", nil))
	require.NoError(t, svc.StartRun(ctx, models.TaskTypeMerge, "merge-1", nil))

	runs, err := svc.RecentRuns(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	_, err = svc.LastRunOfType(ctx, "cleanup")
	assert.True(t, errors.Is(err, ErrNotFound))
}
