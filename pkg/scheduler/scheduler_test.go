package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsOnInterval(t *testing.T) {
	var runs atomic.Int32
	s := New(0)
	s.Register(Job{
		Name:     "tick",
		Interval: 20 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 2 },
		time.Second, 10*time.Millisecond)
}

func TestScheduler_SingleFlight(t *testing.T) {
	var running, maxRunning atomic.Int32
	release := make(chan struct{})

	s := New(0)
	s.Register(Job{
		Name:     "slow",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			cur := running.Add(1)
			if cur > maxRunning.Load() {
				maxRunning.Store(cur)
			}
			<-release
			running.Add(-1)
			return nil
		},
	})

	s.Start(context.Background())

	// Let several ticks pile up behind the blocked run.
	time.Sleep(60 * time.Millisecond)
	close(release)
	s.Stop()

	assert.Equal(t, int32(1), maxRunning.Load())
	assert.Greater(t, s.State()["slow"].SkippedTicks, 0)
}

func TestScheduler_TriggerNow(t *testing.T) {
	var runs atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	s := New(time.Minute)
	s.Register(Job{
		Name:     "job",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			close(started)
			<-release
			return nil
		},
	})
	s.Start(context.Background())

	require.True(t, s.TriggerNow(context.Background(), "job"))
	<-started
	// Second trigger while the first is in flight is refused.
	assert.False(t, s.TriggerNow(context.Background(), "job"))

	close(release)
	s.Stop()
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_TriggerNowUnknownJob(t *testing.T) {
	s := New(time.Minute)
	assert.False(t, s.TriggerNow(context.Background(), "nope"))
}

func TestScheduler_StateRecordsError(t *testing.T) {
	s := New(time.Minute)
	s.Register(Job{
		Name:     "fails",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			return errors.New("boom")
		},
	})
	s.Start(context.Background())

	require.True(t, s.TriggerNow(context.Background(), "fails"))
	assert.Eventually(t, func() bool {
		return s.State()["fails"].LastError == "boom"
	}, time.Second, 10*time.Millisecond)

	s.Stop()
	state := s.State()["fails"]
	assert.False(t, state.Running)
	assert.False(t, state.LastStarted.IsZero())
	assert.False(t, state.LastFinished.IsZero())
}
