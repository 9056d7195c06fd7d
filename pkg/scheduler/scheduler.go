// Package scheduler drives the periodic engine runs. It owns no business
// logic: jobs are closures registered at wiring time, each single-flight
// with a misfire grace window.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is one schedulable unit of work. Errors are logged and recorded
// in the job's last-run state; they never stop the schedule.
type JobFunc func(ctx context.Context) error

// Job declares one periodic job.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       JobFunc
}

// RunState is the observable outcome of a job's most recent run.
type RunState struct {
	LastStarted  time.Time `json:"last_started,omitempty"`
	LastFinished time.Time `json:"last_finished,omitempty"`
	LastError    string    `json:"last_error,omitempty"`
	Running      bool      `json:"running"`
	SkippedTicks int       `json:"skipped_ticks"`
}

type jobEntry struct {
	job   Job
	state RunState
	// inFlight is held for the duration of one run; a tick that cannot
	// take it is skipped, never queued.
	inFlight chan struct{}
}

// Scheduler runs registered jobs on fixed cadences. Each job is
// single-flight: a tick arriving while the previous run is still going is
// skipped and counted.
type Scheduler struct {
	misfireGrace time.Duration

	mu   sync.RWMutex
	jobs map[string]*jobEntry

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a scheduler with the given misfire grace window.
func New(misfireGrace time.Duration) *Scheduler {
	return &Scheduler{
		misfireGrace: misfireGrace,
		jobs:         make(map[string]*jobEntry),
	}
}

// Register adds a job. Must be called before Start.
func (s *Scheduler) Register(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Name] = &jobEntry{
		job:      job,
		inFlight: make(chan struct{}, 1),
	}
}

// Start launches one ticker goroutine per registered job.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.jobs {
		s.wg.Add(1)
		go s.runLoop(ctx, entry)
		slog.Info("Scheduled job registered",
			"job", entry.job.Name, "interval", entry.job.Interval)
	}
}

// Stop signals every job loop to exit and waits for in-flight runs.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

// TriggerNow runs the named job immediately, respecting single-flight.
// Returns false when the job is unknown or already running.
func (s *Scheduler) TriggerNow(ctx context.Context, name string) bool {
	s.mu.RLock()
	entry, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	select {
	case entry.inFlight <- struct{}{}:
	default:
		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() { <-entry.inFlight }()
		s.execute(ctx, entry)
	}()
	return true
}

// State returns the last-run state of every job.
func (s *Scheduler) State() map[string]RunState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]RunState, len(s.jobs))
	for name, entry := range s.jobs {
		out[name] = entry.state
	}
	return out
}

func (s *Scheduler) runLoop(ctx context.Context, entry *jobEntry) {
	defer s.wg.Done()

	ticker := time.NewTicker(entry.job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case due := <-ticker.C:
			// A tick long past its due time (loop blocked, clock
			// suspended) is dropped rather than run late.
			if s.misfireGrace > 0 && time.Since(due) > s.misfireGrace {
				s.recordSkip(entry)
				slog.Warn("Skipping misfired tick",
					"job", entry.job.Name, "late_by", time.Since(due))
				continue
			}
			select {
			case entry.inFlight <- struct{}{}:
			default:
				s.recordSkip(entry)
				slog.Warn("Skipping tick, previous run still in flight",
					"job", entry.job.Name)
				continue
			}
			// The run goes to its own goroutine so the loop keeps
			// observing ticks while it is in flight; each such tick
			// hits the default branch above and is counted as skipped.
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				defer func() { <-entry.inFlight }()
				s.execute(ctx, entry)
			}()
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, entry *jobEntry) {
	started := time.Now()
	s.mu.Lock()
	entry.state.LastStarted = started
	entry.state.Running = true
	s.mu.Unlock()

	err := entry.job.Fn(ctx)

	s.mu.Lock()
	entry.state.LastFinished = time.Now()
	entry.state.Running = false
	entry.state.LastError = ""
	if err != nil {
		entry.state.LastError = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		slog.Error("Scheduled job failed",
			"job", entry.job.Name, "duration", time.Since(started), "error", err)
		return
	}
	slog.Info("Scheduled job finished",
		"job", entry.job.Name, "duration", time.Since(started))
}

func (s *Scheduler) recordSkip(entry *jobEntry) {
	s.mu.Lock()
	entry.state.SkippedTicks++
	s.mu.Unlock()
}
