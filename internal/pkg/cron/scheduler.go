// Package cron runs the back office's periodic sweeps in-process. A fixed
// interval per job is enough here; the jobs are idempotent, so a missed or
// doubled tick is harmless.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on fixed intervals. Each job fires once at
// Start and then on every tick until Stop.
type Scheduler struct {
	jobs   []job
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	s.logger.Info("job registered", "job", name, "interval", interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.run(j)
	}
	s.logger.Info("scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) run(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.execute(j)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(j)
		}
	}
}

func (s *Scheduler) execute(j job) {
	start := time.Now()
	if err := j.fn(s.ctx); err != nil {
		s.logger.Error("job failed", "job", j.name, "error", err, "duration", time.Since(start))
		return
	}
	s.logger.Debug("job completed", "job", j.name, "duration", time.Since(start))
}
