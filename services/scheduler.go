package services

import (
	"context"
	"log/slog"
	"time"

	cron "github.com/robfig/cron/v3"
)

// Job is a scheduled unit of work.
type Job func(ctx context.Context) error

// Scheduler runs jobs on cron specs. Each run gets its own timeout.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  *slog.Logger
}

func NewScheduler(timeout time.Duration, logger *slog.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		timeout: timeout,
		logger:  logger,
	}
}

// Add registers job under name. An empty spec leaves the job disabled.
func (s *Scheduler) Add(name, spec string, job Job) error {
	if spec == "" {
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		start := time.Now()
		if err := job(ctx); err != nil {
			s.logger.Error("scheduled job failed", "job", name, "error", err)
			return
		}
		s.logger.Info("scheduled job done", "job", name, "elapsed", time.Since(start))
	})
	if err != nil {
		return err
	}
	s.logger.Info("scheduled job registered", "job", name, "spec", spec)
	return nil
}

// Len reports the number of registered jobs.
func (s *Scheduler) Len() int { return len(s.cron.Entries()) }

func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts scheduling and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
