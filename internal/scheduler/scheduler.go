package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"motorent-backend/internal/jobs"
	"motorent-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.ActivateDueRentals, s.jobs.ActivateDueRentals)
	if err != nil {
		logger.Error("Failed to register ActivateDueRentals job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.SweepLateReturns, s.jobs.SweepLateReturns)
	if err != nil {
		logger.Error("Failed to register SweepLateReturns job", "error", err)
	}
}

// Start begins running scheduled jobs in their own goroutines
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
