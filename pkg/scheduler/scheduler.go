package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"

	"taskboard/pkg/logger"
)

// Scheduler wraps gocron for the background jobs this service runs (just
// the orphan sweeper today). Singleton mode keeps a slow sweep from
// overlapping with the next tick.
type Scheduler struct {
	s *gocron.Scheduler
}

func New() *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{s: s}
}

func (s *Scheduler) AddCronJob(name, cronExpr string, task func()) error {
	_, err := s.s.Cron(cronExpr).Tag(name).Do(func() {
		logger.Debug("Running scheduled job", "job", name)
		task()
	})
	return err
}

func (s *Scheduler) Start() {
	s.s.StartAsync()
	logger.Info("Scheduler started")
}

func (s *Scheduler) Stop() {
	s.s.Stop()
	logger.Info("Scheduler stopped")
}
