package scheduler

import (
	"context"
	"homework_status_bot/internal/app" // For PollingService interface
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler runs the polling service once at start and then on a fixed interval.
// SkipIfStillRunning keeps cycles strictly sequential.
type PollScheduler struct {
	cronEngine  *cron.Cron
	pollService app.PollingService
	logger      *logrus.Entry
	interval    time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func NewPollScheduler(
	pollService app.PollingService,
	logger *logrus.Entry,
	interval time.Duration, // rounded down to whole seconds by cron.Every
) *PollScheduler {
	logger = logger.WithField("component", "scheduler")
	ctx, cancel := context.WithCancel(context.Background())
	return &PollScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local),
			cron.WithLogger(cron.PrintfLogger(logger)),
			cron.WithChain(cron.Recover(cron.PrintfLogger(logger)), cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
		),
		pollService: pollService,
		logger:      logger,
		interval:    interval,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start runs the first cycle synchronously, then hands the loop to cron.
func (s *PollScheduler) Start() {
	s.logger.WithField("interval", s.interval.String()).Info("Starting poll scheduler...")

	s.runCycle()

	s.cronEngine.Schedule(cron.Every(s.interval), cron.FuncJob(s.runCycle))
	s.cronEngine.Start()
	s.logger.Info("Poll scheduler started.")
}

func (s *PollScheduler) runCycle() {
	if s.ctx.Err() != nil {
		return
	}
	started := time.Now()
	s.pollService.RunCycle(s.ctx)
	s.logger.WithField("took", time.Since(started).String()).Debug("Poll cycle finished, sleeping until next tick")
}

// Stop cancels an in-flight request and waits for the running cycle to return.
func (s *PollScheduler) Stop() {
	s.once.Do(func() {
		s.logger.Info("Stopping poll scheduler...")
		s.cancel()
		ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
		<-ctx.Done()               // Wait for graceful shutdown
		s.logger.Info("Poll scheduler gracefully stopped.")
	})
}
