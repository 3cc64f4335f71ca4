package scheduler

import (
	"context"
	"fmt"
	"time"

	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	l1_service "portfoliosim/internal/service/l1"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Job interface {
	Run(ctx context.Context) error
	Name() string
}

// Scheduler runs jobs on cron specs in UTC.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		log:  log.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

// AddJob registers job on a standard five field spec, e.g. "0 21 * * 1-5"
// or "@daily".
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.RunNow(job); err != nil {
			s.log.Errorw("job failed", "job", job.Name(), "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s on %q: %w", job.Name(), schedule, err)
	}

	s.log.Infow("job registered", "schedule", schedule, "job", job.Name())
	return nil
}

func (s *Scheduler) RunNow(job Job) error {
	lg := s.log.With("job", job.Name())
	profile, endProfile := domain.NewProfile()
	ctx := domain.WithProfile(logger.WithLogger(context.Background(), lg), profile)

	err := job.Run(ctx)
	endProfile()

	fields := append([]any{"durationMs", *profile.TotalMs, "failed", err != nil}, profile.LogFields()...)
	lg.Infow("job finished", fields...)
	return err
}

// SimulationJob advances simulated prices by a fixed window each run.
type SimulationJob struct {
	SimulationService l1_service.SimulationService
	Amount            int
	Unit              string
}

func NewDailySimulationJob(simulationService l1_service.SimulationService) SimulationJob {
	return SimulationJob{
		SimulationService: simulationService,
		Amount:            1,
		Unit:              "days",
	}
}

func (j SimulationJob) Name() string {
	return "simulate-prices"
}

func (j SimulationJob) Run(ctx context.Context) error {
	_, err := j.SimulationService.SimulateForward(ctx, j.Amount, j.Unit)
	return err
}
