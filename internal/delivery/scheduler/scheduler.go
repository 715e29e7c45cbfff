// Package scheduler fires the port-in reminder job once a day at a fixed time.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"linkup/config"
	"linkup/internal/delivery"
	deliverycontext "linkup/internal/delivery/context"
	"linkup/internal/domain/entity"
	"linkup/internal/domain/lifecycle"
	"linkup/internal/usecase"
	"linkup/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dailyAtLayout = "15:04"

type dailyScheduler struct {
	enabled    bool
	hour       int
	minute     int
	location   *time.Location
	reminderUC usecase.ReminderUsecase
	clock      util.Clock
	logger     *slog.Logger

	cancel  context.CancelFunc
	ctx     context.Context
	mu      sync.Mutex
	stopped bool
	running sync.WaitGroup
}

// SchedulerParams holds dependencies for the daily scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	Clock      util.Clock
	ReminderUC usecase.ReminderUsecase
}

// NewScheduler creates the in-process daily trigger
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s, err := newDailyScheduler(params.Cfg.Scheduler, params.ReminderUC, params.Clock, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newDailyScheduler(
	cfg *config.SchedulerConfig,
	reminderUC usecase.ReminderUsecase,
	clock util.Clock,
	logger *slog.Logger,
) (*dailyScheduler, error) {
	s := &dailyScheduler{
		location:   time.UTC,
		reminderUC: reminderUC,
		clock:      clock,
		logger:     logger,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	if cfg == nil || !cfg.Enabled {
		return s, nil
	}
	s.enabled = true

	at, err := time.Parse(dailyAtLayout, cfg.DailyAt)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scheduler.dailyAt %q", cfg.DailyAt)
	}
	s.hour, s.minute = at.Hour(), at.Minute()

	if cfg.TimeZone != "" {
		s.location, err = time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid scheduler.timeZone %q", cfg.TimeZone)
		}
	}

	return s, nil
}

// Serve blocks until the application stops, running the job at every daily tick.
func (s *dailyScheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Daily port-in reminder trigger disabled")

		return nil
	}

	if !s.register() {
		return nil
	}
	defer s.running.Done()

	for {
		now := s.clock.Now()
		next := nextRun(now, s.hour, s.minute, s.location)
		s.logger.Info("Next port-in reminder run scheduled", slog.Time("at", next))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-s.ctx.Done():
			timer.Stop()

			return nil
		case <-ctx.Done():
			timer.Stop()

			return nil
		case <-timer.C:
			s.runOnce(s.ctx)
		}
	}
}

// runOnce runs the job with the cooldown enforced; failures are logged and the schedule continues.
func (s *dailyScheduler) runOnce(ctx context.Context) {
	requestID := uuid.New().String()
	ctx, logger := deliverycontext.WithTrigger(ctx, requestID, s.logger)

	if _, err := s.reminderUC.RunPortInReminders(ctx, usecase.RunOptions{
		Trigger:   entity.TriggerSchedule,
		RequestID: requestID,
	}); err != nil {
		logger.Error("Scheduled port-in reminder run failed", slog.Any("error", err))
	}
}

// register adds Serve to the running set unless stop has already begun.
func (s *dailyScheduler) register() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}
	s.running.Add(1)

	return true
}

func (s *dailyScheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.running.Wait()
		close(done)
	}()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "daily scheduler did not stop in time")
	}
}

// nextRun returns the first hour:minute in loc strictly after now.
func nextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}

	return next
}
