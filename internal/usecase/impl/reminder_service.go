package impl

import (
	"context"
	"log/slog"
	"time"

	"linkup/config"
	deliverycontext "linkup/internal/delivery/context"
	"linkup/internal/domain/entity"
	"linkup/internal/domain/repository"
	"linkup/internal/domain/service"
	"linkup/internal/usecase"
	"linkup/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultReminderCooldown = 24 * time.Hour

type reminderService struct {
	userRepo   repository.UserRepository
	publisher  service.EventPublisher
	scanner    *eligibilityScanner
	dispatcher *notificationDispatcher
	clock      util.Clock
	workers    int
	logger     *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Notification service.NotificationService
	Publisher    service.EventPublisher
	Clock        util.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReminderService creates the port-in reminder job
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	cooldown := defaultReminderCooldown
	workers := 1
	batchSize := maxMulticastTokens
	if cfg := params.Config.Reminder; cfg != nil {
		if cfg.Cooldown > 0 {
			cooldown = cfg.Cooldown
		}
		if cfg.Concurrency > 0 {
			workers = cfg.Concurrency
		}
		if cfg.BatchSize > 0 {
			batchSize = cfg.BatchSize
		}
	}

	return &reminderService{
		userRepo:   params.UserRepo,
		publisher:  params.Publisher,
		scanner:    newEligibilityScanner(params.UserRepo),
		dispatcher: newNotificationDispatcher(params.UserRepo, params.Notification, params.Clock, cooldown, batchSize),
		clock:      params.Clock,
		workers:    workers,
		logger:     params.Logger,
	}
}

// RunPortInReminders runs one scan-and-send pass over every user
func (s *reminderService) RunPortInReminders(ctx context.Context, opts usecase.RunOptions) (*entity.RunSummary, error) {
	summary := &entity.RunSummary{
		RunID:          uuid.New().String(),
		Trigger:        opts.Trigger,
		BypassCooldown: opts.BypassCooldown,
		StartedAt:      s.clock.Now(),
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("run_id", summary.RunID),
		slog.String("trigger", string(opts.Trigger)),
	)
	logger.Info("Starting port-in reminder run", slog.Bool("bypass_cooldown", opts.BypassCooldown))

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		logger.Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	outcomes := make([]entity.DispatchOutcome, len(users))
	group := new(errgroup.Group)
	group.SetLimit(s.workers)
	for i, user := range users {
		group.Go(func() error {
			outcomes[i] = s.processUser(ctx, user, opts.BypassCooldown, logger)

			return nil
		})
	}
	// Workers never return errors; failures are carried in the outcomes.
	_ = group.Wait()

	summary.UsersScanned = len(users)
	for _, outcome := range outcomes {
		summary.Add(outcome)
	}
	summary.FinishedAt = s.clock.Now()

	logger.Info("Port-in reminder run completed",
		slog.Int("users_scanned", summary.UsersScanned),
		slog.Int("users_eligible", summary.UsersEligible),
		slog.Int("users_notified", summary.UsersNotified),
		slog.Int("skipped_cooldown", summary.SkippedCooldown),
		slog.Int("notifications_sent", summary.NotificationsSent),
		slog.Int("delivery_failures", summary.DeliveryFailures),
		slog.Int("tokens_pruned", summary.TokensPruned),
		slog.Int("errors", summary.Errors),
		slog.String("duration", util.FormatDuration(summary.FinishedAt.Sub(summary.StartedAt))),
	)

	s.publishRunCompleted(ctx, opts.RequestID, summary, logger)

	return summary, nil
}

// ScanEligibleUsers lists the users a run would remind, ignoring the cooldown
func (s *reminderService) ScanEligibleUsers(ctx context.Context) ([]*entity.EligibilityDecision, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return s.scanner.Scan(ctx, users, logger), nil
}

// processUser evaluates and, when eligible, dispatches to a single user.
func (s *reminderService) processUser(
	ctx context.Context,
	user *entity.User,
	bypassCooldown bool,
	logger *slog.Logger,
) entity.DispatchOutcome {
	if err := ctx.Err(); err != nil {
		return entity.DispatchOutcome{State: entity.DispatchErrored, Err: err}
	}

	decision, state, err := s.scanner.Evaluate(ctx, user)
	if err != nil {
		logger.Error("Failed to evaluate user", slog.String("user_id", user.ID), slog.Any("error", err))

		return entity.DispatchOutcome{State: entity.DispatchErrored, Err: err}
	}
	if decision == nil {
		logger.Debug("User skipped", slog.String("user_id", user.ID), slog.String("state", string(state)))

		return entity.DispatchOutcome{State: state}
	}

	outcome := s.dispatcher.Dispatch(ctx, decision, bypassCooldown, logger)
	if outcome.State.Skipped() {
		logger.Debug("User skipped", slog.String("user_id", user.ID), slog.String("state", string(outcome.State)))
	}

	return outcome
}

func (s *reminderService) publishRunCompleted(ctx context.Context, requestID string, summary *entity.RunSummary, logger *slog.Logger) {
	if s.publisher == nil {
		return
	}

	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	event := &service.RunCompletedEvent{
		RequestID: requestID,
		Summary:   summary,
	}
	if err := s.publisher.PublishRunCompleted(ctx, event); err != nil {
		logger.Warn("Failed to publish run completed event", slog.Any("error", err))
	}
}
