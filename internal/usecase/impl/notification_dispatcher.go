package impl

import (
	"context"
	"log/slog"
	"time"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/repository"
	"linkup/internal/domain/service"
	"linkup/internal/util"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// maxMulticastTokens is the provider limit for one multicast request.
const maxMulticastTokens = 500

// batchDelivery is the result of sending one chunk of tokens.
// It is one of batchSent, batchPartialFailure or batchProviderError.
type batchDelivery interface {
	isBatchDelivery()
}

// batchSent means every token in the chunk accepted the message.
type batchSent struct {
	sent int
}

// batchPartialFailure means the request was accepted but some tokens failed.
type batchPartialFailure struct {
	sent    int
	failed  int
	invalid []string // tokens classified as permanently broken
}

// batchProviderError means the request failed as a whole.
type batchProviderError struct {
	err error
}

func (batchSent) isBatchDelivery()           {}
func (batchPartialFailure) isBatchDelivery() {}
func (batchProviderError) isBatchDelivery()  {}

// notificationDispatcher sends the reminder to one user and reconciles their tokens.
type notificationDispatcher struct {
	userRepo  repository.UserRepository
	notifier  service.NotificationService
	clock     util.Clock
	cooldown  time.Duration
	batchSize int
}

func newNotificationDispatcher(
	userRepo repository.UserRepository,
	notifier service.NotificationService,
	clock util.Clock,
	cooldown time.Duration,
	batchSize int,
) *notificationDispatcher {
	if batchSize <= 0 || batchSize > maxMulticastTokens {
		batchSize = maxMulticastTokens
	}

	return &notificationDispatcher{
		userRepo:  userRepo,
		notifier:  notifier,
		clock:     clock,
		cooldown:  cooldown,
		batchSize: batchSize,
	}
}

// Dispatch delivers the reminder for decision and persists the side effects.
// Persisted writes are mirrored onto decision.User, so a repeated call within
// the cooldown is skipped. Failures are reported in the outcome, never returned.
func (d *notificationDispatcher) Dispatch(
	ctx context.Context,
	decision *entity.EligibilityDecision,
	bypassCooldown bool,
	logger *slog.Logger,
) entity.DispatchOutcome {
	user := decision.User
	logger = logger.With(slog.String("user_id", user.ID), slog.String("order_id", decision.OrderID))

	if !bypassCooldown && user.InCooldown(d.clock.Now(), d.cooldown) {
		logger.Debug("Reminder skipped, user in cooldown", slog.Time("last_sent", *user.LastPortInReminderSent))

		return entity.DispatchOutcome{State: entity.DispatchSkippedCooldown}
	}

	tokens := lo.Uniq(lo.Compact(user.FCMTokens))
	if len(tokens) == 0 {
		return entity.DispatchOutcome{State: entity.DispatchSkippedNoTokens}
	}

	msg := entity.NewPortInReminder(user.ID, decision.OrderID)

	var (
		outcome entity.DispatchOutcome
		invalid []string
	)
	for _, chunk := range lo.Chunk(tokens, d.batchSize) {
		switch result := d.sendBatch(ctx, msg, chunk).(type) {
		case batchSent:
			outcome.Sent += result.sent
		case batchPartialFailure:
			outcome.Sent += result.sent
			outcome.Failed += result.failed
			invalid = append(invalid, result.invalid...)
			logger.Info("Multicast partially failed",
				slog.Int("sent", result.sent),
				slog.Int("failed", result.failed),
				slog.Int("invalid_tokens", len(result.invalid)))
		case batchProviderError:
			if classifyBatchFailure(service.ErrorCodeOf(result.err)) != service.ErrorClassTransientProvider {
				logger.Error("Multicast failed", slog.Any("error", result.err))
				outcome.Failed += len(chunk)
				outcome.Err = errors.Wrap(result.err, "multicast failed")

				continue
			}

			logger.Warn("Multicast failed with unknown error, sending individually", slog.Any("error", result.err))
			sent, failed, fallbackInvalid := d.sendIndividually(ctx, msg, chunk, logger)
			outcome.Sent += sent
			outcome.Failed += failed
			invalid = append(invalid, fallbackInvalid...)
			if sent == 0 {
				outcome.Err = errors.Wrap(result.err, "individual fallback delivered nothing")
			}
		}
	}

	if outcome.Sent > 0 {
		if err := d.userRepo.MarkReminderSent(ctx, user.ID); err != nil {
			logger.Error("Failed to record reminder timestamp", slog.Any("error", err))
			outcome.Err = errors.Wrap(err, "failed to record reminder timestamp")
		} else {
			sentAt := d.clock.Now()
			user.LastPortInReminderSent = &sentAt
			outcome.Notified = true
		}
	}

	if len(invalid) > 0 {
		invalid = lo.Uniq(invalid)
		if err := d.userRepo.RemoveTokens(ctx, user.ID, invalid); err != nil {
			logger.Error("Failed to prune invalid tokens", slog.Int("count", len(invalid)), slog.Any("error", err))
			if outcome.Err == nil {
				outcome.Err = errors.Wrap(err, "failed to prune invalid tokens")
			}
		} else {
			user.FCMTokens = lo.Without(user.FCMTokens, invalid...)
			outcome.PrunedTokens = invalid
			logger.Info("Pruned invalid tokens", slog.Int("count", len(invalid)))
		}
	}

	outcome.State = deliveryState(outcome.Sent, len(tokens))

	return outcome
}

// sendBatch sends msg to one chunk and folds the response into a batchDelivery.
func (d *notificationDispatcher) sendBatch(ctx context.Context, msg *entity.PushMessage, chunk []string) batchDelivery {
	result, err := d.notifier.SendMulticast(ctx, msg, chunk)
	if err != nil {
		return batchProviderError{err: err}
	}
	if result.FailureCount == 0 {
		return batchSent{sent: result.SuccessCount}
	}

	invalid := lo.FilterMap(result.Responses, func(resp service.TokenResult, _ int) (string, bool) {
		if resp.Err == nil {
			return "", false
		}

		return resp.Token, classifyTokenFailure(resp.Err.Code) == service.ErrorClassPermanentToken
	})

	return batchPartialFailure{
		sent:    result.SuccessCount,
		failed:  result.FailureCount,
		invalid: invalid,
	}
}

// sendIndividually sends msg to each token in turn after a failed multicast.
func (d *notificationDispatcher) sendIndividually(
	ctx context.Context,
	msg *entity.PushMessage,
	tokens []string,
	logger *slog.Logger,
) (sent, failed int, invalid []string) {
	for _, token := range tokens {
		err := d.notifier.Send(ctx, msg, token)
		if err == nil {
			sent++

			continue
		}

		failed++
		if classifySingleFailure(service.ErrorCodeOf(err)) == service.ErrorClassPermanentToken {
			invalid = append(invalid, token)
		}
		logger.Warn("Individual send failed",
			slog.String("token", util.TokenPreview(token)),
			slog.String("code", string(service.ErrorCodeOf(err))))
	}

	return sent, failed, invalid
}

func deliveryState(sent, total int) entity.DispatchState {
	switch {
	case sent == 0:
		return entity.DispatchFullyFailed
	case sent < total:
		return entity.DispatchPartiallySent
	default:
		return entity.DispatchFullySent
	}
}
