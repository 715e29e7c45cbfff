package impl

import (
	"context"
	"log/slog"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/repository"

	"github.com/pkg/errors"
)

// eligibilityScanner decides which users need a port-in reminder. It never writes.
type eligibilityScanner struct {
	userRepo repository.UserRepository
}

func newEligibilityScanner(userRepo repository.UserRepository) *eligibilityScanner {
	return &eligibilityScanner{userRepo: userRepo}
}

// Evaluate returns the decision for one user, or the skip state when there is none.
func (s *eligibilityScanner) Evaluate(ctx context.Context, user *entity.User) (*entity.EligibilityDecision, entity.DispatchState, error) {
	if !user.HasTokens() {
		return nil, entity.DispatchSkippedNoTokens, nil
	}

	orders, err := s.userRepo.FindOrdersByStatus(ctx, user.ID, entity.MonitoredOrderStatuses)
	if err != nil {
		return nil, entity.DispatchErrored, errors.Wrap(err, "failed to load orders")
	}

	order := latestPortInOrder(orders)
	if order == nil {
		return nil, entity.DispatchSkippedNoEligibleOrders, nil
	}

	return &entity.EligibilityDecision{User: user, OrderID: order.ID}, "", nil
}

// Scan evaluates every user and returns the accepted decisions in input order.
// Users whose orders cannot be read are logged and left out.
func (s *eligibilityScanner) Scan(ctx context.Context, users []*entity.User, logger *slog.Logger) []*entity.EligibilityDecision {
	decisions := make([]*entity.EligibilityDecision, 0)
	for _, user := range users {
		decision, _, err := s.Evaluate(ctx, user)
		if err != nil {
			logger.Warn("Failed to evaluate user", slog.String("user_id", user.ID), slog.Any("error", err))

			continue
		}
		if decision != nil {
			decisions = append(decisions, decision)
		}
	}

	return decisions
}

// latestPortInOrder picks the most recently updated order that needs port-in.
// Ties keep the first order seen.
func latestPortInOrder(orders []*entity.Order) *entity.Order {
	var latest *entity.Order
	for _, order := range orders {
		if order == nil || !order.NeedsPortIn() {
			continue
		}
		if latest == nil || order.UpdatedAt.After(latest.UpdatedAt) {
			latest = order
		}
	}

	return latest
}
