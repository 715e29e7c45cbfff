package repository

import (
	"context"

	"linkup/internal/domain/entity"
)

// UserRepository defines the document store operations used by the reminder job.
type UserRepository interface {
	// ListUsers returns every user document with malformed tokens removed.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// FindOrdersByStatus returns the user's orders whose status is one of statuses.
	FindOrdersByStatus(ctx context.Context, userID string, statuses []entity.OrderStatus) ([]*entity.Order, error)

	// MarkReminderSent refreshes the user's last reminder timestamp.
	MarkReminderSent(ctx context.Context, userID string) error

	// RemoveTokens removes the given tokens from the user's token list.
	RemoveTokens(ctx context.Context, userID string, tokens []string) error
}
