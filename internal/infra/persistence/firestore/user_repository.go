// Package firestore contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"linkup/internal/domain/constants"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *firestore.Client
	logger *slog.Logger
	retry  retryPolicy
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client, logger *slog.Logger) repository.UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
		retry:  defaultRetryPolicy(),
	}
}

// ListUsers reads the whole users collection.
func (repo *userRepository) ListUsers(ctx context.Context) ([]*entity.User, error) {
	iter := repo.client.Collection(constants.UsersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
		}

		doc := model.UserDocument{ID: snapshot.Ref.ID, Data: snapshot.Data()}
		users = append(users, doc.ToDomain())
	}

	repo.logger.Debug("Listed users", slog.Int("count", len(users)))

	return users, nil
}

// FindOrdersByStatus reads the user's orders whose status is in statuses.
func (repo *userRepository) FindOrdersByStatus(ctx context.Context, userID string, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	values := lo.Map(statuses, func(s entity.OrderStatus, _ int) string { return string(s) })

	snapshots, err := repo.userDoc(userID).
		Collection(constants.OrdersCollection).
		Where(model.OrderFieldStatus, "in", values).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(snapshots))
	for _, snapshot := range snapshots {
		doc := model.OrderDocument{ID: snapshot.Ref.ID, UserID: userID, Data: snapshot.Data()}
		orders = append(orders, doc.ToDomain())
	}

	return orders, nil
}

// MarkReminderSent sets lastPortInReminderSent to the server time.
func (repo *userRepository) MarkReminderSent(ctx context.Context, userID string) error {
	return repo.update(ctx, userID, "failed to mark reminder sent", []firestore.Update{
		{Path: model.UserFieldLastPortInReminderSent, Value: firestore.ServerTimestamp},
	})
}

// RemoveTokens atomically removes tokens from fcmTokens.
func (repo *userRepository) RemoveTokens(ctx context.Context, userID string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	return repo.update(ctx, userID, "failed to remove tokens", []firestore.Update{
		{Path: model.UserFieldFCMTokens, Value: firestore.ArrayRemove(lo.ToAnySlice(tokens)...)},
	})
}

func (repo *userRepository) update(ctx context.Context, userID, details string, updates []firestore.Update) error {
	err := repo.retry.do(ctx, func(ctx context.Context) error {
		_, err := repo.userDoc(userID).Update(ctx, updates)

		return err
	})
	if err == nil {
		return nil
	}

	if status.Code(errors.Cause(err)) == codes.NotFound {
		return domainerrors.ErrUserNotFound.WrapMessage(userID)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func (repo *userRepository) userDoc(userID string) *firestore.DocumentRef {
	return repo.client.Collection(constants.UsersCollection).Doc(userID)
}
