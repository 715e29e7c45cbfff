package firestore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"linkup/internal/domain/constants"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorRepository connects to the Firestore emulator, skipping when it is not running.
func newEmulatorRepository(t *testing.T) (*userRepository, *firestore.Client) {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "demo-linkup")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	repo, ok := NewUserRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil))).(*userRepository)
	require.True(t, ok)

	return repo, client
}

func seedUser(t *testing.T, client *firestore.Client, data map[string]any, orders map[string]map[string]any) string {
	t.Helper()
	ctx := context.Background()

	userID := "it-" + uuid.New().String()
	userRef := client.Collection(constants.UsersCollection).Doc(userID)
	_, err := userRef.Set(ctx, data)
	require.NoError(t, err)

	for orderID, order := range orders {
		_, err := userRef.Collection(constants.OrdersCollection).Doc(orderID).Set(ctx, order)
		require.NoError(t, err)
	}

	return userID
}

func TestUserRepository_Integration_FindOrdersByStatus(t *testing.T) {
	repo, client := newEmulatorRepository(t)
	ctx := context.Background()

	updated := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := seedUser(t, client, map[string]any{"fcmTokens": []any{"token-a"}}, map[string]map[string]any{
		"o1": {"status": "pending_port_in", "updatedAt": updated},
		"o2": {"status": "draft", "portInSkipped": true, "billingCompleted": "yes"},
		"o3": {"status": "completed"},
	})

	orders, err := repo.FindOrdersByStatus(ctx, userID, entity.MonitoredOrderStatuses)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	byID := map[string]*entity.Order{}
	for _, order := range orders {
		byID[order.ID] = order
	}
	assert.True(t, byID["o1"].NeedsPortIn())
	assert.True(t, updated.Equal(byID["o1"].UpdatedAt))
	assert.False(t, byID["o2"].BillingCompleted)
	assert.False(t, byID["o2"].NeedsPortIn())
}

func TestUserRepository_Integration_MarkAndPrune(t *testing.T) {
	repo, client := newEmulatorRepository(t)
	ctx := context.Background()

	userID := seedUser(t, client, map[string]any{"fcmTokens": []any{"token-a", "token-b", "token-c"}}, nil)

	require.NoError(t, repo.MarkReminderSent(ctx, userID))
	require.NoError(t, repo.RemoveTokens(ctx, userID, []string{"token-b"}))

	snapshot, err := client.Collection(constants.UsersCollection).Doc(userID).Get(ctx)
	require.NoError(t, err)

	assert.ElementsMatch(t, []any{"token-a", "token-c"}, snapshot.Data()["fcmTokens"])
	sent, ok := snapshot.Data()["lastPortInReminderSent"].(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), sent, time.Minute)
}

func TestUserRepository_Integration_UpdateMissingUser(t *testing.T) {
	repo, _ := newEmulatorRepository(t)

	err := repo.MarkReminderSent(context.Background(), "it-missing-"+uuid.New().String())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
