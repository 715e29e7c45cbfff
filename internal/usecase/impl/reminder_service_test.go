package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"linkup/config"
	"linkup/internal/domain/entity"
	"linkup/internal/domain/service"
	mockRepo "linkup/internal/mocks/repository"
	mockSvc "linkup/internal/mocks/service"
	"linkup/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reminderServiceFixtures holds all test dependencies for reminder service tests.
type reminderServiceFixtures struct {
	service   usecase.ReminderUsecase
	userRepo  *mockRepo.MockUserRepository
	notifier  *mockSvc.MockNotificationService
	publisher *mockSvc.MockEventPublisher
}

func createTestReminderService(t *testing.T, concurrency int) reminderServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockSvc.NewMockNotificationService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewReminderService(ReminderServiceParams{
		UserRepo:     userRepo,
		Notification: notifier,
		Publisher:    publisher,
		Clock:        fixedClock{now: testNow},
		Config: &config.Config{
			Reminder: &config.ReminderConfig{Cooldown: 24 * time.Hour, Concurrency: concurrency},
		},
		Logger: discardLogger(),
	})

	return reminderServiceFixtures{
		service:   svc,
		userRepo:  userRepo,
		notifier:  notifier,
		publisher: publisher,
	}
}

func pendingPortIn(id string) []*entity.Order {
	return []*entity.Order{{ID: id, Status: entity.OrderStatusPendingPortIn, UpdatedAt: testNow.Add(-time.Hour)}}
}

func TestReminderService_RunPortInReminders_Summary(t *testing.T) {
	fx := createTestReminderService(t, 1)
	ctx := context.Background()

	cooling := newTestUser("cooling", "token-c")
	cooling.LastPortInReminderSent = timePtr(testNow.Add(-time.Hour))

	users := []*entity.User{
		newTestUser("no-tokens"),
		newTestUser("no-orders", "token-a"),
		newTestUser("eligible", "token-b1", "token-b2"),
		cooling,
		newTestUser("broken", "token-d"),
	}

	fx.userRepo.EXPECT().ListUsers(ctx).Return(users, nil)
	fx.userRepo.EXPECT().FindOrdersByStatus(ctx, "no-orders", entity.MonitoredOrderStatuses).Return(nil, nil)
	fx.userRepo.EXPECT().FindOrdersByStatus(ctx, "eligible", entity.MonitoredOrderStatuses).Return(pendingPortIn("o-b"), nil)
	fx.userRepo.EXPECT().FindOrdersByStatus(ctx, "cooling", entity.MonitoredOrderStatuses).Return(pendingPortIn("o-c"), nil)
	fx.userRepo.EXPECT().FindOrdersByStatus(ctx, "broken", entity.MonitoredOrderStatuses).Return(nil, errors.New("unavailable"))

	fx.notifier.EXPECT().
		SendMulticast(ctx, entity.NewPortInReminder("eligible", "o-b"), []string{"token-b1", "token-b2"}).
		Return(&service.MulticastResult{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []service.TokenResult{
				{Token: "token-b1"},
				{Token: "token-b2", Err: sendErr(service.ErrorCodeInvalidToken)},
			},
		}, nil)
	fx.userRepo.EXPECT().MarkReminderSent(ctx, "eligible").Return(nil)
	fx.userRepo.EXPECT().RemoveTokens(ctx, "eligible", []string{"token-b2"}).Return(nil)

	fx.publisher.EXPECT().
		PublishRunCompleted(ctx, mock.AnythingOfType("*service.RunCompletedEvent")).
		Run(func(_ context.Context, event *service.RunCompletedEvent) {
			assert.Equal(t, "req-1", event.RequestID)
			assert.Equal(t, 1, event.Summary.UsersNotified)
		}).
		Return(nil)

	summary, err := fx.service.RunPortInReminders(ctx, usecase.RunOptions{Trigger: entity.TriggerSchedule, RequestID: "req-1"})
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, entity.TriggerSchedule, summary.Trigger)
	assert.Equal(t, 5, summary.UsersScanned)
	assert.Equal(t, 4, summary.UsersWithTokens)
	assert.Equal(t, 2, summary.UsersEligible)
	assert.Equal(t, 1, summary.UsersNotified)
	assert.Equal(t, 1, summary.SkippedNoTokens)
	assert.Equal(t, 1, summary.SkippedNoEligibleOrders)
	assert.Equal(t, 1, summary.SkippedCooldown)
	assert.Equal(t, 1, summary.NotificationsSent)
	assert.Equal(t, 1, summary.DeliveryFailures)
	assert.Equal(t, 1, summary.TokensPruned)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, testNow, summary.StartedAt)
	assert.Equal(t, testNow, summary.FinishedAt)
}

func TestReminderService_RunPortInReminders_ListUsersFails(t *testing.T) {
	fx := createTestReminderService(t, 1)
	ctx := context.Background()

	fx.userRepo.EXPECT().ListUsers(ctx).Return(nil, errors.New("permission denied"))

	summary, err := fx.service.RunPortInReminders(ctx, usecase.RunOptions{Trigger: entity.TriggerManual, BypassCooldown: true})
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestReminderService_RunPortInReminders_UserErrorDoesNotAbort(t *testing.T) {
	fx := createTestReminderService(t, 1)
	ctx := context.Background()

	users := []*entity.User{
		newTestUser("first", "token-a"),
		newTestUser("second", "token-b"),
	}

	fx.userRepo.EXPECT().ListUsers(ctx).Return(users, nil)
	fx.userRepo.EXPECT().FindOrdersByStatus(ctx, "first", entity.MonitoredOrderStatuses).Return(pendingPortIn("o1"), nil)
	fx.userRepo.EXPECT().FindOrdersByStatus(ctx, "second", entity.MonitoredOrderStatuses).Return(pendingPortIn("o2"), nil)
	fx.notifier.EXPECT().
		SendMulticast(ctx, mock.Anything, []string{"token-a"}).
		Return(nil, sendErr(service.ErrorCodeQuotaExceeded))
	fx.notifier.EXPECT().
		SendMulticast(ctx, mock.Anything, []string{"token-b"}).
		Return(&service.MulticastResult{SuccessCount: 1, Responses: []service.TokenResult{{Token: "token-b"}}}, nil)
	fx.userRepo.EXPECT().MarkReminderSent(ctx, "second").Return(nil)
	fx.publisher.EXPECT().PublishRunCompleted(ctx, mock.Anything).Return(nil)

	summary, err := fx.service.RunPortInReminders(ctx, usecase.RunOptions{Trigger: entity.TriggerSchedule})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 1, summary.UsersNotified)
	assert.Equal(t, 1, summary.NotificationsSent)
	assert.Equal(t, 1, summary.DeliveryFailures)
}

func TestReminderService_RunPortInReminders_PublishFailureIgnored(t *testing.T) {
	fx := createTestReminderService(t, 1)
	ctx := context.Background()

	fx.userRepo.EXPECT().ListUsers(ctx).Return([]*entity.User{}, nil)
	fx.publisher.EXPECT().PublishRunCompleted(ctx, mock.Anything).Return(errors.New("topic not found"))

	summary, err := fx.service.RunPortInReminders(ctx, usecase.RunOptions{Trigger: entity.TriggerCLI})
	require.NoError(t, err)
	assert.Zero(t, summary.UsersScanned)
}

func TestReminderService_RunPortInReminders_OneSendWithinCooldown(t *testing.T) {
	fx := createTestReminderService(t, 1)
	ctx := context.Background()

	var lastSent *time.Time
	fx.userRepo.EXPECT().
		ListUsers(ctx).
		RunAndReturn(func(context.Context) ([]*entity.User, error) {
			user := newTestUser("u1", "token-a")
			user.LastPortInReminderSent = lastSent

			return []*entity.User{user}, nil
		}).
		Times(2)
	fx.userRepo.EXPECT().FindOrdersByStatus(ctx, "u1", entity.MonitoredOrderStatuses).Return(pendingPortIn("o1"), nil).Times(2)
	fx.notifier.EXPECT().
		SendMulticast(ctx, mock.Anything, []string{"token-a"}).
		Return(&service.MulticastResult{SuccessCount: 1, Responses: []service.TokenResult{{Token: "token-a"}}}, nil).
		Once()
	fx.userRepo.EXPECT().
		MarkReminderSent(ctx, "u1").
		RunAndReturn(func(context.Context, string) error {
			lastSent = timePtr(testNow)

			return nil
		}).
		Once()
	fx.publisher.EXPECT().PublishRunCompleted(ctx, mock.Anything).Return(nil).Times(2)

	first, err := fx.service.RunPortInReminders(ctx, usecase.RunOptions{Trigger: entity.TriggerSchedule})
	require.NoError(t, err)
	second, err := fx.service.RunPortInReminders(ctx, usecase.RunOptions{Trigger: entity.TriggerSchedule})
	require.NoError(t, err)

	assert.Equal(t, 1, first.NotificationsSent)
	assert.Equal(t, 0, second.NotificationsSent)
	assert.Equal(t, 1, second.SkippedCooldown)
}

func TestReminderService_RunPortInReminders_Concurrent(t *testing.T) {
	fx := createTestReminderService(t, 4)
	ctx := context.Background()

	ids := []string{"u1", "u2", "u3", "u4", "u5", "u6"}
	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, newTestUser(id, "token-"+id))
	}

	var (
		mu       sync.Mutex
		notified []string
	)
	fx.userRepo.EXPECT().ListUsers(ctx).Return(users, nil)
	fx.userRepo.EXPECT().
		FindOrdersByStatus(ctx, mock.AnythingOfType("string"), entity.MonitoredOrderStatuses).
		Return(pendingPortIn("o1"), nil).
		Times(len(ids))
	fx.notifier.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(&service.MulticastResult{SuccessCount: 1}, nil).
		Times(len(ids))
	fx.userRepo.EXPECT().
		MarkReminderSent(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, userID string) error {
			mu.Lock()
			defer mu.Unlock()
			notified = append(notified, userID)

			return nil
		}).
		Times(len(ids))
	fx.publisher.EXPECT().PublishRunCompleted(ctx, mock.Anything).Return(nil)

	summary, err := fx.service.RunPortInReminders(ctx, usecase.RunOptions{Trigger: entity.TriggerSchedule})
	require.NoError(t, err)
	assert.Equal(t, len(ids), summary.UsersNotified)
	assert.Equal(t, len(ids), summary.NotificationsSent)
	assert.ElementsMatch(t, ids, notified)
}

func TestReminderService_ScanEligibleUsers(t *testing.T) {
	fx := createTestReminderService(t, 1)
	ctx := context.Background()

	cooling := newTestUser("cooling", "token-c")
	cooling.LastPortInReminderSent = timePtr(testNow.Add(-time.Hour))

	fx.userRepo.EXPECT().ListUsers(ctx).Return([]*entity.User{newTestUser("no-tokens"), cooling}, nil)
	fx.userRepo.EXPECT().FindOrdersByStatus(ctx, "cooling", entity.MonitoredOrderStatuses).Return(pendingPortIn("o-c"), nil)

	decisions, err := fx.service.ScanEligibleUsers(ctx)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, "cooling", decisions[0].User.ID)
	assert.Equal(t, "o-c", decisions[0].OrderID)
}

func TestReminderService_ScanEligibleUsers_ListUsersFails(t *testing.T) {
	fx := createTestReminderService(t, 1)
	ctx := context.Background()

	fx.userRepo.EXPECT().ListUsers(ctx).Return(nil, errors.New("unauthenticated"))

	decisions, err := fx.service.ScanEligibleUsers(ctx)
	require.Error(t, err)
	assert.Nil(t, decisions)
}
