package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"linkup/internal/domain/entity"
	mockRepo "linkup/internal/mocks/repository"
	mockUsecase "linkup/internal/mocks/usecase"
	"linkup/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunReminders_PrintsSummary(t *testing.T) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().
		RunPortInReminders(mock.Anything, mock.MatchedBy(func(opts usecase.RunOptions) bool {
			return opts.Trigger == entity.TriggerCLI && opts.BypassCooldown
		})).
		Return(&entity.RunSummary{RunID: "run-1", NotificationsSent: 4}, nil)

	var out bytes.Buffer
	require.NoError(t, runReminders(context.Background(), reminderUC, true, &out))

	var summary entity.RunSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, 4, summary.NotificationsSent)
}

func TestRunReminders_Error(t *testing.T) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().RunPortInReminders(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	var out bytes.Buffer
	assert.Error(t, runReminders(context.Background(), reminderUC, false, &out))
	assert.Empty(t, out.String())
}

func TestScanEligible(t *testing.T) {
	sent := time.Date(2025, 3, 13, 10, 0, 0, 0, time.UTC)
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().ScanEligibleUsers(mock.Anything).Return([]*entity.EligibilityDecision{
		{User: &entity.User{ID: "u1", FCMTokens: []string{"a", "b"}}, OrderID: "o1"},
		{User: &entity.User{ID: "u2", FCMTokens: []string{"c"}, LastPortInReminderSent: &sent}, OrderID: "o2"},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, scanEligible(context.Background(), reminderUC, &out))

	assert.Contains(t, out.String(), "u1")
	assert.Contains(t, out.String(), "never")
	assert.Contains(t, out.String(), "2025-03-13T10:00:00Z")
	assert.Contains(t, out.String(), "2 eligible user(s)")
}

func TestCheckStore(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ID: "u1", FCMTokens: []string{"a"}},
		{ID: "u2"},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, checkStore(context.Background(), userRepo, &out))
	assert.Equal(t, "ok: 2 users, 1 with device tokens\n", out.String())
}
