package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"linkup/config"
	deliverycontext "linkup/internal/delivery/context"
	"linkup/internal/domain/entity"
	mockUsecase "linkup/internal/mocks/usecase"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, scheduler *config.SchedulerConfig) (*PushHandler, *mockUsecase.MockReminderUsecase) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     &config.Config{Scheduler: scheduler},
		Logger:     testLogger(),
		ReminderUC: reminderUC,
	})

	return h, reminderUC
}

func pushRequest(data string, attributes string) *http.Request {
	body := `{"message":{"data":"` + data + `","messageId":"m-1"` + attributes + `},"subscription":"projects/p/subscriptions/s"}`
	req := httptest.NewRequest(http.MethodPost, "/pubsub/port-in-reminder", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_RunsWithCooldown(t *testing.T) {
	h, reminderUC := newTestPushHandler(t, nil)

	reminderUC.EXPECT().
		RunPortInReminders(mock.Anything, usecase.RunOptions{Trigger: entity.TriggerPush, RequestID: "req-attr"}).
		Return(&entity.RunSummary{}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	req := pushRequest("", `,"attributes":{"request_id":"req-attr"}`)

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RequestIDFromPayload(t *testing.T) {
	h, reminderUC := newTestPushHandler(t, nil)

	reminderUC.EXPECT().
		RunPortInReminders(mock.Anything, usecase.RunOptions{Trigger: entity.TriggerPush, RequestID: "req-payload"}).
		Return(&entity.RunSummary{}, nil)

	data := base64.StdEncoding.EncodeToString([]byte(`{"request_id":"req-payload"}`))
	e := echo.New()
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(pushRequest(data, ""), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_PlainTextPayload(t *testing.T) {
	h, reminderUC := newTestPushHandler(t, nil)

	reminderUC.EXPECT().
		RunPortInReminders(mock.Anything, mock.MatchedBy(func(opts usecase.RunOptions) bool {
			return opts.Trigger == entity.TriggerPush && !opts.BypassCooldown && opts.RequestID != ""
		})).
		Return(&entity.RunSummary{}, nil)

	data := base64.StdEncoding.EncodeToString([]byte("daily"))
	e := echo.New()
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(pushRequest(data, ""), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidData(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	e := echo.New()
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(pushRequest("%%%", ""), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_RunFailsIsRetryable(t *testing.T) {
	h, reminderUC := newTestPushHandler(t, nil)

	reminderUC.EXPECT().
		RunPortInReminders(mock.Anything, mock.Anything).
		Return(nil, errors.New("unavailable"))

	e := echo.New()
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(pushRequest("", ""), rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MissingToken(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.SchedulerConfig{VerifyPushAuth: true})

	e := echo.New()
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(pushRequest("", ""), rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_VerifyPubSubToken(t *testing.T) {
	tests := []struct {
		name      string
		audience  string
		issuer    string
		claims    map[string]any
		validErr  error
		wantAud   string
		expectErr bool
	}{
		{
			name:    "derived audience",
			issuer:  "https://accounts.google.com",
			wantAud: "http://example.com/pubsub/port-in-reminder",
		},
		{
			name:     "configured audience",
			audience: "https://reminder.example.com/pubsub/port-in-reminder",
			issuer:   "accounts.google.com",
			wantAud:  "https://reminder.example.com/pubsub/port-in-reminder",
		},
		{
			name:      "wrong issuer",
			issuer:    "https://evil.example.com",
			wantAud:   "http://example.com/pubsub/port-in-reminder",
			expectErr: true,
		},
		{
			name:      "unverified email",
			issuer:    "accounts.google.com",
			claims:    map[string]any{"email_verified": false},
			wantAud:   "http://example.com/pubsub/port-in-reminder",
			expectErr: true,
		},
		{
			name:      "invalid signature",
			validErr:  errors.New("invalid signature"),
			wantAud:   "http://example.com/pubsub/port-in-reminder",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, &config.SchedulerConfig{VerifyPushAuth: true, PushAudience: tt.audience})
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "signed-token", token)
				assert.Equal(t, tt.wantAud, audience)
				if tt.validErr != nil {
					return nil, tt.validErr
				}

				return &idtoken.Payload{Issuer: tt.issuer, Claims: tt.claims}, nil
			}

			req := pushRequest("", "")
			req.Header.Set("Authorization", "Bearer signed-token")

			err := h.verifyPubSubToken(req)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPushHandler_HandlePush_AckDeadlineDoesNotCancelRun(t *testing.T) {
	h, reminderUC := newTestPushHandler(t, nil)

	reminderUC.EXPECT().
		RunPortInReminders(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, opts usecase.RunOptions) (*entity.RunSummary, error) {
			assert.NoError(t, ctx.Err())
			assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))

			return &entity.RunSummary{}, nil
		})

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	e := echo.New()
	rec := httptest.NewRecorder()
	req := pushRequest("", `,"attributes":{"request_id":"req-attr"}`).WithContext(reqCtx)

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
