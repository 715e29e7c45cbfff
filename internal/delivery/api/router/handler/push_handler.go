package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"linkup/config"
	"linkup/internal/delivery/api/response"
	deliverycontext "linkup/internal/delivery/context"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// scheduledTrigger is the optional JSON payload a scheduler job may publish.
type scheduledTrigger struct {
	RequestID string `json:"request_id"`
}

// tokenValidator validates a Google-signed OIDC token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles the scheduled trigger delivered as a Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	reminderUC     usecase.ReminderUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate:   idtoken.Validate,
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
	if scheduler := params.Config.Scheduler; scheduler != nil {
		h.verifyPushAuth = scheduler.VerifyPushAuth
		h.audience = scheduler.PushAudience
	}

	return h
}

// HandlePush runs the reminder job with the cooldown enforced.
// A failed run answers 503 so that Pub/Sub redelivers the trigger.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := deliverycontext.Detach(c.Request().Context())

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("Invalid Pub/Sub token", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrPushUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("Failed to parse push message", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrInvalidPushMessage)
	}

	trigger, err := decodeScheduledTrigger(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("Failed to decode trigger payload", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrInvalidPushMessage)
	}

	requestID := extractRequestID(ctx, &pushMsg, trigger)
	ctx, reqLogger := deliverycontext.WithTrigger(ctx, requestID, h.logger)

	reqLogger.Info("Processing scheduled port-in reminder trigger",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("subscription", pushMsg.Subscription),
	)

	summary, err := h.reminderUC.RunPortInReminders(ctx, usecase.RunOptions{
		Trigger:   entity.TriggerPush,
		RequestID: requestID,
	})
	if err != nil {
		reqLogger.Error("Scheduled port-in reminder run failed", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return response.Success(c, http.StatusOK, reminderSentMessage, summary)
}

// decodeScheduledTrigger decodes the base64 message data; an empty payload is allowed.
func decodeScheduledTrigger(data string) (*scheduledTrigger, error) {
	trigger := &scheduledTrigger{}
	if data == "" {
		return trigger, nil
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 data")
	}

	// Plain-text bodies from scheduler jobs carry no fields.
	if !json.Valid(raw) {
		return trigger, nil
	}
	if err := json.Unmarshal(raw, trigger); err != nil {
		return nil, errors.Wrap(err, "invalid trigger payload")
	}

	return trigger, nil
}

// extractRequestID prefers message attributes, then the payload, then the request context
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, trigger *scheduledTrigger) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if trigger.RequestID != "" {
		return trigger.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
