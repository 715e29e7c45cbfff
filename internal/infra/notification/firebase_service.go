package notification

import (
	"context"
	"log/slog"

	"linkup/config"
	"linkup/internal/domain/entity"
	"linkup/internal/domain/service"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// maxMulticastTokens is the FCM limit of tokens per multicast request
const maxMulticastTokens = 500

// messagingClient is the subset of *messaging.Client used here
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client  messagingClient
	limiter *rate.Limiter
	logger  *slog.Logger
}

// FirebaseServiceParams holds dependencies for the FCM gateway, injected by Fx
type FirebaseServiceParams struct {
	fx.In

	Client *messaging.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(params FirebaseServiceParams) service.NotificationService {
	return newFirebaseService(params.Client, params.Config.Reminder.SendRatePerSecond, params.Logger)
}

func newFirebaseService(client messagingClient, ratePerSecond float64, logger *slog.Logger) *firebaseService {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if ratePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSecond), max(1, int(ratePerSecond)))
	}

	return &firebaseService{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// Send sends a push notification to a single device token
func (s *firebaseService) Send(ctx context.Context, msg *entity.PushMessage, token string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return &service.SendError{Code: service.ErrorCodeOther, Err: errors.WithStack(err)}
	}

	message := &messaging.Message{
		Token:        token,
		Notification: toNotification(msg),
		Data:         msg.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return &service.SendError{Code: classify(err), Err: errors.WithStack(err)}
	}

	return nil
}

// SendMulticast sends one push notification to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendMulticast(ctx context.Context, msg *entity.PushMessage, tokens []string) (*service.MulticastResult, error) {
	if len(tokens) == 0 {
		return &service.MulticastResult{}, nil
	}

	if len(tokens) > maxMulticastTokens {
		return nil, &service.SendError{
			Code: service.ErrorCodeOther,
			Err:  errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens),
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &service.SendError{Code: service.ErrorCodeOther, Err: errors.WithStack(err)}
	}

	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: toNotification(msg),
		Data:         msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, &service.SendError{Code: classify(err), Err: errors.Wrap(err, "failed to send multicast notification")}
	}

	result := &service.MulticastResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Responses:    make([]service.TokenResult, len(tokens)),
	}

	for idx, token := range tokens {
		result.Responses[idx] = service.TokenResult{Token: token}

		if idx >= len(response.Responses) {
			// A short response would silently count missing tokens as delivered.
			result.Responses[idx].Err = &service.SendError{
				Code: service.ErrorCodeOther,
				Err:  errors.New("missing response for token"),
			}

			continue
		}

		if sendResponse := response.Responses[idx]; sendResponse != nil && !sendResponse.Success {
			result.Responses[idx].Err = &service.SendError{Code: classify(sendResponse.Error), Err: sendResponse.Error}
		}
	}

	if len(response.Responses) < len(tokens) {
		s.logger.Warn("[FCM] Multicast response shorter than request",
			slog.Int("tokens", len(tokens)),
			slog.Int("responses", len(response.Responses)),
		)
		result.FailureCount += len(tokens) - len(response.Responses)
	}

	return result, nil
}

func toNotification(msg *entity.PushMessage) *messaging.Notification {
	return &messaging.Notification{
		Title: msg.Title,
		Body:  msg.Body,
	}
}

// classify maps an FCM error onto a provider-neutral code
func classify(err error) service.ErrorCode {
	switch {
	case err == nil:
		return ""
	case messaging.IsUnregistered(err):
		return service.ErrorCodeUnregistered
	case messaging.IsInvalidArgument(err):
		return service.ErrorCodeInvalidToken
	case messaging.IsQuotaExceeded(err):
		return service.ErrorCodeQuotaExceeded
	case messaging.IsUnavailable(err):
		return service.ErrorCodeUnavailable
	case messaging.IsInternal(err):
		return service.ErrorCodeInternal
	case messaging.IsThirdPartyAuthError(err), messaging.IsSenderIDMismatch(err):
		return service.ErrorCodeAuth
	case errorutils.IsUnknown(err):
		return service.ErrorCodeUnknown
	default:
		return service.ErrorCodeOther
	}
}
