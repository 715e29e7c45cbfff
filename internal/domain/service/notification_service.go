package service

import (
	"context"
	"fmt"

	"linkup/internal/domain/entity"
	"linkup/internal/errors"
)

// ErrorCode is a provider-neutral code for a failed push delivery.
type ErrorCode string

const (
	ErrorCodeInvalidToken  ErrorCode = "invalid-registration-token"
	ErrorCodeUnregistered  ErrorCode = "registration-token-not-registered"
	ErrorCodeUnknown       ErrorCode = "unknown-error"
	ErrorCodeInternal      ErrorCode = "internal-error"
	ErrorCodeUnavailable   ErrorCode = "server-unavailable"
	ErrorCodeQuotaExceeded ErrorCode = "quota-exceeded"
	ErrorCodeAuth          ErrorCode = "third-party-auth-error"
	ErrorCodeOther         ErrorCode = "other"
)

// ErrorClass is how the reminder job reacts to a failed delivery.
type ErrorClass string

const (
	// ErrorClassPermanentToken means the token will never work again and is pruned.
	ErrorClassPermanentToken ErrorClass = "permanent_token"
	// ErrorClassTransientProvider means the provider call failed as a whole and may succeed per token.
	ErrorClassTransientProvider ErrorClass = "transient_provider"
	ErrorClassOther             ErrorClass = "other"
)

// SendError is returned by NotificationService for any failed delivery.
type SendError struct {
	Code ErrorCode
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("push delivery failed (%s): %v", e.Code, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// TokenResult is the delivery result for one token of a multicast.
type TokenResult struct {
	Token string
	Err   *SendError // nil on success
}

// MulticastResult is the per-token outcome of a multicast send.
type MulticastResult struct {
	SuccessCount int
	FailureCount int
	Responses    []TokenResult // same order as the requested tokens
}

// NotificationService defines the interface for push notification gateways
type NotificationService interface {
	// SendMulticast sends msg to every token in one request.
	// A non-nil error means the request as a whole failed; it is a *SendError.
	SendMulticast(ctx context.Context, msg *entity.PushMessage, tokens []string) (*MulticastResult, error)

	// Send sends msg to a single token. A non-nil error is a *SendError.
	Send(ctx context.Context, msg *entity.PushMessage, token string) error
}

// ErrorCodeOf extracts the delivery error code, ErrorCodeOther for foreign errors.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr.Code
	}

	return ErrorCodeOther
}
