package firestore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// retryPolicy retries store writes that failed with a transient gRPC code.
type retryPolicy struct {
	base       time.Duration
	maxDelay   time.Duration
	maxRetries uint64
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		base:       100 * time.Millisecond,
		maxDelay:   2 * time.Second,
		maxRetries: 3,
	}
}

func (p retryPolicy) do(ctx context.Context, op func(ctx context.Context) error) error {
	b := retry.NewFibonacci(p.base)
	b = retry.WithCappedDuration(p.maxDelay, b)
	b = retry.WithMaxRetries(p.maxRetries, b)

	return errors.WithStack(retry.Do(ctx, b, func(ctx context.Context) error {
		err := op(ctx)
		if isTransient(err) {
			return retry.RetryableError(err)
		}

		return err
	}))
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}

	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}
