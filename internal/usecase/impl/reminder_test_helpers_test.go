package impl

import (
	"io"
	"log/slog"
	"time"

	"linkup/internal/domain/entity"
)

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(id string, tokens ...string) *entity.User {
	return &entity.User{ID: id, FCMTokens: tokens}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
