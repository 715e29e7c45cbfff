package util

import (
	"fmt"
	"time"
)

// tokenPreviewLength is how much of a device token may appear in logs.
const tokenPreviewLength = 20

// Clock abstracts time so callers can replace real time in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock backed by time.Now.
type SystemClock struct{}

// NewClock returns the system clock.
func NewClock() Clock {
	return SystemClock{}
}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TokenPreview shortens a device token for logging.
func TokenPreview(token string) string {
	if len(token) <= tokenPreviewLength {
		return token
	}

	return token[:tokenPreviewLength] + "..."
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
