// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// User is a customer document holding the device tokens used to reach them.
type User struct {
	ID                     string     `json:"id"`                         // Document ID of the user.
	FCMTokens              []string   `json:"fcm_tokens"`                 // Registered device tokens, malformed entries removed.
	LastPortInReminderSent *time.Time `json:"last_port_in_reminder_sent"` // Time of the last successful reminder, nil if never sent.
}

// HasTokens reports whether the user can be reached at all.
func (u *User) HasTokens() bool {
	return u != nil && len(u.FCMTokens) > 0
}

// InCooldown reports whether a reminder was sent less than cooldown ago.
func (u *User) InCooldown(now time.Time, cooldown time.Duration) bool {
	if u.LastPortInReminderSent == nil {
		return false
	}

	return now.Sub(*u.LastPortInReminderSent) < cooldown
}
