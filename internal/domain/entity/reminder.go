package entity

import (
	"time"
)

const (
	// PortInReminderType is the data "type" tag the app routes on.
	PortInReminderType = "port_in_reminder"

	portInReminderTitle = "Complete Your Order Details"
	portInReminderBody  = "You have an incomplete order. Please complete your port-in details to finish your order."
	clickAction         = "FLUTTER_NOTIFICATION_CLICK"
)

// PushMessage is a provider-neutral push notification.
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// NewPortInReminder builds the reminder payload for one user and order.
func NewPortInReminder(userID, orderID string) *PushMessage {
	return &PushMessage{
		Title: portInReminderTitle,
		Body:  portInReminderBody,
		Data: map[string]string{
			"type":         PortInReminderType,
			"orderId":      orderID,
			"userId":       userID,
			"click_action": clickAction,
		},
	}
}

// EligibilityDecision pairs a user with the order they are reminded about.
type EligibilityDecision struct {
	User    *User  `json:"user"`
	OrderID string `json:"order_id"`
}

// DispatchState is the terminal state of one user within a run.
type DispatchState string

const (
	DispatchSkippedNoTokens         DispatchState = "skipped_no_tokens"
	DispatchSkippedNoEligibleOrders DispatchState = "skipped_no_eligible_orders"
	DispatchSkippedCooldown         DispatchState = "skipped_cooldown"
	DispatchFullySent               DispatchState = "fully_sent"
	DispatchPartiallySent           DispatchState = "partially_sent"
	DispatchFullyFailed             DispatchState = "fully_failed"

	// DispatchErrored marks a user whose orders could not be evaluated.
	DispatchErrored DispatchState = "errored"
)

// Skipped reports whether no send was attempted.
func (s DispatchState) Skipped() bool {
	switch s {
	case DispatchSkippedNoTokens, DispatchSkippedNoEligibleOrders, DispatchSkippedCooldown:
		return true
	default:
		return false
	}
}

// DispatchOutcome is the result of one dispatch call.
type DispatchOutcome struct {
	State        DispatchState `json:"state"`
	Sent         int           `json:"sent"`
	Failed       int           `json:"failed"`
	PrunedTokens []string      `json:"-"`
	Notified     bool          `json:"notified"` // lastPortInReminderSent was refreshed
	Err          error         `json:"-"`
}

// Trigger identifies what started a run.
type Trigger string

const (
	TriggerSchedule Trigger = "schedule"
	TriggerManual   Trigger = "manual"
	TriggerPush     Trigger = "pubsub"
	TriggerCLI      Trigger = "cli"
)

// RunSummary accumulates per-user outcomes of a run.
type RunSummary struct {
	RunID                   string    `json:"run_id"`
	Trigger                 Trigger   `json:"trigger"`
	BypassCooldown          bool      `json:"bypass_cooldown"`
	UsersScanned            int       `json:"users_scanned"`
	UsersWithTokens         int       `json:"users_with_tokens"`
	UsersEligible           int       `json:"users_eligible"`
	UsersNotified           int       `json:"users_notified"`
	SkippedNoTokens         int       `json:"skipped_no_tokens"`
	SkippedNoEligibleOrders int       `json:"skipped_no_eligible_orders"`
	SkippedCooldown         int       `json:"skipped_cooldown"`
	NotificationsSent       int       `json:"notifications_sent"`
	DeliveryFailures        int       `json:"delivery_failures"`
	TokensPruned            int       `json:"tokens_pruned"`
	Errors                  int       `json:"errors"`
	StartedAt               time.Time `json:"started_at"`
	FinishedAt              time.Time `json:"finished_at"`
}

// Add folds one user's outcome into the summary.
func (s *RunSummary) Add(outcome DispatchOutcome) {
	switch outcome.State {
	case DispatchSkippedNoTokens:
		s.SkippedNoTokens++
	case DispatchSkippedNoEligibleOrders:
		s.SkippedNoEligibleOrders++
	case DispatchSkippedCooldown:
		s.SkippedCooldown++
	case DispatchFullySent, DispatchPartiallySent, DispatchFullyFailed, DispatchErrored:
	}

	if outcome.State != DispatchSkippedNoTokens {
		s.UsersWithTokens++
	}
	switch outcome.State {
	case DispatchSkippedCooldown, DispatchFullySent, DispatchPartiallySent, DispatchFullyFailed:
		s.UsersEligible++
	case DispatchSkippedNoTokens, DispatchSkippedNoEligibleOrders, DispatchErrored:
	}
	if outcome.Notified {
		s.UsersNotified++
	}

	s.NotificationsSent += outcome.Sent
	s.DeliveryFailures += outcome.Failed
	s.TokensPruned += len(outcome.PrunedTokens)
	if outcome.Err != nil {
		s.Errors++
	}
}
