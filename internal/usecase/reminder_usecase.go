package usecase

import (
	"context"

	"linkup/internal/domain/entity"
)

// RunOptions controls a single reminder run
type RunOptions struct {
	Trigger        entity.Trigger
	BypassCooldown bool // skip the per-user cooldown, used by manual triggers
	RequestID      string
}

// ReminderUsecase defines the port-in reminder job
type ReminderUsecase interface {
	// RunPortInReminders scans every user and reminds those with an incomplete port-in order.
	// An error is returned only when the run could not start; per-user failures are counted in the summary.
	RunPortInReminders(ctx context.Context, opts RunOptions) (*entity.RunSummary, error)

	// ScanEligibleUsers returns the users that would be reminded, without sending anything.
	ScanEligibleUsers(ctx context.Context) ([]*entity.EligibilityDecision, error)
}
