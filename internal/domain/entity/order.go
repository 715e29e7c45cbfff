package entity

import (
	"time"
)

// OrderStatus is the lifecycle status stored on an order document.
type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusDraft         OrderStatus = "draft"
	OrderStatusPendingPortIn OrderStatus = "pending_port_in"
)

// MonitoredOrderStatuses are the statuses of orders that may still need port-in details.
//
//nolint:gochecknoglobals
var MonitoredOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusDraft,
	OrderStatusPendingPortIn,
}

// Order is a user's order as read from the orders subcollection.
type Order struct {
	ID               string      `json:"id"`                // Document ID of the order.
	UserID           string      `json:"user_id"`           // Owning user.
	Status           OrderStatus `json:"status"`            // Current status, unknown values kept verbatim.
	PortInSkipped    bool        `json:"port_in_skipped"`   // The customer skipped the port-in step.
	BillingCompleted bool        `json:"billing_completed"` // Billing finished for this order.
	UpdatedAt        time.Time   `json:"updated_at"`        // Last modification, zero when missing.
}

// NeedsPortIn reports whether the order still waits for port-in details.
func (o *Order) NeedsPortIn() bool {
	return o.Status == OrderStatusPendingPortIn || (o.PortInSkipped && o.BillingCompleted)
}
