package model

import (
	"time"

	"linkup/internal/domain/entity"
)

// Field names on the order document.
const (
	OrderFieldStatus           = "status"
	OrderFieldPortInSkipped    = "portInSkipped"
	OrderFieldBillingCompleted = "billingCompleted"
	OrderFieldUpdatedAt        = "updatedAt"
)

// OrderDocument is the raw shape of a 'users/{id}/orders' document.
type OrderDocument struct {
	ID     string
	UserID string
	Data   map[string]any
}

// ToDomain converts the document into an entity.
// Flags count only when stored as boolean true; a missing updatedAt is the zero time.
func (d OrderDocument) ToDomain() *entity.Order {
	status, _ := d.Data[OrderFieldStatus].(string)
	portInSkipped, _ := d.Data[OrderFieldPortInSkipped].(bool)
	billingCompleted, _ := d.Data[OrderFieldBillingCompleted].(bool)

	var updatedAt time.Time
	if ts := decodeOptionalTime(d.Data[OrderFieldUpdatedAt]); ts != nil {
		updatedAt = *ts
	}

	return &entity.Order{
		ID:               d.ID,
		UserID:           d.UserID,
		Status:           entity.OrderStatus(status),
		PortInSkipped:    portInSkipped,
		BillingCompleted: billingCompleted,
		UpdatedAt:        updatedAt,
	}
}
