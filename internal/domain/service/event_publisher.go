package service

import (
	"context"

	"linkup/internal/domain/entity"
)

// RunCompletedEvent describes a finished reminder run for downstream consumers
type RunCompletedEvent struct {
	RequestID string             `json:"request_id,omitempty"` // For distributed tracing
	Summary   *entity.RunSummary `json:"summary"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRunCompleted publishes the summary of a finished run
	PublishRunCompleted(ctx context.Context, event *RunCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
