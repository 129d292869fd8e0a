// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Routing keys of the domain events.
const (
	EventCompanyCreated      = "company.created"
	EventEntrySettled        = "entry.settled"
	EventNotificationCreated = "notification.created"
)

// Event is a domain event published to other services.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       string         `json:"type"`
	CompanyID  uuid.UUID      `json:"company_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// NewEvent creates an Event stamped with a fresh ID and the current time.
func NewEvent(eventType string, companyID uuid.UUID, payload map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		CompanyID:  companyID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	// Publish sends the event. Implementations must be safe for concurrent use.
	Publish(ctx context.Context, event Event) error
}
