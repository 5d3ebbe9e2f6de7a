package event

import (
	"context"
	"time"
)

// Event is an outbound domain event.
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// New builds an event stamped with the current time.
func New(eventType string, payload map[string]any) Event {
	return Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher delivers domain events to interested consumers.
// Delivery is best-effort: implementations must not block the caller
// beyond a short bound and must never surface delivery failures to it.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (*NoopPublisher) Publish(context.Context, Event) {}
