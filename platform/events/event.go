// Package events provides the in-process event bus the modules use to react
// to each other without importing each other.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event published on the bus.
type Event interface {
	// EventName identifies the event type, e.g. "locations.submitted".
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp shared by all events. Embed it and add
// payload fields in the concrete event type.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent stamps a base event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler consumes events it has subscribed to.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function into a Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes domain events to subscribed handlers.
type Bus interface {
	// Publish dispatches asynchronously; handler errors are logged, not
	// returned.
	Publish(ctx context.Context, event Event)

	// PublishSync dispatches and waits for every handler, returning the
	// first handler error.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers handler for events whose EventName matches
	// eventName.
	Subscribe(eventName string, handler Handler)
}
