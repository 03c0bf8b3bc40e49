package events

import (
	platformevents "zerowaste_map_backend/platform/events"
	"zerowaste_map_backend/platform/logger"
)

// InMemoryBus aliases the platform bus so modules only ever import
// internal/events for both the event types and the bus.
type InMemoryBus = platformevents.InMemoryBus

func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}
