// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"zerowaste_map_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Location Domain Events
// =============================================================================

// LocationSubmitted is published when a visitor submits a new place for the map.
type LocationSubmitted struct {
	BaseEvent
	LocationID     uuid.UUID `json:"locationId"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	SubmitterEmail string    `json:"submitterEmail"`
}

func (e LocationSubmitted) EventName() string { return "locations.submitted" }

// LocationApproved is published when an admin approves a submission. The
// enrichment data has already been attached at this point.
type LocationApproved struct {
	BaseEvent
	LocationID     uuid.UUID `json:"locationId"`
	Name           string    `json:"name"`
	SubmitterEmail string    `json:"submitterEmail"`
}

func (e LocationApproved) EventName() string { return "locations.approved" }

// LocationRejected is published when an admin rejects a submission.
type LocationRejected struct {
	BaseEvent
	LocationID     uuid.UUID `json:"locationId"`
	Name           string    `json:"name"`
	SubmitterEmail string    `json:"submitterEmail"`
	Reason         string    `json:"reason"`
}

func (e LocationRejected) EventName() string { return "locations.rejected" }

// LocationEnriched is published when the OSM enrichment pipeline attaches
// data to a location, both interactively and from the backfill command.
type LocationEnriched struct {
	BaseEvent
	LocationID uuid.UUID `json:"locationId"`
	MatchType  string    `json:"matchType"`
}

func (e LocationEnriched) EventName() string { return "locations.enriched" }
