package repository

import (
	"context"

	"zerowaste_map_backend/internal/geo"
	"zerowaste_map_backend/internal/hours"

	"github.com/google/uuid"
)

// Moderation statuses of a location.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Location is the persistence model of a map entry.
type Location struct {
	ID                  uuid.UUID
	Name                string
	Category            string
	Description         *string
	Street              string
	HouseNumber         *string
	PostalCode          string
	City                string
	Suburb              *string
	Lat                 *float64
	Lon                 *float64
	Contact             geo.ContactInfo
	Payment             *geo.PaymentMethods
	Facilities          *geo.Facilities
	OpeningHoursRaw     *string
	OpeningHoursPreview *string
	OpeningHours        *hours.Schedule
	MatchType           *string
	Status              string
	RejectionReason     *string
	SubmitterEmail      string
	CreatedAt           string
	UpdatedAt           string
	EnrichedAt          *string
}

// CreateParams contains parameters for creating a pending location.
type CreateParams struct {
	Name            string
	Category        string
	Description     *string
	Street          string
	HouseNumber     *string
	PostalCode      string
	City            string
	Lat             *float64
	Lon             *float64
	OpeningHoursRaw *string
	Website         *string
	SubmitterEmail  string
}

// UpdateParams contains admin edits. Nil fields stay untouched.
type UpdateParams struct {
	ID              uuid.UUID
	Name            *string
	Category        *string
	Description     *string
	Street          *string
	HouseNumber     *string
	PostalCode      *string
	City            *string
	Lat             *float64
	Lon             *float64
	OpeningHoursRaw *string
	// Derived from OpeningHoursRaw by the service layer.
	OpeningHoursPreview *string
	OpeningHours        *hours.Schedule
	Website             *string
}

// EnrichmentParams contains the data attached by the enrichment pipeline.
type EnrichmentParams struct {
	ID                  uuid.UUID
	Lat                 float64
	Lon                 float64
	Street              string
	HouseNumber         *string
	PostalCode          string
	City                string
	Suburb              *string
	Contact             geo.ContactInfo
	Payment             *geo.PaymentMethods
	Facilities          *geo.Facilities
	OpeningHoursRaw     *string
	OpeningHoursPreview *string
	OpeningHours        *hours.Schedule
	MatchType           string
}

// ListFilter narrows admin listings.
type ListFilter struct {
	Status   string
	Category string
}

// LocationReader provides read operations for locations.
type LocationReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Location, error)
	ListApproved(ctx context.Context, category string) ([]Location, error)
	List(ctx context.Context, filter ListFilter) ([]Location, error)
	ListMissingEnrichment(ctx context.Context, limit int) ([]Location, error)
}

// LocationWriter provides write operations for locations.
type LocationWriter interface {
	Create(ctx context.Context, params CreateParams) (Location, error)
	Update(ctx context.Context, params UpdateParams) (Location, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string, reason *string) error
	SetEnrichment(ctx context.Context, params EnrichmentParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository combines all location repository operations.
type Repository interface {
	LocationReader
	LocationWriter
}
