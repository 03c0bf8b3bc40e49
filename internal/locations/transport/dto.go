package transport

import (
	"zerowaste_map_backend/internal/geo"
	"zerowaste_map_backend/internal/hours"

	"github.com/google/uuid"
)

// SubmitLocationRequest contains a visitor's submission of a new place.
// Coordinates are optional; they come from the map picker when present and
// drive match validation during enrichment.
type SubmitLocationRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=150"`
	Category       string   `json:"category" validate:"required,oneof=unverpackt second_hand repair_cafe refill market gastronomy other"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Street         string   `json:"street" validate:"required,min=2,max=150"`
	HouseNumber    *string  `json:"houseNumber,omitempty" validate:"omitempty,max=20"`
	PostalCode     string   `json:"postalCode" validate:"required,len=5,numeric"`
	City           string   `json:"city" validate:"required,min=2,max=100"`
	Lat            *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon            *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	SubmitterEmail string   `json:"submitterEmail" validate:"required,email"`
	OpeningHours   *string  `json:"openingHours,omitempty" validate:"omitempty,max=500"`
	Website        *string  `json:"website,omitempty" validate:"omitempty,url,max=300"`
}

// UpdateLocationRequest contains admin edits to an existing location.
type UpdateLocationRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Category     *string  `json:"category,omitempty" validate:"omitempty,oneof=unverpackt second_hand repair_cafe refill market gastronomy other"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Street       *string  `json:"street,omitempty" validate:"omitempty,min=2,max=150"`
	HouseNumber  *string  `json:"houseNumber,omitempty" validate:"omitempty,max=20"`
	PostalCode   *string  `json:"postalCode,omitempty" validate:"omitempty,len=5,numeric"`
	City         *string  `json:"city,omitempty" validate:"omitempty,min=2,max=100"`
	Lat          *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon          *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	OpeningHours *string  `json:"openingHours,omitempty" validate:"omitempty,max=500"`
	Website      *string  `json:"website,omitempty" validate:"omitempty,url,max=300"`
}

// RejectLocationRequest carries the moderation reason sent to the submitter.
type RejectLocationRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=1000"`
}

// ListLocationsRequest contains the admin list filters.
type ListLocationsRequest struct {
	Status   string `form:"status" validate:"omitempty,oneof=pending approved rejected"`
	Category string `form:"category" validate:"omitempty,max=50"`
}

// LocationResponse represents a location in API responses. Public listings
// use the same shape; moderation fields stay empty there.
type LocationResponse struct {
	ID                  uuid.UUID           `json:"id"`
	Name                string              `json:"name"`
	Category            string              `json:"category"`
	Description         string              `json:"description,omitempty"`
	Street              string              `json:"street"`
	HouseNumber         string              `json:"houseNumber,omitempty"`
	PostalCode          string              `json:"postalCode"`
	City                string              `json:"city"`
	Suburb              string              `json:"suburb,omitempty"`
	Lat                 *float64            `json:"lat,omitempty"`
	Lon                 *float64            `json:"lon,omitempty"`
	Contact             geo.ContactInfo     `json:"contact"`
	Payment             *geo.PaymentMethods `json:"payment,omitempty"`
	Facilities          *geo.Facilities     `json:"facilities,omitempty"`
	OpeningHoursRaw     string              `json:"openingHoursRaw,omitempty"`
	OpeningHoursPreview string              `json:"openingHoursPreview,omitempty"`
	OpeningHours        *hours.Schedule     `json:"openingHours,omitempty"`
	MatchType           string              `json:"matchType,omitempty"`
	Status              string              `json:"status"`
	RejectionReason     string              `json:"rejectionReason,omitempty"`
	SubmitterEmail      string              `json:"submitterEmail,omitempty"`
	CreatedAt           string              `json:"createdAt"`
	UpdatedAt           string              `json:"updatedAt"`
	EnrichedAt          string              `json:"enrichedAt,omitempty"`
}
