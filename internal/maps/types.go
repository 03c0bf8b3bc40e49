package maps

import "zerowaste_map_backend/internal/geo"

// LookupRequest represents the query parameters from the frontend form.
type LookupRequest struct {
	Query string `form:"q" binding:"required,min=3"`
}

// ReverseRequest represents the coordinate parameters for a reverse lookup.
type ReverseRequest struct {
	Lat float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon float64 `form:"lon" binding:"required,min=-180,max=180"`
}

// EnrichRequest represents the parameters for a business enrichment lookup.
// Lat/Lon are optional; without them no distance validation or reverse
// fallback happens.
type EnrichRequest struct {
	Name string   `form:"name" binding:"required,min=2"`
	Lat  *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Lon  *float64 `form:"lon" binding:"omitempty,min=-180,max=180"`
}

// HoursPreviewRequest carries a raw OSM opening_hours value.
type HoursPreviewRequest struct {
	Value string `form:"value" binding:"required"`
}

// AddressSuggestion is the normalized data returned to the frontend form.
type AddressSuggestion struct {
	Label       string  `json:"label"`
	Street      string  `json:"street"`
	HouseNumber string  `json:"houseNumber"`
	ZipCode     string  `json:"zipCode"`
	City        string  `json:"city"`
	Suburb      string  `json:"suburb,omitempty"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// toSuggestion normalizes a candidate for the submit form. Candidates without
// a street or settlement are unusable there and are dropped.
func toSuggestion(candidate geo.Candidate) (AddressSuggestion, bool) {
	if candidate.Address.Road == "" || candidate.Address.City == "" {
		return AddressSuggestion{}, false
	}

	return AddressSuggestion{
		Label:       candidate.DisplayName,
		Street:      candidate.Address.Road,
		HouseNumber: candidate.Address.HouseNumber,
		ZipCode:     candidate.Address.PostalCode,
		City:        candidate.Address.City,
		Suburb:      candidate.Address.Suburb,
		Lat:         candidate.Coord.Lat,
		Lon:         candidate.Coord.Lon,
	}, true
}
