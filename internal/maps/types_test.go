package maps

import (
	"testing"

	"zerowaste_map_backend/internal/geo"
)

func TestToSuggestionDropsUnusableCandidates(t *testing.T) {
	complete := geo.Candidate{
		Coord:       geo.Coordinate{Lat: 50.1235, Lon: 8.7010},
		DisplayName: "Berger Straße 12, Frankfurt am Main",
		Address: geo.AddressFragments{
			Road:        "Berger Straße",
			HouseNumber: "12",
			PostalCode:  "60316",
			City:        "Frankfurt am Main",
			Suburb:      "Nordend",
		},
	}

	tests := []struct {
		name       string
		mutate     func(*geo.Candidate)
		wantUsable bool
	}{
		{"complete address", func(c *geo.Candidate) {}, true},
		{"missing road", func(c *geo.Candidate) { c.Address.Road = "" }, false},
		{"missing city", func(c *geo.Candidate) { c.Address.City = "" }, false},
		{"missing house number is fine", func(c *geo.Candidate) { c.Address.HouseNumber = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := complete
			tt.mutate(&candidate)

			suggestion, ok := toSuggestion(candidate)
			if ok != tt.wantUsable {
				t.Fatalf("usable = %v, want %v", ok, tt.wantUsable)
			}
			if !ok {
				return
			}
			if suggestion.Street != candidate.Address.Road || suggestion.City != candidate.Address.City {
				t.Errorf("unexpected suggestion: %+v", suggestion)
			}
		})
	}
}
