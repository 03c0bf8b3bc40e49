package maps

import (
	"context"

	"zerowaste_map_backend/internal/geo"
	"zerowaste_map_backend/internal/hours"
	"zerowaste_map_backend/platform/apperr"
	"zerowaste_map_backend/platform/logger"
)

// Service exposes the geocoding pipeline to the HTTP layer. All provider
// traffic flows through the shared geo client, so the rate limit holds
// across address lookup, enrichment and reverse callers.
type Service struct {
	client   *geo.Client
	enricher *geo.Enricher
	log      *logger.Logger
}

func NewService(client *geo.Client, enricher *geo.Enricher, log *logger.Logger) *Service {
	return &Service{client: client, enricher: enricher, log: log}
}

// SearchAddress returns address suggestions for the submit form.
func (s *Service) SearchAddress(ctx context.Context, query string) ([]AddressSuggestion, error) {
	candidates, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "address lookup service unavailable", err)
	}

	suggestions := make([]AddressSuggestion, 0, len(candidates))
	for _, candidate := range candidates {
		suggestion, ok := toSuggestion(candidate)
		if !ok {
			continue
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

// ReverseLookup resolves a map coordinate to an address.
func (s *Service) ReverseLookup(ctx context.Context, coord geo.Coordinate) (*geo.Address, error) {
	return s.enricher.ReverseGeocode(ctx, coord)
}

// Enrich runs the full business enrichment chain for a name and an optional
// reference coordinate.
func (s *Service) Enrich(ctx context.Context, name string, ref *geo.Coordinate) (*geo.EnrichedResult, error) {
	return s.enricher.SearchWithExtras(ctx, name, ref)
}

// HoursPreview is the response of the opening-hours preview endpoint.
type HoursPreview struct {
	Preview  string          `json:"preview"`
	Schedule *hours.Schedule `json:"schedule,omitempty"`
}

// PreviewHours formats a raw opening_hours value for display and attaches
// the parsed schedule when the value is parseable.
func (s *Service) PreviewHours(raw string) HoursPreview {
	return HoursPreview{
		Preview:  hours.FormatPreview(raw),
		Schedule: hours.Parse(raw),
	}
}
