package geo

import (
	"context"
	"strings"

	"zerowaste_map_backend/internal/hours"
	"zerowaste_map_backend/platform/apperr"
	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/logger"
)

const noResultsMessage = "no results found"

// Enricher runs the full enrichment pipeline against a Nominatim client:
// forward search by full name, simplified-name retry, distance validation,
// reverse-geocode fallback, and extratags normalization. It is the single
// source of truth for both the interactive API path and the batch commands.
type Enricher struct {
	client        *Client
	maxDistanceKM float64
	log           *logger.Logger
}

// NewEnricher creates an Enricher using the configured acceptance radius.
func NewEnricher(client *Client, cfg config.GeocodingConfig, log *logger.Logger) *Enricher {
	return &Enricher{
		client:        client,
		maxDistanceKM: cfg.GetGeocodeMaxDistanceKM(),
		log:           log,
	}
}

// Geocode performs a one-shot forward geocode with no validation context:
// the provider's first result wins.
func (e *Enricher) Geocode(ctx context.Context, address string) (*Address, error) {
	candidates, err := e.client.Search(ctx, address)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "geocoding service unavailable", err)
	}
	if len(candidates) == 0 {
		return nil, apperr.NotFound(noResultsMessage)
	}

	return candidateAddress(candidates[0]), nil
}

// ReverseGeocode resolves a coordinate to address fragments.
func (e *Enricher) ReverseGeocode(ctx context.Context, coord Coordinate) (*Address, error) {
	candidate, err := e.client.Reverse(ctx, coord)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "geocoding service unavailable", err)
	}

	return candidateAddress(*candidate), nil
}

// SearchWithExtras runs the full enrichment chain for a business name and an
// optional reference coordinate:
//
//  1. forward search with the full name,
//  2. forward search with the simplified name (truncated at the first
//     separator) when the full name found nothing acceptable,
//  3. reverse geocode of the reference coordinate as a last resort.
//
// A transport failure in one stage is logged and does not abort the chain;
// each stage independently attempts its own request. When every stage comes
// up empty the caller gets a NotFound error, distinguishable from the
// Unavailable error returned when the chain ends in a transport failure.
func (e *Enricher) SearchWithExtras(ctx context.Context, query string, ref *Coordinate) (*EnrichedResult, error) {
	var lastErr error

	candidate, found, err := e.searchAttempt(ctx, query, ref)
	if err != nil {
		lastErr = err
	}

	if !found {
		if simplified, ok := SimplifyName(query); ok {
			candidate, found, err = e.searchAttempt(ctx, simplified, ref)
			if err != nil {
				lastErr = err
			}
		}
	}

	if found {
		return e.buildResult(candidate, MatchNameSearch), nil
	}

	if ref != nil {
		reversed, err := e.client.Reverse(ctx, *ref)
		if err == nil {
			return reverseResult(*reversed, *ref), nil
		}
		lastErr = err
		e.log.Warn("reverse geocode fallback failed", "error", err)
	}

	if lastErr != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "geocoding service unavailable", lastErr)
	}
	return nil, apperr.NotFound(noResultsMessage)
}

// searchAttempt performs one forward search and validates the candidates
// against the reference coordinate. Transport errors are logged and returned
// so the caller can track them without breaking the fallback chain.
func (e *Enricher) searchAttempt(ctx context.Context, query string, ref *Coordinate) (Candidate, bool, error) {
	candidates, err := e.client.Search(ctx, query)
	if err != nil {
		e.log.Warn("forward geocode attempt failed", "query", query, "error", err)
		return Candidate{}, false, err
	}

	candidate, ok := SelectCandidate(ref, candidates, e.maxDistanceKM)
	return candidate, ok, nil
}

// buildResult folds an accepted candidate into the enriched output: address
// normalization plus contact, payment, facility and opening-hours extraction.
func (e *Enricher) buildResult(candidate Candidate, matchType MatchType) *EnrichedResult {
	result := &EnrichedResult{
		Coord:      candidate.Coord,
		Street:     joinStreet(candidate.Address),
		City:       candidate.Address.City,
		PostalCode: candidate.Address.PostalCode,
		Suburb:     candidate.Address.Suburb,
		Contact:    ExtractContacts(candidate.ExtraTags),
		Payment:    ExtractPayment(candidate.ExtraTags),
		Facilities: ExtractFacilities(candidate.ExtraTags),
		MatchType:  matchType,
	}

	if raw := candidate.ExtraTags["opening_hours"].Text; raw != "" {
		result.OpeningHoursRaw = raw
		result.OpeningHoursPreview = hours.FormatPreview(raw)
		result.OpeningHours = hours.Parse(raw)
	}

	return result
}

// reverseResult builds the address-only result of the reverse-geocode
// fallback. The business was not verified, so no contact, payment, facility
// or opening-hours data is attached.
func reverseResult(candidate Candidate, ref Coordinate) *EnrichedResult {
	coord := candidate.Coord
	if coord == (Coordinate{}) {
		coord = ref
	}

	return &EnrichedResult{
		Coord:      coord,
		Street:     joinStreet(candidate.Address),
		City:       candidate.Address.City,
		PostalCode: candidate.Address.PostalCode,
		Suburb:     candidate.Address.Suburb,
		MatchType:  MatchReverseGeocode,
	}
}

func candidateAddress(candidate Candidate) *Address {
	return &Address{
		Coord:       candidate.Coord,
		DisplayName: candidate.DisplayName,
		Address:     candidate.Address,
	}
}

// joinStreet joins road and house number with a space; empty when the road is
// absent.
func joinStreet(address AddressFragments) string {
	return strings.TrimSpace(address.Road + " " + address.HouseNumber)
}
