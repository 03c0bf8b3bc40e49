// Package service contains the locations business logic: submission intake,
// moderation, and wiring the OSM enrichment pipeline into approvals.
package service

import (
	"context"

	"github.com/google/uuid"

	"zerowaste_map_backend/internal/events"
	"zerowaste_map_backend/internal/geo"
	"zerowaste_map_backend/internal/hours"
	"zerowaste_map_backend/internal/locations/repository"
	"zerowaste_map_backend/internal/locations/transport"
	"zerowaste_map_backend/platform/apperr"
	"zerowaste_map_backend/platform/logger"
)

// Enricher is the slice of the geocoding pipeline this service needs.
type Enricher interface {
	SearchWithExtras(ctx context.Context, query string, ref *geo.Coordinate) (*geo.EnrichedResult, error)
}

// Service implements the locations use cases.
type Service struct {
	repo     repository.Repository
	enricher Enricher
	bus      events.Bus
	log      *logger.Logger
}

// New creates the locations service.
func New(repo repository.Repository, enricher Enricher, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, enricher: enricher, bus: bus, log: log}
}

// Submit stores a visitor submission as pending and notifies subscribers.
func (s *Service) Submit(ctx context.Context, req transport.SubmitLocationRequest) (transport.LocationResponse, error) {
	loc, err := s.repo.Create(ctx, repository.CreateParams{
		Name:            req.Name,
		Category:        req.Category,
		Description:     req.Description,
		Street:          req.Street,
		HouseNumber:     req.HouseNumber,
		PostalCode:      req.PostalCode,
		City:            req.City,
		Lat:             req.Lat,
		Lon:             req.Lon,
		OpeningHoursRaw: req.OpeningHours,
		Website:         req.Website,
		SubmitterEmail:  req.SubmitterEmail,
	})
	if err != nil {
		return transport.LocationResponse{}, err
	}

	s.bus.Publish(ctx, events.LocationSubmitted{
		BaseEvent:      events.NewBaseEvent(),
		LocationID:     loc.ID,
		Name:           loc.Name,
		Category:       loc.Category,
		SubmitterEmail: loc.SubmitterEmail,
	})

	return toResponse(loc, false), nil
}

// ListPublic returns the approved map entries without moderation fields.
func (s *Service) ListPublic(ctx context.Context, category string) ([]transport.LocationResponse, error) {
	locations, err := s.repo.ListApproved(ctx, category)
	if err != nil {
		return nil, err
	}

	return toResponses(locations, false), nil
}

// GetPublic returns one approved location without moderation fields.
func (s *Service) GetPublic(ctx context.Context, id uuid.UUID) (transport.LocationResponse, error) {
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LocationResponse{}, err
	}
	if loc.Status != repository.StatusApproved {
		return transport.LocationResponse{}, apperr.NotFound("location not found")
	}

	return toResponse(loc, false), nil
}

// List returns locations for moderation, including pending and rejected ones.
func (s *Service) List(ctx context.Context, req transport.ListLocationsRequest) ([]transport.LocationResponse, error) {
	locations, err := s.repo.List(ctx, repository.ListFilter{Status: req.Status, Category: req.Category})
	if err != nil {
		return nil, err
	}

	return toResponses(locations, true), nil
}

// Get returns one location with moderation fields.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.LocationResponse, error) {
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LocationResponse{}, err
	}

	return toResponse(loc, true), nil
}

// Update applies admin edits. Changed opening hours get their preview and
// parsed schedule recomputed.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateLocationRequest) (transport.LocationResponse, error) {
	params := repository.UpdateParams{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		PostalCode:  req.PostalCode,
		City:        req.City,
		Lat:         req.Lat,
		Lon:         req.Lon,
		Website:     req.Website,
	}

	if req.OpeningHours != nil {
		preview := hours.FormatPreview(*req.OpeningHours)
		params.OpeningHoursRaw = req.OpeningHours
		params.OpeningHoursPreview = &preview
		params.OpeningHours = hours.Parse(*req.OpeningHours)
	}

	loc, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.LocationResponse{}, err
	}

	return toResponse(loc, true), nil
}

// Approve runs the enrichment pipeline for a pending location and publishes
// the approval. An enrichment failure is logged but never blocks moderation;
// the backfill command picks the location up later.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (transport.LocationResponse, error) {
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LocationResponse{}, err
	}

	if loc.EnrichedAt == nil {
		if err := s.enrich(ctx, loc); err != nil {
			s.log.Warn("enrichment during approval failed", "locationId", loc.ID, "error", err)
		}
	}

	if err := s.repo.SetStatus(ctx, id, repository.StatusApproved, nil); err != nil {
		return transport.LocationResponse{}, err
	}

	s.bus.Publish(ctx, events.LocationApproved{
		BaseEvent:      events.NewBaseEvent(),
		LocationID:     loc.ID,
		Name:           loc.Name,
		SubmitterEmail: loc.SubmitterEmail,
	})

	return s.Get(ctx, id)
}

// Reject marks a pending location as rejected with a reason for the submitter.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) (transport.LocationResponse, error) {
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LocationResponse{}, err
	}

	if err := s.repo.SetStatus(ctx, id, repository.StatusRejected, &reason); err != nil {
		return transport.LocationResponse{}, err
	}

	s.bus.Publish(ctx, events.LocationRejected{
		BaseEvent:      events.NewBaseEvent(),
		LocationID:     loc.ID,
		Name:           loc.Name,
		SubmitterEmail: loc.SubmitterEmail,
		Reason:         reason,
	})

	return s.Get(ctx, id)
}

// Delete removes a location permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Enrich re-runs the enrichment pipeline for one location on demand.
func (s *Service) Enrich(ctx context.Context, id uuid.UUID) (transport.LocationResponse, error) {
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LocationResponse{}, err
	}

	if err := s.enrich(ctx, loc); err != nil {
		return transport.LocationResponse{}, err
	}

	return s.Get(ctx, id)
}

// EnrichMissing processes approved locations without enrichment data, up to
// the given limit. It returns the number of locations enriched; individual
// failures are logged and skipped so one bad record cannot stall a backfill.
func (s *Service) EnrichMissing(ctx context.Context, limit int) (int, error) {
	locations, err := s.repo.ListMissingEnrichment(ctx, limit)
	if err != nil {
		return 0, err
	}

	enriched := 0
	for _, loc := range locations {
		if ctx.Err() != nil {
			return enriched, ctx.Err()
		}
		if err := s.enrich(ctx, loc); err != nil {
			s.log.Warn("backfill enrichment failed", "locationId", loc.ID, "name", loc.Name, "error", err)
			continue
		}
		enriched++
	}

	return enriched, nil
}

// enrich runs the pipeline for one location and persists the result. The
// submitted coordinate, when present, anchors the distance validation. An
// address-only reverse match keeps the submitted address fields; a verified
// name match replaces them with the provider's.
func (s *Service) enrich(ctx context.Context, loc repository.Location) error {
	var ref *geo.Coordinate
	if loc.Lat != nil && loc.Lon != nil {
		ref = &geo.Coordinate{Lat: *loc.Lat, Lon: *loc.Lon}
	}

	result, err := s.enricher.SearchWithExtras(ctx, loc.Name, ref)
	if err != nil {
		return err
	}

	params := repository.EnrichmentParams{
		ID:         loc.ID,
		Lat:        result.Coord.Lat,
		Lon:        result.Coord.Lon,
		Street:     result.Street,
		PostalCode: result.PostalCode,
		City:       result.City,
		Contact:    mergeContacts(loc.Contact, result.Contact),
		Payment:    result.Payment,
		Facilities: result.Facilities,
		MatchType:  string(result.MatchType),
	}
	if result.Suburb != "" {
		params.Suburb = &result.Suburb
	}
	if result.OpeningHoursRaw != "" {
		params.OpeningHoursRaw = &result.OpeningHoursRaw
		params.OpeningHoursPreview = &result.OpeningHoursPreview
		params.OpeningHours = result.OpeningHours
	}

	if result.MatchType == geo.MatchReverseGeocode || result.Street == "" {
		// No verified business match: the submitted address stands.
		params.Street = loc.Street
		params.PostalCode = loc.PostalCode
		params.City = loc.City
		params.HouseNumber = loc.HouseNumber
	}

	if err := s.repo.SetEnrichment(ctx, params); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.LocationEnriched{
		BaseEvent:  events.NewBaseEvent(),
		LocationID: loc.ID,
		MatchType:  string(result.MatchType),
	})

	return nil
}

// mergeContacts keeps submitted contact data when the provider has none.
func mergeContacts(existing, extracted geo.ContactInfo) geo.ContactInfo {
	merged := extracted
	if merged.Phone == "" {
		merged.Phone = existing.Phone
	}
	if merged.Website == "" {
		merged.Website = existing.Website
	}
	if merged.Email == "" {
		merged.Email = existing.Email
	}
	if merged.Instagram == "" {
		merged.Instagram = existing.Instagram
	}
	return merged
}

func toResponse(loc repository.Location, includeModeration bool) transport.LocationResponse {
	resp := transport.LocationResponse{
		ID:         loc.ID,
		Name:       loc.Name,
		Category:   loc.Category,
		Street:     loc.Street,
		PostalCode: loc.PostalCode,
		City:       loc.City,
		Lat:        loc.Lat,
		Lon:        loc.Lon,
		Contact:    loc.Contact,
		Payment:    loc.Payment,
		Facilities: loc.Facilities,
		Status:     loc.Status,
		CreatedAt:  loc.CreatedAt,
		UpdatedAt:  loc.UpdatedAt,
	}

	if loc.Description != nil {
		resp.Description = *loc.Description
	}
	if loc.HouseNumber != nil {
		resp.HouseNumber = *loc.HouseNumber
	}
	if loc.Suburb != nil {
		resp.Suburb = *loc.Suburb
	}
	if loc.MatchType != nil {
		resp.MatchType = *loc.MatchType
	}
	if loc.EnrichedAt != nil {
		resp.EnrichedAt = *loc.EnrichedAt
	}

	if loc.OpeningHoursRaw != nil {
		resp.OpeningHoursRaw = *loc.OpeningHoursRaw
		// Derive the display fields for rows the pipeline has not touched.
		if loc.OpeningHoursPreview != nil {
			resp.OpeningHoursPreview = *loc.OpeningHoursPreview
		} else {
			resp.OpeningHoursPreview = hours.FormatPreview(*loc.OpeningHoursRaw)
		}
		if loc.OpeningHours != nil {
			resp.OpeningHours = loc.OpeningHours
		} else {
			resp.OpeningHours = hours.Parse(*loc.OpeningHoursRaw)
		}
	}

	if includeModeration {
		resp.SubmitterEmail = loc.SubmitterEmail
		if loc.RejectionReason != nil {
			resp.RejectionReason = *loc.RejectionReason
		}
	}

	return resp
}

func toResponses(locations []repository.Location, includeModeration bool) []transport.LocationResponse {
	responses := make([]transport.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, toResponse(loc, includeModeration))
	}
	return responses
}
