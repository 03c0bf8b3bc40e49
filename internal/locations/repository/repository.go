package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zerowaste_map_backend/internal/geo"
	"zerowaste_map_backend/internal/hours"
	"zerowaste_map_backend/platform/apperr"
)

const locationNotFoundMessage = "location not found"

const locationColumns = `
	id, name, category, description, street, house_number, postal_code, city, suburb,
	lat, lon, contact, payment, facilities,
	opening_hours_raw, opening_hours_preview, opening_hours, match_type,
	status, rejection_reason, submitter_email, created_at, updated_at, enriched_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new locations repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves a location by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Location, error) {
	query := `SELECT` + locationColumns + `
		FROM locations
		WHERE id = $1`

	loc, err := scanLocation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Location{}, apperr.NotFound(locationNotFoundMessage)
		}
		return Location{}, fmt.Errorf("get location by id: %w", err)
	}

	return loc, nil
}

// ListApproved retrieves the public map entries, newest first, optionally
// narrowed to one category.
func (r *Repo) ListApproved(ctx context.Context, category string) ([]Location, error) {
	query := `SELECT` + locationColumns + `
		FROM locations
		WHERE status = $1 AND ($2 = '' OR category = $2)
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, StatusApproved, category)
	if err != nil {
		return nil, fmt.Errorf("list approved locations: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

// List retrieves locations for moderation with optional status and category filters.
func (r *Repo) List(ctx context.Context, filter ListFilter) ([]Location, error) {
	query := `SELECT` + locationColumns + `
		FROM locations
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR category = $2)
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, filter.Status, filter.Category)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

// ListMissingEnrichment retrieves approved locations the enrichment pipeline
// has not processed yet, oldest first.
func (r *Repo) ListMissingEnrichment(ctx context.Context, limit int) ([]Location, error) {
	query := `SELECT` + locationColumns + `
		FROM locations
		WHERE status = $1 AND enriched_at IS NULL
		ORDER BY created_at ASC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, StatusApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("list locations missing enrichment: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

// Create inserts a pending location from a visitor submission.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Location, error) {
	contact := geo.ContactInfo{}
	if params.Website != nil {
		contact.Website = *params.Website
	}
	contactJSON, err := json.Marshal(contact)
	if err != nil {
		return Location{}, fmt.Errorf("marshal contact: %w", err)
	}

	query := `
		INSERT INTO locations (
			name, category, description, street, house_number, postal_code, city,
			lat, lon, contact, opening_hours_raw, submitter_email, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING` + locationColumns

	loc, err := scanLocation(r.pool.QueryRow(ctx, query,
		params.Name, params.Category, params.Description, params.Street, params.HouseNumber,
		params.PostalCode, params.City, params.Lat, params.Lon, contactJSON,
		params.OpeningHoursRaw, params.SubmitterEmail, StatusPending,
	))
	if err != nil {
		return Location{}, fmt.Errorf("create location: %w", err)
	}

	return loc, nil
}

// Update applies admin edits; nil parameters leave the column untouched.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Location, error) {
	hoursJSON, err := marshalSchedule(params.OpeningHours)
	if err != nil {
		return Location{}, err
	}

	query := `
		UPDATE locations SET
			name = COALESCE($2, name),
			category = COALESCE($3, category),
			description = COALESCE($4, description),
			street = COALESCE($5, street),
			house_number = COALESCE($6, house_number),
			postal_code = COALESCE($7, postal_code),
			city = COALESCE($8, city),
			lat = COALESCE($9, lat),
			lon = COALESCE($10, lon),
			opening_hours_raw = COALESCE($11, opening_hours_raw),
			opening_hours_preview = COALESCE($12, opening_hours_preview),
			opening_hours = COALESCE($13, opening_hours),
			contact = CASE WHEN $14::text IS NULL THEN contact
				ELSE jsonb_set(COALESCE(contact, '{}'::jsonb), '{website}', to_jsonb($14::text)) END,
			updated_at = now()
		WHERE id = $1
		RETURNING` + locationColumns

	loc, err := scanLocation(r.pool.QueryRow(ctx, query,
		params.ID, params.Name, params.Category, params.Description, params.Street,
		params.HouseNumber, params.PostalCode, params.City, params.Lat, params.Lon,
		params.OpeningHoursRaw, params.OpeningHoursPreview, hoursJSON, params.Website,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Location{}, apperr.NotFound(locationNotFoundMessage)
		}
		return Location{}, fmt.Errorf("update location: %w", err)
	}

	return loc, nil
}

// SetStatus moves a location through moderation. The reason is only kept for
// rejections and cleared otherwise.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status string, reason *string) error {
	query := `
		UPDATE locations
		SET status = $2, rejection_reason = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status, reason)
	if err != nil {
		return fmt.Errorf("set location status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(locationNotFoundMessage)
	}

	return nil
}

// SetEnrichment attaches the output of the enrichment pipeline.
func (r *Repo) SetEnrichment(ctx context.Context, params EnrichmentParams) error {
	contactJSON, err := json.Marshal(params.Contact)
	if err != nil {
		return fmt.Errorf("marshal contact: %w", err)
	}
	paymentJSON, err := marshalOptional(params.Payment)
	if err != nil {
		return err
	}
	facilitiesJSON, err := marshalOptional(params.Facilities)
	if err != nil {
		return err
	}
	hoursJSON, err := marshalSchedule(params.OpeningHours)
	if err != nil {
		return err
	}

	query := `
		UPDATE locations SET
			lat = $2, lon = $3, street = $4, house_number = $5, postal_code = $6,
			city = $7, suburb = $8, contact = $9, payment = $10, facilities = $11,
			opening_hours_raw = COALESCE($12, opening_hours_raw),
			opening_hours_preview = $13,
			opening_hours = $14,
			match_type = $15,
			enriched_at = now(),
			updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		params.ID, params.Lat, params.Lon, params.Street, params.HouseNumber,
		params.PostalCode, params.City, params.Suburb, contactJSON, paymentJSON,
		facilitiesJSON, params.OpeningHoursRaw, params.OpeningHoursPreview,
		hoursJSON, params.MatchType,
	)
	if err != nil {
		return fmt.Errorf("set location enrichment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(locationNotFoundMessage)
	}

	return nil
}

// Delete removes a location permanently.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(locationNotFoundMessage)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (Location, error) {
	var loc Location
	var contactJSON, paymentJSON, facilitiesJSON, hoursJSON []byte
	var createdAt, updatedAt time.Time
	var enrichedAt *time.Time

	err := row.Scan(
		&loc.ID, &loc.Name, &loc.Category, &loc.Description, &loc.Street,
		&loc.HouseNumber, &loc.PostalCode, &loc.City, &loc.Suburb,
		&loc.Lat, &loc.Lon, &contactJSON, &paymentJSON, &facilitiesJSON,
		&loc.OpeningHoursRaw, &loc.OpeningHoursPreview, &hoursJSON, &loc.MatchType,
		&loc.Status, &loc.RejectionReason, &loc.SubmitterEmail,
		&createdAt, &updatedAt, &enrichedAt,
	)
	if err != nil {
		return Location{}, err
	}

	if len(contactJSON) > 0 {
		if err := json.Unmarshal(contactJSON, &loc.Contact); err != nil {
			return Location{}, fmt.Errorf("unmarshal contact: %w", err)
		}
	}
	if len(paymentJSON) > 0 {
		loc.Payment = &geo.PaymentMethods{}
		if err := json.Unmarshal(paymentJSON, loc.Payment); err != nil {
			return Location{}, fmt.Errorf("unmarshal payment: %w", err)
		}
	}
	if len(facilitiesJSON) > 0 {
		loc.Facilities = &geo.Facilities{}
		if err := json.Unmarshal(facilitiesJSON, loc.Facilities); err != nil {
			return Location{}, fmt.Errorf("unmarshal facilities: %w", err)
		}
	}
	if len(hoursJSON) > 0 {
		loc.OpeningHours = &hours.Schedule{}
		if err := json.Unmarshal(hoursJSON, loc.OpeningHours); err != nil {
			return Location{}, fmt.Errorf("unmarshal opening hours: %w", err)
		}
	}

	loc.CreatedAt = createdAt.Format(time.RFC3339)
	loc.UpdatedAt = updatedAt.Format(time.RFC3339)
	if enrichedAt != nil {
		formatted := enrichedAt.Format(time.RFC3339)
		loc.EnrichedAt = &formatted
	}

	return loc, nil
}

func scanLocations(rows pgx.Rows) ([]Location, error) {
	locations := make([]Location, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}

	return locations, nil
}

// marshalOptional keeps absent flag sets as SQL NULL instead of a JSON null
// literal.
func marshalOptional[T any](value *T) ([]byte, error) {
	if value == nil {
		return nil, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal enrichment field: %w", err)
	}
	return data, nil
}

func marshalSchedule(schedule *hours.Schedule) ([]byte, error) {
	if schedule == nil {
		return nil, nil
	}
	data, err := json.Marshal(schedule)
	if err != nil {
		return nil, fmt.Errorf("marshal opening hours: %w", err)
	}
	return data, nil
}
