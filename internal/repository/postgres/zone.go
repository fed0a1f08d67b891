package postgres

import (
	"context"
	"database/sql"
	"errors"

	"riderperf/internal/domain"
	"riderperf/internal/repository"
)

// ZoneRepository is a PostgreSQL implementation of repository.ZoneRepository.
type ZoneRepository struct {
	q Querier
}

// NewZoneRepository creates a new PostgreSQL zone repository.
func NewZoneRepository(db *sql.DB) *ZoneRepository {
	return &ZoneRepository{q: db}
}

// Create persists a new zone.
func (r *ZoneRepository) Create(ctx context.Context, zone *domain.Zone) error {
	query := `
		INSERT INTO zones (id, name, coordinates, default_km, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	var coordinates sql.NullString
	if zone.Coordinates != "" {
		coordinates = sql.NullString{String: zone.Coordinates, Valid: true}
	}

	var defaultKm sql.NullFloat64
	if zone.DefaultKm > 0 {
		defaultKm = sql.NullFloat64{Float64: zone.DefaultKm, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		zone.ID,
		zone.Name,
		coordinates,
		defaultKm,
		zone.CreatedAt,
	)

	return err
}

// GetByID retrieves a zone by ID.
func (r *ZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	query := `
		SELECT id, name, coordinates, default_km, created_at
		FROM zones WHERE id = $1
	`

	zone, err := scanZone(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return zone, nil
}

// GetByName retrieves a zone by its unique name.
func (r *ZoneRepository) GetByName(ctx context.Context, name string) (*domain.Zone, error) {
	query := `
		SELECT id, name, coordinates, default_km, created_at
		FROM zones WHERE name = $1
	`

	zone, err := scanZone(r.q.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return zone, nil
}

// GetAll retrieves all zones.
func (r *ZoneRepository) GetAll(ctx context.Context) ([]*domain.Zone, error) {
	query := `
		SELECT id, name, coordinates, default_km, created_at
		FROM zones ORDER BY name ASC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []*domain.Zone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, rows.Err()
}

func scanZone(row rowScanner) (*domain.Zone, error) {
	var zone domain.Zone
	var coordinates sql.NullString
	var defaultKm sql.NullFloat64

	if err := row.Scan(
		&zone.ID,
		&zone.Name,
		&coordinates,
		&defaultKm,
		&zone.CreatedAt,
	); err != nil {
		return nil, err
	}

	if coordinates.Valid {
		zone.Coordinates = coordinates.String
	}
	if defaultKm.Valid {
		zone.DefaultKm = defaultKm.Float64
	}

	return &zone, nil
}

// Ensure ZoneRepository implements repository.ZoneRepository.
var _ repository.ZoneRepository = (*ZoneRepository)(nil)
