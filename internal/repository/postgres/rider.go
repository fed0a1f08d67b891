package postgres

import (
	"context"
	"database/sql"
	"errors"

	"riderperf/internal/domain"
	"riderperf/internal/repository"
)

// RiderRepository is a PostgreSQL implementation of repository.RiderRepository.
type RiderRepository struct {
	q Querier
}

// NewRiderRepository creates a new PostgreSQL rider repository.
func NewRiderRepository(db *sql.DB) *RiderRepository {
	return &RiderRepository{q: db}
}

// Create persists a new rider.
func (r *RiderRepository) Create(ctx context.Context, rider *domain.Rider) error {
	query := `
		INSERT INTO riders (id, name, phone, zone_id, active, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var zoneID sql.NullString
	if rider.ZoneID != "" {
		zoneID = sql.NullString{String: rider.ZoneID, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		rider.ID,
		rider.Name,
		rider.Phone,
		zoneID,
		rider.Active,
		rider.JoinedAt,
	)

	return err
}

// GetByID retrieves a rider by ID.
func (r *RiderRepository) GetByID(ctx context.Context, id string) (*domain.Rider, error) {
	query := `
		SELECT id, name, phone, zone_id, active, joined_at
		FROM riders WHERE id = $1
	`

	rider, err := scanRider(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return rider, nil
}

// GetByPhone retrieves a rider by phone number.
func (r *RiderRepository) GetByPhone(ctx context.Context, phone string) (*domain.Rider, error) {
	query := `
		SELECT id, name, phone, zone_id, active, joined_at
		FROM riders WHERE phone = $1
	`

	rider, err := scanRider(r.q.QueryRowContext(ctx, query, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return rider, nil
}

// GetAll retrieves all riders.
func (r *RiderRepository) GetAll(ctx context.Context) ([]*domain.Rider, error) {
	query := `
		SELECT id, name, phone, zone_id, active, joined_at
		FROM riders ORDER BY joined_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var riders []*domain.Rider
	for rows.Next() {
		rider, err := scanRider(rows)
		if err != nil {
			return nil, err
		}
		riders = append(riders, rider)
	}

	return riders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRider(row rowScanner) (*domain.Rider, error) {
	var rider domain.Rider
	var zoneID sql.NullString

	if err := row.Scan(
		&rider.ID,
		&rider.Name,
		&rider.Phone,
		&zoneID,
		&rider.Active,
		&rider.JoinedAt,
	); err != nil {
		return nil, err
	}

	if zoneID.Valid {
		rider.ZoneID = zoneID.String
	}

	return &rider, nil
}

// Ensure RiderRepository implements repository.RiderRepository.
var _ repository.RiderRepository = (*RiderRepository)(nil)
