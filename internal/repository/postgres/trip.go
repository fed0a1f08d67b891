package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"riderperf/internal/domain"
	"riderperf/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

const tripColumns = `
	id, rider_id, date, pickup_zone_id, delivery_zone_id,
	pickup_time, arrival_time, delivery_time_rider, delivery_time_customer,
	distance_km, expected_mins, customer_confirmed, notes, created_at
`

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.RiderID,
		trip.Date,
		nullString(trip.PickupZoneID),
		nullString(trip.DeliveryZoneID),
		nullTime(trip.PickupTime),
		nullTime(trip.ArrivalTime),
		nullTime(trip.DeliveryTimeRider),
		nullTime(trip.DeliveryTimeCustomer),
		trip.DistanceKm,
		trip.ExpectedMins,
		trip.CustomerConfirmed,
		nullString(trip.Notes),
		trip.CreatedAt,
	)

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return trip, nil
}

// GetAll retrieves recent trips.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC LIMIT 100`

	return r.queryTrips(ctx, query)
}

// ListByRiderAndRange retrieves a rider's trips with dates in the inclusive
// range, ordered by date then creation time for stable aggregation.
func (r *TripRepository) ListByRiderAndRange(ctx context.Context, riderID, startDate, endDate string) ([]*domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE rider_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, created_at ASC
	`

	return r.queryTrips(ctx, query, riderID, startDate, endDate)
}

func (r *TripRepository) queryTrips(ctx context.Context, query string, args ...any) ([]*domain.Trip, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var trip domain.Trip
	var date time.Time
	var pickupZoneID, deliveryZoneID, notes sql.NullString
	var pickupTime, arrivalTime, deliveryRider, deliveryCustomer sql.NullTime

	if err := row.Scan(
		&trip.ID,
		&trip.RiderID,
		&date,
		&pickupZoneID,
		&deliveryZoneID,
		&pickupTime,
		&arrivalTime,
		&deliveryRider,
		&deliveryCustomer,
		&trip.DistanceKm,
		&trip.ExpectedMins,
		&trip.CustomerConfirmed,
		&notes,
		&trip.CreatedAt,
	); err != nil {
		return nil, err
	}

	trip.Date = date.Format(domain.DateLayout)
	trip.PickupZoneID = pickupZoneID.String
	trip.DeliveryZoneID = deliveryZoneID.String
	trip.Notes = notes.String
	if pickupTime.Valid {
		trip.PickupTime = pickupTime.Time
	}
	if arrivalTime.Valid {
		trip.ArrivalTime = arrivalTime.Time
	}
	if deliveryRider.Valid {
		trip.DeliveryTimeRider = deliveryRider.Time
	}
	if deliveryCustomer.Valid {
		trip.DeliveryTimeCustomer = deliveryCustomer.Time
	}

	return &trip, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
