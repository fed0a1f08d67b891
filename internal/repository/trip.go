package repository

import (
	"context"

	"riderperf/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves recent trips.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// ListByRiderAndRange retrieves a rider's trips with dates in
	// [startDate, endDate], ordered by date then creation time so that
	// downstream aggregation iterates in a stable order.
	ListByRiderAndRange(ctx context.Context, riderID, startDate, endDate string) ([]*domain.Trip, error)
}
