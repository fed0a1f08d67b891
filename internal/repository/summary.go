package repository

import (
	"context"

	"riderperf/internal/domain"
)

// SummaryRepository defines the persistence operations for daily summaries.
type SummaryRepository interface {
	// Create persists a new daily summary.
	Create(ctx context.Context, summary *domain.DailySummary) error

	// GetByRiderAndDate retrieves the summary for a rider on a date.
	// Returns nil if none exists.
	GetByRiderAndDate(ctx context.Context, riderID, date string) (*domain.DailySummary, error)

	// ListByRiderAndRange retrieves a rider's summaries with dates in
	// [startDate, endDate], ordered by date.
	ListByRiderAndRange(ctx context.Context, riderID, startDate, endDate string) ([]*domain.DailySummary, error)

	// GetAll retrieves recent summaries.
	GetAll(ctx context.Context) ([]*domain.DailySummary, error)
}
