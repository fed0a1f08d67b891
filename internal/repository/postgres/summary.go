package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"riderperf/internal/domain"
	"riderperf/internal/repository"
)

// SummaryRepository is a PostgreSQL implementation of repository.SummaryRepository.
type SummaryRepository struct {
	q Querier
}

// NewSummaryRepository creates a new PostgreSQL daily-summary repository.
func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{q: db}
}

// Create persists a new daily summary.
func (r *SummaryRepository) Create(ctx context.Context, summary *domain.DailySummary) error {
	query := `
		INSERT INTO daily_summaries (id, rider_id, date, reporting_time, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		summary.ID,
		summary.RiderID,
		summary.Date,
		nullString(summary.ReportingTime),
		summary.CreatedAt,
	)

	return err
}

// GetByRiderAndDate retrieves the summary for a rider on a date.
// Returns nil if none exists.
func (r *SummaryRepository) GetByRiderAndDate(ctx context.Context, riderID, date string) (*domain.DailySummary, error) {
	query := `
		SELECT id, rider_id, date, reporting_time, created_at
		FROM daily_summaries
		WHERE rider_id = $1 AND date = $2
	`

	summary, err := scanSummary(r.q.QueryRowContext(ctx, query, riderID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return summary, nil
}

// ListByRiderAndRange retrieves a rider's summaries with dates in the
// inclusive range, ordered by date.
func (r *SummaryRepository) ListByRiderAndRange(ctx context.Context, riderID, startDate, endDate string) ([]*domain.DailySummary, error) {
	query := `
		SELECT id, rider_id, date, reporting_time, created_at
		FROM daily_summaries
		WHERE rider_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	return r.querySummaries(ctx, query, riderID, startDate, endDate)
}

// GetAll retrieves recent summaries.
func (r *SummaryRepository) GetAll(ctx context.Context) ([]*domain.DailySummary, error) {
	query := `
		SELECT id, rider_id, date, reporting_time, created_at
		FROM daily_summaries ORDER BY date DESC LIMIT 100
	`

	return r.querySummaries(ctx, query)
}

func (r *SummaryRepository) querySummaries(ctx context.Context, query string, args ...any) ([]*domain.DailySummary, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*domain.DailySummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

func scanSummary(row rowScanner) (*domain.DailySummary, error) {
	var summary domain.DailySummary
	var date time.Time
	var reportingTime sql.NullString

	if err := row.Scan(
		&summary.ID,
		&summary.RiderID,
		&date,
		&reportingTime,
		&summary.CreatedAt,
	); err != nil {
		return nil, err
	}

	summary.Date = date.Format(domain.DateLayout)
	summary.ReportingTime = reportingTime.String

	return &summary, nil
}

// Ensure SummaryRepository implements repository.SummaryRepository.
var _ repository.SummaryRepository = (*SummaryRepository)(nil)
