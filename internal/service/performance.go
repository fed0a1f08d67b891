package service

import (
	"context"
	"time"

	"riderperf/internal/domain"
	"riderperf/internal/repository"
	"riderperf/internal/scoring"
)

// PerformanceService computes a rider's performance report over a date
// range. All derived values are recomputed on every request; nothing is
// cached or stored back.
type PerformanceService struct {
	tripRepo    repository.TripRepository
	summaryRepo repository.SummaryRepository
	riderRepo   repository.RiderRepository
	zoneService *ZoneService
	scorer      *scoring.Scorer
}

// NewPerformanceService creates a new PerformanceService.
func NewPerformanceService(
	tripRepo repository.TripRepository,
	summaryRepo repository.SummaryRepository,
	riderRepo repository.RiderRepository,
	zoneService *ZoneService,
	scorer *scoring.Scorer,
) *PerformanceService {
	return &PerformanceService{
		tripRepo:    tripRepo,
		summaryRepo: summaryRepo,
		riderRepo:   riderRepo,
		zoneService: zoneService,
		scorer:      scorer,
	}
}

// PerformanceReport bundles the derived metrics with the rider and the
// scored trips behind them.
type PerformanceReport struct {
	Rider   *domain.Rider
	Metrics domain.PerformanceMetrics
	Trips   []scoring.ScoredTrip
}

// Report computes the performance report for a rider between start and end
// dates (inclusive, DateLayout strings).
func (s *PerformanceService) Report(ctx context.Context, riderID, startDate, endDate string) (*PerformanceReport, error) {
	if riderID == "" {
		return nil, ErrInvalidRiderID
	}

	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	rider, err := s.riderRepo.GetByID(ctx, riderID)
	if err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.ListByRiderAndRange(ctx, riderID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summaries, err := s.summaryRepo.ListByRiderAndRange(ctx, riderID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	zoneNames, err := s.zoneService.ZoneNameMap(ctx)
	if err != nil {
		return nil, err
	}

	tripValues := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		tripValues = append(tripValues, *t)
	}
	summaryValues := make([]domain.DailySummary, 0, len(summaries))
	for _, ds := range summaries {
		summaryValues = append(summaryValues, *ds)
	}

	metrics := s.scorer.ComputeMetrics(tripValues, summaryValues, start, end, zoneNames)

	return &PerformanceReport{
		Rider:   rider,
		Metrics: metrics,
		Trips:   s.scorer.ScoreTrips(tripValues, zoneNames),
	}, nil
}
