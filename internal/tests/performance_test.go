package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"riderperf/internal/domain"
	"riderperf/internal/repository"
	"riderperf/internal/scoring"
	"riderperf/internal/service"
)

// ──────────────────────────────────────────────
// PERFORMANCE REPORTING
// ──────────────────────────────────────────────

func newPerformanceService(
	tripRepo *MockTripRepository,
	summaryRepo *MockSummaryRepository,
	riderRepo *MockRiderRepository,
	zoneRepo *MockZoneRepository,
) *service.PerformanceService {
	zoneService := service.NewZoneService(zoneRepo, NewMockZoneCache())
	scorer := scoring.NewScorer(scoring.DefaultConfig())
	return service.NewPerformanceService(tripRepo, summaryRepo, riderRepo, zoneService, scorer)
}

func TestPerformanceReport_EndToEnd(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame", Active: true})

	zoneRepo := NewMockZoneRepository()
	zoneRepo.AddZone(&domain.Zone{ID: "z1", Name: "Madina"})
	zoneRepo.AddZone(&domain.Zone{ID: "z2", Name: "Accra"})

	tripRepo := NewMockTripRepository()
	day1 := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	tripRepo.AddTrip(&domain.Trip{
		ID: "t1", RiderID: "rider-1", Date: "2025-03-03",
		PickupZoneID: "z1", DeliveryZoneID: "z2",
		PickupTime:        day1,
		ArrivalTime:       day1.Add(2 * time.Minute),
		DeliveryTimeRider: day1.Add(28 * time.Minute),
		ExpectedMins:      30,
	})
	tripRepo.AddTrip(&domain.Trip{
		ID: "t2", RiderID: "rider-1", Date: "2025-03-04",
		PickupZoneID: "z2", DeliveryZoneID: "z1",
		PickupTime:        day2,
		ArrivalTime:       day2.Add(12 * time.Minute),
		DeliveryTimeRider: day2.Add(47 * time.Minute),
		ExpectedMins:      30,
	})
	// Outside the requested range, must be excluded.
	tripRepo.AddTrip(&domain.Trip{
		ID: "t3", RiderID: "rider-1", Date: "2025-02-28",
	})
	// Different rider, must be excluded.
	tripRepo.AddTrip(&domain.Trip{
		ID: "t4", RiderID: "rider-2", Date: "2025-03-03",
	})

	summaryRepo := NewMockSummaryRepository()
	summaryRepo.AddSummary(&domain.DailySummary{
		ID: "s1", RiderID: "rider-1", Date: "2025-03-03", ReportingTime: "08:15",
	})
	summaryRepo.AddSummary(&domain.DailySummary{
		ID: "s2", RiderID: "rider-1", Date: "2025-03-04", ReportingTime: "09:00",
	})

	perfService := newPerformanceService(tripRepo, summaryRepo, riderRepo, zoneRepo)

	report, err := perfService.Report(context.Background(), "rider-1", "2025-03-03", "2025-03-04")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if report.Rider.ID != "rider-1" {
		t.Errorf("expected rider-1, got %s", report.Rider.ID)
	}
	if report.Metrics.TotalTrips != 2 {
		t.Errorf("expected 2 trips in range, got %d", report.Metrics.TotalTrips)
	}
	// Day 1 scores 10, day 2 scores 7.4; average 8.7.
	if report.Metrics.AverageRideScore != 8.7 {
		t.Errorf("expected average 8.7, got %.2f", report.Metrics.AverageRideScore)
	}
	if report.Metrics.TopDay.Date != "03/03/2025" {
		t.Errorf("expected top day 03/03/2025, got %s", report.Metrics.TopDay.Date)
	}
	if report.Metrics.Punctuality.PunctualDays != 1 || report.Metrics.Punctuality.TotalDays != 2 {
		t.Errorf("unexpected punctuality: %+v", report.Metrics.Punctuality)
	}
	if len(report.Trips) != 2 {
		t.Fatalf("expected 2 scored trips, got %d", len(report.Trips))
	}
	if report.Trips[0].PickupZoneName != "Madina" {
		t.Errorf("expected pickup zone Madina, got %q", report.Trips[0].PickupZoneName)
	}
}

func TestPerformanceReport_UnknownRider_Fails(t *testing.T) {
	t.Parallel()

	perfService := newPerformanceService(
		NewMockTripRepository(), NewMockSummaryRepository(),
		NewMockRiderRepository(), NewMockZoneRepository(),
	)

	_, err := perfService.Report(context.Background(), "ghost", "2025-03-03", "2025-03-09")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestPerformanceReport_InvalidRange_Fails(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame"})

	perfService := newPerformanceService(
		NewMockTripRepository(), NewMockSummaryRepository(),
		riderRepo, NewMockZoneRepository(),
	)

	testCases := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{"end before start", "2025-03-09", "2025-03-03", service.ErrInvalidDateRange},
		{"bad start date", "soon", "2025-03-09", service.ErrInvalidDate},
		{"bad end date", "2025-03-03", "later", service.ErrInvalidDate},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := perfService.Report(context.Background(), "rider-1", tc.start, tc.end)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got: %v", tc.wantErr, err)
			}
		})
	}
}

func TestPerformanceReport_NoTripsInRange(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame"})

	perfService := newPerformanceService(
		NewMockTripRepository(), NewMockSummaryRepository(),
		riderRepo, NewMockZoneRepository(),
	)

	report, err := perfService.Report(context.Background(), "rider-1", "2025-03-03", "2025-03-09")
	if err != nil {
		t.Fatalf("expected empty report, got: %v", err)
	}
	if report.Metrics.TotalTrips != 0 {
		t.Errorf("expected 0 trips, got %d", report.Metrics.TotalTrips)
	}
	if report.Metrics.MostFrequentZone != "N/A" {
		t.Errorf("expected N/A zones, got %q", report.Metrics.MostFrequentZone)
	}
	if len(report.Trips) != 0 {
		t.Errorf("expected no scored trips, got %d", len(report.Trips))
	}
}
