package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"riderperf/internal/domain"
	"riderperf/internal/service"
)

// ──────────────────────────────────────────────
// DAILY SUMMARY (CHECK-IN)
// ──────────────────────────────────────────────

func TestSummaryCreation_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	summaryRepo := NewMockSummaryRepository()
	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame"})
	lock := NewMockSummaryLock()

	summaryService := service.NewSummaryService(summaryRepo, riderRepo, lock)

	summary, err := summaryService.CreateSummary(context.Background(), service.CreateSummaryRequest{
		RiderID:       "rider-1",
		Date:          "2025-03-03",
		ReportingTime: "08:15",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if summary.ID == "" {
		t.Error("expected summary ID to be set")
	}
	if summary.ReportingTime != "08:15" {
		t.Errorf("expected reporting time kept, got %q", summary.ReportingTime)
	}
	// The lock is released once the summary is stored.
	if got := atomic.LoadInt32(&lock.ReleaseCallCount); got != 1 {
		t.Errorf("expected lock released once, got %d", got)
	}
}

func TestSummaryCreation_DuplicateDate_Fails(t *testing.T) {
	t.Parallel()

	summaryRepo := NewMockSummaryRepository()
	summaryRepo.AddSummary(&domain.DailySummary{
		ID: "s1", RiderID: "rider-1", Date: "2025-03-03", ReportingTime: "08:00",
	})
	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame"})

	summaryService := service.NewSummaryService(summaryRepo, riderRepo, NewMockSummaryLock())

	_, err := summaryService.CreateSummary(context.Background(), service.CreateSummaryRequest{
		RiderID: "rider-1",
		Date:    "2025-03-03",
	})
	if !errors.Is(err, service.ErrSummaryExists) {
		t.Errorf("expected ErrSummaryExists, got: %v", err)
	}
}

func TestSummaryCreation_LockHeld_Rejected(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame"})
	lock := NewMockSummaryLock()
	lock.HoldLock("rider-1", "2025-03-03")

	summaryService := service.NewSummaryService(NewMockSummaryRepository(), riderRepo, lock)

	_, err := summaryService.CreateSummary(context.Background(), service.CreateSummaryRequest{
		RiderID: "rider-1",
		Date:    "2025-03-03",
	})
	if !errors.Is(err, service.ErrSummaryInProgress) {
		t.Errorf("expected ErrSummaryInProgress, got: %v", err)
	}
}

func TestSummaryCreation_LockErrorFallsThrough(t *testing.T) {
	t.Parallel()

	summaryRepo := NewMockSummaryRepository()
	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame"})
	lock := NewMockSummaryLock()
	lock.AcquireError = errors.New("redis down")

	summaryService := service.NewSummaryService(summaryRepo, riderRepo, lock)

	// Redis being down must not block check-ins; uniqueness still holds via
	// the repository check.
	summary, err := summaryService.CreateSummary(context.Background(), service.CreateSummaryRequest{
		RiderID: "rider-1",
		Date:    "2025-03-03",
	})
	if err != nil {
		t.Fatalf("expected creation despite lock error, got: %v", err)
	}
	if summary == nil || summary.ID == "" {
		t.Fatal("expected summary to be created")
	}
}

func TestSummaryCreation_InvalidDate_Fails(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame"})
	summaryService := service.NewSummaryService(NewMockSummaryRepository(), riderRepo, NewMockSummaryLock())

	_, err := summaryService.CreateSummary(context.Background(), service.CreateSummaryRequest{
		RiderID: "rider-1",
		Date:    "03-03-2025",
	})
	if !errors.Is(err, service.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got: %v", err)
	}
}
