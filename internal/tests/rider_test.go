package tests

import (
	"context"
	"errors"
	"testing"

	"riderperf/internal/domain"
	"riderperf/internal/service"
)

// ──────────────────────────────────────────────
// RIDER REGISTRATION
// ──────────────────────────────────────────────

func TestRiderRegistration_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	riderService := service.NewRiderService(riderRepo)

	rider, err := riderService.Register(context.Background(), service.RegisterRiderRequest{
		Name:  "Kwame Mensah",
		Phone: "+233201234567",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if rider.ID == "" {
		t.Error("expected rider ID to be set")
	}
	if !rider.Active {
		t.Error("expected new rider to be active")
	}
	if rider.JoinedAt.IsZero() {
		t.Error("expected joined timestamp to be set")
	}
}

func TestRiderRegistration_MissingName_Fails(t *testing.T) {
	t.Parallel()

	riderService := service.NewRiderService(NewMockRiderRepository())

	_, err := riderService.Register(context.Background(), service.RegisterRiderRequest{
		Phone: "+233201234567",
	})
	if !errors.Is(err, service.ErrInvalidRiderName) {
		t.Errorf("expected ErrInvalidRiderName, got: %v", err)
	}
}

func TestRiderRegistration_DuplicatePhone_Fails(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame", Phone: "+233201234567"})
	riderService := service.NewRiderService(riderRepo)

	_, err := riderService.Register(context.Background(), service.RegisterRiderRequest{
		Name:  "Ama",
		Phone: "+233201234567",
	})
	if !errors.Is(err, service.ErrPhoneTaken) {
		t.Errorf("expected ErrPhoneTaken, got: %v", err)
	}
}

func TestRiderRegistration_NoPhone_SkipsUniquenessCheck(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Name: "Kwame"})
	riderService := service.NewRiderService(riderRepo)

	// Two riders without phone numbers must not collide.
	rider, err := riderService.Register(context.Background(), service.RegisterRiderRequest{
		Name: "Ama",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if rider.ID == "" {
		t.Error("expected rider ID to be set")
	}
}
