package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"riderperf/internal/domain"
	"riderperf/internal/repository"
)

// RiderService handles rider registration and lookup.
type RiderService struct {
	riderRepo repository.RiderRepository
}

// NewRiderService creates a new RiderService.
func NewRiderService(riderRepo repository.RiderRepository) *RiderService {
	return &RiderService{riderRepo: riderRepo}
}

// RegisterRiderRequest contains the parameters for registering a rider.
type RegisterRiderRequest struct {
	Name   string
	Phone  string
	ZoneID string
}

// Register creates a new rider.
func (s *RiderService) Register(ctx context.Context, req RegisterRiderRequest) (*domain.Rider, error) {
	if req.Name == "" {
		return nil, ErrInvalidRiderName
	}

	if req.Phone != "" {
		existing, err := s.riderRepo.GetByPhone(ctx, req.Phone)
		if err != nil && err != repository.ErrNotFound {
			return nil, err
		}
		if existing != nil {
			return nil, ErrPhoneTaken
		}
	}

	rider := &domain.Rider{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Phone:    req.Phone,
		ZoneID:   req.ZoneID,
		Active:   true,
		JoinedAt: time.Now(),
	}

	if err := s.riderRepo.Create(ctx, rider); err != nil {
		return nil, err
	}

	return rider, nil
}

// GetRider retrieves a rider by ID.
func (s *RiderService) GetRider(ctx context.Context, riderID string) (*domain.Rider, error) {
	if riderID == "" {
		return nil, ErrInvalidRiderID
	}

	return s.riderRepo.GetByID(ctx, riderID)
}

// GetAllRiders retrieves all riders.
func (s *RiderService) GetAllRiders(ctx context.Context) ([]*domain.Rider, error) {
	return s.riderRepo.GetAll(ctx)
}
