package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"riderperf/internal/distance"
	"riderperf/internal/domain"
	"riderperf/internal/repository"
)

// TripService handles trip recording. Trips are immutable once created;
// missing distance and expected-time fields are pre-filled from the
// distance resolver when the zones allow it.
type TripService struct {
	tripRepo    repository.TripRepository
	riderRepo   repository.RiderRepository
	zoneService *ZoneService
	resolver    *distance.Resolver
}

// NewTripService creates a new TripService.
func NewTripService(
	tripRepo repository.TripRepository,
	riderRepo repository.RiderRepository,
	zoneService *ZoneService,
	resolver *distance.Resolver,
) *TripService {
	return &TripService{
		tripRepo:    tripRepo,
		riderRepo:   riderRepo,
		zoneService: zoneService,
		resolver:    resolver,
	}
}

// CreateTripRequest contains the parameters for recording a trip.
type CreateTripRequest struct {
	RiderID              string
	Date                 string
	PickupZoneID         string
	DeliveryZoneID       string
	PickupTime           time.Time
	ArrivalTime          time.Time
	DeliveryTimeRider    time.Time
	DeliveryTimeCustomer time.Time
	DistanceKm           float64
	ExpectedMins         int
	CustomerConfirmed    bool
	Notes                string
}

// CreateTrip records a new trip for a rider.
func (s *TripService) CreateTrip(ctx context.Context, req CreateTripRequest) (*domain.Trip, error) {
	if req.RiderID == "" {
		return nil, ErrInvalidRiderID
	}

	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	// Rider must exist; repository.ErrNotFound propagates.
	if _, err := s.riderRepo.GetByID(ctx, req.RiderID); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		ID:                   uuid.New().String(),
		RiderID:              req.RiderID,
		Date:                 req.Date,
		PickupZoneID:         req.PickupZoneID,
		DeliveryZoneID:       req.DeliveryZoneID,
		PickupTime:           req.PickupTime,
		ArrivalTime:          req.ArrivalTime,
		DeliveryTimeRider:    req.DeliveryTimeRider,
		DeliveryTimeCustomer: req.DeliveryTimeCustomer,
		DistanceKm:           req.DistanceKm,
		ExpectedMins:         req.ExpectedMins,
		CustomerConfirmed:    req.CustomerConfirmed,
		Notes:                req.Notes,
		CreatedAt:            time.Now(),
	}

	s.prefillEstimates(ctx, trip)

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// prefillEstimates fills distance and expected delivery time when absent.
// Resolution failure leaves the fields blank; it never blocks creation.
func (s *TripService) prefillEstimates(ctx context.Context, trip *domain.Trip) {
	if trip.DistanceKm == 0 && trip.PickupZoneID != "" && trip.DeliveryZoneID != "" {
		if km, ok := s.resolveZoneDistance(ctx, trip.PickupZoneID, trip.DeliveryZoneID); ok {
			trip.DistanceKm = km
		}
	}

	if trip.ExpectedMins == 0 && trip.DistanceKm > 0 {
		trip.ExpectedMins = s.resolver.ExpectedDeliveryMins(trip.DistanceKm)
	}
}

func (s *TripService) resolveZoneDistance(ctx context.Context, pickupZoneID, deliveryZoneID string) (float64, bool) {
	pickup, err := s.zoneService.GetZone(ctx, pickupZoneID)
	if err != nil {
		return 0, false
	}
	delivery, err := s.zoneService.GetZone(ctx, deliveryZoneID)
	if err != nil {
		return 0, false
	}

	return s.resolver.Resolve(pickup, delivery)
}

// DistanceEstimate is the result of a zone-to-zone distance lookup.
// Resolved is false when no strategy produced a distance, which callers
// should render as a blank field, not zero.
type DistanceEstimate struct {
	DistanceKm   float64
	ExpectedMins int
	Resolved     bool
}

// EstimateDistance resolves the distance and expected delivery time between
// two zones, for pre-filling trip entry forms.
func (s *TripService) EstimateDistance(ctx context.Context, pickupZoneID, deliveryZoneID string) (DistanceEstimate, error) {
	if pickupZoneID == "" || deliveryZoneID == "" {
		return DistanceEstimate{}, ErrInvalidZoneID
	}

	pickup, err := s.zoneService.GetZone(ctx, pickupZoneID)
	if err != nil {
		return DistanceEstimate{}, err
	}
	delivery, err := s.zoneService.GetZone(ctx, deliveryZoneID)
	if err != nil {
		return DistanceEstimate{}, err
	}

	km, ok := s.resolver.Resolve(pickup, delivery)
	if !ok {
		return DistanceEstimate{}, nil
	}

	return DistanceEstimate{
		DistanceKm:   km,
		ExpectedMins: s.resolver.ExpectedDeliveryMins(km),
		Resolved:     true,
	}, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	return s.tripRepo.GetByID(ctx, tripID)
}

// GetAllTrips retrieves recent trips.
func (s *TripService) GetAllTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.tripRepo.GetAll(ctx)
}
