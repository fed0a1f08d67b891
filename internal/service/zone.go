package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"riderperf/internal/domain"
	"riderperf/internal/redis"
	"riderperf/internal/repository"
)

// ZoneService handles zone management. Zone names key the pre-seeded
// distance matrix, so the service enforces their uniqueness at creation.
type ZoneService struct {
	zoneRepo  repository.ZoneRepository
	zoneCache redis.ZoneCacheInterface
}

// NewZoneService creates a new ZoneService.
func NewZoneService(zoneRepo repository.ZoneRepository, zoneCache redis.ZoneCacheInterface) *ZoneService {
	return &ZoneService{
		zoneRepo:  zoneRepo,
		zoneCache: zoneCache,
	}
}

// CreateZoneRequest contains the parameters for creating a zone.
type CreateZoneRequest struct {
	Name        string
	Coordinates string
	DefaultKm   float64
}

// CreateZone creates a new zone. A duplicate name is rejected rather than
// allowed to shadow matrix lookups.
func (s *ZoneService) CreateZone(ctx context.Context, req CreateZoneRequest) (*domain.Zone, error) {
	if req.Name == "" {
		return nil, ErrInvalidZoneName
	}

	existing, err := s.zoneRepo.GetByName(ctx, req.Name)
	if err != nil && err != repository.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, ErrZoneNameTaken
	}

	zone := &domain.Zone{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Coordinates: req.Coordinates,
		DefaultKm:   req.DefaultKm,
		CreatedAt:   time.Now(),
	}

	if err := s.zoneRepo.Create(ctx, zone); err != nil {
		return nil, err
	}

	if s.zoneCache != nil {
		_ = s.zoneCache.InvalidateZones(ctx)
	}

	return zone, nil
}

// GetZone retrieves a zone by ID, consulting the cache first.
func (s *ZoneService) GetZone(ctx context.Context, zoneID string) (*domain.Zone, error) {
	if zoneID == "" {
		return nil, ErrInvalidZoneID
	}

	if s.zoneCache != nil {
		cached, err := s.zoneCache.GetZone(ctx, zoneID)
		if err == nil && cached != nil {
			return cachedToZone(cached), nil
		}
	}

	zone, err := s.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	if s.zoneCache != nil {
		_ = s.zoneCache.SetZone(ctx, zoneToCached(zone))
	}

	return zone, nil
}

// GetAllZones retrieves all zones, consulting the cache first.
func (s *ZoneService) GetAllZones(ctx context.Context) ([]*domain.Zone, error) {
	if s.zoneCache != nil {
		cached, err := s.zoneCache.GetZoneList(ctx)
		if err == nil && cached != nil {
			zones := make([]*domain.Zone, 0, len(cached))
			for i := range cached {
				zones = append(zones, cachedToZone(&cached[i]))
			}
			return zones, nil
		}
	}

	zones, err := s.zoneRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.zoneCache != nil {
		cached := make([]redis.CachedZone, 0, len(zones))
		for _, z := range zones {
			cached = append(cached, *zoneToCached(z))
		}
		_ = s.zoneCache.SetZoneList(ctx, cached)
	}

	return zones, nil
}

// ZoneNameMap returns a zone ID to display name lookup for all zones.
func (s *ZoneService) ZoneNameMap(ctx context.Context) (map[string]string, error) {
	zones, err := s.GetAllZones(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(zones))
	for _, z := range zones {
		names[z.ID] = z.Name
	}
	return names, nil
}

func zoneToCached(z *domain.Zone) *redis.CachedZone {
	return &redis.CachedZone{
		ID:          z.ID,
		Name:        z.Name,
		Coordinates: z.Coordinates,
		DefaultKm:   z.DefaultKm,
	}
}

func cachedToZone(c *redis.CachedZone) *domain.Zone {
	return &domain.Zone{
		ID:          c.ID,
		Name:        c.Name,
		Coordinates: c.Coordinates,
		DefaultKm:   c.DefaultKm,
	}
}
