package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore caches zone records in Redis. Zones are read on every
// performance report (the zone-name lookup map) and on trip creation
// (distance pre-fill), but change rarely. Derived reports are never cached.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// ZoneCacheTTL bounds staleness of cached zone records.
const ZoneCacheTTL = 5 * time.Minute

const (
	zoneCachePrefix = "cache:zone:"
	zoneListKey     = "cache:zones"
)

// CachedZone represents a cached zone record.
type CachedZone struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Coordinates string  `json:"coordinates,omitempty"`
	DefaultKm   float64 `json:"default_km,omitempty"`
}

// GetZone retrieves a zone from cache. Returns nil on a miss.
func (s *CacheStore) GetZone(ctx context.Context, zoneID string) (*CachedZone, error) {
	data, err := s.client.Get(ctx, zoneCachePrefix+zoneID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var zone CachedZone
	if err := json.Unmarshal(data, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// SetZone stores a zone in cache.
func (s *CacheStore) SetZone(ctx context.Context, zone *CachedZone) error {
	data, err := json.Marshal(zone)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, zoneCachePrefix+zone.ID, data, ZoneCacheTTL).Err()
}

// GetZoneList retrieves the full zone list from cache. Returns nil on a miss.
func (s *CacheStore) GetZoneList(ctx context.Context) ([]CachedZone, error) {
	data, err := s.client.Get(ctx, zoneListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var zones []CachedZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// SetZoneList stores the full zone list in cache.
func (s *CacheStore) SetZoneList(ctx context.Context, zones []CachedZone) error {
	data, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, zoneListKey, data, ZoneCacheTTL).Err()
}

// InvalidateZones drops the zone list so the next read sees a new zone.
// Per-zone entries expire on their own.
func (s *CacheStore) InvalidateZones(ctx context.Context) error {
	return s.client.Del(ctx, zoneListKey).Err()
}
