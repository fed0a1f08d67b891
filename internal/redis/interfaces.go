package redis

import (
	"context"
	"time"
)

// ZoneCacheInterface defines the interface for zone caching operations.
type ZoneCacheInterface interface {
	GetZone(ctx context.Context, zoneID string) (*CachedZone, error)
	SetZone(ctx context.Context, zone *CachedZone) error
	GetZoneList(ctx context.Context) ([]CachedZone, error)
	SetZoneList(ctx context.Context, zones []CachedZone) error
	InvalidateZones(ctx context.Context) error
}

// SummaryLockInterface defines the interface for daily-summary creation locks.
type SummaryLockInterface interface {
	AcquireSummaryLock(ctx context.Context, riderID, date string, ttl time.Duration) (bool, error)
	ReleaseSummaryLock(ctx context.Context, riderID, date string) error
}

// Ensure concrete types implement interfaces.
var (
	_ ZoneCacheInterface   = (*CacheStore)(nil)
	_ SummaryLockInterface = (*LockStore)(nil)
)
