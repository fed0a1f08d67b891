package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"riderperf/internal/domain"
	"riderperf/internal/redis"
	"riderperf/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK RIDER REPOSITORY
// ──────────────────────────────────────────────

// MockRiderRepository is a mock implementation of RiderRepository.
type MockRiderRepository struct {
	mu     sync.RWMutex
	riders map[string]*domain.Rider

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockRiderRepository creates a new mock rider repository.
func NewMockRiderRepository() *MockRiderRepository {
	return &MockRiderRepository{
		riders: make(map[string]*domain.Rider),
	}
}

// AddRider adds a rider to the mock repository.
func (m *MockRiderRepository) AddRider(rider *domain.Rider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.riders[rider.ID] = rider
}

func (m *MockRiderRepository) Create(ctx context.Context, rider *domain.Rider) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.riders[rider.ID] = rider
	return nil
}

func (m *MockRiderRepository) GetByID(ctx context.Context, id string) (*domain.Rider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rider, ok := m.riders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *rider
	return &copy, nil
}

func (m *MockRiderRepository) GetByPhone(ctx context.Context, phone string) (*domain.Rider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.riders {
		if r.Phone == phone {
			copy := *r
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockRiderRepository) GetAll(ctx context.Context) ([]*domain.Rider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	riders := make([]*domain.Rider, 0, len(m.riders))
	for _, r := range m.riders {
		copy := *r
		riders = append(riders, &copy)
	}
	return riders, nil
}

// ──────────────────────────────────────────────
// MOCK ZONE REPOSITORY
// ──────────────────────────────────────────────

// MockZoneRepository is a mock implementation of ZoneRepository.
type MockZoneRepository struct {
	mu    sync.RWMutex
	zones map[string]*domain.Zone

	// Counters for verification
	CreateCallCount int32
	GetAllCallCount int32

	// Error injection
	CreateError error
	GetAllError error
}

// NewMockZoneRepository creates a new mock zone repository.
func NewMockZoneRepository() *MockZoneRepository {
	return &MockZoneRepository{
		zones: make(map[string]*domain.Zone),
	}
}

// AddZone adds a zone to the mock repository.
func (m *MockZoneRepository) AddZone(zone *domain.Zone) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zones[zone.ID] = zone
}

func (m *MockZoneRepository) Create(ctx context.Context, zone *domain.Zone) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zones[zone.ID] = zone
	return nil
}

func (m *MockZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	zone, ok := m.zones[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *zone
	return &copy, nil
}

func (m *MockZoneRepository) GetByName(ctx context.Context, name string) (*domain.Zone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, z := range m.zones {
		if z.Name == name {
			copy := *z
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockZoneRepository) GetAll(ctx context.Context) ([]*domain.Zone, error) {
	atomic.AddInt32(&m.GetAllCallCount, 1)
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	zones := make([]*domain.Zone, 0, len(m.zones))
	for _, z := range m.zones {
		copy := *z
		zones = append(zones, &copy)
	}
	return zones, nil
}

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.Trip
	order []string

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
	ListError   error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{
		trips: make(map[string]*domain.Trip),
	}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	m.order = append(m.order, trip.ID)
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	m.order = append(m.order, trip.ID)
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *trip
	return &copy, nil
}

func (m *MockTripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trips := make([]*domain.Trip, 0, len(m.order))
	for _, id := range m.order {
		copy := *m.trips[id]
		trips = append(trips, &copy)
	}
	return trips, nil
}

// ListByRiderAndRange filters by rider and date range in insertion order,
// which is how the SQL query orders for same-date trips.
func (m *MockTripRepository) ListByRiderAndRange(ctx context.Context, riderID, startDate, endDate string) ([]*domain.Trip, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var trips []*domain.Trip
	for _, id := range m.order {
		t := m.trips[id]
		if t.RiderID != riderID {
			continue
		}
		if t.Date < startDate || t.Date > endDate {
			continue
		}
		copy := *t
		trips = append(trips, &copy)
	}
	return trips, nil
}

// ──────────────────────────────────────────────
// MOCK SUMMARY REPOSITORY
// ──────────────────────────────────────────────

// MockSummaryRepository is a mock implementation of SummaryRepository.
type MockSummaryRepository struct {
	mu        sync.RWMutex
	summaries map[string]*domain.DailySummary
	order     []string

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockSummaryRepository creates a new mock summary repository.
func NewMockSummaryRepository() *MockSummaryRepository {
	return &MockSummaryRepository{
		summaries: make(map[string]*domain.DailySummary),
	}
}

// AddSummary adds a summary to the mock repository.
func (m *MockSummaryRepository) AddSummary(summary *domain.DailySummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries[summary.ID] = summary
	m.order = append(m.order, summary.ID)
}

func (m *MockSummaryRepository) Create(ctx context.Context, summary *domain.DailySummary) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries[summary.ID] = summary
	m.order = append(m.order, summary.ID)
	return nil
}

func (m *MockSummaryRepository) GetByRiderAndDate(ctx context.Context, riderID, date string) (*domain.DailySummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.summaries {
		if s.RiderID == riderID && s.Date == date {
			copy := *s
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockSummaryRepository) ListByRiderAndRange(ctx context.Context, riderID, startDate, endDate string) ([]*domain.DailySummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var summaries []*domain.DailySummary
	for _, id := range m.order {
		s := m.summaries[id]
		if s.RiderID != riderID {
			continue
		}
		if s.Date < startDate || s.Date > endDate {
			continue
		}
		copy := *s
		summaries = append(summaries, &copy)
	}
	return summaries, nil
}

func (m *MockSummaryRepository) GetAll(ctx context.Context) ([]*domain.DailySummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	summaries := make([]*domain.DailySummary, 0, len(m.order))
	for _, id := range m.order {
		copy := *m.summaries[id]
		summaries = append(summaries, &copy)
	}
	return summaries, nil
}

// ──────────────────────────────────────────────
// MOCK ZONE CACHE
// ──────────────────────────────────────────────

// MockZoneCache is an in-memory mock of the Redis zone cache.
type MockZoneCache struct {
	mu    sync.RWMutex
	zones map[string]*redis.CachedZone
	list  []redis.CachedZone

	// Counters for verification
	GetZoneCallCount    int32
	SetZoneCallCount    int32
	InvalidateCallCount int32

	// Error injection
	GetZoneError error
}

// NewMockZoneCache creates a new mock zone cache.
func NewMockZoneCache() *MockZoneCache {
	return &MockZoneCache{
		zones: make(map[string]*redis.CachedZone),
	}
}

func (m *MockZoneCache) GetZone(ctx context.Context, zoneID string) (*redis.CachedZone, error) {
	atomic.AddInt32(&m.GetZoneCallCount, 1)
	if m.GetZoneError != nil {
		return nil, m.GetZoneError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	zone, ok := m.zones[zoneID]
	if !ok {
		return nil, nil // Cache miss
	}
	copy := *zone
	return &copy, nil
}

func (m *MockZoneCache) SetZone(ctx context.Context, zone *redis.CachedZone) error {
	atomic.AddInt32(&m.SetZoneCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *zone
	m.zones[zone.ID] = &copy
	return nil
}

func (m *MockZoneCache) GetZoneList(ctx context.Context) ([]redis.CachedZone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.list == nil {
		return nil, nil // Cache miss
	}
	list := make([]redis.CachedZone, len(m.list))
	for i := range m.list {
		list[i] = m.list[i]
	}
	return list, nil
}

func (m *MockZoneCache) SetZoneList(ctx context.Context, zones []redis.CachedZone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = make([]redis.CachedZone, len(zones))
	for i := range zones {
		m.list[i] = zones[i]
	}
	return nil
}

func (m *MockZoneCache) InvalidateZones(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = nil
	return nil
}

// ──────────────────────────────────────────────
// MOCK SUMMARY LOCK
// ──────────────────────────────────────────────

// MockSummaryLock is an in-memory mock of the Redis summary lock.
type MockSummaryLock struct {
	mu    sync.Mutex
	locks map[string]bool

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockSummaryLock creates a new mock summary lock.
func NewMockSummaryLock() *MockSummaryLock {
	return &MockSummaryLock{
		locks: make(map[string]bool),
	}
}

func (m *MockSummaryLock) AcquireSummaryLock(ctx context.Context, riderID, date string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := riderID + ":" + date
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

func (m *MockSummaryLock) ReleaseSummaryLock(ctx context.Context, riderID, date string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, riderID+":"+date)
	return nil
}

// HoldLock pre-acquires a lock so the next acquisition attempt fails.
func (m *MockSummaryLock) HoldLock(riderID, date string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locks[riderID+":"+date] = true
}

// Compile-time interface checks.
var (
	_ repository.RiderRepository   = (*MockRiderRepository)(nil)
	_ repository.ZoneRepository    = (*MockZoneRepository)(nil)
	_ repository.TripRepository    = (*MockTripRepository)(nil)
	_ repository.SummaryRepository = (*MockSummaryRepository)(nil)
	_ redis.ZoneCacheInterface     = (*MockZoneCache)(nil)
	_ redis.SummaryLockInterface   = (*MockSummaryLock)(nil)
)
