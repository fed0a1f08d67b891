package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireSummaryLock attempts to acquire the lock guarding daily-summary
// creation for a rider on a date. Returns true if acquired, false if a
// concurrent creation already holds it.
func (s *LockStore) AcquireSummaryLock(ctx context.Context, riderID, date string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:summary:%s:%s", riderID, date)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseSummaryLock releases the summary-creation lock.
func (s *LockStore) ReleaseSummaryLock(ctx context.Context, riderID, date string) error {
	key := fmt.Sprintf("lock:summary:%s:%s", riderID, date)

	return s.client.Del(ctx, key).Err()
}
