package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	syncLockKey = "catalog_sync:lock"
	// syncLockTTL bounds how long a crashed sync can hold the lock.
	syncLockTTL = 10 * time.Minute
)

// SyncLock serialises catalog sync runs across processes with a SET NX key.
type SyncLock struct {
	client *redis.Client
}

func NewSyncLock(client *redis.Client) *SyncLock {
	return &SyncLock{client: client}
}

// Acquire attempts to take the lock. It returns false when another sync run
// currently holds it.
func (l *SyncLock) Acquire(ctx context.Context) (bool, error) {
	ok, err := l.client.SetNX(ctx, syncLockKey, "1", syncLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire sync lock: %w", err)
	}
	return ok, nil
}

// Release drops the lock. Safe to call when the TTL already expired it.
func (l *SyncLock) Release(ctx context.Context) error {
	if err := l.client.Del(ctx, syncLockKey).Err(); err != nil {
		return fmt.Errorf("release sync lock: %w", err)
	}
	return nil
}
