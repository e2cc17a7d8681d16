package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotLock is a best-effort advisory lock around the booking transaction.
// The database row lock is the real guard; this just keeps two racing
// customers from both paying the cost of the transaction path.
type SlotLock struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotLock(redisURL string) (*SlotLock, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &SlotLock{
		rdb: redis.NewClient(opts),
		ttl: 15 * time.Second,
	}, nil
}

func slotKey(barberID uint, date, startTime string) string {
	return fmt.Sprintf("slot:%d:%s:%s", barberID, date, startTime)
}

// Acquire returns false when another booking currently holds the slot key.
// Redis being down degrades to "acquired": availability of the booking
// flow wins over the optimization.
func (l *SlotLock) Acquire(ctx context.Context, barberID uint, date, startTime string) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, slotKey(barberID, date, startTime), 1, l.ttl).Result()
	if err != nil {
		return true, nil
	}
	return ok, nil
}

func (l *SlotLock) Release(ctx context.Context, barberID uint, date, startTime string) {
	l.rdb.Del(ctx, slotKey(barberID, date, startTime))
}
