package streak

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/mslepko/simple-workouts-tracker/internal/schedule"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultCacheTTL = 6 * time.Hour
	streakKeyPrefix = "workouts-streak||"
)

// Cache keeps computed streaks in redis so the backward walk does not
// run on every page load. Keys carry the as-of date, so a streak
// computed late in the evening never survives into the next day.
// Stale-dated entries simply expire; completion toggles invalidate
// the current day eagerly.
type Cache struct {
	redisClient *redis.Client
	ttl         time.Duration

	// NowFunc is swapped in tests to pin the invalidation date
	NowFunc func() time.Time
}

func NewCache(redisClient *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		redisClient: redisClient,
		ttl:         ttl,
		NowFunc:     time.Now,
	}
}

func streakKey(exerciseID int, asOf time.Time) string {
	return streakKeyPrefix + schedule.FormatDate(asOf) + "||" + strconv.Itoa(exerciseID)
}

// Get returns the cached streak for the given as-of date, or
// found=false on a cache miss.
func (c *Cache) Get(ctx context.Context, exerciseID int, asOf time.Time) (streakCount int, found bool, err error) {
	cmd := c.redisClient.Get(ctx, streakKey(exerciseID, asOf))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	streakCount, err = strconv.Atoi(cmd.Val())
	if err != nil {
		return 0, false, err
	}

	return streakCount, true, nil
}

func (c *Cache) Set(ctx context.Context, exerciseID int, asOf time.Time, streakCount int) error {
	cmd := c.redisClient.Set(ctx, streakKey(exerciseID, asOf), streakCount, c.ttl)
	return cmd.Err()
}

// Invalidate drops the entry for the current day.
func (c *Cache) Invalidate(ctx context.Context, exerciseID int) error {
	cmd := c.redisClient.Del(ctx, streakKey(exerciseID, c.NowFunc()))
	return cmd.Err()
}
