// Package cache keeps computed day schedules in Redis so repeated
// availability lookups for the same court and date skip the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewScheduleCache(client *redis.Client, ttl time.Duration, log logger.Logger) *ScheduleCache {
	return &ScheduleCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func dayKey(courtID, fecha string) string {
	return fmt.Sprintf("schedule:%s:%s", courtID, fecha)
}

func (c *ScheduleCache) GetDay(ctx context.Context, courtID, fecha string) (*domain.DaySchedule, bool) {
	val, err := c.client.Get(ctx, dayKey(courtID, fecha)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("schedule cache read failed", logger.Any("error", err))
		return nil, false
	}

	var day domain.DaySchedule
	if err = json.Unmarshal([]byte(val), &day); err != nil {
		c.logger.Warn("schedule cache decode failed", logger.Any("error", err))
		return nil, false
	}

	return &day, true
}

func (c *ScheduleCache) SetDay(ctx context.Context, courtID, fecha string, s *domain.DaySchedule) {
	data, err := json.Marshal(s)
	if err != nil {
		c.logger.Warn("schedule cache encode failed", logger.Any("error", err))
		return
	}

	if err = c.client.Set(ctx, dayKey(courtID, fecha), data, c.ttl).Err(); err != nil {
		c.logger.Warn("schedule cache write failed", logger.Any("error", err))
	}
}

func (c *ScheduleCache) InvalidateDay(ctx context.Context, courtID, fecha string) {
	if err := c.client.Del(ctx, dayKey(courtID, fecha)).Err(); err != nil {
		c.logger.Warn("schedule cache invalidate failed", logger.Any("error", err))
	}
}

func (c *ScheduleCache) InvalidateCourt(ctx context.Context, courtID string) {
	iter := c.client.Scan(ctx, 0, dayKey(courtID, "*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("schedule cache invalidate failed", logger.Any("error", err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("schedule cache scan failed", logger.Any("error", err))
	}
}

// Noop satisfies the cache port when Redis is disabled.
type Noop struct{}

func (Noop) GetDay(context.Context, string, string) (*domain.DaySchedule, bool) { return nil, false }

func (Noop) SetDay(context.Context, string, string, *domain.DaySchedule) {}

func (Noop) InvalidateDay(context.Context, string, string) {}

func (Noop) InvalidateCourt(context.Context, string) {}
