package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/redis/go-redis/v9"
)

const defaultReportTTL = 5 * time.Minute

// ReportCache stores rendered reports in Redis. Keys carry the owning user so
// one invalidation call can drop everything a write made stale.
type ReportCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewReportCache(redisClient *redis.Client) *ReportCache {
	return &ReportCache{
		redis: redisClient,
		ttl:   defaultReportTTL,
	}
}

func reportKey(userID, kind, id string) string {
	return fmt.Sprintf("report:%s:%s:%s", userID, kind, id)
}

// Get loads a cached report into dest. The second return value is false on a
// cache miss; cache failures degrade to a miss rather than failing the
// request.
func (c *ReportCache) Get(ctx context.Context, userID, kind, id string, dest interface{}) (bool, error) {
	data, err := c.redis.Get(ctx, reportKey(userID, kind, id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		logger.GetLogger().Warnw("Report cache read failed", "kind", kind, "error", err)
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decoding cached report: %w", err)
	}
	return true, nil
}

// Set caches a rendered report. Failures are logged and swallowed; the report
// was already computed and the caller should still get it.
func (c *ReportCache) Set(ctx context.Context, userID, kind, id string, report interface{}) {
	data, err := json.Marshal(report)
	if err != nil {
		logger.GetLogger().Errorw("Report cache encode failed", "kind", kind, "error", err)
		return
	}

	if err := c.redis.Set(ctx, reportKey(userID, kind, id), data, c.ttl).Err(); err != nil {
		logger.GetLogger().Warnw("Report cache write failed", "kind", kind, "error", err)
	}
}

// InvalidateUser drops every cached report of the user. Writes to shifts,
// fuel, expenses, periods or vehicles all call this; a fresh report is cheap
// next to serving a stale one.
func (c *ReportCache) InvalidateUser(ctx context.Context, userID string) {
	pattern := fmt.Sprintf("report:%s:*", userID)

	var cursor uint64
	for {
		keys, next, err := c.redis.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			logger.GetLogger().Warnw("Report cache invalidation failed", "userId", userID, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.redis.Del(ctx, keys...).Err(); err != nil {
				logger.GetLogger().Warnw("Report cache delete failed", "userId", userID, "error", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
