// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/tsalin/api/internal/platform/constants"
)

// RedisStatsCache caches per-pair aggregation responses in Redis.
//
// Every failure is logged and otherwise ignored: a cache miss or a dead
// Redis node degrades to recomputation, never to a failed request.
type RedisStatsCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisStatsCache(client *redis.Client, logger *slog.Logger) *RedisStatsCache {
	return &RedisStatsCache{
		client: client,
		logger: logger,
	}
}

func statsKey(industryID, positionID string) string {
	return constants.RedisPrefixSalaryStats + industryID + ":" + positionID
}

func (cache *RedisStatsCache) GetStats(ctx context.Context, industryID, positionID string) (*StatsResponse, bool) {
	raw, err := cache.client.Get(ctx, statsKey(industryID, positionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.WarnContext(ctx, "salary_stats_cache_read_failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	stats := &StatsResponse{}
	if err := json.Unmarshal(raw, stats); err != nil {
		cache.logger.WarnContext(ctx, "salary_stats_cache_corrupt", slog.String("error", err.Error()))
		return nil, false
	}
	return stats, true
}

func (cache *RedisStatsCache) SetStats(ctx context.Context, industryID, positionID string, stats *StatsResponse) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := cache.client.Set(ctx, statsKey(industryID, positionID), raw, constants.SalaryStatsCacheTTL).Err(); err != nil {
		cache.logger.WarnContext(ctx, "salary_stats_cache_write_failed", slog.String("error", err.Error()))
	}
}

func (cache *RedisStatsCache) InvalidateStats(ctx context.Context, industryID, positionID string) {
	if err := cache.client.Del(ctx, statsKey(industryID, positionID)).Err(); err != nil {
		cache.logger.WarnContext(ctx, "salary_stats_cache_invalidate_failed", slog.String("error", err.Error()))
	}
}
