// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package market

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/tsalin/api/internal/platform/constants"
)

// Snapshot cache keys.
const (
	keyPositions = constants.RedisPrefixMarket + "positions"
	keyTallies   = constants.RedisPrefixMarket + "tallies"
	keyObserved  = constants.RedisPrefixMarket + "observed"
)

// RedisSnapshotCache stores market-overview payloads in Redis with the
// shared market TTL. Failures are logged and treated as misses.
type RedisSnapshotCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisSnapshotCache(client *redis.Client, logger *slog.Logger) *RedisSnapshotCache {
	return &RedisSnapshotCache{
		client: client,
		logger: logger,
	}
}

func (cache *RedisSnapshotCache) Get(ctx context.Context, key string, target any) bool {
	raw, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.WarnContext(ctx, "market_cache_read_failed",
				slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		cache.logger.WarnContext(ctx, "market_cache_corrupt",
			slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (cache *RedisSnapshotCache) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := cache.client.Set(ctx, key, raw, constants.MarketCacheTTL).Err(); err != nil {
		cache.logger.WarnContext(ctx, "market_cache_write_failed",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}
