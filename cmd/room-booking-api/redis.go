// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"

	"github.com/go-redis/redis/v8"

	"github.com/oa-platform/room-booking-service/internal/infrastructure/cache"
	"github.com/oa-platform/room-booking-service/internal/logging"
	"github.com/oa-platform/room-booking-service/internal/service"
)

// roomCacheOrNil converts a missing cache to a true nil interface so the room
// service's nil checks behave. A typed nil pointer inside the interface would
// defeat them.
func roomCacheOrNil(c *cache.RedisRoomCache) service.RoomCache {
	if c == nil {
		return nil
	}
	return c
}

// setupRoomCache connects the Redis-backed room cache. The cache is optional:
// with no REDIS_URL configured, or an unreachable server, the service runs
// uncached and every listing hits the store.
func setupRoomCache(ctx context.Context, env environment) *cache.RedisRoomCache {
	if env.RedisURL == "" {
		slog.InfoContext(ctx, "no REDIS_URL configured, running without the room cache")
		return nil
	}

	opts, err := redis.ParseURL(env.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "invalid REDIS_URL, running without the room cache", logging.ErrKey, err)
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "error pinging Redis, running without the room cache", logging.ErrKey, err)
		return nil
	}

	slog.InfoContext(ctx, "connected to Redis", "redis_addr", opts.Addr)

	return cache.NewRedisRoomCache(client, cache.DefaultActiveRoomsTTL)
}
