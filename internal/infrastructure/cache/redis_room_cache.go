// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package cache contains the Redis-backed read caches for the room booking
// service.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
	"github.com/oa-platform/room-booking-service/internal/logging"
)

const (
	activeRoomsKey = "room-booking:active-rooms"

	// DefaultActiveRoomsTTL bounds staleness of the active rooms listing.
	DefaultActiveRoomsTTL = 5 * time.Minute
)

// IRedisClient is the Redis client interface the cache needs.
// This interface matches *redis.Client and allows for mocking in tests.
type IRedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisRoomCache caches the active rooms listing in Redis. The cache is an
// optimization only: every failure degrades to a store read, never to an
// error for the caller.
type RedisRoomCache struct {
	client IRedisClient
	ttl    time.Duration
}

// NewRedisRoomCache creates a new Redis-backed room cache.
func NewRedisRoomCache(client IRedisClient, ttl time.Duration) *RedisRoomCache {
	if ttl <= 0 {
		ttl = DefaultActiveRoomsTTL
	}
	return &RedisRoomCache{
		client: client,
		ttl:    ttl,
	}
}

// IsReady checks if the cache is usable.
func (c *RedisRoomCache) IsReady() bool {
	return c != nil && c.client != nil
}

// GetActiveRooms returns the cached active rooms listing and whether the
// cache held one.
func (c *RedisRoomCache) GetActiveRooms(ctx context.Context) ([]*models.MeetingRoom, bool) {
	if !c.IsReady() {
		return nil, false
	}

	data, err := c.client.Get(ctx, activeRoomsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "error reading active rooms from cache", logging.ErrKey, err)
		}
		return nil, false
	}

	var rooms []*models.MeetingRoom
	if err := json.Unmarshal(data, &rooms); err != nil {
		slog.WarnContext(ctx, "error unmarshaling cached active rooms", logging.ErrKey, err)
		return nil, false
	}

	return rooms, true
}

// SetActiveRooms stores the active rooms listing.
func (c *RedisRoomCache) SetActiveRooms(ctx context.Context, rooms []*models.MeetingRoom) {
	if !c.IsReady() {
		return
	}

	data, err := json.Marshal(rooms)
	if err != nil {
		slog.WarnContext(ctx, "error marshaling active rooms for cache", logging.ErrKey, err)
		return
	}

	if err := c.client.Set(ctx, activeRoomsKey, data, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "error writing active rooms to cache", logging.ErrKey, err)
	}
}

// Invalidate drops the cached listing. Called on every room write so readers
// never see a deactivated or deleted room as active past the next read.
func (c *RedisRoomCache) Invalidate(ctx context.Context) {
	if !c.IsReady() {
		return
	}

	if err := c.client.Del(ctx, activeRoomsKey).Err(); err != nil {
		slog.WarnContext(ctx, "error invalidating active rooms cache", logging.ErrKey, err)
	}
}
