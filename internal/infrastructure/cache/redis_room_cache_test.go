// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// mockRedisClient implements IRedisClient for testing
type mockRedisClient struct {
	mock.Mock
}

func (m *mockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *mockRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

func TestRedisRoomCache_GetActiveRooms_Hit(t *testing.T) {
	ctx := context.Background()
	rooms := []*models.MeetingRoom{
		{UID: "room-1", Name: "Boardroom", Capacity: 10, IsActive: true},
	}
	data, _ := json.Marshal(rooms)

	client := new(mockRedisClient)
	client.On("Get", ctx, activeRoomsKey).Return(redis.NewStringResult(string(data), nil))

	cache := NewRedisRoomCache(client, time.Minute)

	got, ok := cache.GetActiveRooms(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "room-1", got[0].UID)
}

func TestRedisRoomCache_GetActiveRooms_Miss(t *testing.T) {
	ctx := context.Background()

	client := new(mockRedisClient)
	client.On("Get", ctx, activeRoomsKey).Return(redis.NewStringResult("", redis.Nil))

	cache := NewRedisRoomCache(client, time.Minute)

	got, ok := cache.GetActiveRooms(ctx)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisRoomCache_GetActiveRooms_CorruptEntry(t *testing.T) {
	ctx := context.Background()

	client := new(mockRedisClient)
	client.On("Get", ctx, activeRoomsKey).Return(redis.NewStringResult("not json", nil))

	cache := NewRedisRoomCache(client, time.Minute)

	_, ok := cache.GetActiveRooms(ctx)
	assert.False(t, ok)
}

func TestRedisRoomCache_SetActiveRooms(t *testing.T) {
	ctx := context.Background()

	client := new(mockRedisClient)
	client.On("Set", ctx, activeRoomsKey, mock.Anything, time.Minute).
		Return(redis.NewStatusResult("OK", nil))

	cache := NewRedisRoomCache(client, time.Minute)
	cache.SetActiveRooms(ctx, []*models.MeetingRoom{{UID: "room-1"}})

	client.AssertExpectations(t)
}

func TestRedisRoomCache_Invalidate(t *testing.T) {
	ctx := context.Background()

	client := new(mockRedisClient)
	client.On("Del", ctx, []string{activeRoomsKey}).Return(redis.NewIntResult(1, nil))

	cache := NewRedisRoomCache(client, time.Minute)
	cache.Invalidate(ctx)

	client.AssertExpectations(t)
}

func TestRedisRoomCache_NotReady(t *testing.T) {
	cache := NewRedisRoomCache(nil, time.Minute)

	got, ok := cache.GetActiveRooms(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)

	// No panic on writes either
	cache.SetActiveRooms(context.Background(), nil)
	cache.Invalidate(context.Background())
}
