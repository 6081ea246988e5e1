// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// NatsRoomRepository is the NATS KV store repository for meeting rooms.
type NatsRoomRepository struct {
	*NatsBaseRepository[models.MeetingRoom]
	keyBuilder *KeyBuilder
}

// NewNatsRoomRepository creates a new NATS KV store repository for meeting rooms.
func NewNatsRoomRepository(kvStore INatsKeyValue) *NatsRoomRepository {
	baseRepo := NewNatsBaseRepository[models.MeetingRoom](kvStore, "room")
	keyBuilder := NewKeyBuilder("")

	return &NatsRoomRepository{
		NatsBaseRepository: baseRepo,
		keyBuilder:         keyBuilder,
	}
}

// CreateRoom creates a new meeting room.
func (r *NatsRoomRepository) CreateRoom(ctx context.Context, room *models.MeetingRoom) error {
	// Generate UID if not provided
	if room.UID == "" {
		room.UID = uuid.New().String()
	}

	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixRoom, room.UID)
	return r.NatsBaseRepository.Create(ctx, key, room)
}

// RoomExists checks if a meeting room exists.
func (r *NatsRoomRepository) RoomExists(ctx context.Context, roomUID string) (bool, error) {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixRoom, roomUID)
	return r.NatsBaseRepository.Exists(ctx, key)
}

// DeleteRoom removes a meeting room.
func (r *NatsRoomRepository) DeleteRoom(ctx context.Context, roomUID string, revision uint64) error {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixRoom, roomUID)
	return r.NatsBaseRepository.Delete(ctx, key, revision)
}

// GetRoom retrieves a meeting room by UID.
func (r *NatsRoomRepository) GetRoom(ctx context.Context, roomUID string) (*models.MeetingRoom, error) {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixRoom, roomUID)
	return r.NatsBaseRepository.Get(ctx, key)
}

// GetRoomWithRevision retrieves a meeting room with its revision by UID.
func (r *NatsRoomRepository) GetRoomWithRevision(ctx context.Context, roomUID string) (*models.MeetingRoom, uint64, error) {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixRoom, roomUID)
	return r.NatsBaseRepository.GetWithRevision(ctx, key)
}

// UpdateRoom updates an existing meeting room.
func (r *NatsRoomRepository) UpdateRoom(ctx context.Context, room *models.MeetingRoom, revision uint64) error {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixRoom, room.UID)
	return r.NatsBaseRepository.Update(ctx, key, room, revision)
}

// ListAllRooms lists all meeting rooms.
func (r *NatsRoomRepository) ListAllRooms(ctx context.Context) ([]*models.MeetingRoom, error) {
	pattern := KeyPrefixRoom + "/"
	return r.ListEntitiesEncoded(ctx, pattern, r.keyBuilder)
}
