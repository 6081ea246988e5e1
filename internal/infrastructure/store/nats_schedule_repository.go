// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/oa-platform/room-booking-service/internal/domain"
	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// NatsScheduleRepository is the NATS KV store repository for room schedules.
// One record per room serializes all of its reservations; every write is
// revision-guarded so concurrent bookers race on the compare-and-swap rather
// than on a read-then-write gap.
type NatsScheduleRepository struct {
	*NatsBaseRepository[models.RoomSchedule]
	keyBuilder *KeyBuilder
}

// NewNatsScheduleRepository creates a new NATS KV store repository for room schedules.
func NewNatsScheduleRepository(kvStore INatsKeyValue) *NatsScheduleRepository {
	baseRepo := NewNatsBaseRepository[models.RoomSchedule](kvStore, "schedule")
	keyBuilder := NewKeyBuilder("")

	return &NatsScheduleRepository{
		NatsBaseRepository: baseRepo,
		keyBuilder:         keyBuilder,
	}
}

// GetScheduleWithRevision fetches the schedule record for the room. A room
// with no record yet yields an empty schedule at revision zero.
func (r *NatsScheduleRepository) GetScheduleWithRevision(ctx context.Context, roomUID string) (*models.RoomSchedule, uint64, error) {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixSchedule, roomUID)
	schedule, revision, err := r.NatsBaseRepository.GetWithRevision(ctx, key)
	if err != nil {
		if domain.GetErrorType(err) == domain.ErrorTypeNotFound {
			return &models.RoomSchedule{RoomUID: roomUID}, 0, nil
		}
		return nil, 0, err
	}
	return schedule, revision, nil
}

// SaveSchedule writes the schedule record back. Revision zero creates the
// record and conflicts when a concurrent writer created it first; a non-zero
// revision updates and conflicts when the record moved underneath the caller.
func (r *NatsScheduleRepository) SaveSchedule(ctx context.Context, schedule *models.RoomSchedule, revision uint64) error {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixSchedule, schedule.RoomUID)
	if revision == 0 {
		return r.CreateIfAbsent(ctx, key, schedule)
	}
	return r.NatsBaseRepository.Update(ctx, key, schedule, revision)
}
