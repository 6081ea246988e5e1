// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// NatsMeetingRepository is the NATS KV store repository for meetings.
type NatsMeetingRepository struct {
	*NatsBaseRepository[models.Meeting]
	keyBuilder *KeyBuilder
}

// NewNatsMeetingRepository creates a new NATS KV store repository for meetings.
func NewNatsMeetingRepository(kvStore INatsKeyValue) *NatsMeetingRepository {
	baseRepo := NewNatsBaseRepository[models.Meeting](kvStore, "meeting")
	keyBuilder := NewKeyBuilder("")

	return &NatsMeetingRepository{
		NatsBaseRepository: baseRepo,
		keyBuilder:         keyBuilder,
	}
}

// CreateMeeting creates a new meeting.
func (r *NatsMeetingRepository) CreateMeeting(ctx context.Context, meeting *models.Meeting) error {
	// Generate UID if not provided
	if meeting.UID == "" {
		meeting.UID = uuid.New().String()
	}

	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixMeeting, meeting.UID)
	return r.NatsBaseRepository.Create(ctx, key, meeting)
}

// MeetingExists checks if a meeting exists.
func (r *NatsMeetingRepository) MeetingExists(ctx context.Context, meetingUID string) (bool, error) {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixMeeting, meetingUID)
	return r.NatsBaseRepository.Exists(ctx, key)
}

// DeleteMeeting removes a meeting.
func (r *NatsMeetingRepository) DeleteMeeting(ctx context.Context, meetingUID string, revision uint64) error {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixMeeting, meetingUID)
	return r.NatsBaseRepository.Delete(ctx, key, revision)
}

// GetMeeting retrieves a meeting by UID.
func (r *NatsMeetingRepository) GetMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixMeeting, meetingUID)
	return r.NatsBaseRepository.Get(ctx, key)
}

// GetMeetingWithRevision retrieves a meeting with its revision by UID.
func (r *NatsMeetingRepository) GetMeetingWithRevision(ctx context.Context, meetingUID string) (*models.Meeting, uint64, error) {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixMeeting, meetingUID)
	return r.NatsBaseRepository.GetWithRevision(ctx, key)
}

// UpdateMeeting updates an existing meeting.
func (r *NatsMeetingRepository) UpdateMeeting(ctx context.Context, meeting *models.Meeting, revision uint64) error {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixMeeting, meeting.UID)
	return r.NatsBaseRepository.Update(ctx, key, meeting, revision)
}

// ListAllMeetings lists all meetings.
func (r *NatsMeetingRepository) ListAllMeetings(ctx context.Context) ([]*models.Meeting, error) {
	pattern := KeyPrefixMeeting + "/"
	return r.ListEntitiesEncoded(ctx, pattern, r.keyBuilder)
}

// ListMeetingsByRoom retrieves all meetings booked in a room.
func (r *NatsMeetingRepository) ListMeetingsByRoom(ctx context.Context, roomUID string) ([]*models.Meeting, error) {
	allMeetings, err := r.ListAllMeetings(ctx)
	if err != nil {
		return nil, err
	}

	var matchingMeetings []*models.Meeting
	for _, meeting := range allMeetings {
		if meeting.RoomUID == roomUID {
			matchingMeetings = append(matchingMeetings, meeting)
		}
	}

	return matchingMeetings, nil
}
