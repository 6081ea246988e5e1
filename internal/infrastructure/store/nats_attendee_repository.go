// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
	"github.com/oa-platform/room-booking-service/internal/logging"
)

// NatsAttendeeRepository is the NATS KV store repository for meeting attendees.
// Each attendee is a single record keyed by meeting UID and user ID, so a
// response update is a compare-and-swap on that one record. A per-user index
// record supports the meetings-by-user lookup.
type NatsAttendeeRepository struct {
	*NatsBaseRepository[models.Attendee]
	keyBuilder *KeyBuilder
}

// NewNatsAttendeeRepository creates a new NATS KV store repository for attendees.
func NewNatsAttendeeRepository(kvStore INatsKeyValue) *NatsAttendeeRepository {
	baseRepo := NewNatsBaseRepository[models.Attendee](kvStore, "attendee")
	keyBuilder := NewKeyBuilder("")

	return &NatsAttendeeRepository{
		NatsBaseRepository: baseRepo,
		keyBuilder:         keyBuilder,
	}
}

func (r *NatsAttendeeRepository) attendeeKey(meetingUID, userID string) string {
	return r.keyBuilder.CompoundKeyEncoded(KeyPrefixAttendee, meetingUID, userID)
}

// CreateAttendee creates a new attendee record with its user index.
func (r *NatsAttendeeRepository) CreateAttendee(ctx context.Context, attendee *models.Attendee) error {
	// Generate UID if not provided
	if attendee.UID == "" {
		attendee.UID = uuid.New().String()
	}

	key := r.attendeeKey(attendee.MeetingUID, attendee.UserID)
	err := r.NatsBaseRepository.Create(ctx, key, attendee)
	if err != nil {
		return err
	}

	if err := r.createIndices(ctx, attendee); err != nil {
		slog.WarnContext(ctx, "failed to create indices", logging.ErrKey, err,
			"meeting_uid", attendee.MeetingUID, "user_id", attendee.UserID)
		// Don't fail the operation if indexing fails
	}

	return nil
}

// AttendeeExists checks if an attendee record exists.
func (r *NatsAttendeeRepository) AttendeeExists(ctx context.Context, meetingUID, userID string) (bool, error) {
	return r.NatsBaseRepository.Exists(ctx, r.attendeeKey(meetingUID, userID))
}

// DeleteAttendee removes an attendee record and its user index.
func (r *NatsAttendeeRepository) DeleteAttendee(ctx context.Context, meetingUID, userID string, revision uint64) error {
	attendee, err := r.GetAttendee(ctx, meetingUID, userID)
	if err != nil {
		return err
	}

	if err := r.deleteIndices(ctx, attendee); err != nil {
		slog.WarnContext(ctx, "failed to delete indices", logging.ErrKey, err,
			"meeting_uid", meetingUID, "user_id", userID)
		// Don't fail the operation if index cleanup fails
	}

	return r.NatsBaseRepository.Delete(ctx, r.attendeeKey(meetingUID, userID), revision)
}

// GetAttendee retrieves an attendee record.
func (r *NatsAttendeeRepository) GetAttendee(ctx context.Context, meetingUID, userID string) (*models.Attendee, error) {
	return r.NatsBaseRepository.Get(ctx, r.attendeeKey(meetingUID, userID))
}

// GetAttendeeWithRevision retrieves an attendee record with its revision.
func (r *NatsAttendeeRepository) GetAttendeeWithRevision(ctx context.Context, meetingUID, userID string) (*models.Attendee, uint64, error) {
	return r.NatsBaseRepository.GetWithRevision(ctx, r.attendeeKey(meetingUID, userID))
}

// UpdateAttendee updates an existing attendee record.
func (r *NatsAttendeeRepository) UpdateAttendee(ctx context.Context, attendee *models.Attendee, revision uint64) error {
	key := r.attendeeKey(attendee.MeetingUID, attendee.UserID)
	return r.NatsBaseRepository.Update(ctx, key, attendee, revision)
}

// ListAttendeesByMeeting retrieves all attendees of a meeting.
func (r *NatsAttendeeRepository) ListAttendeesByMeeting(ctx context.Context, meetingUID string) ([]*models.Attendee, error) {
	pattern := fmt.Sprintf("%s/%s/", KeyPrefixAttendee, meetingUID)
	return r.ListEntitiesEncoded(ctx, pattern, r.keyBuilder)
}

// ListMeetingUIDsByUser retrieves the UIDs of all meetings the user is an
// attendee of, using the per-user index records.
func (r *NatsAttendeeRepository) ListMeetingUIDsByUser(ctx context.Context, userID string) ([]string, error) {
	keys, err := r.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	indexPrefix := fmt.Sprintf("/%s/%s/%s/", KeyPrefixIndex, KeyPrefixIndexUser, userID)

	var meetingUIDs []string
	for _, encodedKey := range keys {
		decodedKey, err := r.keyBuilder.DecodeKey(encodedKey)
		if err != nil {
			slog.WarnContext(ctx, "failed to decode key, skipping",
				"encoded_key", encodedKey, logging.ErrKey, err)
			continue
		}

		if !strings.HasPrefix(decodedKey, indexPrefix) {
			continue
		}

		meetingUIDs = append(meetingUIDs, strings.TrimPrefix(decodedKey, indexPrefix))
	}

	return meetingUIDs, nil
}

func (r *NatsAttendeeRepository) createIndices(ctx context.Context, attendee *models.Attendee) error {
	// Create user index so that meetings-by-user lookups avoid a full scan
	userIndexKey := r.keyBuilder.IndexKeyEncoded(KeyPrefixIndexUser, attendee.UserID, attendee.MeetingUID)
	return r.PutIndex(ctx, userIndexKey)
}

func (r *NatsAttendeeRepository) deleteIndices(ctx context.Context, attendee *models.Attendee) error {
	userIndexKey := r.keyBuilder.IndexKeyEncoded(KeyPrefixIndexUser, attendee.UserID, attendee.MeetingUID)
	return r.DeleteIndex(ctx, userIndexKey)
}
