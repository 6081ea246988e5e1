// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// RoomRepository defines the interface for meeting room storage operations.
// This interface can be implemented by different storage backends (NATS, PostgreSQL, etc.)
type RoomRepository interface {
	// Room full operations
	CreateRoom(ctx context.Context, room *models.MeetingRoom) error
	RoomExists(ctx context.Context, roomUID string) (bool, error)
	DeleteRoom(ctx context.Context, roomUID string, revision uint64) error

	// Room base operations
	GetRoom(ctx context.Context, roomUID string) (*models.MeetingRoom, error)
	GetRoomWithRevision(ctx context.Context, roomUID string) (*models.MeetingRoom, uint64, error)
	UpdateRoom(ctx context.Context, room *models.MeetingRoom, revision uint64) error

	// Bulk operations
	ListAllRooms(ctx context.Context) ([]*models.MeetingRoom, error)
}

// MeetingRepository defines the interface for meeting storage operations.
type MeetingRepository interface {
	// Meeting full operations
	CreateMeeting(ctx context.Context, meeting *models.Meeting) error
	MeetingExists(ctx context.Context, meetingUID string) (bool, error)
	DeleteMeeting(ctx context.Context, meetingUID string, revision uint64) error

	// Meeting base operations
	GetMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error)
	GetMeetingWithRevision(ctx context.Context, meetingUID string) (*models.Meeting, uint64, error)
	UpdateMeeting(ctx context.Context, meeting *models.Meeting, revision uint64) error

	// Bulk operations
	ListAllMeetings(ctx context.Context) ([]*models.Meeting, error)
	ListMeetingsByRoom(ctx context.Context, roomUID string) ([]*models.Meeting, error)
}

// AttendeeRepository defines the interface for attendee storage operations.
// Each attendee is its own record so that response updates are single-record
// compare-and-swap operations.
type AttendeeRepository interface {
	// Attendee full operations
	CreateAttendee(ctx context.Context, attendee *models.Attendee) error
	AttendeeExists(ctx context.Context, meetingUID, userID string) (bool, error)
	DeleteAttendee(ctx context.Context, meetingUID, userID string, revision uint64) error

	// Attendee base operations
	GetAttendee(ctx context.Context, meetingUID, userID string) (*models.Attendee, error)
	GetAttendeeWithRevision(ctx context.Context, meetingUID, userID string) (*models.Attendee, uint64, error)
	UpdateAttendee(ctx context.Context, attendee *models.Attendee, revision uint64) error

	// Bulk operations
	ListAttendeesByMeeting(ctx context.Context, meetingUID string) ([]*models.Attendee, error)
	ListMeetingUIDsByUser(ctx context.Context, userID string) ([]string, error)
}

// ScheduleRepository defines the interface for room schedule storage
// operations. The schedule record for a room is the single serialization
// point for its reservations; all writes are revision-guarded.
type ScheduleRepository interface {
	// GetScheduleWithRevision fetches the schedule record for the room. When
	// no record exists yet, it returns an empty schedule with revision zero.
	GetScheduleWithRevision(ctx context.Context, roomUID string) (*models.RoomSchedule, uint64, error)

	// SaveSchedule writes the schedule record back. Revision zero creates the
	// record and fails with a conflict when one already exists; a non-zero
	// revision updates and fails with a conflict when the record moved.
	SaveSchedule(ctx context.Context, schedule *models.RoomSchedule, revision uint64) error
}
