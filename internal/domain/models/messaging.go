// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

// NATS subjects that the room booking service sends messages about.
const (
	// IndexRoomSubject is the subject for meeting room indexing.
	// The subject is of the form: oa.index.meeting_room
	IndexRoomSubject = "oa.index.meeting_room"

	// IndexMeetingSubject is the subject for meeting indexing.
	// The subject is of the form: oa.index.meeting
	IndexMeetingSubject = "oa.index.meeting"

	// IndexAttendeeSubject is the subject for meeting attendee indexing.
	// The subject is of the form: oa.index.meeting_attendee
	IndexAttendeeSubject = "oa.index.meeting_attendee"

	// MeetingScheduledSubject is the subject for meeting scheduled events.
	// The subject is of the form: oa.meetings.scheduled
	MeetingScheduledSubject = "oa.meetings.scheduled"

	// MeetingCancelledSubject is the subject for meeting cancelled events.
	// The subject is of the form: oa.meetings.cancelled
	MeetingCancelledSubject = "oa.meetings.cancelled"

	// MeetingCompletedSubject is the subject for meeting completed events.
	// The subject is of the form: oa.meetings.completed
	MeetingCompletedSubject = "oa.meetings.completed"

	// MeetingUpdatedSubject is the subject for meeting reschedule events.
	// The subject is of the form: oa.meetings.updated
	MeetingUpdatedSubject = "oa.meetings.updated"

	// AttendeeInvitedSubject is the subject for attendee invitation events.
	// The subject is of the form: oa.attendees.invited
	AttendeeInvitedSubject = "oa.attendees.invited"

	// AttendeeRespondedSubject is the subject for attendee response events.
	// The subject is of the form: oa.attendees.responded
	AttendeeRespondedSubject = "oa.attendees.responded"
)

// NATS wildcard subjects that the room booking service handles messages about.
const (
	// RoomBookingAPIQueue is the queue name for the room booking API handlers.
	// The queue is of the form: oa.room-booking-api.queue
	RoomBookingAPIQueue = "oa.room-booking-api.queue"
)

// NATS specific subjects that the room booking service handles messages about.
const (
	// MeetingGetTitleSubject is the subject for fetching a meeting's title.
	// The subject is of the form: oa.room-booking-api.get_title
	MeetingGetTitleSubject = "oa.room-booking-api.get_title"

	// UpcomingMeetingsSubject is the subject for fetching meetings starting soon.
	// The subject is of the form: oa.room-booking-api.upcoming_meetings
	UpcomingMeetingsSubject = "oa.room-booking-api.upcoming_meetings"

	// RoomBookingsSubject is the subject for fetching a room's bookings for a day.
	// The subject is of the form: oa.room-booking-api.room_bookings
	RoomBookingsSubject = "oa.room-booking-api.room_bookings"
)

// MessageAction is a type for the action of a booking message.
type MessageAction string

// MessageAction constants for the action of a booking message.
const (
	// ActionCreated is the action for a resource creation message.
	ActionCreated MessageAction = "created"
	// ActionUpdated is the action for a resource update message.
	ActionUpdated MessageAction = "updated"
	// ActionDeleted is the action for a resource deletion message.
	ActionDeleted MessageAction = "deleted"
)

// BookingIndexerMessage is a NATS message schema for sending messages related
// to room and meeting CRUD operations.
type BookingIndexerMessage struct {
	Action  MessageAction     `json:"action"`
	Headers map[string]string `json:"headers"`
	Data    any               `json:"data"`
	// Tags is a list of tags to be set on the indexed resource for search.
	Tags []string `json:"tags"`
}

// MeetingEventMessage is the schema for lifecycle events published when a
// meeting is scheduled, rescheduled, cancelled, or completed. Notification
// consumers fan these out to attendees.
type MeetingEventMessage struct {
	MeetingUID  string   `json:"meeting_uid"`
	RoomUID     string   `json:"room_uid"`
	OrganizerID string   `json:"organizer_id"`
	Title       string   `json:"title"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	AttendeeIDs []string `json:"attendee_ids,omitempty"`
}

// AttendeeEventMessage is the schema for events about a single attendee's
// membership in a meeting.
type AttendeeEventMessage struct {
	MeetingUID string `json:"meeting_uid"`
	UserID     string `json:"user_id"`
	Status     string `json:"status"`
}
