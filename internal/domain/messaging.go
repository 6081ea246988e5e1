// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// Message represents a domain message interface
type Message interface {
	Subject() string
	Data() []byte
	Respond(data []byte) error
	HasReply() bool
}

// MessageHandler defines how the service handles incoming messages
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg Message)
	HandlerReady() bool
}

// RoomIndexSender handles indexing operations for meeting rooms.
type RoomIndexSender interface {
	SendIndexRoom(ctx context.Context, action models.MessageAction, data models.MeetingRoom) error
	SendDeleteIndexRoom(ctx context.Context, data string) error
}

// MeetingIndexSender handles indexing operations for meetings.
type MeetingIndexSender interface {
	SendIndexMeeting(ctx context.Context, action models.MessageAction, data models.Meeting) error
	SendDeleteIndexMeeting(ctx context.Context, data string) error
}

// AttendeeIndexSender handles indexing operations for meeting attendees.
type AttendeeIndexSender interface {
	SendIndexAttendee(ctx context.Context, action models.MessageAction, data models.Attendee) error
	SendDeleteIndexAttendee(ctx context.Context, data string) error
}

// MeetingEventSender handles meeting lifecycle events.
type MeetingEventSender interface {
	SendMeetingScheduled(ctx context.Context, data models.MeetingEventMessage) error
	SendMeetingUpdated(ctx context.Context, data models.MeetingEventMessage) error
	SendMeetingCancelled(ctx context.Context, data models.MeetingEventMessage) error
	SendMeetingCompleted(ctx context.Context, data models.MeetingEventMessage) error
}

// AttendeeEventSender handles attendee membership events.
type AttendeeEventSender interface {
	SendAttendeeInvited(ctx context.Context, data models.AttendeeEventMessage) error
	SendAttendeeResponded(ctx context.Context, data models.AttendeeEventMessage) error
}

// MessageBuilder is the main interface that composes all messaging capabilities.
// Use this when a service needs access to multiple different domains.
type MessageBuilder interface {
	RoomIndexSender
	MeetingIndexSender
	AttendeeIndexSender
	MeetingEventSender
	AttendeeEventSender
}
