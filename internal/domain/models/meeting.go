// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"time"
)

// MeetingStatus is the lifecycle state of a meeting.
type MeetingStatus string

const (
	// MeetingStatusScheduled is the initial state of every meeting.
	MeetingStatusScheduled MeetingStatus = "SCHEDULED"
	// MeetingStatusCancelled is a terminal state reached via cancellation.
	MeetingStatusCancelled MeetingStatus = "CANCELLED"
	// MeetingStatusCompleted is a terminal state reached via completion.
	MeetingStatusCompleted MeetingStatus = "COMPLETED"
)

// IsTerminal reports whether the status admits no further transitions.
func (s MeetingStatus) IsTerminal() bool {
	return s == MeetingStatusCancelled || s == MeetingStatusCompleted
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusCancelled, MeetingStatusCompleted:
		return true
	}
	return false
}

// meetingTransitions is the allowed lifecycle transition table. A status maps
// to the set of statuses it may move to. Terminal states map to nothing.
var meetingTransitions = map[MeetingStatus][]MeetingStatus{
	MeetingStatusScheduled: {MeetingStatusCancelled, MeetingStatusCompleted},
	MeetingStatusCancelled: {},
	MeetingStatusCompleted: {},
}

// CanTransition reports whether a meeting may move from one status to another.
func CanTransition(from, to MeetingStatus) bool {
	for _, allowed := range meetingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Meeting is the key-value store representation of a booked meeting.
// Attendees are stored as separate records, not embedded here.
type Meeting struct {
	UID            string        `json:"uid"`
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	RoomUID        string        `json:"room_uid"`
	OrganizerID    string        `json:"organizer_id"`
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	Status         MeetingStatus `json:"status"`
	MeetingMinutes string        `json:"meeting_minutes,omitempty"`
	Attachments    []string      `json:"attachments,omitempty"`
	CreatedAt      *time.Time    `json:"created_at,omitempty"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty"`
}

// Duration is the scheduled length of the meeting.
func (m *Meeting) Duration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}

// OccupiesRoom reports whether the meeting still holds its room reservation.
// Cancelled meetings release their slot; completed meetings keep it for the
// historical record but no longer matter for future availability.
func (m *Meeting) OccupiesRoom() bool {
	return m.Status != MeetingStatusCancelled
}

// Tags generates a consistent set of tags for the meeting for searching/indexing.
func (m *Meeting) Tags() []string {
	if m == nil {
		return nil
	}

	tags := []string{}

	if m.UID != "" {
		tags = append(tags, m.UID)
		tags = append(tags, fmt.Sprintf("meeting_uid:%s", m.UID))
	}

	if m.RoomUID != "" {
		tags = append(tags, fmt.Sprintf("room_uid:%s", m.RoomUID))
	}

	if m.OrganizerID != "" {
		tags = append(tags, fmt.Sprintf("organizer:%s", m.OrganizerID))
	}

	if m.Title != "" {
		tags = append(tags, fmt.Sprintf("title:%s", m.Title))
	}

	return tags
}

// UpdateMeetingRequest is a partial update of a meeting. Nil fields are left
// unchanged. Status changes go through the dedicated lifecycle operations,
// not through this request.
type UpdateMeetingRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	RoomUID     *string    `json:"room_uid,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Attachments *[]string  `json:"attachments,omitempty"`
}

// ChangesBooking reports whether the update would move the meeting to a
// different room or time slot than the existing record.
func (req UpdateMeetingRequest) ChangesBooking(existing *Meeting) bool {
	if req.RoomUID != nil && *req.RoomUID != existing.RoomUID {
		return true
	}
	if req.StartTime != nil && !req.StartTime.Equal(existing.StartTime) {
		return true
	}
	if req.EndTime != nil && !req.EndTime.Equal(existing.EndTime) {
		return true
	}
	return false
}

// MergeUpdateMeetingRequest applies a partial update on top of the existing
// meeting and returns the merged record.
func MergeUpdateMeetingRequest(req UpdateMeetingRequest, existing *Meeting) *Meeting {
	merged := *existing

	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.RoomUID != nil {
		merged.RoomUID = *req.RoomUID
	}
	if req.StartTime != nil {
		merged.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		merged.EndTime = *req.EndTime
	}
	if req.Attachments != nil {
		merged.Attachments = *req.Attachments
	}

	return &merged
}
