// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"time"
)

// AttendeeStatus is an attendee's response to a meeting invitation.
type AttendeeStatus string

const (
	// AttendeeStatusPending is the initial state of every invitation.
	AttendeeStatusPending AttendeeStatus = "PENDING"
	// AttendeeStatusAccepted means the attendee accepted the invitation.
	AttendeeStatusAccepted AttendeeStatus = "ACCEPTED"
	// AttendeeStatusDeclined means the attendee declined the invitation.
	AttendeeStatusDeclined AttendeeStatus = "DECLINED"
	// AttendeeStatusTentative means the attendee may or may not attend.
	AttendeeStatusTentative AttendeeStatus = "TENTATIVE"
)

// IsValid reports whether the status is one of the known response states.
func (s AttendeeStatus) IsValid() bool {
	switch s {
	case AttendeeStatusPending, AttendeeStatusAccepted, AttendeeStatusDeclined, AttendeeStatusTentative:
		return true
	}
	return false
}

// Attendee is the key-value store representation of a single user's
// membership in a single meeting. Each attendee is its own record keyed by
// meeting UID and user ID, so response updates touch one record only.
type Attendee struct {
	UID        string         `json:"uid"`
	MeetingUID string         `json:"meeting_uid"`
	UserID     string         `json:"user_id"`
	Name       string         `json:"name,omitempty"`
	Email      string         `json:"email,omitempty"`
	Status     AttendeeStatus `json:"status"`
	CreatedAt  *time.Time     `json:"created_at,omitempty"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

// AttendeeInvite is the caller-supplied identity of a user being invited to
// a meeting.
type AttendeeInvite struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Tags generates a consistent set of tags for the attendee for searching/indexing.
func (a *Attendee) Tags() []string {
	if a == nil {
		return nil
	}

	tags := []string{}

	if a.UID != "" {
		tags = append(tags, a.UID)
	}

	if a.MeetingUID != "" {
		tags = append(tags, fmt.Sprintf("meeting_uid:%s", a.MeetingUID))
	}

	if a.UserID != "" {
		tags = append(tags, fmt.Sprintf("user_id:%s", a.UserID))
	}

	if a.Name != "" {
		tags = append(tags, fmt.Sprintf("name:%s", a.Name))
	}

	if a.Email != "" {
		tags = append(tags, fmt.Sprintf("email:%s", a.Email))
	}

	return tags
}
