// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import "time"

// Overlaps reports whether two half-open intervals [s1, e1) and [s2, e2)
// intersect. Back-to-back bookings where e1 == s2 do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// BookingEntry is one reserved slot inside a room's schedule record.
type BookingEntry struct {
	MeetingUID string    `json:"meeting_uid"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// RoomSchedule is the key-value store record that serializes all reservations
// for one room. Conflict checks and reservations happen against this record
// under a single compare-and-swap, which is what closes the check-then-book
// race between concurrent writers.
type RoomSchedule struct {
	RoomUID  string         `json:"room_uid"`
	Bookings []BookingEntry `json:"bookings,omitempty"`
}

// Conflicts returns the entries that overlap the given half-open interval,
// excluding the entry for excludeMeetingUID (so a meeting being moved does not
// conflict with its own reservation).
func (s *RoomSchedule) Conflicts(start, end time.Time, excludeMeetingUID string) []BookingEntry {
	var conflicts []BookingEntry
	for _, b := range s.Bookings {
		if b.MeetingUID == excludeMeetingUID {
			continue
		}
		if Overlaps(b.StartTime, b.EndTime, start, end) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// Reserve appends a reservation for the meeting, replacing any existing entry
// with the same meeting UID. Callers check Conflicts first; Reserve itself
// does not re-verify.
func (s *RoomSchedule) Reserve(meetingUID string, start, end time.Time) {
	s.Release(meetingUID)
	s.Bookings = append(s.Bookings, BookingEntry{
		MeetingUID: meetingUID,
		StartTime:  start,
		EndTime:    end,
	})
}

// Release removes the reservation held by the given meeting, if any.
func (s *RoomSchedule) Release(meetingUID string) {
	kept := s.Bookings[:0]
	for _, b := range s.Bookings {
		if b.MeetingUID != meetingUID {
			kept = append(kept, b)
		}
	}
	s.Bookings = kept
}
