// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, hour int) time.Time {
	t.Helper()
	return time.Date(2026, 9, 2, hour, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"identical", 10, 11, 10, 11, true},
		{"partial overlap", 10, 12, 11, 13, true},
		{"containment", 9, 13, 10, 11, true},
		{"back to back", 9, 10, 10, 11, false},
		{"back to back reversed", 10, 11, 9, 10, false},
		{"disjoint", 9, 10, 11, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(at(t, tt.s1), at(t, tt.e1), at(t, tt.s2), at(t, tt.e2))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomScheduleConflicts(t *testing.T) {
	schedule := &RoomSchedule{RoomUID: "room-1"}
	schedule.Reserve("m-1", at(t, 9), at(t, 10))
	schedule.Reserve("m-2", at(t, 11), at(t, 12))

	t.Run("clear slot", func(t *testing.T) {
		assert.Empty(t, schedule.Conflicts(at(t, 10), at(t, 11), ""))
	})

	t.Run("overlapping slot", func(t *testing.T) {
		conflicts := schedule.Conflicts(at(t, 9), at(t, 12), "")
		require.Len(t, conflicts, 2)
	})

	t.Run("own entry is excluded", func(t *testing.T) {
		conflicts := schedule.Conflicts(at(t, 9), at(t, 10), "m-1")
		assert.Empty(t, conflicts)
	})
}

func TestRoomScheduleReserveReplacesOwnEntry(t *testing.T) {
	schedule := &RoomSchedule{RoomUID: "room-1"}
	schedule.Reserve("m-1", at(t, 9), at(t, 10))
	schedule.Reserve("m-1", at(t, 14), at(t, 15))

	require.Len(t, schedule.Bookings, 1)
	assert.True(t, schedule.Bookings[0].StartTime.Equal(at(t, 14)))
}

func TestRoomScheduleRelease(t *testing.T) {
	schedule := &RoomSchedule{RoomUID: "room-1"}
	schedule.Reserve("m-1", at(t, 9), at(t, 10))
	schedule.Reserve("m-2", at(t, 11), at(t, 12))

	schedule.Release("m-1")

	require.Len(t, schedule.Bookings, 1)
	assert.Equal(t, "m-2", schedule.Bookings[0].MeetingUID)

	// Releasing an absent entry is a no-op.
	schedule.Release("m-absent")
	assert.Len(t, schedule.Bookings, 1)
}
