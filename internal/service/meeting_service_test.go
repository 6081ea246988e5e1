// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oa-platform/room-booking-service/internal/domain"
	"github.com/oa-platform/room-booking-service/internal/domain/mocks"
	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// setupMeetingServiceForTesting creates a MeetingService with all mock dependencies for testing
func setupMeetingServiceForTesting() (*MeetingService, *mocks.MockMeetingRepository, *mocks.MockRoomRepository, *mocks.MockAttendeeRepository, *mocks.MockScheduleRepository, *mocks.MockMessageBuilder) {
	mockMeetingRepo := new(mocks.MockMeetingRepository)
	mockRoomRepo := new(mocks.MockRoomRepository)
	mockAttendeeRepo := new(mocks.MockAttendeeRepository)
	mockScheduleRepo := new(mocks.MockScheduleRepository)
	mockBuilder := new(mocks.MockMessageBuilder)

	service := NewMeetingService(
		mockMeetingRepo,
		mockRoomRepo,
		mockAttendeeRepo,
		mockScheduleRepo,
		mockBuilder,
		ServiceConfig{},
	)

	return service, mockMeetingRepo, mockRoomRepo, mockAttendeeRepo, mockScheduleRepo, mockBuilder
}

func activeRoom(uid string) *models.MeetingRoom {
	return &models.MeetingRoom{
		UID:      uid,
		Name:     "Room " + uid,
		Capacity: 10,
		IsActive: true,
	}
}

func TestMeetingService_ServiceReady(t *testing.T) {
	service, _, _, _, _, _ := setupMeetingServiceForTesting()
	assert.True(t, service.ServiceReady())

	service.ScheduleRepository = nil
	assert.False(t, service.ServiceReady())
}

func TestMeetingService_CreateMeeting(t *testing.T) {
	ctx := context.Background()
	start := time.Now().UTC().Add(time.Hour)
	end := start.Add(time.Hour)

	t.Run("successful creation reserves the slot", func(t *testing.T) {
		service, meetingRepo, roomRepo, attendeeRepo, scheduleRepo, builder := setupMeetingServiceForTesting()

		roomRepo.On("GetRoom", mock.Anything, "room-1").Return(activeRoom("room-1"), nil)
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-1").
			Return(&models.RoomSchedule{RoomUID: "room-1"}, uint64(0), nil)
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.MatchedBy(func(s *models.RoomSchedule) bool {
			return len(s.Bookings) == 1
		}), uint64(0)).Return(nil)
		meetingRepo.On("CreateMeeting", mock.Anything, mock.Anything).Return(nil)
		attendeeRepo.On("CreateAttendee", mock.Anything, mock.Anything).Return(nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionCreated, mock.Anything).Return(nil)
		builder.On("SendMeetingScheduled", mock.Anything, mock.Anything).Return(nil)
		builder.On("SendIndexAttendee", mock.Anything, models.ActionCreated, mock.Anything).Return(nil)
		builder.On("SendAttendeeInvited", mock.Anything, mock.Anything).Return(nil)

		meeting := &models.Meeting{
			Title:       "Planning",
			RoomUID:     "room-1",
			OrganizerID: "user-1",
			StartTime:   start,
			EndTime:     end,
		}

		created, err := service.CreateMeeting(ctx, meeting, []models.AttendeeInvite{
			{UserID: "user-2", Name: "Bob", Email: "bob@example.com"},
			{UserID: "user-3"},
			{UserID: "user-2"},
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.UID)
		assert.Equal(t, models.MeetingStatusScheduled, created.Status)
		// Duplicate attendee IDs collapse to one record each
		attendeeRepo.AssertNumberOfCalls(t, "CreateAttendee", 2)
		attendeeRepo.AssertCalled(t, "CreateAttendee", mock.Anything, mock.MatchedBy(func(a *models.Attendee) bool {
			return a.UserID == "user-2" && a.Name == "Bob" && a.Email == "bob@example.com"
		}))
		scheduleRepo.AssertExpectations(t)
		meetingRepo.AssertExpectations(t)
	})

	t.Run("roomless meeting skips the schedule", func(t *testing.T) {
		service, meetingRepo, roomRepo, _, scheduleRepo, builder := setupMeetingServiceForTesting()

		meetingRepo.On("CreateMeeting", mock.Anything, mock.Anything).Return(nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionCreated, mock.Anything).Return(nil)
		builder.On("SendMeetingScheduled", mock.Anything, mock.Anything).Return(nil)

		created, err := service.CreateMeeting(ctx, &models.Meeting{
			Title:       "Standup",
			OrganizerID: "user-1",
			StartTime:   start,
			EndTime:     end,
		}, nil)

		require.NoError(t, err)
		assert.Empty(t, created.RoomUID)
		roomRepo.AssertNotCalled(t, "GetRoom", mock.Anything, mock.Anything)
		scheduleRepo.AssertNotCalled(t, "GetScheduleWithRevision", mock.Anything, mock.Anything)
	})

	t.Run("conflicting slot is rejected", func(t *testing.T) {
		service, _, roomRepo, _, scheduleRepo, _ := setupMeetingServiceForTesting()

		roomRepo.On("GetRoom", mock.Anything, "room-1").Return(activeRoom("room-1"), nil)
		schedule := &models.RoomSchedule{RoomUID: "room-1"}
		schedule.Reserve("other-meeting", start.Add(30*time.Minute), end.Add(30*time.Minute))
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-1").
			Return(schedule, uint64(3), nil)

		_, err := service.CreateMeeting(ctx, &models.Meeting{
			Title:       "Planning",
			RoomUID:     "room-1",
			OrganizerID: "user-1",
			StartTime:   start,
			EndTime:     end,
		}, nil)

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
		scheduleRepo.AssertNotCalled(t, "SaveSchedule", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("back-to-back booking succeeds", func(t *testing.T) {
		service, meetingRepo, roomRepo, _, scheduleRepo, builder := setupMeetingServiceForTesting()

		roomRepo.On("GetRoom", mock.Anything, "room-1").Return(activeRoom("room-1"), nil)
		schedule := &models.RoomSchedule{RoomUID: "room-1"}
		schedule.Reserve("other-meeting", start.Add(-time.Hour), start)
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-1").
			Return(schedule, uint64(3), nil)
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.Anything, uint64(3)).Return(nil)
		meetingRepo.On("CreateMeeting", mock.Anything, mock.Anything).Return(nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionCreated, mock.Anything).Return(nil)
		builder.On("SendMeetingScheduled", mock.Anything, mock.Anything).Return(nil)

		_, err := service.CreateMeeting(ctx, &models.Meeting{
			Title:       "Planning",
			RoomUID:     "room-1",
			OrganizerID: "user-1",
			StartTime:   start,
			EndTime:     end,
		}, nil)

		require.NoError(t, err)
	})

	t.Run("schedule contention retries until success", func(t *testing.T) {
		service, meetingRepo, roomRepo, _, scheduleRepo, builder := setupMeetingServiceForTesting()

		roomRepo.On("GetRoom", mock.Anything, "room-1").Return(activeRoom("room-1"), nil)
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-1").
			Return(&models.RoomSchedule{RoomUID: "room-1"}, uint64(1), nil)
		// First CAS loses to a concurrent writer, second wins
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.Anything, uint64(1)).
			Return(domain.NewConflictError("schedule has been modified")).Once()
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.Anything, uint64(1)).
			Return(nil).Once()
		meetingRepo.On("CreateMeeting", mock.Anything, mock.Anything).Return(nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionCreated, mock.Anything).Return(nil)
		builder.On("SendMeetingScheduled", mock.Anything, mock.Anything).Return(nil)

		_, err := service.CreateMeeting(ctx, &models.Meeting{
			Title:       "Planning",
			RoomUID:     "room-1",
			OrganizerID: "user-1",
			StartTime:   start,
			EndTime:     end,
		}, nil)

		require.NoError(t, err)
		scheduleRepo.AssertNumberOfCalls(t, "SaveSchedule", 2)
	})

	t.Run("reservation released when meeting write fails", func(t *testing.T) {
		service, meetingRepo, roomRepo, _, scheduleRepo, _ := setupMeetingServiceForTesting()

		roomRepo.On("GetRoom", mock.Anything, "room-1").Return(activeRoom("room-1"), nil)
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-1").
			Return(&models.RoomSchedule{RoomUID: "room-1"}, uint64(1), nil)
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.Anything, uint64(1)).Return(nil)
		meetingRepo.On("CreateMeeting", mock.Anything, mock.Anything).
			Return(domain.NewInternalError("store down"))

		_, err := service.CreateMeeting(ctx, &models.Meeting{
			Title:       "Planning",
			RoomUID:     "room-1",
			OrganizerID: "user-1",
			StartTime:   start,
			EndTime:     end,
		}, nil)

		require.Error(t, err)
		// One save to reserve, one to release
		scheduleRepo.AssertNumberOfCalls(t, "SaveSchedule", 2)
	})

	t.Run("inactive room is rejected", func(t *testing.T) {
		service, _, roomRepo, _, _, _ := setupMeetingServiceForTesting()

		room := activeRoom("room-1")
		room.IsActive = false
		roomRepo.On("GetRoom", mock.Anything, "room-1").Return(room, nil)

		_, err := service.CreateMeeting(ctx, &models.Meeting{
			Title:       "Planning",
			RoomUID:     "room-1",
			OrganizerID: "user-1",
			StartTime:   start,
			EndTime:     end,
		}, nil)

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})

	t.Run("validation failures", func(t *testing.T) {
		service, _, _, _, _, _ := setupMeetingServiceForTesting()

		tests := []struct {
			name    string
			meeting *models.Meeting
		}{
			{"missing title", &models.Meeting{RoomUID: "room-1", OrganizerID: "u", StartTime: start, EndTime: end}},
			{"missing organizer", &models.Meeting{Title: "t", RoomUID: "room-1", StartTime: start, EndTime: end}},
			{"start after end", &models.Meeting{Title: "t", RoomUID: "room-1", OrganizerID: "u", StartTime: end, EndTime: start}},
			{"start equals end", &models.Meeting{Title: "t", RoomUID: "room-1", OrganizerID: "u", StartTime: start, EndTime: start}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateMeeting(ctx, tt.meeting, nil)
				require.Error(t, err)
				assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
			})
		}
	})
}

func TestMeetingService_UpdateMeeting(t *testing.T) {
	ctx := context.Background()
	start := time.Now().UTC().Add(2 * time.Hour)
	end := start.Add(time.Hour)

	existing := func() *models.Meeting {
		return &models.Meeting{
			UID:         "meeting-1",
			Title:       "Planning",
			RoomUID:     "room-1",
			OrganizerID: "user-1",
			StartTime:   start,
			EndTime:     end,
			Status:      models.MeetingStatusScheduled,
		}
	}

	t.Run("title-only update skips the schedule", func(t *testing.T) {
		service, meetingRepo, _, attendeeRepo, scheduleRepo, builder := setupMeetingServiceForTesting()

		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(existing(), uint64(4), nil)
		meetingRepo.On("UpdateMeeting", mock.Anything, mock.Anything, uint64(4)).Return(nil)
		attendeeRepo.On("ListAttendeesByMeeting", mock.Anything, "meeting-1").
			Return([]*models.Attendee{}, nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)

		newTitle := "Renamed"
		updated, err := service.UpdateMeeting(ctx, "meeting-1", models.UpdateMeetingRequest{Title: &newTitle})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		scheduleRepo.AssertNotCalled(t, "GetScheduleWithRevision", mock.Anything, mock.Anything)
		builder.AssertNotCalled(t, "SendMeetingUpdated", mock.Anything, mock.Anything)
	})

	t.Run("time change re-reserves excluding own booking", func(t *testing.T) {
		service, meetingRepo, _, attendeeRepo, scheduleRepo, builder := setupMeetingServiceForTesting()

		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(existing(), uint64(4), nil)
		schedule := &models.RoomSchedule{RoomUID: "room-1"}
		schedule.Reserve("meeting-1", start, end)
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-1").
			Return(schedule, uint64(7), nil)
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.MatchedBy(func(s *models.RoomSchedule) bool {
			return len(s.Bookings) == 1 && s.Bookings[0].MeetingUID == "meeting-1"
		}), uint64(7)).Return(nil)
		meetingRepo.On("UpdateMeeting", mock.Anything, mock.Anything, uint64(4)).Return(nil)
		attendeeRepo.On("ListAttendeesByMeeting", mock.Anything, "meeting-1").
			Return([]*models.Attendee{{UserID: "user-2"}}, nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)
		builder.On("SendMeetingUpdated", mock.Anything, mock.MatchedBy(func(msg models.MeetingEventMessage) bool {
			return len(msg.AttendeeIDs) == 1 && msg.AttendeeIDs[0] == "user-2"
		})).Return(nil)

		newStart := start.Add(time.Hour)
		newEnd := end.Add(time.Hour)
		updated, err := service.UpdateMeeting(ctx, "meeting-1", models.UpdateMeetingRequest{
			StartTime: &newStart,
			EndTime:   &newEnd,
		})

		require.NoError(t, err)
		assert.True(t, updated.StartTime.Equal(newStart))
		builder.AssertExpectations(t)
	})

	t.Run("room change releases the old reservation", func(t *testing.T) {
		service, meetingRepo, roomRepo, attendeeRepo, scheduleRepo, builder := setupMeetingServiceForTesting()

		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(existing(), uint64(4), nil)
		roomRepo.On("GetRoom", mock.Anything, "room-2").Return(activeRoom("room-2"), nil)
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-2").
			Return(&models.RoomSchedule{RoomUID: "room-2"}, uint64(0), nil)
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.MatchedBy(func(s *models.RoomSchedule) bool {
			return s.RoomUID == "room-2"
		}), uint64(0)).Return(nil)
		meetingRepo.On("UpdateMeeting", mock.Anything, mock.Anything, uint64(4)).Return(nil)
		oldSchedule := &models.RoomSchedule{RoomUID: "room-1"}
		oldSchedule.Reserve("meeting-1", start, end)
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-1").
			Return(oldSchedule, uint64(9), nil)
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.MatchedBy(func(s *models.RoomSchedule) bool {
			return s.RoomUID == "room-1" && len(s.Bookings) == 0
		}), uint64(9)).Return(nil)
		attendeeRepo.On("ListAttendeesByMeeting", mock.Anything, "meeting-1").
			Return([]*models.Attendee{}, nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)
		builder.On("SendMeetingUpdated", mock.Anything, mock.Anything).Return(nil)

		newRoom := "room-2"
		updated, err := service.UpdateMeeting(ctx, "meeting-1", models.UpdateMeetingRequest{RoomUID: &newRoom})

		require.NoError(t, err)
		assert.Equal(t, "room-2", updated.RoomUID)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("clearing the room releases the old reservation", func(t *testing.T) {
		service, meetingRepo, roomRepo, attendeeRepo, scheduleRepo, builder := setupMeetingServiceForTesting()

		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(existing(), uint64(4), nil)
		meetingRepo.On("UpdateMeeting", mock.Anything, mock.Anything, uint64(4)).Return(nil)
		oldSchedule := &models.RoomSchedule{RoomUID: "room-1"}
		oldSchedule.Reserve("meeting-1", start, end)
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-1").
			Return(oldSchedule, uint64(9), nil)
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.MatchedBy(func(s *models.RoomSchedule) bool {
			return s.RoomUID == "room-1" && len(s.Bookings) == 0
		}), uint64(9)).Return(nil)
		attendeeRepo.On("ListAttendeesByMeeting", mock.Anything, "meeting-1").
			Return([]*models.Attendee{}, nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)
		builder.On("SendMeetingUpdated", mock.Anything, mock.Anything).Return(nil)

		noRoom := ""
		updated, err := service.UpdateMeeting(ctx, "meeting-1", models.UpdateMeetingRequest{RoomUID: &noRoom})

		require.NoError(t, err)
		assert.Empty(t, updated.RoomUID)
		roomRepo.AssertNotCalled(t, "GetRoom", mock.Anything, mock.Anything)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("terminal meeting cannot be modified", func(t *testing.T) {
		service, meetingRepo, _, _, _, _ := setupMeetingServiceForTesting()

		cancelled := existing()
		cancelled.Status = models.MeetingStatusCancelled
		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(cancelled, uint64(4), nil)

		newTitle := "Renamed"
		_, err := service.UpdateMeeting(ctx, "meeting-1", models.UpdateMeetingRequest{Title: &newTitle})

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
	})

	t.Run("not found", func(t *testing.T) {
		service, meetingRepo, _, _, _, _ := setupMeetingServiceForTesting()

		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "missing").
			Return(nil, uint64(0), domain.NewNotFoundError("meeting not found"))

		newTitle := "Renamed"
		_, err := service.UpdateMeeting(ctx, "missing", models.UpdateMeetingRequest{Title: &newTitle})

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestMeetingService_CancelMeeting(t *testing.T) {
	ctx := context.Background()
	start := time.Now().UTC().Add(time.Hour)

	scheduled := func() *models.Meeting {
		return &models.Meeting{
			UID:       "meeting-1",
			Title:     "Planning",
			RoomUID:   "room-1",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Status:    models.MeetingStatusScheduled,
		}
	}

	t.Run("cancel releases the slot", func(t *testing.T) {
		service, meetingRepo, _, attendeeRepo, scheduleRepo, builder := setupMeetingServiceForTesting()

		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(scheduled(), uint64(2), nil)
		meetingRepo.On("UpdateMeeting", mock.Anything, mock.MatchedBy(func(m *models.Meeting) bool {
			return m.Status == models.MeetingStatusCancelled
		}), uint64(2)).Return(nil)
		schedule := &models.RoomSchedule{RoomUID: "room-1"}
		schedule.Reserve("meeting-1", start, start.Add(time.Hour))
		scheduleRepo.On("GetScheduleWithRevision", mock.Anything, "room-1").
			Return(schedule, uint64(5), nil)
		scheduleRepo.On("SaveSchedule", mock.Anything, mock.MatchedBy(func(s *models.RoomSchedule) bool {
			return len(s.Bookings) == 0
		}), uint64(5)).Return(nil)
		attendeeRepo.On("ListAttendeesByMeeting", mock.Anything, "meeting-1").
			Return([]*models.Attendee{{UserID: "user-2"}}, nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)
		builder.On("SendMeetingCancelled", mock.Anything, mock.Anything).Return(nil)

		meeting, err := service.CancelMeeting(ctx, "meeting-1")

		require.NoError(t, err)
		assert.Equal(t, models.MeetingStatusCancelled, meeting.Status)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("cancel of cancelled meeting is a no-op", func(t *testing.T) {
		service, meetingRepo, _, _, scheduleRepo, builder := setupMeetingServiceForTesting()

		cancelled := scheduled()
		cancelled.Status = models.MeetingStatusCancelled
		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(cancelled, uint64(2), nil)

		meeting, err := service.CancelMeeting(ctx, "meeting-1")

		require.NoError(t, err)
		assert.Equal(t, models.MeetingStatusCancelled, meeting.Status)
		meetingRepo.AssertNotCalled(t, "UpdateMeeting", mock.Anything, mock.Anything, mock.Anything)
		scheduleRepo.AssertNotCalled(t, "SaveSchedule", mock.Anything, mock.Anything, mock.Anything)
		builder.AssertNotCalled(t, "SendMeetingCancelled", mock.Anything, mock.Anything)
	})

	t.Run("cancel of completed meeting conflicts", func(t *testing.T) {
		service, meetingRepo, _, _, _, _ := setupMeetingServiceForTesting()

		completed := scheduled()
		completed.Status = models.MeetingStatusCompleted
		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(completed, uint64(2), nil)

		_, err := service.CancelMeeting(ctx, "meeting-1")

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
	})
}

func TestMeetingService_CompleteMeeting(t *testing.T) {
	ctx := context.Background()
	start := time.Now().UTC().Add(-2 * time.Hour)

	t.Run("complete records minutes and keeps the slot", func(t *testing.T) {
		service, meetingRepo, _, attendeeRepo, scheduleRepo, builder := setupMeetingServiceForTesting()

		meeting := &models.Meeting{
			UID:       "meeting-1",
			Title:     "Planning",
			RoomUID:   "room-1",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Status:    models.MeetingStatusScheduled,
		}
		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(meeting, uint64(2), nil)
		meetingRepo.On("UpdateMeeting", mock.Anything, mock.MatchedBy(func(m *models.Meeting) bool {
			return m.Status == models.MeetingStatusCompleted && m.MeetingMinutes == "We decided things."
		}), uint64(2)).Return(nil)
		attendeeRepo.On("ListAttendeesByMeeting", mock.Anything, "meeting-1").
			Return([]*models.Attendee{}, nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)
		builder.On("SendMeetingCompleted", mock.Anything, mock.Anything).Return(nil)

		result, err := service.CompleteMeeting(ctx, "meeting-1", "We decided things.")

		require.NoError(t, err)
		assert.Equal(t, models.MeetingStatusCompleted, result.Status)
		scheduleRepo.AssertNotCalled(t, "SaveSchedule", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("complete of cancelled meeting conflicts", func(t *testing.T) {
		service, meetingRepo, _, _, _, _ := setupMeetingServiceForTesting()

		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(&models.Meeting{
				UID:    "meeting-1",
				Status: models.MeetingStatusCancelled,
			}, uint64(2), nil)

		_, err := service.CompleteMeeting(ctx, "meeting-1", "")

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
	})
}

func TestMeetingService_UpdateMeetingMinutes(t *testing.T) {
	ctx := context.Background()

	t.Run("minutes on completed meeting", func(t *testing.T) {
		service, meetingRepo, _, _, _, builder := setupMeetingServiceForTesting()

		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(&models.Meeting{UID: "meeting-1", Status: models.MeetingStatusCompleted}, uint64(3), nil)
		meetingRepo.On("UpdateMeeting", mock.Anything, mock.MatchedBy(func(m *models.Meeting) bool {
			return m.MeetingMinutes == "Notes"
		}), uint64(3)).Return(nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)

		result, err := service.UpdateMeetingMinutes(ctx, "meeting-1", "Notes")

		require.NoError(t, err)
		assert.Equal(t, "Notes", result.MeetingMinutes)
	})

	t.Run("minutes on scheduled meeting", func(t *testing.T) {
		service, meetingRepo, _, _, _, builder := setupMeetingServiceForTesting()

		meetingRepo.On("GetMeetingWithRevision", mock.Anything, "meeting-1").
			Return(&models.Meeting{UID: "meeting-1", Status: models.MeetingStatusScheduled}, uint64(3), nil)
		meetingRepo.On("UpdateMeeting", mock.Anything, mock.MatchedBy(func(m *models.Meeting) bool {
			return m.MeetingMinutes == "Pre-read notes"
		}), uint64(3)).Return(nil)
		builder.On("SendIndexMeeting", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)

		result, err := service.UpdateMeetingMinutes(ctx, "meeting-1", "Pre-read notes")

		require.NoError(t, err)
		assert.Equal(t, "Pre-read notes", result.MeetingMinutes)
	})

	t.Run("empty minutes are rejected", func(t *testing.T) {
		service, _, _, _, _, _ := setupMeetingServiceForTesting()

		_, err := service.UpdateMeetingMinutes(ctx, "meeting-1", "")

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})
}
