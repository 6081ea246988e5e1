// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oa-platform/room-booking-service/internal/domain"
	"github.com/oa-platform/room-booking-service/internal/domain/mocks"
	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// setupAttendeeServiceForTesting creates an AttendeeService with mock dependencies for testing
func setupAttendeeServiceForTesting() (*AttendeeService, *mocks.MockMeetingRepository, *mocks.MockAttendeeRepository, *mocks.MockMessageBuilder) {
	mockMeetingRepo := new(mocks.MockMeetingRepository)
	mockAttendeeRepo := new(mocks.MockAttendeeRepository)
	mockBuilder := new(mocks.MockMessageBuilder)

	service := NewAttendeeService(mockMeetingRepo, mockAttendeeRepo, mockBuilder, ServiceConfig{})

	return service, mockMeetingRepo, mockAttendeeRepo, mockBuilder
}

func scheduledMeeting(uid string) *models.Meeting {
	return &models.Meeting{
		UID:    uid,
		Title:  "Planning",
		Status: models.MeetingStatusScheduled,
	}
}

func TestAttendeeService_ServiceReady(t *testing.T) {
	service, _, _, _ := setupAttendeeServiceForTesting()
	assert.True(t, service.ServiceReady())

	service.AttendeeRepository = nil
	assert.False(t, service.ServiceReady())
}

func TestAttendeeService_InviteAttendee(t *testing.T) {
	ctx := context.Background()

	t.Run("successful invitation starts pending", func(t *testing.T) {
		service, meetingRepo, attendeeRepo, builder := setupAttendeeServiceForTesting()

		meetingRepo.On("GetMeeting", mock.Anything, "meeting-1").Return(scheduledMeeting("meeting-1"), nil)
		attendeeRepo.On("AttendeeExists", mock.Anything, "meeting-1", "user-2").Return(false, nil)
		attendeeRepo.On("CreateAttendee", mock.Anything, mock.MatchedBy(func(a *models.Attendee) bool {
			return a.Status == models.AttendeeStatusPending && a.UserID == "user-2" &&
				a.Name == "Bob Smith" && a.Email == "bob@example.com"
		})).Return(nil)
		builder.On("SendIndexAttendee", mock.Anything, models.ActionCreated, mock.Anything).Return(nil)
		builder.On("SendAttendeeInvited", mock.Anything, mock.MatchedBy(func(msg models.AttendeeEventMessage) bool {
			return msg.UserID == "user-2" && msg.Status == string(models.AttendeeStatusPending)
		})).Return(nil)

		attendee, err := service.InviteAttendee(ctx, "meeting-1", models.AttendeeInvite{
			UserID: "user-2",
			Name:   "Bob Smith",
			Email:  "bob@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, models.AttendeeStatusPending, attendee.Status)
		assert.Equal(t, "Bob Smith", attendee.Name)
		assert.Equal(t, "bob@example.com", attendee.Email)
		assert.NotEmpty(t, attendee.UID)
		builder.AssertExpectations(t)
	})

	t.Run("duplicate invitation conflicts", func(t *testing.T) {
		service, meetingRepo, attendeeRepo, _ := setupAttendeeServiceForTesting()

		meetingRepo.On("GetMeeting", mock.Anything, "meeting-1").Return(scheduledMeeting("meeting-1"), nil)
		attendeeRepo.On("AttendeeExists", mock.Anything, "meeting-1", "user-2").Return(true, nil)

		_, err := service.InviteAttendee(ctx, "meeting-1", models.AttendeeInvite{UserID: "user-2"})

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
		attendeeRepo.AssertNotCalled(t, "CreateAttendee", mock.Anything, mock.Anything)
	})

	t.Run("invitation to cancelled meeting conflicts", func(t *testing.T) {
		service, meetingRepo, _, _ := setupAttendeeServiceForTesting()

		cancelled := scheduledMeeting("meeting-1")
		cancelled.Status = models.MeetingStatusCancelled
		meetingRepo.On("GetMeeting", mock.Anything, "meeting-1").Return(cancelled, nil)

		_, err := service.InviteAttendee(ctx, "meeting-1", models.AttendeeInvite{UserID: "user-2"})

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
	})

	t.Run("unknown meeting", func(t *testing.T) {
		service, meetingRepo, _, _ := setupAttendeeServiceForTesting()

		meetingRepo.On("GetMeeting", mock.Anything, "missing").
			Return(nil, domain.NewNotFoundError("meeting not found"))

		_, err := service.InviteAttendee(ctx, "missing", models.AttendeeInvite{UserID: "user-2"})

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})

	t.Run("validation failures", func(t *testing.T) {
		service, _, _, _ := setupAttendeeServiceForTesting()

		_, err := service.InviteAttendee(ctx, "", models.AttendeeInvite{UserID: "user-2"})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))

		_, err = service.InviteAttendee(ctx, "meeting-1", models.AttendeeInvite{})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})
}

func TestAttendeeService_RespondToInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("response updates only the attendee record", func(t *testing.T) {
		service, meetingRepo, attendeeRepo, builder := setupAttendeeServiceForTesting()

		meetingRepo.On("GetMeeting", mock.Anything, "meeting-1").Return(scheduledMeeting("meeting-1"), nil)
		attendeeRepo.On("GetAttendeeWithRevision", mock.Anything, "meeting-1", "user-2").
			Return(&models.Attendee{
				UID:        "att-1",
				MeetingUID: "meeting-1",
				UserID:     "user-2",
				Status:     models.AttendeeStatusPending,
			}, uint64(3), nil)
		attendeeRepo.On("UpdateAttendee", mock.Anything, mock.MatchedBy(func(a *models.Attendee) bool {
			return a.Status == models.AttendeeStatusAccepted
		}), uint64(3)).Return(nil)
		builder.On("SendIndexAttendee", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)
		builder.On("SendAttendeeResponded", mock.Anything, mock.Anything).Return(nil)

		attendee, err := service.RespondToInvitation(ctx, "meeting-1", "user-2", models.AttendeeStatusAccepted)

		require.NoError(t, err)
		assert.Equal(t, models.AttendeeStatusAccepted, attendee.Status)
		meetingRepo.AssertNotCalled(t, "UpdateMeeting", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stale revision surfaces the conflict", func(t *testing.T) {
		service, meetingRepo, attendeeRepo, _ := setupAttendeeServiceForTesting()

		meetingRepo.On("GetMeeting", mock.Anything, "meeting-1").Return(scheduledMeeting("meeting-1"), nil)
		attendeeRepo.On("GetAttendeeWithRevision", mock.Anything, "meeting-1", "user-2").
			Return(&models.Attendee{UID: "att-1", MeetingUID: "meeting-1", UserID: "user-2"}, uint64(3), nil)
		attendeeRepo.On("UpdateAttendee", mock.Anything, mock.Anything, uint64(3)).
			Return(domain.NewConflictError("attendee has been modified"))

		_, err := service.RespondToInvitation(ctx, "meeting-1", "user-2", models.AttendeeStatusDeclined)

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
	})

	t.Run("response to cancelled meeting conflicts", func(t *testing.T) {
		service, meetingRepo, _, _ := setupAttendeeServiceForTesting()

		cancelled := scheduledMeeting("meeting-1")
		cancelled.Status = models.MeetingStatusCancelled
		meetingRepo.On("GetMeeting", mock.Anything, "meeting-1").Return(cancelled, nil)

		_, err := service.RespondToInvitation(ctx, "meeting-1", "user-2", models.AttendeeStatusAccepted)

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
	})

	t.Run("invalid status", func(t *testing.T) {
		service, _, _, _ := setupAttendeeServiceForTesting()

		_, err := service.RespondToInvitation(ctx, "meeting-1", "user-2", models.AttendeeStatus("MAYBE"))

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
	})

	t.Run("responder is not an attendee", func(t *testing.T) {
		service, meetingRepo, attendeeRepo, _ := setupAttendeeServiceForTesting()

		meetingRepo.On("GetMeeting", mock.Anything, "meeting-1").Return(scheduledMeeting("meeting-1"), nil)
		attendeeRepo.On("GetAttendeeWithRevision", mock.Anything, "meeting-1", "user-9").
			Return(nil, uint64(0), domain.NewNotFoundError("attendee not found"))

		_, err := service.RespondToInvitation(ctx, "meeting-1", "user-9", models.AttendeeStatusTentative)

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestAttendeeService_RemoveAttendee(t *testing.T) {
	ctx := context.Background()

	t.Run("removal deletes the record and its index", func(t *testing.T) {
		service, _, attendeeRepo, builder := setupAttendeeServiceForTesting()

		attendeeRepo.On("GetAttendeeWithRevision", mock.Anything, "meeting-1", "user-2").
			Return(&models.Attendee{UID: "att-1", MeetingUID: "meeting-1", UserID: "user-2"}, uint64(2), nil)
		attendeeRepo.On("DeleteAttendee", mock.Anything, "meeting-1", "user-2", uint64(2)).Return(nil)
		builder.On("SendDeleteIndexAttendee", mock.Anything, "att-1").Return(nil)

		err := service.RemoveAttendee(ctx, "meeting-1", "user-2")

		require.NoError(t, err)
		attendeeRepo.AssertExpectations(t)
		builder.AssertExpectations(t)
	})

	t.Run("unknown attendee", func(t *testing.T) {
		service, _, attendeeRepo, _ := setupAttendeeServiceForTesting()

		attendeeRepo.On("GetAttendeeWithRevision", mock.Anything, "meeting-1", "user-9").
			Return(nil, uint64(0), domain.NewNotFoundError("attendee not found"))

		err := service.RemoveAttendee(ctx, "meeting-1", "user-9")

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}

func TestAttendeeService_ListAttendees(t *testing.T) {
	ctx := context.Background()

	t.Run("lists attendees of an existing meeting", func(t *testing.T) {
		service, meetingRepo, attendeeRepo, _ := setupAttendeeServiceForTesting()

		meetingRepo.On("MeetingExists", mock.Anything, "meeting-1").Return(true, nil)
		attendeeRepo.On("ListAttendeesByMeeting", mock.Anything, "meeting-1").
			Return([]*models.Attendee{
				{UID: "att-1", UserID: "user-2", Status: models.AttendeeStatusAccepted},
				{UID: "att-2", UserID: "user-3", Status: models.AttendeeStatusPending},
			}, nil)

		attendees, err := service.ListAttendees(ctx, "meeting-1")

		require.NoError(t, err)
		assert.Len(t, attendees, 2)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		service, meetingRepo, _, _ := setupAttendeeServiceForTesting()

		meetingRepo.On("MeetingExists", mock.Anything, "missing").Return(false, nil)

		_, err := service.ListAttendees(ctx, "missing")

		require.Error(t, err)
		assert.Equal(t, domain.ErrorTypeNotFound, domain.GetErrorType(err))
	})
}
