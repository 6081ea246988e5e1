// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
	"github.com/oa-platform/room-booking-service/pkg/constants"
)

// MockNATSConn implements INatsConn for testing
type MockNATSConn struct {
	mock.Mock
	published []publishedMessage
}

type publishedMessage struct {
	subject string
	data    []byte
}

func (m *MockNATSConn) IsConnected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockNATSConn) Publish(subj string, data []byte) error {
	m.published = append(m.published, publishedMessage{subject: subj, data: data})
	args := m.Called(subj, mock.Anything)
	return args.Error(0)
}

func TestMessageBuilder_sendMessage(t *testing.T) {
	tests := []struct {
		name         string
		publishError error
		expectError  bool
	}{
		{
			name:         "successful send",
			publishError: nil,
			expectError:  false,
		},
		{
			name:         "publish error",
			publishError: errors.New("publish failed"),
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockConn := new(MockNATSConn)
			mockConn.On("Publish", "test.subject", mock.Anything).Return(tt.publishError)

			builder := NewMessageBuilder(mockConn)

			err := builder.sendMessage(context.Background(), "test.subject", []byte("test data"))

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockConn.AssertExpectations(t)
		})
	}
}

func TestMessageBuilder_SendIndexRoom(t *testing.T) {
	mockConn := new(MockNATSConn)
	mockConn.On("Publish", models.IndexRoomSubject, mock.Anything).Return(nil)

	builder := NewMessageBuilder(mockConn)

	room := models.MeetingRoom{
		UID:        "room-1",
		Name:       "Boardroom",
		Capacity:   12,
		Facilities: []string{"projector"},
	}

	ctx := context.WithValue(context.Background(), constants.AuthorizationContextID, "Bearer token")
	err := builder.SendIndexRoom(ctx, models.ActionCreated, room)
	require.NoError(t, err)

	require.Len(t, mockConn.published, 1)

	var msg models.BookingIndexerMessage
	require.NoError(t, json.Unmarshal(mockConn.published[0].data, &msg))
	assert.Equal(t, models.ActionCreated, msg.Action)
	assert.Equal(t, "Bearer token", msg.Headers[constants.AuthorizationHeader])
	assert.Contains(t, msg.Tags, "room-1")
	assert.Contains(t, msg.Tags, "facility:projector")

	data, ok := msg.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Boardroom", data["name"])
}

func TestMessageBuilder_SendDeleteIndexMeeting(t *testing.T) {
	mockConn := new(MockNATSConn)
	mockConn.On("Publish", models.IndexMeetingSubject, mock.Anything).Return(nil)

	builder := NewMessageBuilder(mockConn)

	err := builder.SendDeleteIndexMeeting(context.Background(), "meeting-1")
	require.NoError(t, err)

	var msg models.BookingIndexerMessage
	require.NoError(t, json.Unmarshal(mockConn.published[0].data, &msg))
	assert.Equal(t, models.ActionDeleted, msg.Action)
	assert.Equal(t, "meeting-1", msg.Data)
	// System fallback header when no auth context is present
	assert.NotEmpty(t, msg.Headers[constants.AuthorizationHeader])
}

func TestMessageBuilder_SendMeetingCancelled(t *testing.T) {
	mockConn := new(MockNATSConn)
	mockConn.On("Publish", models.MeetingCancelledSubject, mock.Anything).Return(nil)

	builder := NewMessageBuilder(mockConn)

	event := models.MeetingEventMessage{
		MeetingUID:  "meeting-1",
		RoomUID:     "room-1",
		OrganizerID: "user-1",
		Title:       "Planning",
		AttendeeIDs: []string{"user-2", "user-3"},
	}

	err := builder.SendMeetingCancelled(context.Background(), event)
	require.NoError(t, err)

	var got models.MeetingEventMessage
	require.NoError(t, json.Unmarshal(mockConn.published[0].data, &got))
	assert.Equal(t, event, got)
}

func TestMessageBuilder_SendAttendeeResponded(t *testing.T) {
	mockConn := new(MockNATSConn)
	mockConn.On("Publish", models.AttendeeRespondedSubject, mock.Anything).Return(nil)

	builder := NewMessageBuilder(mockConn)

	err := builder.SendAttendeeResponded(context.Background(), models.AttendeeEventMessage{
		MeetingUID: "meeting-1",
		UserID:     "user-2",
		Status:     string(models.AttendeeStatusAccepted),
	})

	require.NoError(t, err)
	mockConn.AssertExpectations(t)
}
