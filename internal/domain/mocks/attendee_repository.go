// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// MockAttendeeRepository implements AttendeeRepository for testing
type MockAttendeeRepository struct {
	mock.Mock
}

func (m *MockAttendeeRepository) CreateAttendee(ctx context.Context, attendee *models.Attendee) error {
	args := m.Called(ctx, attendee)
	return args.Error(0)
}

func (m *MockAttendeeRepository) AttendeeExists(ctx context.Context, meetingUID, userID string) (bool, error) {
	args := m.Called(ctx, meetingUID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAttendeeRepository) DeleteAttendee(ctx context.Context, meetingUID, userID string, revision uint64) error {
	args := m.Called(ctx, meetingUID, userID, revision)
	return args.Error(0)
}

func (m *MockAttendeeRepository) GetAttendee(ctx context.Context, meetingUID, userID string) (*models.Attendee, error) {
	args := m.Called(ctx, meetingUID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendee), args.Error(1)
}

func (m *MockAttendeeRepository) GetAttendeeWithRevision(ctx context.Context, meetingUID, userID string) (*models.Attendee, uint64, error) {
	args := m.Called(ctx, meetingUID, userID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*models.Attendee), args.Get(1).(uint64), args.Error(2)
}

func (m *MockAttendeeRepository) UpdateAttendee(ctx context.Context, attendee *models.Attendee, revision uint64) error {
	args := m.Called(ctx, attendee, revision)
	return args.Error(0)
}

func (m *MockAttendeeRepository) ListAttendeesByMeeting(ctx context.Context, meetingUID string) ([]*models.Attendee, error) {
	args := m.Called(ctx, meetingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Attendee), args.Error(1)
}

func (m *MockAttendeeRepository) ListMeetingUIDsByUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
