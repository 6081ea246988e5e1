// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// MockRoomRepository implements RoomRepository for testing
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) CreateRoom(ctx context.Context, room *models.MeetingRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) RoomExists(ctx context.Context, roomUID string) (bool, error) {
	args := m.Called(ctx, roomUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) DeleteRoom(ctx context.Context, roomUID string, revision uint64) error {
	args := m.Called(ctx, roomUID, revision)
	return args.Error(0)
}

func (m *MockRoomRepository) GetRoom(ctx context.Context, roomUID string) (*models.MeetingRoom, error) {
	args := m.Called(ctx, roomUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingRoom), args.Error(1)
}

func (m *MockRoomRepository) GetRoomWithRevision(ctx context.Context, roomUID string) (*models.MeetingRoom, uint64, error) {
	args := m.Called(ctx, roomUID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*models.MeetingRoom), args.Get(1).(uint64), args.Error(2)
}

func (m *MockRoomRepository) UpdateRoom(ctx context.Context, room *models.MeetingRoom, revision uint64) error {
	args := m.Called(ctx, room, revision)
	return args.Error(0)
}

func (m *MockRoomRepository) ListAllRooms(ctx context.Context) ([]*models.MeetingRoom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MeetingRoom), args.Error(1)
}
