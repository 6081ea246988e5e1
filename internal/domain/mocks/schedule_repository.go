// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
)

// MockScheduleRepository implements ScheduleRepository for testing
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) GetScheduleWithRevision(ctx context.Context, roomUID string) (*models.RoomSchedule, uint64, error) {
	args := m.Called(ctx, roomUID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*models.RoomSchedule), args.Get(1).(uint64), args.Error(2)
}

func (m *MockScheduleRepository) SaveSchedule(ctx context.Context, schedule *models.RoomSchedule, revision uint64) error {
	args := m.Called(ctx, schedule, revision)
	return args.Error(0)
}
