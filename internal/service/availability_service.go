// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/oa-platform/room-booking-service/internal/domain"
	"github.com/oa-platform/room-booking-service/internal/domain/models"
	"github.com/oa-platform/room-booking-service/internal/logging"
)

// AvailabilityService answers read-only questions about room occupancy.
// Booking writes go through the meeting service, which serializes on the
// room schedule record; this service only inspects stored meetings.
type AvailabilityService struct {
	MeetingRepository domain.MeetingRepository
	Config            ServiceConfig
}

// NewAvailabilityService creates a new AvailabilityService.
func NewAvailabilityService(meetingRepository domain.MeetingRepository, config ServiceConfig) *AvailabilityService {
	return &AvailabilityService{
		MeetingRepository: meetingRepository,
		Config:            config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *AvailabilityService) ServiceReady() bool {
	return s.MeetingRepository != nil
}

// CheckAvailability reports whether a room is free for the half-open
// interval [start, end). Back-to-back meetings do not conflict. A room UID
// with no bookings reads as available, whether or not the room exists.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, roomUID string, start, end time.Time) (*models.AvailabilityResult, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("availability service is not available")
	}

	if roomUID == "" {
		return nil, domain.NewValidationError("room UID is required")
	}
	if !start.Before(end) {
		return nil, domain.NewValidationError("start time must be before end time")
	}

	meetings, err := s.MeetingRepository.ListMeetingsByRoom(ctx, roomUID)
	if err != nil {
		return nil, err
	}

	var conflicting []*models.Meeting
	for _, meeting := range meetings {
		if !meeting.OccupiesRoom() {
			continue
		}
		if models.Overlaps(meeting.StartTime, meeting.EndTime, start, end) {
			conflicting = append(conflicting, meeting)
		}
	}

	slog.DebugContext(ctx, "checked room availability",
		"room_uid", roomUID,
		"available", len(conflicting) == 0,
		"conflicts_count", len(conflicting),
	)

	return &models.AvailabilityResult{
		Available:           len(conflicting) == 0,
		ConflictingBookings: conflicting,
	}, nil
}

// GetRoomBookings lists a room's bookings that overlap the local calendar
// day containing date, earliest first. A meeting spanning midnight shows up
// on both days. Cancelled meetings are excluded.
func (s *AvailabilityService) GetRoomBookings(ctx context.Context, roomUID string, date time.Time) (*models.RoomBookingsDay, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("availability service is not available")
	}

	if roomUID == "" {
		return nil, domain.NewValidationError("room UID is required")
	}

	dayStart, dayEnd := models.DayWindow(date)

	meetings, err := s.MeetingRepository.ListMeetingsByRoom(ctx, roomUID)
	if err != nil {
		return nil, err
	}

	bookings := []*models.Meeting{}
	for _, meeting := range meetings {
		if !meeting.OccupiesRoom() {
			continue
		}
		if !models.Overlaps(meeting.StartTime, meeting.EndTime, dayStart, dayEnd) {
			continue
		}
		bookings = append(bookings, meeting)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartTime.Before(bookings[j].StartTime)
	})

	return &models.RoomBookingsDay{
		RoomUID:  roomUID,
		Date:     dayStart,
		Bookings: bookings,
	}, nil
}
