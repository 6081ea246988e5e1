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
	"github.com/oa-platform/room-booking-service/pkg/constants"
)

// QueryService serves the meeting listing paths. Filters are applied before
// pagination, so totals always reflect the full match set.
type QueryService struct {
	MeetingRepository  domain.MeetingRepository
	AttendeeRepository domain.AttendeeRepository
	Config             ServiceConfig
}

// NewQueryService creates a new QueryService.
func NewQueryService(
	meetingRepository domain.MeetingRepository,
	attendeeRepository domain.AttendeeRepository,
	config ServiceConfig,
) *QueryService {
	return &QueryService{
		MeetingRepository:  meetingRepository,
		AttendeeRepository: attendeeRepository,
		Config:             config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *QueryService) ServiceReady() bool {
	return s.MeetingRepository != nil &&
		s.AttendeeRepository != nil
}

// FindMeetings lists meetings matching the filter, newest start first.
// The user filter matches meetings the user attends, resolved through the
// per-user attendee index before pagination. Organized-but-not-attended
// meetings are not matched; GetMeetingsByUser covers those.
func (s *QueryService) FindMeetings(ctx context.Context, filter models.MeetingFilter) (*models.PaginatedResult[*models.Meeting], error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("query service is not available")
	}

	page, pageSize, err := normalizePagination(filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("invalid meeting status filter")
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, domain.NewValidationError("end date must not be before start date")
	}

	var attendedUIDs map[string]bool
	if filter.UserID != "" {
		uids, err := s.AttendeeRepository.ListMeetingUIDsByUser(ctx, filter.UserID)
		if err != nil {
			return nil, err
		}
		attendedUIDs = make(map[string]bool, len(uids))
		for _, uid := range uids {
			attendedUIDs[uid] = true
		}
	}

	meetings, err := s.MeetingRepository.ListAllMeetings(ctx)
	if err != nil {
		return nil, err
	}

	var matching []*models.Meeting
	for _, meeting := range meetings {
		if filter.RoomUID != "" && meeting.RoomUID != filter.RoomUID {
			continue
		}
		if filter.UserID != "" && !attendedUIDs[meeting.UID] {
			continue
		}
		if filter.Status != nil && meeting.Status != *filter.Status {
			continue
		}
		// The date range matches meetings that intersect it.
		if filter.StartDate != nil && meeting.EndTime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && meeting.StartTime.After(*filter.EndDate) {
			continue
		}
		matching = append(matching, meeting)
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].StartTime.After(matching[j].StartTime)
	})

	result := models.NewPaginatedResult(matching, page, pageSize)

	slog.DebugContext(ctx, "found meetings",
		"total", result.Total,
		"page", result.Page,
	)

	return &result, nil
}

// GetMeetingsByUser lists all meetings the user organizes or attends,
// newest start first.
func (s *QueryService) GetMeetingsByUser(ctx context.Context, userID string, page, pageSize int) (*models.PaginatedResult[*models.Meeting], error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("query service is not available")
	}

	if userID == "" {
		return nil, domain.NewValidationError("user ID is required")
	}

	page, pageSize, err := normalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	uids, err := s.AttendeeRepository.ListMeetingUIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	attendedUIDs := make(map[string]bool, len(uids))
	for _, uid := range uids {
		attendedUIDs[uid] = true
	}

	meetings, err := s.MeetingRepository.ListAllMeetings(ctx)
	if err != nil {
		return nil, err
	}

	var matching []*models.Meeting
	for _, meeting := range meetings {
		if meeting.OrganizerID != userID && !attendedUIDs[meeting.UID] {
			continue
		}
		matching = append(matching, meeting)
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].StartTime.After(matching[j].StartTime)
	})

	result := models.NewPaginatedResult(matching, page, pageSize)
	return &result, nil
}

// GetUpcomingMeetings lists scheduled meetings starting within the lookahead
// window, soonest first. A zero window falls back to the configured default.
func (s *QueryService) GetUpcomingMeetings(ctx context.Context, windowMinutes int) ([]*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("query service is not available")
	}

	if windowMinutes < 0 {
		return nil, domain.NewValidationError("window minutes must not be negative")
	}
	if windowMinutes == 0 {
		windowMinutes = s.Config.UpcomingWindowMinutes
	}
	if windowMinutes == 0 {
		windowMinutes = constants.DefaultUpcomingWindowMinutes
	}

	now := time.Now().UTC()
	windowEnd := now.Add(time.Duration(windowMinutes) * time.Minute)

	meetings, err := s.MeetingRepository.ListAllMeetings(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := []*models.Meeting{}
	for _, meeting := range meetings {
		if meeting.Status != models.MeetingStatusScheduled {
			continue
		}
		if meeting.StartTime.Before(now) || meeting.StartTime.After(windowEnd) {
			continue
		}
		upcoming = append(upcoming, meeting)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(upcoming[j].StartTime)
	})

	return upcoming, nil
}
