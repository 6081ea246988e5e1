// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/oa-platform/room-booking-service/internal/domain"
	"github.com/oa-platform/room-booking-service/internal/domain/models"
	"github.com/oa-platform/room-booking-service/internal/logging"
	"github.com/oa-platform/room-booking-service/pkg/constants"
	"github.com/oa-platform/room-booking-service/pkg/utils"
)

// RoomCache is the read cache for room listings. Implementations degrade to
// a miss on any failure.
type RoomCache interface {
	GetActiveRooms(ctx context.Context) ([]*models.MeetingRoom, bool)
	SetActiveRooms(ctx context.Context, rooms []*models.MeetingRoom)
	Invalidate(ctx context.Context)
}

// RoomService manages the meeting room catalog.
type RoomService struct {
	RoomRepository    domain.RoomRepository
	MeetingRepository domain.MeetingRepository
	MessageBuilder    domain.MessageBuilder
	RoomCache         RoomCache
	Config            ServiceConfig
}

// NewRoomService creates a new RoomService.
func NewRoomService(
	roomRepository domain.RoomRepository,
	meetingRepository domain.MeetingRepository,
	messageBuilder domain.MessageBuilder,
	roomCache RoomCache,
	config ServiceConfig,
) *RoomService {
	return &RoomService{
		RoomRepository:    roomRepository,
		MeetingRepository: meetingRepository,
		MessageBuilder:    messageBuilder,
		RoomCache:         roomCache,
		Config:            config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *RoomService) ServiceReady() bool {
	return s.RoomRepository != nil &&
		s.MeetingRepository != nil &&
		s.MessageBuilder != nil
}

func (s *RoomService) validateRoom(ctx context.Context, room *models.MeetingRoom) error {
	if room.Name == "" {
		slog.WarnContext(ctx, "room name is required")
		return domain.NewValidationError("room name is required")
	}
	if room.Capacity <= 0 {
		slog.WarnContext(ctx, "room capacity must be positive", "capacity", room.Capacity)
		return domain.NewValidationError("room capacity must be a positive number")
	}
	return nil
}

// CreateRoom adds a new room to the catalog. Rooms start active;
// deactivation goes through UpdateRoom.
func (s *RoomService) CreateRoom(ctx context.Context, room *models.MeetingRoom) (*models.MeetingRoom, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("room service is not available")
	}

	if err := s.validateRoom(ctx, room); err != nil {
		return nil, err
	}

	room.UID = uuid.New().String()
	room.IsActive = true
	now := time.Now().UTC()
	room.CreatedAt = utils.TimePtr(now)
	room.UpdatedAt = utils.TimePtr(now)

	ctx = logging.AppendCtx(ctx, slog.String("room_uid", room.UID))

	if err := s.RoomRepository.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	if s.RoomCache != nil {
		s.RoomCache.Invalidate(ctx)
	}

	if err := s.MessageBuilder.SendIndexRoom(ctx, models.ActionCreated, *room); err != nil {
		slog.ErrorContext(ctx, "error sending room index message", logging.ErrKey, err)
	}

	slog.DebugContext(ctx, "created room", "room_name", room.Name)

	return room, nil
}

// GetRoom fetches a single room by UID.
func (s *RoomService) GetRoom(ctx context.Context, roomUID string) (*models.MeetingRoom, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("room service is not available")
	}

	if roomUID == "" {
		return nil, domain.NewValidationError("room UID is required")
	}

	return s.RoomRepository.GetRoom(ctx, roomUID)
}

// UpdateRoom applies a partial update to a room.
func (s *RoomService) UpdateRoom(ctx context.Context, roomUID string, req models.UpdateRoomRequest) (*models.MeetingRoom, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("room service is not available")
	}

	if roomUID == "" {
		return nil, domain.NewValidationError("room UID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("room_uid", roomUID))

	existing, revision, err := s.RoomRepository.GetRoomWithRevision(ctx, roomUID)
	if err != nil {
		return nil, err
	}

	merged := models.MergeUpdateRoomRequest(req, existing)
	if err := s.validateRoom(ctx, merged); err != nil {
		return nil, err
	}
	merged.UpdatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.RoomRepository.UpdateRoom(ctx, merged, revision); err != nil {
		return nil, err
	}

	if s.RoomCache != nil {
		s.RoomCache.Invalidate(ctx)
	}

	if err := s.MessageBuilder.SendIndexRoom(ctx, models.ActionUpdated, *merged); err != nil {
		slog.ErrorContext(ctx, "error sending room index message", logging.ErrKey, err)
	}

	slog.DebugContext(ctx, "updated room", "room_name", merged.Name)

	return merged, nil
}

// DeleteRoom removes a room from the catalog. A room with future bookings
// that still occupy it cannot be removed.
func (s *RoomService) DeleteRoom(ctx context.Context, roomUID string) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("room service is not available")
	}

	if roomUID == "" {
		return domain.NewValidationError("room UID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("room_uid", roomUID))

	_, revision, err := s.RoomRepository.GetRoomWithRevision(ctx, roomUID)
	if err != nil {
		return err
	}

	meetings, err := s.MeetingRepository.ListMeetingsByRoom(ctx, roomUID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, meeting := range meetings {
		if meeting.OccupiesRoom() && meeting.EndTime.After(now) {
			return domain.NewConflictError(
				fmt.Sprintf("room has upcoming bookings, e.g. meeting '%s'", meeting.UID))
		}
	}

	if err := s.RoomRepository.DeleteRoom(ctx, roomUID, revision); err != nil {
		return err
	}

	if s.RoomCache != nil {
		s.RoomCache.Invalidate(ctx)
	}

	if err := s.MessageBuilder.SendDeleteIndexRoom(ctx, roomUID); err != nil {
		slog.ErrorContext(ctx, "error sending room index delete message", logging.ErrKey, err)
	}

	slog.DebugContext(ctx, "deleted room")

	return nil
}

// FindRooms lists rooms matching the filter, newest first. Unless the filter
// says otherwise, only active rooms are listed.
func (s *RoomService) FindRooms(ctx context.Context, filter models.RoomFilter) (*models.PaginatedResult[*models.MeetingRoom], error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("room service is not available")
	}

	page, pageSize, err := normalizePagination(filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	rooms, err := s.RoomRepository.ListAllRooms(ctx)
	if err != nil {
		return nil, err
	}

	activeOnly := true
	if filter.IsActive != nil {
		activeOnly = *filter.IsActive
	}

	var matching []*models.MeetingRoom
	for _, room := range rooms {
		if filter.MinCapacity != nil && room.Capacity < *filter.MinCapacity {
			continue
		}
		if filter.Location != "" && room.Location != filter.Location {
			continue
		}
		if len(filter.Facilities) > 0 && !room.HasAllFacilities(filter.Facilities) {
			continue
		}
		if room.IsActive != activeOnly {
			continue
		}
		matching = append(matching, room)
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return utils.TimeValue(matching[i].CreatedAt).After(utils.TimeValue(matching[j].CreatedAt))
	})

	result := models.NewPaginatedResult(matching, page, pageSize)
	return &result, nil
}

// GetActiveRooms lists all active rooms ordered by capacity, smallest first.
// The listing is served from the cache when it holds a fresh copy.
func (s *RoomService) GetActiveRooms(ctx context.Context) ([]*models.MeetingRoom, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("room service is not available")
	}

	if s.RoomCache != nil {
		if rooms, ok := s.RoomCache.GetActiveRooms(ctx); ok {
			slog.DebugContext(ctx, "serving active rooms from cache", "rooms_count", len(rooms))
			return rooms, nil
		}
	}

	rooms, err := s.RoomRepository.ListAllRooms(ctx)
	if err != nil {
		return nil, err
	}

	var active []*models.MeetingRoom
	for _, room := range rooms {
		if room.IsActive {
			active = append(active, room)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Capacity < active[j].Capacity
	})

	if s.RoomCache != nil {
		s.RoomCache.SetActiveRooms(ctx, active)
	}

	return active, nil
}

// normalizePagination applies defaults and bounds to page parameters.
func normalizePagination(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = constants.DefaultPageSize
	}
	if page < 1 {
		return 0, 0, domain.NewValidationError("page must be at least 1")
	}
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		return 0, 0, domain.NewValidationError(
			fmt.Sprintf("page size must be between 1 and %d", constants.MaxPageSize))
	}
	return page, pageSize, nil
}
