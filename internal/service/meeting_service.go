// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oa-platform/room-booking-service/internal/domain"
	"github.com/oa-platform/room-booking-service/internal/domain/models"
	"github.com/oa-platform/room-booking-service/internal/logging"
	"github.com/oa-platform/room-booking-service/pkg/concurrent"
	"github.com/oa-platform/room-booking-service/pkg/constants"
	"github.com/oa-platform/room-booking-service/pkg/utils"
)

// MeetingService manages the meeting lifecycle. Bookings are serialized per
// room through the schedule record: the conflict check and the reservation
// happen inside one compare-and-swap, so two writers racing for the same
// slot cannot both win.
type MeetingService struct {
	MeetingRepository  domain.MeetingRepository
	RoomRepository     domain.RoomRepository
	AttendeeRepository domain.AttendeeRepository
	ScheduleRepository domain.ScheduleRepository
	MessageBuilder     domain.MessageBuilder
	Config             ServiceConfig

	messagePool *concurrent.WorkerPool
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(
	meetingRepository domain.MeetingRepository,
	roomRepository domain.RoomRepository,
	attendeeRepository domain.AttendeeRepository,
	scheduleRepository domain.ScheduleRepository,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *MeetingService {
	return &MeetingService{
		MeetingRepository:  meetingRepository,
		RoomRepository:     roomRepository,
		AttendeeRepository: attendeeRepository,
		ScheduleRepository: scheduleRepository,
		MessageBuilder:     messageBuilder,
		Config:             config,
		messagePool:        concurrent.NewWorkerPool(10),
	}
}

// ServiceReady checks if the service is ready for use.
func (s *MeetingService) ServiceReady() bool {
	return s.MeetingRepository != nil &&
		s.RoomRepository != nil &&
		s.AttendeeRepository != nil &&
		s.ScheduleRepository != nil &&
		s.MessageBuilder != nil
}

func (s *MeetingService) validateMeetingTimes(ctx context.Context, start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return domain.NewValidationError("start time and end time are required")
	}
	if !start.Before(end) {
		slog.WarnContext(ctx, "start time must be before end time",
			"start_time", start, "end_time", end)
		return domain.NewValidationError("start time must be before end time")
	}
	return nil
}

func (s *MeetingService) validateCreateMeetingPayload(ctx context.Context, meeting *models.Meeting) error {
	if meeting == nil {
		return domain.NewValidationError("meeting payload is required")
	}
	if meeting.Title == "" {
		return domain.NewValidationError("meeting title is required")
	}
	if meeting.OrganizerID == "" {
		return domain.NewValidationError("organizer ID is required")
	}
	return s.validateMeetingTimes(ctx, meeting.StartTime, meeting.EndTime)
}

// reserveSlot claims [start, end) in the room's schedule for the meeting.
// The conflict check and the write happen against one revision of the
// schedule record; a concurrent writer moving the record forces a re-read,
// bounded by MaxScheduleRetries.
func (s *MeetingService) reserveSlot(ctx context.Context, roomUID, meetingUID string, start, end time.Time) error {
	for attempt := 0; attempt < constants.MaxScheduleRetries; attempt++ {
		schedule, revision, err := s.ScheduleRepository.GetScheduleWithRevision(ctx, roomUID)
		if err != nil {
			return err
		}

		conflicts := schedule.Conflicts(start, end, meetingUID)
		if len(conflicts) > 0 {
			return domain.NewConflictError(
				fmt.Sprintf("room is already booked by meeting '%s' in the requested slot", conflicts[0].MeetingUID))
		}

		schedule.Reserve(meetingUID, start, end)

		err = s.ScheduleRepository.SaveSchedule(ctx, schedule, revision)
		if err == nil {
			return nil
		}
		if domain.GetErrorType(err) != domain.ErrorTypeConflict {
			return err
		}

		slog.DebugContext(ctx, "schedule moved during reservation, retrying",
			"room_uid", roomUID, "attempt", attempt+1)
	}

	return domain.NewConflictError("room schedule is under contention, try again")
}

// releaseSlot drops the meeting's reservation from the room's schedule.
func (s *MeetingService) releaseSlot(ctx context.Context, roomUID, meetingUID string) error {
	for attempt := 0; attempt < constants.MaxScheduleRetries; attempt++ {
		schedule, revision, err := s.ScheduleRepository.GetScheduleWithRevision(ctx, roomUID)
		if err != nil {
			return err
		}
		if revision == 0 {
			// No schedule record, nothing to release.
			return nil
		}

		schedule.Release(meetingUID)

		err = s.ScheduleRepository.SaveSchedule(ctx, schedule, revision)
		if err == nil {
			return nil
		}
		if domain.GetErrorType(err) != domain.ErrorTypeConflict {
			return err
		}

		slog.DebugContext(ctx, "schedule moved during release, retrying",
			"room_uid", roomUID, "attempt", attempt+1)
	}

	return domain.NewConflictError("room schedule is under contention, try again")
}

func (s *MeetingService) attendeeUserIDs(ctx context.Context, meetingUID string) []string {
	attendees, err := s.AttendeeRepository.ListAttendeesByMeeting(ctx, meetingUID)
	if err != nil {
		slog.WarnContext(ctx, "failed to list attendees for event message",
			logging.ErrKey, err, "meeting_uid", meetingUID)
		return nil
	}

	userIDs := make([]string, 0, len(attendees))
	for _, a := range attendees {
		userIDs = append(userIDs, a.UserID)
	}
	return userIDs
}

func (s *MeetingService) eventMessage(meeting *models.Meeting, attendeeIDs []string) models.MeetingEventMessage {
	return models.MeetingEventMessage{
		MeetingUID:  meeting.UID,
		RoomUID:     meeting.RoomUID,
		OrganizerID: meeting.OrganizerID,
		Title:       meeting.Title,
		StartTime:   meeting.StartTime.UTC().Format(time.RFC3339),
		EndTime:     meeting.EndTime.UTC().Format(time.RFC3339),
		AttendeeIDs: attendeeIDs,
	}
}

// CreateMeeting books a meeting: it reserves the room slot when a room is
// requested, persists the meeting, and invites the given attendees. A meeting
// without a room UID is a roomless meeting and makes no reservation.
func (s *MeetingService) CreateMeeting(ctx context.Context, meeting *models.Meeting, invites []models.AttendeeInvite) (*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("meeting service is not available")
	}

	if err := s.validateCreateMeetingPayload(ctx, meeting); err != nil {
		return nil, err
	}

	if meeting.RoomUID != "" {
		room, err := s.RoomRepository.GetRoom(ctx, meeting.RoomUID)
		if err != nil {
			return nil, err
		}
		if !room.IsActive {
			return nil, domain.NewValidationError(
				fmt.Sprintf("room '%s' is not active", room.UID))
		}
	}

	meeting.UID = uuid.New().String()
	meeting.Status = models.MeetingStatusScheduled
	now := time.Now().UTC()
	meeting.CreatedAt = utils.TimePtr(now)
	meeting.UpdatedAt = utils.TimePtr(now)

	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", meeting.UID))

	// Claim the slot before writing the meeting so two concurrent bookings
	// for the same window cannot both be persisted.
	if meeting.RoomUID != "" {
		if err := s.reserveSlot(ctx, meeting.RoomUID, meeting.UID, meeting.StartTime, meeting.EndTime); err != nil {
			return nil, err
		}
	}

	if err := s.MeetingRepository.CreateMeeting(ctx, meeting); err != nil {
		if meeting.RoomUID != "" {
			if releaseErr := s.releaseSlot(ctx, meeting.RoomUID, meeting.UID); releaseErr != nil {
				slog.ErrorContext(ctx, "failed to release reservation after create failure",
					logging.ErrKey, releaseErr, logging.PriorityCritical())
			}
		}
		return nil, err
	}

	// Invite attendees. Failures here don't undo the booking.
	deduped := dedupeInvites(invites)
	userIDs := make([]string, 0, len(deduped))
	attendees := make([]*models.Attendee, 0, len(deduped))
	for _, invite := range deduped {
		userIDs = append(userIDs, invite.UserID)
		attendees = append(attendees, &models.Attendee{
			UID:        uuid.New().String(),
			MeetingUID: meeting.UID,
			UserID:     invite.UserID,
			Name:       invite.Name,
			Email:      invite.Email,
			Status:     models.AttendeeStatusPending,
			CreatedAt:  utils.TimePtr(now),
			UpdatedAt:  utils.TimePtr(now),
		})
	}

	functions := make([]func() error, 0, len(attendees))
	for _, attendee := range attendees {
		attendee := attendee
		functions = append(functions, func() error {
			return s.AttendeeRepository.CreateAttendee(ctx, attendee)
		})
	}
	for _, err := range s.messagePool.RunAll(ctx, functions...) {
		slog.ErrorContext(ctx, "error creating attendee", logging.ErrKey, err)
	}

	s.sendCreateMeetingMessages(ctx, meeting, attendees, userIDs)

	slog.DebugContext(ctx, "created meeting",
		"room_uid", meeting.RoomUID,
		"start_time", meeting.StartTime,
		"attendees_count", len(attendees),
	)

	return meeting, nil
}

func (s *MeetingService) sendCreateMeetingMessages(ctx context.Context, meeting *models.Meeting, attendees []*models.Attendee, userIDs []string) {
	functions := []func() error{
		func() error {
			return s.MessageBuilder.SendIndexMeeting(ctx, models.ActionCreated, *meeting)
		},
		func() error {
			return s.MessageBuilder.SendMeetingScheduled(ctx, s.eventMessage(meeting, userIDs))
		},
	}
	for _, attendee := range attendees {
		attendee := attendee
		functions = append(functions,
			func() error {
				return s.MessageBuilder.SendIndexAttendee(ctx, models.ActionCreated, *attendee)
			},
			func() error {
				return s.MessageBuilder.SendAttendeeInvited(ctx, models.AttendeeEventMessage{
					MeetingUID: meeting.UID,
					UserID:     attendee.UserID,
					Status:     string(attendee.Status),
				})
			},
		)
	}

	for _, err := range s.messagePool.RunAll(ctx, functions...) {
		slog.ErrorContext(ctx, "error sending message", logging.ErrKey, err)
	}
}

// GetMeeting fetches a single meeting by UID.
func (s *MeetingService) GetMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("meeting service is not available")
	}

	if meetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}

	return s.MeetingRepository.GetMeeting(ctx, meetingUID)
}

// UpdateMeeting applies a partial update to a meeting. Moving the meeting to
// a new room or time slot re-runs the reservation against the schedule, with
// the meeting's own reservation excluded from the conflict check.
func (s *MeetingService) UpdateMeeting(ctx context.Context, meetingUID string, req models.UpdateMeetingRequest) (*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("meeting service is not available")
	}

	if meetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", meetingUID))

	existing, revision, err := s.MeetingRepository.GetMeetingWithRevision(ctx, meetingUID)
	if err != nil {
		return nil, err
	}

	if existing.Status.IsTerminal() {
		return nil, domain.NewConflictError(
			fmt.Sprintf("cannot modify a %s meeting", existing.Status))
	}

	merged := models.MergeUpdateMeetingRequest(req, existing)
	if err := s.validateMeetingTimes(ctx, merged.StartTime, merged.EndTime); err != nil {
		return nil, err
	}

	bookingChanged := req.ChangesBooking(existing)
	roomChanged := merged.RoomUID != existing.RoomUID

	if bookingChanged {
		if roomChanged && merged.RoomUID != "" {
			room, err := s.RoomRepository.GetRoom(ctx, merged.RoomUID)
			if err != nil {
				return nil, err
			}
			if !room.IsActive {
				return nil, domain.NewValidationError(
					fmt.Sprintf("room '%s' is not active", room.UID))
			}
		}

		if merged.RoomUID != "" {
			if err := s.reserveSlot(ctx, merged.RoomUID, merged.UID, merged.StartTime, merged.EndTime); err != nil {
				return nil, err
			}
		}
	}

	merged.UpdatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.MeetingRepository.UpdateMeeting(ctx, merged, revision); err != nil {
		if bookingChanged {
			s.rollbackReservation(ctx, existing, roomChanged, merged.RoomUID)
		}
		return nil, err
	}

	// The old room's reservation is only dropped once the meeting record
	// points at the new room.
	if roomChanged && existing.RoomUID != "" {
		if err := s.releaseSlot(ctx, existing.RoomUID, existing.UID); err != nil {
			slog.ErrorContext(ctx, "failed to release old room reservation",
				logging.ErrKey, err, "room_uid", existing.RoomUID, logging.PriorityCritical())
		}
	}

	userIDs := s.attendeeUserIDs(ctx, merged.UID)
	functions := []func() error{
		func() error {
			return s.MessageBuilder.SendIndexMeeting(ctx, models.ActionUpdated, *merged)
		},
	}
	if bookingChanged {
		functions = append(functions, func() error {
			return s.MessageBuilder.SendMeetingUpdated(ctx, s.eventMessage(merged, userIDs))
		})
	}
	for _, err := range s.messagePool.RunAll(ctx, functions...) {
		slog.ErrorContext(ctx, "error sending message", logging.ErrKey, err)
	}

	slog.DebugContext(ctx, "updated meeting", "booking_changed", bookingChanged)

	return merged, nil
}

// rollbackReservation undoes a reservation made for an update whose record
// write failed. Best effort: the schedule may have moved on.
func (s *MeetingService) rollbackReservation(ctx context.Context, existing *models.Meeting, roomChanged bool, newRoomUID string) {
	if roomChanged {
		if newRoomUID == "" {
			return
		}
		if err := s.releaseSlot(ctx, newRoomUID, existing.UID); err != nil {
			slog.ErrorContext(ctx, "failed to roll back reservation in new room",
				logging.ErrKey, err, "room_uid", newRoomUID, logging.PriorityCritical())
		}
		return
	}

	// Same room: restore the original interval.
	if existing.RoomUID == "" {
		return
	}
	if err := s.reserveSlot(ctx, existing.RoomUID, existing.UID, existing.StartTime, existing.EndTime); err != nil {
		slog.ErrorContext(ctx, "failed to restore original reservation",
			logging.ErrKey, err, "room_uid", existing.RoomUID, logging.PriorityCritical())
	}
}

// CancelMeeting moves a meeting to CANCELLED and frees its room slot.
// Cancelling an already cancelled meeting is a no-op.
func (s *MeetingService) CancelMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	return s.transitionMeeting(ctx, meetingUID, models.MeetingStatusCancelled, "")
}

// CompleteMeeting moves a meeting to COMPLETED, optionally recording its
// minutes. Completing an already completed meeting is a no-op.
func (s *MeetingService) CompleteMeeting(ctx context.Context, meetingUID string, minutes string) (*models.Meeting, error) {
	return s.transitionMeeting(ctx, meetingUID, models.MeetingStatusCompleted, minutes)
}

func (s *MeetingService) transitionMeeting(ctx context.Context, meetingUID string, target models.MeetingStatus, minutes string) (*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("meeting service is not available")
	}

	if meetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", meetingUID))

	meeting, revision, err := s.MeetingRepository.GetMeetingWithRevision(ctx, meetingUID)
	if err != nil {
		return nil, err
	}

	if meeting.Status == target {
		// Re-invoking the same terminal transition is idempotent.
		slog.DebugContext(ctx, "meeting already in target status", "status", target)
		return meeting, nil
	}

	if !models.CanTransition(meeting.Status, target) {
		return nil, domain.NewConflictError(
			fmt.Sprintf("meeting cannot move from %s to %s", meeting.Status, target))
	}

	meeting.Status = target
	if minutes != "" {
		meeting.MeetingMinutes = minutes
	}
	meeting.UpdatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.MeetingRepository.UpdateMeeting(ctx, meeting, revision); err != nil {
		return nil, err
	}

	// A cancelled meeting no longer holds its slot; a completed one keeps
	// its place in the historical schedule.
	if target == models.MeetingStatusCancelled && meeting.RoomUID != "" {
		if err := s.releaseSlot(ctx, meeting.RoomUID, meeting.UID); err != nil {
			slog.ErrorContext(ctx, "failed to release reservation for cancelled meeting",
				logging.ErrKey, err, "room_uid", meeting.RoomUID, logging.PriorityCritical())
		}
	}

	userIDs := s.attendeeUserIDs(ctx, meeting.UID)
	functions := []func() error{
		func() error {
			return s.MessageBuilder.SendIndexMeeting(ctx, models.ActionUpdated, *meeting)
		},
		func() error {
			event := s.eventMessage(meeting, userIDs)
			if target == models.MeetingStatusCancelled {
				return s.MessageBuilder.SendMeetingCancelled(ctx, event)
			}
			return s.MessageBuilder.SendMeetingCompleted(ctx, event)
		},
	}
	for _, err := range s.messagePool.RunAll(ctx, functions...) {
		slog.ErrorContext(ctx, "error sending message", logging.ErrKey, err)
	}

	slog.DebugContext(ctx, "transitioned meeting", "status", target)

	return meeting, nil
}

// UpdateMeetingMinutes records or replaces the minutes of a meeting. Minutes
// may be written in any lifecycle state.
func (s *MeetingService) UpdateMeetingMinutes(ctx context.Context, meetingUID string, minutes string) (*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("meeting service is not available")
	}

	if meetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}
	if minutes == "" {
		return nil, domain.NewValidationError("meeting minutes are required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", meetingUID))

	meeting, revision, err := s.MeetingRepository.GetMeetingWithRevision(ctx, meetingUID)
	if err != nil {
		return nil, err
	}

	meeting.MeetingMinutes = minutes
	meeting.UpdatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.MeetingRepository.UpdateMeeting(ctx, meeting, revision); err != nil {
		return nil, err
	}

	if err := s.MessageBuilder.SendIndexMeeting(ctx, models.ActionUpdated, *meeting); err != nil {
		slog.ErrorContext(ctx, "error sending message", logging.ErrKey, err)
	}

	return meeting, nil
}

// dedupeInvites drops invites with empty or repeated user IDs, preserving order.
func dedupeInvites(invites []models.AttendeeInvite) []models.AttendeeInvite {
	seen := make(map[string]bool, len(invites))
	var result []models.AttendeeInvite
	for _, invite := range invites {
		if invite.UserID == "" || seen[invite.UserID] {
			continue
		}
		seen[invite.UserID] = true
		result = append(result, invite)
	}
	return result
}
