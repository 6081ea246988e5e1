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
	"github.com/oa-platform/room-booking-service/pkg/utils"
)

// AttendeeService manages meeting membership and invitation responses.
// Every attendee is its own store record, so a response update is a
// compare-and-swap on that single record and never touches the meeting.
type AttendeeService struct {
	MeetingRepository  domain.MeetingRepository
	AttendeeRepository domain.AttendeeRepository
	MessageBuilder     domain.MessageBuilder
	Config             ServiceConfig
}

// NewAttendeeService creates a new AttendeeService.
func NewAttendeeService(
	meetingRepository domain.MeetingRepository,
	attendeeRepository domain.AttendeeRepository,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *AttendeeService {
	return &AttendeeService{
		MeetingRepository:  meetingRepository,
		AttendeeRepository: attendeeRepository,
		MessageBuilder:     messageBuilder,
		Config:             config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *AttendeeService) ServiceReady() bool {
	return s.MeetingRepository != nil &&
		s.AttendeeRepository != nil &&
		s.MessageBuilder != nil
}

// InviteAttendee adds a user to a scheduled meeting with a pending response.
func (s *AttendeeService) InviteAttendee(ctx context.Context, meetingUID string, invite models.AttendeeInvite) (*models.Attendee, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("attendee service is not available")
	}

	if meetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}
	if invite.UserID == "" {
		return nil, domain.NewValidationError("user ID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", meetingUID))
	ctx = logging.AppendCtx(ctx, slog.String("user_id", invite.UserID))

	meeting, err := s.MeetingRepository.GetMeeting(ctx, meetingUID)
	if err != nil {
		return nil, err
	}

	if meeting.Status.IsTerminal() {
		return nil, domain.NewConflictError(
			fmt.Sprintf("cannot invite attendees to a %s meeting", meeting.Status))
	}

	exists, err := s.AttendeeRepository.AttendeeExists(ctx, meetingUID, invite.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflictError(
			fmt.Sprintf("user '%s' is already an attendee of the meeting", invite.UserID))
	}

	now := time.Now().UTC()
	attendee := &models.Attendee{
		UID:        uuid.New().String(),
		MeetingUID: meetingUID,
		UserID:     invite.UserID,
		Name:       invite.Name,
		Email:      invite.Email,
		Status:     models.AttendeeStatusPending,
		CreatedAt:  utils.TimePtr(now),
		UpdatedAt:  utils.TimePtr(now),
	}

	if err := s.AttendeeRepository.CreateAttendee(ctx, attendee); err != nil {
		return nil, err
	}

	if err := s.MessageBuilder.SendIndexAttendee(ctx, models.ActionCreated, *attendee); err != nil {
		slog.ErrorContext(ctx, "error sending attendee index message", logging.ErrKey, err)
	}
	if err := s.MessageBuilder.SendAttendeeInvited(ctx, models.AttendeeEventMessage{
		MeetingUID: meetingUID,
		UserID:     invite.UserID,
		Status:     string(attendee.Status),
	}); err != nil {
		slog.ErrorContext(ctx, "error sending attendee invited message", logging.ErrKey, err)
	}

	slog.DebugContext(ctx, "invited attendee")

	return attendee, nil
}

// RespondToInvitation records a user's response to a meeting invitation.
func (s *AttendeeService) RespondToInvitation(ctx context.Context, meetingUID, userID string, status models.AttendeeStatus) (*models.Attendee, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("attendee service is not available")
	}

	if meetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}
	if userID == "" {
		return nil, domain.NewValidationError("user ID is required")
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError(
			fmt.Sprintf("invalid attendee status '%s'", status))
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", meetingUID))
	ctx = logging.AppendCtx(ctx, slog.String("user_id", userID))

	meeting, err := s.MeetingRepository.GetMeeting(ctx, meetingUID)
	if err != nil {
		return nil, err
	}

	if meeting.Status.IsTerminal() {
		return nil, domain.NewConflictError(
			fmt.Sprintf("cannot respond to a %s meeting", meeting.Status))
	}

	attendee, revision, err := s.AttendeeRepository.GetAttendeeWithRevision(ctx, meetingUID, userID)
	if err != nil {
		return nil, err
	}

	attendee.Status = status
	attendee.UpdatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.AttendeeRepository.UpdateAttendee(ctx, attendee, revision); err != nil {
		return nil, err
	}

	if err := s.MessageBuilder.SendIndexAttendee(ctx, models.ActionUpdated, *attendee); err != nil {
		slog.ErrorContext(ctx, "error sending attendee index message", logging.ErrKey, err)
	}
	if err := s.MessageBuilder.SendAttendeeResponded(ctx, models.AttendeeEventMessage{
		MeetingUID: meetingUID,
		UserID:     userID,
		Status:     string(status),
	}); err != nil {
		slog.ErrorContext(ctx, "error sending attendee responded message", logging.ErrKey, err)
	}

	slog.DebugContext(ctx, "recorded invitation response", "status", status)

	return attendee, nil
}

// RemoveAttendee removes a user from a meeting.
func (s *AttendeeService) RemoveAttendee(ctx context.Context, meetingUID, userID string) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.NewUnavailableError("attendee service is not available")
	}

	if meetingUID == "" {
		return domain.NewValidationError("meeting UID is required")
	}
	if userID == "" {
		return domain.NewValidationError("user ID is required")
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", meetingUID))
	ctx = logging.AppendCtx(ctx, slog.String("user_id", userID))

	attendee, revision, err := s.AttendeeRepository.GetAttendeeWithRevision(ctx, meetingUID, userID)
	if err != nil {
		return err
	}

	if err := s.AttendeeRepository.DeleteAttendee(ctx, meetingUID, userID, revision); err != nil {
		return err
	}

	if err := s.MessageBuilder.SendDeleteIndexAttendee(ctx, attendee.UID); err != nil {
		slog.ErrorContext(ctx, "error sending attendee index delete message", logging.ErrKey, err)
	}

	slog.DebugContext(ctx, "removed attendee")

	return nil
}

// ListAttendees lists all attendees of a meeting with their response state.
func (s *AttendeeService) ListAttendees(ctx context.Context, meetingUID string) ([]*models.Attendee, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("attendee service is not available")
	}

	if meetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}

	exists, err := s.MeetingRepository.MeetingExists(ctx, meetingUID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError(
			fmt.Sprintf("meeting with UID '%s' not found", meetingUID))
	}

	return s.AttendeeRepository.ListAttendeesByMeeting(ctx, meetingUID)
}
