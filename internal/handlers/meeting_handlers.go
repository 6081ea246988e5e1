// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oa-platform/room-booking-service/internal/domain"
	"github.com/oa-platform/room-booking-service/internal/domain/models"
	"github.com/oa-platform/room-booking-service/internal/logging"
	"github.com/oa-platform/room-booking-service/internal/service"
)

// MeetingHandler handles meeting-related messages and events.
type MeetingHandler struct {
	meetingService      *service.MeetingService
	availabilityService *service.AvailabilityService
	queryService        *service.QueryService
}

func NewMeetingHandler(
	meetingService *service.MeetingService,
	availabilityService *service.AvailabilityService,
	queryService *service.QueryService,
) *MeetingHandler {
	return &MeetingHandler{
		meetingService:      meetingService,
		availabilityService: availabilityService,
		queryService:        queryService,
	}
}

func (s *MeetingHandler) HandlerReady() bool {
	return s.meetingService.ServiceReady() &&
		s.availabilityService.ServiceReady() &&
		s.queryService.ServiceReady()
}

// HandleMessage implements domain.MessageHandler interface
func (s *MeetingHandler) HandleMessage(ctx context.Context, msg domain.Message) {
	subject := msg.Subject()
	ctx = logging.AppendCtx(ctx, slog.String("subject", subject))
	slog.DebugContext(ctx, "handling NATS message")

	var response []byte
	var err error

	handlers := map[string]func(ctx context.Context, msg domain.Message) ([]byte, error){
		models.MeetingGetTitleSubject:  s.HandleMeetingGetTitle,
		models.UpcomingMeetingsSubject: s.HandleUpcomingMeetings,
		models.RoomBookingsSubject:     s.HandleRoomBookings,
	}

	handler, ok := handlers[subject]
	if !ok {
		slog.WarnContext(ctx, "unknown subject")
		if msg.HasReply() {
			err = msg.Respond(nil)
			if err != nil {
				slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
			}
		}
		return
	}

	response, err = handler(ctx, msg)
	if err != nil {
		slog.ErrorContext(ctx, "error handling message",
			logging.ErrKey, err,
		)
		if msg.HasReply() {
			err = msg.Respond(nil)
			if err != nil {
				slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
			}
		}
		return
	}

	if msg.HasReply() {
		err = msg.Respond(response)
		if err != nil {
			slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
			return
		}
		slog.DebugContext(ctx, "responded to NATS message", "response", response)
	} else {
		slog.DebugContext(ctx, "handled NATS message (no reply expected)")
	}
}

// HandleMeetingGetTitle is the message handler for the meeting-get-title
// subject. The message payload is a meeting UID; the reply is the bare title.
func (s *MeetingHandler) HandleMeetingGetTitle(ctx context.Context, msg domain.Message) ([]byte, error) {
	if !s.meetingService.ServiceReady() {
		slog.ErrorContext(ctx, "service not ready")
		return nil, fmt.Errorf("service not ready")
	}

	meetingUID := string(msg.Data())

	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", meetingUID))

	// Validate that the meeting UID is a valid UUID.
	_, err := uuid.Parse(meetingUID)
	if err != nil {
		slog.ErrorContext(ctx, "error parsing meeting UID", logging.ErrKey, err)
		return nil, err
	}

	meeting, err := s.meetingService.GetMeeting(ctx, meetingUID)
	if err != nil {
		slog.ErrorContext(ctx, "error getting meeting", logging.ErrKey, err)
		return nil, err
	}

	return []byte(meeting.Title), nil
}

// HandleUpcomingMeetings is the message handler for the upcoming-meetings
// subject. An optional payload carries the lookahead window in minutes; an
// empty payload uses the configured default.
func (s *MeetingHandler) HandleUpcomingMeetings(ctx context.Context, msg domain.Message) ([]byte, error) {
	if !s.queryService.ServiceReady() {
		slog.ErrorContext(ctx, "service not ready")
		return nil, fmt.Errorf("service not ready")
	}

	windowMinutes := 0
	if payload := strings.TrimSpace(string(msg.Data())); payload != "" {
		parsed, err := strconv.Atoi(payload)
		if err != nil {
			slog.ErrorContext(ctx, "error parsing window minutes", logging.ErrKey, err)
			return nil, err
		}
		windowMinutes = parsed
	}

	meetings, err := s.queryService.GetUpcomingMeetings(ctx, windowMinutes)
	if err != nil {
		slog.ErrorContext(ctx, "error getting upcoming meetings", logging.ErrKey, err)
		return nil, err
	}

	return json.Marshal(meetings)
}

// RoomBookingsRequest is the payload of a room-bookings query message.
type RoomBookingsRequest struct {
	RoomUID string `json:"room_uid"`
	Date    string `json:"date"`
}

// HandleRoomBookings is the message handler for the room-bookings subject.
// The payload names a room and an RFC 3339 date; the reply is the day view
// of that room's bookings.
func (s *MeetingHandler) HandleRoomBookings(ctx context.Context, msg domain.Message) ([]byte, error) {
	if !s.availabilityService.ServiceReady() {
		slog.ErrorContext(ctx, "service not ready")
		return nil, fmt.Errorf("service not ready")
	}

	var req RoomBookingsRequest
	if err := json.Unmarshal(msg.Data(), &req); err != nil {
		slog.ErrorContext(ctx, "error unmarshaling room bookings request", logging.ErrKey, err)
		return nil, err
	}

	if req.RoomUID == "" {
		slog.WarnContext(ctx, "room UID is empty in room bookings request")
		return nil, fmt.Errorf("room UID is required")
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			slog.ErrorContext(ctx, "error parsing room bookings date", logging.ErrKey, err)
			return nil, err
		}
		date = parsed
	}

	ctx = logging.AppendCtx(ctx, slog.String("room_uid", req.RoomUID))

	bookings, err := s.availabilityService.GetRoomBookings(ctx, req.RoomUID, date)
	if err != nil {
		slog.ErrorContext(ctx, "error getting room bookings", logging.ErrKey, err)
		return nil, err
	}

	return json.Marshal(bookings)
}
