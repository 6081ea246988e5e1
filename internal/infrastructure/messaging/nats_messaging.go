// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package messaging contains the NATS publishing implementation for the room
// booking service.
package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/go-viper/mapstructure/v2"

	"github.com/oa-platform/room-booking-service/internal/domain/models"
	"github.com/oa-platform/room-booking-service/internal/logging"
	"github.com/oa-platform/room-booking-service/pkg/constants"
)

// INatsConn is the NATS connection interface the message builder needs.
type INatsConn interface {
	IsConnected() bool
	Publish(subj string, data []byte) error
}

// MessageBuilder is the builder for the message and sends it to the NATS server.
type MessageBuilder struct {
	NatsConn INatsConn
}

// NewMessageBuilder creates a new MessageBuilder.
func NewMessageBuilder(natsConn INatsConn) *MessageBuilder {
	return &MessageBuilder{
		NatsConn: natsConn,
	}
}

// sendMessage sends the message to the NATS server.
func (m *MessageBuilder) sendMessage(ctx context.Context, subject string, data []byte) error {
	err := m.NatsConn.Publish(subject, data)
	if err != nil {
		slog.ErrorContext(ctx, "error sending message to NATS", logging.ErrKey, err, "subject", subject)
		return err
	}
	slog.DebugContext(ctx, "sent message to NATS", "subject", subject)
	return nil
}

// sendIndexerMessage sends the message to the NATS server for the indexer.
func (m *MessageBuilder) sendIndexerMessage(ctx context.Context, subject string, action models.MessageAction, data []byte, tags []string) error {
	headers := make(map[string]string)
	if authorization, ok := ctx.Value(constants.AuthorizationContextID).(string); ok {
		headers[constants.AuthorizationHeader] = authorization
	} else {
		// Fallback for system-generated events that don't have user auth context.
		// The indexer requires an authorization header to process the message.
		headers[constants.AuthorizationHeader] = "Bearer room-booking-service"
	}
	if principal, ok := ctx.Value(constants.PrincipalContextID).(string); ok {
		headers[constants.XOnBehalfOfHeader] = principal
	}
	var payload any
	switch action {
	case models.ActionCreated, models.ActionUpdated:
		// The data should be a JSON object.
		var jsonData any
		if err := json.Unmarshal(data, &jsonData); err != nil {
			slog.ErrorContext(ctx, "error unmarshalling data into JSON", logging.ErrKey, err, "subject", subject)
			return err
		}

		// Decode the JSON data into a map[string]any since that is what the indexer expects.
		config := mapstructure.DecoderConfig{
			TagName: "json",
			Result:  &payload,
		}
		decoder, err := mapstructure.NewDecoder(&config)
		if err != nil {
			slog.ErrorContext(ctx, "error creating decoder", logging.ErrKey, err, "subject", subject)
			return err
		}
		err = decoder.Decode(jsonData)
		if err != nil {
			slog.ErrorContext(ctx, "error decoding data", logging.ErrKey, err, "subject", subject)
			return err
		}
	case models.ActionDeleted:
		// The data should just be a string of the UID being deleted.
		payload = string(data)
	}

	message := models.BookingIndexerMessage{
		Action:  action,
		Headers: headers,
		Data:    payload,
		Tags:    tags,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message into JSON", logging.ErrKey, err, "subject", subject)
		return err
	}

	slog.DebugContext(ctx, "constructed indexer message",
		"subject", subject,
		"action", action,
		"tags_count", len(tags),
	)

	return m.sendMessage(ctx, subject, messageBytes)
}

// SendIndexRoom sends the message to the NATS server for the room indexing.
func (m *MessageBuilder) SendIndexRoom(ctx context.Context, action models.MessageAction, data models.MeetingRoom) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling data into JSON", logging.ErrKey, err)
		return err
	}

	return m.sendIndexerMessage(ctx, models.IndexRoomSubject, action, dataBytes, data.Tags())
}

// SendDeleteIndexRoom sends the message to the NATS server for the room index deletion.
func (m *MessageBuilder) SendDeleteIndexRoom(ctx context.Context, data string) error {
	return m.sendIndexerMessage(ctx, models.IndexRoomSubject, models.ActionDeleted, []byte(data), nil)
}

// SendIndexMeeting sends the message to the NATS server for the meeting indexing.
func (m *MessageBuilder) SendIndexMeeting(ctx context.Context, action models.MessageAction, data models.Meeting) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling data into JSON", logging.ErrKey, err)
		return err
	}

	return m.sendIndexerMessage(ctx, models.IndexMeetingSubject, action, dataBytes, data.Tags())
}

// SendDeleteIndexMeeting sends the message to the NATS server for the meeting index deletion.
func (m *MessageBuilder) SendDeleteIndexMeeting(ctx context.Context, data string) error {
	return m.sendIndexerMessage(ctx, models.IndexMeetingSubject, models.ActionDeleted, []byte(data), nil)
}

// SendIndexAttendee sends the message to the NATS server for the attendee indexing.
func (m *MessageBuilder) SendIndexAttendee(ctx context.Context, action models.MessageAction, data models.Attendee) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling data into JSON", logging.ErrKey, err)
		return err
	}

	return m.sendIndexerMessage(ctx, models.IndexAttendeeSubject, action, dataBytes, data.Tags())
}

// SendDeleteIndexAttendee sends the message to the NATS server for the attendee index deletion.
func (m *MessageBuilder) SendDeleteIndexAttendee(ctx context.Context, data string) error {
	return m.sendIndexerMessage(ctx, models.IndexAttendeeSubject, models.ActionDeleted, []byte(data), nil)
}

// SendMeetingScheduled sends a message about a meeting being scheduled.
func (m *MessageBuilder) SendMeetingScheduled(ctx context.Context, data models.MeetingEventMessage) error {
	return m.sendEventMessage(ctx, models.MeetingScheduledSubject, data)
}

// SendMeetingUpdated sends a message about a meeting being rescheduled to trigger attendee notifications.
func (m *MessageBuilder) SendMeetingUpdated(ctx context.Context, data models.MeetingEventMessage) error {
	return m.sendEventMessage(ctx, models.MeetingUpdatedSubject, data)
}

// SendMeetingCancelled sends a message about a meeting being cancelled to trigger attendee notifications.
func (m *MessageBuilder) SendMeetingCancelled(ctx context.Context, data models.MeetingEventMessage) error {
	return m.sendEventMessage(ctx, models.MeetingCancelledSubject, data)
}

// SendMeetingCompleted sends a message about a meeting being completed.
func (m *MessageBuilder) SendMeetingCompleted(ctx context.Context, data models.MeetingEventMessage) error {
	return m.sendEventMessage(ctx, models.MeetingCompletedSubject, data)
}

func (m *MessageBuilder) sendEventMessage(ctx context.Context, subject string, data models.MeetingEventMessage) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling data into JSON", logging.ErrKey, err)
		return err
	}

	return m.sendMessage(ctx, subject, dataBytes)
}

// SendAttendeeInvited sends a message about a user being invited to a meeting.
func (m *MessageBuilder) SendAttendeeInvited(ctx context.Context, data models.AttendeeEventMessage) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling data into JSON", logging.ErrKey, err)
		return err
	}

	return m.sendMessage(ctx, models.AttendeeInvitedSubject, dataBytes)
}

// SendAttendeeResponded sends a message about an attendee responding to an invitation.
func (m *MessageBuilder) SendAttendeeResponded(ctx context.Context, data models.AttendeeEventMessage) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling data into JSON", logging.ErrKey, err)
		return err
	}

	return m.sendMessage(ctx, models.AttendeeRespondedSubject, dataBytes)
}
