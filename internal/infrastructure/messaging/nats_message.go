// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package messaging

import (
	"github.com/nats-io/nats.go"

	"github.com/oa-platform/room-booking-service/internal/domain"
)

// natsMessage adapts a raw NATS message to the domain message interface so
// handlers never import the NATS client directly.
type natsMessage struct {
	msg *nats.Msg
}

// NewNatsMessage wraps a NATS message for handler consumption.
func NewNatsMessage(msg *nats.Msg) domain.Message {
	return &natsMessage{msg: msg}
}

func (m *natsMessage) Subject() string {
	return m.msg.Subject
}

func (m *natsMessage) Data() []byte {
	return m.msg.Data
}

func (m *natsMessage) HasReply() bool {
	return m.msg.Reply != ""
}

func (m *natsMessage) Respond(data []byte) error {
	return m.msg.Respond(data)
}
