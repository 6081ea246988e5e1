// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockMessage is a canned inbound NATS message for handler tests. Subject
// and payload are fixed at construction; reply behavior is configured
// through testify expectations on HasReply and Respond.
type MockMessage struct {
	mock.Mock
	subject string
	payload []byte
}

// NewMockMessage creates a mock message carrying the given payload on the
// given subject.
func NewMockMessage(payload []byte, subject string) *MockMessage {
	return &MockMessage{
		subject: subject,
		payload: payload,
	}
}

func (m *MockMessage) Subject() string {
	return m.subject
}

func (m *MockMessage) Data() []byte {
	return m.payload
}

func (m *MockMessage) HasReply() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockMessage) Respond(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}
