// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/oa-platform/room-booking-service/internal/handlers"
	"github.com/oa-platform/room-booking-service/internal/service"
)

// RoomBookingAPI bundles the services behind the health endpoints and the
// NATS message handler.
type RoomBookingAPI struct {
	roomService         *service.RoomService
	meetingService      *service.MeetingService
	attendeeService     *service.AttendeeService
	availabilityService *service.AvailabilityService
	queryService        *service.QueryService
	meetingHandler      *handlers.MeetingHandler
}

// NewRoomBookingAPI creates a new RoomBookingAPI.
func NewRoomBookingAPI(
	roomService *service.RoomService,
	meetingService *service.MeetingService,
	attendeeService *service.AttendeeService,
	availabilityService *service.AvailabilityService,
	queryService *service.QueryService,
	meetingHandler *handlers.MeetingHandler,
) *RoomBookingAPI {
	return &RoomBookingAPI{
		roomService:         roomService,
		meetingService:      meetingService,
		attendeeService:     attendeeService,
		availabilityService: availabilityService,
		queryService:        queryService,
		meetingHandler:      meetingHandler,
	}
}

// Readyz checks if the service is able to take inbound requests.
func (s *RoomBookingAPI) Readyz(_ context.Context) bool {
	return s.roomService.ServiceReady() &&
		s.meetingService.ServiceReady() &&
		s.attendeeService.ServiceReady() &&
		s.availabilityService.ServiceReady() &&
		s.queryService.ServiceReady()
}

// Livez checks if the service is alive.
func (s *RoomBookingAPI) Livez(_ context.Context) bool {
	// This always returns as long as the service is still running. As this
	// endpoint is expected to be used as a Kubernetes liveness check, this
	// service must likewise self-detect non-recoverable errors and
	// self-terminate.
	return true
}
