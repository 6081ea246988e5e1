// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package main is the room booking service API. It serves room, meeting, and
// attendee operations over NATS and exposes HTTP health probes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/oa-platform/room-booking-service/internal/handlers"
	"github.com/oa-platform/room-booking-service/internal/infrastructure/messaging"
	"github.com/oa-platform/room-booking-service/internal/logging"
	"github.com/oa-platform/room-booking-service/internal/service"
	"github.com/oa-platform/room-booking-service/pkg/utils"
)

func main() {
	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructureLogConfig()

	// Setup OpenTelemetry SDK from the OTEL_* environment variables.
	otelShutdown, err := utils.SetupOTelSDK(context.Background())
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up OpenTelemetry SDK")
		return
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	// Setup NATS connection
	natsConn, err := setupNATS(ctx, env, &gracefulCloseWG, done)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up NATS")
		return
	}

	// Get the key-value stores for the service.
	repos, err := getKeyValueStores(ctx, natsConn)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error getting key-value stores")
		return
	}

	// The room cache is optional and degrades to a miss when absent.
	roomCache := setupRoomCache(ctx, env)

	// Initialize services
	serviceConfig := service.ServiceConfig{
		UpcomingWindowMinutes: env.UpcomingWindowMinutes,
	}
	messageBuilder := messaging.NewMessageBuilder(natsConn)
	roomService := service.NewRoomService(
		repos.Room,
		repos.Meeting,
		messageBuilder,
		roomCacheOrNil(roomCache),
		serviceConfig,
	)
	meetingService := service.NewMeetingService(
		repos.Meeting,
		repos.Room,
		repos.Attendee,
		repos.Schedule,
		messageBuilder,
		serviceConfig,
	)
	attendeeService := service.NewAttendeeService(
		repos.Meeting,
		repos.Attendee,
		messageBuilder,
		serviceConfig,
	)
	availabilityService := service.NewAvailabilityService(
		repos.Meeting,
		serviceConfig,
	)
	queryService := service.NewQueryService(
		repos.Meeting,
		repos.Attendee,
		serviceConfig,
	)

	// Initialize handlers
	meetingHandler := handlers.NewMeetingHandler(
		meetingService,
		availabilityService,
		queryService,
	)

	svc := NewRoomBookingAPI(
		roomService,
		meetingService,
		attendeeService,
		availabilityService,
		queryService,
		meetingHandler,
	)

	httpServer := setupHTTPServer(flags, svc, &gracefulCloseWG)

	// Create NATS subscriptions for the service.
	err = createNatsSubcriptions(ctx, meetingHandler, natsConn)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error creating NATS subscriptions")
		return
	}

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, natsConn, &gracefulCloseWG, cancel)

	if err := otelShutdown(context.Background()); err != nil {
		slog.With(logging.ErrKey, err).Warn("error shutting down OpenTelemetry SDK")
	}
}
