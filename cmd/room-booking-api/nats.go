// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/oa-platform/room-booking-service/internal/domain"
	"github.com/oa-platform/room-booking-service/internal/domain/models"
	"github.com/oa-platform/room-booking-service/internal/infrastructure/messaging"
	"github.com/oa-platform/room-booking-service/internal/infrastructure/store"
	"github.com/oa-platform/room-booking-service/internal/logging"
)

const natsDrainTimeout = 25 * time.Second

// setupNATS connects to the NATS server. The connection participates in
// graceful shutdown: a close that was not requested terminates the process.
func setupNATS(ctx context.Context, env environment, gracefulCloseWG *sync.WaitGroup, done chan os.Signal) (*nats.Conn, error) {
	gracefulCloseWG.Add(1)

	natsConn, err := nats.Connect(
		env.NatsURL,
		nats.DrainTimeout(natsDrainTimeout),
		nats.ConnectHandler(func(_ *nats.Conn) {
			slog.InfoContext(ctx, "connected to NATS", "nats_url", env.NatsURL)
		}),
		nats.ErrorHandler(func(_ *nats.Conn, s *nats.Subscription, err error) {
			if s != nil {
				slog.ErrorContext(ctx, "async NATS error",
					logging.ErrKey, err,
					"subject", s.Subject,
					"queue", s.Queue,
				)
				return
			}
			slog.ErrorContext(ctx, "async NATS error outside subscription", logging.ErrKey, err)
		}),
		nats.ClosedHandler(func(c *nats.Conn) {
			slog.InfoContext(ctx, "NATS connection closed", logging.ErrKey, c.LastError())
			gracefulCloseWG.Done()
			// Wake up the main goroutine if the close was not part of a
			// requested shutdown.
			select {
			case done <- syscall.SIGTERM:
			default:
			}
		}),
	)
	if err != nil {
		gracefulCloseWG.Done()
		return nil, err
	}

	return natsConn, nil
}

// repositories bundles the key-value backed stores of the service.
type repositories struct {
	Room     *store.NatsRoomRepository
	Meeting  *store.NatsMeetingRepository
	Attendee *store.NatsAttendeeRepository
	Schedule *store.NatsScheduleRepository
}

// getKeyValueStores binds the service repositories to their JetStream
// key-value buckets, creating the buckets when they do not exist yet.
func getKeyValueStores(ctx context.Context, natsConn *nats.Conn) (*repositories, error) {
	js, err := jetstream.New(natsConn)
	if err != nil {
		return nil, err
	}

	buckets := map[string]jetstream.KeyValue{}
	for _, name := range []string{
		store.KVStoreNameMeetingRooms,
		store.KVStoreNameMeetings,
		store.KVStoreNameAttendees,
		store.KVStoreNameRoomSchedules,
	} {
		kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket:  name,
			History: 1,
		})
		if err != nil {
			slog.ErrorContext(ctx, "error binding key-value bucket", logging.ErrKey, err, "bucket", name)
			return nil, err
		}
		buckets[name] = kv
	}

	return &repositories{
		Room:     store.NewNatsRoomRepository(buckets[store.KVStoreNameMeetingRooms]),
		Meeting:  store.NewNatsMeetingRepository(buckets[store.KVStoreNameMeetings]),
		Attendee: store.NewNatsAttendeeRepository(buckets[store.KVStoreNameAttendees]),
		Schedule: store.NewNatsScheduleRepository(buckets[store.KVStoreNameRoomSchedules]),
	}, nil
}

// createNatsSubcriptions subscribes the message handler to the service's
// queue-group subjects.
func createNatsSubcriptions(ctx context.Context, handler domain.MessageHandler, natsConn *nats.Conn) error {
	subjects := []string{
		models.MeetingGetTitleSubject,
		models.UpcomingMeetingsSubject,
		models.RoomBookingsSubject,
	}

	for _, subject := range subjects {
		_, err := natsConn.QueueSubscribe(subject, models.RoomBookingAPIQueue, func(m *nats.Msg) {
			handler.HandleMessage(ctx, messaging.NewNatsMessage(m))
		})
		if err != nil {
			slog.ErrorContext(ctx, "error subscribing to NATS subject", logging.ErrKey, err, "subject", subject)
			return err
		}
		slog.DebugContext(ctx, "subscribed to NATS subject", "subject", subject, "queue", models.RoomBookingAPIQueue)
	}

	return nil
}

// gracefulShutdown drains in-flight work and waits for everything owned by
// the wait group to finish.
func gracefulShutdown(httpServer *http.Server, natsConn *nats.Conn, gracefulCloseWG *sync.WaitGroup, cancel context.CancelFunc) {
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.With(logging.ErrKey, err).Error("error shutting down http server")
	}
	gracefulCloseWG.Done()

	if natsConn != nil && !natsConn.IsClosed() {
		// Drain lets queued messages finish before the connection closes; the
		// closed handler releases its wait group slot.
		if err := natsConn.Drain(); err != nil {
			slog.With(logging.ErrKey, err).Error("error draining NATS connection")
			natsConn.Close()
		}
	}

	cancel()
	gracefulCloseWG.Wait()
}
