// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/oa-platform/room-booking-service/internal/logging"
	"github.com/oa-platform/room-booking-service/pkg/utils"
)

// flags are the command line flags for the room booking service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the room booking service.
type environment struct {
	Port                  string
	NatsURL               string
	RedisURL              string
	UpcomingWindowMinutes int
}

// parseFlags parses command line flags for the room booking service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the room booking service. A local
// .env file is loaded first when present so development setups need no
// exported variables.
func parseEnv() environment {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.With(logging.ErrKey, err).Warn("error loading .env file")
	}

	port := utils.CoalesceString(os.Getenv("PORT"), "8080")
	natsURL := utils.CoalesceString(os.Getenv("NATS_URL"), "nats://localhost:4222")

	redisURL := os.Getenv("REDIS_URL")

	upcomingWindowMinutes := 0
	if raw := os.Getenv("UPCOMING_WINDOW_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			slog.With("value", raw).Warn("invalid UPCOMING_WINDOW_MINUTES, using default")
		} else {
			upcomingWindowMinutes = parsed
		}
	}

	return environment{
		Port:                  port,
		NatsURL:               natsURL,
		RedisURL:              redisURL,
		UpcomingWindowMinutes: upcomingWindowMinutes,
	}
}
