// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service contains the business logic for the room booking service.
package service

type Service interface {
	ServiceReady() bool
}

// ServiceConfig is the configuration for the Services.
type ServiceConfig struct {
	// UpcomingWindowMinutes is the default lookahead window for upcoming meeting queries.
	UpcomingWindowMinutes int
}
