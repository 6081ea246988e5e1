// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package constants contains shared constants for the room booking service.
package constants

// contextID is the type for context value keys used by the service.
type contextID string

const (
	// ETagContextID is the context key for the ETag (KV revision) of a fetched resource.
	ETagContextID contextID = "etag"

	// AuthorizationContextID is the context key for the authorization header value
	// forwarded to downstream services.
	AuthorizationContextID contextID = "authorization"

	// PrincipalContextID is the context key for the authenticated principal
	// set by the access-control layer.
	PrincipalContextID contextID = "x-on-behalf-of"

	// RequestIDContextID is the context key for the request ID.
	RequestIDContextID contextID = "X-REQUEST-ID"
)

// HTTP header names forwarded on outbound messages.
const (
	// AuthorizationHeader is the authorization header name.
	AuthorizationHeader = "authorization"

	// XOnBehalfOfHeader is the header carrying the acting principal.
	XOnBehalfOfHeader = "x-on-behalf-of"

	// RequestIDHeader is the request ID header name.
	RequestIDHeader = "X-REQUEST-ID"
)

// Query and scheduling defaults.
const (
	// DefaultPageSize is the page size used when a list request does not set one.
	DefaultPageSize = 10

	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 100

	// DefaultUpcomingWindowMinutes is the lookahead window for upcoming-meeting
	// queries when the caller does not set one.
	DefaultUpcomingWindowMinutes = 15

	// MaxScheduleRetries bounds the compare-and-swap retry loop on room
	// schedule records under write contention.
	MaxScheduleRetries = 5
)
