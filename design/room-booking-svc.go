// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package design

import (
	. "goa.design/goa/v3/dsl" //nolint:staticcheck // ST1001: the recommended way of using the goa DSL package is with the . import
)

// JWTAuth is the DSL JWT security type for authentication.
var JWTAuth = JWTSecurity("jwt", func() {
	Description("Heimdall authorization")
})

var _ = Service("Room Booking Service", func() {
	Description("The room booking service manages meeting rooms, bookings, and attendee invitations.")

	Method("readyz", func() {
		Description("Check if the service is able to take inbound requests.")
		Meta("swagger:generate", "false")
		Result(Bytes, func() {
			Example("OK")
		})
		Error("ServiceUnavailable", ServiceUnavailableError, "Service is unavailable")
		HTTP(func() {
			GET("/readyz")
			Response(StatusOK, func() {
				ContentType("text/plain")
			})
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("livez", func() {
		Description("Check if the service is alive.")
		Meta("swagger:generate", "false")
		Result(Bytes, func() {
			Example("OK")
		})
		HTTP(func() {
			GET("/livez")
			Response(StatusOK, func() {
				ContentType("text/plain")
			})
		})
	})

	// Room catalog endpoints
	Method("create-room", func() {
		Description("Add a new meeting room to the catalog")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			RoomNameAttribute()
			RoomCapacityAttribute()
			RoomLocationAttribute()
			RoomFacilitiesAttribute()
			Attribute("image_url", String, "URL of the room's photo")
			Attribute("description", String, "Free-form description of the room")
			RoomIsActiveAttribute()
			Required("name", "capacity")
		})

		Result(MeetingRoom)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			POST("/rooms")
			Param("version:v")
			Header("bearer_token:Authorization")
			Response(StatusCreated)
			Response("BadRequest", StatusBadRequest)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("get-room", func() {
		Description("Get a single meeting room")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			RoomUIDAttribute()
			Required("uid")
		})

		Result(MeetingRoom)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Room not found")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/rooms/{uid}")
			Param("version:v")
			Param("uid")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("update-room", func() {
		Description("Apply a partial update to a meeting room")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			RoomUIDAttribute()
			RoomNameAttribute()
			RoomCapacityAttribute()
			RoomLocationAttribute()
			RoomFacilitiesAttribute()
			Attribute("image_url", String, "URL of the room's photo")
			Attribute("description", String, "Free-form description of the room")
			RoomIsActiveAttribute()
			Required("uid")
		})

		Result(MeetingRoom)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Room not found")
		Error("Conflict", ConflictError, "Room was modified concurrently")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			PUT("/rooms/{uid}")
			Param("version:v")
			Param("uid")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("delete-room", func() {
		Description("Remove a meeting room. Rooms with upcoming bookings cannot be removed.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			RoomUIDAttribute()
			Required("uid")
		})

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Room not found")
		Error("Conflict", ConflictError, "Room has upcoming bookings")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			DELETE("/rooms/{uid}")
			Param("version:v")
			Param("uid")
			Header("bearer_token:Authorization")
			Response(StatusNoContent)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("find-rooms", func() {
		Description("List rooms matching the filter, newest first")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("min_capacity", Int, "Only rooms seating at least this many", func() {
				Minimum(1)
				Example(8)
			})
			RoomLocationAttribute()
			RoomFacilitiesAttribute()
			RoomIsActiveAttribute()
			PageAttribute()
			PageSizeAttribute()
		})

		Result(RoomPage)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/rooms")
			Param("version:v")
			Param("min_capacity")
			Param("location")
			Param("facilities")
			Param("is_active")
			Param("page")
			Param("page_size")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("get-active-rooms", func() {
		Description("List all active rooms ordered by capacity, smallest first")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
		})

		Result(ArrayOf(MeetingRoom))

		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/rooms/active")
			Param("version:v")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	// Availability endpoints
	Method("check-availability", func() {
		Description("Check whether a room is free for a time slot")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			RoomUIDAttribute()
			MeetingStartTimeAttribute()
			MeetingEndTimeAttribute()
			Required("uid", "start_time", "end_time")
		})

		Result(AvailabilityResult)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/rooms/{uid}/availability")
			Param("version:v")
			Param("uid")
			Param("start_time")
			Param("end_time")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("get-room-bookings", func() {
		Description("List a room's bookings for one calendar day, earliest first")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			RoomUIDAttribute()
			Attribute("date", String, "The day to list, any time within it", func() {
				Example("2026-09-02T00:00:00Z")
				Format(FormatDateTime)
			})
			Required("uid", "date")
		})

		Result(RoomBookingsDay)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/rooms/{uid}/bookings")
			Param("version:v")
			Param("uid")
			Param("date")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	// Meeting endpoints
	Method("create-meeting", func() {
		Description("Book a meeting into a room. The slot is reserved atomically against concurrent bookings.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			MeetingTitleAttribute()
			Attribute("description", String, "Free-form description of the meeting")
			Attribute("room_uid", String, "The room to book", func() {
				Format(FormatUUID)
			})
			Attribute("organizer_id", String, "The user who organizes the meeting", func() {
				Example("alice")
			})
			MeetingStartTimeAttribute()
			MeetingEndTimeAttribute()
			Attribute("attendee_ids", ArrayOf(String), "Users to invite on creation", func() {
				Example([]string{"bob", "carol"})
			})
			Required("title", "room_uid", "organizer_id", "start_time", "end_time")
		})

		Result(Meeting)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Conflict", ConflictError, "Room is already booked for this slot")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			POST("/meetings")
			Param("version:v")
			Header("bearer_token:Authorization")
			Response(StatusCreated)
			Response("BadRequest", StatusBadRequest)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("get-meeting", func() {
		Description("Get a single meeting")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			MeetingUIDAttribute()
			Required("uid")
		})

		Result(Meeting)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Meeting not found")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/meetings/{uid}")
			Param("version:v")
			Param("uid")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("update-meeting", func() {
		Description("Apply a partial update to a scheduled meeting. Room or time changes re-check availability.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			MeetingUIDAttribute()
			MeetingTitleAttribute()
			Attribute("description", String, "Free-form description of the meeting")
			Attribute("room_uid", String, "The room to move the meeting to", func() {
				Format(FormatUUID)
			})
			MeetingStartTimeAttribute()
			MeetingEndTimeAttribute()
			Required("uid")
		})

		Result(Meeting)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Meeting not found")
		Error("Conflict", ConflictError, "Slot conflict or meeting is in a terminal state")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			PUT("/meetings/{uid}")
			Param("version:v")
			Param("uid")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("cancel-meeting", func() {
		Description("Cancel a scheduled meeting and release its room slot. Cancelling twice is a no-op.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			MeetingUIDAttribute()
			Required("uid")
		})

		Result(Meeting)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Meeting not found")
		Error("Conflict", ConflictError, "Meeting is completed and cannot be cancelled")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			POST("/meetings/{uid}/cancel")
			Param("version:v")
			Param("uid")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("complete-meeting", func() {
		Description("Mark a scheduled meeting as completed, optionally recording minutes")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			MeetingUIDAttribute()
			Attribute("meeting_minutes", String, "The minutes of the meeting")
			Required("uid")
		})

		Result(Meeting)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Meeting not found")
		Error("Conflict", ConflictError, "Meeting is cancelled and cannot be completed")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			POST("/meetings/{uid}/complete")
			Param("version:v")
			Param("uid")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("update-meeting-minutes", func() {
		Description("Record or replace the minutes of a completed meeting")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			MeetingUIDAttribute()
			Attribute("meeting_minutes", String, "The minutes of the meeting")
			Required("uid", "meeting_minutes")
		})

		Result(Meeting)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Meeting not found")
		Error("Conflict", ConflictError, "Meeting is not completed")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			PUT("/meetings/{uid}/minutes")
			Param("version:v")
			Param("uid")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("find-meetings", func() {
		Description("List meetings matching the filter, newest start first")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("room_uid", String, "Only meetings in this room", func() {
				Format(FormatUUID)
			})
			Attribute("user_id", String, "Only meetings the user organizes or attends", func() {
				Example("alice")
			})
			MeetingStatusAttribute()
			Attribute("start_date", String, "Only meetings that intersect the range from this date", func() {
				Format(FormatDateTime)
			})
			Attribute("end_date", String, "Only meetings that intersect the range up to this date", func() {
				Format(FormatDateTime)
			})
			PageAttribute()
			PageSizeAttribute()
		})

		Result(MeetingPage)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/meetings")
			Param("version:v")
			Param("room_uid")
			Param("user_id")
			Param("status")
			Param("start_date")
			Param("end_date")
			Param("page")
			Param("page_size")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("upcoming-meetings", func() {
		Description("List scheduled meetings starting within the lookahead window, soonest first")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("window_minutes", Int, "Lookahead window in minutes", func() {
				Minimum(1)
				Default(15)
				Example(15)
			})
		})

		Result(ArrayOf(Meeting))

		Error("BadRequest", BadRequestError, "Bad request")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/meetings/upcoming")
			Param("version:v")
			Param("window_minutes")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	// Attendee endpoints
	Method("invite-attendee", func() {
		Description("Invite a user to a scheduled meeting")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("meeting_uid", String, "The meeting to invite the user to", func() {
				Format(FormatUUID)
			})
			Attribute("user_id", String, "The user to invite", func() {
				Example("bob")
			})
			Required("meeting_uid", "user_id")
		})

		Result(Attendee)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Meeting not found")
		Error("Conflict", ConflictError, "User is already an attendee or the meeting is terminal")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			POST("/meetings/{meeting_uid}/attendees")
			Param("version:v")
			Param("meeting_uid")
			Header("bearer_token:Authorization")
			Response(StatusCreated)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("respond-to-invitation", func() {
		Description("Record a user's response to a meeting invitation")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("meeting_uid", String, "The meeting being responded to", func() {
				Format(FormatUUID)
			})
			Attribute("user_id", String, "The responding user", func() {
				Example("bob")
			})
			AttendeeStatusAttribute()
			Required("meeting_uid", "user_id", "status")
		})

		Result(Attendee)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Meeting or attendee not found")
		Error("Conflict", ConflictError, "Meeting is in a terminal state")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			PUT("/meetings/{meeting_uid}/attendees/{user_id}")
			Param("version:v")
			Param("meeting_uid")
			Param("user_id")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("remove-attendee", func() {
		Description("Remove a user from a meeting")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("meeting_uid", String, "The meeting to remove the user from", func() {
				Format(FormatUUID)
			})
			Attribute("user_id", String, "The user to remove", func() {
				Example("bob")
			})
			Required("meeting_uid", "user_id")
		})

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Meeting or attendee not found")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			DELETE("/meetings/{meeting_uid}/attendees/{user_id}")
			Param("version:v")
			Param("meeting_uid")
			Param("user_id")
			Header("bearer_token:Authorization")
			Response(StatusNoContent)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("list-attendees", func() {
		Description("List the attendees of a meeting with their response state")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("meeting_uid", String, "The meeting to list attendees for", func() {
				Format(FormatUUID)
			})
			Required("meeting_uid")
		})

		Result(ArrayOf(Attendee))

		Error("BadRequest", BadRequestError, "Bad request")
		Error("NotFound", NotFoundError, "Meeting not found")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/meetings/{meeting_uid}/attendees")
			Param("version:v")
			Param("meeting_uid")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("NotFound", StatusNotFound)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})
})
