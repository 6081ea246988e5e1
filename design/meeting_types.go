// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package design

import . "goa.design/goa/v3/dsl"

// MeetingUIDAttribute is the unique identifier attribute of a meeting.
func MeetingUIDAttribute() {
	Attribute("uid", String, "The unique identifier of the meeting", func() {
		Example("3a1b0e7f-6a6e-4f4e-9f2a-9b1c2d3e4f50")
		Format(FormatUUID)
	})
}

// MeetingTitleAttribute is the title attribute of a meeting.
func MeetingTitleAttribute() {
	Attribute("title", String, "The title of the meeting", func() {
		Example("Quarterly planning")
		MaxLength(500)
	})
}

// MeetingStartTimeAttribute is the start time attribute of a meeting.
func MeetingStartTimeAttribute() {
	Attribute("start_time", String, "The start time of the meeting", func() {
		Example("2026-09-02T10:00:00Z")
		Format(FormatDateTime)
	})
}

// MeetingEndTimeAttribute is the end time attribute of a meeting.
func MeetingEndTimeAttribute() {
	Attribute("end_time", String, "The end time of the meeting, exclusive", func() {
		Example("2026-09-02T11:00:00Z")
		Format(FormatDateTime)
	})
}

// MeetingStatusAttribute is the lifecycle status attribute of a meeting.
func MeetingStatusAttribute() {
	Attribute("status", String, "The lifecycle status of the meeting", func() {
		Enum("SCHEDULED", "CANCELLED", "COMPLETED")
		Example("SCHEDULED")
	})
}

// Meeting is the DSL type for a booked meeting.
var Meeting = Type("Meeting", func() {
	Description("A meeting booked into a room")
	MeetingUIDAttribute()
	MeetingTitleAttribute()
	Attribute("description", String, "Free-form description of the meeting")
	RoomUIDAttribute()
	Attribute("organizer_id", String, "The user who organizes the meeting", func() {
		Example("alice")
	})
	MeetingStartTimeAttribute()
	MeetingEndTimeAttribute()
	MeetingStatusAttribute()
	Attribute("meeting_minutes", String, "The recorded minutes of the meeting")
	Attribute("attachments", ArrayOf(String), "Links to documents attached to the meeting", func() {
		Example([]string{"https://example.com/agenda.pdf"})
	})
	CreatedAtAttribute()
	UpdatedAtAttribute()
	Required("uid", "title", "organizer_id", "start_time", "end_time", "status")
})

// MeetingPage is the DSL type for a paginated meeting listing.
var MeetingPage = Type("MeetingPage", func() {
	Description("One page of matching meetings")
	Attribute("items", ArrayOf(Meeting), "The meetings on this page")
	Attribute("total", Int, "Total number of matches before pagination", func() {
		Example(42)
	})
	PageAttribute()
	PageSizeAttribute()
	Attribute("total_pages", Int, "Total number of pages", func() {
		Example(5)
	})
	Required("items", "total", "page", "page_size", "total_pages")
})

// AvailabilityResult is the DSL type for a room availability answer.
var AvailabilityResult = Type("AvailabilityResult", func() {
	Description("Whether a room is free for a time slot")
	Attribute("available", Boolean, "Whether the slot is free", func() {
		Example(false)
	})
	Attribute("conflicting_bookings", ArrayOf(Meeting), "The meetings that block the slot")
	Required("available")
})

// RoomBookingsDay is the DSL type for a room's bookings on one day.
var RoomBookingsDay = Type("RoomBookingsDay", func() {
	Description("All bookings of one room for one calendar day")
	RoomUIDAttribute()
	Attribute("date", String, "The day being listed", func() {
		Example("2026-09-02T00:00:00Z")
		Format(FormatDateTime)
	})
	Attribute("bookings", ArrayOf(Meeting), "The bookings of the day, earliest first")
	Required("uid", "date", "bookings")
})
