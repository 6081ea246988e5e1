// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package design

import . "goa.design/goa/v3/dsl"

// RoomUIDAttribute is the unique identifier attribute of a meeting room.
func RoomUIDAttribute() {
	Attribute("uid", String, "The unique identifier of the meeting room", func() {
		Example("7cad5a8d-19d0-41a4-81a6-043453daf9ee")
		Format(FormatUUID)
	})
}

// RoomNameAttribute is the display name attribute of a meeting room.
func RoomNameAttribute() {
	Attribute("name", String, "The display name of the meeting room", func() {
		Example("Boardroom")
		MaxLength(200)
	})
}

// RoomCapacityAttribute is the seat count attribute of a meeting room.
func RoomCapacityAttribute() {
	Attribute("capacity", Int, "The number of people the room seats", func() {
		Minimum(1)
		Example(12)
	})
}

// RoomLocationAttribute is the location attribute of a meeting room.
func RoomLocationAttribute() {
	Attribute("location", String, "Where the room is, e.g. building and floor", func() {
		Example("HQ/3")
	})
}

// RoomFacilitiesAttribute is the facility tag list attribute of a meeting room.
func RoomFacilitiesAttribute() {
	Attribute("facilities", ArrayOf(String), "Facility tags the room provides", func() {
		Example([]string{"projector", "whiteboard"})
	})
}

// RoomIsActiveAttribute is the active flag attribute of a meeting room.
func RoomIsActiveAttribute() {
	Attribute("is_active", Boolean, "Whether the room can take new bookings", func() {
		Default(true)
		Example(true)
	})
}

// MeetingRoom is the DSL type for a meeting room.
var MeetingRoom = Type("MeetingRoom", func() {
	Description("A bookable meeting room")
	RoomUIDAttribute()
	RoomNameAttribute()
	RoomCapacityAttribute()
	RoomLocationAttribute()
	RoomFacilitiesAttribute()
	Attribute("image_url", String, "URL of the room's photo")
	Attribute("description", String, "Free-form description of the room")
	RoomIsActiveAttribute()
	CreatedAtAttribute()
	UpdatedAtAttribute()
	Required("uid", "name", "capacity")
})

// RoomPage is the DSL type for a paginated room listing.
var RoomPage = Type("RoomPage", func() {
	Description("One page of matching meeting rooms")
	Attribute("items", ArrayOf(MeetingRoom), "The rooms on this page")
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
