// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package design

import . "goa.design/goa/v3/dsl"

// AttendeeStatusAttribute is the response status attribute of an attendee.
func AttendeeStatusAttribute() {
	Attribute("status", String, "The attendee's response to the invitation", func() {
		Enum("PENDING", "ACCEPTED", "DECLINED", "TENTATIVE")
		Example("ACCEPTED")
	})
}

// Attendee is the DSL type for a meeting attendee.
var Attendee = Type("Attendee", func() {
	Description("A user invited to a meeting, with their response state")
	Attribute("uid", String, "The unique identifier of the attendee record", func() {
		Example("b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e")
		Format(FormatUUID)
	})
	Attribute("meeting_uid", String, "The meeting the user is invited to", func() {
		Format(FormatUUID)
	})
	Attribute("user_id", String, "The invited user", func() {
		Example("bob")
	})
	Attribute("name", String, "The invited user's display name", func() {
		Example("Bob Smith")
	})
	Attribute("email", String, "The invited user's email address", func() {
		Example("bob@example.com")
		Format(FormatEmail)
	})
	AttendeeStatusAttribute()
	CreatedAtAttribute()
	UpdatedAtAttribute()
	Required("uid", "meeting_uid", "user_id", "status")
})
