// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"strings"
	"time"
)

// MeetingRoom is the key-value store representation of a bookable meeting room.
// Meetings reference rooms weakly by UID; nothing embeds a room.
type MeetingRoom struct {
	UID         string     `json:"uid"`
	Name        string     `json:"name"`
	Capacity    int        `json:"capacity"`
	Location    string     `json:"location,omitempty"`
	Facilities  []string   `json:"facilities,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// HasFacility reports whether the room carries the given facility tag.
// Matching is exact per tag, case-insensitive.
func (r *MeetingRoom) HasFacility(facility string) bool {
	for _, f := range r.Facilities {
		if strings.EqualFold(f, facility) {
			return true
		}
	}
	return false
}

// HasAllFacilities reports whether the room carries every one of the given tags.
func (r *MeetingRoom) HasAllFacilities(facilities []string) bool {
	for _, f := range facilities {
		if !r.HasFacility(f) {
			return false
		}
	}
	return true
}

// Tags generates a consistent set of tags for the room for searching/indexing.
func (r *MeetingRoom) Tags() []string {
	if r == nil {
		return nil
	}

	tags := []string{}

	if r.UID != "" {
		tags = append(tags, r.UID)
		tags = append(tags, fmt.Sprintf("room_uid:%s", r.UID))
	}

	if r.Name != "" {
		tags = append(tags, fmt.Sprintf("room_name:%s", r.Name))
	}

	if r.Location != "" {
		tags = append(tags, fmt.Sprintf("location:%s", r.Location))
	}

	for _, f := range r.Facilities {
		tags = append(tags, fmt.Sprintf("facility:%s", f))
	}

	return tags
}

// UpdateRoomRequest is a partial update of a meeting room. Nil fields are
// left unchanged.
type UpdateRoomRequest struct {
	Name        *string   `json:"name,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Facilities  *[]string `json:"facilities,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Description *string   `json:"description,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

// MergeUpdateRoomRequest applies a partial update on top of the existing room
// and returns the merged record.
func MergeUpdateRoomRequest(req UpdateRoomRequest, existing *MeetingRoom) *MeetingRoom {
	merged := *existing

	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Capacity != nil {
		merged.Capacity = *req.Capacity
	}
	if req.Location != nil {
		merged.Location = *req.Location
	}
	if req.Facilities != nil {
		merged.Facilities = *req.Facilities
	}
	if req.ImageURL != nil {
		merged.ImageURL = *req.ImageURL
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.IsActive != nil {
		merged.IsActive = *req.IsActive
	}

	return &merged
}
