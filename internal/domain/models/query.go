// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import "time"

// RoomFilter narrows a room listing. Zero values mean "no constraint".
type RoomFilter struct {
	MinCapacity *int     `json:"min_capacity,omitempty"`
	Location    string   `json:"location,omitempty"`
	Facilities  []string `json:"facilities,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
	Page        int      `json:"page,omitempty"`
	PageSize    int      `json:"page_size,omitempty"`
}

// MeetingFilter narrows a meeting listing. Zero values mean "no constraint".
// The date range matches meetings that intersect [StartDate, EndDate]:
// a meeting qualifies when it ends at or after StartDate and starts at or
// before EndDate.
type MeetingFilter struct {
	RoomUID   string         `json:"room_uid,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
	Status    *MeetingStatus `json:"status,omitempty"`
	StartDate *time.Time     `json:"start_date,omitempty"`
	EndDate   *time.Time     `json:"end_date,omitempty"`
	Page      int            `json:"page,omitempty"`
	PageSize  int            `json:"page_size,omitempty"`
}

// PaginatedResult is a page of results plus the total count of matches
// before pagination was applied.
type PaginatedResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPaginatedResult slices a fully filtered, fully sorted item list down to
// the requested page. Page numbering starts at 1; a page past the end yields
// an empty item list with the true total preserved.
func NewPaginatedResult[T any](items []T, page, pageSize int) PaginatedResult[T] {
	total := len(items)
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return PaginatedResult[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// AvailabilityResult is the answer to a room availability check, carrying the
// meetings that block the slot when the room is busy.
type AvailabilityResult struct {
	Available           bool       `json:"available"`
	ConflictingBookings []*Meeting `json:"conflicting_bookings,omitempty"`
}

// RoomBookingsDay is the per-day view of one room's bookings, covering the
// local calendar day of the requested date.
type RoomBookingsDay struct {
	RoomUID  string     `json:"room_uid"`
	Date     time.Time  `json:"date"`
	Bookings []*Meeting `json:"bookings"`
}

// DayWindow returns the inclusive bounds of the local calendar day containing
// t, from midnight to one millisecond before the next midnight.
func DayWindow(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, 999000000, t.Location())
	return start, end
}
