// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Hotel is an accommodation offered to ticket holders.
type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Room belongs to exactly one hotel. Capacity is always positive.
type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HotelWithRooms is a hotel together with every room it owns.
// Rooms is serialized under the "Rooms" key and is never null.
type HotelWithRooms struct {
	Hotel
	Rooms []Room `json:"Rooms"`
}
