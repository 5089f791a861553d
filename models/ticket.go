// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	// TicketStatusPending is a ticket whose payment has been started but not confirmed.
	TicketStatusPending TicketStatus = "PENDING"
	// TicketStatusReserved is a ticket booked by the user but not yet paid for.
	TicketStatusReserved TicketStatus = "RESERVED"
	// TicketStatusPaid is a ticket whose payment has been confirmed.
	TicketStatusPaid TicketStatus = "PAID"
)

// IsPaid reports whether the status is [TicketStatusPaid].
func (s TicketStatus) IsPaid() bool {
	return s == TicketStatusPaid
}

// TicketType describes the category of a ticket and what it entitles the
// holder to.
type TicketType struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`

	// IsRemote marks tickets for online-only participation.
	IsRemote bool `json:"isRemote"`

	// IncludesHotel marks tickets that come with hotel accommodation.
	IncludesHotel bool `json:"includesHotel"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ticket is the proof of event registration owned by an enrollment.
// TicketType is always populated when the ticket is read from storage.
type Ticket struct {
	ID           int64        `json:"id"`
	TicketTypeID int64        `json:"ticketTypeId"`
	EnrollmentID int64        `json:"enrollmentId"`
	Status       TicketStatus `json:"status"`
	TicketType   TicketType   `json:"TicketType"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
