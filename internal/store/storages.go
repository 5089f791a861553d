// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-event-hotels/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	EnrollmentRepository EnrollmentRepository
	TicketRepository     TicketRepository
	HotelRepository      HotelRepository
	SessionRepository    SessionRepository
}

// NewStorages builds all repositories over a single connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		EnrollmentRepository: NewEnrollmentRepository(db, log),
		TicketRepository:     NewTicketRepository(db, log),
		HotelRepository:      NewHotelRepository(db, log),
		SessionRepository:    NewSessionRepository(db, log),
	}
}
