// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-event-hotels/models"
)

// EnrollmentRepository reads enrollments. A user has at most one.
type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID int64) (models.Enrollment, error)
}

// TicketRepository reads tickets together with their ticket type.
type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (models.Ticket, error)
}

// HotelRepository reads hotels and their rooms.
type HotelRepository interface {
	FindAll(ctx context.Context) ([]models.Hotel, error)
	FindByIDWithRooms(ctx context.Context, hotelID int64) (models.HotelWithRooms, error)
}

// SessionRepository reads sessions created by the sign-in flow.
type SessionRepository interface {
	FindByToken(ctx context.Context, token string) (models.Session, error)
}
