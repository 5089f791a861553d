// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

var (
	enrollmentColumns = []string{"id", "user_id", "name", "cpf", "birthday", "phone", "created_at", "updated_at"}

	ticketColumns = []string{
		"t.id", "t.ticket_type_id", "t.enrollment_id", "t.status", "t.created_at", "t.updated_at",
		"tt.id", "tt.name", "tt.price", "tt.is_remote", "tt.includes_hotel", "tt.created_at", "tt.updated_at",
	}

	hotelColumns   = []string{"id", "name", "image", "created_at", "updated_at"}
	roomColumns    = []string{"id", "name", "capacity", "hotel_id", "created_at", "updated_at"}
	sessionColumns = []string{"id", "user_id", "token", "created_at", "updated_at"}
)

func (db *DB) enrollmentByUserIDQuery(userID int64) sq.SelectBuilder {
	return db.builder.
		Select(enrollmentColumns...).
		From("enrollments").
		Where(sq.Eq{"user_id": userID}).
		Limit(1)
}

func (db *DB) ticketByEnrollmentIDQuery(enrollmentID int64) sq.SelectBuilder {
	return db.builder.
		Select(ticketColumns...).
		From("tickets t").
		Join("ticket_types tt ON tt.id = t.ticket_type_id").
		Where(sq.Eq{"t.enrollment_id": enrollmentID}).
		Limit(1)
}

func (db *DB) allHotelsQuery() sq.SelectBuilder {
	return db.builder.
		Select(hotelColumns...).
		From("hotels").
		OrderBy("id ASC")
}

func (db *DB) hotelByIDQuery(hotelID int64) sq.SelectBuilder {
	return db.builder.
		Select(hotelColumns...).
		From("hotels").
		Where(sq.Eq{"id": hotelID})
}

func (db *DB) roomsByHotelIDQuery(hotelID int64) sq.SelectBuilder {
	return db.builder.
		Select(roomColumns...).
		From("rooms").
		Where(sq.Eq{"hotel_id": hotelID}).
		OrderBy("id ASC")
}

func (db *DB) sessionByTokenQuery(token string) sq.SelectBuilder {
	return db.builder.
		Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"token": token}).
		OrderBy("id DESC").
		Limit(1)
}
