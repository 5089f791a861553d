// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testutil

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-event-hotels/internal/store"
	"github.com/MKhiriev/go-event-hotels/internal/utils"
	"github.com/MKhiriev/go-event-hotels/models"
	"github.com/stretchr/testify/require"
)

var seq atomic.Int64

func next() int64 {
	return seq.Add(1)
}

func insert(t *testing.T, db *store.DB, table string, columns []string, values ...any) int64 {
	t.Helper()

	query, args, err := db.Builder().
		Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	require.NoError(t, err)

	var id int64
	require.NoError(t, db.QueryRow(query, args...).Scan(&id), "insert into %s", table)
	return id
}

// CreateUser inserts a user with a unique email.
func CreateUser(t *testing.T, db *store.DB) models.User {
	t.Helper()

	n := next()
	user := models.User{
		Email:    fmt.Sprintf("user%d@example.com", n),
		Password: fmt.Sprintf("hash-%d", n),
	}
	user.UserID = insert(t, db, "users", []string{"email", "password"}, user.Email, user.Password)
	return user
}

// CreateSession stores token as an active session of userID.
func CreateSession(t *testing.T, db *store.DB, userID int64, token string) models.Session {
	t.Helper()

	session := models.Session{UserID: userID, Token: token}
	session.ID = insert(t, db, "sessions", []string{"user_id", "token"}, userID, token)
	return session
}

// GenerateValidToken signs a {"userId": ...} token for user with signKey and
// records a session for it, mirroring what the sign-in flow does.
func GenerateValidToken(t *testing.T, db *store.DB, user models.User, signKey string) string {
	t.Helper()

	token, err := utils.GenerateUserIDToken(user.UserID, signKey)
	require.NoError(t, err)
	CreateSession(t, db, user.UserID, token.SignedString)
	return token.SignedString
}

// CreateEnrollment inserts the enrollment of user.
func CreateEnrollment(t *testing.T, db *store.DB, user models.User) models.Enrollment {
	t.Helper()

	n := next()
	enrollment := models.Enrollment{
		UserID:   user.UserID,
		Name:     fmt.Sprintf("Participant %d", n),
		CPF:      fmt.Sprintf("%011d", n),
		Birthday: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone:    fmt.Sprintf("+55 21 9%08d", n),
	}
	enrollment.ID = insert(t, db, "enrollments",
		[]string{"user_id", "name", "cpf", "birthday", "phone"},
		enrollment.UserID, enrollment.Name, enrollment.CPF, enrollment.Birthday, enrollment.Phone)
	return enrollment
}

// CreateTicketType inserts a ticket type with the given flags.
func CreateTicketType(t *testing.T, db *store.DB, isRemote, includesHotel bool) models.TicketType {
	t.Helper()

	ticketType := models.TicketType{
		Name:          fmt.Sprintf("Ticket type %d", next()),
		Price:         int64(100 + rand.IntN(900)),
		IsRemote:      isRemote,
		IncludesHotel: includesHotel,
	}
	ticketType.ID = insert(t, db, "ticket_types",
		[]string{"name", "price", "is_remote", "includes_hotel"},
		ticketType.Name, ticketType.Price, ticketType.IsRemote, ticketType.IncludesHotel)
	return ticketType
}

// CreateOkTicketType inserts an in-person ticket type that includes a hotel.
func CreateOkTicketType(t *testing.T, db *store.DB) models.TicketType {
	t.Helper()
	return CreateTicketType(t, db, false, true)
}

// CreateRemoteTicketType inserts a remote ticket type.
func CreateRemoteTicketType(t *testing.T, db *store.DB) models.TicketType {
	t.Helper()
	return CreateTicketType(t, db, true, false)
}

// CreateTicketTypeWithoutHotel inserts an in-person ticket type without hotel.
func CreateTicketTypeWithoutHotel(t *testing.T, db *store.DB) models.TicketType {
	t.Helper()
	return CreateTicketType(t, db, false, false)
}

// CreateTicket inserts the ticket of an enrollment.
func CreateTicket(t *testing.T, db *store.DB, enrollmentID, ticketTypeID int64, status models.TicketStatus) models.Ticket {
	t.Helper()

	ticket := models.Ticket{EnrollmentID: enrollmentID, TicketTypeID: ticketTypeID, Status: status}
	ticket.ID = insert(t, db, "tickets",
		[]string{"enrollment_id", "ticket_type_id", "status"},
		enrollmentID, ticketTypeID, string(status))
	return ticket
}

// CreateHotel inserts a hotel.
func CreateHotel(t *testing.T, db *store.DB) models.Hotel {
	t.Helper()

	n := next()
	hotel := models.Hotel{
		Name:  fmt.Sprintf("Hotel %d", n),
		Image: fmt.Sprintf("https://images.example.com/hotels/%d.jpg", n),
	}
	hotel.ID = insert(t, db, "hotels", []string{"name", "image"}, hotel.Name, hotel.Image)
	return hotel
}

// CreateRoom inserts a room of hotelID with a capacity between 1 and 4.
func CreateRoom(t *testing.T, db *store.DB, hotelID int64) models.Room {
	t.Helper()

	room := models.Room{
		Name:     fmt.Sprintf("%d", 100+next()),
		Capacity: 1 + rand.IntN(4),
		HotelID:  hotelID,
	}
	room.ID = insert(t, db, "rooms", []string{"name", "capacity", "hotel_id"}, room.Name, room.Capacity, room.HotelID)
	return room
}

// CreateHotelWithRooms inserts a hotel with five rooms.
func CreateHotelWithRooms(t *testing.T, db *store.DB) (models.Hotel, []models.Room) {
	t.Helper()

	hotel := CreateHotel(t, db)
	rooms := make([]models.Room, 0, 5)
	for range 5 {
		rooms = append(rooms, CreateRoom(t, db, hotel.ID))
	}
	return hotel, rooms
}

// CreateEligibleUser sets up a user holding a paid, in-person, hotel-inclusive
// ticket and returns the user with a valid token.
func CreateEligibleUser(t *testing.T, db *store.DB, signKey string) (models.User, string) {
	t.Helper()

	user := CreateUser(t, db)
	token := GenerateValidToken(t, db, user, signKey)
	enrollment := CreateEnrollment(t, db, user)
	ticketType := CreateOkTicketType(t, db)
	CreateTicket(t, db, enrollment.ID, ticketType.ID, models.TicketStatusPaid)
	return user, token
}
