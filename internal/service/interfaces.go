// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-event-hotels/models"
)

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// HotelAccessService decides whether a user may browse hotels.
type HotelAccessService interface {
	// CheckHotelAccess returns nil when the user holds a paid, in-person,
	// hotel-inclusive ticket, or an error matching ErrNotFound or
	// ErrPaymentRequired naming the first rule that failed.
	CheckHotelAccess(ctx context.Context, userID int64) error
}

type HotelService interface {
	ListHotels(ctx context.Context, userID int64) ([]models.Hotel, error)
	GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (models.HotelWithRooms, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
