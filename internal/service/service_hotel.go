// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/internal/store"
	"github.com/MKhiriev/go-event-hotels/models"
)

// hotelService serves hotel reads. Every call passes the eligibility gate
// first and then reads the store; results are never cached.
type hotelService struct {
	access          HotelAccessService
	hotelRepository store.HotelRepository

	logger *logger.Logger
}

func NewHotelService(access HotelAccessService, hotels store.HotelRepository, logger *logger.Logger) HotelService {
	return &hotelService{
		access:          access,
		hotelRepository: hotels,
		logger:          logger,
	}
}

// ListHotels returns every hotel in ascending id order. The slice is never
// nil, so an empty catalogue serializes as [].
func (s *hotelService) ListHotels(ctx context.Context, userID int64) ([]models.Hotel, error) {
	if err := s.access.CheckHotelAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepository.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*hotelService.ListHotels").Msg("error listing hotels")
		return nil, fmt.Errorf("error listing hotels: %w", err)
	}
	if hotels == nil {
		hotels = []models.Hotel{}
	}

	return hotels, nil
}

// GetHotelWithRooms returns the hotel with its rooms or ErrHotelNotFound.
func (s *hotelService) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (models.HotelWithRooms, error) {
	if err := s.access.CheckHotelAccess(ctx, userID); err != nil {
		return models.HotelWithRooms{}, err
	}

	hotel, err := s.hotelRepository.FindByIDWithRooms(ctx, hotelID)
	if errors.Is(err, store.ErrNoHotelWasFound) {
		return models.HotelWithRooms{}, ErrHotelNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("hotel_id", hotelID).Str("func", "*hotelService.GetHotelWithRooms").Msg("error getting hotel")
		return models.HotelWithRooms{}, fmt.Errorf("error getting hotel: %w", err)
	}
	if hotel.Rooms == nil {
		hotel.Rooms = []models.Room{}
	}

	return hotel, nil
}
