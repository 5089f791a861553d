// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/models"
)

// hotelRepository is the SQL implementation of [HotelRepository].
//
// Every call reads the tables directly; nothing is cached between requests.
type hotelRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHotelRepository constructs a [HotelRepository] over db.
func NewHotelRepository(db *DB, log *logger.Logger) HotelRepository {
	log.Debug().Msg("creating hotel repository")
	return &hotelRepository{
		db:     db,
		logger: log,
	}
}

// FindAll returns every hotel ordered by ascending id. The result is never
// nil: an empty table yields an empty slice.
func (r *hotelRepository) FindAll(ctx context.Context) ([]models.Hotel, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.allHotelsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.FindAll").Msg("error querying hotels")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	hotels := make([]models.Hotel, 0)
	for rows.Next() {
		var h models.Hotel
		if err = rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*hotelRepository.FindAll").Msg("error scanning hotel")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		hotels = append(hotels, h)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*hotelRepository.FindAll").Msg("error iterating hotels")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return hotels, nil
}

// FindByIDWithRooms returns the hotel with all of its rooms ordered by
// ascending id, or [ErrNoHotelWasFound]. A hotel without rooms has an empty,
// non-nil Rooms slice.
func (r *hotelRepository) FindByIDWithRooms(ctx context.Context, hotelID int64) (models.HotelWithRooms, error) {
	log := logger.FromContext(ctx).With().Int64("hotel_id", hotelID).Logger()

	query, args, err := r.db.hotelByIDQuery(hotelID).ToSql()
	if err != nil {
		return models.HotelWithRooms{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result models.HotelWithRooms
	h := &result.Hotel
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HotelWithRooms{}, ErrNoHotelWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.FindByIDWithRooms").Msg("error finding hotel")
		return models.HotelWithRooms{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	rooms, err := r.findRooms(ctx, hotelID)
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.FindByIDWithRooms").Msg("error finding rooms")
		return models.HotelWithRooms{}, err
	}
	result.Rooms = rooms

	return result, nil
}

func (r *hotelRepository) findRooms(ctx context.Context, hotelID int64) ([]models.Room, error) {
	query, args, err := r.db.roomsByHotelIDQuery(hotelID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		var room models.Room
		if err = rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return rooms, nil
}
