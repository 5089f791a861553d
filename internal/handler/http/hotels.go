// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/internal/utils"
	"github.com/go-chi/chi/v5"
)

// listHotels handles GET /hotels.
func (h *Handler) listHotels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Err(ErrNoUserInContext).Str("func", "*Handler.listHotels").Send()
		utils.WriteStatus(w, http.StatusUnauthorized)
		return
	}

	hotels, err := h.services.HotelService.ListHotels(ctx, userID)
	if err != nil {
		status := statusFromError(err)
		log.Info().Err(err).Int64("user_id", userID).Int("status", status).Str("func", "*Handler.listHotels").Msg("hotels listing refused")
		utils.WriteStatus(w, status)
		return
	}

	if _, err = utils.WriteJSON(w, hotels, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listHotels").Msg("error writing hotels")
	}
}

// getHotelWithRooms handles GET /hotels/{hotelId}.
func (h *Handler) getHotelWithRooms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Err(ErrNoUserInContext).Str("func", "*Handler.getHotelWithRooms").Send()
		utils.WriteStatus(w, http.StatusUnauthorized)
		return
	}

	hotelID, err := strconv.ParseInt(chi.URLParam(r, "hotelId"), 10, 64)
	if err != nil {
		log.Debug().Err(ErrInvalidHotelID).Str("hotel_id", chi.URLParam(r, "hotelId")).Str("func", "*Handler.getHotelWithRooms").Send()
		utils.WriteStatus(w, http.StatusBadRequest)
		return
	}

	hotel, err := h.services.HotelService.GetHotelWithRooms(ctx, userID, hotelID)
	if err != nil {
		status := statusFromError(err)
		log.Info().Err(err).Int64("user_id", userID).Int64("hotel_id", hotelID).Int("status", status).Str("func", "*Handler.getHotelWithRooms").Msg("hotel lookup refused")
		utils.WriteStatus(w, status)
		return
	}

	if _, err = utils.WriteJSON(w, hotel, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getHotelWithRooms").Msg("error writing hotel")
	}
}
