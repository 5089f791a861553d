// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/internal/metrics"
	"github.com/MKhiriev/go-event-hotels/internal/store"
	"github.com/rs/zerolog"
)

// hotelAccessService is the eligibility gate in front of every hotel read.
type hotelAccessService struct {
	enrollmentRepository store.EnrollmentRepository
	ticketRepository     store.TicketRepository

	logger *logger.Logger
}

func NewHotelAccessService(enrollments store.EnrollmentRepository, tickets store.TicketRepository, logger *logger.Logger) HotelAccessService {
	return &hotelAccessService{
		enrollmentRepository: enrollments,
		ticketRepository:     tickets,
		logger:               logger,
	}
}

// CheckHotelAccess evaluates the rules in a fixed order and stops at the
// first failure:
//  1. the user has an enrollment (ErrEnrollmentNotFound);
//  2. the enrollment has a ticket (ErrTicketNotFound);
//  3. the ticket type includes a hotel (ErrTicketTypeExcludesHotel);
//  4. the ticket type is not remote (ErrTicketTypeIsRemote);
//  5. the ticket is paid (ErrTicketNotPaid).
//
// Storage failures are returned wrapped and match neither ErrNotFound nor
// ErrPaymentRequired.
func (s *hotelAccessService) CheckHotelAccess(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx).With().
		Int64("user_id", userID).
		Str("func", "*hotelAccessService.CheckHotelAccess").
		Logger()

	enrollment, err := s.enrollmentRepository.FindByUserID(ctx, userID)
	if errors.Is(err, store.ErrNoEnrollmentWasFound) {
		return s.deny(&log, metrics.AccessEnrollmentNotFound, ErrEnrollmentNotFound)
	}
	if err != nil {
		metrics.ObserveHotelAccess(metrics.AccessError)
		log.Err(err).Msg("enrollment lookup failed")
		return fmt.Errorf("enrollment lookup failed: %w", err)
	}

	ticket, err := s.ticketRepository.FindByEnrollmentID(ctx, enrollment.ID)
	if errors.Is(err, store.ErrNoTicketWasFound) {
		return s.deny(&log, metrics.AccessTicketNotFound, ErrTicketNotFound)
	}
	if err != nil {
		metrics.ObserveHotelAccess(metrics.AccessError)
		log.Err(err).Int64("enrollment_id", enrollment.ID).Msg("ticket lookup failed")
		return fmt.Errorf("ticket lookup failed: %w", err)
	}

	switch {
	case !ticket.TicketType.IncludesHotel:
		return s.deny(&log, metrics.AccessTicketExcludesHotel, ErrTicketTypeExcludesHotel)
	case ticket.TicketType.IsRemote:
		return s.deny(&log, metrics.AccessTicketIsRemote, ErrTicketTypeIsRemote)
	case !ticket.Status.IsPaid():
		return s.deny(&log, metrics.AccessTicketNotPaid, ErrTicketNotPaid)
	}

	metrics.ObserveHotelAccess(metrics.AccessGranted)
	return nil
}

func (s *hotelAccessService) deny(log *zerolog.Logger, outcome string, err error) error {
	metrics.ObserveHotelAccess(outcome)
	log.Info().Str("outcome", outcome).Msg("hotel access denied")
	return err
}
