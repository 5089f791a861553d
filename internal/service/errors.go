// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Domain error kinds. The transport layer maps only these two (plus
// ErrUnauthorized); the specific errors below wrap them.
var (
	ErrNotFound        = errors.New("not found")
	ErrPaymentRequired = errors.New("payment required")
	ErrUnauthorized    = errors.New("unauthorized")
)

var (
	ErrEnrollmentNotFound = fmt.Errorf("%w: user has no enrollment", ErrNotFound)
	ErrTicketNotFound     = fmt.Errorf("%w: enrollment has no ticket", ErrNotFound)
	ErrHotelNotFound      = fmt.Errorf("%w: hotel does not exist", ErrNotFound)

	ErrTicketTypeExcludesHotel = fmt.Errorf("%w: ticket type does not include hotel", ErrPaymentRequired)
	ErrTicketTypeIsRemote      = fmt.Errorf("%w: ticket type is remote", ErrPaymentRequired)
	ErrTicketNotPaid           = fmt.Errorf("%w: ticket is not paid", ErrPaymentRequired)

	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", ErrUnauthorized)
	ErrSessionNotFound         = fmt.Errorf("%w: no session for token", ErrUnauthorized)
)

var ErrVersionIsNotSpecified = errors.New("app version is not specified")
