// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler was reached without the
	// auth middleware having stored a user id.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrInvalidHotelID is returned when the {hotelId} path parameter is not
	// an integer.
	ErrInvalidHotelID = errors.New("hotel id must be an integer")
)
