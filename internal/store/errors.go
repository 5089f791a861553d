// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoEnrollmentWasFound is returned when the user has no enrollment.
	ErrNoEnrollmentWasFound = errors.New("no enrollment was found")

	// ErrNoTicketWasFound is returned when the enrollment has no ticket.
	ErrNoTicketWasFound = errors.New("no ticket was found")

	// ErrNoHotelWasFound is returned when no hotel has the requested id.
	ErrNoHotelWasFound = errors.New("no hotel was found")

	// ErrNoSessionWasFound is returned when no session row holds the token.
	ErrNoSessionWasFound = errors.New("no session was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDatabaseUnavailable wraps driver errors that indicate a lost or
	// refused connection (Postgres class 08, 57P03; SQLite busy/locked).
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrSchemaMismatch wraps driver errors caused by a missing table or
	// column, usually because migrations were not applied.
	ErrSchemaMismatch = errors.New("database schema mismatch")

	// ErrUnsupportedDriver is returned by NewDB for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
