// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result of [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is the default for errors that carry no driver code of
	// interest: constraint violations, data exceptions, unknown errors.
	Unclassified ErrorClassification = iota

	// Unavailable marks connection loss, refused connections and lock
	// contention.
	Unavailable

	// SchemaMismatch marks references to tables or columns that do not exist.
	SchemaMismatch
)

// ErrorClassificator maps driver specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are [Unclassified].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return Unclassified
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Unavailable codes:
//   - Class 08: connection exceptions
//   - 57P01, 57P03: admin shutdown, cannot connect now
//
// SchemaMismatch codes:
//   - 42P01 undefined table, 42703 undefined column
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
		pgerrcode.AdminShutdown,
		pgerrcode.CannotConnectNow:
		return Unavailable

	case pgerrcode.UndefinedTable,
		pgerrcode.UndefinedColumn:
		return SchemaMismatch
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. SQLite reports a missing table or
// column with the generic SQLITE_ERROR code, so the message is inspected.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if err == nil || !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
		return Unavailable
	case sqlite3.ErrError:
		msg := sqliteErr.Error()
		if strings.Contains(msg, "no such table") || strings.Contains(msg, "no such column") {
			return SchemaMismatch
		}
	}

	return Unclassified
}

// wrapError attaches the classification sentinel (if any) and the operation
// sentinel to a driver error, so callers can match on either with errors.Is.
func (db *DB) wrapError(op error, err error) error {
	switch db.errorClassificator.Classify(err) {
	case Unavailable:
		return fmt.Errorf("%w: %w: %w", op, ErrDatabaseUnavailable, err)
	case SchemaMismatch:
		return fmt.Errorf("%w: %w: %w", op, ErrSchemaMismatch, err)
	default:
		return fmt.Errorf("%w: %w", op, err)
	}
}
