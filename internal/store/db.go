// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-event-hotels/internal/config"
	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps a *sql.DB together with the squirrel statement builder and the
// error classifier matching its driver.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a connection pool for cfg.Driver ("pgx" or "sqlite3"), applies
// pool limits and pings the database.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if _, ok := classifiers[cfg.Driver]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	log.Info().Str("func", "NewDB").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return NewDBFromConn(conn, cfg.Driver, log)
}

// NewDBFromConn wraps an already opened connection. Used by NewDB and by
// tests that bring their own *sql.DB (sqlmock, in-memory SQLite).
func NewDBFromConn(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	newClassifier, ok := classifiers[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholders[driver]),
		errorClassificator: newClassifier(),
		logger:             log,
	}, nil
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded migrations for the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver, db.logger)
}

var classifiers = map[string]func() ErrorClassificator{
	config.DriverPostgres: func() ErrorClassificator { return NewPostgresErrorClassifier() },
	config.DriverSQLite:   func() ErrorClassificator { return NewSQLiteErrorClassifier() },
}

var placeholders = map[string]sq.PlaceholderFormat{
	config.DriverPostgres: sq.Dollar,
	config.DriverSQLite:   sq.Question,
}

// Builder returns the squirrel statement builder bound to the driver's
// placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}
