// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the service and applies it with
// goose. Each supported database driver has its own directory of migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-event-hotels/internal/config"
	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("db is nil")

	// ErrUnsupportedDriver is returned for drivers without embedded migrations.
	ErrUnsupportedDriver = errors.New("no migrations for driver")
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

var migrationDirs = map[string]string{
	config.DriverPostgres: "postgres",
	config.DriverSQLite:   "sqlite",
}

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3") to db.
func Migrate(db *sql.DB, driver string, log *logger.Logger) error {
	if db == nil {
		return ErrNilDB
	}

	dir, ok := migrationDirs[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output into the service logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Msgf(format, v...)
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Msgf(format, v...)
}
