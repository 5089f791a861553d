// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testutil provides an in-memory database and data factories for
// tests that exercise the real SQL layer.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/MKhiriev/go-event-hotels/internal/config"
	"github.com/MKhiriev/go-event-hotels/internal/logger"
	"github.com/MKhiriev/go-event-hotels/internal/store"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns a migrated, private in-memory SQLite database that is
// closed when the test ends.
func NewTestDB(t *testing.T) *store.DB {
	t.Helper()

	conn, err := sql.Open(config.DriverSQLite, "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	// every new connection would open a fresh, empty in-memory database
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := store.NewDBFromConn(conn, config.DriverSQLite, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	return db
}
