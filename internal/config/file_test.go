// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	// Arrange
	path := writeTempConfig(t, "config.json", `{
		"app": {"token_sign_key": "secret", "token_issuer": "events", "version": "1.0.0"},
		"storage": {"db": {"driver": "sqlite3", "dsn": "file:test.db", "auto_migrate": true, "max_open_conns": 4}},
		"server": {"http_address": ":9000", "request_timeout": "20s", "shutdown_timeout": "3s",
			"rate_limit_rps": 5, "rate_limit_burst": 10}
	}`)

	// Act
	cfg, err := parseFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "events", cfg.App.TokenIssuer)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.DB.AutoMigrate)
	assert.Equal(t, 4, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.InDelta(t, 5.0, cfg.Server.RateLimitRPS, 0.0001)
	assert.Equal(t, 10, cfg.Server.RateLimitBurst)
}

func TestParseFile_YAML(t *testing.T) {
	// Arrange
	path := writeTempConfig(t, "config.yaml", `
app:
  token_sign_key: secret
storage:
  db:
    driver: pgx
    dsn: postgres://localhost/hotels
server:
  http_address: "localhost:8081"
  request_timeout: 45s
`)

	// Act
	cfg, err := parseFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/hotels", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Zero(t, cfg.Server.ShutdownTimeout)
}

func TestParseFile_YMLExtension(t *testing.T) {
	path := writeTempConfig(t, "config.yml", "app:\n  version: 2.0.0\n")

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
}

func TestParseFile_JSONNumericDuration(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		target  error
	}{
		{name: "unsupported extension", file: "config.toml", content: "a = 1", target: ErrUnsupportedConfigFile},
		{name: "broken json", file: "config.json", content: "{"},
		{name: "broken yaml", file: "config.yaml", content: "app: ["},
		{name: "bad json duration", file: "config.json", content: `{"server": {"request_timeout": "soon"}}`},
		{name: "bad yaml duration", file: "config.yaml", content: "server:\n  request_timeout: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)

			cfg, err := parseFile(path)

			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	cfg, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseFile_UnsupportedExtensionCheckedBeforeRead(t *testing.T) {
	cfg, err := parseFile(filepath.Join(t.TempDir(), "absent.ini"))

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
}
