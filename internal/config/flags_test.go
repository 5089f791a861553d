// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8080", expected: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", expected: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":8080", expected: NetAddress{Port: 8080}},
		{name: "no port separator", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "negative port", input: "localhost:-1", expectError: true},
		{name: "bad ip", input: "999.1.1.1:80", expectError: true},
		{name: "too many colons", input: "a:b:c", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	// Arrange
	args := []string{
		"-a", "localhost:9000",
		"-d", "postgres://localhost/hotels",
		"-driver", "pgx",
		"-migrate",
		"-c", "/etc/hotels.yaml",
		"-token-sign-key", "secret",
		"-token-issuer", "events",
		"-request-timeout", "1m",
		"-rate-limit-rps", "10",
		"-rate-limit-burst", "20",
		"-log-level", "warn",
	}

	// Act
	cfg, err := parseFlags(args)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/hotels", cfg.Storage.DB.DSN)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.True(t, cfg.Storage.DB.AutoMigrate)
	assert.Equal(t, "/etc/hotels.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "events", cfg.App.TokenIssuer)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.InDelta(t, 10.0, cfg.Server.RateLimitRPS, 0.0001)
	assert.Equal(t, 20, cfg.Server.RateLimitBurst)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.ConfigFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad address", args: []string{"-a", "nope"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
		{name: "bad rps", args: []string{"-rate-limit-rps", "fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
