// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the optional config file.
// The same structure is used for JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer" yaml:"token_issuer"`
		Version      string `json:"version" yaml:"version"`
		LogLevel     string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver" yaml:"driver"`
			DSN          string `json:"dsn" yaml:"dsn"`
			AutoMigrate  bool   `json:"auto_migrate" yaml:"auto_migrate"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		RateLimitRPS    float64  `json:"rate_limit_rps" yaml:"rate_limit_rps"`
		RateLimitBurst  int      `json:"rate_limit_burst" yaml:"rate_limit_burst"`
	} `json:"server,omitempty" yaml:"server,omitempty"`
}

// parseFile reads the config file at path. The format is chosen by the file
// extension: .yaml/.yml are YAML, .json is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	if err = unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: f.App.TokenSignKey,
			TokenIssuer:  f.App.TokenIssuer,
			Version:      f.App.Version,
			LogLevel:     f.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       f.Storage.DB.Driver,
				DSN:          f.Storage.DB.DSN,
				AutoMigrate:  f.Storage.DB.AutoMigrate,
				MaxOpenConns: f.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
			RateLimitRPS:    f.Server.RateLimitRPS,
			RateLimitBurst:  f.Server.RateLimitBurst,
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling
// from strings like "1h", "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var nanos int64
	if err := value.Decode(&nanos); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(nanos))
	return nil
}
