// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// legacyEnv holds unprefixed variables kept for deployments that export the
// connection string as plain DATABASE_URI.
type legacyEnv struct {
	DatabaseURI string `env:"DATABASE_URI"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// STORAGE_DB_DATABASE_URI takes precedence over DATABASE_URI.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = legacy.DatabaseURI
	}

	return nil
}
