// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// supportedDrivers lists the database/sql drivers the store can open.
var supportedDrivers = map[string]struct{}{
	"pgx":     {},
	"sqlite3": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrEmptyDatabaseDSN
	}

	if _, ok := supportedDrivers[cfg.Storage.DB.Driver]; !ok {
		return ErrUnsupportedDatabaseDriver
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrEmptyServerAddress
	}

	return nil
}
