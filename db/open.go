// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/huddleboard/cliparse"
)

// Open connects to the configured database and verifies the connection.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == "sqlite" {
		// SQLite does not enforce foreign keys unless told to
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return conn, nil
}
