// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection setup and schema creation.

Two drivers are supported, selected by cliparse.Config.DatabaseType:

  - "postgres" via github.com/lib/pq (production)
  - "sqlite" via modernc.org/sqlite (local development and tests)

	conn, err := db.Open(cfg)
	...
	err = db.CreateSchema(conn)

CreateSchema is idempotent (IF NOT EXISTS everywhere) and the DDL sticks
to the dialect subset both engines accept.

Queries throughout the codebase use $1-style placeholders. PostgreSQL
binds these ordinally; SQLite treats $1 as a named parameter and assigns
indexes in order of first appearance, so the same query text binds
identically on both drivers as long as placeholders appear in ascending
order and are not repeated.
*/
package db
