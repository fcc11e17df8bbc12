// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Huddleboard API server.

Huddleboard is a small team-management dashboard backend: meetings,
action items with deadline tracking, idea voting, and team settings,
served as a JSON API over a relational database.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=huddleboard.db ADMIN_KEY_SALT=... go run .

Or with flags:

	go run . -p 4319 -t postgres -d "postgres://..." -admin-salt "..."

A .env file in the working directory is loaded automatically if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (PostgreSQL URL or SQLite path)
  - ADMIN_KEY_SALT (-admin-salt): secret for the board admin key HMAC

Optional settings:

  - PORT (-p): server port (default: 4319)
  - DATABASE_TYPE (-t): "postgres" or "sqlite" (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (meetings, action items, ideas, dashboard, settings)
  - engine: pure vote-aggregation and deadline-classification logic
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - auth: voter token minting and admin key validation
  - db: connection setup and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
