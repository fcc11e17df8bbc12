// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL is restricted to the subset both PostgreSQL and SQLite accept:
// no server-side timestamp defaults (created_at is set by the handlers)
// and no driver-specific column types.
const schema = `
-- Meetings
CREATE TABLE IF NOT EXISTS meeting (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    scheduled_for TIMESTAMP NOT NULL,
    location TEXT,
    notes TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_meeting_scheduled_for ON meeting(scheduled_for);

-- Action items
CREATE TABLE IF NOT EXISTS action_item (
    id TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    assignee TEXT NOT NULL,
    due_date TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'done')),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_action_item_status ON action_item(status);
CREATE INDEX IF NOT EXISTS idx_action_item_due_date ON action_item(due_date);

-- Ideas
CREATE TABLE IF NOT EXISTS idea (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    proposer TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    idea_id TEXT NOT NULL REFERENCES idea(id) ON DELETE CASCADE,
    voter_token TEXT NOT NULL,
    kind TEXT NOT NULL CHECK (kind IN ('up', 'down')),
    created_at TIMESTAMP NOT NULL,
    UNIQUE (idea_id, voter_token, kind)
);

CREATE INDEX IF NOT EXISTS idx_vote_idea_id ON vote(idea_id);
CREATE INDEX IF NOT EXISTS idx_vote_voter_token ON vote(voter_token);

-- Team settings (single row, id fixed at 1)
CREATE TABLE IF NOT EXISTS team_settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    team_name TEXT NOT NULL DEFAULT '',
    dark_mode BOOLEAN NOT NULL DEFAULT FALSE,
    updated_at TIMESTAMP NOT NULL
);
`
