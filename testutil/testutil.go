// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/huddleboard/cliparse"
	"github.com/danielhkuo/huddleboard/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Each test gets its own database, so no cross-test cleanup is needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps every statement on the same in-memory DB
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4319,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
	}
}

// CreateTestMeeting inserts a meeting and returns its ID
func CreateTestMeeting(t *testing.T, conn *sql.DB, title string, scheduledFor time.Time) string {
	t.Helper()

	meetingID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO meeting (id, title, scheduled_for, location, notes, created_at)
		VALUES ($1, $2, $3, 'Room 1', '', $4)
	`, meetingID, title, scheduledFor, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test meeting: %v", err)
	}

	return meetingID
}

// CreateTestActionItem inserts an action item and returns its ID.
// dueDate is a YYYY-MM-DD string; status is "open" or "done".
func CreateTestActionItem(t *testing.T, conn *sql.DB, description, dueDate, status string) string {
	t.Helper()

	itemID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO action_item (id, description, assignee, due_date, status, created_at)
		VALUES ($1, $2, 'TestUser', $3, $4, $5)
	`, itemID, description, dueDate, status, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test action item: %v", err)
	}

	return itemID
}

// CreateTestIdea inserts an idea with a given vote count and returns its ID
func CreateTestIdea(t *testing.T, conn *sql.DB, title string, votes int, createdAt time.Time) string {
	t.Helper()

	ideaID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO idea (id, title, description, proposer, votes, created_at)
		VALUES ($1, $2, 'A test idea', 'TestUser', $3, $4)
	`, ideaID, title, votes, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test idea: %v", err)
	}

	return ideaID
}

// CreateTestVote inserts a vote row directly, bypassing the handlers
func CreateTestVote(t *testing.T, conn *sql.DB, ideaID, voterToken, kind string) string {
	t.Helper()

	voteID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO vote (id, idea_id, voter_token, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, ideaID, voterToken, kind, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
