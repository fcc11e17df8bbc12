// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/huddleboard/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body OK, got %q", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "huddleboard API v1" {
		t.Errorf("Expected API banner, got %q", w.Body.String())
	}
}

func TestRoutesExist(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	// A registered route never answers 405 for its own method
	tests := []struct {
		method string
		path   string
	}{
		{"POST", "/meetings"},
		{"GET", "/meetings"},
		{"DELETE", "/meetings/some-id"},
		{"POST", "/action-items"},
		{"GET", "/action-items"},
		{"GET", "/action-items/urgent"},
		{"PATCH", "/action-items/some-id/status"},
		{"DELETE", "/action-items/some-id"},
		{"POST", "/ideas"},
		{"GET", "/ideas"},
		{"DELETE", "/ideas/some-id"},
		{"POST", "/ideas/some-id/votes"},
		{"POST", "/voters"},
		{"GET", "/dashboard/summary"},
		{"GET", "/settings"},
		{"PUT", "/settings"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s not registered", tt.method, tt.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	tests := []struct {
		method string
		path   string
	}{
		{"DELETE", "/meetings"},
		{"PUT", "/action-items"},
		{"PATCH", "/ideas"},
		{"DELETE", "/voters"},
		{"POST", "/dashboard/summary"},
		{"DELETE", "/settings"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tt.method, tt.path, w.Code)
			}
		})
	}
}

func TestVoteFlowThroughRouter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	// Claim a token, then vote on a seeded idea via the full route table
	claimReq := testutil.MakeRequest("POST", "/voters", nil, nil)
	claimW := httptest.NewRecorder()
	mux.ServeHTTP(claimW, claimReq)
	testutil.AssertStatus(t, claimW, http.StatusCreated)

	var claim struct {
		VoterToken string `json:"voter_token"`
	}
	testutil.AssertJSON(t, claimW, &claim)
	if claim.VoterToken == "" {
		t.Fatal("Expected non-empty voter_token")
	}

	createReq := testutil.MakeRequest("POST", "/ideas", map[string]string{
		"title":    "Standing desks",
		"proposer": "Alice",
	}, nil)
	createW := httptest.NewRecorder()
	mux.ServeHTTP(createW, createReq)
	testutil.AssertStatus(t, createW, http.StatusCreated)

	var created struct {
		IdeaID string `json:"idea_id"`
	}
	testutil.AssertJSON(t, createW, &created)

	voteReq := testutil.MakeRequest("POST", "/ideas/"+created.IdeaID+"/votes", map[string]string{
		"kind": "up",
	}, map[string]string{"X-Voter-Token": claim.VoterToken})
	voteW := httptest.NewRecorder()
	mux.ServeHTTP(voteW, voteReq)
	testutil.AssertStatus(t, voteW, http.StatusCreated)

	var vote struct {
		Votes int `json:"votes"`
	}
	testutil.AssertJSON(t, voteW, &vote)
	if vote.Votes != 1 {
		t.Errorf("Expected vote count 1, got %d", vote.Votes)
	}
}
