// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/huddleboard/auth"
	"github.com/danielhkuo/huddleboard/models"
	"github.com/danielhkuo/huddleboard/testutil"
)

func TestCreateIdea(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/ideas", models.CreateIdeaRequest{
		Title:       "Standing desks",
		Description: "For the whole floor",
		Proposer:    "Alice",
	}, nil)
	w := httptest.NewRecorder()
	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateIdeaResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.IdeaID == "" {
		t.Error("Expected non-empty idea_id")
	}
}

func TestCreateIdeaValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())

	tests := []struct {
		name string
		body models.CreateIdeaRequest
	}{
		{"missing title", models.CreateIdeaRequest{Proposer: "Alice"}},
		{"missing proposer", models.CreateIdeaRequest{Title: "Standing desks"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/ideas", tt.body, nil)
			w := httptest.NewRecorder()
			handler.Create(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestCastVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	ideaID := testutil.CreateTestIdea(t, conn, "Standing desks", 10, time.Now())

	req := testutil.MakeRequest("POST", "/ideas/"+ideaID+"/votes", models.CastVoteRequest{
		Kind: models.VoteUp,
	}, map[string]string{"X-Voter-Token": "voter-1"})
	req.SetPathValue("id", ideaID)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.VoteID == "" {
		t.Error("Expected non-empty vote_id")
	}
	if resp.Votes != 11 {
		t.Errorf("Expected vote count 11, got %d", resp.Votes)
	}
}

func TestCastVoteDown(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	ideaID := testutil.CreateTestIdea(t, conn, "Standing desks", 10, time.Now())

	req := testutil.MakeRequest("POST", "/ideas/"+ideaID+"/votes", models.CastVoteRequest{
		Kind: models.VoteDown,
	}, map[string]string{"X-Voter-Token": "voter-1"})
	req.SetPathValue("id", ideaID)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Votes != 9 {
		t.Errorf("Expected vote count 9, got %d", resp.Votes)
	}
}

func TestCastVoteDuplicateRejected(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	ideaID := testutil.CreateTestIdea(t, conn, "Standing desks", 0, time.Now())
	testutil.CreateTestVote(t, conn, ideaID, "voter-1", models.VoteUp)

	req := testutil.MakeRequest("POST", "/ideas/"+ideaID+"/votes", models.CastVoteRequest{
		Kind: models.VoteUp,
	}, map[string]string{"X-Voter-Token": "voter-1"})
	req.SetPathValue("id", ideaID)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestCastVoteOppositeKindAccepted(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	ideaID := testutil.CreateTestIdea(t, conn, "Standing desks", 5, time.Now())
	testutil.CreateTestVote(t, conn, ideaID, "voter-1", models.VoteUp)

	// An up vote does not block the same voter's down vote
	req := testutil.MakeRequest("POST", "/ideas/"+ideaID+"/votes", models.CastVoteRequest{
		Kind: models.VoteDown,
	}, map[string]string{"X-Voter-Token": "voter-1"})
	req.SetPathValue("id", ideaID)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Votes != 4 {
		t.Errorf("Expected vote count 4, got %d", resp.Votes)
	}
}

func TestCastVoteRequiresToken(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	ideaID := testutil.CreateTestIdea(t, conn, "Standing desks", 0, time.Now())

	req := testutil.MakeRequest("POST", "/ideas/"+ideaID+"/votes", models.CastVoteRequest{
		Kind: models.VoteUp,
	}, nil)
	req.SetPathValue("id", ideaID)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestCastVoteInvalidKind(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	ideaID := testutil.CreateTestIdea(t, conn, "Standing desks", 0, time.Now())

	req := testutil.MakeRequest("POST", "/ideas/"+ideaID+"/votes", models.CastVoteRequest{
		Kind: "sideways",
	}, map[string]string{"X-Voter-Token": "voter-1"})
	req.SetPathValue("id", ideaID)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestCastVoteIdeaNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/ideas/nonexistent/votes", models.CastVoteRequest{
		Kind: models.VoteUp,
	}, map[string]string{"X-Voter-Token": "voter-1"})
	req.SetPathValue("id", "nonexistent")
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListIdeasSortedByVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	testutil.CreateTestIdea(t, conn, "Low", 1, base)
	testutil.CreateTestIdea(t, conn, "High", 9, base.Add(time.Hour))
	testutil.CreateTestIdea(t, conn, "Mid", 4, base.Add(2*time.Hour))

	req := testutil.MakeRequest("GET", "/ideas?sort=votes", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var views []models.IdeaView
	testutil.AssertJSON(t, w, &views)
	if len(views) != 3 {
		t.Fatalf("Expected 3 ideas, got %d", len(views))
	}
	want := []string{"High", "Mid", "Low"}
	for i, title := range want {
		if views[i].Title != title {
			t.Errorf("Position %d: expected %q, got %q", i, title, views[i].Title)
		}
	}
}

func TestListIdeasSortedByNewest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	testutil.CreateTestIdea(t, conn, "Oldest", 9, base)
	testutil.CreateTestIdea(t, conn, "Newest", 1, base.Add(2*time.Hour))
	testutil.CreateTestIdea(t, conn, "Middle", 4, base.Add(time.Hour))

	req := testutil.MakeRequest("GET", "/ideas?sort=newest", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var views []models.IdeaView
	testutil.AssertJSON(t, w, &views)
	if len(views) != 3 {
		t.Fatalf("Expected 3 ideas, got %d", len(views))
	}
	want := []string{"Newest", "Middle", "Oldest"}
	for i, title := range want {
		if views[i].Title != title {
			t.Errorf("Position %d: expected %q, got %q", i, title, views[i].Title)
		}
	}
}

func TestListIdeasInvalidSort(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/ideas?sort=alphabetical", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestListIdeasVoterDecoration(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	votedIdea := testutil.CreateTestIdea(t, conn, "Voted", 3, base)
	testutil.CreateTestIdea(t, conn, "Untouched", 1, base.Add(time.Hour))
	testutil.CreateTestVote(t, conn, votedIdea, "voter-1", models.VoteUp)

	req := testutil.MakeRequest("GET", "/ideas?sort=votes", nil, map[string]string{
		"X-Voter-Token": "voter-1",
	})
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var views []models.IdeaView
	testutil.AssertJSON(t, w, &views)
	if len(views) != 2 {
		t.Fatalf("Expected 2 ideas, got %d", len(views))
	}

	for _, view := range views {
		switch view.ID {
		case votedIdea:
			if !view.VotedUp {
				t.Error("Expected voted_up true for the voted idea")
			}
			if view.VotedDown {
				t.Error("Expected voted_down false for the voted idea")
			}
		default:
			if view.VotedUp || view.VotedDown {
				t.Error("Expected no vote state on the untouched idea")
			}
		}
	}
}

func TestClaimVoter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/voters", nil, nil)
	w := httptest.NewRecorder()
	handler.ClaimVoter(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.ClaimVoterResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.VoterToken == "" {
		t.Error("Expected non-empty voter_token")
	}
}

func TestDeleteIdea(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewIdeaHandler(conn, cfg)
	ideaID := testutil.CreateTestIdea(t, conn, "Standing desks", 2, time.Now())
	testutil.CreateTestVote(t, conn, ideaID, "voter-1", models.VoteUp)

	req := testutil.MakeRequest("DELETE", "/ideas/"+ideaID, nil, map[string]string{
		"X-Admin-Key": auth.GenerateAdminKey(cfg.AdminKeySalt),
	})
	req.SetPathValue("id", ideaID)
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	var remaining int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE idea_id = $1`, ideaID).Scan(&remaining); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if remaining != 0 {
		t.Errorf("Expected votes to be deleted with the idea, found %d", remaining)
	}
}

func TestDeleteIdeaRequiresAdminKey(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewIdeaHandler(conn, testutil.GetTestConfig())
	ideaID := testutil.CreateTestIdea(t, conn, "Standing desks", 0, time.Now())

	req := testutil.MakeRequest("DELETE", "/ideas/"+ideaID, nil, map[string]string{
		"X-Admin-Key": "wrong-key",
	})
	req.SetPathValue("id", ideaID)
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestDeleteIdeaNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewIdeaHandler(conn, cfg)

	req := testutil.MakeRequest("DELETE", "/ideas/nonexistent", nil, map[string]string{
		"X-Admin-Key": auth.GenerateAdminKey(cfg.AdminKeySalt),
	})
	req.SetPathValue("id", "nonexistent")
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
