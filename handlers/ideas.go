// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/huddleboard/auth"
	"github.com/danielhkuo/huddleboard/cliparse"
	"github.com/danielhkuo/huddleboard/engine"
	"github.com/danielhkuo/huddleboard/middleware"
	"github.com/danielhkuo/huddleboard/models"
)

type IdeaHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewIdeaHandler(db *sql.DB, cfg cliparse.Config) *IdeaHandler {
	return &IdeaHandler{db: db, cfg: cfg}
}

// Create handles POST /ideas
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIdeaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Proposer == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposer is required")
		return
	}

	ideaID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO idea (id, title, description, proposer, votes, created_at)
		VALUES ($1, $2, $3, $4, 0, $5)
	`, ideaID, req.Title, req.Description, req.Proposer, time.Now())

	if err != nil {
		slog.Error("failed to insert idea", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create idea")
		return
	}

	slog.Info("idea created", "idea_id", ideaID, "proposer", req.Proposer)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateIdeaResponse{
		IdeaID: ideaID,
	})
}

// List handles GET /ideas?sort=votes|newest
// When the X-Voter-Token header is present, each idea carries the
// requesting voter's voted_up / voted_down state.
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	sortKey := r.URL.Query().Get("sort")
	if sortKey == "" {
		sortKey = models.SortByVotes
	}
	if sortKey != models.SortByVotes && sortKey != models.SortByNewest {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sort must be votes or newest")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, title, description, proposer, votes, created_at
		FROM idea
		ORDER BY created_at, id
	`)
	if err != nil {
		slog.Error("failed to query ideas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	ideas := []models.Idea{}
	for rows.Next() {
		var idea models.Idea
		var description sql.NullString
		if err := rows.Scan(&idea.ID, &idea.Title, &description, &idea.Proposer, &idea.Votes, &idea.CreatedAt); err != nil {
			slog.Error("failed to scan idea", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		idea.Description = description.String
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate ideas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	sorted := engine.SortIdeas(ideas, sortKey)

	// Vote state for the requesting voter, if identified
	index := map[string][]models.Vote{}
	if voterToken := r.Header.Get("X-Voter-Token"); voterToken != "" {
		votes, err := h.votesForVoter(voterToken)
		if err != nil {
			slog.Error("failed to query votes", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		index = engine.IndexVotesByIdea(votes)
	}

	views := make([]models.IdeaView, len(sorted))
	for i, idea := range sorted {
		views[i] = models.IdeaView{
			Idea:      idea,
			VotedUp:   engine.HasVoted(index, idea.ID, models.VoteUp),
			VotedDown: engine.HasVoted(index, idea.ID, models.VoteDown),
		}
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// ClaimVoter handles POST /voters
func (h *IdeaHandler) ClaimVoter(w http.ResponseWriter, r *http.Request) {
	voterToken, err := auth.GenerateVoterToken()
	if err != nil {
		slog.Error("failed to generate voter token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim voter token")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.ClaimVoterResponse{
		VoterToken: voterToken,
	})
}

// CastVote handles POST /ideas/:id/votes
func (h *IdeaHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	ideaID := r.PathValue("id")
	if ideaID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "idea_id is required")
		return
	}

	// Voter identity comes from the presentation collaborator, never
	// minted here
	voterToken := r.Header.Get("X-Voter-Token")
	if voterToken == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-Token header required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Kind != models.VoteUp && req.Kind != models.VoteDown {
		middleware.ErrorResponse(w, http.StatusBadRequest, "kind must be up or down")
		return
	}

	// Check idea exists
	var exists bool
	err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM idea WHERE id = $1)`, ideaID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query idea", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Idea not found")
		return
	}

	// Business rule: at most one vote per kind per (voter, idea).
	// Validated against the voter's cached vote state before any write.
	votes, err := h.votesForIdeaAndVoter(ideaID, voterToken)
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	index := engine.IndexVotesByIdea(votes)
	if err := engine.ValidateVote(index, ideaID, req.Kind); err != nil {
		if errors.Is(err, engine.ErrAlreadyVoted) {
			middleware.ErrorResponse(w, http.StatusConflict, "You have already cast this vote")
			return
		}
		slog.Error("vote validation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to validate vote")
		return
	}

	// Record the vote and bump the running tally in one transaction
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	voteID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO vote (id, idea_id, voter_token, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, ideaID, voterToken, req.Kind, time.Now())

	if err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	var currentCount int
	err = tx.QueryRow(`SELECT votes FROM idea WHERE id = $1`, ideaID).Scan(&currentCount)
	if err != nil {
		slog.Error("failed to read vote count", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	newCount := engine.ApplyVoteDelta(currentCount, req.Kind)
	_, err = tx.Exec(`UPDATE idea SET votes = $1 WHERE id = $2`, newCount, ideaID)
	if err != nil {
		slog.Error("failed to update vote count", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "idea_id", ideaID, "kind", req.Kind, "votes", newCount)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		VoteID: voteID,
		Votes:  newCount,
	})
}

// Delete handles DELETE /ideas/:id (admin)
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ideaID := r.PathValue("id")
	if ideaID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "idea_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Votes go first; the FK cascade covers drivers where it is enforced,
	// the explicit delete covers the rest.
	_, err = tx.Exec(`DELETE FROM vote WHERE idea_id = $1`, ideaID)
	if err != nil {
		slog.Error("failed to delete votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete idea")
		return
	}

	result, err := tx.Exec(`DELETE FROM idea WHERE id = $1`, ideaID)
	if err != nil {
		slog.Error("failed to delete idea", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete idea")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete idea")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Idea not found")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete idea")
		return
	}

	slog.Info("idea deleted", "idea_id", ideaID)

	w.WriteHeader(http.StatusNoContent)
}

func (h *IdeaHandler) votesForVoter(voterToken string) ([]models.Vote, error) {
	rows, err := h.db.Query(`
		SELECT id, idea_id, voter_token, kind, created_at
		FROM vote
		WHERE voter_token = $1
		ORDER BY created_at, id
	`, voterToken)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVotes(rows)
}

func (h *IdeaHandler) votesForIdeaAndVoter(ideaID, voterToken string) ([]models.Vote, error) {
	rows, err := h.db.Query(`
		SELECT id, idea_id, voter_token, kind, created_at
		FROM vote
		WHERE idea_id = $1 AND voter_token = $2
		ORDER BY created_at, id
	`, ideaID, voterToken)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVotes(rows)
}

func scanVotes(rows *sql.Rows) ([]models.Vote, error) {
	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.IdeaID, &v.VoterToken, &v.Kind, &v.CreatedAt); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}
