// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Huddleboard API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - MeetingHandler: meeting CRUD
  - ActionItemHandler: action item lifecycle and the urgent list
  - IdeaHandler: idea CRUD, voter token claims, vote casting
  - DashboardHandler: aggregate summary counters
  - SettingsHandler: single-row team settings

Handlers are created via constructor functions that accept *sql.DB and Config:

	ideaHandler := handlers.NewIdeaHandler(db, cfg)

# Voting Flow

Voters mint a token once, then vote per idea:

	POST /voters               → ClaimVoter (returns voter_token)
	POST /ideas/{id}/votes     → CastVote (kind "up" or "down")
	GET  /ideas?sort=votes     → List (voted_up/voted_down per idea)

Vote operations require the X-Voter-Token header. The one-vote-per-kind
rule is enforced by engine.ValidateVote against the voter's existing
votes before anything is written; a duplicate yields 409. Accepted votes
insert a vote row and bump the idea's running tally
(engine.ApplyVoteDelta) in one transaction.

# Deadline Classification

Action item reads delegate all date logic to the engine package:

	GET /action-items          → each record carries its bucket
	GET /action-items/urgent   → engine.UrgentList, earliest due first
	GET /dashboard/summary     → engine.CountByBucket + CompletionRate

The handlers pass time.Now() in; the engine never reads the clock.

# Admin Operations

Deletes require the X-Admin-Key header, validated by HMAC against the
configured salt.
*/
package handlers
