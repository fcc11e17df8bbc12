// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"sort"
	"time"

	"github.com/danielhkuo/huddleboard/models"
)

// ErrAlreadyVoted signals that the voter has already cast a vote of the
// same kind on the same idea. It must be checked before any persistence
// attempt so the caller can surface a user-facing notice instead of a
// constraint violation.
var ErrAlreadyVoted = errors.New("already voted")

// IndexVotesByIdea groups votes by idea ID, preserving input order within
// each group. No filtering happens here: the caller supplies only the
// current voter's votes.
func IndexVotesByIdea(votes []models.Vote) map[string][]models.Vote {
	index := make(map[string][]models.Vote, len(votes))
	for _, v := range votes {
		index[v.IdeaID] = append(index[v.IdeaID], v)
	}
	return index
}

// HasVoted reports whether the index holds a vote of the given kind for
// the given idea.
func HasVoted(index map[string][]models.Vote, ideaID, kind string) bool {
	for _, v := range index[ideaID] {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// ValidateVote enforces the one-vote-per-kind rule: a voter may cast at
// most one upvote and at most one downvote per idea. Returns
// ErrAlreadyVoted for a duplicate (ideaID, kind) pair, nil otherwise.
func ValidateVote(index map[string][]models.Vote, ideaID, kind string) error {
	if HasVoted(index, ideaID, kind) {
		return ErrAlreadyVoted
	}
	return nil
}

// ApplyVoteDelta returns the running tally after a vote of the given
// kind: +1 for an upvote, -1 for a downvote. The counter is a plain net
// score and is not clamped at zero; it may go negative. Unknown kinds
// leave the count unchanged.
func ApplyVoteDelta(count int, kind string) int {
	switch kind {
	case models.VoteUp:
		return count + 1
	case models.VoteDown:
		return count - 1
	default:
		return count
	}
}

// SortIdeas returns a new slice ordered by the given key: "votes" sorts
// by descending vote count, "newest" by descending creation timestamp
// with a missing timestamp treated as the earliest possible value. The
// sort is stable, so ties keep their input order. Unknown keys return
// the input order unchanged. The input slice is never mutated.
func SortIdeas(ideas []models.Idea, key string) []models.Idea {
	sorted := make([]models.Idea, len(ideas))
	copy(sorted, ideas)

	switch key {
	case models.SortByVotes:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Votes > sorted[j].Votes
		})
	case models.SortByNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ideaCreatedAt(sorted[i]).After(ideaCreatedAt(sorted[j]))
		})
	}

	return sorted
}

// ideaCreatedAt treats a missing creation timestamp as the earliest
// possible value so undated ideas sort last under "newest".
func ideaCreatedAt(idea models.Idea) time.Time {
	if idea.CreatedAt == nil {
		return time.Time{}
	}
	return *idea.CreatedAt
}
