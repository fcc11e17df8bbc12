// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine holds the pure decision logic behind the dashboard: vote
aggregation/validation and deadline classification.

Everything here operates on in-memory snapshots supplied by the caller
and returns new derived values. The package performs no I/O, reads no
clocks (a "now" instant is always an explicit parameter), and never
mutates its inputs, so every function is idempotent over a snapshot and
safe to call from concurrent requests.

# Vote Aggregation

The store layer supplies the current voter's votes; the engine indexes
them and answers eligibility questions:

	index := engine.IndexVotesByIdea(votes)
	if err := engine.ValidateVote(index, ideaID, models.VoteUp); err != nil {
		// engine.ErrAlreadyVoted: reject before touching the store
	}
	newCount := engine.ApplyVoteDelta(idea.Votes, models.VoteUp)

The vote counter is a running net tally (upvotes minus downvotes) and is
deliberately not clamped at zero.

# Deadline Classification

Open action items are classified into buckets by whole calendar days
relative to an injected now:

	bucket := engine.Classify(item, now)        // overdue | due_today | due_tomorrow | none
	urgent := engine.UrgentList(items, now, 5)  // due today/tomorrow, earliest first
	counts := engine.CountByBucket(items, now)
	rate := engine.CompletionRate(items)        // 100 * done / total

Done items always classify as none. Items with unparsable due dates are
skipped, never propagated as errors.
*/
package engine
