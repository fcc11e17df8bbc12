// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and request/response shapes for
the Huddleboard API.

# Domain Types

  - Meeting: a scheduled team meeting
  - ActionItem: a trackable unit of work with an assignee and a
    YYYY-MM-DD due date, status "open" or "done"
  - Idea: a proposed content item subject to up/down voting; Votes is a
    running net tally maintained by the vote handlers
  - Vote: a single voter's up or down signal on one idea; the voter
    token is never serialized to JSON
  - TeamSettings: single-row team configuration (name, dark mode)

# View Types

View types wrap a domain type with derived, per-request decoration that
the presentation layer should not re-derive itself:

  - IdeaView: voted_up / voted_down for the requesting voter
  - ActionItemView: the deadline bucket
  - UrgentItem: bucket plus a humanized due label
  - MeetingView: a humanized start label

# Constants

Vote kinds are "up" and "down"; a voter may hold at most one of each per
idea. Action item statuses are "open" and "done". Idea sort keys are
"votes" and "newest".
*/
package models
