package models

import "time"

// Action item status constants
const (
	StatusOpen = "open"
	StatusDone = "done"
)

// Vote kind constants
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// Idea sort keys
const (
	SortByVotes  = "votes"
	SortByNewest = "newest"
)

// Request types

type CreateMeetingRequest struct {
	Title        string    `json:"title"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Location     string    `json:"location"`
	Notes        string    `json:"notes"`
}

// DueDate uses the YYYY-MM-DD calendar-date format (no time component).
type CreateActionItemRequest struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	DueDate     string `json:"due_date"`
}

type UpdateActionItemStatusRequest struct {
	Status string `json:"status"`
}

type CreateIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Proposer    string `json:"proposer"`
}

type CastVoteRequest struct {
	Kind string `json:"kind"`
}

type UpdateSettingsRequest struct {
	TeamName string `json:"team_name"`
	DarkMode bool   `json:"dark_mode"`
}

// Response types

type CreateMeetingResponse struct {
	MeetingID string `json:"meeting_id"`
}

type CreateActionItemResponse struct {
	ActionItemID string `json:"action_item_id"`
}

type CreateIdeaResponse struct {
	IdeaID string `json:"idea_id"`
}

type ClaimVoterResponse struct {
	VoterToken string `json:"voter_token"`
}

type CastVoteResponse struct {
	VoteID string `json:"vote_id"`
	Votes  int    `json:"votes"`
}

type DashboardSummary struct {
	OpenItems        int     `json:"open_items"`
	DoneItems        int     `json:"done_items"`
	OverdueCount     int     `json:"overdue_count"`
	DueTodayCount    int     `json:"due_today_count"`
	DueTomorrowCount int     `json:"due_tomorrow_count"`
	CompletionRate   float64 `json:"completion_rate"`
	IdeaCount        int     `json:"idea_count"`
	MeetingCount     int     `json:"meeting_count"`
}

// Domain types

type Meeting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Location     string    `json:"location,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MeetingView decorates a meeting with a human-readable start label.
type MeetingView struct {
	Meeting
	StartsIn string `json:"starts_in"`
}

type ActionItem struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Assignee    string    `json:"assignee"`
	DueDate     string    `json:"due_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActionItemView decorates an action item with its deadline bucket.
type ActionItemView struct {
	ActionItem
	Bucket string `json:"bucket"`
}

// UrgentItem decorates an action item with its deadline bucket and a
// human-readable due label.
type UrgentItem struct {
	ActionItem
	Bucket string `json:"bucket"`
	DueIn  string `json:"due_in"`
}

type Idea struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Proposer    string     `json:"proposer"`
	Votes       int        `json:"votes"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// IdeaView decorates an idea with the requesting voter's vote state.
type IdeaView struct {
	Idea
	VotedUp   bool `json:"voted_up"`
	VotedDown bool `json:"voted_down"`
}

type Vote struct {
	ID         string    `json:"id"`
	IdeaID     string    `json:"idea_id"`
	VoterToken string    `json:"-"` // Never expose in JSON
	Kind       string    `json:"kind"`
	CreatedAt  time.Time `json:"created_at"`
}

type TeamSettings struct {
	TeamName  string    `json:"team_name"`
	DarkMode  bool      `json:"dark_mode"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
