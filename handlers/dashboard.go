// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/danielhkuo/huddleboard/cliparse"
	"github.com/danielhkuo/huddleboard/engine"
	"github.com/danielhkuo/huddleboard/middleware"
	"github.com/danielhkuo/huddleboard/models"
)

type DashboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDashboardHandler(db *sql.DB, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg}
}

// Summary handles GET /dashboard/summary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, description, assignee, due_date, status, created_at
		FROM action_item
	`)
	if err != nil {
		slog.Error("failed to query action items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	items := []models.ActionItem{}
	for rows.Next() {
		var item models.ActionItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Assignee, &item.DueDate, &item.Status, &item.CreatedAt); err != nil {
			slog.Error("failed to scan action item", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate action items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var ideaCount, meetingCount int
	if err := h.db.QueryRow(`SELECT COUNT(*) FROM idea`).Scan(&ideaCount); err != nil {
		slog.Error("failed to count ideas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err := h.db.QueryRow(`SELECT COUNT(*) FROM meeting`).Scan(&meetingCount); err != nil {
		slog.Error("failed to count meetings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	counts := engine.CountByBucket(items, now)

	openItems, doneItems := 0, 0
	for _, item := range items {
		if item.Status == models.StatusDone {
			doneItems++
		} else {
			openItems++
		}
	}

	summary := models.DashboardSummary{
		OpenItems:        openItems,
		DoneItems:        doneItems,
		OverdueCount:     counts[engine.BucketOverdue],
		DueTodayCount:    counts[engine.BucketDueToday],
		DueTomorrowCount: counts[engine.BucketDueTomorrow],
		CompletionRate:   roundRate(engine.CompletionRate(items)),
		IdeaCount:        ideaCount,
		MeetingCount:     meetingCount,
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}

// roundRate rounds to two decimals for display; the engine itself keeps
// full precision.
func roundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}
