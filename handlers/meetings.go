// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/huddleboard/auth"
	"github.com/danielhkuo/huddleboard/cliparse"
	"github.com/danielhkuo/huddleboard/middleware"
	"github.com/danielhkuo/huddleboard/models"
)

type MeetingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMeetingHandler(db *sql.DB, cfg cliparse.Config) *MeetingHandler {
	return &MeetingHandler{db: db, cfg: cfg}
}

// Create handles POST /meetings
func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMeetingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.ScheduledFor.IsZero() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scheduled_for is required")
		return
	}

	meetingID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO meeting (id, title, scheduled_for, location, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, meetingID, req.Title, req.ScheduledFor, req.Location, req.Notes, time.Now())

	if err != nil {
		slog.Error("failed to insert meeting", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create meeting")
		return
	}

	slog.Info("meeting created", "meeting_id", meetingID, "title", req.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateMeetingResponse{
		MeetingID: meetingID,
	})
}

// List handles GET /meetings
// Meetings come back soonest first with a humanized start label.
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, title, scheduled_for, location, notes, created_at
		FROM meeting
		ORDER BY scheduled_for, id
	`)
	if err != nil {
		slog.Error("failed to query meetings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	views := []models.MeetingView{}
	for rows.Next() {
		var m models.Meeting
		var location, notes sql.NullString
		if err := rows.Scan(&m.ID, &m.Title, &m.ScheduledFor, &location, &notes, &m.CreatedAt); err != nil {
			slog.Error("failed to scan meeting", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		m.Location = location.String
		m.Notes = notes.String
		views = append(views, models.MeetingView{
			Meeting:  m,
			StartsIn: humanize.Time(m.ScheduledFor),
		})
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate meetings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// Delete handles DELETE /meetings/:id (admin)
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	meetingID := r.PathValue("id")
	if meetingID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "meeting_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	result, err := h.db.Exec(`DELETE FROM meeting WHERE id = $1`, meetingID)
	if err != nil {
		slog.Error("failed to delete meeting", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete meeting")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete meeting")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Meeting not found")
		return
	}

	slog.Info("meeting deleted", "meeting_id", meetingID)

	w.WriteHeader(http.StatusNoContent)
}
